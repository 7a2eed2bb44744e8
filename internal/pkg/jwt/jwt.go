package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

var (
	ErrInvalidToken           = errors.New("invalid or expired token")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)

const (
	ClaimType    = "type"
	ClaimIsAdmin = "is_admin"
	ClaimSubject = "sub"

	TokenTypeAccess = "access"
)

// Service verifies the bearer tokens issued by the identity provider. Signing
// is kept for local tooling and tests.
type Service interface {
	JWTAuth() *jwtauth.JWTAuth
	GenerateAdminToken(subject string, ttl time.Duration) (token string, expiresAt int64, err error)
	Verify(token string) (map[string]interface{}, error)
}

type JWTService struct {
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// GenerateAdminToken signs an access token carrying the admin flag
func (j *JWTService) GenerateAdminToken(subject string, ttl time.Duration) (token string, expiresAt int64, err error) {
	expiresAt = time.Now().Add(ttl).Unix()
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		ClaimSubject: subject,
		ClaimType:    TokenTypeAccess,
		ClaimIsAdmin: true,
		"exp":        expiresAt,
	})
	return tokenString, expiresAt, err
}

// Verify decodes and validates a token and returns its claims
func (j *JWTService) Verify(tokenString string) (map[string]interface{}, error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, err := token.AsMap(context.Background())
	if err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

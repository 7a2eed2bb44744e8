package http

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/handler/http/response"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

// decodeBody writes a 400 and returns false when the body is not valid JSON
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return false
	}
	return true
}

// pathID reads the {id} URL param and rejects anything that is not a UUID
func pathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.ValidationError(w, map[string]string{"id": "id must be a valid id"})
		return "", false
	}
	return id, true
}

func queryString(q url.Values, key string) *string {
	if v := q.Get(key); v != "" {
		return &v
	}
	return nil
}

func queryBool(q url.Values, key string, errs *validator.ValidationErrors) *bool {
	v := q.Get(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		errs.Add(key, key+" must be true or false")
		return nil
	}
	return &b
}

package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/worker"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// ========== WEEKLY SUMMARIES ==========

type weeklySummaryRepository struct {
	db *database.DB
}

func NewWeeklySummaryRepository(db *database.DB) payroll.WeeklySummaryRepository {
	return &weeklySummaryRepository{db: db}
}

const weeklySummaryColumns = `
	s.id, s.worker_id, s.week_start_date, s.week_end_date, s.total_days_worked,
	s.total_salary, s.is_paid, s.paid_at, s.created_at, s.updated_at`

// weeklySummaryWithWorker selects a summary joined to its worker.
const weeklySummaryWithWorker = `
	SELECT ` + weeklySummaryColumns + `, ` + workerColumns + `
	FROM weekly_summaries s
	JOIN workers w ON w.id = s.worker_id`

var weeklySummarySortColumns = map[string]string{
	"week_start_date": "s.week_start_date",
	"created_at":      "s.created_at",
	"total_salary":    "s.total_salary",
	"worker_name":     "w.name",
}

func weeklySummaryDest(s *payroll.WeeklySummary) []interface{} {
	return []interface{}{
		&s.ID, &s.WorkerID, &s.WeekStartDate, &s.WeekEndDate, &s.TotalDaysWorked,
		&s.TotalSalary, &s.IsPaid, &s.PaidAt, &s.CreatedAt, &s.UpdatedAt,
	}
}

func scanWeeklySummaryWithWorker(row pgx.Row) (payroll.WeeklySummary, error) {
	var s payroll.WeeklySummary
	var w worker.Worker
	dest := append(weeklySummaryDest(&s),
		&w.ID, &w.Name, &w.Phone, &w.DailySalary, &w.Status, &w.IsDeleted, &w.CreatedAt, &w.UpdatedAt,
	)
	if err := row.Scan(dest...); err != nil {
		return payroll.WeeklySummary{}, err
	}
	s.Worker = &w
	return s, nil
}

// Create implements payroll.WeeklySummaryRepository.
func (r *weeklySummaryRepository) Create(ctx context.Context, summary payroll.WeeklySummary) (payroll.WeeklySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO weekly_summaries AS s (
			worker_id, week_start_date, week_end_date, total_days_worked,
			total_salary, is_paid, paid_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + weeklySummaryColumns

	var created payroll.WeeklySummary
	err := q.QueryRow(ctx, query,
		summary.WorkerID,
		summary.WeekStartDate,
		summary.WeekEndDate,
		summary.TotalDaysWorked,
		summary.TotalSalary,
		summary.IsPaid,
		summary.PaidAt,
	).Scan(weeklySummaryDest(&created)...)
	if err != nil {
		switch pgErrorCode(err) {
		case uniqueViolation:
			return payroll.WeeklySummary{}, payroll.ErrWeeklySummaryExists
		case foreignKeyViolation:
			return payroll.WeeklySummary{}, worker.ErrWorkerNotFound
		}
		return payroll.WeeklySummary{}, fmt.Errorf("failed to create weekly summary: %w", err)
	}

	created.Worker = summary.Worker
	return created, nil
}

// GetByID implements payroll.WeeklySummaryRepository.
func (r *weeklySummaryRepository) GetByID(ctx context.Context, id string) (payroll.WeeklySummary, error) {
	q := GetQuerier(ctx, r.db)

	s, err := scanWeeklySummaryWithWorker(q.QueryRow(ctx, weeklySummaryWithWorker+` WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.WeeklySummary{}, payroll.ErrWeeklySummaryNotFound
		}
		return payroll.WeeklySummary{}, fmt.Errorf("failed to get weekly summary by ID: %w", err)
	}

	return s, nil
}

// List implements payroll.WeeklySummaryRepository.
func (r *weeklySummaryRepository) List(ctx context.Context, filter payroll.WeeklySummaryFilter) ([]payroll.WeeklySummary, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.SearchTerm != nil && *filter.SearchTerm != "" {
		conditions = append(conditions, fmt.Sprintf("w.name ILIKE $%d", argIdx))
		args = append(args, "%"+*filter.SearchTerm+"%")
		argIdx++
	}
	if filter.WorkerID != nil && *filter.WorkerID != "" {
		conditions = append(conditions, fmt.Sprintf("s.worker_id = $%d", argIdx))
		args = append(args, *filter.WorkerID)
		argIdx++
	}
	if filter.IsPaid != nil {
		conditions = append(conditions, fmt.Sprintf("s.is_paid = $%d", argIdx))
		args = append(args, *filter.IsPaid)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `
		SELECT COUNT(*)
		FROM weekly_summaries s
		JOIN workers w ON w.id = s.worker_id
		WHERE ` + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count weekly summaries: %w", err)
	}

	selectQuery := fmt.Sprintf(`%s
		WHERE %s
		ORDER BY %s, s.id
		LIMIT $%d OFFSET $%d
	`, weeklySummaryWithWorker, whereClause,
		filter.OrderClause(weeklySummarySortColumns, "s.week_start_date"), argIdx, argIdx+1)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query weekly summaries: %w", err)
	}
	defer rows.Close()

	summaries := make([]payroll.WeeklySummary, 0)
	for rows.Next() {
		s, err := scanWeeklySummaryWithWorker(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan weekly summary: %w", err)
		}
		summaries = append(summaries, s)
	}

	return summaries, total, rows.Err()
}

// UpdatePaidStatus implements payroll.WeeklySummaryRepository.
func (r *weeklySummaryRepository) UpdatePaidStatus(ctx context.Context, id string, isPaid bool, paidAt *time.Time) (payroll.WeeklySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE weekly_summaries AS s
		SET is_paid = $1, paid_at = $2, updated_at = NOW()
		WHERE s.id = $3
		RETURNING ` + weeklySummaryColumns

	var updated payroll.WeeklySummary
	err := q.QueryRow(ctx, query, isPaid, paidAt, id).Scan(weeklySummaryDest(&updated)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.WeeklySummary{}, payroll.ErrWeeklySummaryNotFound
		}
		return payroll.WeeklySummary{}, fmt.Errorf("failed to update weekly summary: %w", err)
	}

	return updated, nil
}

// Delete implements payroll.WeeklySummaryRepository.
func (r *weeklySummaryRepository) Delete(ctx context.Context, id string) (payroll.WeeklySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM weekly_summaries AS s WHERE s.id = $1 RETURNING ` + weeklySummaryColumns

	var deleted payroll.WeeklySummary
	err := q.QueryRow(ctx, query, id).Scan(weeklySummaryDest(&deleted)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.WeeklySummary{}, payroll.ErrWeeklySummaryNotFound
		}
		return payroll.WeeklySummary{}, fmt.Errorf("failed to delete weekly summary: %w", err)
	}

	return deleted, nil
}

// ========== SALARY ADJUSTMENTS ==========

type salaryAdjustmentRepository struct {
	db *database.DB
}

func NewSalaryAdjustmentRepository(db *database.DB) payroll.SalaryAdjustmentRepository {
	return &salaryAdjustmentRepository{db: db}
}

const salaryAdjustmentColumns = `
	sa.id, sa.weekly_summary_id, sa.type, sa.amount, sa.reason, sa.created_at, sa.updated_at`

var salaryAdjustmentSortColumns = map[string]string{
	"created_at": "sa.created_at",
	"amount":     "sa.amount",
	"type":       "sa.type",
}

func salaryAdjustmentDest(a *payroll.SalaryAdjustment) []interface{} {
	return []interface{}{
		&a.ID, &a.WeeklySummaryID, &a.Type, &a.Amount, &a.Reason, &a.CreatedAt, &a.UpdatedAt,
	}
}

// Create implements payroll.SalaryAdjustmentRepository.
func (r *salaryAdjustmentRepository) Create(ctx context.Context, adjustment payroll.SalaryAdjustment) (payroll.SalaryAdjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_adjustments AS sa (weekly_summary_id, type, amount, reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + salaryAdjustmentColumns

	var created payroll.SalaryAdjustment
	err := q.QueryRow(ctx, query,
		adjustment.WeeklySummaryID,
		adjustment.Type,
		adjustment.Amount,
		adjustment.Reason,
	).Scan(salaryAdjustmentDest(&created)...)
	if err != nil {
		if pgErrorCode(err) == foreignKeyViolation {
			return payroll.SalaryAdjustment{}, payroll.ErrUnknownWeeklySummary
		}
		return payroll.SalaryAdjustment{}, fmt.Errorf("failed to create salary adjustment: %w", err)
	}

	return created, nil
}

// GetByID implements payroll.SalaryAdjustmentRepository.
func (r *salaryAdjustmentRepository) GetByID(ctx context.Context, id string) (payroll.SalaryAdjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryAdjustmentColumns + ` FROM salary_adjustments sa WHERE sa.id = $1`

	var a payroll.SalaryAdjustment
	if err := q.QueryRow(ctx, query, id).Scan(salaryAdjustmentDest(&a)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.SalaryAdjustment{}, payroll.ErrSalaryAdjustmentNotFound
		}
		return payroll.SalaryAdjustment{}, fmt.Errorf("failed to get salary adjustment by ID: %w", err)
	}

	return a, nil
}

// List implements payroll.SalaryAdjustmentRepository.
func (r *salaryAdjustmentRepository) List(ctx context.Context, filter payroll.SalaryAdjustmentFilter) ([]payroll.SalaryAdjustment, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.WeeklySummaryID != nil && *filter.WeeklySummaryID != "" {
		conditions = append(conditions, fmt.Sprintf("sa.weekly_summary_id = $%d", argIdx))
		args = append(args, *filter.WeeklySummaryID)
		argIdx++
	}
	if filter.Type != nil && *filter.Type != "" {
		conditions = append(conditions, fmt.Sprintf("sa.type = $%d", argIdx))
		args = append(args, *filter.Type)
		argIdx++
	}
	if filter.SearchTerm != nil && *filter.SearchTerm != "" {
		conditions = append(conditions, fmt.Sprintf("sa.reason ILIKE $%d", argIdx))
		args = append(args, "%"+*filter.SearchTerm+"%")
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM salary_adjustments sa WHERE " + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count salary adjustments: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s
		FROM salary_adjustments sa
		WHERE %s
		ORDER BY %s, sa.id
		LIMIT $%d OFFSET $%d
	`, salaryAdjustmentColumns, whereClause,
		filter.OrderClause(salaryAdjustmentSortColumns, "sa.created_at"), argIdx, argIdx+1)
	args = append(args, filter.Limit, filter.Offset())

	adjustments, err := r.queryAll(ctx, q, selectQuery, false, args...)
	if err != nil {
		return nil, 0, err
	}

	return adjustments, total, nil
}

// Update implements payroll.SalaryAdjustmentRepository.
func (r *salaryAdjustmentRepository) Update(ctx context.Context, req payroll.UpdateSalaryAdjustmentRequest) (payroll.SalaryAdjustment, error) {
	q := GetQuerier(ctx, r.db)

	updates := []string{}
	args := []interface{}{}
	argIdx := 1

	if req.Type != nil {
		updates = append(updates, fmt.Sprintf("type = $%d", argIdx))
		args = append(args, *req.Type)
		argIdx++
	}
	if req.Amount != nil {
		updates = append(updates, fmt.Sprintf("amount = $%d", argIdx))
		args = append(args, *req.Amount)
		argIdx++
	}
	if req.Reason != nil {
		updates = append(updates, fmt.Sprintf("reason = $%d", argIdx))
		args = append(args, *req.Reason)
		argIdx++
	}

	if len(updates) == 0 {
		return r.GetByID(ctx, req.ID)
	}

	updates = append(updates, "updated_at = NOW()")
	query := fmt.Sprintf(`
		UPDATE salary_adjustments AS sa SET %s
		WHERE sa.id = $%d
		RETURNING %s
	`, strings.Join(updates, ", "), argIdx, salaryAdjustmentColumns)
	args = append(args, req.ID)

	var updated payroll.SalaryAdjustment
	if err := q.QueryRow(ctx, query, args...).Scan(salaryAdjustmentDest(&updated)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.SalaryAdjustment{}, payroll.ErrSalaryAdjustmentNotFound
		}
		return payroll.SalaryAdjustment{}, fmt.Errorf("failed to update salary adjustment: %w", err)
	}

	return updated, nil
}

// Delete implements payroll.SalaryAdjustmentRepository.
func (r *salaryAdjustmentRepository) Delete(ctx context.Context, id string) (payroll.SalaryAdjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM salary_adjustments AS sa WHERE sa.id = $1 RETURNING ` + salaryAdjustmentColumns

	var deleted payroll.SalaryAdjustment
	if err := q.QueryRow(ctx, query, id).Scan(salaryAdjustmentDest(&deleted)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.SalaryAdjustment{}, payroll.ErrSalaryAdjustmentNotFound
		}
		return payroll.SalaryAdjustment{}, fmt.Errorf("failed to delete salary adjustment: %w", err)
	}

	return deleted, nil
}

// ListByWeeklySummaryIDs implements payroll.SalaryAdjustmentRepository.
func (r *salaryAdjustmentRepository) ListByWeeklySummaryIDs(ctx context.Context, ids []string) ([]payroll.SalaryAdjustment, error) {
	if len(ids) == 0 {
		return []payroll.SalaryAdjustment{}, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryAdjustmentColumns + `
		FROM salary_adjustments sa
		WHERE sa.weekly_summary_id = ANY($1::uuid[])
		ORDER BY sa.created_at, sa.id
	`

	return r.queryAll(ctx, q, query, false, ids)
}

// ListWithinRange implements payroll.SalaryAdjustmentRepository.
func (r *salaryAdjustmentRepository) ListWithinRange(ctx context.Context, start, end time.Time) ([]payroll.SalaryAdjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryAdjustmentColumns + `, s.worker_id
		FROM salary_adjustments sa
		JOIN weekly_summaries s ON s.id = sa.weekly_summary_id
		WHERE s.week_start_date >= $1 AND s.week_end_date <= $2
		ORDER BY s.worker_id, sa.created_at, sa.id
	`

	return r.queryAll(ctx, q, query, true, start, end)
}

func (r *salaryAdjustmentRepository) queryAll(ctx context.Context, q database.Querier, query string, withWorker bool, args ...interface{}) ([]payroll.SalaryAdjustment, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query salary adjustments: %w", err)
	}
	defer rows.Close()

	adjustments := make([]payroll.SalaryAdjustment, 0)
	for rows.Next() {
		var a payroll.SalaryAdjustment
		dest := salaryAdjustmentDest(&a)
		if withWorker {
			dest = append(dest, &a.WorkerID)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan salary adjustment: %w", err)
		}
		adjustments = append(adjustments, a)
	}

	return adjustments, rows.Err()
}

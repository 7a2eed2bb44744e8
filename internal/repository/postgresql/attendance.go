package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.worker_id, a.date, a.is_present, a.work_hours, a.note,
	a.created_at, a.updated_at`

var attendanceSortColumns = map[string]string{
	"date":        "a.date",
	"worker_name": "w.name",
	"created_at":  "a.created_at",
}

func scanAttendance(row pgx.Row, withWorker bool) (attendance.Attendance, error) {
	var att attendance.Attendance
	dest := []interface{}{
		&att.ID, &att.WorkerID, &att.Date, &att.IsPresent, &att.WorkHours, &att.Note,
		&att.CreatedAt, &att.UpdatedAt,
	}
	if withWorker {
		dest = append(dest, &att.WorkerName)
	}
	err := row.Scan(dest...)
	return att, err
}

func mapAttendanceWriteError(err error, action string) error {
	switch pgErrorCode(err) {
	case uniqueViolation:
		return attendance.ErrAttendanceExists
	case foreignKeyViolation:
		return attendance.ErrUnknownWorker
	}
	return fmt.Errorf("failed to %s attendance: %w", action, err)
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances AS a (worker_id, date, is_present, work_hours, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + attendanceColumns

	created, err := scanAttendance(q.QueryRow(ctx, query,
		newAttendance.WorkerID,
		newAttendance.Date,
		newAttendance.IsPresent,
		newAttendance.WorkHours,
		newAttendance.Note,
	), false)
	if err != nil {
		return attendance.Attendance{}, mapAttendanceWriteError(err, "create")
	}

	return created, nil
}

// Upsert implements attendance.AttendanceRepository.
func (a *attendanceRepository) Upsert(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances AS a (worker_id, date, is_present, work_hours, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (worker_id, date) DO UPDATE SET
			is_present = EXCLUDED.is_present,
			work_hours = EXCLUDED.work_hours,
			note       = EXCLUDED.note,
			updated_at = NOW()
		RETURNING ` + attendanceColumns

	saved, err := scanAttendance(q.QueryRow(ctx, query,
		att.WorkerID,
		att.Date,
		att.IsPresent,
		att.WorkHours,
		att.Note,
	), false)
	if err != nil {
		return attendance.Attendance{}, mapAttendanceWriteError(err, "upsert")
	}

	return saved, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `, w.name AS worker_name
		FROM attendances a
		LEFT JOIN workers w ON w.id = a.worker_id
		WHERE a.id = $1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by ID: %w", err)
	}

	return att, nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	// Build WHERE clause
	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.WorkerID != nil && *filter.WorkerID != "" {
		baseWhere += fmt.Sprintf(" AND a.worker_id = $%d", argIdx)
		args = append(args, *filter.WorkerID)
		argIdx++
	}

	// Search over note
	if filter.SearchTerm != nil && *filter.SearchTerm != "" {
		baseWhere += fmt.Sprintf(" AND a.note ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.SearchTerm+"%")
		argIdx++
	}

	if filter.IsPresent != nil {
		baseWhere += fmt.Sprintf(" AND a.is_present = $%d", argIdx)
		args = append(args, *filter.IsPresent)
		argIdx++
	}

	// Date range filters
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM attendances a WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s, w.name AS worker_name
		FROM attendances a
		LEFT JOIN workers w ON w.id = a.worker_id
		WHERE %s
		ORDER BY %s, a.id
		LIMIT $%d OFFSET $%d
	`, attendanceColumns, baseWhere, filter.OrderClause(attendanceSortColumns, "a.date"), argIdx, argIdx+1)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	attendances := make([]attendance.Attendance, 0)
	for rows.Next() {
		att, err := scanAttendance(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	return attendances, total, rows.Err()
}

// ListByDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	query := `
		SELECT ` + attendanceColumns + `, w.name AS worker_name
		FROM attendances a
		LEFT JOIN workers w ON w.id = a.worker_id
		WHERE a.date = $1
		ORDER BY w.name, a.worker_id
	`
	return a.queryAll(ctx, query, true, date)
}

// ListByWorkerAndRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByWorkerAndRange(ctx context.Context, workerID string, start, end time.Time) ([]attendance.Attendance, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.worker_id = $1 AND a.date BETWEEN $2 AND $3
		ORDER BY a.date
	`
	return a.queryAll(ctx, query, false, workerID, start, end)
}

// ListByRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByRange(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.date BETWEEN $1 AND $2
		ORDER BY a.worker_id, a.date
	`
	return a.queryAll(ctx, query, false, start, end)
}

func (a *attendanceRepository) queryAll(ctx context.Context, query string, withWorker bool, args ...interface{}) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	attendances := make([]attendance.Attendance, 0)
	for rows.Next() {
		att, err := scanAttendance(rows, withWorker)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	return attendances, rows.Err()
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if req.Date != nil {
		updates = append(updates, fmt.Sprintf("date = $%d", argIdx))
		args = append(args, *req.Date)
		argIdx++
	}
	if req.IsPresent != nil {
		updates = append(updates, fmt.Sprintf("is_present = $%d", argIdx))
		args = append(args, *req.IsPresent)
		argIdx++
	}
	if req.WorkHours != nil {
		updates = append(updates, fmt.Sprintf("work_hours = $%d", argIdx))
		args = append(args, *req.WorkHours)
		argIdx++
	}
	if req.Note != nil {
		updates = append(updates, fmt.Sprintf("note = $%d", argIdx))
		args = append(args, *req.Note)
		argIdx++
	}

	if len(updates) == 0 {
		return a.GetByID(ctx, req.ID)
	}

	updates = append(updates, "updated_at = NOW()")
	query := fmt.Sprintf(`
		UPDATE attendances AS a SET %s
		WHERE a.id = $%d
		RETURNING %s
	`, strings.Join(updates, ", "), argIdx, attendanceColumns)
	args = append(args, req.ID)

	updated, err := scanAttendance(q.QueryRow(ctx, query, args...), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, mapAttendanceWriteError(err, "update")
	}

	return updated, nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepository) Delete(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `DELETE FROM attendances AS a WHERE a.id = $1 RETURNING ` + attendanceColumns

	deleted, err := scanAttendance(q.QueryRow(ctx, query, id), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to delete attendance: %w", err)
	}

	return deleted, nil
}

package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/domain/worker"
	"github.com/cmlabs-hris/weekly-payroll-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func createWorker(t *testing.T, ctx context.Context, repo worker.WorkerRepository, name string) worker.Worker {
	t.Helper()
	w, err := repo.Create(ctx, worker.Worker{
		Name:        name,
		DailySalary: decimal.NewFromInt(500),
		Status:      worker.StatusActive,
	})
	require.NoError(t, err)
	return w
}

func TestWorkerRepository_ListActive(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewWorkerRepository(setup.DB)

	budi := createWorker(t, ctx, repo, "Budi")
	ani := createWorker(t, ctx, repo, "Ani")
	gone := createWorker(t, ctx, repo, "Cahya")
	_, err := repo.SoftDelete(ctx, gone.ID)
	require.NoError(t, err)

	inactive := string(worker.StatusInactive)
	idle := createWorker(t, ctx, repo, "Dewi")
	_, err = repo.Update(ctx, worker.UpdateWorkerRequest{ID: idle.ID, Status: &inactive})
	require.NoError(t, err)

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, ani.ID, active[0].ID)
	assert.Equal(t, budi.ID, active[1].ID)
	assert.True(t, budi.DailySalary.Equal(active[1].DailySalary))

	_, err = repo.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}

func TestAttendanceRepository_UniquenessAndUpsert(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	workers := postgresql.NewWorkerRepository(setup.DB)
	repo := postgresql.NewAttendanceRepository(setup.DB)

	w := createWorker(t, ctx, workers, "Budi")
	first, err := repo.Create(ctx, attendance.Attendance{
		WorkerID:  w.ID,
		Date:      day("2024-01-01"),
		IsPresent: true,
		WorkHours: 8,
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, attendance.Attendance{
		WorkerID:  w.ID,
		Date:      day("2024-01-01"),
		IsPresent: false,
		WorkHours: 0,
	})
	assert.ErrorIs(t, err, attendance.ErrAttendanceExists)

	_, err = repo.Create(ctx, attendance.Attendance{
		WorkerID: uuid.NewString(),
		Date:     day("2024-01-01"),
	})
	assert.ErrorIs(t, err, attendance.ErrUnknownWorker)

	note := "sick"
	upserted, err := repo.Upsert(ctx, attendance.Attendance{
		WorkerID:  w.ID,
		Date:      day("2024-01-01"),
		IsPresent: false,
		WorkHours: 0,
		Note:      &note,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, upserted.ID)
	assert.False(t, upserted.IsPresent)

	rows, err := repo.ListByWorkerAndRange(ctx, w.ID, day("2024-01-01"), day("2024-01-07"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].Note)
	assert.Equal(t, "sick", *rows[0].Note)

	byDate, err := repo.ListByDate(ctx, day("2024-01-01"))
	require.NoError(t, err)
	require.Len(t, byDate, 1)
	require.NotNil(t, byDate[0].WorkerName)
	assert.Equal(t, "Budi", *byDate[0].WorkerName)
}

func TestWeeklySummaryRepository_UniquenessAndCascade(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	workers := postgresql.NewWorkerRepository(setup.DB)
	summaries := postgresql.NewWeeklySummaryRepository(setup.DB)
	adjustments := postgresql.NewSalaryAdjustmentRepository(setup.DB)

	w := createWorker(t, ctx, workers, "Budi")
	summary := payroll.WeeklySummary{
		WorkerID:        w.ID,
		WeekStartDate:   day("2024-01-01"),
		WeekEndDate:     day("2024-01-07"),
		TotalDaysWorked: 5,
		TotalSalary:     decimal.NewFromInt(2500),
	}

	created, err := summaries.Create(ctx, summary)
	require.NoError(t, err)
	assert.False(t, created.IsPaid)
	assert.Nil(t, created.PaidAt)

	_, err = summaries.Create(ctx, summary)
	assert.ErrorIs(t, err, payroll.ErrWeeklySummaryExists)

	summary.WorkerID = uuid.NewString()
	_, err = summaries.Create(ctx, summary)
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)

	_, err = adjustments.Create(ctx, payroll.SalaryAdjustment{
		WeeklySummaryID: created.ID,
		Type:            payroll.AdjustmentBonus,
		Amount:          decimal.NewFromInt(200),
	})
	require.NoError(t, err)

	_, err = adjustments.Create(ctx, payroll.SalaryAdjustment{
		WeeklySummaryID: uuid.NewString(),
		Type:            payroll.AdjustmentBonus,
		Amount:          decimal.NewFromInt(200),
	})
	assert.ErrorIs(t, err, payroll.ErrUnknownWeeklySummary)

	paidAt := time.Now().UTC().Truncate(time.Second)
	paid, err := summaries.UpdatePaidStatus(ctx, created.ID, true, &paidAt)
	require.NoError(t, err)
	assert.True(t, paid.IsPaid)
	require.NotNil(t, paid.PaidAt)
	assert.True(t, paidAt.Equal(*paid.PaidAt))

	_, err = summaries.Delete(ctx, created.ID)
	require.NoError(t, err)

	left, err := adjustments.ListByWeeklySummaryIDs(ctx, []string{created.ID})
	require.NoError(t, err)
	assert.Empty(t, left)

	_, err = summaries.GetByID(ctx, created.ID)
	assert.True(t, errors.Is(err, payroll.ErrWeeklySummaryNotFound))
}

func TestSalaryAdjustmentRepository_ListWithinRange(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	workers := postgresql.NewWorkerRepository(setup.DB)
	summaries := postgresql.NewWeeklySummaryRepository(setup.DB)
	adjustments := postgresql.NewSalaryAdjustmentRepository(setup.DB)

	w := createWorker(t, ctx, workers, "Budi")

	inside, err := summaries.Create(ctx, payroll.WeeklySummary{
		WorkerID:      w.ID,
		WeekStartDate: day("2024-01-01"),
		WeekEndDate:   day("2024-01-07"),
		TotalSalary:   decimal.Zero,
	})
	require.NoError(t, err)

	straddling, err := summaries.Create(ctx, payroll.WeeklySummary{
		WorkerID:      w.ID,
		WeekStartDate: day("2024-01-05"),
		WeekEndDate:   day("2024-01-11"),
		TotalSalary:   decimal.Zero,
	})
	require.NoError(t, err)

	for _, id := range []string{inside.ID, straddling.ID} {
		_, err := adjustments.Create(ctx, payroll.SalaryAdjustment{
			WeeklySummaryID: id,
			Type:            payroll.AdjustmentDeduction,
			Amount:          decimal.NewFromInt(100),
		})
		require.NoError(t, err)
	}

	within, err := adjustments.ListWithinRange(ctx, day("2024-01-01"), day("2024-01-07"))
	require.NoError(t, err)
	require.Len(t, within, 1)
	assert.Equal(t, inside.ID, within[0].WeeklySummaryID)
	require.NotNil(t, within[0].WorkerID)
	assert.Equal(t, w.ID, *within[0].WorkerID)
}

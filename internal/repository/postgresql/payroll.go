package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/techmire/payroll-backend-go/internal/domain/payroll"
	"github.com/techmire/payroll-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

// Date lists and the raw section rows live in jsonb columns; pgx handles the
// (un)marshalling through its json codec.
const payrollColumns = `
	id, employee_id, full_name, month, total_working_hours, not_allowed_hours,
	official_working_days, adjusted_working_days, effective_allowance_days,
	hourly_wage, daily_allowance_rate, daily_allowance_total, official_leaves,
	allowed_hours_per_day, hourly_salary, gross_salary, late_count, early_count,
	absent_count, effective_absent_count, late_dates, early_dates, absent_dates,
	section_rows, salary_cap, created_at, updated_at
`

func scanPayroll(row pgx.Row) (payroll.Record, error) {
	var rec payroll.Record
	err := row.Scan(
		&rec.ID,
		&rec.EmployeeID,
		&rec.FullName,
		&rec.Month,
		&rec.TotalWorkingHours,
		&rec.NotAllowedHours,
		&rec.OfficialWorkingDays,
		&rec.AdjustedWorkingDays,
		&rec.EffectiveAllowanceDays,
		&rec.HourlyWage,
		&rec.DailyAllowanceRate,
		&rec.DailyAllowanceTotal,
		&rec.OfficialLeaves,
		&rec.AllowedHoursPerDay,
		&rec.HourlySalary,
		&rec.GrossSalary,
		&rec.LateCount,
		&rec.EarlyCount,
		&rec.AbsentCount,
		&rec.EffectiveAbsentCount,
		&rec.LateDates,
		&rec.EarlyDates,
		&rec.AbsentDates,
		&rec.SectionRows,
		&rec.SalaryCap,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	return rec, err
}

// Upsert implements payroll.PayrollRepository. Records are keyed on
// (employee_id, month); regenerating a month overwrites the previous run.
func (r *payrollRepositoryImpl) Upsert(ctx context.Context, record payroll.Record) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payrolls (
			id, employee_id, full_name, month, total_working_hours,
			not_allowed_hours, official_working_days, adjusted_working_days,
			effective_allowance_days, hourly_wage, daily_allowance_rate,
			daily_allowance_total, official_leaves, allowed_hours_per_day,
			hourly_salary, gross_salary, late_count, early_count, absent_count,
			effective_absent_count, late_dates, early_dates, absent_dates,
			section_rows, salary_cap
		)
		VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25
		)
		ON CONFLICT (employee_id, month) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			total_working_hours = EXCLUDED.total_working_hours,
			not_allowed_hours = EXCLUDED.not_allowed_hours,
			official_working_days = EXCLUDED.official_working_days,
			adjusted_working_days = EXCLUDED.adjusted_working_days,
			effective_allowance_days = EXCLUDED.effective_allowance_days,
			hourly_wage = EXCLUDED.hourly_wage,
			daily_allowance_rate = EXCLUDED.daily_allowance_rate,
			daily_allowance_total = EXCLUDED.daily_allowance_total,
			official_leaves = EXCLUDED.official_leaves,
			allowed_hours_per_day = EXCLUDED.allowed_hours_per_day,
			hourly_salary = EXCLUDED.hourly_salary,
			gross_salary = EXCLUDED.gross_salary,
			late_count = EXCLUDED.late_count,
			early_count = EXCLUDED.early_count,
			absent_count = EXCLUDED.absent_count,
			effective_absent_count = EXCLUDED.effective_absent_count,
			late_dates = EXCLUDED.late_dates,
			early_dates = EXCLUDED.early_dates,
			absent_dates = EXCLUDED.absent_dates,
			section_rows = EXCLUDED.section_rows,
			salary_cap = EXCLUDED.salary_cap,
			updated_at = NOW()
		RETURNING` + payrollColumns

	stored, err := scanPayroll(q.QueryRow(ctx, query,
		uuid.New().String(),
		record.EmployeeID,
		record.FullName,
		record.Month,
		record.TotalWorkingHours,
		record.NotAllowedHours,
		record.OfficialWorkingDays,
		record.AdjustedWorkingDays,
		record.EffectiveAllowanceDays,
		record.HourlyWage,
		record.DailyAllowanceRate,
		record.DailyAllowanceTotal,
		record.OfficialLeaves,
		record.AllowedHoursPerDay,
		record.HourlySalary,
		record.GrossSalary,
		record.LateCount,
		record.EarlyCount,
		record.AbsentCount,
		record.EffectiveAbsentCount,
		record.LateDates,
		record.EarlyDates,
		record.AbsentDates,
		record.SectionRows,
		record.SalaryCap,
	))
	if err != nil {
		return payroll.Record{}, err
	}

	return stored, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + payrollColumns + `FROM payrolls WHERE id = $1`

	rec, err := scanPayroll(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Record{}, payroll.ErrRecordNotFound
		}
		return payroll.Record{}, err
	}

	return rec, nil
}

// List implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) List(ctx context.Context) ([]payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + payrollColumns + `FROM payrolls ORDER BY month DESC, employee_id`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPayrolls(rows)
}

// ListByEmployeeID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListByEmployeeID(ctx context.Context, employeeID string) ([]payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + payrollColumns + `FROM payrolls WHERE employee_id = $1 ORDER BY month DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPayrolls(rows)
}

// Update implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Update(ctx context.Context, record payroll.Record) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payrolls
		SET total_working_hours = $2, not_allowed_hours = $3, hourly_wage = $4,
			daily_allowance_total = $5, hourly_salary = $6, gross_salary = $7,
			updated_at = NOW()
		WHERE id = $1
		RETURNING` + payrollColumns

	updated, err := scanPayroll(q.QueryRow(ctx, query,
		record.ID,
		record.TotalWorkingHours,
		record.NotAllowedHours,
		record.HourlyWage,
		record.DailyAllowanceTotal,
		record.HourlySalary,
		record.GrossSalary,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Record{}, payroll.ErrRecordNotFound
		}
		return payroll.Record{}, err
	}

	return updated, nil
}

// Delete implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payrolls WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrRecordNotFound
	}

	return nil
}

// DeleteAll implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) DeleteAll(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM payrolls`)
	return err
}

func collectPayrolls(rows pgx.Rows) ([]payroll.Record, error) {
	var records []payroll.Record
	for rows.Next() {
		rec, err := scanPayroll(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

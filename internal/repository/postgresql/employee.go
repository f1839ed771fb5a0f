package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/techmire/payroll-backend-go/internal/domain/employee"
	"github.com/techmire/payroll-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, employee_id, full_name, email, gender, cnic, contact_number,
	permanent_address, guardian_phone, post_applied_for, joining_date,
	in_time, out_time, salary_cap, created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID,
		&emp.EmployeeID,
		&emp.FullName,
		&emp.Email,
		&emp.Gender,
		&emp.CNIC,
		&emp.ContactNumber,
		&emp.PermanentAddress,
		&emp.GuardianPhone,
		&emp.PostAppliedFor,
		&emp.JoiningDate,
		&emp.InTime,
		&emp.OutTime,
		&emp.SalaryCap,
		&emp.CreatedAt,
		&emp.UpdatedAt,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, employee_id, full_name, email, gender, cnic, contact_number,
			permanent_address, guardian_phone, post_applied_for, joining_date,
			in_time, out_time, salary_cap
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		emp.ID,
		emp.EmployeeID,
		emp.FullName,
		emp.Email,
		emp.Gender,
		emp.CNIC,
		emp.ContactNumber,
		emp.PermanentAddress,
		emp.GuardianPhone,
		emp.PostAppliedFor,
		emp.JoiningDate,
		emp.InTime,
		emp.OutTime,
		emp.SalaryCap,
	))
	if err != nil {
		return employee.Employee{}, mapEmployeeConstraint(err)
	}

	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + employeeColumns + `FROM employees WHERE id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return emp, nil
}

// GetByEmployeeID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + employeeColumns + `FROM employees WHERE employee_id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + employeeColumns + `FROM employees ORDER BY employee_id`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET full_name = $2, email = $3, gender = $4, cnic = $5,
			contact_number = $6, permanent_address = $7, guardian_phone = $8,
			post_applied_for = $9, joining_date = $10, in_time = $11,
			out_time = $12, salary_cap = $13, updated_at = NOW()
		WHERE id = $1
		RETURNING` + employeeColumns

	updated, err := scanEmployee(q.QueryRow(ctx, query,
		emp.ID,
		emp.FullName,
		emp.Email,
		emp.Gender,
		emp.CNIC,
		emp.ContactNumber,
		emp.PermanentAddress,
		emp.GuardianPhone,
		emp.PostAppliedFor,
		emp.JoiningDate,
		emp.InTime,
		emp.OutTime,
		emp.SalaryCap,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, mapEmployeeConstraint(err)
	}

	return updated, nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// mapEmployeeConstraint translates unique-violation errors into domain errors.
func mapEmployeeConstraint(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "employees_employee_id_key":
			return employee.ErrEmployeeIDExists
		case "employees_cnic_key":
			return employee.ErrCNICExists
		}
	}
	return err
}

package payroll

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/techmire/payroll-backend-go/internal/domain/attendance"
	"github.com/techmire/payroll-backend-go/internal/domain/employee"
	"github.com/techmire/payroll-backend-go/internal/domain/file"
	"github.com/techmire/payroll-backend-go/internal/domain/payroll"
	"github.com/techmire/payroll-backend-go/internal/pkg/database"
	"github.com/techmire/payroll-backend-go/internal/repository/postgresql"
)

type PayrollServiceImpl struct {
	db                *database.DB
	payrollRepo       payroll.PayrollRepository
	employeeRepo      employee.EmployeeRepository
	fileService       file.FileService
	attendanceService attendance.AttendanceService
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	fileService file.FileService,
	attendanceService attendance.AttendanceService,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:                db,
		payrollRepo:       payrollRepo,
		employeeRepo:      employeeRepo,
		fileService:       fileService,
		attendanceService: attendanceService,
	}
}

// callerIdentity reads role and employee id from the JWT context. Outside an
// authenticated request (tests, jobs) it reports an hr-level caller.
func callerIdentity(ctx context.Context) (role string, employeeID string) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "hr", ""
	}
	role, _ = claims["role"].(string)
	employeeID, _ = claims["employee_id"].(string)
	if role == "" {
		role = "hr"
	}
	return role, employeeID
}

// GenerateAll implements payroll.PayrollService.
func (s *PayrollServiceImpl) GenerateAll(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.GeneratePayrollsResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.GeneratePayrollsResponse{}, err
	}
	settings, err := req.Settings()
	if err != nil {
		return payroll.GeneratePayrollsResponse{}, err
	}

	raw, err := s.fileService.Content(ctx, req.FileID)
	if err != nil {
		return payroll.GeneratePayrollsResponse{}, err
	}
	rows := s.attendanceService.ParseExport(raw)

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return payroll.GeneratePayrollsResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	resp := payroll.GeneratePayrollsResponse{
		Results: make(map[string]payroll.RecordResponse, len(employees)),
		Issues:  []string{},
	}

	// All records of a run land atomically; a storage failure mid-batch must
	// not leave the month half regenerated.
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		for _, emp := range employees {
			rec, err := s.computeForEmployee(rows, emp, settings)
			if err != nil {
				if ie, ok := err.(*payroll.IneligibleError); ok {
					resp.Issues = append(resp.Issues, ie.Reason)
					continue
				}
				return err
			}

			stored, err := s.payrollRepo.Upsert(txCtx, rec)
			if err != nil {
				return fmt.Errorf("failed to store payroll for employee %s: %w", emp.EmployeeID, err)
			}
			resp.Results[emp.EmployeeID] = payroll.ToResponse(stored)
		}
		return nil
	})
	if err != nil {
		return payroll.GeneratePayrollsResponse{}, err
	}

	return resp, nil
}

// GenerateOne implements payroll.PayrollService.
func (s *PayrollServiceImpl) GenerateOne(ctx context.Context, employeeID string, req payroll.GeneratePayrollRequest) (payroll.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RecordResponse{}, err
	}
	settings, err := req.Settings()
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	emp, err := s.employeeRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	raw, err := s.fileService.Content(ctx, req.FileID)
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	rows := s.attendanceService.ParseExport(raw)

	rec, err := s.computeForEmployee(rows, emp, settings)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	stored, err := s.payrollRepo.Upsert(ctx, rec)
	if err != nil {
		return payroll.RecordResponse{}, fmt.Errorf("failed to store payroll for employee %s: %w", emp.EmployeeID, err)
	}
	return payroll.ToResponse(stored), nil
}

// computeForEmployee runs section location, classification and the formula
// for one employee. An absent section is zero attendance, not an error.
func (s *PayrollServiceImpl) computeForEmployee(
	rows []attendance.Row,
	emp employee.Employee,
	settings payroll.Settings,
) (payroll.Record, error) {
	saturdayOff := settings.SaturdayOff(emp.EmployeeID)

	section := s.attendanceService.EmployeeSection(rows, emp.EmployeeID)
	summary := s.attendanceService.Summarize(section, saturdayOff)
	workingDays := s.attendanceService.WorkingDays(settings.Year, settings.Month, saturdayOff)

	return buildRecord(emp, summary, section, workingDays, settings)
}

// List implements payroll.PayrollService.
func (s *PayrollServiceImpl) List(ctx context.Context) ([]payroll.RecordResponse, error) {
	role, employeeID := callerIdentity(ctx)

	var (
		records []payroll.Record
		err     error
	)
	if role == "employee" {
		records, err = s.payrollRepo.ListByEmployeeID(ctx, employeeID)
	} else {
		records, err = s.payrollRepo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	result := make([]payroll.RecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, payroll.ToResponse(r))
	}
	return result, nil
}

// Get implements payroll.PayrollService.
func (s *PayrollServiceImpl) Get(ctx context.Context, id string) (payroll.RecordResponse, error) {
	rec, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	// Employees may only see their own payrolls.
	if role, employeeID := callerIdentity(ctx); role == "employee" && rec.EmployeeID != employeeID {
		return payroll.RecordResponse{}, payroll.ErrRecordNotFound
	}

	return payroll.ToResponse(rec), nil
}

// UpdateHours implements payroll.PayrollService.
func (s *PayrollServiceImpl) UpdateHours(ctx context.Context, req payroll.UpdateHoursRequest) (payroll.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RecordResponse{}, err
	}

	rec, err := s.payrollRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	updated, err := s.payrollRepo.Update(ctx, recalculateHours(rec, req.TotalWorkingHours))
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	return payroll.ToResponse(updated), nil
}

// Delete implements payroll.PayrollService.
func (s *PayrollServiceImpl) Delete(ctx context.Context, id string) error {
	return s.payrollRepo.Delete(ctx, id)
}

// DeleteAll implements payroll.PayrollService.
func (s *PayrollServiceImpl) DeleteAll(ctx context.Context) error {
	return s.payrollRepo.DeleteAll(ctx)
}

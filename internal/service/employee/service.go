package employee

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/techmire/payroll-backend-go/internal/domain/employee"
	"github.com/techmire/payroll-backend-go/internal/pkg/database"
)

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		ID:               uuid.New().String(),
		EmployeeID:       req.EmployeeID,
		FullName:         req.FullName,
		Email:            req.Email,
		Gender:           req.Gender,
		CNIC:             req.CNIC,
		ContactNumber:    req.ContactNumber,
		PermanentAddress: req.PermanentAddress,
		GuardianPhone:    req.GuardianPhone,
		PostAppliedFor:   req.PostAppliedFor,
		InTime:           req.InTime,
		OutTime:          req.OutTime,
		SalaryCap:        req.SalaryCap,
	}
	if req.JoiningDate != nil {
		d, _ := time.Parse("2006-01-02", *req.JoiningDate)
		emp.JoiningDate = &d
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		result = append(result, employee.ToResponse(emp))
	}
	return result, nil
}

// Update implements employee.EmployeeService. Only the fields present in the
// request change; nil pointers leave the stored value alone.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Email != nil {
		emp.Email = req.Email
	}
	if req.Gender != nil {
		emp.Gender = req.Gender
	}
	if req.CNIC != nil {
		emp.CNIC = req.CNIC
	}
	if req.ContactNumber != nil {
		emp.ContactNumber = req.ContactNumber
	}
	if req.PermanentAddress != nil {
		emp.PermanentAddress = req.PermanentAddress
	}
	if req.GuardianPhone != nil {
		emp.GuardianPhone = req.GuardianPhone
	}
	if req.PostAppliedFor != nil {
		emp.PostAppliedFor = req.PostAppliedFor
	}
	if req.JoiningDate != nil {
		d, _ := time.Parse("2006-01-02", *req.JoiningDate)
		emp.JoiningDate = &d
	}
	if req.InTime != nil {
		emp.InTime = req.InTime
	}
	if req.OutTime != nil {
		emp.OutTime = req.OutTime
	}
	if req.SalaryCap != nil {
		emp.SalaryCap = req.SalaryCap
	}

	updated, err := s.employeeRepo.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(updated), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bragboard/internal/model"
	"bragboard/internal/repository"
)

// ErrEmployeeNotFound is returned when an employee id does not exist.
var ErrEmployeeNotFound = errors.New("employee not found")

// EmployeeService handles the employee roster.
type EmployeeService interface {
	ListActive(ctx context.Context) ([]model.Employee, error)
	Toggle(ctx context.Context, id string) (*model.Employee, error)
}

type employeeService struct {
	repo repository.EmployeeRepository
}

// NewEmployeeService creates a new employee service.
func NewEmployeeService(repo repository.EmployeeRepository) EmployeeService {
	return &employeeService{repo: repo}
}

// ListActive returns all employees with active = true.
func (s *employeeService) ListActive(ctx context.Context) ([]model.Employee, error) {
	employees, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active employees: %w", err)
	}
	return employees, nil
}

// Toggle flips the employee's active flag and returns the updated row.
func (s *employeeService) Toggle(ctx context.Context, id string) (*model.Employee, error) {
	employeeID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrEmployeeNotFound
	}

	employee, err := s.repo.FindByID(ctx, employeeID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}

	employee.Active = !employee.Active
	if err := s.repo.Update(ctx, employee); err != nil {
		return nil, fmt.Errorf("update employee: %w", err)
	}
	return employee, nil
}

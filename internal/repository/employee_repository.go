package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bragboard/internal/model"
)

// EmployeeRepository defines employee roster persistence operations.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *model.Employee) error
	Update(ctx context.Context, employee *model.Employee) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Employee, error)
	FindByEmail(ctx context.Context, email string) (*model.Employee, error)
	ListActive(ctx context.Context) ([]model.Employee, error)
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository.
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

// Create creates a new employee.
func (r *employeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

// Update updates an existing employee.
func (r *employeeRepository) Update(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}

// FindByID finds an employee by ID.
func (r *employeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	var employee model.Employee
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// FindByEmail finds an employee by email.
func (r *employeeRepository) FindByEmail(ctx context.Context, email string) (*model.Employee, error) {
	var employee model.Employee
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// ListActive lists all active employees.
func (r *employeeRepository) ListActive(ctx context.Context) ([]model.Employee, error) {
	var employees []model.Employee
	if err := r.db.WithContext(ctx).Where("active = ?", true).Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

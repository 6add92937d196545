package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bragboard/internal/service"
)

// EmployeeHandler handles the employee roster endpoints.
type EmployeeHandler struct {
	employeeService service.EmployeeService
}

// NewEmployeeHandler creates a new employee handler.
func NewEmployeeHandler(employeeService service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// ListActive godoc
// @Summary List active employees
// @Tags employees
// @Produce json
// @Success 200 {array} model.Employee
// @Router /employees [get]
func (h *EmployeeHandler) ListActive(c echo.Context) error {
	employees, err := h.employeeService.ListActive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employees)
}

// Toggle godoc
// @Summary Flip an employee's active flag
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} model.Employee
// @Failure 404 {object} map[string]string
// @Router /employees/{id}/toggle [put]
func (h *EmployeeHandler) Toggle(c echo.Context) error {
	employee, err := h.employeeService.Toggle(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/employee-directory/internal/logger"
	"github.com/sbilibin2017/employee-directory/internal/models"
)

// EmployeeLister defines the interface that the service must implement.
type EmployeeLister interface {
	List(ctx context.Context) ([]models.EmployeeDB, error)
}

// EmployeeListResponse represents the full employee list
// swagger:model EmployeeListResponse
type EmployeeListResponse struct {
	// Human-readable message
	Message string `json:"message"`

	// All employee records
	Employees []models.EmployeeDB `json:"employees"`
}

// NewGetAllEmployeeHandler returns an HTTP handler that lists all employees.
// @Summary List all employees
// @Description Returns every employee record, newest first.
// @Tags employee
// @Produce json
// @Success 200 {object} handlers.EmployeeListResponse "Employee list"
// @Security BearerAuth
// @Router /employee/getAllEmployee [get]
func NewGetAllEmployeeHandler(svc EmployeeLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		employees, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeStatus(w, http.StatusInternalServerError, "failed to fetch employee")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(EmployeeListResponse{
			Message:   "Employee fetched successfully",
			Employees: employees,
		})
	}
}

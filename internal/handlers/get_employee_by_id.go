package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/employee-directory/internal/apperror"
	"github.com/sbilibin2017/employee-directory/internal/logger"
	"github.com/sbilibin2017/employee-directory/internal/models"
)

// EmployeeGetter defines the interface that the service must implement.
type EmployeeGetter interface {
	Get(ctx context.Context, employeeID string) (*models.EmployeeDB, error)
}

// EmployeeResponse represents a single employee record response
// swagger:model EmployeeResponse
type EmployeeResponse struct {
	// Human-readable message
	Message string `json:"message"`

	// The employee record
	Employee *models.EmployeeDB `json:"employee"`

	// Whether the operation succeeded
	Success bool `json:"success"`
}

// NewGetEmployeeByIDHandler returns an HTTP handler that fetches one employee.
// A missing record answers 400, matching the behavior clients rely on.
// @Summary Get an employee by id
// @Tags employee
// @Produce json
// @Param id path string true "Employee id"
// @Success 200 {object} handlers.EmployeeResponse "Employee record"
// @Failure 400 {object} handlers.StatusResponse "Employee not found"
// @Security BearerAuth
// @Router /employee/getEmployeeById/{id} [get]
func NewGetEmployeeByIDHandler(svc EmployeeGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		employeeID := chi.URLParam(r, "id")
		if employeeID == "" {
			writeStatus(w, http.StatusBadRequest, "Employee ID is required")
			return
		}

		employee, err := svc.Get(r.Context(), employeeID)
		if err != nil {
			switch apperror.GetCode(err) {
			case apperror.CodeNotFound:
				writeStatus(w, http.StatusBadRequest, "Failed to find employee")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeStatus(w, http.StatusInternalServerError, "Failed to find employee")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(EmployeeResponse{
			Message:  "Employee details fetched successfully",
			Employee: employee,
			Success:  true,
		})
	}
}

package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/employee-directory/internal/apperror"
	"github.com/sbilibin2017/employee-directory/internal/logger"
)

// EmployeeDeleter defines the interface that the service must implement.
type EmployeeDeleter interface {
	Delete(ctx context.Context, employeeID string) error
}

// NewDeleteEmployeeHandler returns an HTTP handler that deletes an employee record
// together with its stored image.
// @Summary Delete an employee
// @Tags employee
// @Produce json
// @Param id path string true "Employee id"
// @Success 200 {object} handlers.StatusResponse "Employee deleted"
// @Failure 404 {object} handlers.StatusResponse "Employee not found"
// @Security BearerAuth
// @Router /employee/deleteEmployee/{id} [delete]
func NewDeleteEmployeeHandler(svc EmployeeDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		employeeID := chi.URLParam(r, "id")
		if employeeID == "" {
			writeStatus(w, http.StatusBadRequest, "Employee ID is required")
			return
		}

		if err := svc.Delete(r.Context(), employeeID); err != nil {
			switch apperror.GetCode(err) {
			case apperror.CodeNotFound:
				writeStatus(w, http.StatusNotFound, apperror.GetMessage(err))
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeStatus(w, http.StatusInternalServerError, "Employee deletion failed")
			}
			return
		}

		writeStatus(w, http.StatusOK, "Employee deleted successfully")
	}
}

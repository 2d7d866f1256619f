package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/employee-directory/internal/apperror"
	"github.com/sbilibin2017/employee-directory/internal/logger"
	"github.com/sbilibin2017/employee-directory/internal/models"
	"github.com/sbilibin2017/employee-directory/internal/storage"
	"github.com/sbilibin2017/employee-directory/internal/validation"
)

// EmployeeUpdater defines the interface that the service must implement.
type EmployeeUpdater interface {
	Update(ctx context.Context, employeeID string, in validation.EmployeeInput) (*models.EmployeeDB, error)
}

// NewUpdateEmployeeHandler returns an HTTP handler that updates an employee record.
// @Summary Update an employee
// @Description Applies a partial update from a multipart form. Unsupplied fields keep their prior values. A new image replaces the old file.
// @Tags employee
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Employee id"
// @Param name formData string false "Full name, minimum 3 characters"
// @Param email formData string false "Unique email"
// @Param mobile formData string false "Unique 10-digit mobile number"
// @Param designation formData string false "Designation, minimum 2 characters"
// @Param gender formData string false "Male or Female"
// @Param course formData string false "MCA, BCA or BSC"
// @Param image formData file false "JPEG or PNG image up to 5 MB"
// @Success 200 {object} handlers.StatusResponse "Employee updated"
// @Failure 400 {object} handlers.StatusResponse "Validation or duplicate error"
// @Failure 404 {object} handlers.StatusResponse "Employee not found"
// @Security BearerAuth
// @Router /employee/updateEmployee/{id} [put]
func NewUpdateEmployeeHandler(svc EmployeeUpdater, images ImageSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		employeeID := chi.URLParam(r, "id")
		if employeeID == "" {
			writeStatus(w, http.StatusBadRequest, "Employee ID is required")
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, storage.MaxImageSize+maxFormMemory)

		if err := r.ParseMultipartForm(maxFormMemory); err != nil {
			writeStatus(w, http.StatusBadRequest, "Invalid multipart form")
			return
		}

		imagePath, handled := saveUploadedImage(w, r, images)
		if handled {
			return
		}

		in := employeeInputFromForm(r)
		in.ImagePath = imagePath

		if _, err := svc.Update(r.Context(), employeeID, in); err != nil {
			switch apperror.GetCode(err) {
			case apperror.CodeNotFound:
				writeStatus(w, http.StatusNotFound, apperror.GetMessage(err))
			case apperror.CodeValidation, apperror.CodeDuplicate:
				writeStatus(w, http.StatusBadRequest, apperror.GetMessage(err))
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeStatus(w, http.StatusInternalServerError, "Failed to update employee data")
			}
			return
		}

		writeStatus(w, http.StatusOK, "Employee data updated successfully")
	}
}

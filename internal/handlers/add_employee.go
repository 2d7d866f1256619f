package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/employee-directory/internal/apperror"
	"github.com/sbilibin2017/employee-directory/internal/logger"
	"github.com/sbilibin2017/employee-directory/internal/middlewares"
	"github.com/sbilibin2017/employee-directory/internal/models"
	"github.com/sbilibin2017/employee-directory/internal/storage"
	"github.com/sbilibin2017/employee-directory/internal/validation"
)

// EmployeeCreator defines the interface that the service must implement.
type EmployeeCreator interface {
	Create(ctx context.Context, in validation.EmployeeInput, ownerUserID uuid.UUID) (*models.EmployeeDB, error)
}

// NewAddEmployeeHandler returns an HTTP handler that creates an employee record.
// @Summary Add a new employee
// @Description Creates an employee record from a multipart form with an image upload. Email and mobile must be unique.
// @Tags employee
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Full name, minimum 3 characters"
// @Param email formData string true "Unique email"
// @Param mobile formData string true "Unique 10-digit mobile number"
// @Param designation formData string true "Designation, minimum 2 characters"
// @Param gender formData string true "Male, Female or Other"
// @Param course formData string true "MCA, BCA or BSC"
// @Param image formData file true "JPEG or PNG image up to 5 MB"
// @Success 201 {object} handlers.StatusResponse "Employee created"
// @Failure 400 {object} handlers.StatusResponse "Validation or duplicate error"
// @Security BearerAuth
// @Router /employee/addEmployee [post]
func NewAddEmployeeHandler(svc EmployeeCreator, images ImageSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
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

		ownerUserID := middlewares.GetUserIDFromContext(r.Context())

		if _, err := svc.Create(r.Context(), in, ownerUserID); err != nil {
			switch apperror.GetCode(err) {
			case apperror.CodeValidation, apperror.CodeDuplicate:
				writeStatus(w, http.StatusBadRequest, apperror.GetMessage(err))
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeStatus(w, http.StatusInternalServerError, "Failed to add New Employee")
			}
			return
		}

		writeStatus(w, http.StatusCreated, "Employee Added successfully")
	}
}

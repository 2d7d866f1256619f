package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/sbilibin2017/employee-directory/internal/storage"
	"github.com/sbilibin2017/employee-directory/internal/validation"
)

// maxFormMemory bounds the in-memory portion of multipart parsing;
// larger parts spill to temp files.
const maxFormMemory = 1 << 20

// StatusResponse represents a status response for employee mutations
// swagger:model StatusResponse
type StatusResponse struct {
	// Human-readable message
	Message string `json:"message"`

	// Whether the operation succeeded
	Success bool `json:"success"`
}

// ImageSaver stores an uploaded image and returns its relative path.
type ImageSaver interface {
	Save(ctx context.Context, src io.Reader, originalFilename, contentType string) (string, error)
}

// employeeInputFromForm collects the employee fields of a parsed
// multipart form. Absent fields come back as empty strings.
func employeeInputFromForm(r *http.Request) validation.EmployeeInput {
	return validation.EmployeeInput{
		Name:        r.FormValue("name"),
		Email:       r.FormValue("email"),
		Mobile:      r.FormValue("mobile"),
		Designation: r.FormValue("designation"),
		Gender:      r.FormValue("gender"),
		Course:      r.FormValue("course"),
	}
}

// saveUploadedImage stores the "image" form file if one was supplied.
// It returns the stored relative path ("" when no file was sent) and
// whether an error response has already been written.
func saveUploadedImage(w http.ResponseWriter, r *http.Request, images ImageSaver) (string, bool) {
	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return "", false
	}
	if err != nil {
		writeStatus(w, http.StatusBadRequest, "Invalid image upload")
		return "", true
	}
	defer file.Close()

	imagePath, err := images.Save(r.Context(), file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrUnsupportedImageType), errors.Is(err, storage.ErrImageTooLarge):
			writeStatus(w, http.StatusBadRequest, err.Error())
		default:
			writeStatus(w, http.StatusInternalServerError, "Failed to store image")
		}
		return "", true
	}

	return imagePath, false
}

func writeStatus(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(StatusResponse{Message: message, Success: status < 400})
}

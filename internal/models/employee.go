package models

import (
	"time"

	"github.com/google/uuid"
)

// Allowed gender values. The update path historically accepts only
// Male and Female, the create path additionally accepts Other.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Allowed course values.
const (
	CourseMCA = "MCA"
	CourseBCA = "BCA"
	CourseBSC = "BSC"
)

// DefaultCourse is the schema-level default for the course column.
const DefaultCourse = CourseMCA

// EmployeeDB represents an employee record in the database.
type EmployeeDB struct {
	EmployeeID  string    `json:"id" db:"employee_id"`        // Short opaque identifier, immutable
	Name        string    `json:"name" db:"name"`             // Full name
	Email       string    `json:"email" db:"email"`           // Unique email
	Mobile      int64     `json:"mobile" db:"mobile"`         // Unique 10-digit number
	Designation string    `json:"designation" db:"designation"`
	Gender      string    `json:"gender" db:"gender"`
	Course      string    `json:"course" db:"course"`
	ImagePath   string    `json:"image" db:"image_path"`      // Relative path under the uploads dir, may be empty
	OwnerUserID uuid.UUID `json:"user" db:"owner_user_id"`    // User who created the record
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

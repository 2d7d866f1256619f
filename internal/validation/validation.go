// Package validation holds the pure field checks applied to employee
// input before any store mutation is attempted.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sbilibin2017/employee-directory/internal/apperror"
	"github.com/sbilibin2017/employee-directory/internal/models"
)

var (
	emailRegex  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	mobileRegex = regexp.MustCompile(`^\d{10}$`)
)

// CreateGenders is the gender set accepted on creation.
var CreateGenders = []string{models.GenderMale, models.GenderFemale, models.GenderOther}

// UpdateGenders is the gender set accepted on update. It deliberately
// excludes Other, matching the historical behavior of the update path.
var UpdateGenders = []string{models.GenderMale, models.GenderFemale}

// Courses is the allowed course set.
var Courses = []string{models.CourseMCA, models.CourseBCA, models.CourseBSC}

// EmployeeInput is a candidate field set for an employee record.
// On update, an empty string means the field was not supplied.
type EmployeeInput struct {
	Name        string
	Email       string
	Mobile      string
	Designation string
	Gender      string
	Course      string
	ImagePath   string
}

// ValidateCreate checks a full field set for creation. All fields must be
// present. It returns the normalized input or a validation error naming
// the offending field.
func ValidateCreate(in EmployeeInput) (*EmployeeInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Designation = strings.TrimSpace(in.Designation)

	required := []struct {
		field string
		value string
	}{
		{"name", in.Name},
		{"email", in.Email},
		{"mobile", in.Mobile},
		{"designation", in.Designation},
		{"gender", in.Gender},
		{"course", in.Course},
		{"image", in.ImagePath},
	}
	for _, f := range required {
		if f.value == "" {
			return nil, apperror.InvalidField(f.field,
				"All fields (name, email, mobile, designation, gender, course, image) are required")
		}
	}

	if err := checkName(in.Name); err != nil {
		return nil, err
	}
	if err := checkEmail(in.Email); err != nil {
		return nil, err
	}
	if err := checkMobile(in.Mobile); err != nil {
		return nil, err
	}
	if err := checkDesignation(in.Designation); err != nil {
		return nil, err
	}
	if !contains(CreateGenders, in.Gender) {
		return nil, apperror.InvalidField("gender",
			fmt.Sprintf("Gender must be one of: %s", strings.Join(CreateGenders, ", ")))
	}
	if !contains(Courses, in.Course) {
		return nil, apperror.InvalidField("course",
			fmt.Sprintf("Course must be one of: %s", strings.Join(Courses, ", ")))
	}

	return &in, nil
}

// ValidateUpdate checks a partial field set. Each field is validated only
// if supplied. The gender set is narrower than on create.
func ValidateUpdate(in EmployeeInput) (*EmployeeInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Designation = strings.TrimSpace(in.Designation)

	if in.Name != "" {
		if err := checkName(in.Name); err != nil {
			return nil, err
		}
	}
	if in.Email != "" {
		if err := checkEmail(in.Email); err != nil {
			return nil, err
		}
	}
	if in.Mobile != "" {
		if err := checkMobile(in.Mobile); err != nil {
			return nil, err
		}
	}
	if in.Designation != "" {
		if err := checkDesignation(in.Designation); err != nil {
			return nil, err
		}
	}
	if in.Gender != "" && !contains(UpdateGenders, in.Gender) {
		return nil, apperror.InvalidField("gender", "Gender not allowed")
	}
	if in.Course != "" && !contains(Courses, in.Course) {
		return nil, apperror.InvalidField("course", "Course not listed")
	}

	return &in, nil
}

func checkName(name string) error {
	if len(name) < 3 {
		return apperror.InvalidField("name", "Name must be at least 3 characters long")
	}
	return nil
}

func checkEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return apperror.InvalidField("email", "Invalid email format")
	}
	return nil
}

func checkMobile(mobile string) error {
	if !mobileRegex.MatchString(mobile) {
		return apperror.InvalidField("mobile", "Mobile number must be 10 digits")
	}
	return nil
}

func checkDesignation(designation string) error {
	if len(designation) < 2 {
		return apperror.InvalidField("designation", "Designation must be at least 2 characters long")
	}
	return nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

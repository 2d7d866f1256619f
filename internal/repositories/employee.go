package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/employee-directory/internal/logger"
	"github.com/sbilibin2017/employee-directory/internal/middlewares"
	"github.com/sbilibin2017/employee-directory/internal/models"
)

// ext returns the context transaction when one is present, so mutations
// wrapped by the transaction middleware share a single commit.
func ext(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}

type EmployeeReadRepository struct {
	db *sqlx.DB
}

func NewEmployeeReadRepository(db *sqlx.DB) *EmployeeReadRepository {
	return &EmployeeReadRepository{db: db}
}

// GetByID returns the employee record, or nil if none exists.
func (r *EmployeeReadRepository) GetByID(ctx context.Context, employeeID string) (*models.EmployeeDB, error) {
	const query = `
		SELECT employee_id, name, email, mobile, designation, gender, course,
		       image_path, owner_user_id, created_at, updated_at
		FROM employees
		WHERE employee_id = $1
		LIMIT 1
	`

	var employee models.EmployeeDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &employee, query, employeeID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{employeeID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &employee, nil
}

// List returns all employee records, newest first.
func (r *EmployeeReadRepository) List(ctx context.Context) ([]models.EmployeeDB, error) {
	const query = `
		SELECT employee_id, name, email, mobile, designation, gender, course,
		       image_path, owner_user_id, created_at, updated_at
		FROM employees
		ORDER BY created_at DESC
	`

	employees := make([]models.EmployeeDB, 0)
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &employees, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result_count", len(employees),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return employees, nil
}

// ExistsByEmail reports whether any record other than excludeID holds the
// email. Pass an empty excludeID to check the whole collection.
func (r *EmployeeReadRepository) ExistsByEmail(ctx context.Context, email, excludeID string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM employees
			WHERE email = $1 AND ($2::TEXT = '' OR employee_id <> $2)
		)
	`

	var exists bool
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &exists, query, email, excludeID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email, excludeID},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// ExistsByMobile reports whether any record other than excludeID holds the
// mobile number.
func (r *EmployeeReadRepository) ExistsByMobile(ctx context.Context, mobile int64, excludeID string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM employees
			WHERE mobile = $1 AND ($2::TEXT = '' OR employee_id <> $2)
		)
	`

	var exists bool
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &exists, query, mobile, excludeID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{mobile, excludeID},
		"result", exists,
		"error", err,
	)

	return exists, err
}

type EmployeeWriteRepository struct {
	db *sqlx.DB
}

func NewEmployeeWriteRepository(db *sqlx.DB) *EmployeeWriteRepository {
	return &EmployeeWriteRepository{db: db}
}

// Save inserts a new employee record.
func (r *EmployeeWriteRepository) Save(ctx context.Context, employee models.EmployeeDB) error {
	const query = `
		INSERT INTO employees (employee_id, name, email, mobile, designation,
		                       gender, course, image_path, owner_user_id,
		                       created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
	`
	args := []any{
		employee.EmployeeID, employee.Name, employee.Email, employee.Mobile,
		employee.Designation, employee.Gender, employee.Course,
		employee.ImagePath, employee.OwnerUserID,
	}

	res, err := ext(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Update persists the full merged field set of an existing record.
// The employee id itself is never changed.
func (r *EmployeeWriteRepository) Update(ctx context.Context, employee models.EmployeeDB) error {
	const query = `
		UPDATE employees
		SET name = $2, email = $3, mobile = $4, designation = $5,
		    gender = $6, course = $7, image_path = $8, updated_at = NOW()
		WHERE employee_id = $1
	`
	args := []any{
		employee.EmployeeID, employee.Name, employee.Email, employee.Mobile,
		employee.Designation, employee.Gender, employee.Course,
		employee.ImagePath,
	}

	res, err := ext(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Delete removes the employee record.
func (r *EmployeeWriteRepository) Delete(ctx context.Context, employeeID string) error {
	const query = `DELETE FROM employees WHERE employee_id = $1`

	res, err := ext(ctx, r.db).ExecContext(ctx, query, employeeID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{employeeID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

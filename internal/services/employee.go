package services

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/employee-directory/internal/apperror"
	"github.com/sbilibin2017/employee-directory/internal/logger"
	"github.com/sbilibin2017/employee-directory/internal/models"
	"github.com/sbilibin2017/employee-directory/internal/validation"
)

// EmployeeReader defines read operations over employee records.
type EmployeeReader interface {
	GetByID(ctx context.Context, employeeID string) (*models.EmployeeDB, error)
	List(ctx context.Context) ([]models.EmployeeDB, error)
	ExistsByEmail(ctx context.Context, email, excludeID string) (bool, error)
	ExistsByMobile(ctx context.Context, mobile int64, excludeID string) (bool, error)
}

// EmployeeWriter defines write operations over employee records.
type EmployeeWriter interface {
	Save(ctx context.Context, employee models.EmployeeDB) error
	Update(ctx context.Context, employee models.EmployeeDB) error
	Delete(ctx context.Context, employeeID string) error
}

// ImageRemover deletes stored images. Removal is best-effort and a
// missing file is never an error.
type ImageRemover interface {
	Remove(ctx context.Context, relPath string)
}

// ListCache caches the full employee list.
type ListCache interface {
	Get(ctx context.Context) ([]models.EmployeeDB, error)
	Set(ctx context.Context, employees []models.EmployeeDB) error
	Invalidate(ctx context.Context) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// EmployeeService orchestrates the employee record lifecycle:
// validation, uniqueness checks, store mutation, image cleanup and
// audit event publishing.
type EmployeeService struct {
	readRepo    EmployeeReader
	writeRepo   EmployeeWriter
	images      ImageRemover
	cache       ListCache
	kafkaWriter KafkaWriter
}

// NewEmployeeService creates a new EmployeeService. Cache and Kafka
// writer may be nil; both are optional.
func NewEmployeeService(
	readRepo EmployeeReader,
	writeRepo EmployeeWriter,
	images ImageRemover,
	cache ListCache,
	kafkaWriter KafkaWriter,
) *EmployeeService {
	return &EmployeeService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		images:      images,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// newEmployeeID returns a short opaque identifier for a new record.
func newEmployeeID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// Create validates the full field set, enforces uniqueness of email and
// mobile, assigns a fresh record id and persists the record.
func (s *EmployeeService) Create(ctx context.Context, in validation.EmployeeInput, ownerUserID uuid.UUID) (*models.EmployeeDB, error) {
	validated, err := validation.ValidateCreate(in)
	if err != nil {
		return nil, err
	}

	exists, err := s.readRepo.ExistsByEmail(ctx, validated.Email, "")
	if err != nil {
		logger.Log.Errorw("failed to check email uniqueness", "email", validated.Email, "error", err)
		return nil, err
	}
	if exists {
		return nil, apperror.DuplicateField("email", "Email already exists")
	}

	mobile, _ := strconv.ParseInt(validated.Mobile, 10, 64)
	exists, err = s.readRepo.ExistsByMobile(ctx, mobile, "")
	if err != nil {
		logger.Log.Errorw("failed to check mobile uniqueness", "mobile", validated.Mobile, "error", err)
		return nil, err
	}
	if exists {
		return nil, apperror.DuplicateField("mobile", "Mobile number already exists")
	}

	employee := models.EmployeeDB{
		EmployeeID:  newEmployeeID(),
		Name:        validated.Name,
		Email:       validated.Email,
		Mobile:      mobile,
		Designation: validated.Designation,
		Gender:      validated.Gender,
		Course:      validated.Course,
		ImagePath:   validated.ImagePath,
		OwnerUserID: ownerUserID,
	}

	if err := s.writeRepo.Save(ctx, employee); err != nil {
		logger.Log.Errorw("failed to save employee", "employee_id", employee.EmployeeID, "error", err)
		return nil, err
	}

	s.invalidateListCache(ctx)
	s.publishEvent(ctx, employee.EmployeeID, ownerUserID, models.EmployeeCreated)

	return &employee, nil
}

// Update merges the supplied fields into an existing record. Unsupplied
// fields keep their prior values. A new image replaces the old file,
// which is removed best-effort.
func (s *EmployeeService) Update(ctx context.Context, employeeID string, in validation.EmployeeInput) (*models.EmployeeDB, error) {
	current, err := s.readRepo.GetByID(ctx, employeeID)
	if err != nil {
		logger.Log.Errorw("failed to get employee", "employee_id", employeeID, "error", err)
		return nil, err
	}
	if current == nil {
		return nil, apperror.NotFound("Employee not found")
	}

	validated, err := validation.ValidateUpdate(in)
	if err != nil {
		return nil, err
	}

	if validated.Email != "" {
		exists, err := s.readRepo.ExistsByEmail(ctx, validated.Email, employeeID)
		if err != nil {
			logger.Log.Errorw("failed to check email uniqueness", "email", validated.Email, "error", err)
			return nil, err
		}
		if exists {
			return nil, apperror.DuplicateField("email", "Email already exists")
		}
		current.Email = validated.Email
	}

	if validated.Mobile != "" {
		mobile, _ := strconv.ParseInt(validated.Mobile, 10, 64)
		exists, err := s.readRepo.ExistsByMobile(ctx, mobile, employeeID)
		if err != nil {
			logger.Log.Errorw("failed to check mobile uniqueness", "mobile", validated.Mobile, "error", err)
			return nil, err
		}
		if exists {
			return nil, apperror.DuplicateField("mobile", "Mobile number already exists")
		}
		current.Mobile = mobile
	}

	if validated.Name != "" {
		current.Name = validated.Name
	}
	if validated.Designation != "" {
		current.Designation = validated.Designation
	}
	if validated.Gender != "" {
		current.Gender = validated.Gender
	}
	if validated.Course != "" {
		current.Course = validated.Course
	}
	if validated.ImagePath != "" {
		s.images.Remove(ctx, current.ImagePath)
		current.ImagePath = validated.ImagePath
	}

	if err := s.writeRepo.Update(ctx, *current); err != nil {
		logger.Log.Errorw("failed to update employee", "employee_id", employeeID, "error", err)
		return nil, err
	}

	s.invalidateListCache(ctx)
	s.publishEvent(ctx, employeeID, current.OwnerUserID, models.EmployeeUpdated)

	return current, nil
}

// Delete removes the record and its image file.
func (s *EmployeeService) Delete(ctx context.Context, employeeID string) error {
	current, err := s.readRepo.GetByID(ctx, employeeID)
	if err != nil {
		logger.Log.Errorw("failed to get employee", "employee_id", employeeID, "error", err)
		return err
	}
	if current == nil {
		return apperror.NotFound("Employee not found")
	}

	s.images.Remove(ctx, current.ImagePath)

	if err := s.writeRepo.Delete(ctx, employeeID); err != nil {
		logger.Log.Errorw("failed to delete employee", "employee_id", employeeID, "error", err)
		return err
	}

	s.invalidateListCache(ctx)
	s.publishEvent(ctx, employeeID, current.OwnerUserID, models.EmployeeDeleted)

	return nil
}

// Get returns a single employee record.
func (s *EmployeeService) Get(ctx context.Context, employeeID string) (*models.EmployeeDB, error) {
	employee, err := s.readRepo.GetByID(ctx, employeeID)
	if err != nil {
		logger.Log.Errorw("failed to get employee", "employee_id", employeeID, "error", err)
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NotFound("Employee not found")
	}
	return employee, nil
}

// List returns all employee records, served from the cache when warm.
func (s *EmployeeService) List(ctx context.Context) ([]models.EmployeeDB, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err == nil && cached != nil {
			return cached, nil
		}
	}

	employees, err := s.readRepo.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list employees", "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, employees); err != nil {
			logger.Log.Errorw("failed to cache employee list", "error", err)
		}
	}

	return employees, nil
}

func (s *EmployeeService) invalidateListCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.Log.Errorw("failed to invalidate employee list cache", "error", err)
	}
}

// publishEvent publishes an audit event to Kafka.
func (s *EmployeeService) publishEvent(ctx context.Context, employeeID string, userID uuid.UUID, operation string) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "employee_id", employeeID)
		return
	}

	event := models.EmployeeEvent{
		EventID:    uuid.NewString(),
		Timestamp:  time.Now().Unix(),
		EmployeeID: employeeID,
		UserID:     userID.String(),
		Operation:  operation,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(employeeID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "operation", operation)
	}
}

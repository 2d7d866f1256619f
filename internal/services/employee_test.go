package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/employee-directory/internal/apperror"
	"github.com/sbilibin2017/employee-directory/internal/models"
	"github.com/sbilibin2017/employee-directory/internal/services"
	"github.com/sbilibin2017/employee-directory/internal/validation"
)

func createInput() validation.EmployeeInput {
	return validation.EmployeeInput{
		Name:        "Jane Doe",
		Email:       "jane@x.com",
		Mobile:      "0712345678",
		Designation: "Driver",
		Gender:      "Female",
		Course:      "BCA",
		ImagePath:   "uploads/1700000000000.png",
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockReader := services.NewMockEmployeeReader(ctrl)
		mockWriter := services.NewMockEmployeeWriter(ctrl)
		mockCache := services.NewMockListCache(ctrl)
		mockKafka := services.NewMockKafkaWriter(ctrl)

		svc := services.NewEmployeeService(mockReader, mockWriter, nil, mockCache, mockKafka)

		mockReader.EXPECT().ExistsByEmail(gomock.Any(), "jane@x.com", "").Return(false, nil)
		mockReader.EXPECT().ExistsByMobile(gomock.Any(), int64(712345678), "").Return(false, nil)

		var saved models.EmployeeDB
		mockWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e models.EmployeeDB) error {
				saved = e
				return nil
			})
		mockCache.EXPECT().Invalidate(gomock.Any()).Return(nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		got, err := svc.Create(context.Background(), createInput(), ownerID)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Len(t, got.EmployeeID, 8)
		assert.Equal(t, saved.EmployeeID, got.EmployeeID)
		assert.Equal(t, "Jane Doe", got.Name)
		assert.Equal(t, "jane@x.com", got.Email)
		assert.Equal(t, int64(712345678), got.Mobile)
		assert.Equal(t, ownerID, got.OwnerUserID)
	})

	t.Run("validation failure skips repositories", func(t *testing.T) {
		mockReader := services.NewMockEmployeeReader(ctrl)
		mockWriter := services.NewMockEmployeeWriter(ctrl)

		svc := services.NewEmployeeService(mockReader, mockWriter, nil, nil, nil)

		in := createInput()
		in.Mobile = "12a4567890"

		got, err := svc.Create(context.Background(), in, ownerID)
		assert.Nil(t, got)
		assert.Equal(t, apperror.CodeValidation, apperror.GetCode(err))
	})

	t.Run("duplicate email", func(t *testing.T) {
		mockReader := services.NewMockEmployeeReader(ctrl)
		mockWriter := services.NewMockEmployeeWriter(ctrl)

		svc := services.NewEmployeeService(mockReader, mockWriter, nil, nil, nil)

		mockReader.EXPECT().ExistsByEmail(gomock.Any(), "jane@x.com", "").Return(true, nil)

		got, err := svc.Create(context.Background(), createInput(), ownerID)
		assert.Nil(t, got)
		assert.Equal(t, apperror.CodeDuplicate, apperror.GetCode(err))

		var appErr *apperror.Error
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, "email", appErr.Field)
	})

	t.Run("duplicate mobile", func(t *testing.T) {
		mockReader := services.NewMockEmployeeReader(ctrl)
		mockWriter := services.NewMockEmployeeWriter(ctrl)

		svc := services.NewEmployeeService(mockReader, mockWriter, nil, nil, nil)

		mockReader.EXPECT().ExistsByEmail(gomock.Any(), "jane@x.com", "").Return(false, nil)
		mockReader.EXPECT().ExistsByMobile(gomock.Any(), int64(712345678), "").Return(true, nil)

		got, err := svc.Create(context.Background(), createInput(), ownerID)
		assert.Nil(t, got)

		var appErr *apperror.Error
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeDuplicate, appErr.Code)
		assert.Equal(t, "mobile", appErr.Field)
	})

	t.Run("save error", func(t *testing.T) {
		mockReader := services.NewMockEmployeeReader(ctrl)
		mockWriter := services.NewMockEmployeeWriter(ctrl)

		svc := services.NewEmployeeService(mockReader, mockWriter, nil, nil, nil)

		mockReader.EXPECT().ExistsByEmail(gomock.Any(), "jane@x.com", "").Return(false, nil)
		mockReader.EXPECT().ExistsByMobile(gomock.Any(), int64(712345678), "").Return(false, nil)
		mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

		got, err := svc.Create(context.Background(), createInput(), ownerID)
		assert.Nil(t, got)
		assert.EqualError(t, err, "db error")
	})
}

func existingEmployee(ownerID uuid.UUID) *models.EmployeeDB {
	return &models.EmployeeDB{
		EmployeeID:  "a1b2c3d4",
		Name:        "Jane Doe",
		Email:       "jane@x.com",
		Mobile:      712345678,
		Designation: "Driver",
		Gender:      models.GenderFemale,
		Course:      models.CourseBCA,
		ImagePath:   "uploads/old.png",
		OwnerUserID: ownerID,
	}
}

func TestEmployeeService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()

	t.Run("not found", func(t *testing.T) {
		mockReader := services.NewMockEmployeeReader(ctrl)
		mockWriter := services.NewMockEmployeeWriter(ctrl)

		svc := services.NewEmployeeService(mockReader, mockWriter, nil, nil, nil)

		mockReader.EXPECT().GetByID(gomock.Any(), "missing1").Return(nil, nil)

		got, err := svc.Update(context.Background(), "missing1", validation.EmployeeInput{Name: "New Name"})
		assert.Nil(t, got)
		assert.Equal(t, apperror.CodeNotFound, apperror.GetCode(err))
	})

	t.Run("partial update keeps unsupplied fields", func(t *testing.T) {
		mockReader := services.NewMockEmployeeReader(ctrl)
		mockWriter := services.NewMockEmployeeWriter(ctrl)
		mockCache := services.NewMockListCache(ctrl)

		svc := services.NewEmployeeService(mockReader, mockWriter, nil, mockCache, nil)

		mockReader.EXPECT().GetByID(gomock.Any(), "a1b2c3d4").Return(existingEmployee(ownerID), nil)

		var updated models.EmployeeDB
		mockWriter.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e models.EmployeeDB) error {
				updated = e
				return nil
			})
		mockCache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		got, err := svc.Update(context.Background(), "a1b2c3d4", validation.EmployeeInput{Designation: "Manager"})
		assert.NoError(t, err)
		assert.Equal(t, "Manager", got.Designation)
		assert.Equal(t, "Jane Doe", updated.Name)
		assert.Equal(t, "jane@x.com", updated.Email)
		assert.Equal(t, int64(712345678), updated.Mobile)
		assert.Equal(t, "uploads/old.png", updated.ImagePath)
		assert.Equal(t, "a1b2c3d4", updated.EmployeeID)
	})

	t.Run("email change checks uniqueness excluding self", func(t *testing.T) {
		mockReader := services.NewMockEmployeeReader(ctrl)
		mockWriter := services.NewMockEmployeeWriter(ctrl)

		svc := services.NewEmployeeService(mockReader, mockWriter, nil, nil, nil)

		mockReader.EXPECT().GetByID(gomock.Any(), "a1b2c3d4").Return(existingEmployee(ownerID), nil)
		mockReader.EXPECT().ExistsByEmail(gomock.Any(), "taken@x.com", "a1b2c3d4").Return(true, nil)

		got, err := svc.Update(context.Background(), "a1b2c3d4", validation.EmployeeInput{Email: "taken@x.com"})
		assert.Nil(t, got)

		var appErr *apperror.Error
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeDuplicate, appErr.Code)
		assert.Equal(t, "email", appErr.Field)
	})

	t.Run("new image removes previous file", func(t *testing.T) {
		mockReader := services.NewMockEmployeeReader(ctrl)
		mockWriter := services.NewMockEmployeeWriter(ctrl)
		mockImages := services.NewMockImageRemover(ctrl)

		svc := services.NewEmployeeService(mockReader, mockWriter, mockImages, nil, nil)

		mockReader.EXPECT().GetByID(gomock.Any(), "a1b2c3d4").Return(existingEmployee(ownerID), nil)
		mockImages.EXPECT().Remove(gomock.Any(), "uploads/old.png")
		mockWriter.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		got, err := svc.Update(context.Background(), "a1b2c3d4", validation.EmployeeInput{ImagePath: "uploads/new.png"})
		assert.NoError(t, err)
		assert.Equal(t, "uploads/new.png", got.ImagePath)
	})

	t.Run("gender Other rejected on update", func(t *testing.T) {
		mockReader := services.NewMockEmployeeReader(ctrl)
		mockWriter := services.NewMockEmployeeWriter(ctrl)

		svc := services.NewEmployeeService(mockReader, mockWriter, nil, nil, nil)

		mockReader.EXPECT().GetByID(gomock.Any(), "a1b2c3d4").Return(existingEmployee(ownerID), nil)

		got, err := svc.Update(context.Background(), "a1b2c3d4", validation.EmployeeInput{Gender: "Other"})
		assert.Nil(t, got)
		assert.Equal(t, apperror.CodeValidation, apperror.GetCode(err))
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()

	t.Run("not found", func(t *testing.T) {
		mockReader := services.NewMockEmployeeReader(ctrl)
		mockWriter := services.NewMockEmployeeWriter(ctrl)

		svc := services.NewEmployeeService(mockReader, mockWriter, nil, nil, nil)

		mockReader.EXPECT().GetByID(gomock.Any(), "missing1").Return(nil, nil)

		err := svc.Delete(context.Background(), "missing1")
		assert.Equal(t, apperror.CodeNotFound, apperror.GetCode(err))
	})

	t.Run("success removes record and image", func(t *testing.T) {
		mockReader := services.NewMockEmployeeReader(ctrl)
		mockWriter := services.NewMockEmployeeWriter(ctrl)
		mockImages := services.NewMockImageRemover(ctrl)
		mockCache := services.NewMockListCache(ctrl)
		mockKafka := services.NewMockKafkaWriter(ctrl)

		svc := services.NewEmployeeService(mockReader, mockWriter, mockImages, mockCache, mockKafka)

		mockReader.EXPECT().GetByID(gomock.Any(), "a1b2c3d4").Return(existingEmployee(ownerID), nil)
		mockImages.EXPECT().Remove(gomock.Any(), "uploads/old.png")
		mockWriter.EXPECT().Delete(gomock.Any(), "a1b2c3d4").Return(nil)
		mockCache.EXPECT().Invalidate(gomock.Any()).Return(nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Delete(context.Background(), "a1b2c3d4")
		assert.NoError(t, err)
	})

	t.Run("delete error", func(t *testing.T) {
		mockReader := services.NewMockEmployeeReader(ctrl)
		mockWriter := services.NewMockEmployeeWriter(ctrl)
		mockImages := services.NewMockImageRemover(ctrl)

		svc := services.NewEmployeeService(mockReader, mockWriter, mockImages, nil, nil)

		mockReader.EXPECT().GetByID(gomock.Any(), "a1b2c3d4").Return(existingEmployee(ownerID), nil)
		mockImages.EXPECT().Remove(gomock.Any(), "uploads/old.png")
		mockWriter.EXPECT().Delete(gomock.Any(), "a1b2c3d4").Return(errors.New("db error"))

		err := svc.Delete(context.Background(), "a1b2c3d4")
		assert.EqualError(t, err, "db error")
	})
}

func TestEmployeeService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()

	mockReader := services.NewMockEmployeeReader(ctrl)
	svc := services.NewEmployeeService(mockReader, nil, nil, nil, nil)

	t.Run("found", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), "a1b2c3d4").Return(existingEmployee(ownerID), nil)

		got, err := svc.Get(context.Background(), "a1b2c3d4")
		assert.NoError(t, err)
		assert.Equal(t, "Jane Doe", got.Name)
	})

	t.Run("not found", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), "missing1").Return(nil, nil)

		got, err := svc.Get(context.Background(), "missing1")
		assert.Nil(t, got)
		assert.Equal(t, apperror.CodeNotFound, apperror.GetCode(err))
	})
}

func TestEmployeeService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	employees := []models.EmployeeDB{*existingEmployee(ownerID)}

	t.Run("cache hit", func(t *testing.T) {
		mockReader := services.NewMockEmployeeReader(ctrl)
		mockCache := services.NewMockListCache(ctrl)

		svc := services.NewEmployeeService(mockReader, nil, nil, mockCache, nil)

		mockCache.EXPECT().Get(gomock.Any()).Return(employees, nil)

		got, err := svc.List(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, employees, got)
	})

	t.Run("cache miss falls back to store", func(t *testing.T) {
		mockReader := services.NewMockEmployeeReader(ctrl)
		mockCache := services.NewMockListCache(ctrl)

		svc := services.NewEmployeeService(mockReader, nil, nil, mockCache, nil)

		mockCache.EXPECT().Get(gomock.Any()).Return(nil, nil)
		mockReader.EXPECT().List(gomock.Any()).Return(employees, nil)
		mockCache.EXPECT().Set(gomock.Any(), employees).Return(nil)

		got, err := svc.List(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, employees, got)
	})

	t.Run("no cache configured", func(t *testing.T) {
		mockReader := services.NewMockEmployeeReader(ctrl)

		svc := services.NewEmployeeService(mockReader, nil, nil, nil, nil)

		mockReader.EXPECT().List(gomock.Any()).Return(employees, nil)

		got, err := svc.List(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, employees, got)
	})

	t.Run("store error", func(t *testing.T) {
		mockReader := services.NewMockEmployeeReader(ctrl)

		svc := services.NewEmployeeService(mockReader, nil, nil, nil, nil)

		mockReader.EXPECT().List(gomock.Any()).Return(nil, errors.New("db error"))

		got, err := svc.List(context.Background())
		assert.Nil(t, got)
		assert.EqualError(t, err, "db error")
	})
}

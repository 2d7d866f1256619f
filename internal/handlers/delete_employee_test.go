package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/employee-directory/internal/apperror"
)

func TestDeleteEmployeeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		employeeID   string
		mockSetup    func(m *MockEmployeeDeleter)
		expectedCode int
		expectedBody map[string]interface{}
	}{
		{
			name:       "success",
			employeeID: "a1b2c3d4",
			mockSetup: func(m *MockEmployeeDeleter) {
				m.EXPECT().Delete(gomock.Any(), "a1b2c3d4").Return(nil)
			},
			expectedCode: 200,
			expectedBody: map[string]interface{}{"message": "Employee deleted successfully", "success": true},
		},
		{
			name:       "employee not found",
			employeeID: "missing1",
			mockSetup: func(m *MockEmployeeDeleter) {
				m.EXPECT().Delete(gomock.Any(), "missing1").Return(apperror.NotFound("Employee not found"))
			},
			expectedCode: 404,
			expectedBody: map[string]interface{}{"message": "Employee not found", "success": false},
		},
		{
			name:       "internal server error",
			employeeID: "a1b2c3d4",
			mockSetup: func(m *MockEmployeeDeleter) {
				m.EXPECT().Delete(gomock.Any(), "a1b2c3d4").Return(errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]interface{}{"message": "Employee deletion failed", "success": false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockEmployeeDeleter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewDeleteEmployeeHandler(mockSvc)

			req := httptest.NewRequest(http.MethodDelete, "/employee/deleteEmployee/"+tt.employeeID, nil)
			req = withURLParam(req, "id", tt.employeeID)

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]interface{}
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}

package update

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jayden648/shoesclean/internal/lib/apperr"
	"github.com/jayden648/shoesclean/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Update(ctx context.Context, id int, rec models.ServiceRecord) (*models.Service, error) {
	args := m.Called(ctx, id, rec)
	if res := args.Get(0); res != nil {
		return res.(*models.Service), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestUpdateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	description := "Full restoration"
	duration := 60

	tests := []struct {
		name           string
		id             string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "successful update",
			id:   "5",
			body: `{"name":"Deep Clean","description":"  Full restoration ","price":45.5,"duration_minutes":60}`,
			setupMock: func(m *MockService) {
				rec := models.ServiceRecord{Name: "Deep Clean", Description: &description, Price: 45.5, DurationMinutes: &duration}
				m.On("Update", mock.Anything, 5, rec).Return(&models.Service{ID: 5, Name: "Deep Clean"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"message":"Service updated successfully"`,
		},
		{
			name:           "invalid id",
			id:             "0",
			body:           `{"name":"Deep Clean","price":1}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"Invalid ID format"`,
		},
		{
			name:           "invalid payload",
			id:             "5",
			body:           `{"name":"   ","price":1}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"Name is required and must be a non-empty string"`,
		},
		{
			name: "missing service",
			id:   "999999",
			body: `{"name":"Deep Clean","price":1}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, 999999, mock.Anything).Return(nil, apperr.NotFound("Service not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"Service not found"`,
		},
		{
			name: "storage failure",
			id:   "5",
			body: `{"name":"Deep Clean","price":1}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, 5, mock.Anything).Return(nil, apperr.Storage(errors.New("timeout")))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"Failed to update service"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)
			req := httptest.NewRequest(http.MethodPut, "/api/services/"+tt.id, strings.NewReader(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}

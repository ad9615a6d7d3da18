package remove

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
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

func (m *MockService) Remove(ctx context.Context, id int) (*models.Service, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*models.Service), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestRemoveHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name           string
		id             string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "successful delete",
			id:   "3",
			setupMock: func(m *MockService) {
				m.On("Remove", mock.Anything, 3).Return(&models.Service{ID: 3, Name: "Basic Wash"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"deletedService":{"id":3,"name":"Basic Wash"`,
		},
		{
			name:           "invalid id",
			id:             "abc",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"Invalid ID format"`,
		},
		{
			name: "missing service",
			id:   "999999",
			setupMock: func(m *MockService) {
				m.On("Remove", mock.Anything, 999999).Return(nil, apperr.NotFound("Service not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"Service not found"`,
		},
		{
			name: "storage failure",
			id:   "3",
			setupMock: func(m *MockService) {
				m.On("Remove", mock.Anything, 3).Return(nil, apperr.Storage(errors.New("db error")))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"Failed to delete service"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)
			req := httptest.NewRequest(http.MethodDelete, "/api/services/"+tt.id, nil)
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

package read

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

func (m *MockService) Read(ctx context.Context, id int) (*models.Service, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*models.Service), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestReadHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name           string
		id             string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "existing service",
			id:   "42",
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, 42).Return(&models.Service{ID: 42, Name: "Basic Wash", Price: 25000}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"Basic Wash"`,
		},
		{
			name:           "non numeric id",
			id:             "abc",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"error":"Invalid ID format"}`,
		},
		{
			name:           "negative id",
			id:             "-3",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"Invalid ID format"`,
		},
		{
			name: "missing service",
			id:   "999999",
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, 999999).Return(nil, apperr.NotFound("Service not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"success":false,"error":"Service not found"}`,
		},
		{
			name: "storage failure",
			id:   "7",
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, 7).Return(nil, apperr.Storage(errors.New("db error")))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"Failed to fetch service"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/api/services/"+tt.id, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())
			mockService.AssertExpectations(t)
		})
	}
}

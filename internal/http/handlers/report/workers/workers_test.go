package workers

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/paytracker/internal/report"
)

// MockService реализует интерфейс workers.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) WorkerInsights() []report.WorkerInsights {
	args := m.Called()
	return args.Get(0).([]report.WorkerInsights)
}

func TestWorkersHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "аналитика по двум работникам",
			setupMock: func(m *MockService) {
				m.On("WorkerInsights").Return([]report.WorkerInsights{
					{WorkerID: "w-1", Name: "Maria Garcia", TotalEarned: 185, Sessions: 2},
					{WorkerID: "w-2", Name: "James Wilson", TotalPending: 105, Sessions: 1},
				})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"total_earned":185`,
		},
		{
			name: "команда пуста",
			setupMock: func(m *MockService) {
				m.On("WorkerInsights").Return([]report.WorkerInsights{})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"count":0`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/reports/workers", nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}

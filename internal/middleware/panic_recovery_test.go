package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lifeos-finance/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// PanicRecoveryTestSuite defines the test suite for panic recovery middleware
type PanicRecoveryTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

// SetupTest runs before each test
func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
}

// TestPanicRecoveryTestSuite runs the test suite
func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

// TestPanicRecovery_RecoversFromPanic tests that panics become 500 responses
func (s *PanicRecoveryTestSuite) TestPanicRecovery_RecoversFromPanic() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		panic("something went badly wrong")
	})

	s.NotPanics(func() {
		err := handler(c)
		s.NoError(err)
	})

	s.Equal(http.StatusInternalServerError, rec.Code)

	var response errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(string(errors.SystemInternalError), response.Error.Code)
	// Panic detail must not leak to the client
	s.NotContains(rec.Body.String(), "something went badly wrong")
}

// TestPanicRecovery_UsesTraceIDFromContext tests trace ID propagation into the error body
func (s *PanicRecoveryTestSuite) TestPanicRecovery_UsesTraceIDFromContext() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-abc-123")

	handler := PanicRecovery()(func(c echo.Context) error {
		panic("boom")
	})

	s.NoError(handler(c))

	var response errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("trace-abc-123", response.Error.TraceID)
}

// TestPanicRecovery_UnknownTraceID tests the fallback when no trace ID is set
func (s *PanicRecoveryTestSuite) TestPanicRecovery_UnknownTraceID() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		panic("boom")
	})

	s.NoError(handler(c))

	var response errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("unknown", response.Error.TraceID)
}

// TestPanicRecovery_PassesThroughWithoutPanic tests normal requests are untouched
func (s *PanicRecoveryTestSuite) TestPanicRecovery_PassesThroughWithoutPanic() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	s.NoError(handler(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "ok")
}

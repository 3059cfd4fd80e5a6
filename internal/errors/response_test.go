package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

// SetupTest runs before each test
func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

// TestNewErrorResponse_BasicUsage tests creating a basic error response
func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(PeriodInvalidMonth, s.traceID)

	s.NotNil(response)
	s.Equal("PERIOD_001", response.Error.Code)
	s.Equal("Month must be between 1 and 12", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

// TestNewErrorResponse_WithDetails tests creating error response with details
func (s *ResponseTestSuite) TestNewErrorResponse_WithDetails() {
	details := []string{"Field validation failed", "Description is required"}
	response := NewErrorResponse(ValidationGeneral, s.traceID, WithDetails(details...))

	s.NotNil(response)
	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal("Validation failed", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Equal(details, response.Error.Details)
}

// TestNewErrorResponse_WithCustomMessage tests creating error response with custom message
func (s *ResponseTestSuite) TestNewErrorResponse_WithCustomMessage() {
	customMessage := "Custom error message for specific context"
	response := NewErrorResponse(SystemInternalError, s.traceID, WithMessage(customMessage))

	s.NotNil(response)
	s.Equal("SYSTEM_001", response.Error.Code)
	s.Equal(customMessage, response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
}

// TestNewErrorResponse_WithMultipleOptions tests using multiple functional options
func (s *ResponseTestSuite) TestNewErrorResponse_WithMultipleOptions() {
	customMessage := "Custom message"
	details := []string{"Detail 1", "Detail 2"}
	response := NewErrorResponse(
		TransactionNotFound,
		s.traceID,
		WithMessage(customMessage),
		WithDetails(details...),
	)

	s.NotNil(response)
	s.Equal("TRANSACTION_001", response.Error.Code)
	s.Equal(customMessage, response.Error.Message)
	s.Equal(details, response.Error.Details)
	s.Equal(s.traceID, response.Error.TraceID)
}

// TestNewValidationError_WithFieldErrors tests creating validation error from field map
func (s *ResponseTestSuite) TestNewValidationError_WithFieldErrors() {
	fieldErrors := map[string]string{
		"amount": "must be greater than zero",
	}
	response := NewValidationError(fieldErrors, s.traceID)

	s.NotNil(response)
	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal("Validation failed", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Len(response.Error.Details, 1)
	s.Contains(response.Error.Details, "amount: must be greater than zero")
}

// TestNewValidationError_EmptyFieldErrors tests validation error with no field errors
func (s *ResponseTestSuite) TestNewValidationError_EmptyFieldErrors() {
	response := NewValidationError(map[string]string{}, s.traceID)

	s.NotNil(response)
	s.Equal("VALIDATION_001", response.Error.Code)
	s.Empty(response.Error.Details)
}

// TestWrapSystemError tests wrapping an internal error
func (s *ResponseTestSuite) TestWrapSystemError() {
	internalErr := errors.New("connection refused: database host unreachable")
	response, returnedErr := WrapSystemError(internalErr, s.traceID)

	s.NotNil(response)
	s.Equal("SYSTEM_001", response.Error.Code)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Equal(internalErr, returnedErr)

	// Internal detail never reaches the client payload
	payload, err := response.ToJSON()
	s.Require().NoError(err)
	s.NotContains(string(payload), "connection refused")
}

// TestToJSON tests JSON serialization of error responses
func (s *ResponseTestSuite) TestToJSON() {
	response := NewErrorResponse(CardNotFound, s.traceID, WithDetails("card 1234 is unknown"))

	payload, err := response.ToJSON()
	s.Require().NoError(err)

	var decoded ErrorResponse
	s.Require().NoError(json.Unmarshal(payload, &decoded))
	s.Equal("CARD_001", decoded.Error.Code)
	s.Equal("Card not found", decoded.Error.Message)
	s.Equal([]string{"card 1234 is unknown"}, decoded.Error.Details)
	s.Equal(s.traceID, decoded.Error.TraceID)
}

// TestGetHTTPStatus tests HTTP status mapping for error codes
func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected int
	}{
		{"Period Invalid Month", PeriodInvalidMonth, http.StatusBadRequest},
		{"Period Invalid Year", PeriodInvalidYear, http.StatusBadRequest},
		{"Validation General", ValidationGeneral, http.StatusBadRequest},
		{"Transaction Invalid Amount", TransactionInvalidAmount, http.StatusBadRequest},
		{"Transaction Not Found", TransactionNotFound, http.StatusNotFound},
		{"Account Not Found", AccountNotFound, http.StatusNotFound},
		{"Card Not Found", CardNotFound, http.StatusNotFound},
		{"Transaction Ambiguous Source", TransactionAmbiguousSource, http.StatusUnprocessableEntity},
		{"Transaction Invalid Installments", TransactionInvalidInstallments, http.StatusUnprocessableEntity},
		{"Account Inactive", AccountInactive, http.StatusUnprocessableEntity},
		{"Rate Limit Exceeded", SystemRateLimitExceeded, http.StatusTooManyRequests},
		{"Service Unavailable", SystemServiceUnavailable, http.StatusServiceUnavailable},
		{"System Internal Error", SystemInternalError, http.StatusInternalServerError},
		{"System Database Error", SystemDatabaseError, http.StatusInternalServerError},
		{"Unknown Code", "UNKNOWN_999", http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetHTTPStatus(tc.code))
		})
	}
}

// TestErrorResponse_GetHTTPStatus tests status resolution from the response itself
func (s *ResponseTestSuite) TestErrorResponse_GetHTTPStatus() {
	response := NewErrorResponse(TransactionNotFound, s.traceID)
	s.Equal(http.StatusNotFound, response.GetHTTPStatus())
}

// TestIsClientError tests classification of 4xx responses
func (s *ResponseTestSuite) TestIsClientError() {
	clientErr := NewErrorResponse(PeriodInvalidMonth, s.traceID)
	s.True(clientErr.IsClientError())
	s.False(clientErr.IsServerError())
}

// TestIsServerError tests classification of 5xx responses
func (s *ResponseTestSuite) TestIsServerError() {
	serverErr := NewErrorResponse(SystemDatabaseError, s.traceID)
	s.True(serverErr.IsServerError())
	s.False(serverErr.IsClientError())
}

// TestString tests the string representation of error responses
func (s *ResponseTestSuite) TestString() {
	response := NewErrorResponse(AccountNotFound, s.traceID)
	s.Equal("[ACCOUNT_001] Account not found (trace: "+s.traceID+")", response.String())
}

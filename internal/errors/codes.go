package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Period error codes (PERIOD_*)
const (
	PeriodInvalidMonth ErrorCode = "PERIOD_001"
	PeriodInvalidYear  ErrorCode = "PERIOD_002"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound            ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount       ErrorCode = "TRANSACTION_002"
	TransactionInvalidKind         ErrorCode = "TRANSACTION_003"
	TransactionInvalidCategory     ErrorCode = "TRANSACTION_004"
	TransactionAmbiguousSource     ErrorCode = "TRANSACTION_005"
	TransactionInvalidInstallments ErrorCode = "TRANSACTION_006"
	TransactionValidationFailed    ErrorCode = "TRANSACTION_007"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound    ErrorCode = "ACCOUNT_001"
	AccountInactive    ErrorCode = "ACCOUNT_002"
	AccountInvalidType ErrorCode = "ACCOUNT_003"
)

// Card error codes (CARD_*)
const (
	CardNotFound     ErrorCode = "CARD_001"
	CardInactive     ErrorCode = "CARD_002"
	CardInvalidBrand ErrorCode = "CARD_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Period errors
	PeriodInvalidMonth: "Month must be between 1 and 12",
	PeriodInvalidYear:  "Year is outside the supported range",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Transaction errors
	TransactionNotFound:            "Transaction not found",
	TransactionInvalidAmount:       "Transaction amount must be positive",
	TransactionInvalidKind:         "Transaction kind must be debit or credit",
	TransactionInvalidCategory:     "Unknown transaction category",
	TransactionAmbiguousSource:     "Transaction must reference exactly one account or card",
	TransactionInvalidInstallments: "Installment plans require a card debit with 1 to 60 installments",
	TransactionValidationFailed:    "Transaction validation failed",

	// Account errors
	AccountNotFound:    "Account not found",
	AccountInactive:    "Account is inactive",
	AccountInvalidType: "Invalid account type",

	// Card errors
	CardNotFound:     "Card not found",
	CardInactive:     "Card is inactive",
	CardInvalidBrand: "Invalid card brand",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}

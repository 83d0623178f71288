// Package errors provides standardized error handling for BPMN workflow integration.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeTemplateNotFound ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrCodeCategoryNotFound ErrorCode = "CATEGORY_NOT_FOUND"

	ErrCodeFieldValidationFailed ErrorCode = "FIELD_VALIDATION_FAILED"
	ErrCodeUnsupportedLanguage   ErrorCode = "UNSUPPORTED_LANGUAGE"
	ErrCodeRenderFailed          ErrorCode = "RENDER_FAILED"

	ErrCodeRemoteUnavailable ErrorCode = "REMOTE_UNAVAILABLE"

	ErrCodeDraftDecodeFailed ErrorCode = "DRAFT_DECODE_FAILED"
	ErrCodeDraftStoreFailed  ErrorCode = "DRAFT_STORE_FAILED"

	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeArchiveInsertFailed      ErrorCode = "ARCHIVE_INSERT_FAILED"
	ErrCodeLetterNotFound           ErrorCode = "LETTER_NOT_FOUND"

	ErrCodeNotificationSendFailed ErrorCode = "NOTIFICATION_SEND_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}

	if e.ErrorVariables != nil {
		for k, v := range e.ErrorVariables {
			vars[k] = v
		}
	}

	return vars
}

// ==========================
// 3. Error Constructors
// ==========================

// NewTemplateNotFoundError creates a non-retryable template lookup error.
func NewTemplateNotFoundError(templateID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTemplateNotFound,
		Message:   "Template not found in catalog",
		Details:   fmt.Sprintf("templateId: %s", templateID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCategoryNotFoundError creates a non-retryable category lookup error.
func NewCategoryNotFoundError(categoryID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeCategoryNotFound,
		Message:   "Category not found in catalog",
		Details:   fmt.Sprintf("categoryId: %s", categoryID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewFieldValidationFailedError creates a non-retryable validation error with
// the missing field names attached for the form layer.
func NewFieldValidationFailedError(missingFields []string, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeFieldValidationFailed,
		Message:   "Required field validation failed",
		Details:   details,
		Retryable: false,
		Metadata:  map[string]interface{}{"missingFields": missingFields},
		Timestamp: time.Now().UTC(),
	}
}

// NewUnsupportedLanguageError creates a non-retryable error for a template
// that has no body in the requested language.
func NewUnsupportedLanguageError(templateID, language string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnsupportedLanguage,
		Message:   "Template has no body for requested language",
		Details:   fmt.Sprintf("templateId: %s, language: %s", templateID, language),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRenderFailedError creates a non-retryable render error.
func NewRenderFailedError(templateID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRenderFailed,
		Message:   "Letter rendering failed",
		Details:   fmt.Sprintf("templateId: %s, error: %s", templateID, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRemoteUnavailableError creates a retryable remote generation error.
func NewRemoteUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRemoteUnavailable,
		Message:   "Remote text-generation endpoint unavailable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDraftDecodeFailedError creates a non-retryable draft decode error. The
// stored blob is corrupt, so retrying the read cannot help.
func NewDraftDecodeFailedError(sessionID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDraftDecodeFailed,
		Message:   "Stored draft could not be decoded",
		Details:   fmt.Sprintf("sessionId: %s, error: %s", sessionID, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDraftStoreFailedError creates a retryable draft persistence error.
func NewDraftStoreFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDraftStoreFailed,
		Message:   "Draft persistence failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseConnectionFailedError creates a retryable database connection error.
func NewDatabaseConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseConnectionFailed,
		Message:   "Database connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewArchiveInsertFailedError creates a retryable archive insert error.
func NewArchiveInsertFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeArchiveInsertFailed,
		Message:   "Letter archive insert failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewLetterNotFoundError creates a non-retryable archive lookup error.
func NewLetterNotFoundError(letterID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeLetterNotFound,
		Message:   "Letter not found in archive",
		Details:   fmt.Sprintf("letterId: %s", letterID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotificationSendFailedError creates a retryable notification send error.
func NewNotificationSendFailedError(notificationType string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationSendFailed,
		Message:   "Notification delivery failed",
		Details:   fmt.Sprintf("type: %s, error: %s", notificationType, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// Generic constructors

func NewBusinessRuleError(message, details string) *StandardError {
	return &StandardError{
		Code:      "BUSINESS_RULE_VIOLATION",
		Message:   message,
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewExternalServiceError(service string, err error) *StandardError {
	return &StandardError{
		Code:      "EXTERNAL_SERVICE_ERROR",
		Message:   fmt.Sprintf("External service '%s' error", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewTimeoutError(service string, err error) *StandardError {
	return &StandardError{
		Code:      "TIMEOUT_ERROR",
		Message:   fmt.Sprintf("Service '%s' timeout", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewResourceNotFoundError(service, details string) *StandardError {
	return &StandardError{
		Code:      "RESOURCE_NOT_FOUND",
		Message:   fmt.Sprintf("Resource not found in %s", service),
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 4. Error Conversion to BPMN
// ==========================

// BPMNErrorMapping maps internal error codes to BPMN error codes. The codes
// are identical on both sides so workflow catch events match 1:1.
var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeTemplateNotFound:         "TEMPLATE_NOT_FOUND",
	ErrCodeCategoryNotFound:         "CATEGORY_NOT_FOUND",
	ErrCodeFieldValidationFailed:    "FIELD_VALIDATION_FAILED",
	ErrCodeUnsupportedLanguage:      "UNSUPPORTED_LANGUAGE",
	ErrCodeRenderFailed:             "RENDER_FAILED",
	ErrCodeRemoteUnavailable:        "REMOTE_UNAVAILABLE",
	ErrCodeDraftDecodeFailed:        "DRAFT_DECODE_FAILED",
	ErrCodeDraftStoreFailed:         "DRAFT_STORE_FAILED",
	ErrCodeDatabaseConnectionFailed: "DATABASE_CONNECTION_FAILED",
	ErrCodeArchiveInsertFailed:      "ARCHIVE_INSERT_FAILED",
	ErrCodeLetterNotFound:           "LETTER_NOT_FOUND",
	ErrCodeNotificationSendFailed:   "NOTIFICATION_SEND_FAILED",
}

// GetRetryCount returns the recommended retry count per error code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeDatabaseConnectionFailed,
		ErrCodeArchiveInsertFailed,
		ErrCodeDraftStoreFailed,
		ErrCodeNotificationSendFailed:
		return 3 // Retryable technical errors

	case ErrCodeRemoteUnavailable:
		return 1 // Single retry; after that the fallback letter takes over

	default:
		return 0 // Business errors: no retry
	}
}

// ConvertToBPMNError converts a StandardError to a BPMNError for Camunda.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, exists := BPMNErrorMapping[stdErr.Code]
	if !exists {
		bpmnCode = string(stdErr.Code) // Fallback
	}

	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	return &BPMNError{
		Code:      bpmnCode,
		Message:   stdErr.Message,
		Details:   stdErr.Details,
		Retryable: stdErr.Retryable,
		Retries:   retries,
		ErrorVariables: map[string]interface{}{
			"originalErrorCode": string(stdErr.Code),
			"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
		},
	}
}

// ==========================
// 5. Utility Functions
// ==========================

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "TEMPLATE") || strings.Contains(codeStr, "CATEGORY"):
		return "CATALOG"
	case strings.Contains(codeStr, "VALIDATION") || strings.Contains(codeStr, "LANGUAGE"):
		return "VALIDATION"
	case strings.Contains(codeStr, "RENDER") || strings.Contains(codeStr, "REMOTE"):
		return "GENERATION"
	case strings.Contains(codeStr, "DRAFT"):
		return "DRAFT"
	case strings.Contains(codeStr, "DATABASE") || strings.Contains(codeStr, "ARCHIVE") || strings.Contains(codeStr, "LETTER"):
		return "ARCHIVE"
	case strings.Contains(codeStr, "NOTIFICATION"):
		return "NOTIFICATION"
	default:
		return "OTHER"
	}
}

package errors

// ErrorCode identifies an application error class independently of the HTTP status
type ErrorCode int32

const (
	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1004
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1005

	// Authentication
	ErrorCode_AUTH_MISSING_TOKEN ErrorCode = 2000
	ErrorCode_AUTH_INVALID_TOKEN ErrorCode = 2001
	ErrorCode_AUTH_NOT_ALLOWED   ErrorCode = 2002

	// Minutes generation
	ErrorCode_VALIDATION_FAILED    ErrorCode = 3000
	ErrorCode_AI_GENERATION_FAILED ErrorCode = 3001
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_INTERNAL:             "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:     "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:            "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:      "INVALID_PAYLOAD",
	ErrorCode_AUTH_MISSING_TOKEN:   "AUTH_MISSING_TOKEN",
	ErrorCode_AUTH_INVALID_TOKEN:   "AUTH_INVALID_TOKEN",
	ErrorCode_AUTH_NOT_ALLOWED:     "AUTH_NOT_ALLOWED",
	ErrorCode_VALIDATION_FAILED:    "VALIDATION_FAILED",
	ErrorCode_AI_GENERATION_FAILED: "AI_GENERATION_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

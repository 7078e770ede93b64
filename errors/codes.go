package errors

// ErrorCode identifies the class of an application error.
type ErrorCode int32

const (
	ErrorCode_UNKNOWN ErrorCode = iota
	ErrorCode_INTERNAL
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_NOT_FOUND
	ErrorCode_ALREADY_EXISTS
	ErrorCode_UNAUTHENTICATED
	ErrorCode_FORBIDDEN
	ErrorCode_UNAVAILABLE
	ErrorCode_CONFLICT

	ErrorCode_AUTH_INVALID_TOKEN
	ErrorCode_AUTH_TOKEN_EXPIRED
	ErrorCode_AUTH_INVALID_CREDENTIALS
	ErrorCode_AUTH_USER_ALREADY_EXISTS

	ErrorCode_AI_SERVICE_UNAVAILABLE
	ErrorCode_PROCESSING_IN_PROGRESS

	ErrorCode_DB_QUERY_FAILED
	ErrorCode_STORAGE_FAILED

	ErrorCode_HTTP_OK ErrorCode = 200
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNKNOWN:                  "UNKNOWN",
	ErrorCode_INTERNAL:                 "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:         "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:           "ALREADY_EXISTS",
	ErrorCode_UNAUTHENTICATED:          "UNAUTHENTICATED",
	ErrorCode_FORBIDDEN:                "FORBIDDEN",
	ErrorCode_UNAVAILABLE:              "UNAVAILABLE",
	ErrorCode_CONFLICT:                 "CONFLICT",
	ErrorCode_AUTH_INVALID_TOKEN:       "AUTH_INVALID_TOKEN",
	ErrorCode_AUTH_TOKEN_EXPIRED:       "AUTH_TOKEN_EXPIRED",
	ErrorCode_AUTH_INVALID_CREDENTIALS: "AUTH_INVALID_CREDENTIALS",
	ErrorCode_AUTH_USER_ALREADY_EXISTS: "AUTH_USER_ALREADY_EXISTS",
	ErrorCode_AI_SERVICE_UNAVAILABLE:   "AI_SERVICE_UNAVAILABLE",
	ErrorCode_PROCESSING_IN_PROGRESS:   "PROCESSING_IN_PROGRESS",
	ErrorCode_DB_QUERY_FAILED:          "DB_QUERY_FAILED",
	ErrorCode_STORAGE_FAILED:           "STORAGE_FAILED",
	ErrorCode_HTTP_OK:                  "OK",
}

// String returns the symbolic name of the error code.
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

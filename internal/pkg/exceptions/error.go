package exceptions

import (
	"booking-service/internal/pkg/constvars"
	"fmt"
	"runtime"
)

// Kind classifies a failure for the state machine and the UI layer.
// Every kind maps to a short client message plus a concrete next action.
type Kind string

const (
	KindConflict           Kind = "CONFLICT"
	KindDuplicate          Kind = "DUPLICATE"
	KindRateLimited        Kind = "RATE_LIMITED"
	KindVerificationFailed Kind = "VERIFICATION_FAILED"
	KindNotFound           Kind = "NOT_FOUND"
	KindTooLateToModify    Kind = "TOO_LATE_TO_MODIFY"
	KindNetwork            Kind = "NETWORK"
	KindUnknown            Kind = "UNKNOWN"
)

// Recoverable reports whether the caller may retry the same action after the
// condition clears. NOT_FOUND and TOO_LATE_TO_MODIFY are fatal to the current
// action and must route the client elsewhere.
func (k Kind) Recoverable() bool {
	switch k {
	case KindNotFound, KindTooLateToModify:
		return false
	default:
		return true
	}
}

type CustomError struct {
	StatusCode    int      `json:"status_code"`
	Success       bool     `json:"success"`
	Kind          Kind     `json:"kind,omitempty"`
	ClientMessage string   `json:"message"`
	DevMessage    string   `json:"-"`
	Location      Location `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		Kind:          kindForStatus(statusCode),
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      getLocation(2),
	}
}

// BuildKindedCustomError is BuildNewCustomError with an explicit kind for
// cases where the HTTP status alone is ambiguous (e.g. DUPLICATE vs CONFLICT,
// both 409 on the wire).
func BuildKindedCustomError(err error, kind Kind, statusCode int, clientMessage, devMessage string) *CustomError {
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		Kind:          kind,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      getLocation(2),
	}
}

func kindForStatus(statusCode int) Kind {
	switch statusCode {
	case constvars.StatusConflict:
		return KindConflict
	case constvars.StatusTooManyRequests:
		return KindRateLimited
	case constvars.StatusNotFound:
		return KindNotFound
	case constvars.StatusForbidden:
		return KindTooLateToModify
	case constvars.StatusUnauthorized:
		return KindVerificationFailed
	case constvars.StatusBadGateway, constvars.StatusServiceUnavailable, constvars.StatusGatewayTimeout:
		return KindNetwork
	default:
		return KindUnknown
	}
}

// KindOf extracts the error kind, defaulting to UNKNOWN for plain errors.
func KindOf(err error) Kind {
	if ce, ok := err.(*CustomError); ok && ce.Kind != "" {
		return ce.Kind
	}
	return KindUnknown
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}

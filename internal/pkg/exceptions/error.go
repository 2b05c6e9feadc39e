package exceptions

import (
	"fmt"
	"medintake-service/internal/pkg/constvars"
	"runtime"
)

// Kind is the stable machine-checkable error category surfaced to clients.
const (
	KindValidation        = "VALIDATION_ERROR"
	KindNotFound          = "NOT_FOUND"
	KindInvalidIdentifier = "INVALID_IDENTIFIER"
	KindAttachment        = "ATTACHMENT_ERROR"
	// KindConflict is reserved for a future optimistic-concurrency check.
	// Same-section writes currently race under last-write-wins and no code
	// path produces this kind.
	KindConflict = "CONFLICT_ERROR"
	KindInternal = "INTERNAL_ERROR"
)

type CustomError struct {
	StatusCode    int      `json:"status_code"`
	Kind          string   `json:"error"`
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

func WrapWithoutError(statusCode int, kind, clientMessage, devMessage string) *CustomError {
	return &CustomError{
		StatusCode:    statusCode,
		Kind:          kind,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      getLocation(2),
	}
}

func WrapWithError(err error, statusCode int, kind, clientMessage, devMessage string) *CustomError {
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

// BuildNewCustomError is the constructor used by the error catalogue in
// types.go so that the reported location is the caller of the catalogue
// function, not the catalogue itself.
func BuildNewCustomError(err error, statusCode int, kind, clientMessage, devMessage string) *CustomError {
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		Kind:          kind,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      getLocation(3),
	}
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

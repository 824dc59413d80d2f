package errors

import (
	"net/http"
	"slices"

	"github.com/kbukum/statuscode/status"
)

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Connection/Availability errors (retryable)
const (
	// ErrCodeServiceUnavailable indicates the service is temporarily unavailable.
	ErrCodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	// ErrCodeConnectionFailed indicates a failed connection to a service.
	ErrCodeConnectionFailed ErrorCode = "CONNECTION_FAILED"
	// ErrCodeTimeout indicates the request timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeRateLimited indicates the client is rate limited.
	ErrCodeRateLimited ErrorCode = "RATE_LIMITED"
)

// Resource errors
const (
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeAlreadyExists indicates the resource already exists.
	ErrCodeAlreadyExists ErrorCode = "ALREADY_EXISTS"
	// ErrCodeConflict indicates a conflict with the current state of the resource.
	ErrCodeConflict ErrorCode = "CONFLICT"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidFormat indicates a field has an invalid format.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// Access errors
const (
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeForbidden    ErrorCode = "FORBIDDEN"
)

// Internal errors
const (
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
	// ErrCodeIO indicates a failed read or write on a device, file or stream.
	ErrCodeIO ErrorCode = "IO_ERROR"
	// ErrCodeProtocol indicates a peer that spoke the wrong protocol.
	ErrCodeProtocol ErrorCode = "PROTOCOL_ERROR"
)

// codeInfo is what every ErrorCode maps to. errc is never status.Success.
type codeInfo struct {
	httpStatus int
	retryable  bool
	errc       status.Errc
}

var codeTable = map[ErrorCode]codeInfo{
	ErrCodeServiceUnavailable: {http.StatusServiceUnavailable, true, status.ResourceUnavailableTryAgain},
	ErrCodeConnectionFailed:   {http.StatusServiceUnavailable, true, status.ConnectionRefused},
	ErrCodeTimeout:            {http.StatusGatewayTimeout, true, status.TimedOut},
	ErrCodeRateLimited:        {http.StatusTooManyRequests, true, status.DeviceOrResourceBusy},
	ErrCodeNotFound:           {http.StatusNotFound, false, status.NoSuchFileOrDirectory},
	ErrCodeAlreadyExists:      {http.StatusConflict, false, status.FileExists},
	ErrCodeConflict:           {http.StatusConflict, false, status.ResourceDeadlockWouldOccur},
	ErrCodeInvalidInput:       {http.StatusBadRequest, false, status.InvalidArgument},
	ErrCodeMissingField:       {http.StatusBadRequest, false, status.InvalidArgument},
	ErrCodeInvalidFormat:      {http.StatusBadRequest, false, status.InvalidArgument},
	ErrCodeUnauthorized:       {http.StatusUnauthorized, false, status.OperationNotPermitted},
	ErrCodeForbidden:          {http.StatusForbidden, false, status.PermissionDenied},
	ErrCodeInternal:           {http.StatusInternalServerError, false, status.Unknown},
	ErrCodeIO:                 {http.StatusInternalServerError, true, status.IOError},
	ErrCodeProtocol:           {http.StatusBadGateway, true, status.ProtocolError},
}

// errcCodes maps generic conditions back onto application codes. Conditions
// not listed map to ErrCodeInternal.
var errcCodes = map[status.Errc]ErrorCode{
	status.ResourceUnavailableTryAgain: ErrCodeServiceUnavailable,
	status.NoBufferSpace:               ErrCodeServiceUnavailable,
	status.NotEnoughMemory:             ErrCodeServiceUnavailable,
	status.ConnectionRefused:           ErrCodeConnectionFailed,
	status.ConnectionReset:             ErrCodeConnectionFailed,
	status.ConnectionAborted:           ErrCodeConnectionFailed,
	status.NotConnected:                ErrCodeConnectionFailed,
	status.NetworkDown:                 ErrCodeConnectionFailed,
	status.NetworkUnreachable:          ErrCodeConnectionFailed,
	status.NetworkReset:                ErrCodeConnectionFailed,
	status.HostUnreachable:             ErrCodeConnectionFailed,
	status.BrokenPipe:                  ErrCodeConnectionFailed,
	status.TimedOut:                    ErrCodeTimeout,
	status.StreamTimeout:               ErrCodeTimeout,
	status.DeviceOrResourceBusy:        ErrCodeRateLimited,
	status.TextFileBusy:                ErrCodeRateLimited,
	status.NoSuchFileOrDirectory:       ErrCodeNotFound,
	status.NoSuchProcess:               ErrCodeNotFound,
	status.NoSuchDevice:                ErrCodeNotFound,
	status.NoSuchDeviceOrAddress:       ErrCodeNotFound,
	status.FileExists:                  ErrCodeAlreadyExists,
	status.AlreadyConnected:            ErrCodeAlreadyExists,
	status.ResourceDeadlockWouldOccur:  ErrCodeConflict,
	status.DirectoryNotEmpty:           ErrCodeConflict,
	status.OperationInProgress:         ErrCodeConflict,
	status.ConnectionAlreadyInProgress: ErrCodeConflict,
	status.InvalidArgument:             ErrCodeInvalidInput,
	status.ArgumentOutOfDomain:         ErrCodeInvalidInput,
	status.ResultOutOfRange:            ErrCodeInvalidInput,
	status.ValueTooLarge:               ErrCodeInvalidInput,
	status.FilenameTooLong:             ErrCodeInvalidInput,
	status.ArgumentListTooLong:         ErrCodeInvalidInput,
	status.DestinationAddressRequired:  ErrCodeMissingField,
	status.IllegalByteSequence:         ErrCodeInvalidFormat,
	status.BadMessage:                  ErrCodeInvalidFormat,
	status.ExecutableFormatError:       ErrCodeInvalidFormat,
	status.OperationNotPermitted:       ErrCodeUnauthorized,
	status.PermissionDenied:            ErrCodeForbidden,
	status.ReadOnlyFileSystem:          ErrCodeForbidden,
	status.IOError:                     ErrCodeIO,
	status.NoSpaceOnDevice:             ErrCodeIO,
	status.ProtocolError:               ErrCodeProtocol,
	status.ProtocolNotSupported:        ErrCodeProtocol,
	status.WrongProtocolType:           ErrCodeProtocol,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return codeTable[code].retryable
}

// HTTPStatusFor returns the recommended HTTP status for code, or 500 for an
// unregistered code.
func HTTPStatusFor(code ErrorCode) int {
	if info, ok := codeTable[code]; ok {
		return info.httpStatus
	}
	return http.StatusInternalServerError
}

// ErrcFor returns the generic condition code stands for. Unregistered codes
// map to status.Unknown, so the result is always a failure.
func ErrcFor(code ErrorCode) status.Errc {
	if info, ok := codeTable[code]; ok {
		return info.errc
	}
	return status.Unknown
}

// CodeFor returns the application code closest to the generic condition e.
func CodeFor(e status.Errc) ErrorCode {
	if code, ok := errcCodes[e]; ok {
		return code
	}
	return ErrCodeInternal
}

// Codes returns every registered error code in lexical order.
func Codes() []ErrorCode {
	out := make([]ErrorCode, 0, len(codeTable))
	for code := range codeTable {
		out = append(out, code)
	}
	slices.Sort(out)
	return out
}

package status

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Errc enumerates the generic, POSIX-style error conditions. Values follow
// the Linux errno numbering on every platform, so a generic code means the
// same thing wherever it was produced.
type Errc int

// Generic error conditions.
const (
	Unknown Errc = -1
	Success Errc = 0

	OperationNotPermitted          Errc = 1   // EPERM
	NoSuchFileOrDirectory          Errc = 2   // ENOENT
	NoSuchProcess                  Errc = 3   // ESRCH
	Interrupted                    Errc = 4   // EINTR
	IOError                        Errc = 5   // EIO
	NoSuchDeviceOrAddress          Errc = 6   // ENXIO
	ArgumentListTooLong            Errc = 7   // E2BIG
	ExecutableFormatError          Errc = 8   // ENOEXEC
	BadFileDescriptor              Errc = 9   // EBADF
	NoChildProcess                 Errc = 10  // ECHILD
	ResourceUnavailableTryAgain    Errc = 11  // EAGAIN
	NotEnoughMemory                Errc = 12  // ENOMEM
	PermissionDenied               Errc = 13  // EACCES
	BadAddress                     Errc = 14  // EFAULT
	DeviceOrResourceBusy           Errc = 16  // EBUSY
	FileExists                     Errc = 17  // EEXIST
	CrossDeviceLink                Errc = 18  // EXDEV
	NoSuchDevice                   Errc = 19  // ENODEV
	NotADirectory                  Errc = 20  // ENOTDIR
	IsADirectory                   Errc = 21  // EISDIR
	InvalidArgument                Errc = 22  // EINVAL
	TooManyFilesOpenInSystem       Errc = 23  // ENFILE
	TooManyFilesOpen               Errc = 24  // EMFILE
	InappropriateIOControl         Errc = 25  // ENOTTY
	TextFileBusy                   Errc = 26  // ETXTBSY
	FileTooLarge                   Errc = 27  // EFBIG
	NoSpaceOnDevice                Errc = 28  // ENOSPC
	InvalidSeek                    Errc = 29  // ESPIPE
	ReadOnlyFileSystem             Errc = 30  // EROFS
	TooManyLinks                   Errc = 31  // EMLINK
	BrokenPipe                     Errc = 32  // EPIPE
	ArgumentOutOfDomain            Errc = 33  // EDOM
	ResultOutOfRange               Errc = 34  // ERANGE
	ResourceDeadlockWouldOccur     Errc = 35  // EDEADLK
	FilenameTooLong                Errc = 36  // ENAMETOOLONG
	NoLockAvailable                Errc = 37  // ENOLCK
	FunctionNotSupported           Errc = 38  // ENOSYS
	DirectoryNotEmpty              Errc = 39  // ENOTEMPTY
	TooManySymbolicLinkLevels      Errc = 40  // ELOOP
	NoMessage                      Errc = 42  // ENOMSG
	IdentifierRemoved              Errc = 43  // EIDRM
	NotAStream                     Errc = 60  // ENOSTR
	StreamTimeout                  Errc = 62  // ETIME
	NoStreamResources              Errc = 63  // ENOSR
	NoLink                         Errc = 67  // ENOLINK
	ProtocolError                  Errc = 71  // EPROTO
	BadMessage                     Errc = 74  // EBADMSG
	ValueTooLarge                  Errc = 75  // EOVERFLOW
	IllegalByteSequence            Errc = 84  // EILSEQ
	NotASocket                     Errc = 88  // ENOTSOCK
	DestinationAddressRequired     Errc = 89  // EDESTADDRREQ
	MessageSize                    Errc = 90  // EMSGSIZE
	WrongProtocolType              Errc = 91  // EPROTOTYPE
	NoProtocolOption               Errc = 92  // ENOPROTOOPT
	ProtocolNotSupported           Errc = 93  // EPROTONOSUPPORT
	OperationNotSupported          Errc = 95  // EOPNOTSUPP
	AddressFamilyNotSupported      Errc = 97  // EAFNOSUPPORT
	AddressInUse                   Errc = 98  // EADDRINUSE
	AddressNotAvailable            Errc = 99  // EADDRNOTAVAIL
	NetworkDown                    Errc = 100 // ENETDOWN
	NetworkUnreachable             Errc = 101 // ENETUNREACH
	NetworkReset                   Errc = 102 // ENETRESET
	ConnectionAborted              Errc = 103 // ECONNABORTED
	ConnectionReset                Errc = 104 // ECONNRESET
	NoBufferSpace                  Errc = 105 // ENOBUFS
	AlreadyConnected               Errc = 106 // EISCONN
	NotConnected                   Errc = 107 // ENOTCONN
	TimedOut                       Errc = 110 // ETIMEDOUT
	ConnectionRefused              Errc = 111 // ECONNREFUSED
	HostUnreachable                Errc = 113 // EHOSTUNREACH
	ConnectionAlreadyInProgress    Errc = 114 // EALREADY
	OperationInProgress            Errc = 115 // EINPROGRESS
	OperationCanceled              Errc = 125 // ECANCELED
	OwnerDead                      Errc = 130 // EOWNERDEAD
	StateNotRecoverable            Errc = 131 // ENOTRECOVERABLE

	// Aliases, as on Linux.
	OperationWouldBlock = ResourceUnavailableTryAgain // EWOULDBLOCK
	NotSupported        = OperationNotSupported       // ENOTSUP
)

type errcInfo struct {
	name    string
	symbol  string
	message string
}

var errcTable = map[Errc]errcInfo{
	Unknown:                     {"unknown", "", "unknown error"},
	Success:                     {"success", "", "Success"},
	OperationNotPermitted:       {"operation_not_permitted", "EPERM", "Operation not permitted"},
	NoSuchFileOrDirectory:       {"no_such_file_or_directory", "ENOENT", "No such file or directory"},
	NoSuchProcess:               {"no_such_process", "ESRCH", "No such process"},
	Interrupted:                 {"interrupted", "EINTR", "Interrupted system call"},
	IOError:                     {"io_error", "EIO", "Input/output error"},
	NoSuchDeviceOrAddress:       {"no_such_device_or_address", "ENXIO", "No such device or address"},
	ArgumentListTooLong:         {"argument_list_too_long", "E2BIG", "Argument list too long"},
	ExecutableFormatError:       {"executable_format_error", "ENOEXEC", "Exec format error"},
	BadFileDescriptor:           {"bad_file_descriptor", "EBADF", "Bad file descriptor"},
	NoChildProcess:              {"no_child_process", "ECHILD", "No child processes"},
	ResourceUnavailableTryAgain: {"resource_unavailable_try_again", "EAGAIN", "Resource temporarily unavailable"},
	NotEnoughMemory:             {"not_enough_memory", "ENOMEM", "Cannot allocate memory"},
	PermissionDenied:            {"permission_denied", "EACCES", "Permission denied"},
	BadAddress:                  {"bad_address", "EFAULT", "Bad address"},
	DeviceOrResourceBusy:        {"device_or_resource_busy", "EBUSY", "Device or resource busy"},
	FileExists:                  {"file_exists", "EEXIST", "File exists"},
	CrossDeviceLink:             {"cross_device_link", "EXDEV", "Invalid cross-device link"},
	NoSuchDevice:                {"no_such_device", "ENODEV", "No such device"},
	NotADirectory:               {"not_a_directory", "ENOTDIR", "Not a directory"},
	IsADirectory:                {"is_a_directory", "EISDIR", "Is a directory"},
	InvalidArgument:             {"invalid_argument", "EINVAL", "Invalid argument"},
	TooManyFilesOpenInSystem:    {"too_many_files_open_in_system", "ENFILE", "Too many open files in system"},
	TooManyFilesOpen:            {"too_many_files_open", "EMFILE", "Too many open files"},
	InappropriateIOControl:      {"inappropriate_io_control_operation", "ENOTTY", "Inappropriate ioctl for device"},
	TextFileBusy:                {"text_file_busy", "ETXTBSY", "Text file busy"},
	FileTooLarge:                {"file_too_large", "EFBIG", "File too large"},
	NoSpaceOnDevice:             {"no_space_on_device", "ENOSPC", "No space left on device"},
	InvalidSeek:                 {"invalid_seek", "ESPIPE", "Illegal seek"},
	ReadOnlyFileSystem:          {"read_only_file_system", "EROFS", "Read-only file system"},
	TooManyLinks:                {"too_many_links", "EMLINK", "Too many links"},
	BrokenPipe:                  {"broken_pipe", "EPIPE", "Broken pipe"},
	ArgumentOutOfDomain:         {"argument_out_of_domain", "EDOM", "Numerical argument out of domain"},
	ResultOutOfRange:            {"result_out_of_range", "ERANGE", "Numerical result out of range"},
	ResourceDeadlockWouldOccur:  {"resource_deadlock_would_occur", "EDEADLK", "Resource deadlock avoided"},
	FilenameTooLong:             {"filename_too_long", "ENAMETOOLONG", "File name too long"},
	NoLockAvailable:             {"no_lock_available", "ENOLCK", "No locks available"},
	FunctionNotSupported:        {"function_not_supported", "ENOSYS", "Function not implemented"},
	DirectoryNotEmpty:           {"directory_not_empty", "ENOTEMPTY", "Directory not empty"},
	TooManySymbolicLinkLevels:   {"too_many_symbolic_link_levels", "ELOOP", "Too many levels of symbolic links"},
	NoMessage:                   {"no_message", "ENOMSG", "No message of desired type"},
	IdentifierRemoved:           {"identifier_removed", "EIDRM", "Identifier removed"},
	NotAStream:                  {"not_a_stream", "ENOSTR", "Device not a stream"},
	StreamTimeout:               {"stream_timeout", "ETIME", "Timer expired"},
	NoStreamResources:           {"no_stream_resources", "ENOSR", "Out of streams resources"},
	NoLink:                      {"no_link", "ENOLINK", "Link has been severed"},
	ProtocolError:               {"protocol_error", "EPROTO", "Protocol error"},
	BadMessage:                  {"bad_message", "EBADMSG", "Bad message"},
	ValueTooLarge:               {"value_too_large", "EOVERFLOW", "Value too large for defined data type"},
	IllegalByteSequence:         {"illegal_byte_sequence", "EILSEQ", "Invalid or incomplete multibyte or wide character"},
	NotASocket:                  {"not_a_socket", "ENOTSOCK", "Socket operation on non-socket"},
	DestinationAddressRequired:  {"destination_address_required", "EDESTADDRREQ", "Destination address required"},
	MessageSize:                 {"message_size", "EMSGSIZE", "Message too long"},
	WrongProtocolType:           {"wrong_protocol_type", "EPROTOTYPE", "Protocol wrong type for socket"},
	NoProtocolOption:            {"no_protocol_option", "ENOPROTOOPT", "Protocol not available"},
	ProtocolNotSupported:        {"protocol_not_supported", "EPROTONOSUPPORT", "Protocol not supported"},
	OperationNotSupported:       {"operation_not_supported", "EOPNOTSUPP", "Operation not supported"},
	AddressFamilyNotSupported:   {"address_family_not_supported", "EAFNOSUPPORT", "Address family not supported by protocol"},
	AddressInUse:                {"address_in_use", "EADDRINUSE", "Address already in use"},
	AddressNotAvailable:         {"address_not_available", "EADDRNOTAVAIL", "Cannot assign requested address"},
	NetworkDown:                 {"network_down", "ENETDOWN", "Network is down"},
	NetworkUnreachable:          {"network_unreachable", "ENETUNREACH", "Network is unreachable"},
	NetworkReset:                {"network_reset", "ENETRESET", "Network dropped connection on reset"},
	ConnectionAborted:           {"connection_aborted", "ECONNABORTED", "Software caused connection abort"},
	ConnectionReset:             {"connection_reset", "ECONNRESET", "Connection reset by peer"},
	NoBufferSpace:               {"no_buffer_space", "ENOBUFS", "No buffer space available"},
	AlreadyConnected:            {"already_connected", "EISCONN", "Transport endpoint is already connected"},
	NotConnected:                {"not_connected", "ENOTCONN", "Transport endpoint is not connected"},
	TimedOut:                    {"timed_out", "ETIMEDOUT", "Connection timed out"},
	ConnectionRefused:           {"connection_refused", "ECONNREFUSED", "Connection refused"},
	HostUnreachable:             {"host_unreachable", "EHOSTUNREACH", "No route to host"},
	ConnectionAlreadyInProgress: {"connection_already_in_progress", "EALREADY", "Operation already in progress"},
	OperationInProgress:         {"operation_in_progress", "EINPROGRESS", "Operation now in progress"},
	OperationCanceled:           {"operation_canceled", "ECANCELED", "Operation canceled"},
	OwnerDead:                   {"owner_dead", "EOWNERDEAD", "Owner died"},
	StateNotRecoverable:         {"state_not_recoverable", "ENOTRECOVERABLE", "State not recoverable"},
}

// aliasSymbols resolves POSIX symbols that share a value with another code.
var aliasSymbols = map[string]Errc{
	"EWOULDBLOCK": OperationWouldBlock,
	"ENOTSUP":     NotSupported,
}

var aliasNames = map[string]Errc{
	"operation_would_block": OperationWouldBlock,
	"not_supported":         NotSupported,
}

// Known reports whether e is one of the enumerated conditions.
func (e Errc) Known() bool {
	_, ok := errcTable[e]
	return ok
}

// String returns the snake_case name of the condition.
func (e Errc) String() string {
	if info, ok := errcTable[e]; ok {
		return info.name
	}
	return "errc(" + strconv.Itoa(int(e)) + ")"
}

// Symbol returns the POSIX macro name, e.g. "EINVAL", or "" if none.
func (e Errc) Symbol() string { return errcTable[e].symbol }

// Message returns the strerror text of the condition.
func (e Errc) Message() string {
	if info, ok := errcTable[e]; ok {
		return info.message
	}
	return fmt.Sprintf("unknown error %d", int(e))
}

// Error makes Errc usable as a Go error, the way syscall.Errno is.
func (e Errc) Error() string { return e.Message() }

// Is lets errors.Is match an Errc against any status code, or Maker of
// generic codes, equivalent to it.
func (e Errc) Is(target error) bool {
	switch t := target.(type) {
	case Errc:
		return t == e
	case Code:
		return ErrcEqual(e, t)
	case Maker[Errc]:
		return makerEqual(GenericCode(e), t)
	}
	return false
}

// ParseErrc parses a condition from its name ("invalid_argument"), POSIX
// symbol ("EINVAL") or decimal value ("22").
func ParseErrc(s string) (Errc, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unknown, fmt.Errorf("status: empty errc")
	}
	if n, err := strconv.Atoi(s); err == nil {
		e := Errc(n)
		if !e.Known() {
			return Unknown, fmt.Errorf("status: unknown errc value %d", n)
		}
		return e, nil
	}
	if e, ok := aliasSymbols[strings.ToUpper(s)]; ok {
		return e, nil
	}
	if e, ok := aliasNames[strings.ToLower(s)]; ok {
		return e, nil
	}
	for e, info := range errcTable {
		if info.name == strings.ToLower(s) || (info.symbol != "" && info.symbol == strings.ToUpper(s)) {
			return e, nil
		}
	}
	return Unknown, fmt.Errorf("status: unknown errc %q", s)
}

// Errcs returns every distinct enumerated condition in ascending order,
// Unknown and Success included.
func Errcs() []Errc {
	out := make([]Errc, 0, len(errcTable))
	for e := range errcTable {
		out = append(out, e)
	}
	slices.Sort(out)
	return out
}

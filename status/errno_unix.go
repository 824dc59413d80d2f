//go:build unix && !linux

package status

import (
	"errors"
	"syscall"
)

// errnoTable is a list rather than a map: some platforms give two of these
// symbols the same number.
var errnoTable = []struct {
	errno syscall.Errno
	errc  Errc
}{
	{syscall.EPERM, OperationNotPermitted},
	{syscall.ENOENT, NoSuchFileOrDirectory},
	{syscall.ESRCH, NoSuchProcess},
	{syscall.EINTR, Interrupted},
	{syscall.EIO, IOError},
	{syscall.ENXIO, NoSuchDeviceOrAddress},
	{syscall.E2BIG, ArgumentListTooLong},
	{syscall.ENOEXEC, ExecutableFormatError},
	{syscall.EBADF, BadFileDescriptor},
	{syscall.ECHILD, NoChildProcess},
	{syscall.EAGAIN, ResourceUnavailableTryAgain},
	{syscall.ENOMEM, NotEnoughMemory},
	{syscall.EACCES, PermissionDenied},
	{syscall.EFAULT, BadAddress},
	{syscall.EBUSY, DeviceOrResourceBusy},
	{syscall.EEXIST, FileExists},
	{syscall.EXDEV, CrossDeviceLink},
	{syscall.ENODEV, NoSuchDevice},
	{syscall.ENOTDIR, NotADirectory},
	{syscall.EISDIR, IsADirectory},
	{syscall.EINVAL, InvalidArgument},
	{syscall.ENFILE, TooManyFilesOpenInSystem},
	{syscall.EMFILE, TooManyFilesOpen},
	{syscall.ENOTTY, InappropriateIOControl},
	{syscall.ETXTBSY, TextFileBusy},
	{syscall.EFBIG, FileTooLarge},
	{syscall.ENOSPC, NoSpaceOnDevice},
	{syscall.ESPIPE, InvalidSeek},
	{syscall.EROFS, ReadOnlyFileSystem},
	{syscall.EMLINK, TooManyLinks},
	{syscall.EPIPE, BrokenPipe},
	{syscall.EDOM, ArgumentOutOfDomain},
	{syscall.ERANGE, ResultOutOfRange},
	{syscall.EDEADLK, ResourceDeadlockWouldOccur},
	{syscall.ENAMETOOLONG, FilenameTooLong},
	{syscall.ENOLCK, NoLockAvailable},
	{syscall.ENOSYS, FunctionNotSupported},
	{syscall.ENOTEMPTY, DirectoryNotEmpty},
	{syscall.ELOOP, TooManySymbolicLinkLevels},
	{syscall.ENOTSOCK, NotASocket},
	{syscall.EMSGSIZE, MessageSize},
	{syscall.EPROTONOSUPPORT, ProtocolNotSupported},
	{syscall.EOPNOTSUPP, OperationNotSupported},
	{syscall.EAFNOSUPPORT, AddressFamilyNotSupported},
	{syscall.EADDRINUSE, AddressInUse},
	{syscall.EADDRNOTAVAIL, AddressNotAvailable},
	{syscall.ENETDOWN, NetworkDown},
	{syscall.ENETUNREACH, NetworkUnreachable},
	{syscall.ECONNABORTED, ConnectionAborted},
	{syscall.ECONNRESET, ConnectionReset},
	{syscall.ENOBUFS, NoBufferSpace},
	{syscall.EISCONN, AlreadyConnected},
	{syscall.ENOTCONN, NotConnected},
	{syscall.ETIMEDOUT, TimedOut},
	{syscall.ECONNREFUSED, ConnectionRefused},
	{syscall.EHOSTUNREACH, HostUnreachable},
	{syscall.EALREADY, ConnectionAlreadyInProgress},
	{syscall.EINPROGRESS, OperationInProgress},
}

// errnoCondition translates the platform's errno numbering.
func errnoCondition(err error) (Errc, bool) {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return Unknown, false
	}
	if errno == 0 {
		return Success, true
	}
	for _, m := range errnoTable {
		if m.errno == errno {
			return m.errc, true
		}
	}
	return Unknown, true
}

//go:build linux

package internal

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Code returns the kernel constant for the advice.
func (a Advice) Code() (int, error) {
	switch a {
	case Normal:
		return unix.FADV_NORMAL, nil
	case Sequential:
		return unix.FADV_SEQUENTIAL, nil
	case Random:
		return unix.FADV_RANDOM, nil
	case NoReuse:
		return unix.FADV_NOREUSE, nil
	case WillNeed:
		return unix.FADV_WILLNEED, nil
	case DontNeed:
		return unix.FADV_DONTNEED, nil
	default:
		return 0, fmt.Errorf("%d: %w", int(a), ErrUnknownAdvice)
	}
}

// Fadvise issues posix_fadvise on fd for the given range.
func Fadvise(fd uintptr, offset int64, length int64, advice Advice) error {
	code, err := advice.Code()
	if err != nil {
		return err
	}
	return unix.Fadvise(int(fd), offset, length, code)
}

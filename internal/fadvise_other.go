//go:build !linux

package internal

import "fmt"

func (a Advice) Code() (int, error) {
	if !a.valid() {
		return 0, fmt.Errorf("%d: %w", int(a), ErrUnknownAdvice)
	}
	return 0, ErrUnsupported
}

// Fadvise always fails with ErrUnsupported since the platform has no posix_fadvise.
func Fadvise(fd uintptr, offset int64, length int64, advice Advice) error {
	if _, err := advice.Code(); err != nil {
		return err
	}
	return ErrUnsupported
}

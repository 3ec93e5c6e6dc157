package internal

import (
	"fmt"
	"os"
	"strconv"
)

// Request describes a single advisory call. Length is only used when HasLength is set,
// otherwise the size of the file at validation time is used.
type Request struct {
	Path      string
	Advice    Advice
	Offset    int64
	Length    int64
	HasLength bool
}

// Check verifies the numeric fields of the request without touching the filesystem.
func (r Request) Check() error {
	if !r.Advice.valid() {
		return fmt.Errorf("%d: %w", int(r.Advice), ErrUnknownAdvice)
	}
	if r.Offset < 0 {
		return fmt.Errorf("%d: %w", r.Offset, ErrNegativeOffset)
	}
	if r.HasLength && r.Length < 0 {
		return fmt.Errorf("%d: %w", r.Length, ErrNegativeLength)
	}
	return nil
}

// Resolve checks that the request's path names an existing regular file and returns a copy
// of the request with the effective length filled in.
func (r Request) Resolve() (Request, os.FileInfo, error) {
	if err := r.Check(); err != nil {
		return r, nil, err
	}

	st, err := os.Stat(r.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil, fmt.Errorf("'%s' %w", r.Path, ErrNotExist)
		}
		return r, nil, fmt.Errorf("retrieve metadata of the file: %w", err)
	}
	if !st.Mode().IsRegular() {
		return r, st, fmt.Errorf("'%s' %w", r.Path, ErrNotRegularFile)
	}

	if !r.HasLength {
		r.Length = st.Size()
		r.HasLength = true
	}
	return r, st, nil
}

// ParseNonNegative parses a base 10 integer argument, rejecting negative values with
// errNegative.
func ParseNonNegative(name string, s string, errNegative error) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, errNegative)
	}
	return v, nil
}

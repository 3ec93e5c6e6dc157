package internal

import (
	"fmt"
	"strings"
)

// Advice is an expected access pattern for a range of a file.
type Advice int

const (
	Normal Advice = iota
	Sequential
	Random
	NoReuse
	WillNeed
	DontNeed
)

// Advices lists every advice in the order they are presented to users.
var Advices = []Advice{Normal, Sequential, Random, NoReuse, WillNeed, DontNeed}

// Keyword returns the command name used to select the advice.
func (a Advice) Keyword() string {
	switch a {
	case Normal:
		return "normal"
	case Sequential:
		return "sequential"
	case Random:
		return "random"
	case NoReuse:
		return "noreuse"
	case WillNeed:
		return "willneed"
	case DontNeed:
		return "dontneed"
	default:
		return fmt.Sprintf("advice(%d)", int(a))
	}
}

// String returns the POSIX name of the advice.
func (a Advice) String() string {
	switch a {
	case Normal:
		return "POSIX_FADV_NORMAL"
	case Sequential:
		return "POSIX_FADV_SEQUENTIAL"
	case Random:
		return "POSIX_FADV_RANDOM"
	case NoReuse:
		return "POSIX_FADV_NOREUSE"
	case WillNeed:
		return "POSIX_FADV_WILLNEED"
	case DontNeed:
		return "POSIX_FADV_DONTNEED"
	default:
		return fmt.Sprintf("POSIX_FADV_UNKNOWN(%d)", int(a))
	}
}

// Description is a one line summary of what the kernel is told.
func (a Advice) Description() string {
	switch a {
	case Normal:
		return "No special treatment; revert to the default readahead heuristic"
	case Sequential:
		return "Expect sequential access; the kernel may read ahead aggressively"
	case Random:
		return "Expect random access; the kernel should disable readahead"
	case NoReuse:
		return "Data will be accessed once and may be dropped from the cache promptly"
	case WillNeed:
		return "Data will be accessed soon; the kernel may prefetch it into the cache now"
	case DontNeed:
		return "Data will not be accessed soon; the kernel may evict it from the cache now"
	default:
		return ""
	}
}

func (a Advice) valid() bool {
	return a >= Normal && a <= DontNeed
}

// ParseAdvice returns the advice named by keyword, ignoring case.
func ParseAdvice(keyword string) (Advice, error) {
	k := strings.ToLower(keyword)
	for _, a := range Advices {
		if a.Keyword() == k {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", keyword, ErrUnknownAdvice)
}

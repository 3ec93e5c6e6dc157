// Package fadvise applies POSIX file access advice (posix_fadvise) to ranges of files.
package fadvise

import (
	"io"

	"github.com/go-logr/logr"

	"github.com/iand/fadvise/internal"
)

// Advice is an expected access pattern for a range of a file.
type Advice = internal.Advice

const (
	Normal     = internal.Normal     // no special treatment
	Sequential = internal.Sequential // expect sequential access
	Random     = internal.Random     // expect random access
	NoReuse    = internal.NoReuse    // data will be accessed once
	WillNeed   = internal.WillNeed   // data will be accessed soon
	DontNeed   = internal.DontNeed   // data will not be accessed soon
)

// Advices lists every supported advice.
func Advices() []Advice {
	return append([]Advice(nil), internal.Advices...)
}

// ParseAdvice returns the advice named by a keyword such as "willneed".
func ParseAdvice(keyword string) (Advice, error) {
	return internal.ParseAdvice(keyword)
}

// Request describes the file and range that advice is applied to.
type Request struct {
	Path   string
	Advice Advice
	Offset int64

	// Length of the range in bytes. A nil Length covers the file's size at the time Apply is called.
	Length *int64
}

// Options configures Apply. The zero value discards logs and diagnostics and issues the real system call.
type Options struct {
	Logger logr.Logger

	// Diagnostics receives a short summary of the resolved request before the call is made.
	Diagnostics io.Writer

	// Advise replaces the system call. Intended for tests.
	Advise func(fd uintptr, offset int64, length int64, advice Advice) error
}

// Apply checks that the request names a regular file and issues a single advisory call for
// the requested range. The kernel is free to ignore the advice.
func Apply(req Request, options *Options) error {
	if options == nil {
		options = &Options{}
	}
	logger := options.Logger
	if logger == nil {
		logger = logr.Discard()
	}

	inv := internal.NewInvoker(
		options.Advise,
		options.Diagnostics,
		logger.V(LogLevelDiagnostics),
		logger.V(LogLevelTrace),
	)

	ireq := internal.Request{
		Path:   req.Path,
		Advice: req.Advice,
		Offset: req.Offset,
	}
	if req.Length != nil {
		ireq.Length = *req.Length
		ireq.HasLength = true
	}

	return inv.Apply(ireq)
}

// Version returns the semver version of the build.
func Version() string {
	return internal.Version()
}

var (
	ErrNegativeLength = internal.ErrNegativeLength
	ErrNegativeOffset = internal.ErrNegativeOffset
	ErrNotExist       = internal.ErrNotExist
	ErrNotRegularFile = internal.ErrNotRegularFile
	ErrUnknownAdvice  = internal.ErrUnknownAdvice
	ErrUnknownShell   = internal.ErrUnknownShell
	ErrUnsupported    = internal.ErrUnsupported
)

const (
	LogLevelDiagnostics = 1 // log level increment for diagnostics logging
	LogLevelTrace       = 2 // log level increment for verbose tracing
)

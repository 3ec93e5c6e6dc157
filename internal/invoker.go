package internal

import (
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
)

// AdviseFunc issues an advisory call for a range of the file referred to by fd.
type AdviseFunc func(fd uintptr, offset int64, length int64, advice Advice) error

// Invoker applies advice to files. It holds no state between calls.
type Invoker struct {
	advise  AdviseFunc
	diag    io.Writer   // operator diagnostics, always written
	dlogger logr.Logger // diagnostics logger
	tlogger logr.Logger // trace logger
}

func NewInvoker(advise AdviseFunc, diag io.Writer, dlogger logr.Logger, tlogger logr.Logger) *Invoker {
	if advise == nil {
		advise = Fadvise
	}
	if diag == nil {
		diag = io.Discard
	}
	if dlogger == nil {
		dlogger = logr.Discard()
	}
	if tlogger == nil {
		tlogger = logr.Discard()
	}
	return &Invoker{
		advise:  advise,
		diag:    diag,
		dlogger: dlogger,
		tlogger: tlogger,
	}
}

// Apply validates the request, reports the resolved range and issues the advisory call.
// Validation failures are reported before the file is opened.
func (inv *Invoker) Apply(req Request) error {
	req, st, err := req.Resolve()
	if err != nil {
		return err
	}
	if inv.tlogger.Enabled() {
		inv.tlogger.Info("stat", "path", req.Path, "size", st.Size(), "mode", st.Mode().String())
	}

	if err := WriteSummary(inv.diag, req); err != nil {
		return fmt.Errorf("write diagnostics: %w", err)
	}

	f, err := os.Open(req.Path)
	if err != nil {
		return fmt.Errorf("open the file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil && inv.dlogger.Enabled() {
			inv.dlogger.Info("close failed", "path", req.Path, "error", err.Error())
		}
	}()

	fd := f.Fd()
	if inv.dlogger.Enabled() {
		inv.dlogger.Info("advising", "fd", fd, "advice", req.Advice.String(), "offset", req.Offset, "len", req.Length)
	}

	if err := inv.advise(fd, req.Offset, req.Length, req.Advice); err != nil {
		return fmt.Errorf("fadvise: %w", err)
	}

	return nil
}

// WriteSummary writes the four line description of a resolved request.
func WriteSummary(w io.Writer, req Request) error {
	_, err := fmt.Fprintf(w, "filename: %s\nadvice: %s\noffset: %d\nlen: %d\n", req.Path, req.Advice, req.Offset, req.Length)
	return err
}

//go:build linux

package internal

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/sys/unix"
)

func TestAdviceCodeLinux(t *testing.T) {
	want := map[Advice]int{
		Normal:     unix.FADV_NORMAL,
		Sequential: unix.FADV_SEQUENTIAL,
		Random:     unix.FADV_RANDOM,
		NoReuse:    unix.FADV_NOREUSE,
		WillNeed:   unix.FADV_WILLNEED,
		DontNeed:   unix.FADV_DONTNEED,
	}

	for _, a := range Advices {
		code, err := a.Code()
		if err != nil {
			t.Fatalf("Code(%v): unexpected error: %v", a, err)
		}
		if code != want[a] {
			t.Errorf("Code(%v): got %d, wanted %d", a, code, want[a])
		}
	}
}

func TestFadvise(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.bin")
	if err := os.WriteFile(path, make([]byte, 10000), 0o644); err != nil {
		t.Fatalf("WriteFile: unexpected error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: unexpected error: %v", err)
	}
	defer f.Close()

	for _, a := range Advices {
		// Run twice to check repeating advice gives the same outcome
		for i := 0; i < 2; i++ {
			if err := Fadvise(f.Fd(), 0, 10000, a); err != nil {
				t.Errorf("Fadvise(%v): unexpected error: %v", a, err)
			}
		}
	}
}

func TestFadviseBadDescriptor(t *testing.T) {
	fd := -1
	err := Fadvise(uintptr(fd), 0, 0, Normal)
	if !errors.Is(err, unix.EBADF) {
		t.Errorf("got error %v, wanted %v", err, unix.EBADF)
	}
}

func TestInvokerSystemCall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.bin")
	if err := os.WriteFile(path, make([]byte, 4096), 0o644); err != nil {
		t.Fatalf("WriteFile: unexpected error: %v", err)
	}

	inv := NewInvoker(nil, nil, nil, nil)
	for _, a := range Advices {
		if err := inv.Apply(Request{Path: path, Advice: a}); err != nil {
			t.Errorf("Apply(%v): unexpected error: %v", a, err)
		}
	}
}

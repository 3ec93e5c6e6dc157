package internal

import (
	"errors"
	"testing"
)

func TestParseNonNegative(t *testing.T) {
	testCases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "0", want: 0},
		{in: "4096", want: 4096},
		{in: "9223372036854775807", want: 9223372036854775807},
		{in: "-1", wantErr: true},
		{in: "1k", wantErr: true},
		{in: "", wantErr: true},
		{in: "9223372036854775808", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseNonNegative("offset", tc.in, ErrNegativeOffset)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("got %d, wanted error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseNonNegative: unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %d, wanted %d", got, tc.want)
			}
		})
	}
}

func TestParseNonNegativeNegative(t *testing.T) {
	_, err := ParseNonNegative("length", "-4096", ErrNegativeLength)
	if !errors.Is(err, ErrNegativeLength) {
		t.Errorf("got error %v, wanted %v", err, ErrNegativeLength)
	}
}

func TestRequestResolveKeepsExplicitLength(t *testing.T) {
	path := writeTestFile(t, 10000)

	req, st, err := Request{Path: path, Advice: Normal, Length: 5, HasLength: true}.Resolve()
	if err != nil {
		t.Fatalf("Resolve: unexpected error: %v", err)
	}
	if req.Length != 5 {
		t.Errorf("got length %d, wanted %d", req.Length, 5)
	}
	if st.Size() != 10000 {
		t.Errorf("got size %d, wanted %d", st.Size(), 10000)
	}
}

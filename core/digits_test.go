package core

import (
	"strconv"
	"testing"
)

func TestDecimalWidth(t *testing.T) {
	testCases := []struct {
		n    uint32
		want int
	}{
		{0, 1}, {9, 1}, {10, 2}, {99, 2}, {100, 3}, {1023, 4}, {65535, 5}, {4294967295, 10},
	}
	for _, tc := range testCases {
		if got := decimalWidth(tc.n); got != tc.want {
			t.Errorf("decimalWidth(%d): expected %d, got %d", tc.n, tc.want, got)
		}
		var buf digitBuffer
		if got := len(buf.format(tc.n)); got != tc.want {
			t.Errorf("format(%d) length: expected %d, got %d", tc.n, tc.want, got)
		}
	}
}

func TestFormatMatchesStrconv(t *testing.T) {
	var buf digitBuffer
	for _, n := range []uint32{0, 1, 42, 100, 999, 1000, 123456789, 4000000000, 4294967295} {
		if got, want := string(buf.format(n)), strconv.FormatUint(uint64(n), 10); got != want {
			t.Errorf("format(%d): expected %q, got %q", n, want, got)
		}
	}
}

func TestFormatFraction(t *testing.T) {
	testCases := []struct {
		frac uint32
		want string
	}{
		{0, "000"}, {5, "005"}, {50, "050"}, {500, "500"}, {999, "999"},
	}
	for _, tc := range testCases {
		var dst [3]byte
		formatFraction(dst[:], tc.frac)
		if string(dst[:]) != tc.want {
			t.Errorf("formatFraction(%d): expected %q, got %q", tc.frac, tc.want, dst[:])
		}
	}
}

func TestUtoaHex8(t *testing.T) {
	if got := utoa(65535); got != "65535" {
		t.Errorf("utoa: got %q", got)
	}
	if got := hex8(0xAE); got != "AE" {
		t.Errorf("hex8: got %q", got)
	}
}

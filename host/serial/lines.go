package serial

import (
	"bufio"
	"io"
	"strings"
)

// ScanLines reads CR/LF terminated lines from r and hands each one, without
// its terminator, to fn. It returns when r is exhausted or fn returns false.
// Blank lines are skipped.
func ScanLines(r io.Reader, fn func(line string) bool) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		if !fn(line) {
			return nil
		}
	}
	return scanner.Err()
}

package core

// maxDigits is the decimal width of the largest uint32.
const maxDigits = 10

// digitBuffer holds the decimal rendering of one uint32.
type digitBuffer [maxDigits]byte

// format renders n into buf and returns the used prefix. Digits are produced
// least-significant first and then reversed in place.
func (buf *digitBuffer) format(n uint32) []byte {
	i := 0
	for {
		buf[i] = byte('0' + n%10)
		i++
		n /= 10
		if n == 0 {
			break
		}
	}
	for l, r := 0, i-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}
	return buf[:i]
}

// decimalWidth returns how many digits format(n) produces.
func decimalWidth(n uint32) int {
	w := 1
	for n >= 10 {
		n /= 10
		w++
	}
	return w
}

// formatFraction writes exactly len(dst) digits of frac, left-padded with zeros.
// Digits above that width are discarded.
func formatFraction(dst []byte, frac uint32) {
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = byte('0' + frac%10)
		frac /= 10
	}
}

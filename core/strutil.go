package core

// utoa converts an unsigned integer to a string without using fmt package
func utoa(n uint32) string {
	var buf digitBuffer
	return string(buf.format(n))
}

const hexDigits = "0123456789ABCDEF"

// hex8 renders a byte as two upper-case hex digits
func hex8(v byte) string {
	return string([]byte{hexDigits[v>>4], hexDigits[v&0x0F]})
}

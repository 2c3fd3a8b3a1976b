package device

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/leandrodaf/buzzer/sdk/buzzer"
	"github.com/leandrodaf/buzzer/sdk/rtttl"
)

// Attribute names exposed for every buzzer.
const (
	AttrFrequency = "frequency"
	AttrPlay      = "play"
)

// attribute is a named text endpoint on a device. A nil read or write
// makes it write-only or read-only.
type attribute struct {
	read  func() string
	write func(buf []byte)
}

func buzzerAttributes(dev *Device, player *rtttl.Player) map[string]attribute {
	return map[string]attribute{
		AttrFrequency: {
			read: func() string {
				return strconv.Itoa(buzzer.Frequency(dev.Driver))
			},
			write: func(buf []byte) {
				buzzer.SetFrequency(dev.Driver, parseInteger(string(buf)))
			},
		},
		AttrPlay: {
			write: func(buf []byte) {
				if i := bytes.IndexByte(buf, 0); i >= 0 {
					buf = buf[:i]
				}
				player.Play(dev.Driver, string(buf))
			},
		},
	}
}

// parseInteger reads the longest integer prefix of s the way C's
// strtol(s, NULL, 0) does: leading space, an optional sign, then hex with
// 0x, octal with a leading 0, or decimal. Garbage after the number is
// ignored, no digits yield 0 and out-of-range values clamp to the int32 range.
func parseInteger(s string) int {
	s = strings.TrimLeft(s, " \t\n\v\f\r")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := isDecimal
	switch {
	case end+2 < len(s) && s[end] == '0' && (s[end+1] == 'x' || s[end+1] == 'X') && isHex(s[end+2]):
		end += 2
		digits = isHex
	case end < len(s) && s[end] == '0':
		digits = isOctal
	}
	for end < len(s) && digits(s[end]) {
		end++
	}

	// On ErrRange ParseInt returns the clamped value; on ErrSyntax, 0.
	v, _ := strconv.ParseInt(s[:end], 0, 32)
	return int(v)
}

func isDecimal(c byte) bool { return c >= '0' && c <= '9' }

func isOctal(c byte) bool { return c >= '0' && c <= '7' }

func isHex(c byte) bool {
	return isDecimal(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

package pattern

import "strings"

// DefaultWidth is the minimum number of digits a page number is padded to.
const DefaultWidth = 3

// Pad left-pads a digit string with zeros until it is at least width long.
// Strings that are already wide enough are returned unchanged, never trimmed.
func Pad(digits string, width int) string {
	if len(digits) >= width {
		return digits
	}
	return strings.Repeat("0", width-len(digits)) + digits
}

package barcodegen

import "strings"

// FormatMessage applies a caption pattern to msg.
//
// In the pattern, '_' is replaced by the next message character, '#' drops
// the next message character and '\' escapes the following pattern character.
// Any other pattern character is copied literally. Message characters left
// over when the pattern is exhausted are appended.
func FormatMessage(msg, pattern string) string {
	if pattern == "" {
		return msg
	}
	in := []rune(msg)
	pat := []rune(pattern)
	var sb strings.Builder
	i := 0
	for p := 0; p < len(pat); p++ {
		switch c := pat[p]; c {
		case '\\':
			p++
			if p < len(pat) {
				sb.WriteRune(pat[p])
			}
		case '_':
			if i < len(in) {
				sb.WriteRune(in[i])
				i++
			}
		case '#':
			if i < len(in) {
				i++
			}
		default:
			sb.WriteRune(c)
		}
	}
	if i < len(in) {
		sb.WriteString(string(in[i:]))
	}
	return sb.String()
}

package detect

import "strings"

// trimLine returns s with surrounding whitespace removed and, if the
// result still contains a newline, only its first line — git occasionally
// emits a trailing blank line that strings.TrimSpace alone won't catch
// when combined with a prefix match.
func trimLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.IndexByte(s, '\n'); idx != -1 {
		s = s[:idx]
	}
	return s
}

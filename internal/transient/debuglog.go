package transient

import (
	"strings"
	"unicode/utf8"
)

// DebugLogLimit caps the overlay log in bytes, separators included.
const DebugLogLimit = 512

// DebugLog is a bounded deque of lines. Appending evicts the oldest lines
// until the newest fits.
type DebugLog struct {
	lines []string
	size  int
	limit int
}

func NewDebugLog(limit int) *DebugLog {
	return &DebugLog{limit: limit}
}

// Append adds text, one entry per non-empty embedded line.
func (l *DebugLog) Append(text string) {
	for line := range strings.SplitSeq(text, "\n") {
		if line == "" {
			continue
		}
		l.push(line)
	}
}

func (l *DebugLog) push(line string) {
	if len(line) > l.limit {
		l.Reset()
		line = truncate(line, l.limit)
	}
	for len(l.lines) > 0 && l.size+1+len(line) > l.limit {
		l.evict()
	}
	if len(l.lines) > 0 {
		l.size++
	}
	l.lines = append(l.lines, line)
	l.size += len(line)
}

func (l *DebugLog) evict() {
	l.size -= len(l.lines[0])
	l.lines = l.lines[1:]
	if len(l.lines) > 0 {
		l.size--
	}
}

func (l *DebugLog) Reset() {
	l.lines = nil
	l.size = 0
}

// Len is the byte length of String.
func (l *DebugLog) Len() int { return l.size }

func (l *DebugLog) Lines() []string {
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

func (l *DebugLog) String() string {
	return strings.Join(l.lines, "\n")
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

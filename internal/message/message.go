// Package message decodes companion messages into typed updates.
package message

import (
	"math"
	"strconv"
	"strings"

	go_json "github.com/goccy/go-json"
)

// Message is one inbound dictionary. Values are whatever the transport
// produced: native numbers and booleans, or strings.
type Message map[string]any

// Normalize rewrites snake_case keys to camelCase. When both spellings are
// present the camelCase value wins.
func Normalize(m Message) Message {
	out := make(Message, len(m))
	for k, v := range m {
		if !strings.Contains(k, "_") {
			out[k] = v
		}
	}
	for k, v := range m {
		if !strings.Contains(k, "_") {
			continue
		}
		ck := camel(k)
		if _, ok := out[ck]; !ok {
			out[ck] = v
		}
	}
	return out
}

func camel(k string) string {
	var b strings.Builder
	b.Grow(len(k))
	upper := false
	for i, r := range k {
		if r == '_' {
			upper = i > 0
			continue
		}
		if upper && r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		upper = false
		b.WriteRune(r)
	}
	return b.String()
}

func (m Message) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// Int coerces the value at key. Unparseable values yield 0.
func (m Message) Int(key string) (int, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	return toInt(v), true
}

// Bool coerces the value at key using the first character of strings.
func (m Message) Bool(key string) (bool, bool) {
	v, ok := m[key]
	if !ok {
		return false, false
	}
	return toBool(v), true
}

func (m Message) String(key string) (string, bool) {
	v, ok := m[key]
	if !ok {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, true
	case nil:
		return "", true
	default:
		return strconv.Itoa(toInt(v)), true
	}
}

func toInt(v any) int {
	switch t := v.(type) {
	case int:
		return t
	case int8:
		return int(t)
	case int16:
		return int(t)
	case int32:
		return int(t)
	case int64:
		return int(t)
	case uint8:
		return int(t)
	case uint16:
		return int(t)
	case uint32:
		return int(t)
	case uint64:
		return int(t)
	case float32:
		return truncFloat(float64(t))
	case float64:
		return truncFloat(t)
	case bool:
		if t {
			return 1
		}
		return 0
	case go_json.Number:
		return numberInt(t)
	case string:
		return leadingInt(t)
	default:
		return 0
	}
}

func truncFloat(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int(f)
}

func numberInt(n go_json.Number) int {
	if i, err := n.Int64(); err == nil {
		return int(i)
	}
	if f, err := n.Float64(); err == nil {
		return truncFloat(f)
	}
	return leadingInt(string(n))
}

// leadingInt parses an optional sign and the digits that follow it,
// ignoring anything after. "12abc" is 12, "abc" is 0.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		if s[0] == '-' {
			return math.MinInt32
		}
		return math.MaxInt32
	}
	return int(n)
}

func toBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return false
		}
		switch s[0] {
		case 't', 'T', 'y', 'Y', '1':
			return true
		case 'f', 'F', 'n', 'N', '0':
			return false
		}
		return leadingInt(s) != 0
	default:
		return toInt(v) != 0
	}
}

// Outbound message keys.
const (
	KeyRequestData = "requestData"
)

// RequestData is the message asking the companion for fresh data.
func RequestData() Message {
	return Message{KeyRequestData: 1}
}

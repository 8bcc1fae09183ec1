package validate

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	MinNameLength = 3
	MaxNameLength = 100

	// MaxPageLimit caps list pagination. Requested limits above it are
	// clamped; there is no lower bound, 0 and negatives pass through.
	MaxPageLimit = 100
)

// Author checks author attributes and returns every applicable message.
// A nil pointer means the field was absent from the request body.
func Author(firstName, lastName *string, age *int) []string {
	var msgs []string
	msgs = append(msgs, boundedField("First name", deref(firstName))...)
	msgs = append(msgs, boundedField("Last name", deref(lastName))...)
	if age == nil {
		msgs = append(msgs, "Age can't be blank")
	}
	return msgs
}

// BookTitle checks presence and length bounds. Uniqueness is a store-level
// concern and its message is appended by the store.
func BookTitle(title string) []string {
	return boundedField("Title", title)
}

// boundedField aggregates presence and length messages the way the failures
// are reported to clients: all of them, not just the first.
func boundedField(label, v string) []string {
	var msgs []string
	if strings.TrimSpace(v) == "" {
		msgs = append(msgs, label+" can't be blank")
	}
	switch n := utf8.RuneCountInString(v); {
	case n < MinNameLength:
		msgs = append(msgs, label+" is too short (minimum is "+strconv.Itoa(MinNameLength)+" characters)")
	case n > MaxNameLength:
		msgs = append(msgs, label+" is too long (maximum is "+strconv.Itoa(MaxNameLength)+" characters)")
	}
	return msgs
}

var leadingInt = regexp.MustCompile(`^[+-]?[0-9]+`)

// IntParam parses a query or path parameter with loose to-integer semantics:
// the leading integer portion of the string counts, anything else is 0.
// "12" -> 12, "12abc" -> 12, "abc" -> 0, "" -> 0.
func IntParam(s string) int {
	m := leadingInt.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

// Limit resolves the effective page limit: default and ceiling are both
// MaxPageLimit, with no floor.
func Limit(raw string) int {
	if raw == "" {
		return MaxPageLimit
	}
	if n := IntParam(raw); n < MaxPageLimit {
		return n
	}
	return MaxPageLimit
}

// Offset resolves the page offset; absent or garbage means 0.
func Offset(raw string) int {
	return IntParam(raw)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

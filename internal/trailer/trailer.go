// Package trailer finds and edits the block of "Token: value" lines at the end
// of a commit message body.
package trailer

import (
	"slices"
	"strings"
)

// BreakingChangeToken is the trailer token conventional commits use for breaking changes
const BreakingChangeToken = "BREAKING CHANGE"

// Trailer is a single "Token: value" line
type Trailer struct {
	Token string
	Value string
}

// String serializes the trailer as "Token: value"
func (t Trailer) String() string {
	return t.Token + ": " + t.Value
}

// BreakingChange builds a "BREAKING CHANGE: <value>" trailer
func BreakingChange(value string) Trailer {
	return Trailer{Token: BreakingChangeToken, Value: value}
}

// Parse splits a line on its first colon.
// The boolean is false for lines that cannot be trailers (blank, comment, no colon).
func Parse(line string) (Trailer, bool) {
	if isComment(line) || isBlank(line) {
		return Trailer{}, false
	}
	token, value, found := strings.Cut(line, ":")
	if !found {
		return Trailer{}, false
	}
	return Trailer{
		Token: strings.TrimSpace(token),
		Value: strings.TrimSpace(value),
	}, true
}

// Locate scans lines backward from the end and returns where a new trailer
// should be inserted (start) and where the current trailer block ends (end).
//
// The scan keeps two counters, trailers and comments:
//   - a comment line ("#...") counts as a comment and the scan continues
//   - a blank line ends the scan if a trailer was seen; the block starts right
//     after it. Otherwise the blank line is skipped.
//   - a content line (no colon) ends the scan; new trailers go two lines below
//     it plus the comments seen, leaving room for a separating blank line
//   - any other line counts as a trailer
//
// If every line is a trailer, comment or blank, start is 0.
func Locate(lines []string) (start, end int) {
	trailers, comments := 0, 0
	for i := len(lines) - 1; i >= 0; i-- {
		line := lines[i]
		switch {
		case isComment(line):
			comments++
		case isBlank(line):
			if trailers > 0 {
				start = i + 1
				return start, start + trailers + comments
			}
		case !strings.Contains(line, ":"):
			start = i + 2 + comments
			return start, start + trailers
		default:
			trailers++
		}
	}
	return 0, trailers + comments
}

// Insert adds text as a new line at the start of the trailer block of body.
// Lines already in the block stay below it in their original order. The body
// is padded with blank lines when it is shorter than the insertion point.
func Insert(body, text string) string {
	lines := strings.Split(body, "\n")
	start, _ := Locate(lines)

	for len(lines) < start {
		lines = append(lines, "")
	}

	lines = append(lines, "")
	copy(lines[start+1:], lines[start:])
	lines[start] = text

	return strings.Join(lines, "\n")
}

// Attach inserts t into body, see Insert
func Attach(body string, t Trailer) string {
	return Insert(body, t.String())
}

// Block returns the trailers currently found at the end of body, in order.
// It walks back over the same lines Locate counts as trailers; comment lines
// are skipped.
func Block(body string) []Trailer {
	lines := strings.Split(body, "\n")

	var found []Trailer
	for i := len(lines) - 1; i >= 0; i-- {
		line := lines[i]
		if isComment(line) {
			continue
		}
		if isBlank(line) {
			if len(found) > 0 {
				break
			}
			continue
		}
		t, ok := Parse(line)
		if !ok {
			break
		}
		found = append(found, t)
	}

	slices.Reverse(found)
	return found
}

func isComment(line string) bool {
	return strings.HasPrefix(line, "#")
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

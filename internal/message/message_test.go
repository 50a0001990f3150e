package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wlame/mkcommit/internal/grammar"
)

func TestCommitMessageMake(t *testing.T) {
	assert.Equal(t, "feat: x", CommitMessage{FirstLine: "feat: x"}.String())
	assert.Equal(t, "feat: x\n\nbody", CommitMessage{FirstLine: "feat: x", Body: "body"}.String())
	assert.Equal(t, "feat: x\nbody", CommitMessage{FirstLine: "feat: x", Body: "body"}.Make("\n"))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want CommitMessage
	}{
		{name: "single line", raw: "feat: x", want: CommitMessage{FirstLine: "feat: x"}},
		{name: "with body", raw: "feat: x\n\nbody\n", want: CommitMessage{FirstLine: "feat: x", Body: "\nbody\n"}},
		{name: "crlf", raw: "feat: x\r\nbody", want: CommitMessage{FirstLine: "feat: x", Body: "body"}},
		{name: "leading comments", raw: "# Please enter\n# the message\nfix: y", want: CommitMessage{FirstLine: "fix: y"}},
		{name: "only comments", raw: "# nothing", want: CommitMessage{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.raw))
		})
	}
}

func TestHeader(t *testing.T) {
	tests := []struct {
		name   string
		header Header
		want   string
	}{
		{name: "plain", header: Header{Keywords: []string{"feat"}, Subject: "add x"}, want: "feat: add x"},
		{name: "scope and breaking", header: Header{Keywords: []string{"feat"}, Scope: "api", Breaking: true, Subject: "drop v1"}, want: "feat(api)!: drop v1"},
		{name: "multiple", header: Header{Keywords: []string{"feat", "fix"}, Subject: "x"}, want: "feat, fix: x"},
		{name: "multiple no space", header: Header{Keywords: []string{"feat", "fix"}, NoSpace: true, Subject: "x"}, want: "feat,fix: x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.header.String())
		})
	}
}

func TestApplyBreaking(t *testing.T) {
	h := Header{Keywords: []string{"feat"}, Subject: "x"}
	body := ApplyBreaking(&h, "", "body")
	assert.True(t, h.Breaking)
	assert.Equal(t, "body", body)

	h = Header{Keywords: []string{"feat"}, Subject: "x"}
	body = ApplyBreaking(&h, "v1 is gone", "Body text")
	assert.False(t, h.Breaking)
	assert.Equal(t, "Body text\n\nBREAKING CHANGE: v1 is gone", body)
}

func TestPreambleWrap(t *testing.T) {
	layout := grammar.DefaultPreamble()

	assert.Equal(t, "[KrCz/PROJECT-1] feat: x", Preamble{Initials: "KrCz", Ticket: "PROJECT-1"}.Wrap(layout, "feat: x"))
	assert.Equal(t, "[KrCz/-] feat: x", Preamble{Initials: "KrCz"}.Wrap(layout, "feat: x"))

	layout.Order = grammar.TicketFirst
	assert.Equal(t, "[-/KrCz] feat: x", Preamble{Initials: "KrCz"}.Wrap(layout, "feat: x"))
}

func TestInitials(t *testing.T) {
	tests := []struct {
		name        string
		full        string
		first, last int
		want        string
	}{
		{"two and two", "Krzysztof Czarnecki", 2, 2, "KrCz"},
		{"middle name ignored", "Krzysztof Jan Czarnecki", 2, 2, "KrCz"},
		{"unicode", "Łukasz Żółw", 2, 3, "ŁuŻół"},
		{"short name", "Al Bo", 3, 3, "AlBo"},
		{"single word", "Cher", 2, 2, "ChCh"},
		{"empty", "  ", 2, 2, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Initials(tt.full, tt.first, tt.last))
		})
	}
}

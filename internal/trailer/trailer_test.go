package trailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsert(t *testing.T) {
	tests := []struct {
		name string
		body string
		text string
		want string
	}{
		{
			name: "above existing trailer",
			body: "Line 1\nLine 2\n\nTrailer-token: Value\n",
			text: "Inserted: Value",
			want: "Line 1\nLine 2\n\nInserted: Value\nTrailer-token: Value\n",
		},
		{
			name: "body without trailers",
			body: "Line 1",
			text: "Inserted: Value",
			want: "Line 1\n\nInserted: Value",
		},
		{
			name: "empty body",
			body: "",
			text: "",
			want: "\n",
		},
		{
			name: "only trailers",
			body: "A: 1\nB: 2",
			text: "C: 3",
			want: "C: 3\nA: 1\nB: 2",
		},
		{
			name: "comment after trailer block",
			body: "Body\n\nA: 1\n# comment",
			text: "C: 3",
			want: "Body\n\nC: 3\nA: 1\n# comment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Insert(tt.body, tt.text))
		})
	}
}

func TestInsertKeepsExistingTrailers(t *testing.T) {
	body := Attach("Line 1", Trailer{Token: "T1", Value: "first"})
	body = Attach(body, Trailer{Token: "T2", Value: "second"})

	assert.Equal(t, "Line 1\n\nT2: second\nT1: first", body)
	assert.Equal(t, []Trailer{
		{Token: "T2", Value: "second"},
		{Token: "T1", Value: "first"},
	}, Block(body))
}

func TestLocate(t *testing.T) {
	tests := []struct {
		name      string
		lines     []string
		wantStart int
		wantEnd   int
	}{
		{name: "no lines", lines: nil, wantStart: 0, wantEnd: 0},
		{name: "content only", lines: []string{"Line 1"}, wantStart: 2, wantEnd: 2},
		{name: "blank then trailers", lines: []string{"Line 1", "", "A: 1", "B: 2"}, wantStart: 2, wantEnd: 4},
		{name: "trailing blank ignored", lines: []string{"Line 1", "", "A: 1", ""}, wantStart: 2, wantEnd: 3},
		{name: "comment counted in block", lines: []string{"Line 1", "", "A: 1", "# c"}, wantStart: 2, wantEnd: 4},
		{name: "trailers right below content", lines: []string{"Line 1", "A: 1"}, wantStart: 2, wantEnd: 3},
		// The comment pushes the insertion point below the existing trailer
		{name: "comment between content and trailer", lines: []string{"Line 1", "# note", "A: 1"}, wantStart: 3, wantEnd: 4},
		{name: "nothing but trailers", lines: []string{"A: 1", "B: 2"}, wantStart: 0, wantEnd: 2},
		{name: "nothing but comments", lines: []string{"# a", "# b"}, wantStart: 0, wantEnd: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := Locate(tt.lines)
			assert.Equal(t, tt.wantStart, start, "start")
			assert.Equal(t, tt.wantEnd, end, "end")
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want Trailer
		ok   bool
	}{
		{line: "Reviewed-by: Jane Doe", want: Trailer{Token: "Reviewed-by", Value: "Jane Doe"}, ok: true},
		{line: "BREAKING CHANGE: config moved", want: BreakingChange("config moved"), ok: true},
		{line: "Refs:PROJECT-1:2", want: Trailer{Token: "Refs", Value: "PROJECT-1:2"}, ok: true},
		{line: "# Token: value"},
		{line: "   "},
		{line: "plain text"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := Parse(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBlock(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []Trailer
	}{
		{name: "no trailers", body: "Just text", want: nil},
		{name: "empty", body: "", want: nil},
		{
			name: "comments skipped",
			body: "Body\n\nA: 1\n# comment\nB: 2\n",
			want: []Trailer{{Token: "A", Value: "1"}, {Token: "B", Value: "2"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Block(tt.body))
		})
	}
}

func TestTrailerString(t *testing.T) {
	assert.Equal(t, "BREAKING CHANGE: gone", BreakingChange("gone").String())
}

package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wlame/mkcommit/internal/grammar"
	"github.com/wlame/mkcommit/internal/keyword"
	"github.com/wlame/mkcommit/internal/lint"
)

func TestSubject(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"feat: add x", "add x"},
		{"feat:add x", "add x"},
		{"feat:  two spaces", " two spaces"},
		{"no colon here", "no colon here"},
		// The first colon wins, even inside a scope
		{"feat(a:b): subject", "b): subject"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, Subject(tt.line))
		})
	}
}

func TestSubjectNoLongerThan(t *testing.T) {
	tests := []struct {
		name    string
		limit   int
		line    string
		wantErr bool
	}{
		{name: "short", limit: 55, line: "feat: asdfasdf"},
		{name: "exactly at limit", limit: 55, line: "feat: " + strings.Repeat("a", 55)},
		{name: "one over limit", limit: 55, line: "feat: " + strings.Repeat("a", 56), wantErr: true},
		{name: "runes not bytes", limit: 5, line: "feat: żółwś"},
		{name: "disabled", limit: 0, line: "feat: " + strings.Repeat("a", 500)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SubjectNoLongerThan(tt.limit).Validate(tt.line)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, lint.ErrLengthExceeded)

			var length *lint.LengthExceededError
			require.ErrorAs(t, err, &length)
			assert.Equal(t, 56, length.Length)
			assert.Equal(t, tt.limit, length.Limit)
			assert.Equal(t, "feat: "+strings.Repeat("a", 55), length.Example)
			assert.NoError(t, SubjectNoLongerThan(tt.limit).Validate(length.Example))
		})
	}
}

func TestSubjectLengthExampleCountsRunes(t *testing.T) {
	err := SubjectNoLongerThan(3).Validate("fix: żółwś")

	var length *lint.LengthExceededError
	require.ErrorAs(t, err, &length)
	assert.Equal(t, "fix: żół", length.Example)
	assert.Contains(t, err.Error(), `(e.g. "fix: żół")`)
}

func TestChain(t *testing.T) {
	var calls []string
	record := func(name string, err error) Validator {
		return Func(func(string) error {
			calls = append(calls, name)
			return err
		})
	}

	boom := errors.New("boom")
	err := Chain(record("a", nil), nil, record("b", boom), record("c", nil)).Validate("x")

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"a", "b"}, calls)
	assert.NoError(t, Chain().Validate("x"))
}

func TestLine(t *testing.T) {
	g, err := grammar.Compile(grammar.Spec{
		Name:     "semantic",
		Keywords: keyword.MustSet(keyword.Keyword{Token: "feat"}),
	})
	require.NoError(t, err)

	assert.NoError(t, Line("feat: x", g))
	assert.ErrorIs(t, Line("fix: x", g), lint.ErrGrammarMismatch)
	assert.NoError(t, Grammar(g).Validate("feat: x"))
}

func TestFieldValidators(t *testing.T) {
	initials, err := Initials(grammar.InitialsShape{FirstNameChars: 2, LastNameChars: 2})
	require.NoError(t, err)
	assert.NoError(t, initials.Validate("KrCz"))

	err = initials.Validate("KrCZ")
	var mismatch *lint.GrammarMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "initials", mismatch.Field)
	assert.Equal(t, "AbCd", mismatch.Example)

	_, err = Initials(grammar.InitialsShape{})
	assert.ErrorIs(t, err, lint.ErrConfiguration)

	ticket, err := Ticket(nil, "PROJECT-1234")
	require.NoError(t, err)
	assert.NoError(t, ticket.Validate("PROJECT-1234"))
	assert.NoError(t, ticket.Validate("-"))
	assert.ErrorIs(t, ticket.Validate("PROJECT1234"), lint.ErrGrammarMismatch)

	_, err = Pattern("broken", grammar.Class(`[a-`), "")
	assert.ErrorIs(t, err, lint.ErrConfiguration)
}

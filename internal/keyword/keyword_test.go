package keyword

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wlame/mkcommit/internal/lint"
)

func TestNewSet(t *testing.T) {
	tests := []struct {
		name     string
		keywords []Keyword
		wantErr  bool
	}{
		{name: "valid", keywords: []Keyword{{Token: "feat"}, {Token: "fix"}}},
		{name: "empty", keywords: nil, wantErr: true},
		{name: "blank token", keywords: []Keyword{{Token: "feat"}, {Token: ""}}, wantErr: true},
		{name: "token with space", keywords: []Keyword{{Token: "new feat"}}, wantErr: true},
		{name: "duplicate token", keywords: []Keyword{{Token: "feat"}, {Token: "feat"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSet(tt.keywords...)
			if tt.wantErr {
				assert.ErrorIs(t, err, lint.ErrConfiguration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.keywords), s.Len())
		})
	}
}

func TestSetIsImmutable(t *testing.T) {
	input := []Keyword{{Token: "feat"}, {Token: "fix"}}
	s := MustSet(input...)

	input[0].Token = "changed"
	assert.Equal(t, []string{"feat", "fix"}, s.Tokens())

	out := s.Keywords()
	out[1].Token = "changed"
	assert.Equal(t, []string{"feat", "fix"}, s.Tokens())
}

func TestExtend(t *testing.T) {
	base := MustSet(Keyword{Token: "feat"}, Keyword{Token: "fix"})

	derived, err := Extend(base, Keyword{Token: "perf", Description: "Performance"})
	require.NoError(t, err)
	assert.Equal(t, []string{"feat", "fix", "perf"}, derived.Tokens())
	assert.Equal(t, []string{"feat", "fix"}, base.Tokens())

	_, err = Extend(base, Keyword{Token: "fix"})
	assert.ErrorIs(t, err, lint.ErrConfiguration)
}

func TestLookup(t *testing.T) {
	s := MustSet(Keyword{Token: "feat", Description: "New Feature"}, Keyword{Token: "fix"})

	k, ok := s.Lookup("feat")
	assert.True(t, ok)
	assert.Equal(t, "feat - New Feature", k.String())

	assert.True(t, s.Contains("fix"))
	assert.False(t, s.Contains("fe"))

	first, ok := s.First()
	assert.True(t, ok)
	assert.Equal(t, "feat", first.Token)

	_, ok = Set{}.First()
	assert.False(t, ok)
}

func TestMustSetPanics(t *testing.T) {
	assert.Panics(t, func() { MustSet() })
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "feat, fix", Join([]string{"feat", "fix"}, false))
	assert.Equal(t, "feat,fix", Join([]string{"feat", "fix"}, true))
	assert.Equal(t, "feat", Join([]string{"feat"}, false))
}

package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"literal is escaped", Literal("a.b(c)"), `a\.b\(c\)`},
		{"class as is", NoComma, `[^,\n]`},
		{"sequence", Seq{Literal("a"), Literal("b")}, `ab`},
		{"alternation", Alt{Literal("a"), Literal("b")}, `(?:a|b)`},
		{"optional", Optional{Literal("!")}, `(?:!)?`},
		{"one or more class", OneOrMore(Digit), `[0-9]+`},
		{"zero or more group", ZeroOrMore(Literal("ab")), `(?:ab)*`},
		{"exactly one", Exactly(Lower, 1), `\p{Ll}`},
		{"exactly three", Exactly(Lower, 3), `\p{Ll}{3}`},
		{"exactly zero", Exactly(Lower, 0), ``},
		{"at least", Repeat{Node: Digit, Min: 2, Max: -1}, `[0-9]{2,}`},
		{"range", Repeat{Node: Digit, Min: 1, Max: 3}, `[0-9]{1,3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.node))
		})
	}
}

func TestCompileExact(t *testing.T) {
	node := Seq{Literal("feat"), Literal(": ")}

	exact, err := CompileExact(node)
	require.NoError(t, err)
	assert.True(t, exact.MatchString("feat: "))
	assert.False(t, exact.MatchString("feat: x"))
	assert.False(t, exact.MatchString(" feat: "))
	assert.False(t, exact.MatchString("feat: \n"))
}

func TestCompileBrokenClass(t *testing.T) {
	_, err := CompileExact(Class(`[a-`))
	assert.Error(t, err)
}

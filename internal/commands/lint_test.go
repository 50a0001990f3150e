package commands

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMessage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
	require.NoError(t, os.WriteFile(path, []byte("feat: from file\n"), 0644))

	head := func() (string, error) { return "fix: from head", nil }

	tests := []struct {
		name    string
		file    string
		head    bool
		args    []string
		stdin   string
		want    string
		wantErr bool
	}{
		{name: "argument", args: []string{"feat: x"}, want: "feat: x"},
		{name: "stdin", args: []string{"-"}, stdin: "feat: piped", want: "feat: piped"},
		{name: "file", file: path, want: "feat: from file\n"},
		{name: "head", head: true, want: "fix: from head"},
		{name: "nothing", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lintFile, lintHead = tt.file, tt.head
			t.Cleanup(func() { lintFile, lintHead = "", false })

			cmd := &cobra.Command{}
			cmd.SetIn(strings.NewReader(tt.stdin))

			got, err := readMessage(cmd, tt.args, head)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("head error", func(t *testing.T) {
		lintHead = true
		t.Cleanup(func() { lintHead = false })

		boom := errors.New("no HEAD")
		_, err := readMessage(&cobra.Command{}, nil, func() (string, error) { return "", boom })
		assert.ErrorIs(t, err, boom)
	})
}

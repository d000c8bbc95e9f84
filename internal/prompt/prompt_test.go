package prompt_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/internal/prompt"
)

func TestParseSelection(t *testing.T) {
	cases := []struct {
		name        string
		line        string
		n           int
		start, goal int
		err         error
	}{
		{"plain", "1,3", 5, 0, 2, nil},
		{"spaces", "  2 ,  5 ", 5, 1, 4, nil},
		{"same vertex", "4,4", 5, 3, 3, nil},
		{"no comma", "1 3", 5, 0, 0, prompt.ErrMissingComma},
		{"empty", "", 5, 0, 0, prompt.ErrMissingComma},
		{"letters", "a,2", 5, 0, 0, prompt.ErrNotNumber},
		{"empty goal", "2,", 5, 0, 0, prompt.ErrNotNumber},
		{"extra comma", "1,2,3", 5, 0, 0, prompt.ErrNotNumber},
		{"zero", "0,2", 5, 0, 0, prompt.ErrOutOfRange},
		{"too big", "1,6", 5, 0, 0, prompt.ErrOutOfRange},
		{"negative", "-1,2", 5, 0, 0, prompt.ErrOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, g, err := prompt.ParseSelection(tc.line, tc.n)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.start, s)
			assert.Equal(t, tc.goal, g)
		})
	}
}

func TestList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, prompt.List(&buf, []string{"Library", "Gym"}))
	assert.Equal(t, "  1) Library\n  2) Gym\n", buf.String())
}

func TestSelect_RepromptsUntilValid(t *testing.T) {
	in := strings.NewReader("1 2\nx,1\n9,1\n3,1\n")
	var out bytes.Buffer

	start, goal, err := prompt.Select(in, &out, []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, "c", start)
	assert.Equal(t, "a", goal)

	text := out.String()
	assert.Equal(t, 4, strings.Count(text, "Select start and goal"))
	assert.Equal(t, 3, strings.Count(text, "invalid selection"))
	assert.Contains(t, text, "comma")
	assert.Contains(t, text, "not a number")
	assert.Contains(t, text, "out of range")
}

func TestSelect_EOF(t *testing.T) {
	_, _, err := prompt.Select(strings.NewReader("nope\n"), io.Discard, []int{1, 2})
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestSelect_EmptyList(t *testing.T) {
	_, _, err := prompt.Select(strings.NewReader("1,1\n"), io.Discard, []int{})
	assert.ErrorIs(t, err, prompt.ErrEmptyList)
}

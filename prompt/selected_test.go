package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/firebird-suite/ask/format"
)

func licenses() []Option[int] {
	return []Option[int]{Opt("MIT", 1), Opt("GPL", 2)}
}

func TestSelect_ByLabel(t *testing.T) {
	v, out, err := runInput(t, Select("License", licenses()), "GPL\n")

	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, "[1] - MIT\n[2] - GPL\n- License\n> ", out)
}

func TestSelect_Answers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"index", "1\n", 1},
		{"label any case", "gpl\n", 2},
		{"unknown label retried", "XYZ\nGPL\n", 2},
		{"out of range retried", "0\n3\n-1\n2\n", 2},
		{"empty retried", "\nMIT\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, _, err := runInput(t, Select("License", licenses()), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestSelect_RejectedUntilExhausted(t *testing.T) {
	_, _, err := runInput(t, Select("License", licenses()).MaxTries(2), "XYZ\nBSD\nMIT\n")

	assert.ErrorIs(t, err, ErrMaxTries)
}

func TestSelect_ListPrintedOnce(t *testing.T) {
	_, out, err := runInput(t, Select("License", licenses()).Fmt(quiet), "x\n2\n")

	require.NoError(t, err)
	assert.Equal(t, "[1] - MIT\n[2] - GPL\n- License\n> > ", out)
}

func TestSelect_TitleOnTop(t *testing.T) {
	p := Select("License", licenses()).Fmt(quiet.ListMsgPos(format.Top))

	_, out, err := runInput(t, p, "x\n1\n")

	require.NoError(t, err)
	assert.Equal(t, "- License\n[1] - MIT\n[2] - GPL\n> > ", out)
}

func TestSelect_TitleOnTopRepeated(t *testing.T) {
	p := Select("License", licenses()).
		Fmt(quiet.ListMsgPos(format.Top).RepeatPrompt(true))

	_, out, err := runInput(t, p, "x\n1\n")

	require.NoError(t, err)
	assert.Equal(t, "- License\n[1] - MIT\n[2] - GPL\n> - License\n> ", out)
}

func TestSelect_Surrounds(t *testing.T) {
	p := Select("Level", Labels("Good", "Bad")).
		Fmt(format.New().ListSurrounds("<", "> ").InputPrefix("? "))

	v, out, err := runInput(t, p, "bad\n")

	require.NoError(t, err)
	assert.Equal(t, "Bad", v)
	assert.Equal(t, "<1> Good\n<2> Bad\n- Level\n? ", out)
}

func TestSelect_CopiesOptions(t *testing.T) {
	opts := licenses()
	p := Select("License", opts)
	opts[0].Value = 99

	v, _, err := runInput(t, p, "1\n")

	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

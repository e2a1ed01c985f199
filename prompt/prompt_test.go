package prompt_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/djachenko/justin-utils/prompt"
)

// script answers prompts from a fixed list and records the prompts shown.
type script struct {
	answers []string
	prompts []string
}

func (s *script) ReadLine(p string) (string, error) {
	s.prompts = append(s.prompts, p)
	if len(s.answers) == 0 {
		return "", io.EOF
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, nil
}

func newPrompter(answers ...string) (*prompt.Prompter, *script, *bytes.Buffer) {
	s := &script{answers: answers}
	var out bytes.Buffer
	return prompt.New(s, &out), s, &out
}

func TestAskPermissionLoopsUntilYesOrNo(t *testing.T) {
	p, s, _ := newPrompter("maybe", " Y ")
	ok, err := p.AskPermission("Proceed?")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"Proceed? y/n ", "Proceed? y/n "}, s.prompts)

	p, _, _ = newPrompter("n")
	ok, err = p.AskPermission("Proceed?")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAskPermissionEOF(t *testing.T) {
	p, _, _ := newPrompter()
	_, err := p.AskPermission("Proceed?")
	require.ErrorIs(t, err, io.EOF)
}

func TestAskPermissionAssumeYes(t *testing.T) {
	p, s, _ := newPrompter()
	p.AssumeYes = true
	ok, err := p.AskPermission("Proceed?")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, s.prompts)
}

func TestAskChoice(t *testing.T) {
	p, s, out := newPrompter("x", "7", "1")
	got, err := prompt.AskChoice(p, "Pick one", []int{10, 20, 30})
	require.NoError(t, err)
	assert.Equal(t, 20, got)
	assert.Len(t, s.prompts, 3)
	assert.Equal(t, "Pick one\n0. 10\n1. 20\n2. 30\n", out.String())
}

func TestAskChoiceSingleOption(t *testing.T) {
	p, s, _ := newPrompter()
	got, err := prompt.AskChoice(p, "Pick one", []string{"only"})
	require.NoError(t, err)
	assert.Equal(t, "only", got)
	assert.Empty(t, s.prompts)

	_, err = prompt.AskChoice(p, "Pick one", []string{})
	require.ErrorIs(t, err, prompt.ErrNoOptions)
}

func TestAskChoiceFlagged(t *testing.T) {
	options := []string{"alpha", "beta"}
	tests := []struct {
		answer string
		want   string
		ok     bool
	}{
		{"-", "", false},
		{"", "", true},
		{"1", "beta", true},
		{"5", "5", true},
		{"gamma", "gamma", true},
	}
	for _, tt := range tests {
		p, _, _ := newPrompter(tt.answer)
		got, ok, err := p.AskChoiceFlagged("Tag?", options)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "answer %q", tt.answer)
		assert.Equal(t, tt.ok, ok, "answer %q", tt.answer)
	}
}

func TestAskChoiceWithOther(t *testing.T) {
	options := []string{"a", "b"}

	p, _, _ := newPrompter("2", "custom")
	got, err := p.AskChoiceWithOther("Pick", options)
	require.NoError(t, err)
	assert.Equal(t, "custom", got)
	assert.Equal(t, []string{"a", "b"}, options)

	p, _, _ = newPrompter("0")
	got, err = p.AskChoiceWithOther("Pick", options)
	require.NoError(t, err)
	assert.Equal(t, "a", got)
}

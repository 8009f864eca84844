package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"anonpairbot/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	calls []string
	err   error
}

func (f *fakeCompleter) Complete(_ context.Context, model, prompt string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.calls = append(f.calls, model)
	return fmt.Sprintf("%s says round %d", model, len(f.calls)), nil
}

func TestDebateAlternatesModelsForEachRound(t *testing.T) {
	llm := &fakeCompleter{}
	ft := &fakeTransport{}
	d := NewDebate(llm, "coder-model", "reviewer-model", 2, ft, testTranslator(), testLogger())

	u := completeUser(100, "en")
	require.NoError(t, d.Run(context.Background(), u, "greet new members"))

	assert.Equal(t, []string{"coder-model", "reviewer-model", "coder-model", "reviewer-model"}, llm.calls)

	texts := ft.textsFor(100)
	require.Len(t, texts, 2) // wait notice + transcript
	assert.Equal(t, "debate_wait", texts[0])
	assert.Contains(t, texts[1], "Task: greet new members")
	assert.Contains(t, texts[1], "Coder:")
	assert.Contains(t, texts[1], "Reviewer:")
}

func TestDebateRequiresATask(t *testing.T) {
	d := NewDebate(&fakeCompleter{}, "c", "r", 3, &fakeTransport{}, testTranslator(), testLogger())

	err := d.Run(context.Background(), completeUser(100, "en"), "   ")
	assert.ErrorIs(t, err, core.ErrValidation)
}

func TestDebateDisabledWithoutClient(t *testing.T) {
	ft := &fakeTransport{}
	d := NewDebate(nil, "c", "r", 3, ft, testTranslator(), testLogger())

	require.NoError(t, d.Run(context.Background(), completeUser(100, "en"), "task"))
	assert.Equal(t, []string{"debate_disabled"}, ft.textsFor(100))
}

func TestDebateSurfacesModelFailure(t *testing.T) {
	ft := &fakeTransport{}
	d := NewDebate(&fakeCompleter{err: errors.New("model down")}, "c", "r", 3, ft, testTranslator(), testLogger())

	err := d.Run(context.Background(), completeUser(100, "en"), "task")
	require.Error(t, err)
	assert.Contains(t, ft.textsFor(100), "generic_error")
}

// ABOUTME: Tests for fragment collection and the Generate helper
// ABOUTME: Verifies arrival order, immediate emission, and error propagation
package llm_test

import (
	"bytes"
	"context"
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/blogbench/internal/llm"
	"github.com/harper/blogbench/internal/llm/llmtest"
)

func fragments(parts []string, tail error) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, p := range parts {
			if !yield(p, nil) {
				return
			}
		}
		if tail != nil {
			yield("", tail)
		}
	}
}

func TestCollect(t *testing.T) {
	var out bytes.Buffer
	text, err := llm.Collect(fragments([]string{"# Ti", "tle\n", "body"}, nil), &out)
	require.NoError(t, err)

	assert.Equal(t, "# Title\nbody", text)
	assert.Equal(t, "# Title\nbody", out.String())
}

func TestCollect_EmitsEachFragmentBeforeNext(t *testing.T) {
	var out bytes.Buffer
	parts := []string{"a", "b", "c"}

	seq := func(yield func(string, error) bool) {
		for i, p := range parts {
			// everything yielded so far must already be written
			want := ""
			for _, prev := range parts[:i] {
				want += prev
			}
			assert.Equal(t, want, out.String())
			if !yield(p, nil) {
				return
			}
		}
	}

	text, err := llm.Collect(seq, &out)
	require.NoError(t, err)
	assert.Equal(t, "abc", text)
}

func TestCollect_NilWriter(t *testing.T) {
	text, err := llm.Collect(fragments([]string{"x", "y"}, nil), nil)
	require.NoError(t, err)
	assert.Equal(t, "xy", text)
}

func TestCollect_Error(t *testing.T) {
	boom := errors.New("connection reset")
	text, err := llm.Collect(fragments([]string{"partial "}, boom), nil)

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "partial ", text)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestCollect_WriterError(t *testing.T) {
	_, err := llm.Collect(fragments([]string{"x"}, nil), failingWriter{})
	assert.Error(t, err)
}

func TestGenerate(t *testing.T) {
	client := &llmtest.Client{Responses: []string{"streamed reply"}, FragmentSize: 3}
	req := llm.Request{Model: "m", Messages: []llm.Message{{Role: llm.RoleUser, Content: "hi"}}}

	var out bytes.Buffer
	text, err := llm.Generate(context.Background(), client, req, true, &out)
	require.NoError(t, err)
	assert.Equal(t, "streamed reply", text)
	assert.Equal(t, "streamed reply", out.String())

	out.Reset()
	text, err = llm.Generate(context.Background(), client, req, false, &out)
	require.NoError(t, err)
	assert.Equal(t, "streamed reply", text)
	assert.Empty(t, out.String(), "single-shot responses are not echoed")
	assert.Equal(t, 2, client.Calls())
}

func TestFragments(t *testing.T) {
	assert.Equal(t, []string{"abc", "de"}, llmtest.Fragments("abcde", 3))
	assert.Equal(t, []string{"abcde"}, llmtest.Fragments("abcde", 0))
	assert.Equal(t, []string{"hé", "ll", "o"}, llmtest.Fragments("héllo", 2))
}

// Package llmtest provides a fake llm.Client for stage tests.
package llmtest

import (
	"context"
	"iter"
	"sync"

	"github.com/harper/blogbench/internal/llm"
)

// Client is a scripted llm.Client. Each call consumes the next entry of
// Responses; when exhausted the last entry is reused. Err, when set, fails
// every call. Stream splits the response into Fragments of FragmentSize runes
// (whole response when zero).
type Client struct {
	mu           sync.Mutex
	Responses    []string
	Err          error
	StreamErr    error
	FragmentSize int
	Requests     []llm.Request
	calls        int
}

var _ llm.Client = (*Client)(nil)

// Complete implements llm.Client.
func (c *Client) Complete(_ context.Context, req llm.Request) (string, error) {
	resp, err := c.next(req)
	if err != nil {
		return "", err
	}
	return resp, nil
}

// Stream implements llm.Client.
func (c *Client) Stream(_ context.Context, req llm.Request) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		resp, err := c.next(req)
		if err != nil {
			yield("", err)
			return
		}
		for _, fragment := range Fragments(resp, c.FragmentSize) {
			if !yield(fragment, nil) {
				return
			}
		}
		if c.StreamErr != nil {
			yield("", c.StreamErr)
		}
	}
}

// Calls returns the number of requests received.
func (c *Client) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func (c *Client) next(req llm.Request) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Requests = append(c.Requests, req)
	c.calls++
	if c.Err != nil {
		return "", c.Err
	}
	if len(c.Responses) == 0 {
		return "", nil
	}
	idx := c.calls - 1
	if idx >= len(c.Responses) {
		idx = len(c.Responses) - 1
	}
	return c.Responses[idx], nil
}

// Fragments splits s into chunks of size runes.
func Fragments(s string, size int) []string {
	if size <= 0 || s == "" {
		return []string{s}
	}
	runes := []rune(s)
	out := make([]string, 0, len(runes)/size+1)
	for start := 0; start < len(runes); start += size {
		end := min(start+size, len(runes))
		out = append(out, string(runes[start:end]))
	}
	return out
}

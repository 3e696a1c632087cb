// ABOUTME: Provider-agnostic chat client contract used by the synthesis stages
// ABOUTME: Streaming responses are lazy fragment sequences folded by Collect
package llm

import (
	"context"
	"fmt"
	"io"
	"iter"
	"strings"
)

// Role tags a chat message
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single role-tagged chat message
type Message struct {
	Role    Role
	Content string
}

// Request describes one chat completion call
type Request struct {
	Model       string
	Messages    []Message
	Temperature float32
}

// Client generates text from a chat request.
// Stream returns a single-pass sequence of text fragments; a non-nil error
// ends the sequence.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
	Stream(ctx context.Context, req Request) iter.Seq2[string, error]
}

// Collect concatenates fragments in arrival order, writing each one to w as
// soon as it arrives. w may be nil. On error the text gathered so far is
// returned with it.
func Collect(fragments iter.Seq2[string, error], w io.Writer) (string, error) {
	var sb strings.Builder
	for fragment, err := range fragments {
		if err != nil {
			return sb.String(), err
		}
		sb.WriteString(fragment)
		if w != nil {
			if _, err := io.WriteString(w, fragment); err != nil {
				return sb.String(), fmt.Errorf("writing fragment: %w", err)
			}
		}
	}
	return sb.String(), nil
}

// Generate runs req against client, streaming into w when stream is set.
func Generate(ctx context.Context, client Client, req Request, stream bool, w io.Writer) (string, error) {
	if stream {
		return Collect(client.Stream(ctx, req), w)
	}
	return client.Complete(ctx, req)
}

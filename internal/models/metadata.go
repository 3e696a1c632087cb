// ABOUTME: Metadata attached to a stored human-authored document
// ABOUTME: Known fields are typed; unrecognized keys survive in Extra
package models

import (
	"fmt"
	"slices"

	json "github.com/goccy/go-json"
)

// Metadata keys as they appear in the stored JSON column
const (
	KeyFileName  = "file_name"
	KeySizeBytes = "size_bytes"
	KeyDocType   = "doc_type"
	KeyTags      = "tags"
)

// DocTypeBlogPost is the document type subject to the generated-content skip policy
const DocTypeBlogPost = "blog_post"

// TagGenerated marks machine-written content that must not enter the human corpus
const TagGenerated = "generated"

// Metadata describes a document. A nil Tags slice means no tags field was found,
// which is different from an explicitly empty list.
type Metadata struct {
	FileName  string
	SizeBytes int64
	DocType   string
	Tags      []string
	Extra     map[string]any
}

// HasTag reports whether tag is one of the metadata tags
func (m Metadata) HasTag(tag string) bool {
	return slices.Contains(m.Tags, tag)
}

// MarshalJSON flattens known fields and Extra into a single JSON object.
// Known fields win over Extra entries with the same key.
func (m Metadata) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(m.Extra)+4)
	for k, v := range m.Extra {
		out[k] = v
	}
	out[KeyFileName] = m.FileName
	out[KeySizeBytes] = m.SizeBytes
	if m.DocType != "" {
		out[KeyDocType] = m.DocType
	}
	if m.Tags != nil {
		out[KeyTags] = m.Tags
	}
	return json.Marshal(out)
}

// UnmarshalJSON splits a JSON object into known fields and Extra
func (m *Metadata) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding metadata: %w", err)
	}

	*m = Metadata{}
	for k, v := range raw {
		switch k {
		case KeyFileName:
			if s, ok := v.(string); ok {
				m.FileName = s
				continue
			}
		case KeySizeBytes:
			if n, ok := v.(float64); ok {
				m.SizeBytes = int64(n)
				continue
			}
		case KeyDocType:
			if s, ok := v.(string); ok {
				m.DocType = s
				continue
			}
		case KeyTags:
			if arr, ok := v.([]any); ok {
				m.Tags = make([]string, 0, len(arr))
				for _, item := range arr {
					if s, ok := item.(string); ok {
						m.Tags = append(m.Tags, s)
					}
				}
				continue
			}
		}
		if m.Extra == nil {
			m.Extra = make(map[string]any)
		}
		m.Extra[k] = v
	}
	return nil
}

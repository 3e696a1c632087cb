// ABOUTME: Tests for document metadata JSON shape
// ABOUTME: Verifies known fields, omitted tags, and the Extra escape hatch
package models

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		md   Metadata
		want string
	}{
		{
			name: "without tags",
			md:   Metadata{FileName: "a.md", SizeBytes: 12, DocType: DocTypeBlogPost},
			want: `{"doc_type":"blog_post","file_name":"a.md","size_bytes":12}`,
		},
		{
			name: "with tags",
			md:   Metadata{FileName: "a.md", SizeBytes: 3, DocType: "email", Tags: []string{"a", "b"}},
			want: `{"doc_type":"email","file_name":"a.md","size_bytes":3,"tags":["a","b"]}`,
		},
		{
			name: "empty tags kept",
			md:   Metadata{FileName: "a.md", Tags: []string{}},
			want: `{"file_name":"a.md","size_bytes":0,"tags":[]}`,
		},
		{
			name: "known fields override extra",
			md: Metadata{
				FileName: "real.md",
				Extra:    map[string]any{"file_name": "fake.md", "author": "tim"},
			},
			want: `{"author":"tim","file_name":"real.md","size_bytes":0}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.md)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestMetadata_UnmarshalJSON(t *testing.T) {
	var md Metadata
	err := json.Unmarshal([]byte(`{"file_name":"x.md","size_bytes":42,"doc_type":"blog_post","tags":["go",1,"db"],"author":"jo"}`), &md)
	require.NoError(t, err)

	assert.Equal(t, "x.md", md.FileName)
	assert.Equal(t, int64(42), md.SizeBytes)
	assert.Equal(t, DocTypeBlogPost, md.DocType)
	assert.Equal(t, []string{"go", "db"}, md.Tags)
	assert.Equal(t, map[string]any{"author": "jo"}, md.Extra)
}

func TestMetadata_UnmarshalJSON_NoTags(t *testing.T) {
	var md Metadata
	require.NoError(t, json.Unmarshal([]byte(`{"file_name":"x.md","size_bytes":1}`), &md))

	assert.Nil(t, md.Tags)
	assert.Nil(t, md.Extra)
}

func TestMetadata_UnmarshalJSON_Invalid(t *testing.T) {
	var md Metadata
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &md))
}

func TestMetadata_HasTag(t *testing.T) {
	md := Metadata{Tags: []string{"draft", TagGenerated}}
	assert.True(t, md.HasTag(TagGenerated))
	assert.False(t, md.HasTag("published"))
	assert.False(t, Metadata{}.HasTag(TagGenerated))
}

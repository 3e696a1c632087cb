package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentHash(t *testing.T) {
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", ContentHash(""))
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", ContentHash("hello"))
	assert.Len(t, ContentHash("# any markdown"), 32)
}

func TestNormalize_Idempotent(t *testing.T) {
	md := "---\ntags: [\"a\"]\n---\n# Title\n\nBody with *emphasis*.\n"

	first := Normalize(md)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Normalize(md))
	}

	other := Normalize(md + " ")
	assert.NotEqual(t, first.ContentHash, other.ContentHash)
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		md   string
		want string
	}{
		{
			name: "empty",
			md:   "",
			want: "",
		},
		{
			name: "heading paragraph and list",
			md:   "# Title\n\nSome *emphasis* and **bold** text.\n\n- one\n- two\n",
			want: "Title\nSome emphasis and bold text.\none\ntwo",
		},
		{
			name: "soft line break kept",
			md:   "line one\nline two\n",
			want: "line one\nline two",
		},
		{
			name: "paragraph breaks",
			md:   "first\n\nsecond\n\nthird",
			want: "first\nsecond\nthird",
		},
		{
			name: "fenced code keeps lines",
			md:   "```go\nfmt.Println(1)\nreturn\n```\n",
			want: "fmt.Println(1)\nreturn",
		},
		{
			name: "link text only",
			md:   "Read [the docs](https://go.dev/doc) today",
			want: "Read the docs today",
		},
		{
			name: "inline code",
			md:   "Call `Open()` first",
			want: "Call Open() first",
		},
		{
			name: "images dropped",
			md:   "![diagram](arch.png) explained",
			want: "explained",
		},
		{
			name: "html block dropped",
			md:   "<div class=\"x\">hidden</div>\n\nshown",
			want: "shown",
		},
		{
			name: "blockquote",
			md:   "> quoted words",
			want: "quoted words",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainText(tt.md))
		})
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		plain string
		want  int
	}{
		{"Hello   world\n\nfoo", 3},
		{"", 0},
		{"   \n\t ", 0},
		{"one", 1},
		{"tabs\tand\nnewlines  mixed", 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WordCount(tt.plain), "WordCount(%q)", tt.plain)
	}
}

func TestNormalize_WordCount(t *testing.T) {
	n := Normalize("Hello   world\n\nfoo")
	assert.Equal(t, 3, n.WordCount)
	assert.Equal(t, ContentHash("Hello   world\n\nfoo"), n.ContentHash)
}

func TestDecode(t *testing.T) {
	s, err := Decode([]byte("héllo"))
	require.NoError(t, err)
	assert.Equal(t, "héllo", s)

	_, err = Decode([]byte{0xff, 0xfe, 'a'})
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

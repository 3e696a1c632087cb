// Package content turns raw markdown into the normalized form stored for every
// document: an MD5 content hash, a plain-text rendering and a word count.
// All functions are pure; identical input bytes always give identical output.
package content

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// ErrInvalidUTF8 is returned by Decode for input that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("content is not valid UTF-8")

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Normalized is the derived form of a markdown document.
type Normalized struct {
	ContentHash string
	PlainText   string
	WordCount   int
}

// Normalize computes the content hash, plain text and word count of markdown.
func Normalize(md string) Normalized {
	plain := PlainText(md)
	return Normalized{
		ContentHash: ContentHash(md),
		PlainText:   plain,
		WordCount:   WordCount(plain),
	}
}

// Decode returns raw as a string, or ErrInvalidUTF8.
func Decode(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", ErrInvalidUTF8
	}
	return string(raw), nil
}

// ContentHash returns the lowercase hex MD5 of the UTF-8 bytes of md.
func ContentHash(md string) string {
	sum := md5.Sum([]byte(md))
	return hex.EncodeToString(sum[:])
}

// WordCount counts whitespace-separated tokens.
func WordCount(plain string) int {
	return len(strings.Fields(plain))
}

// PlainText renders markdown as plain text. Every leaf block ends on its own
// line and soft or hard line breaks inside a block are kept as newlines.
// Images, raw HTML and HTML blocks contribute no text.
func PlainText(md string) string {
	source := []byte(md)
	doc := markdown.Parser().Parse(text.NewReader(source))

	var b strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Text:
			if entering {
				b.Write(node.Segment.Value(source))
				if node.SoftLineBreak() || node.HardLineBreak() {
					b.WriteByte('\n')
				}
			}
			return ast.WalkContinue, nil
		case *ast.String:
			if entering {
				b.Write(node.Value)
			}
			return ast.WalkContinue, nil
		case *ast.AutoLink:
			if entering {
				b.Write(node.Label(source))
			}
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock, *ast.FencedCodeBlock:
			if entering {
				lines := n.Lines()
				for i := 0; i < lines.Len(); i++ {
					seg := lines.At(i)
					b.Write(seg.Value(source))
				}
				endLine(&b)
			}
			return ast.WalkSkipChildren, nil
		case *ast.Image, *ast.RawHTML, *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil
		}

		if !entering && n.Type() == ast.TypeBlock && n.Kind() != ast.KindDocument {
			endLine(&b)
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(b.String())
}

func endLine(b *strings.Builder) {
	s := b.String()
	if len(s) > 0 && s[len(s)-1] != '\n' {
		b.WriteByte('\n')
	}
}

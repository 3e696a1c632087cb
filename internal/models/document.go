// ABOUTME: Document is a human-authored markdown file stored by content hash
// ABOUTME: The content hash is the natural key and makes re-ingestion idempotent
package models

// Document represents an ingested human-authored document
type Document struct {
	ContentHash string   `json:"content_hash"`
	FileName    string   `json:"file_name"`
	Metadata    Metadata `json:"metadata"`
	Markdown    string   `json:"content_markdown"`
	PlainText   string   `json:"content_plain"`
	WordCount   int      `json:"word_count"`
}

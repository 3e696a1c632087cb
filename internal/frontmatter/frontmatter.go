// Package frontmatter extracts the tags field from a leading `---` delimited
// metadata block. Front matter is not guaranteed to be well-formed YAML, so the
// extractor is lenient: malformed input degrades to fewer tags, never an error.
package frontmatter

import (
	"strings"

	"github.com/charmbracelet/log"
	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

const delimiter = "---"

// Result holds the fields extracted from front matter.
// HasTags is false when no tags field was found.
type Result struct {
	Tags    []string
	HasTags bool
}

// Fields returns the result as a metadata mapping: empty, or {"tags": [...]}.
func (r Result) Fields() map[string]any {
	fields := map[string]any{}
	if r.HasTags {
		fields["tags"] = r.Tags
	}
	return fields
}

// Split returns the text between a leading `---` line and the next `---` line.
func Split(markdown string) (string, bool) {
	lines := strings.Split(markdown, "\n")
	if len(lines) < 2 || trimCR(lines[0]) != delimiter {
		return "", false
	}
	for i := 1; i < len(lines); i++ {
		if trimCR(lines[i]) == delimiter {
			block := make([]string, 0, i-1)
			for _, line := range lines[1:i] {
				block = append(block, trimCR(line))
			}
			return strings.Join(block, "\n"), true
		}
	}
	return "", false
}

// Extract parses the front matter of markdown and returns its tags.
func Extract(markdown string) Result {
	block, ok := Split(markdown)
	if !ok {
		return Result{}
	}

	for _, line := range strings.Split(block, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found || !isTagsKey(key) {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			return blockSequence(block)
		}
		return Result{Tags: parseTags(value), HasTags: true}
	}
	return Result{}
}

// isTagsKey accepts `tags` and the quoted `"tags"` spelling at column zero.
func isTagsKey(key string) bool {
	if key != strings.TrimLeft(key, " \t") {
		return false
	}
	key = strings.TrimSpace(key)
	return key == "tags" || key == `"tags"` || key == "'tags'"
}

func parseTags(value string) []string {
	if strings.HasPrefix(value, "[") {
		var items []any
		if err := json.Unmarshal([]byte(value), &items); err != nil {
			log.Warn("failed to parse tags as JSON, keeping raw value", "value", value, "err", err)
			return []string{value}
		}
		tags := make([]string, 0, len(items))
		for _, item := range items {
			switch v := item.(type) {
			case nil:
			case string:
				tags = append(tags, v)
			default:
				b, _ := json.Marshal(v)
				tags = append(tags, string(b))
			}
		}
		return tags
	}
	return []string{stripQuotes(value)}
}

func stripQuotes(value string) string {
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if (first == '"' || first == '\'') && first == last {
			return value[1 : len(value)-1]
		}
	}
	return strings.Trim(value, `"'`)
}

// blockSequence handles `tags:` followed by YAML `- item` lines.
func blockSequence(block string) Result {
	var fm struct {
		Tags []string `yaml:"tags"`
	}
	if err := yaml.Unmarshal([]byte(block), &fm); err != nil {
		log.Debug("front matter is not valid YAML", "err", err)
		return Result{}
	}
	if fm.Tags == nil {
		return Result{}
	}
	return Result{Tags: fm.Tags, HasTags: true}
}

func trimCR(line string) string {
	return strings.TrimSuffix(line, "\r")
}

// ABOUTME: Output formatting for generated paragraphs
// ABOUTME: Supports plain text, goldmark-rendered HTML and JSON envelopes
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/sophiekoonin/anything-ipsum/internal/models"
)

// Format names an output format
type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
	FormatJSON Format = "json"
)

// ParagraphSeparator joins paragraphs in text output
const ParagraphSeparator = "\n\n"

// ParseFormat validates a format name. "auto" and "" map to text.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto", string(FormatText):
		return FormatText, nil
	case string(FormatHTML):
		return FormatHTML, nil
	case string(FormatJSON):
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown format %q (valid: text, html, json)", name)
}

// Text joins paragraphs with a blank line
func Text(paragraphs []string) string {
	return strings.Join(paragraphs, ParagraphSeparator)
}

// HTML renders the text form through goldmark, one <p> per paragraph
func HTML(paragraphs []string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(Text(paragraphs)), &buf); err != nil {
		return "", fmt.Errorf("rendering html: %w", err)
	}
	return buf.String(), nil
}

// JSON encodes a generation result with indentation
func JSON(result *models.GenerationResult) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	return string(data), nil
}

// Write renders result in format to w with a trailing newline
func Write(w io.Writer, format Format, result *models.GenerationResult) error {
	var out string
	var err error

	switch format {
	case FormatHTML:
		out, err = HTML(result.Paragraphs)
		out = strings.TrimRight(out, "\n")
	case FormatJSON:
		out, err = JSON(result)
	default:
		out = Text(result.Paragraphs)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, out)
	return err
}

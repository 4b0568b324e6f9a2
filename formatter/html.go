package formatter

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/ridgeline-labs/gpx-to-itinerary/itinerary"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// BuildHTML renders the itinerary as an HTML fragment by converting the
// Markdown output. The web shell wraps it in a page.
func (b *Builder) BuildHTML(it *itinerary.Itinerary) ([]byte, error) {
	src := b.BuildMarkdown(it)
	var buf bytes.Buffer
	if err := markdown.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	return buf.Bytes(), nil
}

package render

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
)

var md = goldmark.New()

// markdownHTML converts model-produced markdown (answers and concept
// descriptions often carry emphasis and lists) to HTML. On conversion
// failure the text is emitted escaped rather than dropped.
func markdownHTML(s string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(s), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(s))
	}
	return template.HTML(strings.TrimSpace(buf.String()))
}

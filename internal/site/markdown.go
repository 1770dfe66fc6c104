package site

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	g "maragu.dev/gomponents"
)

// Raw HTML in content is dropped: goldmark escapes it unless WithUnsafe is set.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// markdown renders a Markdown blurb. On a conversion error the source is
// shown as plain text.
func markdown(src string) g.Node {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return g.Text(src)
	}
	return g.Raw(buf.String())
}

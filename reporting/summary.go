// Package reporting assembles recommendation output into report sections.
package reporting

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"edarec/reporting/recommend"
)

const recommendationTitle = "Recommendation"

// Section is one assembled block of the final report
type Section struct {
	Title    string
	Markdown string
}

// RecommendationSection builds the report's recommendation section from the
// rules' output. Returns the zero Section when there is nothing to report so
// callers can skip it, matching the report's skip-if-no-content behavior.
func RecommendationSection(recs []recommend.Recommendation) Section {
	if len(recs) == 0 {
		return Section{}
	}

	var b strings.Builder
	b.WriteString("#### " + recommendationTitle + "\n")
	for _, r := range recs {
		b.WriteString("* " + r.Message + "\n")
	}

	return Section{
		Title:    recommendationTitle,
		Markdown: b.String(),
	}
}

// HTML renders the section's markdown for the web surface.
func (s Section) HTML() []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML([]byte(s.Markdown), p, renderer)
}

// Empty reports whether the section carries no content.
func (s Section) Empty() bool {
	return s.Markdown == ""
}

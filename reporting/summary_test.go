package reporting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"edarec/reporting/recommend"
)

func TestRecommendationSection(t *testing.T) {
	recs := []recommend.Recommendation{
		{Kind: recommend.HighMissing, Message: "age has 0.15 missing values"},
		{Kind: recommend.HighCardinality, Message: "city has a high cardinality: 150 distinct values"},
	}

	section := RecommendationSection(recs)
	assert.False(t, section.Empty())
	assert.Equal(t, "Recommendation", section.Title)

	lines := strings.Split(strings.TrimRight(section.Markdown, "\n"), "\n")
	assert.Equal(t, []string{
		"#### Recommendation",
		"* age has 0.15 missing values",
		"* city has a high cardinality: 150 distinct values",
	}, lines)
}

func TestRecommendationSection_SkippedWhenEmpty(t *testing.T) {
	assert.True(t, RecommendationSection(nil).Empty())
	assert.True(t, RecommendationSection([]recommend.Recommendation{}).Empty())
}

func TestSectionHTML(t *testing.T) {
	section := RecommendationSection([]recommend.Recommendation{
		{Kind: recommend.HighMissing, Message: "age has 0.15 missing values"},
	})

	html := string(section.HTML())
	assert.Contains(t, html, "<h4")
	assert.Contains(t, html, "<li>age has 0.15 missing values</li>")
}

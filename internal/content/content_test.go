package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugDeterministic(t *testing.T) {
	assert.Equal(t, "the-emotional-impact", Slug("The Emotional Impact!"))
	assert.Equal(t, "the-emotional-impact", Slug("The Emotional Impact!"))
	assert.Equal(t, "why-cards-matter", Slug("  Why?? Cards---Matter  "))
	assert.Equal(t, "3-ideas", Slug("3 Ideas"))
	assert.Equal(t, "", Slug("!!!"))
	assert.Equal(t, "", Slug(""))
}

func TestProcessExtractsHeadingsInOrder(t *testing.T) {
	html := `<h2>First Section</h2><p>one</p><h3>Sub Section</h3><p>two</p><h2>Second Section</h2>`

	article := Process(html, nil)

	require.Len(t, article.TOC, 3)
	assert.Equal(t, Heading{Level: 2, Text: "First Section", ID: "first-section"}, article.TOC[0])
	assert.Equal(t, Heading{Level: 3, Text: "Sub Section", ID: "sub-section"}, article.TOC[1])
	assert.Equal(t, Heading{Level: 2, Text: "Second Section", ID: "second-section"}, article.TOC[2])
}

func TestProcessInjectsIDsAndKeepsAttributes(t *testing.T) {
	html := `<h2 class="fancy">Greeting Ideas</h2><p>text</p>`

	article := Process(html, nil)

	assert.Contains(t, article.HTML, `id="greeting-ideas"`)
	assert.Contains(t, article.HTML, `class="fancy"`)
}

func TestProcessStripsNestedMarkupFromHeadingText(t *testing.T) {
	html := `<h2>Cards <em>with</em> Love</h2>`

	article := Process(html, nil)

	require.Len(t, article.TOC, 1)
	assert.Equal(t, "Cards with Love", article.TOC[0].Text)
	assert.Equal(t, "cards-with-love", article.TOC[0].ID)
}

func TestProcessDisambiguatesDuplicateHeadings(t *testing.T) {
	html := `<h2>Tips</h2><p>a</p><h2>Tips</h2><p>b</p><h2>Tips</h2>`

	article := Process(html, nil)

	require.Len(t, article.TOC, 3)
	assert.Equal(t, "tips", article.TOC[0].ID)
	assert.Equal(t, "tips-2", article.TOC[1].ID)
	assert.Equal(t, "tips-3", article.TOC[2].ID)
	assert.Contains(t, article.HTML, `id="tips-3"`)
}

func TestProcessIgnoresOtherHeadingLevels(t *testing.T) {
	html := `<h1>Title</h1><h2>Section</h2><h4>Deep</h4>`

	article := Process(html, nil)

	require.Len(t, article.TOC, 1)
	assert.Equal(t, 2, article.TOC[0].Level)
}

func TestProcessZeroImagesAddsNoFigures(t *testing.T) {
	html := `<h2>Section</h2><p>one</p><p>two</p>`

	article := Process(html, nil)

	assert.NotContains(t, article.HTML, "<figure>")
	assert.Contains(t, article.HTML, `id="section"`)
	assert.Contains(t, article.HTML, "<p>one</p>")
	assert.Contains(t, article.HTML, "<p>two</p>")
}

func TestProcessExcludesHeroImage(t *testing.T) {
	html := `<p>one</p><p>two</p>`
	images := []Image{{URL: "hero.jpg", Alt: "hero", Position: 0}}

	article := Process(html, images)

	assert.NotContains(t, article.HTML, "hero.jpg")
}

func TestProcessInterleavesAtIntervals(t *testing.T) {
	// 4 paragraphs, 1 image: interval = 4/2 = 2, figure lands after p[2].
	html := `<p>p0</p><p>p1</p><p>p2</p><p>p3</p>`
	images := []Image{{URL: "img1.jpg", Alt: "first", Position: 1}}

	article := Process(html, images)

	assert.Equal(t, 1, strings.Count(article.HTML, "<figure>"))
	figure := strings.Index(article.HTML, "<figure>")
	p2 := strings.Index(article.HTML, "<p>p2</p>")
	p3 := strings.Index(article.HTML, "<p>p3</p>")
	assert.Greater(t, figure, p2)
	assert.Less(t, figure, p3)
}

func TestProcessAppendsLeftoverImages(t *testing.T) {
	// 1 paragraph, 2 images: interval = 1/3 = 0, everything is appended.
	html := `<p>only</p>`
	images := []Image{
		{URL: "b.jpg", Alt: "second", Position: 2},
		{URL: "a.jpg", Alt: "first", Position: 1},
	}

	article := Process(html, images)

	assert.Equal(t, 2, strings.Count(article.HTML, "<figure>"))
	// Appended in position order, after the paragraph.
	a := strings.Index(article.HTML, "a.jpg")
	b := strings.Index(article.HTML, "b.jpg")
	p := strings.Index(article.HTML, "<p>only</p>")
	assert.Greater(t, a, p)
	assert.Greater(t, b, a)
}

func TestProcessZeroParagraphsAppendsAll(t *testing.T) {
	html := `<h2>Section</h2>`
	images := []Image{
		{URL: "a.jpg", Alt: "first", Position: 1},
		{URL: "b.jpg", Alt: "second", Position: 2},
	}

	article := Process(html, images)

	assert.Equal(t, 2, strings.Count(article.HTML, "<figure>"))
	assert.Less(t, strings.Index(article.HTML, "a.jpg"), strings.Index(article.HTML, "b.jpg"))
}

func TestProcessFigureMarkup(t *testing.T) {
	article := Process(`<p>only</p>`, []Image{{URL: "//cdn.example.com/a.jpg", Alt: "A lovely card", Position: 1}})

	assert.Contains(t, article.HTML, `src="https://cdn.example.com/a.jpg"`)
	assert.Contains(t, article.HTML, `alt="A lovely card"`)
	assert.Contains(t, article.HTML, "<figcaption>A lovely card</figcaption>")
}

func TestProcessOmitsEmptyCaption(t *testing.T) {
	article := Process(`<p>only</p>`, []Image{{URL: "a.jpg", Position: 1}})

	assert.Contains(t, article.HTML, "<figure>")
	assert.NotContains(t, article.HTML, "<figcaption>")
}

func TestProcessMalformedHTMLDoesNotPanic(t *testing.T) {
	html := `<h2>Unclosed <p>mismatch</h3><p>tail`

	article := Process(html, []Image{{URL: "a.jpg", Position: 1}})

	assert.NotEmpty(t, article.HTML)
}

func TestProcessEmptyInput(t *testing.T) {
	article := Process("", nil)

	assert.Empty(t, article.TOC)
}

// Package content turns a raw blog-article HTML body into a table of
// contents plus an annotated body with stable heading anchors, and
// interleaves the article's supplementary images between paragraphs. It is
// a pure transform over already-fetched data; malformed markup degrades to
// a smaller result, never an error.
package content

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Heading is one table-of-contents entry, in document order.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
	ID    string `json:"id"`
}

// Image is a supplementary article image. Position 0 is the hero image and
// is never interleaved into the body.
type Image struct {
	URL      string `json:"url"`
	Alt      string `json:"alt"`
	Position int    `json:"position"`
}

// Article is the processed result: the ToC and the annotated body HTML.
type Article struct {
	TOC  []Heading `json:"toc"`
	HTML string    `json:"html"`
}

// Process extracts h2/h3 headings into a ToC, injects matching id
// attributes into the headings, and spreads the non-hero images across the
// paragraphs at a computed interval. Images that find no slot are appended
// after the body in their original order.
func Process(rawHTML string, images []Image) Article {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		// net/html absorbs malformed markup, so this only fires on a
		// broken reader; return the input untouched.
		return Article{HTML: rawHTML}
	}

	toc := annotateHeadings(doc)
	interleaveImages(doc, images)

	body := doc.Find("body")
	out, err := body.Html()
	if err != nil {
		return Article{TOC: toc, HTML: rawHTML}
	}
	return Article{TOC: toc, HTML: out}
}

func annotateHeadings(doc *goquery.Document) []Heading {
	var toc []Heading
	seen := make(map[string]int)

	doc.Find("h2, h3").Each(func(_ int, sel *goquery.Selection) {
		level := 2
		if goquery.NodeName(sel) == "h3" {
			level = 3
		}

		text := strings.TrimSpace(sel.Text())
		id := Slug(text)
		if id != "" {
			seen[id]++
			if n := seen[id]; n > 1 {
				id = fmt.Sprintf("%s-%d", id, n)
			}
		}

		sel.SetAttr("id", id)
		toc = append(toc, Heading{Level: level, Text: text, ID: id})
	})

	return toc
}

// Slug derives the anchor id for a heading: lowercase, every run of
// non-alphanumeric characters collapsed to a single hyphen, edge hyphens
// trimmed. Deterministic, so the same text always anchors the same id.
func Slug(text string) string {
	var b strings.Builder
	hyphen := false
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if hyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			hyphen = false
			b.WriteRune(r)
			continue
		}
		hyphen = true
	}
	return b.String()
}

func interleaveImages(doc *goquery.Document, images []Image) {
	pending := make([]Image, 0, len(images))
	for _, img := range images {
		if img.Position > 0 {
			pending = append(pending, img)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].Position < pending[j].Position
	})
	if len(pending) == 0 {
		return
	}

	paragraphs := doc.Find("p")
	interval := paragraphs.Length() / (len(pending) + 1)

	next := 0
	if interval > 0 {
		paragraphs.Each(func(i int, sel *goquery.Selection) {
			if i == 0 || next >= len(pending) {
				return
			}
			if i%interval == 0 {
				sel.AfterHtml(figureHTML(pending[next]))
				next++
			}
		})
	}

	// Whatever found no slot (interval 0, more images than paragraphs)
	// goes after the last paragraph, in original order.
	body := doc.Find("body")
	for ; next < len(pending); next++ {
		body.AppendHtml(figureHTML(pending[next]))
	}
}

func figureHTML(img Image) string {
	var b strings.Builder
	b.WriteString(`<figure><img src="`)
	b.WriteString(html.EscapeString(normalizeImageURL(img.URL)))
	b.WriteString(`" alt="`)
	b.WriteString(html.EscapeString(img.Alt))
	b.WriteString(`"/>`)
	if img.Alt != "" {
		b.WriteString("<figcaption>")
		b.WriteString(html.EscapeString(img.Alt))
		b.WriteString("</figcaption>")
	}
	b.WriteString("</figure>")
	return b.String()
}

// normalizeImageURL upgrades protocol-relative URLs to https.
func normalizeImageURL(u string) string {
	if strings.HasPrefix(u, "//") {
		return "https:" + u
	}
	return u
}

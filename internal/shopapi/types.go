package shopapi

import "encoding/json"

// Shapes mirror the upstream shop API. Timestamps stay strings; the
// storefront only displays them.

type Product struct {
	ID          string      `json:"_id"`
	ProductData ProductData `json:"productData"`
}

type ProductData struct {
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Price       Price    `json:"price"`
	Images      []string `json:"images"`
	Description string   `json:"description,omitempty"`
}

type Price struct {
	Formatted string `json:"formatted"`
}

type Post struct {
	ID             string            `json:"_id"`
	PostID         string            `json:"postId"`
	Slug           string            `json:"slug"`
	BlogContent    BlogContent       `json:"blogContent"`
	FirebaseImages []PostImage       `json:"firebaseImages"`
	YoutubeVideos  []json.RawMessage `json:"youtubeVideos"`
	CreatedAt      string            `json:"createdAt"`
	UpdatedAt      string            `json:"updatedAt"`
}

type BlogContent struct {
	Title           string   `json:"title"`
	Content         string   `json:"content"`
	HTMLContent     string   `json:"htmlContent"`
	MetaTitle       string   `json:"metaTitle"`
	MetaDescription string   `json:"metaDescription"`
	Keywords        []string `json:"keywords"`
	WordCount       int      `json:"wordCount"`
}

type PostImage struct {
	URL              string `json:"url"`
	Alt              string `json:"alt"`
	Width            int    `json:"width"`
	Height           int    `json:"height"`
	Source           string `json:"source"`
	Position         int    `json:"position"`
	OriginalURL      string `json:"originalUrl"`
	WatermarkRemoved bool   `json:"watermarkRemoved"`
}

type Category struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

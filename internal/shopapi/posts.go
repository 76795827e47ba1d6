package shopapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

type PostQuery struct {
	CategorySlug string
	Page         int
	Limit        int
}

func (q PostQuery) values() url.Values {
	v := url.Values{}
	if q.CategorySlug != "" {
		v.Set("categorySlug", q.CategorySlug)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	return v
}

func (c *Client) ListPosts(ctx context.Context, q PostQuery) ([]Post, error) {
	var out struct {
		Success bool   `json:"success"`
		Posts   []Post `json:"posts"`
	}
	if err := c.getJSON(ctx, "/api/posts", q.values(), &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, fmt.Errorf("shop api /api/posts: success=false")
	}
	return out.Posts, nil
}

// GetPost fetches a single post by slug. nil means the upstream does not
// know the slug; the caller turns that into a 404.
func (c *Client) GetPost(ctx context.Context, slug string) (*Post, error) {
	v := url.Values{}
	v.Set("slug", slug)

	var out struct {
		Success bool  `json:"success"`
		Post    *Post `json:"post"`
	}
	if err := c.getJSON(ctx, "/api/posts", v, &out); err != nil {
		return nil, err
	}
	if !out.Success || out.Post == nil {
		return nil, nil
	}
	return out.Post, nil
}

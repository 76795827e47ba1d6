package shopapi

import (
	"context"
	"fmt"
	"net/url"
)

func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var out struct {
		Success bool       `json:"success"`
		Data    []Category `json:"data"`
	}
	if err := c.getJSON(ctx, "/api/categories", url.Values{}, &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, fmt.Errorf("shop api /api/categories: success=false")
	}
	return out.Data, nil
}

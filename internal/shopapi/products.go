package shopapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

type ProductQuery struct {
	Page         int
	Limit        int
	CategorySlug string
}

func (q ProductQuery) values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.CategorySlug != "" {
		v.Set("categorySlug", q.CategorySlug)
	}
	return v
}

func (c *Client) ListProducts(ctx context.Context, q ProductQuery) ([]Product, error) {
	var out struct {
		Success  bool      `json:"success"`
		Products []Product `json:"products"`
	}
	if err := c.getJSON(ctx, "/api/products", q.values(), &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, fmt.Errorf("shop api /api/products: success=false")
	}
	return out.Products, nil
}

// getProductMaxPages caps the slug scan in case the upstream ignores
// paging parameters.
const getProductMaxPages = 50

// GetProduct resolves a product by slug. The upstream API only exposes a
// list endpoint, so this pages through and matches client-side; nil means
// not found.
func (c *Client) GetProduct(ctx context.Context, slug string) (*Product, error) {
	for page := 1; page <= getProductMaxPages; page++ {
		products, err := c.ListProducts(ctx, ProductQuery{Page: page, Limit: 100})
		if err != nil {
			return nil, err
		}
		if len(products) == 0 {
			return nil, nil
		}
		for i := range products {
			if products[i].ProductData.Slug == slug {
				return &products[i], nil
			}
		}
	}
	return nil, nil
}

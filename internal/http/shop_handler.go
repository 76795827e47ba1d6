package http

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/zakia-developer558/geburtstagswunsche/internal/content"
	"github.com/zakia-developer558/geburtstagswunsche/internal/shopapi"
)

// ShopHandler fronts the remote shop API for the pages. Upstream failures
// are logged and rendered as empty sections, matching how the storefront
// degrades; only a missing slug is a 404.
type ShopHandler struct {
	api    ShopAPI
	logger *log.Logger
}

type ShopAPI interface {
	ListProducts(ctx context.Context, q shopapi.ProductQuery) ([]shopapi.Product, error)
	GetProduct(ctx context.Context, slug string) (*shopapi.Product, error)
	ListPosts(ctx context.Context, q shopapi.PostQuery) ([]shopapi.Post, error)
	GetPost(ctx context.Context, slug string) (*shopapi.Post, error)
	ListCategories(ctx context.Context) ([]shopapi.Category, error)
}

func NewShopHandler(api ShopAPI, logger *log.Logger) *ShopHandler {
	return &ShopHandler{api: api, logger: logger}
}

func (h *ShopHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := shopapi.ProductQuery{
		Page:         intQuery(r, "page"),
		Limit:        intQuery(r, "limit"),
		CategorySlug: r.URL.Query().Get("categorySlug"),
	}

	products, err := h.api.ListProducts(r.Context(), q)
	if err != nil {
		h.logger.Printf("list products: %v", err)
		products = nil
	}
	if products == nil {
		products = []shopapi.Product{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"products": products})
}

func (h *ShopHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		writeError(w, http.StatusBadRequest, "missing slug")
		return
	}

	product, err := h.api.GetProduct(r.Context(), slug)
	if err != nil {
		h.logger.Printf("get product %s: %v", slug, err)
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	if product == nil {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"product": product})
}

func (h *ShopHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	q := shopapi.PostQuery{
		CategorySlug: r.URL.Query().Get("categorySlug"),
		Page:         intQuery(r, "page"),
		Limit:        intQuery(r, "limit"),
	}

	posts, err := h.api.ListPosts(r.Context(), q)
	if err != nil {
		h.logger.Printf("list posts: %v", err)
		posts = nil
	}
	if posts == nil {
		posts = []shopapi.Post{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"posts": posts})
}

// articleResponse is a blog post ready to render: the raw post plus the
// processed body (heading anchors injected, images interleaved) and its
// table of contents.
type articleResponse struct {
	Post *shopapi.Post     `json:"post"`
	TOC  []content.Heading `json:"toc"`
	HTML string            `json:"html"`
}

func (h *ShopHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		writeError(w, http.StatusBadRequest, "missing slug")
		return
	}

	post, err := h.api.GetPost(r.Context(), slug)
	if err != nil {
		h.logger.Printf("get post %s: %v", slug, err)
		writeError(w, http.StatusNotFound, "post not found")
		return
	}
	if post == nil {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}

	images := make([]content.Image, 0, len(post.FirebaseImages))
	for _, img := range post.FirebaseImages {
		images = append(images, content.Image{
			URL:      img.URL,
			Alt:      img.Alt,
			Position: img.Position,
		})
	}

	article := content.Process(post.BlogContent.HTMLContent, images)

	toc := article.TOC
	if toc == nil {
		toc = []content.Heading{}
	}

	writeJSON(w, http.StatusOK, articleResponse{
		Post: post,
		TOC:  toc,
		HTML: article.HTML,
	})
}

func (h *ShopHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.api.ListCategories(r.Context())
	if err != nil {
		h.logger.Printf("list categories: %v", err)
		categories = nil
	}
	if categories == nil {
		categories = []shopapi.Category{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": categories})
}

func intQuery(r *http.Request, key string) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

package httpapi

import (
	"net/http"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/clients"
	"github.com/go-chi/chi/v5"
)

// CatalogHandler serves the browsing pages: product listings, product
// detail and product reviews, all fetched from the commerce API.
type CatalogHandler struct {
	products *clients.ProductsClient
	reviews  *clients.ReviewsClient
}

func NewCatalogHandler(products *clients.ProductsClient, reviews *clients.ReviewsClient) *CatalogHandler {
	return &CatalogHandler{products: products, reviews: reviews}
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List(r.Context(), r.URL.Query())
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	product, err := h.products.Get(r.Context(), productID)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *CatalogHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	reviews, err := h.reviews.ListForProduct(r.Context(), productID)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

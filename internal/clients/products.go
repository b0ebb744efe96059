package clients

import (
	"context"
	"net/http"
	"net/url"
)

type ProductsClient struct{ c *Client }

func NewProductsClient(c *Client) *ProductsClient { return &ProductsClient{c: c} }

type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	Stock       int      `json:"stock"`
	Rating      float64  `json:"rating"`
}

func (pc *ProductsClient) List(ctx context.Context, query url.Values) ([]Product, error) {
	var out []Product
	err := pc.c.Do(ctx, http.MethodGet, "/api/products", query, nil, &out)
	return out, err
}

func (pc *ProductsClient) Get(ctx context.Context, productID string) (Product, error) {
	var out Product
	err := pc.c.Do(ctx, http.MethodGet, "/api/products/"+productID, nil, nil, &out)
	return out, err
}

func (pc *ProductsClient) Create(ctx context.Context, p Product) (Product, error) {
	var out Product
	err := pc.c.Do(ctx, http.MethodPost, "/api/products", nil, p, &out)
	return out, err
}

func (pc *ProductsClient) Update(ctx context.Context, p Product) (Product, error) {
	var out Product
	err := pc.c.Do(ctx, http.MethodPut, "/api/products/"+p.ID, nil, p, &out)
	return out, err
}

func (pc *ProductsClient) Delete(ctx context.Context, productID string) error {
	return pc.c.Do(ctx, http.MethodDelete, "/api/products/"+productID, nil, nil, nil)
}

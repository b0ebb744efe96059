package clients

import (
	"context"
	"net/http"
	"time"
)

type ReviewsClient struct{ c *Client }

func NewReviewsClient(c *Client) *ReviewsClient { return &ReviewsClient{c: c} }

type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

func (rc *ReviewsClient) Create(ctx context.Context, productID string, rating int, comment string) (Review, error) {
	body := map[string]any{"rating": rating, "comment": comment}
	var out Review
	err := rc.c.Do(ctx, http.MethodPost, "/api/products/"+productID+"/reviews", nil, body, &out)
	return out, err
}

func (rc *ReviewsClient) ListForProduct(ctx context.Context, productID string) ([]Review, error) {
	var out []Review
	err := rc.c.Do(ctx, http.MethodGet, "/api/products/"+productID+"/reviews", nil, nil, &out)
	return out, err
}

func (rc *ReviewsClient) Delete(ctx context.Context, productID, reviewID string) error {
	return rc.c.Do(ctx, http.MethodDelete, "/api/products/"+productID+"/reviews/"+reviewID, nil, nil, nil)
}

package clients

import (
	"context"
	"net/http"
	"time"
)

type OrdersClient struct{ c *Client }

func NewOrdersClient(c *Client) *OrdersClient { return &OrdersClient{c: c} }

type OrderItem struct {
	ProductID string  `json:"id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Category  string  `json:"category"`
}

type Order struct {
	ID        string      `json:"orderId"`
	UserID    string      `json:"userId"`
	Status    string      `json:"status"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"totalAmount"`
	CreatedAt time.Time   `json:"createdAt"`
}

func (oc *OrdersClient) Create(ctx context.Context, items []OrderItem, total float64) (Order, error) {
	body := map[string]any{"items": items, "totalAmount": total}
	var out Order
	err := oc.c.Do(ctx, http.MethodPost, "/api/orders", nil, body, &out)
	return out, err
}

func (oc *OrdersClient) ListMine(ctx context.Context) ([]Order, error) {
	var out []Order
	err := oc.c.Do(ctx, http.MethodGet, "/api/orders", nil, nil, &out)
	return out, err
}

func (oc *OrdersClient) Get(ctx context.Context, orderID string) (Order, error) {
	var out Order
	err := oc.c.Do(ctx, http.MethodGet, "/api/orders/"+orderID, nil, nil, &out)
	return out, err
}

func (oc *OrdersClient) AdminList(ctx context.Context) ([]Order, error) {
	var out []Order
	err := oc.c.Do(ctx, http.MethodGet, "/api/orders/admin", nil, nil, &out)
	return out, err
}

func (oc *OrdersClient) UpdateStatus(ctx context.Context, orderID, status string) (Order, error) {
	body := map[string]string{"status": status}
	var out Order
	err := oc.c.Do(ctx, http.MethodPut, "/api/orders/"+orderID+"/status", nil, body, &out)
	return out, err
}

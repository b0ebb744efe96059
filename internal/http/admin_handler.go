package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/analytics"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/clients"
	"github.com/go-chi/chi/v5"
)

// AdminHandler backs the admin dashboard: order management plus the
// analytics aggregates the charts render.
type AdminHandler struct {
	orders *clients.OrdersClient
}

func NewAdminHandler(orders *clients.OrdersClient) *AdminHandler {
	return &AdminHandler{orders: orders}
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.AdminList(r.Context())
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analytics.Compute(orders))
}

func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.AdminList(r.Context())
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if body.Status == "" {
		writeError(w, http.StatusBadRequest, "missing status")
		return
	}

	order, err := h.orders.UpdateStatus(r.Context(), orderID, body.Status)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

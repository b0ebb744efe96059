package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/coupon"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/pricing"
)

type CartHandler struct {
	svc *cart.Service
}

func NewCartHandler(svc *cart.Service) *CartHandler {
	return &CartHandler{svc: svc}
}

type addItemRequest struct {
	ProductID     string  `json:"id"`
	Title         string  `json:"title"`
	Price         float64 `json:"price"`
	Image         string  `json:"image"`
	SelectedSize  string  `json:"selectedSize"`
	SelectedColor string  `json:"selectedColor"`
	Category      string  `json:"category"`
	Quantity      int     `json:"quantity"`
}

type itemKeyRequest struct {
	ProductID     string `json:"id"`
	SelectedSize  string `json:"selectedSize"`
	SelectedColor string `json:"selectedColor"`
	Quantity      int    `json:"quantity"`
}

func (r itemKeyRequest) key() cart.Key {
	return cart.Key{ProductID: r.ProductID, Size: r.SelectedSize, Color: r.SelectedColor}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.State())
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var body addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if body.ProductID == "" {
		writeError(w, http.StatusBadRequest, "missing product id")
		return
	}
	if body.Price < 0 || body.Quantity < 0 {
		writeError(w, http.StatusBadRequest, "price and quantity must not be negative")
		return
	}

	state := h.svc.Dispatch(cart.Add{
		Item: cart.LineItem{
			ProductID:     body.ProductID,
			Title:         body.Title,
			Price:         body.Price,
			Image:         body.Image,
			SelectedSize:  body.SelectedSize,
			SelectedColor: body.SelectedColor,
			Category:      body.Category,
		},
		Quantity: body.Quantity,
	})
	writeJSON(w, http.StatusOK, state)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	body, ok := h.decodeKey(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Dispatch(cart.Remove{Key: body.key()}))
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	body, ok := h.decodeKey(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Dispatch(cart.UpdateQuantity{Key: body.key(), Quantity: body.Quantity}))
}

func (h *CartHandler) Increment(w http.ResponseWriter, r *http.Request) {
	body, ok := h.decodeKey(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Dispatch(cart.Increment{Key: body.key()}))
}

func (h *CartHandler) Decrement(w http.ResponseWriter, r *http.Request) {
	body, ok := h.decodeKey(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Dispatch(cart.Decrement{Key: body.key()}))
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Dispatch(cart.Clear{}))
}

func (h *CartHandler) ClearMessage(w http.ResponseWriter, r *http.Request) {
	h.svc.ClearMessage()
	writeJSON(w, http.StatusOK, h.svc.State())
}

// Summary recomputes the order summary from full item data on every
// call; it never trusts the cached cart total.
func (h *CartHandler) Summary(w http.ResponseWriter, r *http.Request) {
	state := h.svc.State()
	writeJSON(w, http.StatusOK, pricing.Calculate(state.Items, state.AppliedCouponDiscount))
}

func (h *CartHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if body.Code == "" {
		writeError(w, http.StatusBadRequest, "missing coupon code")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	state, err := h.svc.ApplyCoupon(ctx, body.Code)
	if err != nil {
		if errors.Is(err, coupon.ErrUnknownCode) {
			writeError(w, http.StatusBadRequest, "invalid coupon code")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to validate coupon")
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (h *CartHandler) RemoveCoupon(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.RemoveCoupon())
}

func (h *CartHandler) decodeKey(w http.ResponseWriter, r *http.Request) (itemKeyRequest, bool) {
	var body itemKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return body, false
	}
	if body.ProductID == "" {
		writeError(w, http.StatusBadRequest, "missing product id")
		return body, false
	}
	return body, true
}

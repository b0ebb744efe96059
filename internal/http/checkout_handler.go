package httpapi

import (
	"errors"
	"net/http"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/payment"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/pricing"
	"github.com/go-chi/chi/v5"
)

// CheckoutHandler runs the simulated payment flow behind the
// payment-result pages. The current cart total is charged; a successful
// demo payment empties the cart.
type CheckoutHandler struct {
	svc *cart.Service
	sim *payment.Simulator
}

func NewCheckoutHandler(svc *cart.Service, sim *payment.Simulator) *CheckoutHandler {
	return &CheckoutHandler{svc: svc, sim: sim}
}

func (h *CheckoutHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	state := h.svc.State()
	if len(state.Items) == 0 {
		writeError(w, http.StatusBadRequest, "cart is empty")
		return
	}
	summary := pricing.Calculate(state.Items, state.AppliedCouponDiscount)

	intent, err := h.sim.Process(r.Context(), summary.Total)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "payment processing failed")
		return
	}

	if intent.Status == payment.StatusSucceeded {
		h.svc.Dispatch(cart.Clear{})
		h.svc.RemoveCoupon()
	}

	writeJSON(w, http.StatusOK, intent)
}

func (h *CheckoutHandler) GetPaymentResult(w http.ResponseWriter, r *http.Request) {
	intent, err := h.sim.Get(chi.URLParam(r, "intentId"))
	if err != nil {
		if errors.Is(err, payment.ErrNotFound) {
			writeError(w, http.StatusNotFound, "payment not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load payment")
		return
	}
	writeJSON(w, http.StatusOK, intent)
}

package httpapi

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(
	logger *log.Logger,
	corsOrigins []string,
	cartH *CartHandler,
	catalogH *CatalogHandler,
	authH *AuthHandler,
	adminH *AdminHandler,
	checkoutH *CheckoutHandler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(middleware.CorrelationID)
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(corsOrigins))

	r.Get("/health", healthHandler)

	r.Route("/api/cart", func(r chi.Router) {
		r.Get("/", cartH.GetCart)
		r.Delete("/", cartH.ClearCart)
		r.Post("/items", cartH.AddItem)
		r.Delete("/items", cartH.RemoveItem)
		r.Put("/items/quantity", cartH.UpdateQuantity)
		r.Post("/items/increment", cartH.Increment)
		r.Post("/items/decrement", cartH.Decrement)
		r.Get("/summary", cartH.Summary)
		r.Post("/coupon", cartH.ApplyCoupon)
		r.Delete("/coupon", cartH.RemoveCoupon)
		r.Delete("/message", cartH.ClearMessage)
	})

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", catalogH.ListProducts)
		r.Get("/{productId}", catalogH.GetProduct)
		r.Get("/{productId}/reviews", catalogH.ListReviews)
	})

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authH.Register)
		r.Post("/login", authH.Login)
		r.Post("/logout", authH.Logout)
		r.Get("/me", authH.Me)
		r.Put("/password", authH.ChangePassword)
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Get("/stats", adminH.Stats)
		r.Get("/orders", adminH.ListOrders)
		r.Put("/orders/{orderId}/status", adminH.UpdateOrderStatus)
	})

	r.Route("/api/checkout", func(r chi.Router) {
		r.Post("/payment", checkoutH.ProcessPayment)
		r.Get("/payment/{intentId}", checkoutH.GetPaymentResult)
	})

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok", "service": "storefront-service"}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

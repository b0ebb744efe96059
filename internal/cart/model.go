package cart

// LineItem is one product-variant entry in the cart. Display fields
// (title, image, price, category) are snapshotted when the item is added
// and never re-fetched. The JSON tags match the persisted slot layout.
type LineItem struct {
	ProductID     string  `json:"id"`
	Title         string  `json:"title"`
	Price         float64 `json:"price"`
	Image         string  `json:"image"`
	SelectedSize  string  `json:"selectedSize"`
	SelectedColor string  `json:"selectedColor"`
	Quantity      int     `json:"quantity"`
	Category      string  `json:"category"`
}

// Key identifies a line item. Two entries with the same key are the same
// entry; the cart never holds duplicates of a key.
type Key struct {
	ProductID string
	Size      string
	Color     string
}

func (it LineItem) Key() Key {
	return Key{ProductID: it.ProductID, Size: it.SelectedSize, Color: it.SelectedColor}
}

// State is the whole cart: ordered items plus totals derived from them.
// TotalQuantity and TotalPrice are recomputed after every mutation and
// never set independently. LastMessage describes the most recent
// mutation for banner display and is only cleared explicitly.
type State struct {
	Items                 []LineItem `json:"items"`
	TotalQuantity         int        `json:"totalQuantity"`
	TotalPrice            float64    `json:"totalPrice"`
	LastMessage           string     `json:"lastMessage,omitempty"`
	AppliedCouponDiscount float64    `json:"appliedCouponDiscount"`
}

// Defaults fill variant fields left empty when an item is added.
type Defaults struct {
	Size     string
	Color    string
	Category string
}

// StandardDefaults matches the storefront catalog policy.
func StandardDefaults() Defaults {
	return Defaults{Size: "M", Color: "default", Category: "Uncategorized"}
}

func (s *State) find(k Key) int {
	for i := range s.Items {
		if s.Items[i].Key() == k {
			return i
		}
	}
	return -1
}

func (s *State) recompute() {
	qty := 0
	total := 0.0
	for _, it := range s.Items {
		qty += it.Quantity
		total += float64(it.Quantity) * it.Price
	}
	s.TotalQuantity = qty
	s.TotalPrice = total
}

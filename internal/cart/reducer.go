package cart

import "fmt"

// Command is the closed set of cart transitions. Every mutation of the
// cart goes through apply with one of these variants.
type Command interface {
	isCommand()
}

// Add puts an item in the cart. If an entry with the same key already
// exists its quantity is incremented instead of appending a duplicate.
// Quantity defaults to 1 when left zero.
type Add struct {
	Item     LineItem
	Quantity int
}

// Remove deletes the entry with the given key. Absent entries are a
// silent no-op.
type Remove struct {
	Key Key
}

// UpdateQuantity sets the entry's quantity directly. A quantity of zero
// or less behaves exactly like Remove.
type UpdateQuantity struct {
	Key      Key
	Quantity int
}

// Increment raises the entry's quantity by one. No stock cap is applied
// at this layer; callers gate on externally fetched stock.
type Increment struct {
	Key Key
}

// Decrement lowers the entry's quantity by one, removing the entry
// entirely when it sits at one.
type Decrement struct {
	Key Key
}

// Clear empties the cart and erases the persisted slot.
type Clear struct{}

// Initialize recomputes totals from whatever items were loaded at
// startup. It mutates nothing else and is idempotent.
type Initialize struct{}

func (Add) isCommand()            {}
func (Remove) isCommand()         {}
func (UpdateQuantity) isCommand() {}
func (Increment) isCommand()      {}
func (Decrement) isCommand()      {}
func (Clear) isCommand()          {}
func (Initialize) isCommand()     {}

// apply is the single transition function over the command set. Totals
// are recomputed before returning, so the derived-totals invariant holds
// after every command.
func (s *State) apply(cmd Command, defs Defaults) {
	switch c := cmd.(type) {
	case Add:
		it := c.Item
		if it.SelectedSize == "" {
			it.SelectedSize = defs.Size
		}
		if it.SelectedColor == "" {
			it.SelectedColor = defs.Color
		}
		if it.Category == "" {
			it.Category = defs.Category
		}
		qty := c.Quantity
		if qty <= 0 {
			qty = 1
		}
		if i := s.find(it.Key()); i >= 0 {
			s.Items[i].Quantity += qty
			s.LastMessage = fmt.Sprintf("Increased quantity of %s", s.Items[i].Title)
		} else {
			it.Quantity = qty
			s.Items = append(s.Items, it)
			s.LastMessage = fmt.Sprintf("%s added to cart", it.Title)
		}

	case Remove:
		s.removeAt(s.find(c.Key))

	case UpdateQuantity:
		i := s.find(c.Key)
		if i < 0 {
			break
		}
		if c.Quantity <= 0 {
			s.removeAt(i)
			break
		}
		s.Items[i].Quantity = c.Quantity
		s.LastMessage = fmt.Sprintf("Updated %s quantity", s.Items[i].Title)

	case Increment:
		if i := s.find(c.Key); i >= 0 {
			s.Items[i].Quantity++
		}

	case Decrement:
		i := s.find(c.Key)
		if i < 0 {
			break
		}
		if s.Items[i].Quantity > 1 {
			s.Items[i].Quantity--
		} else {
			s.removeAt(i)
		}

	case Clear:
		s.Items = nil
		s.LastMessage = "Cart cleared"

	case Initialize:
		// totals recompute below, nothing else moves
	}

	s.recompute()
}

// removeAt deletes the entry at i preserving order, or does nothing for
// a negative index (entry not found).
func (s *State) removeAt(i int) {
	if i < 0 {
		return
	}
	title := s.Items[i].Title
	s.Items = append(s.Items[:i], s.Items[i+1:]...)
	s.LastMessage = fmt.Sprintf("%s removed from cart", title)
}

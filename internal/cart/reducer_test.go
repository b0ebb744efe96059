package cart

import (
	"fmt"
	"testing"
)

func tee(qty int) LineItem {
	return LineItem{
		ProductID:     "p1",
		Title:         "Tee",
		Price:         20,
		SelectedSize:  "M",
		SelectedColor: "black",
		Quantity:      qty,
		Category:      "Shirts",
	}
}

func teeKey() Key { return Key{ProductID: "p1", Size: "M", Color: "black"} }

func checkTotals(t *testing.T, s *State) {
	t.Helper()
	qty := 0
	total := 0.0
	for _, it := range s.Items {
		qty += it.Quantity
		total += float64(it.Quantity) * it.Price
	}
	if s.TotalQuantity != qty {
		t.Fatalf("totalQuantity = %d, items sum to %d", s.TotalQuantity, qty)
	}
	if s.TotalPrice != total {
		t.Fatalf("totalPrice = %v, items sum to %v", s.TotalPrice, total)
	}
}

func TestApply(t *testing.T) {
	defs := StandardDefaults()

	tests := map[string]struct {
		initial  []LineItem
		cmds     []Command
		wantLen  int
		wantQty  int
		wantSum  float64
		wantMsg  string
		wantItem *LineItem
	}{
		"add to empty cart": {
			cmds:     []Command{Add{Item: tee(0), Quantity: 1}},
			wantLen:  1,
			wantQty:  1,
			wantSum:  20,
			wantMsg:  "Tee added to cart",
			wantItem: ptr(tee(1)),
		},
		"add defaults quantity to one": {
			cmds:    []Command{Add{Item: tee(0)}},
			wantLen: 1,
			wantQty: 1,
			wantSum: 20,
		},
		"repeated adds merge into one entry": {
			cmds: []Command{
				Add{Item: tee(0), Quantity: 2},
				Add{Item: tee(0), Quantity: 3},
			},
			wantLen: 1,
			wantQty: 5,
			wantSum: 100,
			wantMsg: "Increased quantity of Tee",
		},
		"different size is a separate entry": {
			cmds: []Command{
				Add{Item: tee(0), Quantity: 1},
				Add{Item: withSize(tee(0), "L"), Quantity: 1},
			},
			wantLen: 2,
			wantQty: 2,
			wantSum: 40,
		},
		"variant defaults applied on add": {
			cmds: []Command{
				Add{Item: LineItem{ProductID: "p9", Title: "Mug", Price: 8}},
			},
			wantLen: 1,
			wantQty: 1,
			wantSum: 8,
			wantItem: &LineItem{
				ProductID: "p9", Title: "Mug", Price: 8,
				SelectedSize: "M", SelectedColor: "default",
				Quantity: 1, Category: "Uncategorized",
			},
		},
		"remove existing entry": {
			initial: []LineItem{tee(2)},
			cmds:    []Command{Remove{Key: teeKey()}},
			wantLen: 0,
			wantQty: 0,
			wantSum: 0,
			wantMsg: "Tee removed from cart",
		},
		"remove absent entry is a no-op": {
			initial: []LineItem{tee(2)},
			cmds:    []Command{Remove{Key: Key{ProductID: "nope", Size: "M", Color: "black"}}},
			wantLen: 1,
			wantQty: 2,
			wantSum: 40,
		},
		"update quantity sets directly": {
			initial:  []LineItem{tee(2)},
			cmds:     []Command{UpdateQuantity{Key: teeKey(), Quantity: 7}},
			wantLen:  1,
			wantQty:  7,
			wantSum:  140,
			wantMsg:  "Updated Tee quantity",
			wantItem: ptr(tee(7)),
		},
		"update quantity to zero removes": {
			initial: []LineItem{tee(2)},
			cmds:    []Command{UpdateQuantity{Key: teeKey(), Quantity: 0}},
			wantLen: 0,
			wantQty: 0,
			wantSum: 0,
			wantMsg: "Tee removed from cart",
		},
		"update quantity negative removes": {
			initial: []LineItem{tee(2)},
			cmds:    []Command{UpdateQuantity{Key: teeKey(), Quantity: -3}},
			wantLen: 0,
			wantMsg: "Tee removed from cart",
		},
		"update absent entry is a no-op": {
			initial: []LineItem{tee(2)},
			cmds:    []Command{UpdateQuantity{Key: Key{ProductID: "nope"}, Quantity: 5}},
			wantLen: 1,
			wantQty: 2,
			wantSum: 40,
		},
		"increment bumps by one": {
			initial: []LineItem{tee(2)},
			cmds:    []Command{Increment{Key: teeKey()}},
			wantLen: 1,
			wantQty: 3,
			wantSum: 60,
		},
		"increment absent leaves message untouched": {
			initial: []LineItem{tee(2)},
			cmds:    []Command{Increment{Key: Key{ProductID: "nope"}}},
			wantLen: 1,
			wantQty: 2,
			wantSum: 40,
		},
		"decrement above one reduces by one": {
			initial: []LineItem{tee(3)},
			cmds:    []Command{Decrement{Key: teeKey()}},
			wantLen: 1,
			wantQty: 2,
			wantSum: 40,
		},
		"decrement at one removes entry": {
			initial: []LineItem{tee(1)},
			cmds:    []Command{Decrement{Key: teeKey()}},
			wantLen: 0,
			wantQty: 0,
			wantSum: 0,
			wantMsg: "Tee removed from cart",
		},
		"clear empties everything": {
			initial: []LineItem{tee(2), withSize(tee(1), "L")},
			cmds:    []Command{Clear{}},
			wantLen: 0,
			wantQty: 0,
			wantSum: 0,
			wantMsg: "Cart cleared",
		},
		"initialize recomputes totals only": {
			initial: []LineItem{tee(2)},
			cmds:    []Command{Initialize{}},
			wantLen: 1,
			wantQty: 2,
			wantSum: 40,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			s := &State{Items: append([]LineItem(nil), tc.initial...)}
			for _, cmd := range tc.cmds {
				s.apply(cmd, defs)
				checkTotals(t, s)
			}

			if len(s.Items) != tc.wantLen {
				t.Fatalf("len(items) = %d, want %d", len(s.Items), tc.wantLen)
			}
			if s.TotalQuantity != tc.wantQty {
				t.Fatalf("totalQuantity = %d, want %d", s.TotalQuantity, tc.wantQty)
			}
			if s.TotalPrice != tc.wantSum {
				t.Fatalf("totalPrice = %v, want %v", s.TotalPrice, tc.wantSum)
			}
			if tc.wantMsg != "" && s.LastMessage != tc.wantMsg {
				t.Fatalf("lastMessage = %q, want %q", s.LastMessage, tc.wantMsg)
			}
			if tc.wantItem != nil {
				if got := s.Items[0]; got != *tc.wantItem {
					t.Fatalf("item = %+v, want %+v", got, *tc.wantItem)
				}
			}
		})
	}
}

func TestApplyAddSumsQuantitiesAcrossSameKey(t *testing.T) {
	s := &State{}
	total := 0
	for i := 1; i <= 5; i++ {
		s.apply(Add{Item: tee(0), Quantity: i}, StandardDefaults())
		total += i
	}
	if len(s.Items) != 1 {
		t.Fatalf("expected a single entry, got %d", len(s.Items))
	}
	if s.Items[0].Quantity != total {
		t.Fatalf("quantity = %d, want %d", s.Items[0].Quantity, total)
	}
}

func TestApplyInitializeIdempotent(t *testing.T) {
	s := &State{Items: []LineItem{tee(2), withSize(tee(1), "L")}}
	s.apply(Initialize{}, StandardDefaults())
	qty, sum := s.TotalQuantity, s.TotalPrice

	s.apply(Initialize{}, StandardDefaults())
	if s.TotalQuantity != qty || s.TotalPrice != sum {
		t.Fatalf("second initialize changed totals: %d/%v vs %d/%v",
			s.TotalQuantity, s.TotalPrice, qty, sum)
	}
}

func TestApplyPreservesInsertionOrder(t *testing.T) {
	s := &State{}
	for i := 0; i < 4; i++ {
		it := tee(0)
		it.ProductID = fmt.Sprintf("p%d", i)
		s.apply(Add{Item: it}, StandardDefaults())
	}
	s.apply(Remove{Key: Key{ProductID: "p1", Size: "M", Color: "black"}}, StandardDefaults())

	want := []string{"p0", "p2", "p3"}
	for i, id := range want {
		if s.Items[i].ProductID != id {
			t.Fatalf("items[%d] = %s, want %s", i, s.Items[i].ProductID, id)
		}
	}
}

func withSize(it LineItem, size string) LineItem {
	it.SelectedSize = size
	return it
}

func ptr(it LineItem) *LineItem { return &it }

// Package store persists small pieces of storefront state as plain
// files, the service-side analog of the browser's local storage slots.
package store

import (
	"encoding/json"
	"log"
	"os"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/cart"
)

// FileStore keeps the cart's line items as one JSON document at a fixed
// path. A missing or unparseable file loads as an empty cart; writes
// overwrite the whole document.
type FileStore struct {
	path   string
	logger *log.Logger
}

func NewFileStore(path string, logger *log.Logger) *FileStore {
	return &FileStore{path: path, logger: logger}
}

// Load reads the slot. It never fails: corruption is treated as "no
// cart" and logged, so the worst case is starting over empty.
func (f *FileStore) Load() []cart.LineItem {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			f.logger.Printf("read cart slot: %v", err)
		}
		return nil
	}

	var items []cart.LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		f.logger.Printf("corrupt cart slot, resetting: %v", err)
		return nil
	}
	return items
}

// Save overwrites the slot with the full item list.
func (f *FileStore) Save(items []cart.LineItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o644)
}

// Clear removes the slot entirely. An already-missing slot is fine;
// missing and empty load the same way.
func (f *FileStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

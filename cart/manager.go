package cart

import (
	"encoding/json"
	"log"
	"sync"

	"furniture-shop/models"
)

// Item is one product/quantity line. The product is a full snapshot taken
// at add time; a price change in the catalog never reaches an open cart.
type Item struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// Manager is the single writer for one cart. Every read and mutation of the
// persisted store goes through it; that discipline is what keeps the
// one-line-per-product invariant and the notification contract intact.
//
// No operation returns an error: storage failures degrade to an empty cart
// and failed writes are logged, never surfaced.
type Manager struct {
	mu       sync.Mutex
	store    Store
	notifier *Notifier
}

func NewManager(store Store, notifier *Notifier) *Manager {
	if notifier == nil {
		notifier = NewNotifier()
	}
	return &Manager{store: store, notifier: notifier}
}

// Notifier returns the change notification channel for this cart.
func (m *Manager) Notifier() *Notifier {
	return m.notifier
}

// GetCart returns the current cart lines. A missing or malformed store blob
// is an empty cart, never an error.
func (m *Manager) GetCart() []Item {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.load()
}

// AddToCart merges quantity into an existing line for the product, or
// appends a new line. Repeated adds accumulate. Quantities below one count
// as a single unit so a zero-quantity line can never reach storage.
func (m *Manager) AddToCart(product models.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	m.mu.Lock()
	items := m.load()
	merged := false
	for i := range items {
		if items[i].Product.ID == product.ID {
			items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, Item{Product: product, Quantity: quantity})
	}
	m.save(items)
	m.mu.Unlock()

	m.notifier.broadcast()
}

// RemoveFromCart drops the line for productID. It persists and notifies
// whether or not the line was present.
func (m *Manager) RemoveFromCart(productID string) {
	m.mu.Lock()
	items := m.load()
	kept := make([]Item, 0, len(items))
	for _, item := range items {
		if item.Product.ID != productID {
			kept = append(kept, item)
		}
	}
	m.save(kept)
	m.mu.Unlock()

	m.notifier.broadcast()
}

// UpdateQuantity sets the line's quantity to an absolute value. A quantity
// of zero or below removes the line, exactly like RemoveFromCart. When the
// product is not in the cart the positive branch is a silent no-op: nothing
// is persisted and no notification fires.
func (m *Manager) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		m.RemoveFromCart(productID)
		return
	}

	m.mu.Lock()
	items := m.load()
	found := false
	for i := range items {
		if items[i].Product.ID == productID {
			items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		m.mu.Unlock()
		return
	}
	m.save(items)
	m.mu.Unlock()

	m.notifier.broadcast()
}

// ClearCart deletes all cart state and notifies unconditionally.
func (m *Manager) ClearCart() {
	m.mu.Lock()
	if err := m.store.Clear(); err != nil {
		log.Println("Failed to clear cart:", err)
	}
	m.mu.Unlock()

	m.notifier.broadcast()
}

// Total is the sum of price times quantity over all lines. No tax or
// shipping included.
func (m *Manager) Total() float64 {
	total := 0.0
	for _, item := range m.GetCart() {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// ItemCount is the sum of quantities over all lines: total units, not
// distinct products. The header badge shows this number.
func (m *Manager) ItemCount() int {
	count := 0
	for _, item := range m.GetCart() {
		count += item.Quantity
	}
	return count
}

func (m *Manager) load() []Item {
	data, ok := m.store.Load()
	if !ok {
		return []Item{}
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return []Item{}
	}
	if items == nil {
		items = []Item{}
	}
	return items
}

func (m *Manager) save(items []Item) {
	data, err := json.Marshal(items)
	if err != nil {
		log.Println("Failed to serialize cart:", err)
		return
	}
	if err := m.store.Save(data); err != nil {
		log.Println("Failed to persist cart:", err)
	}
}

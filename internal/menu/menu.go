package menu

import (
	"slices"
	"sync"

	"pizzashop/internal/core/domain/model/pricing"
)

type messages struct {
	added   string
	removed string
}

// Menu is a list of items with subscribed listeners. It is safe for concurrent use;
// listeners are called outside the menu's lock, in subscription order.
type Menu struct {
	messages messages

	mu        sync.Mutex
	items     []pricing.Item
	listeners []Listener
}

// NewPizzaMenu creates the regular pizza menu.
func NewPizzaMenu() *Menu {
	return &Menu{messages: messages{
		added:   "New pizza added to menu: ",
		removed: "Pizza removed from menu: ",
	}}
}

// NewSpecialsMenu creates the menu of specials.
func NewSpecialsMenu() *Menu {
	return &Menu{messages: messages{
		added:   "New special added: ",
		removed: "Special removed: ",
	}}
}

// AddListener subscribes l. Nil listeners are ignored.
func (m *Menu) AddListener(l Listener) {
	if l == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, l)
}

// RemoveListener unsubscribes the first subscription matching l.
// Removing a listener that is not subscribed is a no-op.
func (m *Menu) RemoveListener(l Listener) {
	if l == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i, existing := range m.listeners {
		if sameListener(existing, l) {
			m.listeners = slices.Delete(m.listeners, i, i+1)
			return
		}
	}
}

// Add lists item and notifies every listener.
func (m *Menu) Add(item pricing.Item) {
	if item == nil {
		return
	}

	m.mu.Lock()
	m.items = append(m.items, item)
	m.mu.Unlock()

	m.Notify(m.messages.added + item.Name())
}

// Remove delists item and notifies every listener. Items that are not listed
// are ignored without notification.
func (m *Menu) Remove(item pricing.Item) {
	if item == nil {
		return
	}

	m.mu.Lock()
	i := slices.Index(m.items, item)
	if i < 0 {
		m.mu.Unlock()
		return
	}
	m.items = slices.Delete(m.items, i, i+1)
	m.mu.Unlock()

	m.Notify(m.messages.removed + item.Name())
}

// Items returns the listed items in the order they were added.
func (m *Menu) Items() []pricing.Item {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.items)
}

// Notify sends message to every listener.
func (m *Menu) Notify(message string) {
	m.mu.Lock()
	listeners := slices.Clone(m.listeners)
	m.mu.Unlock()

	for _, l := range listeners {
		l.Update(message)
	}
}

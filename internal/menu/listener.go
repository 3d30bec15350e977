package menu

import (
	"log/slog"
	"reflect"
)

// Listener receives menu change messages.
type Listener interface {
	Update(message string)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(message string)

func (f ListenerFunc) Update(message string) {
	f(message)
}

// Customer is a named subscriber.
type Customer struct {
	name   string
	logger *slog.Logger
}

func NewCustomer(name string, logger *slog.Logger) *Customer {
	return &Customer{
		name:   name,
		logger: logger.With("component", "customer", "customer", name),
	}
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) Update(message string) {
	c.logger.Info("Customer " + c.name + " notified: " + message)
}

// Website republishes menu changes.
type Website struct {
	logger *slog.Logger
}

func NewWebsite(logger *slog.Logger) *Website {
	return &Website{logger: logger.With("component", "website")}
}

func (w *Website) Update(message string) {
	w.logger.Info("Website updated: " + message)
}

// sameListener reports whether a and b are the same subscription. Function
// listeners are matched by code pointer since funcs are not comparable.
func sameListener(a, b Listener) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	if ta.Kind() == reflect.Func {
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	}
	return false
}

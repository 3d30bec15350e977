package http

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Health struct {
	Status string `json:"status"`
}

type CreatedOrder struct {
	ID string `json:"id"`
}

type OrderItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Order struct {
	ID            string      `json:"id"`
	Items         []OrderItem `json:"items"`
	ItemCount     int         `json:"itemCount"`
	Subtotal      float64     `json:"subtotal"`
	Discount      string      `json:"discount"`
	DiscountLabel string      `json:"discountLabel"`
	Total         float64     `json:"total"`
	DisplayTotal  string      `json:"displayTotal"`
	Status        string      `json:"status"`
	Summary       string      `json:"summary"`
}

type MenuEntry struct {
	Key   string  `json:"key"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Surcharge struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Cost  float64 `json:"cost"`
}

type Menu struct {
	Pizzas     []MenuEntry `json:"pizzas"`
	Specials   []MenuEntry `json:"specials"`
	Surcharges []Surcharge `json:"surcharges"`
}

// NewPizza adds a pizza from the menu. Surcharges are keys such as "extra_cheese".
type NewPizza struct {
	Recipe     string   `json:"recipe"`
	Surcharges []string `json:"surcharges"`
}

type Topping struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type NewCustomPizza struct {
	Name       string    `json:"name"`
	Toppings   []Topping `json:"toppings"`
	Surcharges []string  `json:"surcharges"`
}

// DiscountChange selects a policy by key: "regular", "bulk" or "family".
type DiscountChange struct {
	Kind string `json:"kind"`
}

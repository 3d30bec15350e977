// Package http exposes the pizza shop over a JSON HTTP API built on echo.
package http

import (
	"log/slog"
	"net/http"

	"pizzashop/internal/core/application/usecases/commands"
	"pizzashop/internal/core/application/usecases/queries"
	"pizzashop/internal/core/domain/model/discount"
	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/core/domain/model/pricing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateOrder            commands.CreateOrderCommandHandler
	AddPizza               commands.AddPizzaCommandHandler
	AddCustomPizza         commands.AddCustomPizzaCommandHandler
	SetDiscount            commands.SetDiscountCommandHandler
	ApplySuggestedDiscount commands.ApplySuggestedDiscountCommandHandler
	ProcessOrder           commands.ProcessOrderCommandHandler
	ClearOrder             commands.ClearOrderCommandHandler

	GetOrder queries.GetOrderQueryHandler
	GetMenu  queries.GetMenuQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	gatherer prometheus.Gatherer
	logger   *slog.Logger
}

// NewServer creates a server. gatherer backs GET /metrics.
func NewServer(handlers Handlers, gatherer prometheus.Gatherer, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		gatherer: gatherer,
		logger:   logger.With("component", "http_server"),
	}
}

// RegisterHandlers mounts every route on e.
func (s *Server) RegisterHandlers(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))

	api := e.Group("/api/v1")
	api.GET("/menu", s.GetMenu)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/pizzas", s.AddPizza)
	api.POST("/orders/:id/custom-pizzas", s.AddCustomPizza)
	api.PUT("/orders/:id/discount", s.SetDiscount)
	api.POST("/orders/:id/discount/suggested", s.ApplySuggestedDiscount)
	api.POST("/orders/:id/process", s.ProcessOrder)
	api.DELETE("/orders/:id/items", s.ClearOrder)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, Health{Status: "Healthy"})
}

// GetMenu handles GET /api/v1/menu.
func (s *Server) GetMenu(c echo.Context) error {
	menu, err := s.handlers.GetMenu.Handle(c.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return s.writeError(c, err)
	}

	response := Menu{
		Pizzas:     toMenuEntries(menu.Pizzas),
		Specials:   toMenuEntries(menu.Specials),
		Surcharges: make([]Surcharge, 0, len(menu.Surcharges)),
	}
	for _, sc := range menu.Surcharges {
		response.Surcharges = append(response.Surcharges, Surcharge{Key: sc.Key, Label: sc.Label, Cost: sc.Cost})
	}

	return c.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.handlers.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	c.Response().Header().Set(echo.HeaderLocation, "/api/v1/orders/"+orderID.String())
	return c.JSON(http.StatusCreated, CreatedOrder{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.writeError(c, err)
	}

	return s.respondWithOrder(c, http.StatusOK, orderID)
}

// AddPizza handles POST /api/v1/orders/:id/pizzas.
func (s *Server) AddPizza(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.writeError(c, err)
	}

	var body NewPizza
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	surcharges, err := parseSurcharges(body.Surcharges)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewAddPizzaCommand(orderID, body.Recipe, surcharges)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.handlers.AddPizza.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return s.respondWithOrder(c, http.StatusOK, orderID)
}

// AddCustomPizza handles POST /api/v1/orders/:id/custom-pizzas.
func (s *Server) AddCustomPizza(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.writeError(c, err)
	}

	var body NewCustomPizza
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	surcharges, err := parseSurcharges(body.Surcharges)
	if err != nil {
		return s.writeError(c, err)
	}

	toppings := make([]commands.ToppingInput, 0, len(body.Toppings))
	for _, t := range body.Toppings {
		toppings = append(toppings, commands.ToppingInput{Name: t.Name, Price: t.Price})
	}

	cmd, err := commands.NewAddCustomPizzaCommand(orderID, body.Name, toppings, surcharges)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.handlers.AddCustomPizza.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return s.respondWithOrder(c, http.StatusOK, orderID)
}

// SetDiscount handles PUT /api/v1/orders/:id/discount.
func (s *Server) SetDiscount(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.writeError(c, err)
	}

	var body DiscountChange
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	kind, err := discount.ParseKind(body.Kind)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewSetDiscountCommand(orderID, kind)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.handlers.SetDiscount.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return s.respondWithOrder(c, http.StatusOK, orderID)
}

// ApplySuggestedDiscount handles POST /api/v1/orders/:id/discount/suggested.
func (s *Server) ApplySuggestedDiscount(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewApplySuggestedDiscountCommand(orderID)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.handlers.ApplySuggestedDiscount.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return s.respondWithOrder(c, http.StatusOK, orderID)
}

// ProcessOrder handles POST /api/v1/orders/:id/process.
func (s *Server) ProcessOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewProcessOrderCommand(orderID)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.handlers.ProcessOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return s.respondWithOrder(c, http.StatusOK, orderID)
}

// ClearOrder handles DELETE /api/v1/orders/:id/items.
func (s *Server) ClearOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewClearOrderCommand(orderID)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.handlers.ClearOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return s.respondWithOrder(c, http.StatusOK, orderID)
}

func (s *Server) respondWithOrder(c echo.Context, code int, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.writeError(c, err)
	}

	view, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(code, toOrder(view))
}

func parseSurcharges(keys []string) ([]pricing.Surcharge, error) {
	surcharges := make([]pricing.Surcharge, 0, len(keys))
	for _, key := range keys {
		sc, err := pricing.ParseSurcharge(key)
		if err != nil {
			return nil, err
		}
		surcharges = append(surcharges, sc)
	}
	return surcharges, nil
}

func toOrder(view queries.GetOrderQueryResponse) Order {
	items := make([]OrderItem, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, OrderItem{Name: item.Name, Price: item.Price})
	}

	return Order{
		ID:            view.ID.String(),
		Items:         items,
		ItemCount:     view.ItemCount,
		Subtotal:      view.Subtotal,
		Discount:      view.Discount.String(),
		DiscountLabel: view.DiscountLabel,
		Total:         view.Total,
		DisplayTotal:  kernel.FormatAmount(view.Total),
		Status:        view.Status,
		Summary:       view.Summary,
	}
}

func toMenuEntries(entries []queries.MenuEntry) []MenuEntry {
	result := make([]MenuEntry, 0, len(entries))
	for _, e := range entries {
		result = append(result, MenuEntry{Key: e.Key, Name: e.Name, Price: e.Price})
	}
	return result
}

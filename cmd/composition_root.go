package cmd

import (
	"context"
	"log/slog"
	"time"

	httpadapter "pizzashop/internal/adapters/in/http"
	"pizzashop/internal/adapters/out/memory"
	"pizzashop/internal/adapters/out/metrics"
	"pizzashop/internal/core/application/usecases/commands"
	"pizzashop/internal/core/application/usecases/queries"
	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/core/domain/model/order"
	"pizzashop/internal/core/domain/services"
	"pizzashop/internal/core/ports"
	"pizzashop/internal/jobs"
	"pizzashop/internal/menu"
	"pizzashop/internal/presets"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type CompositionRoot struct {
	configs    Config
	logger     *slog.Logger
	random     kernel.Randomizer
	store      *memory.Store
	uowFactory *memory.UnitOfWorkFactory
	catalog    *presets.Catalog
	advisor    services.DiscountAdvisor
	registry   *prometheus.Registry
	observer   ports.PhaseObserver

	pizzaMenu    *menu.Menu
	specialsMenu *menu.Menu
}

func NewCompositionRoot(configs Config, logger *slog.Logger) (CompositionRoot, error) {
	seed := configs.RandomSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	random := kernel.NewLockedRandomizer(kernel.NewRandomizer(seed))

	store, err := memory.NewStore(random)
	if err != nil {
		return CompositionRoot{}, err
	}

	catalog, err := loadCatalog(configs.CatalogFile)
	if err != nil {
		return CompositionRoot{}, err
	}

	advisor, err := services.NewDiscountAdvisor(configs.BulkThreshold, configs.FamilyThreshold)
	if err != nil {
		return CompositionRoot{}, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	phaseMetrics, err := metrics.NewPhaseMetrics(registry)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		configs:    configs,
		logger:     logger,
		random:     random,
		store:      store,
		uowFactory: memory.NewUnitOfWorkFactory(store),
		catalog:    catalog,
		advisor:    advisor,
		registry:   registry,
		observer: ports.PhaseObservers{
			phaseMetrics,
			phaseLogger{logger: logger.With("component", "kitchen")},
		},
		pizzaMenu:    menu.NewPizzaMenu(),
		specialsMenu: menu.NewSpecialsMenu(),
	}, nil
}

func loadCatalog(path string) (*presets.Catalog, error) {
	if path == "" {
		return presets.Default()
	}
	return presets.LoadFile(path)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.random)
}

func (c *CompositionRoot) CreateAddPizzaCommandHandler() commands.AddPizzaCommandHandler {
	return commands.NewAddPizzaCommandHandler(c.orderUoWFactory(), c.catalog)
}

func (c *CompositionRoot) CreateAddCustomPizzaCommandHandler() commands.AddCustomPizzaCommandHandler {
	return commands.NewAddCustomPizzaCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetDiscountCommandHandler() commands.SetDiscountCommandHandler {
	return commands.NewSetDiscountCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateApplySuggestedDiscountCommandHandler() commands.ApplySuggestedDiscountCommandHandler {
	return commands.NewApplySuggestedDiscountCommandHandler(c.orderUoWFactory(), c.advisor)
}

func (c *CompositionRoot) CreateProcessOrderCommandHandler() commands.ProcessOrderCommandHandler {
	return commands.NewProcessOrderCommandHandler(c.orderUoWFactory(), c.observer)
}

func (c *CompositionRoot) CreateAdvanceOrdersCommandHandler() commands.AdvanceOrdersCommandHandler {
	return commands.NewAdvanceOrdersCommandHandler(c.orderUoWFactory(), c.observer)
}

func (c *CompositionRoot) CreateClearOrderCommandHandler() commands.ClearOrderCommandHandler {
	return commands.NewClearOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.catalog)
}

// CreateHTTPServer builds the echo instance with middleware and every route mounted.
func (c *CompositionRoot) CreateHTTPServer() (*echo.Echo, error) {
	metricsMiddleware, err := httpadapter.NewMetricsMiddleware(c.registry)
	if err != nil {
		return nil, err
	}

	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:            c.CreateCreateOrderCommandHandler(),
		AddPizza:               c.CreateAddPizzaCommandHandler(),
		AddCustomPizza:         c.CreateAddCustomPizzaCommandHandler(),
		SetDiscount:            c.CreateSetDiscountCommandHandler(),
		ApplySuggestedDiscount: c.CreateApplySuggestedDiscountCommandHandler(),
		ProcessOrder:           c.CreateProcessOrderCommandHandler(),
		ClearOrder:             c.CreateClearOrderCommandHandler(),
		GetOrder:               c.CreateGetOrderQueryHandler(),
		GetMenu:                c.CreateGetMenuQueryHandler(),
	}, c.registry, c.logger)

	e := echo.New()
	e.HideBanner = true
	e.Use(
		middleware.Recover(),
		middleware.RequestID(),
		httpadapter.NewContextLogger(c.logger),
		httpadapter.NewRequestLogger(c.logger),
		metricsMiddleware,
	)
	server.RegisterHandlers(e)
	return e, nil
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	advanceOrders := c.CreateAdvanceOrdersCommandHandler()
	kitchen := jobs.NewKitchenJob(&advanceOrders, c.configs.KitchenSchedule, c.logger)
	return jobs.NewJobManager(c.logger, kitchen)
}

// PublishMenus lists every catalog recipe and special, announcing each to the website.
func (c *CompositionRoot) PublishMenus() error {
	website := menu.NewWebsite(c.logger)
	c.pizzaMenu.AddListener(website)
	c.specialsMenu.AddListener(website)

	for _, key := range c.catalog.Keys() {
		pizza, err := c.catalog.Build(key)
		if err != nil {
			return err
		}
		c.pizzaMenu.Add(pizza)
	}

	for _, key := range c.catalog.SpecialKeys() {
		special, err := c.catalog.BuildSpecial(key)
		if err != nil {
			return err
		}
		c.specialsMenu.Add(special)
	}
	return nil
}

func (c *CompositionRoot) PizzaMenu() *menu.Menu {
	return c.pizzaMenu
}

func (c *CompositionRoot) SpecialsMenu() *menu.Menu {
	return c.specialsMenu
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// phaseLogger records committed phase changes.
type phaseLogger struct {
	logger *slog.Logger
}

func (p phaseLogger) PhaseChanged(ctx context.Context, orderID kernel.UUID, from, to order.Phase) {
	if from == order.Preparing && to == order.Pending {
		p.logger.WarnContext(ctx, "Order sent back to Pending", "order_id", orderID.String())
		return
	}
	p.logger.InfoContext(ctx, "Order state changed",
		"order_id", orderID.String(),
		"from", from.String(),
		"to", to.String(),
	)
}

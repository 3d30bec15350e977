package http_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpadapter "pizzashop/internal/adapters/in/http"
	"pizzashop/internal/adapters/out/memory"
	"pizzashop/internal/adapters/out/metrics"
	"pizzashop/internal/core/application/usecases/commands"
	"pizzashop/internal/core/application/usecases/queries"
	"pizzashop/internal/core/domain/model/kernel"
	"pizzashop/internal/core/domain/services"
	"pizzashop/internal/presets"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

type uowFactory struct {
	inner *memory.UnitOfWorkFactory
}

func (f uowFactory) Create() commands.OrderUoW {
	return f.inner.Create()
}

type ServerTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (suite *ServerTestSuite) SetupTest() {
	random := kernel.NewLockedRandomizer(kernel.NewRandomizer(7))
	store, err := memory.NewStore(random)
	suite.Require().NoError(err)

	catalog, err := presets.Default()
	suite.Require().NoError(err)

	advisor, err := services.NewDiscountAdvisor(services.DefaultBulkThreshold, 0)
	suite.Require().NoError(err)

	reg := prometheus.NewRegistry()
	phaseMetrics, err := metrics.NewPhaseMetrics(reg)
	suite.Require().NoError(err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	factory := uowFactory{inner: memory.NewUnitOfWorkFactory(store)}

	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:            commands.NewCreateOrderCommandHandler(factory, random),
		AddPizza:               commands.NewAddPizzaCommandHandler(factory, catalog),
		AddCustomPizza:         commands.NewAddCustomPizzaCommandHandler(factory),
		SetDiscount:            commands.NewSetDiscountCommandHandler(factory),
		ApplySuggestedDiscount: commands.NewApplySuggestedDiscountCommandHandler(factory, advisor),
		ProcessOrder:           commands.NewProcessOrderCommandHandler(factory, phaseMetrics),
		ClearOrder:             commands.NewClearOrderCommandHandler(factory),
		GetOrder:               queries.NewGetOrderQueryHandler(store),
		GetMenu:                queries.NewGetMenuQueryHandler(catalog),
	}, reg, logger)

	metricsMiddleware, err := httpadapter.NewMetricsMiddleware(reg)
	suite.Require().NoError(err)

	suite.echo = echo.New()
	suite.echo.Use(
		middleware.RequestID(),
		httpadapter.NewContextLogger(logger),
		httpadapter.NewRequestLogger(logger),
		metricsMiddleware,
	)
	server.RegisterHandlers(suite.echo)
}

func (suite *ServerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)
	return rec
}

func (suite *ServerTestSuite) decode(rec *httptest.ResponseRecorder, v any) {
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), v))
}

func (suite *ServerTestSuite) createOrder() string {
	rec := suite.do(http.MethodPost, "/api/v1/orders", "")
	suite.Require().Equal(http.StatusCreated, rec.Code)

	var created httpadapter.CreatedOrder
	suite.decode(rec, &created)
	suite.Require().NotEmpty(created.ID)
	suite.Equal("/api/v1/orders/"+created.ID, rec.Header().Get(echo.HeaderLocation))
	return created.ID
}

func (suite *ServerTestSuite) requireError(rec *httptest.ResponseRecorder, code int) httpadapter.Error {
	suite.Require().Equal(code, rec.Code, rec.Body.String())

	var body httpadapter.Error
	suite.decode(rec, &body)
	suite.Equal(code, body.Code)
	suite.NotEmpty(body.Message)
	return body
}

func (suite *ServerTestSuite) TestHealth() {
	rec := suite.do(http.MethodGet, "/health", "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.JSONEq(`{"status":"Healthy"}`, rec.Body.String())
}

func (suite *ServerTestSuite) TestRequestIDHeader() {
	rec := suite.do(http.MethodGet, "/health", "")

	suite.NotEmpty(rec.Header().Get(echo.HeaderXRequestID))
}

func (suite *ServerTestSuite) TestGetMenu() {
	rec := suite.do(http.MethodGet, "/api/v1/menu", "")
	suite.Require().Equal(http.StatusOK, rec.Code)

	var menu httpadapter.Menu
	suite.decode(rec, &menu)

	suite.Len(menu.Pizzas, 4)
	suite.Equal("pepperoni", menu.Pizzas[0].Key)
	suite.InDelta(50.0, menu.Pizzas[0].Price, 1e-9)
	suite.Len(menu.Specials, 2)
	suite.Len(menu.Surcharges, 2)
}

func (suite *ServerTestSuite) TestCreateAndGetOrder() {
	id := suite.createOrder()

	rec := suite.do(http.MethodGet, "/api/v1/orders/"+id, "")
	suite.Require().Equal(http.StatusOK, rec.Code)

	var o httpadapter.Order
	suite.decode(rec, &o)
	suite.Equal(id, o.ID)
	suite.Empty(o.Items)
	suite.Equal("regular", o.Discount)
	suite.Equal("ORDER STARTED", o.Status)
	suite.Equal("R0.00", o.DisplayTotal)
}

func (suite *ServerTestSuite) TestAddPizzaWithSurcharges() {
	id := suite.createOrder()

	rec := suite.do(http.MethodPost, "/api/v1/orders/"+id+"/pizzas",
		`{"recipe":"pepperoni","surcharges":["extra_cheese","stuffed_crust"]}`)
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var o httpadapter.Order
	suite.decode(rec, &o)
	suite.Require().Len(o.Items, 1)
	suite.True(strings.HasSuffix(o.Items[0].Name, "with Extra Cheese with Stuffed Crust"))
	suite.InDelta(82.0, o.Total, 1e-9)
	suite.Equal("R82.00", o.DisplayTotal)
}

func (suite *ServerTestSuite) TestBulkDiscountOnTwoPizzas() {
	id := suite.createOrder()

	suite.Require().Equal(http.StatusOK, suite.do(http.MethodPost, "/api/v1/orders/"+id+"/pizzas",
		`{"recipe":"pepperoni"}`).Code)
	suite.Require().Equal(http.StatusOK, suite.do(http.MethodPost, "/api/v1/orders/"+id+"/pizzas",
		`{"recipe":"vegetarian"}`).Code)

	rec := suite.do(http.MethodPut, "/api/v1/orders/"+id+"/discount", `{"kind":"bulk"}`)
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var o httpadapter.Order
	suite.decode(rec, &o)
	suite.InDelta(110.0, o.Subtotal, 1e-9)
	suite.InDelta(99.0, o.Total, 1e-9)
	suite.Equal("Bulk Discount (10% discount)", o.DiscountLabel)
}

func (suite *ServerTestSuite) TestApplySuggestedDiscount() {
	id := suite.createOrder()
	for range services.DefaultBulkThreshold {
		suite.Require().Equal(http.StatusOK, suite.do(http.MethodPost, "/api/v1/orders/"+id+"/pizzas",
			`{"recipe":"pepperoni"}`).Code)
	}

	rec := suite.do(http.MethodPost, "/api/v1/orders/"+id+"/discount/suggested", "")
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var o httpadapter.Order
	suite.decode(rec, &o)
	suite.Equal("bulk", o.Discount)
	suite.InDelta(225.0, o.Total, 1e-9)
}

func (suite *ServerTestSuite) TestAddCustomPizza() {
	id := suite.createOrder()

	rec := suite.do(http.MethodPost, "/api/v1/orders/"+id+"/custom-pizzas",
		`{"name":"House","toppings":[{"name":"Dough","price":10},{"name":"Cheese","price":15}],"surcharges":["extra_cheese"]}`)
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var o httpadapter.Order
	suite.decode(rec, &o)
	suite.Require().Len(o.Items, 1)
	suite.Equal("House (Dough, Cheese) with Extra Cheese", o.Items[0].Name)
	suite.InDelta(37.0, o.Total, 1e-9)
}

func (suite *ServerTestSuite) TestProcessAndClear() {
	id := suite.createOrder()
	suite.Require().Equal(http.StatusOK, suite.do(http.MethodPost, "/api/v1/orders/"+id+"/pizzas",
		`{"recipe":"pepperoni"}`).Code)

	rec := suite.do(http.MethodPost, "/api/v1/orders/"+id+"/process", "")
	suite.Require().Equal(http.StatusOK, rec.Code)
	var o httpadapter.Order
	suite.decode(rec, &o)
	suite.Equal("PENDING", o.Status)

	rec = suite.do(http.MethodPost, "/api/v1/orders/"+id+"/process", "")
	suite.decode(rec, &o)
	suite.Equal("PREPARING", o.Status)

	rec = suite.do(http.MethodDelete, "/api/v1/orders/"+id+"/items", "")
	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.decode(rec, &o)
	suite.Equal(0, o.ItemCount)
	suite.Equal("ORDER STARTED", o.Status)

	metricsRec := suite.do(http.MethodGet, "/metrics", "")
	suite.Require().Equal(http.StatusOK, metricsRec.Code)
	suite.Contains(metricsRec.Body.String(), `pizzashop_order_phase_transitions_total{from="ORDER STARTED",to="PENDING"} 1`)
	suite.Contains(metricsRec.Body.String(), "http_requests_total")
}

func (suite *ServerTestSuite) TestErrors() {
	id := suite.createOrder()
	missing := kernel.NewUUID().String()

	suite.Run("should reject a malformed id", func() {
		suite.requireError(suite.do(http.MethodGet, "/api/v1/orders/not-a-uuid", ""), http.StatusBadRequest)
	})

	suite.Run("should return not found for an unknown order", func() {
		suite.requireError(suite.do(http.MethodGet, "/api/v1/orders/"+missing, ""), http.StatusNotFound)
		suite.requireError(suite.do(http.MethodPost, "/api/v1/orders/"+missing+"/process", ""), http.StatusNotFound)
	})

	suite.Run("should reject an unknown recipe", func() {
		body := suite.requireError(suite.do(http.MethodPost, "/api/v1/orders/"+id+"/pizzas",
			`{"recipe":"hawaiian"}`), http.StatusBadRequest)
		suite.Contains(body.Message, "hawaiian")
	})

	suite.Run("should reject an unknown surcharge", func() {
		suite.requireError(suite.do(http.MethodPost, "/api/v1/orders/"+id+"/pizzas",
			`{"recipe":"pepperoni","surcharges":["anchovies"]}`), http.StatusBadRequest)
	})

	suite.Run("should reject a negative topping price", func() {
		suite.requireError(suite.do(http.MethodPost, "/api/v1/orders/"+id+"/custom-pizzas",
			`{"name":"Bad","toppings":[{"name":"Dough","price":-1}]}`), http.StatusBadRequest)
	})

	suite.Run("should reject an unknown discount", func() {
		suite.requireError(suite.do(http.MethodPut, "/api/v1/orders/"+id+"/discount",
			`{"kind":"vip"}`), http.StatusBadRequest)
	})

	suite.Run("should reject a malformed body", func() {
		suite.requireError(suite.do(http.MethodPost, "/api/v1/orders/"+id+"/pizzas", `{`), http.StatusBadRequest)
	})

	rec := suite.do(http.MethodGet, "/api/v1/orders/"+id, "")
	var o httpadapter.Order
	suite.decode(rec, &o)
	suite.Empty(o.Items, "failed requests leave the order untouched")
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

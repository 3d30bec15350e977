package queries

import (
	"context"

	"pizzashop/internal/core/domain/model/order"
	"pizzashop/internal/core/ports"
)

// GetOrderQueryHandler reads committed orders and renders their priced view.
type GetOrderQueryHandler struct {
	reader ports.OrderReader
}

func NewGetOrderQueryHandler(reader ports.OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{reader: reader}
}

// Handle returns errs.ErrObjectNotFound when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	o, err := h.reader.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return newGetOrderQueryResponse(o), nil
}

func newGetOrderQueryResponse(o *order.Order) GetOrderQueryResponse {
	items := o.Items()
	views := make([]OrderItemView, 0, len(items))
	for _, item := range items {
		views = append(views, OrderItemView{Name: item.Name(), Price: item.Price()})
	}

	return GetOrderQueryResponse{
		ID:            o.ID(),
		Items:         views,
		ItemCount:     o.ItemCount(),
		Subtotal:      o.Subtotal(),
		Discount:      o.Discount().Kind(),
		DiscountLabel: o.Discount().Label(),
		Total:         o.CalculateTotal(),
		Status:        o.Status(),
		Summary:       o.Summary(),
	}
}

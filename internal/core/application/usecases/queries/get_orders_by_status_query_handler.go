package queries

import "context"

type GetOrdersByStatusQueryHandler struct {
	reader OrderReader
}

func NewGetOrdersByStatusQueryHandler(reader OrderReader) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{reader: reader}
}

func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) (GetOrdersByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersByStatusQueryResponse{}, err
	}

	res, err := h.reader.GetList(ctx, query.Status())
	if err != nil {
		return GetOrdersByStatusQueryResponse{}, err
	}

	return GetOrdersByStatusQueryResponse{Orders: res.Orders, Cached: res.Cached}, nil
}

package handler

import "github.com/ecom-labs/order-total-service/internal/entities"

// Order is the wire representation of an order. Field names are
// case-sensitive and clients depend on them verbatim.
type Order struct {
	OrderID         int     `json:"order_id"`
	ProductID       int     `json:"product_id"`
	Quantity        int     `json:"quantity"`
	Subtotal        float64 `json:"subtotal"`
	ShippingAddress string  `json:"shipping_address"`
	ShippingZip     string  `json:"shipping_zip"`
	Total           float64 `json:"total"`
}

// OrderPayload is the inbound body for /compute. Pointer fields make a
// missing key distinguishable from a zero value, so validation rejects
// incomplete orders instead of silently defaulting fields.
type OrderPayload struct {
	OrderID         *int     `json:"order_id" validate:"required"`
	ProductID       *int     `json:"product_id" validate:"required"`
	Quantity        *int     `json:"quantity" validate:"required"`
	Subtotal        *float64 `json:"subtotal" validate:"required"`
	ShippingAddress *string  `json:"shipping_address" validate:"required"`
	ShippingZip     *string  `json:"shipping_zip" validate:"required"`
	Total           *float64 `json:"total" validate:"required"`
}

func OrderJSONToEntity(p OrderPayload) entities.Order {
	return entities.Order{
		OrderID:         *p.OrderID,
		ProductID:       *p.ProductID,
		Quantity:        *p.Quantity,
		Subtotal:        *p.Subtotal,
		ShippingAddress: *p.ShippingAddress,
		ShippingZip:     *p.ShippingZip,
		Total:           *p.Total,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	return Order{
		OrderID:         o.OrderID,
		ProductID:       o.ProductID,
		Quantity:        o.Quantity,
		Subtotal:        o.Subtotal,
		ShippingAddress: o.ShippingAddress,
		ShippingZip:     o.ShippingZip,
		Total:           o.Total,
	}
}

package domain

import "time"

// Order is a sales order as held in the dashboard snapshot. ID is the
// business order number assigned by the upstream order system.
type Order struct {
	ID              string        `json:"id"`
	OrderDate       time.Time     `json:"orderDate"`
	Status          string        `json:"status"`
	CustomerName    string        `json:"customerName"`
	CustomerEmail   string        `json:"customerEmail"`
	CustomerPhone   string        `json:"customerPhone"`
	BillingAddress  string        `json:"billingAddress"`
	ShippingAddress string        `json:"shippingAddress"`
	PaymentMethod   string        `json:"paymentMethod"`
	CardHolder      string        `json:"cardHolder"`
	CardLast4       string        `json:"cardLast4"`
	CardNetwork     string        `json:"cardNetwork"`
	SalesAgent      string        `json:"salesAgent"`
	Source          string        `json:"source"`
	TotalAmount     Money         `json:"totalAmount"`
	PaidAmount      Money         `json:"paidAmount"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
	Products        []Product     `json:"products"`
	OwnShippingInfo *ShippingInfo `json:"ownShippingInfo,omitempty"`
}

// Product is one line item of an order.
type Product struct {
	SKU            string `json:"sku"`
	Make           string `json:"make"`
	Model          string `json:"model"`
	Year           int    `json:"year"`
	Part           string `json:"part"`
	Specification  string `json:"specification"`
	VIN            string `json:"vin"`
	Price          Money  `json:"price"`
	Quantity       int    `json:"quantity"`
	WarrantyMonths int    `json:"warrantyMonths"`
	Mileage        int    `json:"mileage"`
}

// ShippingInfo describes a shipment arranged by the business itself.
type ShippingInfo struct {
	Carrier           string     `json:"carrier"`
	TrackingNumber    string     `json:"trackingNumber"`
	Method            string     `json:"method"`
	Cost              Money      `json:"cost"`
	Status            string     `json:"status"`
	ShippedAt         *time.Time `json:"shippedAt,omitempty"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery,omitempty"`
}

// Clone returns a deep copy of the order.
func (o Order) Clone() Order {
	c := o
	if o.Products != nil {
		c.Products = make([]Product, len(o.Products))
		copy(c.Products, o.Products)
	}
	if o.OwnShippingInfo != nil {
		s := *o.OwnShippingInfo
		if s.ShippedAt != nil {
			t := *s.ShippedAt
			s.ShippedAt = &t
		}
		if s.EstimatedDelivery != nil {
			t := *s.EstimatedDelivery
			s.EstimatedDelivery = &t
		}
		c.OwnShippingInfo = &s
	}
	return c
}

// OrderFilter narrows a paged order listing.
type OrderFilter struct {
	Status     string
	SalesAgent string
	Limit      int
	Offset     int
}

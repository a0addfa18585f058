package transport

// ProductRequest is the body for both create and update. Update is
// full-replace, so the two share a shape. Price is a pointer so a missing
// price and a zero price are distinguishable.
type ProductRequest struct {
	Name  string   `json:"name"`
	Price *float64 `json:"price"`
	Image string   `json:"image"`
}

type AddToCartRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

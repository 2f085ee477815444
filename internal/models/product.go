package models

// Product is part of the schema surface for the "product" collection. No
// route exposes it today.
type Product struct {
	Title       string  `json:"title" bson:"title" validate:"required"`
	Description *string `json:"description" bson:"description,omitempty"`
	Price       float64 `json:"price" bson:"price" validate:"gte=0"`
	Category    string  `json:"category" bson:"category" validate:"required"`
	InStock     *bool   `json:"in_stock" bson:"in_stock"`
}

func (p *Product) ApplyDefaults() {
	if p.InStock == nil {
		inStock := true
		p.InStock = &inStock
	}
}

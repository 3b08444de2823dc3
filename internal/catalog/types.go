package catalog

// Product is an immutable catalog record, seeded at build time.
type Product struct {
	ID            string   `json:"id" validate:"required"`
	Name          string   `json:"name" validate:"required"`
	Brand         string   `json:"brand" validate:"required"`
	Price         float64  `json:"price" validate:"gte=0"`
	OriginalPrice *float64 `json:"original_price,omitempty" validate:"omitempty,gte=0"`
	Image         string   `json:"image" validate:"required,url"`
	Images        []string `json:"images,omitempty" validate:"omitempty,dive,url"`
	Category      string   `json:"category" validate:"required"`
	Subcategory   string   `json:"subcategory,omitempty"`
	Description   string   `json:"description" validate:"required"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	InStock       bool     `json:"in_stock"`
	IsTrending    bool     `json:"is_trending,omitempty"`
	IsNew         bool     `json:"is_new,omitempty"`
	Rating        float64  `json:"rating" validate:"gte=0,lte=5"`
	Reviews       int      `json:"reviews" validate:"gte=0"`
}

// Category is a browsing bucket. ProductCount is a denormalized display
// figure, not recomputed from the product list.
type Category struct {
	ID           string `json:"id" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Slug         string `json:"slug" validate:"required,lowercase,excludesall= "`
	Image        string `json:"image" validate:"required,url"`
	ProductCount int    `json:"product_count" validate:"gte=0"`
}

package catalog

func floatPtr(v float64) *float64 { return &v }

// seedProducts is the storefront's demo inventory. IsNew and IsTrending
// drive the "new arrivals" and "trending" views.
var seedProducts = []Product{
	{
		ID:          "p-1001",
		Name:        "Oversized Wool Coat",
		Brand:       "Maison Noir",
		Price:       289,
		Image:       "https://images.vogue-storefront.dev/products/wool-coat.jpg",
		Category:    "Outerwear",
		Subcategory: "Coats",
		Description: "Double-breasted oversized coat in brushed Italian wool.",
		Sizes:       []string{"XS", "S", "M", "L", "XL"},
		Colors:      []string{"Camel", "Black", "Charcoal"},
		InStock:     true,
		IsTrending:  true,
		Rating:      4.8,
		Reviews:     214,
	},
	{
		ID:            "p-1002",
		Name:          "Silk Slip Dress",
		Brand:         "Atelier Lune",
		Price:         149,
		OriginalPrice: floatPtr(198),
		Image:         "https://images.vogue-storefront.dev/products/slip-dress.jpg",
		Images: []string{
			"https://images.vogue-storefront.dev/products/slip-dress.jpg",
			"https://images.vogue-storefront.dev/products/slip-dress-back.jpg",
		},
		Category:    "Dresses",
		Subcategory: "Slip Dresses",
		Description: "Bias-cut slip dress in washed mulberry silk.",
		Sizes:       []string{"XS", "S", "M", "L"},
		Colors:      []string{"Champagne", "Midnight", "Ivory"},
		InStock:     true,
		IsNew:       true,
		IsTrending:  true,
		Rating:      4.6,
		Reviews:     98,
	},
	{
		ID:          "p-1003",
		Name:        "Relaxed Linen Shirt",
		Brand:       "Studio Mar",
		Price:       89,
		Image:       "https://images.vogue-storefront.dev/products/linen-shirt.jpg",
		Category:    "Tops",
		Subcategory: "Shirts",
		Description: "Relaxed-fit shirt in European flax linen, garment washed.",
		Sizes:       []string{"S", "M", "L", "XL"},
		Colors:      []string{"White", "Sage", "Sand"},
		InStock:     true,
		IsNew:       true,
		Rating:      4.4,
		Reviews:     156,
	},
	{
		ID:          "p-1004",
		Name:        "High-Rise Wide Leg Trousers",
		Brand:       "Maison Noir",
		Price:       135,
		Image:       "https://images.vogue-storefront.dev/products/wide-trousers.jpg",
		Category:    "Bottoms",
		Subcategory: "Trousers",
		Description: "Floor-skimming wide leg trousers with a tailored waistband.",
		Sizes:       []string{"24", "25", "26", "27", "28", "29", "30"},
		Colors:      []string{"Black", "Cream"},
		InStock:     true,
		IsTrending:  true,
		Rating:      4.7,
		Reviews:     189,
	},
	{
		ID:            "p-1005",
		Name:          "Cashmere Crewneck",
		Brand:         "Ren Knitwear",
		Price:         178,
		OriginalPrice: floatPtr(225),
		Image:         "https://images.vogue-storefront.dev/products/cashmere-crew.jpg",
		Category:      "Knitwear",
		Description:   "Two-ply Mongolian cashmere crewneck with ribbed trims.",
		Sizes:         []string{"XS", "S", "M", "L", "XL"},
		Colors:        []string{"Oatmeal", "Navy", "Rose"},
		InStock:       true,
		Rating:        4.9,
		Reviews:       342,
	},
	{
		ID:          "p-1006",
		Name:        "Leather Chelsea Boots",
		Brand:       "Forte",
		Price:       245,
		Image:       "https://images.vogue-storefront.dev/products/chelsea-boots.jpg",
		Category:    "Footwear",
		Subcategory: "Boots",
		Description: "Polished calf leather Chelsea boots on a lugged sole.",
		Sizes:       []string{"36", "37", "38", "39", "40", "41"},
		Colors:      []string{"Black", "Chestnut"},
		InStock:     true,
		IsNew:       true,
		Rating:      4.5,
		Reviews:     77,
	},
	{
		ID:          "p-1007",
		Name:        "Structured Shoulder Bag",
		Brand:       "Atelier Lune",
		Price:       320,
		Image:       "https://images.vogue-storefront.dev/products/shoulder-bag.jpg",
		Category:    "Accessories",
		Subcategory: "Bags",
		Description: "Structured shoulder bag in pebbled leather with gold hardware.",
		Sizes:       []string{"One Size"},
		Colors:      []string{"Black", "Taupe", "Bordeaux"},
		InStock:     true,
		IsTrending:  true,
		Rating:      4.8,
		Reviews:     265,
	},
	{
		ID:          "p-1008",
		Name:        "Pleated Midi Skirt",
		Brand:       "Studio Mar",
		Price:       110,
		Image:       "https://images.vogue-storefront.dev/products/midi-skirt.jpg",
		Category:    "Bottoms",
		Subcategory: "Skirts",
		Description: "Knife-pleated midi skirt in fluid recycled satin.",
		Sizes:       []string{"XS", "S", "M", "L"},
		Colors:      []string{"Emerald", "Silver"},
		InStock:     false,
		Rating:      4.3,
		Reviews:     64,
	},
	{
		ID:          "p-1009",
		Name:        "Boxy Denim Jacket",
		Brand:       "Forte",
		Price:       125,
		Image:       "https://images.vogue-storefront.dev/products/denim-jacket.jpg",
		Category:    "Outerwear",
		Subcategory: "Jackets",
		Description: "Boxy-cut jacket in rigid Japanese selvedge denim.",
		Sizes:       []string{"S", "M", "L", "XL"},
		Colors:      []string{"Indigo", "Washed Black"},
		InStock:     true,
		IsNew:       true,
		Rating:      4.2,
		Reviews:     112,
	},
	{
		ID:          "p-1010",
		Name:        "Merino Ribbed Beanie",
		Brand:       "Ren Knitwear",
		Price:       45,
		Image:       "https://images.vogue-storefront.dev/products/beanie.jpg",
		Category:    "Accessories",
		Subcategory: "Hats",
		Description: "Ribbed beanie in extra-fine merino wool.",
		Sizes:       []string{"One Size"},
		Colors:      []string{"Black", "Mustard", "Forest"},
		InStock:     true,
		Rating:      4.6,
		Reviews:     58,
	},
}

var seedCategories = []Category{
	{
		ID:           "c-1",
		Name:         "Outerwear",
		Slug:         "outerwear",
		Image:        "https://images.vogue-storefront.dev/categories/outerwear.jpg",
		ProductCount: 24,
	},
	{
		ID:           "c-2",
		Name:         "Dresses",
		Slug:         "dresses",
		Image:        "https://images.vogue-storefront.dev/categories/dresses.jpg",
		ProductCount: 38,
	},
	{
		ID:           "c-3",
		Name:         "Tops",
		Slug:         "tops",
		Image:        "https://images.vogue-storefront.dev/categories/tops.jpg",
		ProductCount: 52,
	},
	{
		ID:           "c-4",
		Name:         "Bottoms",
		Slug:         "bottoms",
		Image:        "https://images.vogue-storefront.dev/categories/bottoms.jpg",
		ProductCount: 41,
	},
	{
		ID:           "c-5",
		Name:         "Knitwear",
		Slug:         "knitwear",
		Image:        "https://images.vogue-storefront.dev/categories/knitwear.jpg",
		ProductCount: 19,
	},
	{
		ID:           "c-6",
		Name:         "Footwear",
		Slug:         "footwear",
		Image:        "https://images.vogue-storefront.dev/categories/footwear.jpg",
		ProductCount: 27,
	},
	{
		ID:           "c-7",
		Name:         "Accessories",
		Slug:         "accessories",
		Image:        "https://images.vogue-storefront.dev/categories/accessories.jpg",
		ProductCount: 33,
	},
}

package models

type Product struct {
	Base        `bson:",inline"`
	Name        string            `bson:"name" json:"name"`
	CategoryID  ProductCategoryID `bson:"categoryId" json:"categoryId"`
	Description string            `bson:"description" json:"description"`
	Image       string            `bson:"image" json:"image"`
	Price       float64           `bson:"price" json:"price"`
	Stock       int               `bson:"stock" json:"stock"`
	Brand       string            `bson:"brand,omitempty" json:"brand,omitempty"`
	Highlights  []string          `bson:"highlights,omitempty" json:"highlights,omitempty"`
	Weight      string            `bson:"weight,omitempty" json:"weight,omitempty"`
}

func (p Product) WithMeta(b Base) Product {
	p.Base = b
	return p
}

type ProductPatch struct {
	Name        *string
	CategoryID  *ProductCategoryID
	Description *string
	Image       *string
	Price       *float64
	Stock       *int
	Brand       *string
	Highlights  []string // nil keeps the current list
	Weight      *string
}

func (p ProductPatch) Apply(prod *Product) {
	setString(&prod.Name, p.Name)
	setString(&prod.Description, p.Description)
	setString(&prod.Image, p.Image)
	setString(&prod.Brand, p.Brand)
	setString(&prod.Weight, p.Weight)
	if p.CategoryID != nil {
		prod.CategoryID = *p.CategoryID
	}
	if p.Price != nil {
		prod.Price = *p.Price
	}
	if p.Stock != nil {
		prod.Stock = *p.Stock
	}
	if p.Highlights != nil {
		prod.Highlights = p.Highlights
	}
}

type ProductFilter struct {
	CategoryID ProductCategoryID
	Search     string
}

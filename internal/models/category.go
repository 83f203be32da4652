package models

type ProductCategoryID string

const (
	CategoryCat       ProductCategoryID = "cat"
	CategoryDog       ProductCategoryID = "dog"
	CategoryBird      ProductCategoryID = "bird"
	CategoryRabbit    ProductCategoryID = "rabbit"
	CategorySmallPet  ProductCategoryID = "small-pet"
	CategoryAccessory ProductCategoryID = "accessory"
)

type ProductCategory struct {
	ID    ProductCategoryID `json:"id"`
	Label string            `json:"label"`
}

// ProductCategories is the fixed catalog taxonomy, in display order.
var ProductCategories = []ProductCategory{
	{ID: CategoryCat, Label: "لوازم گربه"},
	{ID: CategoryDog, Label: "لوازم سگ"},
	{ID: CategoryBird, Label: "ملزومات پرندگان"},
	{ID: CategoryRabbit, Label: "لوازم خرگوش"},
	{ID: CategorySmallPet, Label: "جوندگان و کوچک"},
	{ID: CategoryAccessory, Label: "اکسسوری و عمومی"},
}

package handlers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/pet24-api/internal/models"
)

const (
	msgInvalidPrice    = "قیمت نامعتبر است"
	msgInvalidStock    = "موجودی نامعتبر است"
	msgInvalidCategory = "دسته‌بندی نامعتبر است"
)

type productRequest struct {
	Name        *string    `json:"name"`
	CategoryID  *string    `json:"categoryId"`
	Description *string    `json:"description"`
	Image       *string    `json:"image"`
	Price       number     `json:"price"`
	Stock       number     `json:"stock"`
	Brand       *string    `json:"brand"`
	Weight      *string    `json:"weight"`
	Highlights  highlights `json:"highlights"`
}

func validPrice(n number) bool {
	return n.Valid && n.Value > 0
}

func validStock(n number) bool {
	return n.Valid && n.Value >= 0 && n.Value == math.Trunc(n.Value) && n.Value <= math.MaxInt32
}

// GetProducts answers with the category list and the matching products.
func (h *Handler) GetProducts(c *gin.Context) {
	products, err := h.Products.List(c.Request.Context(), models.ProductFilter{
		CategoryID: models.ProductCategoryID(c.Query("categoryId")),
		Search:     c.Query("search"),
	})
	if err != nil {
		h.respondError(c, err, msgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"categories": h.Products.Categories(),
		"products":   products,
	})
}

func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.Products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, msgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req productRequest
	if !h.bindJSON(c, &req) {
		return
	}

	if name := missingField(
		field{"name", req.Name},
		field{"categoryId", req.CategoryID},
	); name != "" {
		badRequest(c, requiredMessage(name))
		return
	}
	if !req.Price.Set {
		badRequest(c, requiredMessage("price"))
		return
	}
	if name := missingField(
		field{"description", req.Description},
		field{"image", req.Image},
	); name != "" {
		badRequest(c, requiredMessage(name))
		return
	}
	if !req.Stock.Set {
		badRequest(c, requiredMessage("stock"))
		return
	}
	if !validPrice(req.Price) {
		badRequest(c, msgInvalidPrice)
		return
	}
	if !validStock(req.Stock) {
		badRequest(c, msgInvalidStock)
		return
	}
	category := trimmed(req.CategoryID)
	if !h.validator.Category(category) {
		badRequest(c, msgInvalidCategory)
		return
	}

	product := models.Product{
		Name:        trimmed(req.Name),
		CategoryID:  models.ProductCategoryID(category),
		Description: trimmed(req.Description),
		Image:       trimmed(req.Image),
		Price:       req.Price.Value,
		Stock:       int(req.Stock.Value),
		Brand:       trimmed(req.Brand),
		Weight:      trimmed(req.Weight),
	}
	if len(req.Highlights.Items) > 0 {
		product.Highlights = req.Highlights.Items
	}

	created, err := h.Products.Create(c.Request.Context(), product)
	if err != nil {
		h.respondError(c, err, "خطا در ایجاد محصول جدید")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateProduct changes only the fields present in the body.
func (h *Handler) UpdateProduct(c *gin.Context) {
	var req productRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if name := blankField(
		field{"name", req.Name},
		field{"categoryId", req.CategoryID},
		field{"description", req.Description},
		field{"image", req.Image},
	); name != "" {
		badRequest(c, requiredMessage(name))
		return
	}
	if req.Price.Set && !validPrice(req.Price) {
		badRequest(c, msgInvalidPrice)
		return
	}
	if req.Stock.Set && !validStock(req.Stock) {
		badRequest(c, msgInvalidStock)
		return
	}

	patch := models.ProductPatch{
		Name:        trimmedPtr(req.Name),
		Description: trimmedPtr(req.Description),
		Image:       trimmedPtr(req.Image),
		Price:       req.Price.Ptr(),
		Brand:       trimmedPtr(req.Brand),
		Weight:      trimmedPtr(req.Weight),
	}
	if req.CategoryID != nil {
		category := trimmed(req.CategoryID)
		if !h.validator.Category(category) {
			badRequest(c, msgInvalidCategory)
			return
		}
		id := models.ProductCategoryID(category)
		patch.CategoryID = &id
	}
	if req.Stock.Set {
		stock := int(req.Stock.Value)
		patch.Stock = &stock
	}
	if req.Highlights.Set {
		patch.Highlights = req.Highlights.Items
	}

	updated, err := h.Products.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.respondError(c, err, "خطا در به‌روزرسانی محصول")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.Products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err, "خطا در حذف محصول")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "محصول با موفقیت حذف شد"})
}

package domain

import (
	"Groeneweide-Backend/entities"
	"Groeneweide-Backend/pkg/patch"
)

var (
	MessageSuccessCreateProduct = "product created successfully"
	MessageSuccessGetProducts   = "success get products"
	MessageSuccessGetProduct    = "success get product"
	MessageSuccessUpdateProduct = "product updated successfully"
	MessageSuccessDeleteProduct = "product deleted successfully"

	MessageFailedCreateProduct = "failed to create product"
	MessageFailedGetProducts   = "failed to get products"
	MessageFailedGetProduct    = "failed to get product"
	MessageFailedUpdateProduct = "failed to update product"
	MessageFailedDeleteProduct = "failed to delete product"

	ErrProductNotFound   = NewRuleError(ErrNotFound, "no product found with given product ID")
	ErrInvalidProduct    = NewRuleError(ErrInvalidReference, "no product found with given product ID")
	ErrProductExists     = NewRuleError(ErrAlreadyExists, "name already exists")
	ErrProductNotUpdated = NewRuleError(ErrNoRowsChanged, "no changes were made")
	ErrProductInUse      = NewRuleError(ErrHasDependents, "product is still used by orders or recipes")
)

type (
	CreateProductRequest struct {
		CategoryID    uint   `json:"category_id" validate:"required"`
		AssetsURL     string `json:"assets_url" validate:"max=255"`
		Name          string `json:"name" validate:"required,max=100"`
		Price         int64  `json:"price" validate:"min=0"`
		Size          string `json:"size" validate:"max=50"`
		AmountInStock int    `json:"amount_in_stock" validate:"min=0"`
	}

	// ProductPatch carries one optional value per updatable column.
	ProductPatch struct {
		CategoryID    *uint   `json:"category_id" validate:"omitempty,min=1"`
		AssetsURL     *string `json:"assets_url" validate:"omitempty,max=255"`
		Name          *string `json:"name" validate:"omitempty,min=1,max=100"`
		Price         *int64  `json:"price" validate:"omitempty,min=0"`
		Size          *string `json:"size" validate:"omitempty,max=50"`
		AmountInStock *int    `json:"amount_in_stock" validate:"omitempty,min=0"`
	}

	ProductResponse struct {
		ProductID     uint   `json:"product_id"`
		CategoryID    uint   `json:"category_id"`
		AssetsURL     string `json:"assets_url"`
		Name          string `json:"name"`
		Price         int64  `json:"price"`
		Size          string `json:"size"`
		AmountInStock int    `json:"amount_in_stock"`
	}
)

func (p ProductPatch) Changes() *patch.ChangeSet {
	cs := patch.New()
	patch.Field(cs, entities.ColCategoryID, p.CategoryID)
	patch.Field(cs, entities.ColAssetsURL, p.AssetsURL)
	patch.Field(cs, entities.ColName, p.Name)
	patch.Field(cs, entities.ColPrice, p.Price)
	patch.Field(cs, entities.ColSize, p.Size)
	patch.Field(cs, entities.ColAmountInStock, p.AmountInStock)
	return cs
}

func NewProductResponse(p *entities.Product) ProductResponse {
	return ProductResponse{
		ProductID:     p.ProductID,
		CategoryID:    p.CategoryID,
		AssetsURL:     p.AssetsURL,
		Name:          p.Name,
		Price:         p.Price,
		Size:          p.Size,
		AmountInStock: p.AmountInStock,
	}
}

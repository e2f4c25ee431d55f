package domain

import (
	"Groeneweide-Backend/entities"
	"Groeneweide-Backend/pkg/patch"
)

var (
	MessageSuccessCreateOrderedProduct = "ordered product created successfully"
	MessageSuccessGetOrderedProducts   = "success get ordered products"
	MessageSuccessUpdateOrderedProduct = "ordered product updated successfully"
	MessageSuccessDeleteOrderedProduct = "ordered product is deleted"

	MessageFailedCreateOrderedProduct = "failed to create ordered product"
	MessageFailedGetOrderedProducts   = "no ordered products found"
	MessageFailedUpdateOrderedProduct = "failed to update ordered product"
	MessageFailedDeleteOrderedProduct = "failed to delete ordered product"

	ErrOrderedProductNotFound   = NewRuleError(ErrNotFound, "no ordered products found with the given OrderID and ProductID")
	ErrDuplicateOrderedProduct  = NewRuleError(ErrDuplicatePair, "product is already ordered")
	ErrOrderedProductNotUpdated = NewRuleError(ErrNoRowsChanged, "ordered product not updated")
	ErrOrderedProductNotDeleted = NewRuleError(ErrNoRowsChanged, "ordered product is still present after delete")
)

type (
	CreateOrderedProductRequest struct {
		OrderID   uint `json:"order_id" validate:"required"`
		ProductID uint `json:"product_id" validate:"required"`
		Amount    int  `json:"amount" validate:"required,min=1"`
	}

	// OrderedProductPatch may move a line to another order and/or product;
	// the moved-to pair must not exist yet.
	OrderedProductPatch struct {
		OrderID   *uint `json:"order_id" validate:"omitempty,min=1"`
		ProductID *uint `json:"product_id" validate:"omitempty,min=1"`
		Amount    *int  `json:"amount" validate:"omitempty,min=1"`
	}

	OrderedProductResponse struct {
		OrderID   uint `json:"order_id"`
		ProductID uint `json:"product_id"`
		Amount    int  `json:"amount"`
	}
)

func (p OrderedProductPatch) Changes() *patch.ChangeSet {
	cs := patch.New()
	patch.Field(cs, entities.ColOrderID, p.OrderID)
	patch.Field(cs, entities.ColProductID, p.ProductID)
	patch.Field(cs, entities.ColAmount, p.Amount)
	return cs
}

// Target returns the pair the line will have after the patch is applied.
func (p OrderedProductPatch) Target(orderID, productID uint) (uint, uint) {
	if p.OrderID != nil {
		orderID = *p.OrderID
	}
	if p.ProductID != nil {
		productID = *p.ProductID
	}
	return orderID, productID
}

func NewOrderedProductResponse(op *entities.OrderedProduct) OrderedProductResponse {
	return OrderedProductResponse{
		OrderID:   op.OrderID,
		ProductID: op.ProductID,
		Amount:    op.Amount,
	}
}

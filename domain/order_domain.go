package domain

import (
	"Groeneweide-Backend/entities"
	"Groeneweide-Backend/pkg/patch"
	"errors"
	"time"
)

var (
	MessageSuccessCreateOrder = "order created successfully"
	MessageSuccessGetOrders   = "success get orders"
	MessageSuccessGetOrder    = "success get order"
	MessageSuccessUpdateOrder = "order updated successfully"
	MessageSuccessDeleteOrder = "order and products are deleted"

	MessageFailedCreateOrder = "failed to create order"
	MessageFailedGetOrders   = "no orders found"
	MessageFailedGetOrder    = "failed to get order"
	MessageFailedUpdateOrder = "failed to update order"
	MessageFailedDeleteOrder = "failed to delete order"

	ErrOrderNotFound     = NewRuleError(ErrNotFound, "no order found with given order ID")
	ErrInvalidOrder      = NewRuleError(ErrInvalidReference, "no order found with given order ID")
	ErrOrderNotUpdated   = NewRuleError(ErrNoRowsChanged, "order not updated")
	ErrNoOrderedProducts = NewRuleError(ErrNoDependents, "no ordered products found with given order ID")

	// ErrCascadeIncomplete means the number of removed lines did not match
	// the number counted inside the same transaction.
	ErrCascadeIncomplete = errors.New("cascade removed a different number of ordered products than counted")
)

type (
	// OrderRequest is the full set of writable order columns, used for
	// create and replace.
	OrderRequest struct {
		LockerID        uint       `json:"locker_id" validate:"required"`
		BookingID       uint       `json:"booking_id" validate:"required"`
		Price           int64      `json:"price" validate:"min=0"`
		MomentCreated   time.Time  `json:"moment_created" validate:"required"`
		MomentDelivered *time.Time `json:"moment_delivered"`
		MomentGathered  *time.Time `json:"moment_gathered"`
	}

	OrderPatch struct {
		LockerID        *uint      `json:"locker_id" validate:"omitempty,min=1"`
		BookingID       *uint      `json:"booking_id" validate:"omitempty,min=1"`
		Price           *int64     `json:"price" validate:"omitempty,min=0"`
		MomentCreated   *time.Time `json:"moment_created"`
		MomentDelivered *time.Time `json:"moment_delivered"`
		MomentGathered  *time.Time `json:"moment_gathered"`
	}

	OrderResponse struct {
		OrderID         uint                     `json:"order_id"`
		LockerID        uint                     `json:"locker_id"`
		BookingID       uint                     `json:"booking_id"`
		Price           int64                    `json:"price"`
		MomentCreated   time.Time                `json:"moment_created"`
		MomentDelivered *time.Time               `json:"moment_delivered"`
		MomentGathered  *time.Time               `json:"moment_gathered"`
		Lines           []OrderedProductResponse `json:"lines,omitempty"`
	}

	CascadeResult struct {
		OrderID      uint  `json:"order_id"`
		LinesRemoved int64 `json:"lines_removed"`
	}
)

// Changes assigns every column, so optional moments absent from the request
// are cleared.
func (r OrderRequest) Changes() *patch.ChangeSet {
	return patch.New().
		Set(entities.ColLockerID, r.LockerID).
		Set(entities.ColBookingID, r.BookingID).
		Set(entities.ColPrice, r.Price).
		Set(entities.ColMomentCreated, r.MomentCreated).
		Set(entities.ColMomentDelivered, r.MomentDelivered).
		Set(entities.ColMomentGathered, r.MomentGathered)
}

func (p OrderPatch) Changes() *patch.ChangeSet {
	cs := patch.New()
	patch.Field(cs, entities.ColLockerID, p.LockerID)
	patch.Field(cs, entities.ColBookingID, p.BookingID)
	patch.Field(cs, entities.ColPrice, p.Price)
	patch.Field(cs, entities.ColMomentCreated, p.MomentCreated)
	patch.Field(cs, entities.ColMomentDelivered, p.MomentDelivered)
	patch.Field(cs, entities.ColMomentGathered, p.MomentGathered)
	return cs
}

// TouchesReferences reports whether the patch changes the locker or booking.
func (p OrderPatch) TouchesReferences() bool {
	return p.LockerID != nil || p.BookingID != nil
}

func NewOrderResponse(o *entities.Order) OrderResponse {
	res := OrderResponse{
		OrderID:         o.OrderID,
		LockerID:        o.LockerID,
		BookingID:       o.BookingID,
		Price:           o.Price,
		MomentCreated:   o.MomentCreated,
		MomentDelivered: o.MomentDelivered,
		MomentGathered:  o.MomentGathered,
	}
	for i := range o.Lines {
		res.Lines = append(res.Lines, NewOrderedProductResponse(&o.Lines[i]))
	}
	return res
}

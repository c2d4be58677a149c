package booking

import (
	"context"

	"github.com/Sohilkhan0021/anceller-admin-sub002/models"
	"github.com/Sohilkhan0021/anceller-admin-sub002/services/query"
)

// MarketplaceAPI is the slice of the backend client the booking service needs.
type MarketplaceAPI interface {
	ListBookings(ctx context.Context, f query.Filters) (*models.BookingPage, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	CancelBooking(ctx context.Context, id, reason string) (*models.Booking, error)
}

// BookingService is the console-facing surface for the booking lifecycle.
type BookingService interface {
	List(ctx context.Context, f query.Filters) (*models.BookingPage, error)
	Get(ctx context.Context, id string) (*models.Booking, error)
	Actions(b *models.Booking) []Action
	Cancel(ctx context.Context, actor models.AdminIdentity, id, reason string) (*models.Booking, error)
}

// Action is one admin operation currently legal for a booking, with the
// confirmation copy the console renders before executing it.
type Action struct {
	Name           string             `json:"name"`
	Label          string             `json:"label"`
	RequiresReason bool               `json:"requiresReason"`
	Confirm        models.ConfirmCopy `json:"confirm"`
}

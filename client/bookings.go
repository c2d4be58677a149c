package client

import (
	"context"
	"fmt"

	"github.com/Sohilkhan0021/anceller-admin-sub002/models"
	"github.com/Sohilkhan0021/anceller-admin-sub002/services/query"
)

type bookingListResponse struct {
	Bookings []bookingWire `json:"bookings"`
	Page     pageWire      `json:"pagination"`
}

type bookingDetailResponse struct {
	Booking bookingWire `json:"booking"`
}

// ListBookings fetches one page of bookings matching the filter state.
func (c *Client) ListBookings(ctx context.Context, f query.Filters) (*models.BookingPage, error) {
	var resp bookingListResponse
	if err := c.get(ctx, "/admin/bookings", f.Query(), "booking", "", &resp); err != nil {
		return nil, err
	}

	page := &models.BookingPage{
		Page:       resp.Page.Page,
		PageSize:   resp.Page.Limit,
		TotalItems: resp.Page.TotalItems,
		TotalPages: resp.Page.TotalPages,
	}
	for _, w := range resp.Bookings {
		page.Bookings = append(page.Bookings, w.toModel())
	}
	return page, nil
}

// GetBooking fetches a single booking by id.
func (c *Client) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	var resp bookingDetailResponse
	if err := c.get(ctx, fmt.Sprintf("/admin/bookings/%s", id), nil, "booking", id, &resp); err != nil {
		return nil, err
	}
	b := resp.Booking.toModel()
	return &b, nil
}

// CancelBooking requests the cancel transition. The backend returns the
// updated booking, but callers still refetch before rendering.
func (c *Client) CancelBooking(ctx context.Context, id, reason string) (*models.Booking, error) {
	body := map[string]string{"reason": reason}
	var resp bookingDetailResponse
	if err := c.post(ctx, fmt.Sprintf("/admin/bookings/%s/cancel", id), body, "booking", id, &resp); err != nil {
		return nil, err
	}
	b := resp.Booking.toModel()
	return &b, nil
}

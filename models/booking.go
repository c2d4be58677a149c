package models

import "time"

// BookingItem is one service line on a booking. Items are read-only once the
// booking exists; the console never edits them.
type BookingItem struct {
	ServiceID  string  `json:"serviceId"`
	SubService string  `json:"subService,omitempty"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`
}

// StatusHistoryEntry is one backend-produced transition record. The console
// only triggers transitions; it never writes history entries itself.
type StatusHistoryEntry struct {
	Status    BookingStatus `json:"status"`
	ChangedAt time.Time     `json:"changedAt"`
	ChangedBy string        `json:"changedBy,omitempty"`
	Reason    string        `json:"reason,omitempty"`
}

// PaymentInfo carries the payment side channel of a booking.
type PaymentInfo struct {
	Status   PaymentStatus `json:"status"`
	Amount   float64       `json:"amount,omitempty"`
	Currency string        `json:"currency,omitempty"`
	Method   string        `json:"method,omitempty"`
}

// Booking is the console's view model of a marketplace booking. Status fields
// hold parsed enum values; RawStatus keeps the exact token the backend sent so
// unmapped values (RESCHEDULED, new enum members) can still be displayed verbatim.
type Booking struct {
	ID            string               `json:"bookingId"`
	CustomerID    string               `json:"customerId,omitempty"`
	CustomerName  string               `json:"customerName,omitempty"`
	ProviderID    string               `json:"providerId,omitempty"`
	ProviderName  string               `json:"providerName,omitempty"`
	Status        BookingStatus        `json:"status"`
	RawStatus     string               `json:"rawStatus,omitempty"`
	Payment       PaymentInfo          `json:"payment"`
	Items         []BookingItem        `json:"items,omitempty"`
	StatusHistory []StatusHistoryEntry `json:"statusHistory,omitempty"`
	ScheduledAt   time.Time            `json:"scheduledAt,omitzero"`
	CreatedAt     time.Time            `json:"createdAt,omitzero"`
	UpdatedAt     time.Time            `json:"updatedAt,omitzero"`
}

// BookingPage is one page of a booking list plus the backend's pagination totals.
type BookingPage struct {
	Bookings   []Booking `json:"bookings"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	TotalItems int       `json:"totalItems"`
	TotalPages int       `json:"totalPages"`
}

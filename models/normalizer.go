package models

// Bidirectional mapping between the console's UI-facing status tokens and the
// backend enum vocabulary. The mapping is deliberately not a bijection:
// backend values with no UI equivalent (RESCHEDULED, FAILED, payment
// CANCELLED) pass through unchanged so the console never rejects or hides a
// value the backend introduced.

var bookingStatusToBackend = map[string]string{
	"accepted":    "ACTIVE",
	"completed":   "COMPLETED",
	"cancelled":   "CANCELED",
	"in-progress": "IN_PROGRESS",
}

var paymentStatusToBackend = map[string]string{
	"pending":        "PENDING",
	"paid":           "SUCCESS",
	"failed":         "FAILED",
	"refunded":       "REFUNDED",
	"partially-paid": "PARTIALLY_REFUNDED",
}

var (
	bookingStatusToFrontend = invert(bookingStatusToBackend)
	paymentStatusToFrontend = invert(paymentStatusToBackend)
)

func invert(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// BookingStatusToBackend translates a UI booking-status token to the backend
// enum value. Unknown tokens are returned unchanged.
func BookingStatusToBackend(token string) string {
	if v, ok := bookingStatusToBackend[token]; ok {
		return v
	}
	return token
}

// BookingStatusToFrontend is the inverse lookup. Unknown tokens are returned unchanged.
func BookingStatusToFrontend(token string) string {
	if v, ok := bookingStatusToFrontend[token]; ok {
		return v
	}
	return token
}

// PaymentStatusToBackend translates a UI payment-status token to the backend
// enum value. Unknown tokens are returned unchanged.
func PaymentStatusToBackend(token string) string {
	if v, ok := paymentStatusToBackend[token]; ok {
		return v
	}
	return token
}

// PaymentStatusToFrontend is the inverse lookup. Unknown tokens are returned unchanged.
func PaymentStatusToFrontend(token string) string {
	if v, ok := paymentStatusToFrontend[token]; ok {
		return v
	}
	return token
}

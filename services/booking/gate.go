package booking

import "github.com/Sohilkhan0021/anceller-admin-sub002/models"

// DefaultCancelReason is sent when the admin confirms a cancel without typing
// a reason.
const DefaultCancelReason = "Cancelled by admin"

// CanCancel reports whether a cancel action may be offered for the booking.
// A booking in a terminal status (CANCELED or COMPLETED) never offers cancel.
// The backend emits inconsistent casing and spelling across endpoints, so the
// raw wire token is re-parsed rather than compared literally.
func CanCancel(b *models.Booking) bool {
	if b == nil {
		return false
	}
	if b.Status.Terminal() {
		return false
	}
	if b.RawStatus != "" && models.ParseBookingStatus(b.RawStatus).Terminal() {
		return false
	}
	return true
}

var cancelAction = Action{
	Name:           "cancel",
	Label:          "Cancel Booking",
	RequiresReason: false,
	Confirm: models.ConfirmCopy{
		Title:        "Cancel this booking?",
		Description:  "The customer and provider will be notified. This cannot be undone.",
		ConfirmLabel: "Cancel Booking",
		Style:        "destructive",
	},
}

var editAction = Action{
	Name:  "edit",
	Label: "Edit Booking",
}

var reassignAction = Action{
	Name:  "reassign",
	Label: "Reassign Provider",
	Confirm: models.ConfirmCopy{
		Title:        "Reassign this booking?",
		Description:  "The current provider will be unassigned and a new one selected.",
		ConfirmLabel: "Reassign",
		Style:        "destructive",
	},
}

// ActionsFor returns the admin actions legal for the booking's current
// status. The set is purely a function of status; terminal bookings offer
// nothing.
func ActionsFor(b *models.Booking) []Action {
	if !CanCancel(b) {
		return nil
	}
	return []Action{cancelAction, editAction, reassignAction}
}

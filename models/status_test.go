package models

import "testing"

func TestParseBookingStatusCasingVariants(t *testing.T) {
	cases := map[string]BookingStatus{
		"cancelled":   BookingStatusCanceled,
		"CANCELLED":   BookingStatusCanceled,
		"Cancelled":   BookingStatusCanceled,
		"CANCELED":    BookingStatusCanceled,
		"completed":   BookingStatusCompleted,
		"in-progress": BookingStatusInProgress,
		"IN_PROGRESS": BookingStatusInProgress,
		"ACTIVE":      BookingStatusActive,
		"accepted":    BookingStatusActive,
		"  pending ":  BookingStatusPending,
	}
	for raw, want := range cases {
		if got := ParseBookingStatus(raw); got != want {
			t.Fatalf("ParseBookingStatus(%q) = %s, want %s", raw, got, want)
		}
	}
}

func TestParseBookingStatusUnknownSentinel(t *testing.T) {
	if got := ParseBookingStatus("SOMETHING_ELSE"); got != BookingStatusUnknown {
		t.Fatalf("expected unknown sentinel, got %s", got)
	}
	if BookingStatusUnknown.Terminal() {
		t.Fatalf("unknown status must not be terminal")
	}
}

func TestBookingStatusTerminal(t *testing.T) {
	if !BookingStatusCanceled.Terminal() || !BookingStatusCompleted.Terminal() {
		t.Fatalf("CANCELED and COMPLETED must be terminal")
	}
	for _, s := range []BookingStatus{BookingStatusPending, BookingStatusActive, BookingStatusInProgress, BookingStatusRescheduled, BookingStatusFailed} {
		if s.Terminal() {
			t.Fatalf("%s must not be terminal", s)
		}
	}
}

func TestParseDocumentStatus(t *testing.T) {
	if got := ParseDocumentStatus("pending"); got != DocumentStatusPending {
		t.Fatalf("got %s", got)
	}
	if got := ParseDocumentStatus("Verified"); got != DocumentStatusVerified {
		t.Fatalf("got %s", got)
	}
	if !DocumentStatusRejected.Decided() || DocumentStatusPending.Decided() {
		t.Fatalf("Decided misclassifies states")
	}
	if got := ParseDocumentStatus("resubmitted"); got != DocumentStatusUnknown {
		t.Fatalf("expected unknown sentinel, got %s", got)
	}
}

func TestParseAccountStatus(t *testing.T) {
	cases := map[string]AccountStatus{
		"active":    AccountStatusActive,
		"SUSPENDED": AccountStatusSuspended,
		"Blocked":   AccountStatusBlocked,
		"inactive":  AccountStatusInactive,
		"weird":     AccountStatusUnknown,
	}
	for raw, want := range cases {
		if got := ParseAccountStatus(raw); got != want {
			t.Fatalf("ParseAccountStatus(%q) = %s, want %s", raw, got, want)
		}
	}
}

func TestParseKYCStatus(t *testing.T) {
	if got := ParseKYCStatus("under_review"); got != KYCStatusUnderReview {
		t.Fatalf("got %s", got)
	}
	if got := ParseKYCStatus("APPROVED"); got != KYCStatusApproved {
		t.Fatalf("got %s", got)
	}
}

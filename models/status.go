package models

import "strings"

// BookingStatus is the backend vocabulary for a booking's lifecycle state.
type BookingStatus string

const (
	BookingStatusPending     BookingStatus = "PENDING"
	BookingStatusActive      BookingStatus = "ACTIVE"
	BookingStatusInProgress  BookingStatus = "IN_PROGRESS"
	BookingStatusCompleted   BookingStatus = "COMPLETED"
	BookingStatusCanceled    BookingStatus = "CANCELED"
	BookingStatusRescheduled BookingStatus = "RESCHEDULED"
	BookingStatusFailed      BookingStatus = "FAILED"
	BookingStatusUnknown     BookingStatus = "UNKNOWN"
)

// ParseBookingStatus normalizes the inconsistent casing and spelling the
// backend emits across endpoints ("cancelled", "CANCELLED", "Cancelled",
// "in-progress") into a closed enum. Unrecognized values map to
// BookingStatusUnknown rather than silently matching nothing.
func ParseBookingStatus(raw string) BookingStatus {
	switch strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(raw)), "-", "_") {
	case "PENDING":
		return BookingStatusPending
	case "ACTIVE", "ACCEPTED":
		return BookingStatusActive
	case "IN_PROGRESS":
		return BookingStatusInProgress
	case "COMPLETED":
		return BookingStatusCompleted
	case "CANCELED", "CANCELLED":
		return BookingStatusCanceled
	case "RESCHEDULED":
		return BookingStatusRescheduled
	case "FAILED":
		return BookingStatusFailed
	default:
		return BookingStatusUnknown
	}
}

// Terminal reports whether no further admin transition is offered for this status.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusCanceled || s == BookingStatusCompleted
}

// PaymentStatus is the backend vocabulary for a booking's payment state.
type PaymentStatus string

const (
	PaymentStatusPending           PaymentStatus = "PENDING"
	PaymentStatusSuccess           PaymentStatus = "SUCCESS"
	PaymentStatusFailed            PaymentStatus = "FAILED"
	PaymentStatusRefunded          PaymentStatus = "REFUNDED"
	PaymentStatusPartiallyRefunded PaymentStatus = "PARTIALLY_REFUNDED"
	PaymentStatusCancelled         PaymentStatus = "CANCELLED"
	PaymentStatusUnknown           PaymentStatus = "UNKNOWN"
)

func ParsePaymentStatus(raw string) PaymentStatus {
	switch strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(raw)), "-", "_") {
	case "PENDING":
		return PaymentStatusPending
	case "SUCCESS":
		return PaymentStatusSuccess
	case "FAILED":
		return PaymentStatusFailed
	case "REFUNDED":
		return PaymentStatusRefunded
	case "PARTIALLY_REFUNDED":
		return PaymentStatusPartiallyRefunded
	case "CANCELLED", "CANCELED":
		return PaymentStatusCancelled
	default:
		return PaymentStatusUnknown
	}
}

// DocumentStatus is the verification state of a single KYC document.
type DocumentStatus string

const (
	DocumentStatusPending  DocumentStatus = "PENDING"
	DocumentStatusVerified DocumentStatus = "VERIFIED"
	DocumentStatusRejected DocumentStatus = "REJECTED"
	DocumentStatusUnknown  DocumentStatus = "UNKNOWN"
)

func ParseDocumentStatus(raw string) DocumentStatus {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "PENDING":
		return DocumentStatusPending
	case "VERIFIED", "APPROVED":
		return DocumentStatusVerified
	case "REJECTED":
		return DocumentStatusRejected
	default:
		return DocumentStatusUnknown
	}
}

// Decided reports whether the document has reached a terminal verification state.
func (s DocumentStatus) Decided() bool {
	return s == DocumentStatusVerified || s == DocumentStatusRejected
}

// AccountStatus is the activity state of a provider account.
type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "ACTIVE"
	AccountStatusSuspended AccountStatus = "SUSPENDED"
	AccountStatusBlocked   AccountStatus = "BLOCKED"
	AccountStatusInactive  AccountStatus = "INACTIVE"
	AccountStatusUnknown   AccountStatus = "UNKNOWN"
)

func ParseAccountStatus(raw string) AccountStatus {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "ACTIVE":
		return AccountStatusActive
	case "SUSPENDED":
		return AccountStatusSuspended
	case "BLOCKED":
		return AccountStatusBlocked
	case "INACTIVE":
		return AccountStatusInactive
	default:
		return AccountStatusUnknown
	}
}

// KYCStatus is the provider-level aggregate derived from the document set.
type KYCStatus string

const (
	KYCStatusPending     KYCStatus = "pending"
	KYCStatusApproved    KYCStatus = "approved"
	KYCStatusRejected    KYCStatus = "rejected"
	KYCStatusUnderReview KYCStatus = "under-review"
	KYCStatusUnknown     KYCStatus = "unknown"
)

func ParseKYCStatus(raw string) KYCStatus {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "_", "-") {
	case "pending":
		return KYCStatusPending
	case "approved", "verified":
		return KYCStatusApproved
	case "rejected":
		return KYCStatusRejected
	case "under-review", "in-review":
		return KYCStatusUnderReview
	default:
		return KYCStatusUnknown
	}
}

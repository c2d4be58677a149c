package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Sohilkhan0021/anceller-admin-sub002/models"
	"github.com/Sohilkhan0021/anceller-admin-sub002/services/query"
)

func TestListBookingsQueryParams(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_ = json.NewEncoder(w).Encode(map[string]any{
			"bookings":   []any{},
			"pagination": map[string]int{"page": 1, "limit": 10, "total_items": 0, "total_pages": 0},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "test-key", 5*time.Second)

	f := query.NewFilters()
	f.SetSearch("cleaning")
	f.SetStatus("accepted")
	f.SetPaymentStatus("all")

	if _, err := c.ListBookings(context.Background(), f); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := gotQuery["status"]; len(got) != 1 || got[0] != "ACTIVE" {
		t.Fatalf("status param = %v, want [ACTIVE]", got)
	}
	if _, ok := gotQuery["payment_status"]; ok {
		t.Fatalf("all sentinel must not be sent")
	}
	if got := gotQuery["search"]; len(got) != 1 || got[0] != "cleaning" {
		t.Fatalf("search param = %v", got)
	}
}

func TestGetBookingAdaptsWireFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"booking": map[string]any{
				"booking_id":    "bk-9",
				"customer_name": "Asha",
				"status":        "Cancelled",
				"payment":       map[string]any{"status": "PARTIALLY_REFUNDED", "amount": 120.5},
				"items": []map[string]any{
					{"service_id": "svc-1", "sub_service": "deep-clean", "quantity": 2, "unit_price": 30, "total_price": 60},
				},
				"status_history": []map[string]any{
					{"status": "ACTIVE", "changed_by": "system"},
					{"status": "CANCELLED", "changed_by": "adm-1", "reason": "Cancelled by admin"},
				},
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "", 5*time.Second)
	b, err := c.GetBooking(context.Background(), "bk-9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.ID != "bk-9" || b.CustomerName != "Asha" {
		t.Fatalf("identity fields not bridged: %+v", b)
	}
	if b.Status != models.BookingStatusCanceled {
		t.Fatalf("status = %s, want CANCELED", b.Status)
	}
	if b.RawStatus != "Cancelled" {
		t.Fatalf("raw status must be preserved verbatim, got %q", b.RawStatus)
	}
	if b.Payment.Status != models.PaymentStatusPartiallyRefunded {
		t.Fatalf("payment status = %s", b.Payment.Status)
	}
	if len(b.Items) != 1 || b.Items[0].SubService != "deep-clean" {
		t.Fatalf("items not bridged: %+v", b.Items)
	}
	if len(b.StatusHistory) != 2 || b.StatusHistory[1].Reason != "Cancelled by admin" {
		t.Fatalf("status history not bridged: %+v", b.StatusHistory)
	}
}

func TestGetBookingNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL, "", 5*time.Second)
	_, err := c.GetBooking(context.Background(), "missing")
	if !IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestRequestErrorCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "booking already cancelled"})
	}))
	defer srv.Close()

	c := New(srv.URL, "", 5*time.Second)
	_, err := c.CancelBooking(context.Background(), "bk-1", "reason")

	var re *RequestError
	if !errors.As(err, &re) {
		t.Fatalf("expected RequestError, got %T", err)
	}
	if re.StatusCode != http.StatusConflict || re.Message != "booking already cancelled" {
		t.Fatalf("got %+v", re)
	}
}

func TestCancelBookingSendsReason(t *testing.T) {
	var body map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&body)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"booking": map[string]any{"booking_id": "bk-1", "status": "CANCELED"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "", 5*time.Second)
	if _, err := c.CancelBooking(context.Background(), "bk-1", "Cancelled by admin"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body["reason"] != "Cancelled by admin" {
		t.Fatalf("reason = %q", body["reason"])
	}
}

func TestVerifyKYCDocumentBody(t *testing.T) {
	var body map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&body)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"document": map[string]any{"document_id": "doc-1", "verification_status": "REJECTED", "rejection_reason": "blurry"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "", 5*time.Second)
	d, err := c.VerifyKYCDocument(context.Background(), "doc-1", "reject", "blurry")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body["action"] != "reject" || body["rejection_reason"] != "blurry" {
		t.Fatalf("wire body = %v", body)
	}
	if d.VerificationStatus != models.DocumentStatusRejected {
		t.Fatalf("status = %s", d.VerificationStatus)
	}
}

func TestProviderIsActiveFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"provider": map[string]any{
				"provider_id": "prov-1",
				"is_active":   true,
				"kyc_status":  "under_review",
				"kyc_documents": []map[string]any{
					{"document_id": "doc-1", "verification_status": "PENDING"},
				},
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "", 5*time.Second)
	p, err := c.GetProvider(context.Background(), "prov-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Status != models.AccountStatusActive {
		t.Fatalf("is_active fallback not applied, got %s", p.Status)
	}
	if p.KYCStatus != models.KYCStatusUnderReview {
		t.Fatalf("kyc_status = %s", p.KYCStatus)
	}
	if len(p.KYCDocuments) != 1 || p.KYCDocuments[0].VerificationStatus != models.DocumentStatusPending {
		t.Fatalf("documents not bridged: %+v", p.KYCDocuments)
	}
}

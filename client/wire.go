package client

import (
	"time"

	"github.com/Sohilkhan0021/anceller-admin-sub002/models"
)

// Wire DTOs mirror the backend's snake_case JSON exactly. They are adapted to
// the camelCase view models once, here at the fetch boundary, so the rest of
// the console never re-guesses field names or casing.

type bookingItemWire struct {
	ServiceID  string  `json:"service_id"`
	SubService string  `json:"sub_service"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

type statusHistoryWire struct {
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changed_at"`
	ChangedBy string    `json:"changed_by"`
	Reason    string    `json:"reason"`
}

type paymentWire struct {
	Status   string  `json:"status"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Method   string  `json:"method"`
}

type bookingWire struct {
	BookingID     string              `json:"booking_id"`
	CustomerID    string              `json:"customer_id"`
	CustomerName  string              `json:"customer_name"`
	ProviderID    string              `json:"provider_id"`
	ProviderName  string              `json:"provider_name"`
	Status        string              `json:"status"`
	Payment       paymentWire         `json:"payment"`
	Items         []bookingItemWire   `json:"items"`
	StatusHistory []statusHistoryWire `json:"status_history"`
	ScheduledAt   time.Time           `json:"scheduled_at"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func (w bookingWire) toModel() models.Booking {
	b := models.Booking{
		ID:           w.BookingID,
		CustomerID:   w.CustomerID,
		CustomerName: w.CustomerName,
		ProviderID:   w.ProviderID,
		ProviderName: w.ProviderName,
		Status:       models.ParseBookingStatus(w.Status),
		RawStatus:    w.Status,
		Payment: models.PaymentInfo{
			Status:   models.ParsePaymentStatus(w.Payment.Status),
			Amount:   w.Payment.Amount,
			Currency: w.Payment.Currency,
			Method:   w.Payment.Method,
		},
		ScheduledAt: w.ScheduledAt,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
	for _, it := range w.Items {
		b.Items = append(b.Items, models.BookingItem{
			ServiceID:  it.ServiceID,
			SubService: it.SubService,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: it.TotalPrice,
		})
	}
	for _, h := range w.StatusHistory {
		b.StatusHistory = append(b.StatusHistory, models.StatusHistoryEntry{
			Status:    models.ParseBookingStatus(h.Status),
			ChangedAt: h.ChangedAt,
			ChangedBy: h.ChangedBy,
			Reason:    h.Reason,
		})
	}
	return b
}

type kycDocumentWire struct {
	DocumentID         string     `json:"document_id"`
	Type               string     `json:"type"`
	VerificationStatus string     `json:"verification_status"`
	FileURL            string     `json:"file_url"`
	UploadedAt         time.Time  `json:"uploaded_at"`
	VerifiedAt         *time.Time `json:"verified_at"`
	RejectionReason    string     `json:"rejection_reason"`
}

func (w kycDocumentWire) toModel() models.KYCDocument {
	return models.KYCDocument{
		ID:                 w.DocumentID,
		Type:               w.Type,
		VerificationStatus: models.ParseDocumentStatus(w.VerificationStatus),
		FileURL:            w.FileURL,
		UploadedAt:         w.UploadedAt,
		VerifiedAt:         w.VerifiedAt,
		RejectionReason:    w.RejectionReason,
	}
}

type providerWire struct {
	ProviderID   string            `json:"provider_id"`
	Name         string            `json:"name"`
	Email        string            `json:"email"`
	PhoneNumber  string            `json:"phone_number"`
	Status       string            `json:"status"`
	IsActive     *bool             `json:"is_active"`
	KYCStatus    string            `json:"kyc_status"`
	KYCDocuments []kycDocumentWire `json:"kyc_documents"`
	Rating       float64           `json:"rating"`
	CategoryID   string            `json:"category_id"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

func (w providerWire) toModel() models.Provider {
	// Older backend endpoints omit status and send only is_active; resolve
	// that fallback once here instead of re-guessing fields downstream.
	status := models.ParseAccountStatus(w.Status)
	if status == models.AccountStatusUnknown && w.IsActive != nil {
		if *w.IsActive {
			status = models.AccountStatusActive
		} else {
			status = models.AccountStatusInactive
		}
	}

	p := models.Provider{
		ID:          w.ProviderID,
		Name:        w.Name,
		Email:       w.Email,
		PhoneNumber: w.PhoneNumber,
		Status:      status,
		RawStatus:   w.Status,
		KYCStatus:   models.ParseKYCStatus(w.KYCStatus),
		Rating:      w.Rating,
		CategoryID:  w.CategoryID,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
	for _, d := range w.KYCDocuments {
		p.KYCDocuments = append(p.KYCDocuments, d.toModel())
	}
	return p
}

type pageWire struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

package models

import "time"

// KYCDocument is one identity document submitted by a provider.
type KYCDocument struct {
	ID                 string         `json:"documentId"`
	Type               string         `json:"type"`
	VerificationStatus DocumentStatus `json:"verificationStatus"`
	FileURL            string         `json:"fileUrl,omitempty"`
	UploadedAt         time.Time      `json:"uploadedAt,omitzero"`
	VerifiedAt         *time.Time     `json:"verifiedAt,omitempty"`
	RejectionReason    string         `json:"rejectionReason,omitempty"`
}

// Provider is the console's view model of a marketplace provider.
type Provider struct {
	ID           string        `json:"providerId"`
	Name         string        `json:"name,omitempty"`
	Email        string        `json:"email,omitempty"`
	PhoneNumber  string        `json:"phoneNumber,omitempty"`
	Status       AccountStatus `json:"status"`
	RawStatus    string        `json:"rawStatus,omitempty"`
	KYCStatus    KYCStatus     `json:"kycStatus"`
	KYCDocuments []KYCDocument `json:"kycDocuments,omitempty"`
	Rating       float64       `json:"rating,omitempty"`
	CategoryID   string        `json:"categoryId,omitempty"`
	CreatedAt    time.Time     `json:"createdAt,omitzero"`
	UpdatedAt    time.Time     `json:"updatedAt,omitzero"`
}

// ProviderPage is one page of a provider list plus pagination totals.
type ProviderPage struct {
	Providers  []Provider `json:"providers"`
	Page       int        `json:"page"`
	PageSize   int        `json:"pageSize"`
	TotalItems int        `json:"totalItems"`
	TotalPages int        `json:"totalPages"`
}

// Document returns the document with the given id, or nil.
func (p *Provider) Document(documentID string) *KYCDocument {
	for i := range p.KYCDocuments {
		if p.KYCDocuments[i].ID == documentID {
			return &p.KYCDocuments[i]
		}
	}
	return nil
}

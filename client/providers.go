package client

import (
	"context"
	"fmt"

	"github.com/Sohilkhan0021/anceller-admin-sub002/models"
	"github.com/Sohilkhan0021/anceller-admin-sub002/services/query"
)

type providerListResponse struct {
	Providers []providerWire `json:"providers"`
	Page      pageWire       `json:"pagination"`
}

type providerDetailResponse struct {
	Provider providerWire `json:"provider"`
}

type kycDocumentResponse struct {
	Document kycDocumentWire `json:"document"`
}

// ListProviders fetches one page of providers matching the filter state.
func (c *Client) ListProviders(ctx context.Context, f query.Filters) (*models.ProviderPage, error) {
	var resp providerListResponse
	if err := c.get(ctx, "/admin/providers", f.Query(), "provider", "", &resp); err != nil {
		return nil, err
	}

	page := &models.ProviderPage{
		Page:       resp.Page.Page,
		PageSize:   resp.Page.Limit,
		TotalItems: resp.Page.TotalItems,
		TotalPages: resp.Page.TotalPages,
	}
	for _, w := range resp.Providers {
		page.Providers = append(page.Providers, w.toModel())
	}
	return page, nil
}

// GetProvider fetches a single provider with its KYC document set.
func (c *Client) GetProvider(ctx context.Context, id string) (*models.Provider, error) {
	var resp providerDetailResponse
	if err := c.get(ctx, fmt.Sprintf("/admin/providers/%s", id), nil, "provider", id, &resp); err != nil {
		return nil, err
	}
	p := resp.Provider.toModel()
	return &p, nil
}

// UpdateProviderStatus requests an account status transition.
func (c *Client) UpdateProviderStatus(ctx context.Context, id string, status models.AccountStatus) (*models.Provider, error) {
	body := map[string]string{"status": string(status)}
	var resp providerDetailResponse
	if err := c.post(ctx, fmt.Sprintf("/admin/providers/%s/status", id), body, "provider", id, &resp); err != nil {
		return nil, err
	}
	p := resp.Provider.toModel()
	return &p, nil
}

// VerifyKYCDocument submits an approve or reject decision for one document.
// The rejection reason travels only on reject.
func (c *Client) VerifyKYCDocument(ctx context.Context, documentID, action, rejectionReason string) (*models.KYCDocument, error) {
	body := map[string]string{"action": action}
	if rejectionReason != "" {
		body["rejection_reason"] = rejectionReason
	}
	var resp kycDocumentResponse
	if err := c.post(ctx, fmt.Sprintf("/admin/kyc-documents/%s/verify", documentID), body, "document", documentID, &resp); err != nil {
		return nil, err
	}
	d := resp.Document.toModel()
	return &d, nil
}

package provider

import (
	"context"

	"github.com/Sohilkhan0021/anceller-admin-sub002/models"
	"github.com/Sohilkhan0021/anceller-admin-sub002/services/query"
)

// MarketplaceAPI is the slice of the backend client the provider service needs.
type MarketplaceAPI interface {
	ListProviders(ctx context.Context, f query.Filters) (*models.ProviderPage, error)
	GetProvider(ctx context.Context, id string) (*models.Provider, error)
	UpdateProviderStatus(ctx context.Context, id string, status models.AccountStatus) (*models.Provider, error)
	VerifyKYCDocument(ctx context.Context, documentID, action, rejectionReason string) (*models.KYCDocument, error)
}

// ProviderService is the console-facing surface for provider verification and
// account lifecycle.
type ProviderService interface {
	List(ctx context.Context, f query.Filters) (*models.ProviderPage, error)
	Get(ctx context.Context, id string) (*models.Provider, error)

	// Document verification. Both return the fully refetched provider since
	// the aggregate KYC status may change as a side effect of one document.
	ApproveDocument(ctx context.Context, actor models.AdminIdentity, providerID, documentID string) (*models.Provider, error)
	RejectDocument(ctx context.Context, actor models.AdminIdentity, providerID, documentID, reason string) (*models.Provider, error)

	// Account status.
	AccountActions(p *models.Provider) []AccountAction
	ChangeAccountStatus(ctx context.Context, actor models.AdminIdentity, providerID, action string) (*models.Provider, error)
}

// VerificationLock guards a provider's document list so at most one
// verification mutation is in flight at a time, across console replicas and
// across two admins working the same provider.
type VerificationLock interface {
	Acquire(ctx context.Context, providerID string) (bool, error)
	Release(ctx context.Context, providerID string) error
}

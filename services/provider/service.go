package provider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Sohilkhan0021/anceller-admin-sub002/client"
	"github.com/Sohilkhan0021/anceller-admin-sub002/database/repository/audit"
	"github.com/Sohilkhan0021/anceller-admin-sub002/models"
	"github.com/Sohilkhan0021/anceller-admin-sub002/services/query"
)

const (
	verifyActionApprove = "approve"
	verifyActionReject  = "reject"
)

var validate = validator.New()

// DefaultProviderService is the production implementation.
type DefaultProviderService struct {
	API   MarketplaceAPI
	Audit audit.Recorder
	Locks VerificationLock
}

func NewDefaultProviderService(api MarketplaceAPI, rec audit.Recorder, locks VerificationLock) (*DefaultProviderService, error) {
	if api == nil || locks == nil {
		return nil, fmt.Errorf("provider service initialization error: one or more dependencies are nil")
	}
	return &DefaultProviderService{API: api, Audit: rec, Locks: locks}, nil
}

func (s *DefaultProviderService) List(ctx context.Context, f query.Filters) (*models.ProviderPage, error) {
	return s.API.ListProviders(ctx, f)
}

func (s *DefaultProviderService) Get(ctx context.Context, id string) (*models.Provider, error) {
	return s.API.GetProvider(ctx, id)
}

func (s *DefaultProviderService) ApproveDocument(ctx context.Context, actor models.AdminIdentity, providerID, documentID string) (*models.Provider, error) {
	return s.verifyDocument(ctx, actor, providerID, documentID, verifyActionApprove, "")
}

func (s *DefaultProviderService) RejectDocument(ctx context.Context, actor models.AdminIdentity, providerID, documentID, reason string) (*models.Provider, error) {
	reason = strings.TrimSpace(reason)
	if err := validate.Var(reason, "required"); err != nil {
		return nil, client.NewValidationError("rejectionReason", "a rejection reason is required")
	}
	return s.verifyDocument(ctx, actor, providerID, documentID, verifyActionReject, reason)
}

// verifyDocument runs the document decision flow: take the provider-wide
// verification lock, re-check the document is still PENDING against fresh
// backend state, issue the single mutation, audit it, and refetch the whole
// provider (the aggregate KYC status may have moved). The lock covers the
// mutation and the refetch and is released on every exit, so a failed call
// never leaves the document list stuck.
func (s *DefaultProviderService) verifyDocument(ctx context.Context, actor models.AdminIdentity, providerID, documentID, action, reason string) (*models.Provider, error) {
	logger := zap.L()

	acquired, err := s.Locks.Acquire(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, client.NewValidationError("documentId", "another verification for this provider is already in progress")
	}
	defer func() {
		if err := s.Locks.Release(context.WithoutCancel(ctx), providerID); err != nil {
			logger.Warn("Failed to release verification lock",
				zap.String("providerId", providerID),
				zap.Error(err))
		}
	}()

	current, err := s.API.GetProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}
	doc := current.Document(documentID)
	if doc == nil {
		return nil, &client.NotFoundError{Entity: "document", ID: documentID}
	}
	if doc.VerificationStatus != models.DocumentStatusPending {
		return nil, client.NewValidationError("verificationStatus",
			fmt.Sprintf("document has already been decided (%s)", doc.VerificationStatus))
	}

	if _, err := s.API.VerifyKYCDocument(ctx, documentID, action, reason); err != nil {
		logger.Error("KYC document verification failed",
			zap.String("providerId", providerID),
			zap.String("documentId", documentID),
			zap.String("action", action),
			zap.Error(err))
		return nil, err
	}

	s.record(ctx, models.AuditEntry{
		ID:         uuid.New().String(),
		Actor:      actor.ID,
		ActorEmail: actor.Email,
		Action:     "kyc.document." + action,
		EntityType: "provider",
		EntityID:   providerID,
		Reason:     reason,
		CreatedAt:  time.Now().UTC(),
	})

	refreshed, err := s.API.GetProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	logger.Info("KYC document decided",
		zap.String("providerId", providerID),
		zap.String("documentId", documentID),
		zap.String("action", action),
		zap.String("admin", actor.ID),
		zap.String("kycStatus", string(refreshed.KYCStatus)))
	return refreshed, nil
}

func (s *DefaultProviderService) AccountActions(p *models.Provider) []AccountAction {
	if p == nil {
		return nil
	}
	return OfferedAccountActions(p.Status)
}

// ChangeAccountStatus executes one row of the account transition table:
// re-check the action is legal for the provider's current status, issue the
// single mutation, audit it, refetch.
func (s *DefaultProviderService) ChangeAccountStatus(ctx context.Context, actor models.AdminIdentity, providerID, action string) (*models.Provider, error) {
	logger := zap.L()

	current, err := s.API.GetProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	transition, ok := accountActionFor(current.Status, action)
	if !ok {
		return nil, client.NewValidationError("action",
			fmt.Sprintf("action %q is not available while provider is %s", action, current.Status))
	}

	if _, err := s.API.UpdateProviderStatus(ctx, providerID, transition.Target); err != nil {
		logger.Error("Provider status change failed",
			zap.String("providerId", providerID),
			zap.String("action", action),
			zap.Error(err))
		return nil, err
	}

	s.record(ctx, models.AuditEntry{
		ID:         uuid.New().String(),
		Actor:      actor.ID,
		ActorEmail: actor.Email,
		Action:     "provider." + action,
		EntityType: "provider",
		EntityID:   providerID,
		CreatedAt:  time.Now().UTC(),
	})

	refreshed, err := s.API.GetProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	logger.Info("Provider status changed",
		zap.String("providerId", providerID),
		zap.String("action", action),
		zap.String("from", string(current.Status)),
		zap.String("to", string(refreshed.Status)),
		zap.String("admin", actor.ID))
	return refreshed, nil
}

func (s *DefaultProviderService) record(ctx context.Context, entry models.AuditEntry) {
	if s.Audit == nil {
		return
	}
	if err := s.Audit.Record(ctx, entry); err != nil {
		zap.L().Warn("Failed to record audit entry",
			zap.String("action", entry.Action),
			zap.String("entityId", entry.EntityID),
			zap.Error(err))
	}
}

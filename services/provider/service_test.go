package provider

import (
	"context"
	"sync"
	"testing"

	"github.com/Sohilkhan0021/anceller-admin-sub002/client"
	"github.com/Sohilkhan0021/anceller-admin-sub002/models"
	"github.com/Sohilkhan0021/anceller-admin-sub002/services/query"
)

type verifyCall struct {
	DocumentID string
	Action     string
	Reason     string
}

type fakeProviderAPI struct {
	mu          sync.Mutex
	providers   map[string]models.Provider
	verifyCalls []verifyCall
	statusCalls []models.AccountStatus
	verifyErr   error
}

func (f *fakeProviderAPI) ListProviders(ctx context.Context, q query.Filters) (*models.ProviderPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	page := &models.ProviderPage{Page: 1}
	for _, p := range f.providers {
		page.Providers = append(page.Providers, p)
	}
	return page, nil
}

func (f *fakeProviderAPI) GetProvider(ctx context.Context, id string) (*models.Provider, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.providers[id]
	if !ok {
		return nil, &client.NotFoundError{Entity: "provider", ID: id}
	}
	out := p
	out.KYCDocuments = append([]models.KYCDocument(nil), p.KYCDocuments...)
	return &out, nil
}

func (f *fakeProviderAPI) UpdateProviderStatus(ctx context.Context, id string, status models.AccountStatus) (*models.Provider, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statusCalls = append(f.statusCalls, status)
	p := f.providers[id]
	p.Status = status
	f.providers[id] = p
	out := p
	return &out, nil
}

func (f *fakeProviderAPI) VerifyKYCDocument(ctx context.Context, documentID, action, reason string) (*models.KYCDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.verifyCalls = append(f.verifyCalls, verifyCall{DocumentID: documentID, Action: action, Reason: reason})
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	for id, p := range f.providers {
		for i := range p.KYCDocuments {
			if p.KYCDocuments[i].ID == documentID {
				if action == "approve" {
					p.KYCDocuments[i].VerificationStatus = models.DocumentStatusVerified
				} else {
					p.KYCDocuments[i].VerificationStatus = models.DocumentStatusRejected
					p.KYCDocuments[i].RejectionReason = reason
				}
				p.KYCStatus = AggregateKYCStatus(p.KYCDocuments)
				f.providers[id] = p
				doc := p.KYCDocuments[i]
				return &doc, nil
			}
		}
	}
	return nil, &client.NotFoundError{Entity: "document", ID: documentID}
}

func (f *fakeProviderAPI) verifyCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.verifyCalls)
}

// memoryLock is a test VerificationLock with inspectable state.
type memoryLock struct {
	mu   sync.Mutex
	held map[string]bool
}

func newMemoryLock() *memoryLock {
	return &memoryLock{held: make(map[string]bool)}
}

func (l *memoryLock) Acquire(ctx context.Context, providerID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[providerID] {
		return false, nil
	}
	l.held[providerID] = true
	return true, nil
}

func (l *memoryLock) Release(ctx context.Context, providerID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, providerID)
	return nil
}

type fakeRecorder struct {
	mu      sync.Mutex
	entries []models.AuditEntry
}

func (r *fakeRecorder) Record(ctx context.Context, entry models.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeRecorder) Recent(ctx context.Context, limit int64) ([]models.AuditEntry, error) {
	return r.entries, nil
}

func (r *fakeRecorder) ForEntity(ctx context.Context, entityType, entityID string) ([]models.AuditEntry, error) {
	return r.entries, nil
}

func newFakeAPI() *fakeProviderAPI {
	return &fakeProviderAPI{
		providers: map[string]models.Provider{
			"prov-1": {
				ID:     "prov-1",
				Status: models.AccountStatusActive,
				KYCDocuments: []models.KYCDocument{
					{ID: "doc-a", Type: "gov_id", VerificationStatus: models.DocumentStatusPending},
					{ID: "doc-b", Type: "selfie", VerificationStatus: models.DocumentStatusPending},
				},
				KYCStatus: models.KYCStatusPending,
			},
		},
	}
}

var admin = models.AdminIdentity{ID: "adm-1"}

func newService(t *testing.T, api *fakeProviderAPI, lock VerificationLock) *DefaultProviderService {
	t.Helper()
	svc, err := NewDefaultProviderService(api, &fakeRecorder{}, lock)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return svc
}

func TestRejectWithoutReasonNoMutation(t *testing.T) {
	api := newFakeAPI()
	svc := newService(t, api, newMemoryLock())

	for _, reason := range []string{"", "   ", "\n\t"} {
		_, err := svc.RejectDocument(context.Background(), admin, "prov-1", "doc-a", reason)
		if !client.IsValidation(err) {
			t.Fatalf("expected ValidationError for reason %q, got %v", reason, err)
		}
	}
	if api.verifyCount() != 0 {
		t.Fatalf("missing reason must not trigger a mutation call, got %d", api.verifyCount())
	}
}

func TestApproveRefetchesProvider(t *testing.T) {
	api := newFakeAPI()
	svc := newService(t, api, newMemoryLock())

	p, err := svc.ApproveDocument(context.Background(), admin, "prov-1", "doc-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := p.Document("doc-a").VerificationStatus; got != models.DocumentStatusVerified {
		t.Fatalf("expected refetched doc-a VERIFIED, got %s", got)
	}
	// Aggregate moved as a side effect of one document's transition.
	if p.KYCStatus != models.KYCStatusUnderReview {
		t.Fatalf("expected aggregate under-review after one approval, got %s", p.KYCStatus)
	}
}

func TestVerifyLockBlocksSecondCall(t *testing.T) {
	api := newFakeAPI()
	lock := newMemoryLock()
	svc := newService(t, api, lock)

	// Simulate another admin's verification already in flight.
	if ok, _ := lock.Acquire(context.Background(), "prov-1"); !ok {
		t.Fatalf("setup: could not pre-acquire lock")
	}

	_, err := svc.ApproveDocument(context.Background(), admin, "prov-1", "doc-b")
	if !client.IsValidation(err) {
		t.Fatalf("expected ValidationError while lock held, got %v", err)
	}
	if api.verifyCount() != 0 {
		t.Fatalf("locked provider must not reach the verify endpoint")
	}

	// After release the same call goes through.
	if err := lock.Release(context.Background(), "prov-1"); err != nil {
		t.Fatalf("release: %v", err)
	}
	if _, err := svc.ApproveDocument(context.Background(), admin, "prov-1", "doc-b"); err != nil {
		t.Fatalf("expected approval after lock release, got %v", err)
	}
}

func TestVerifyLockReleasedOnFailure(t *testing.T) {
	api := newFakeAPI()
	api.verifyErr = &client.RequestError{StatusCode: 500, Message: "backend down"}
	lock := newMemoryLock()
	svc := newService(t, api, lock)

	if _, err := svc.ApproveDocument(context.Background(), admin, "prov-1", "doc-a"); err == nil {
		t.Fatalf("expected error")
	}

	api.verifyErr = nil
	if _, err := svc.ApproveDocument(context.Background(), admin, "prov-1", "doc-a"); err != nil {
		t.Fatalf("retry after failure should succeed, got %v", err)
	}
}

func TestVerifyDecidedDocumentRejected(t *testing.T) {
	api := newFakeAPI()
	svc := newService(t, api, newMemoryLock())

	if _, err := svc.ApproveDocument(context.Background(), admin, "prov-1", "doc-a"); err != nil {
		t.Fatalf("first approval: %v", err)
	}

	_, err := svc.ApproveDocument(context.Background(), admin, "prov-1", "doc-a")
	if !client.IsValidation(err) {
		t.Fatalf("expected ValidationError for already-decided document, got %v", err)
	}
	if api.verifyCount() != 1 {
		t.Fatalf("decided document must not be re-submitted, got %d calls", api.verifyCount())
	}
}

func TestRejectRecordsReason(t *testing.T) {
	api := newFakeAPI()
	svc := newService(t, api, newMemoryLock())

	p, err := svc.RejectDocument(context.Background(), admin, "prov-1", "doc-a", "  blurry scan  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.verifyCalls[0].Reason != "blurry scan" {
		t.Fatalf("expected trimmed reason, got %q", api.verifyCalls[0].Reason)
	}
	if p.KYCStatus != models.KYCStatusRejected {
		t.Fatalf("expected aggregate rejected, got %s", p.KYCStatus)
	}
}

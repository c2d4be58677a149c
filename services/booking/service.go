package booking

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Sohilkhan0021/anceller-admin-sub002/client"
	"github.com/Sohilkhan0021/anceller-admin-sub002/database/repository/audit"
	"github.com/Sohilkhan0021/anceller-admin-sub002/models"
	"github.com/Sohilkhan0021/anceller-admin-sub002/services/query"
)

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	API   MarketplaceAPI
	Audit audit.Recorder

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewDefaultBookingService(api MarketplaceAPI, rec audit.Recorder) *DefaultBookingService {
	return &DefaultBookingService{
		API:      api,
		Audit:    rec,
		inFlight: make(map[string]bool),
	}
}

func (s *DefaultBookingService) List(ctx context.Context, f query.Filters) (*models.BookingPage, error) {
	return s.API.ListBookings(ctx, f)
}

func (s *DefaultBookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	return s.API.GetBooking(ctx, id)
}

func (s *DefaultBookingService) Actions(b *models.Booking) []Action {
	return ActionsFor(b)
}

// Cancel runs the guarded cancellation flow: re-check the gate against fresh
// backend state, default the reason, issue the mutation exactly once, record
// the audit entry, then refetch so the caller renders authoritative state.
// Concurrent cancels of the same booking are rejected while one is in flight.
func (s *DefaultBookingService) Cancel(ctx context.Context, actor models.AdminIdentity, id, reason string) (*models.Booking, error) {
	logger := zap.L()

	if !s.begin(id) {
		return nil, client.NewValidationError("bookingId", "a cancellation for this booking is already in progress")
	}
	defer s.end(id)

	current, err := s.API.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanCancel(current) {
		return nil, client.NewValidationError("status", "booking is already completed or cancelled")
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultCancelReason
	}

	if _, err := s.API.CancelBooking(ctx, id, reason); err != nil {
		logger.Error("Booking cancel failed",
			zap.String("bookingId", id),
			zap.String("admin", actor.ID),
			zap.Error(err))
		return nil, err
	}

	s.record(ctx, models.AuditEntry{
		ID:         uuid.New().String(),
		Actor:      actor.ID,
		ActorEmail: actor.Email,
		Action:     "booking.cancel",
		EntityType: "booking",
		EntityID:   id,
		Reason:     reason,
		CreatedAt:  time.Now().UTC(),
	})

	refreshed, err := s.API.GetBooking(ctx, id)
	if err != nil {
		// The mutation succeeded; only the refetch failed. Surface the fetch
		// error so the console retries the read, not the cancel.
		return nil, err
	}

	logger.Info("Booking cancelled",
		zap.String("bookingId", id),
		zap.String("admin", actor.ID),
		zap.String("reason", reason))
	return refreshed, nil
}

func (s *DefaultBookingService) begin(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight == nil {
		s.inFlight = make(map[string]bool)
	}
	if s.inFlight[id] {
		return false
	}
	s.inFlight[id] = true
	return true
}

func (s *DefaultBookingService) end(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, id)
}

func (s *DefaultBookingService) record(ctx context.Context, entry models.AuditEntry) {
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

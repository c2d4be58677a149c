package models

import "time"

// AdminIdentity is the authenticated console operator, extracted from the
// admin JWT by middleware and passed explicitly to every mutating service call.
type AdminIdentity struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}

// ConfirmCopy is the confirmation-dialog text the console renders before a
// guarded transition. Style selects the dialog treatment ("destructive" or
// "success").
type ConfirmCopy struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ConfirmLabel string `json:"confirmLabel"`
	Style        string `json:"style"`
}

// AuditEntry records one admin-triggered mutation. This is the console's own
// log of what its operators did; the backend's statusHistory remains the
// authoritative record of the entity transitions themselves.
type AuditEntry struct {
	ID         string    `bson:"id" json:"id"`
	Actor      string    `bson:"actor" json:"actor"`
	ActorEmail string    `bson:"actorEmail,omitempty" json:"actorEmail,omitempty"`
	Action     string    `bson:"action" json:"action"`
	EntityType string    `bson:"entityType" json:"entityType"`
	EntityID   string    `bson:"entityId" json:"entityId"`
	Reason     string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

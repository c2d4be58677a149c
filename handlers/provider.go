package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Sohilkhan0021/anceller-admin-sub002/models"
	"github.com/Sohilkhan0021/anceller-admin-sub002/services/provider"
	"github.com/Sohilkhan0021/anceller-admin-sub002/services/query"
)

// ProviderHandler exposes the console's provider verification and account
// lifecycle endpoints.
type ProviderHandler struct {
	Service provider.ProviderService
}

func NewProviderHandler(svc provider.ProviderService) *ProviderHandler {
	return &ProviderHandler{Service: svc}
}

// ListProvidersHandler returns one page of providers for the current filter state.
func (ph *ProviderHandler) ListProvidersHandler(c *gin.Context) {
	filters := query.Parse(c.Request.URL.Query())

	page, err := ph.Service.List(c.Request.Context(), filters)
	if err != nil {
		zap.L().Error("Failed to list providers", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetProviderHandler returns a single provider with its KYC document set and
// the account actions currently offered.
func (ph *ProviderHandler) GetProviderHandler(c *gin.Context) {
	id := c.Param("id")

	p, err := ph.Service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"provider": p,
		"actions":  ph.Service.AccountActions(p),
	})
}

// GetProviderActionsHandler returns the account transitions offered for the
// provider's current status, with confirmation copy.
func (ph *ProviderHandler) GetProviderActionsHandler(c *gin.Context) {
	id := c.Param("id")

	p, err := ph.Service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"actions": ph.Service.AccountActions(p)})
}

type accountStatusRequest struct {
	Action string `json:"action" binding:"required,oneof=block suspend activate"`
}

// ChangeProviderStatusHandler executes one guarded account transition.
func (ph *ProviderHandler) ChangeProviderStatusHandler(c *gin.Context) {
	id := c.Param("id")

	var req accountStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload: " + err.Error()})
		return
	}

	p, err := ph.Service.ChangeAccountStatus(c.Request.Context(), currentAdmin(c), id, req.Action)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"provider": p})
}

type verifyDocumentRequest struct {
	Action          string `json:"action" binding:"required,oneof=approve reject"`
	RejectionReason string `json:"rejection_reason"`
}

// VerifyDocumentHandler submits an approve or reject decision for one KYC
// document. The response carries the fully refetched provider because the
// aggregate KYC status may have moved with this single document.
func (ph *ProviderHandler) VerifyDocumentHandler(c *gin.Context) {
	providerID := c.Param("id")
	documentID := c.Param("docId")

	var req verifyDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload: " + err.Error()})
		return
	}

	admin := currentAdmin(c)

	var refreshed *models.Provider
	var err error
	if req.Action == "approve" {
		refreshed, err = ph.Service.ApproveDocument(c.Request.Context(), admin, providerID, documentID)
	} else {
		refreshed, err = ph.Service.RejectDocument(c.Request.Context(), admin, providerID, documentID, req.RejectionReason)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"provider": refreshed})
}

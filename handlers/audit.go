package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Sohilkhan0021/anceller-admin-sub002/database/repository/audit"
)

// AuditHandler exposes the console's own trail of admin actions.
type AuditHandler struct {
	Repo audit.Recorder
}

func NewAuditHandler(repo audit.Recorder) *AuditHandler {
	return &AuditHandler{Repo: repo}
}

// ListAuditHandler returns the most recent admin actions, newest first.
func (ah *AuditHandler) ListAuditHandler(c *gin.Context) {
	limit := int64(50)
	if v, err := strconv.ParseInt(c.Query("limit"), 10, 64); err == nil && v > 0 {
		limit = v
	}

	entries, err := ah.Repo.Recent(c.Request.Context(), limit)
	if err != nil {
		zap.L().Error("Failed to fetch audit log", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// EntityAuditHandler returns the admin actions recorded against one entity.
func (ah *AuditHandler) EntityAuditHandler(c *gin.Context) {
	entityType := c.Param("entityType")
	entityID := c.Param("entityId")

	entries, err := ah.Repo.ForEntity(c.Request.Context(), entityType, entityID)
	if err != nil {
		zap.L().Error("Failed to fetch entity audit log",
			zap.String("entityType", entityType),
			zap.String("entityId", entityID),
			zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sohilkhan0021/anceller-admin-sub002/client"
	"github.com/Sohilkhan0021/anceller-admin-sub002/utils"
)

// respondError maps the error taxonomy onto HTTP responses: validation errors
// are the caller's to fix inline, not-found gets the empty-state treatment,
// and backend request failures surface the server-provided message so the
// admin can retry without reloading.
func respondError(c *gin.Context, err error) {
	var ve *client.ValidationError
	if errors.As(err, &ve) {
		utils.JSONError(c, http.StatusBadRequest, "Validation failed", ve.Error())
		return
	}

	var nf *client.NotFoundError
	if errors.As(err, &nf) {
		utils.JSONError(c, http.StatusNotFound, "Not found", nf.Error())
		return
	}

	var re *client.RequestError
	if errors.As(err, &re) {
		status := http.StatusBadGateway
		if re.StatusCode >= 400 && re.StatusCode < 500 {
			status = re.StatusCode
		}
		utils.JSONError(c, status, "Marketplace request failed", re.Error())
		return
	}

	utils.JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
}

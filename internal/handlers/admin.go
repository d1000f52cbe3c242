package handlers

import (
	"github.com/gin-gonic/gin"

	"healio-server/internal/config"
	"healio-server/internal/utils"
)

// AdminHandler handles the admin passkey gate.
type AdminHandler struct {
	Cfg *config.Config
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(cfg *config.Config) *AdminHandler {
	return &AdminHandler{Cfg: cfg}
}

// VerifyPasskeyRequest represents the request body for passkey verification.
// Either the raw passkey or its previously issued encoded form may be
// presented.
type VerifyPasskeyRequest struct {
	Passkey    string `json:"passkey"`
	EncodedKey string `json:"encodedKey"`
}

// VerifyPasskeyResponse carries the encoded key the client stores for
// subsequent visits.
type VerifyPasskeyResponse struct {
	EncodedKey string `json:"encodedKey"`
}

// VerifyPasskey checks the admin access passkey. This gate sits in front of
// the admin dashboard; route-level authorization still applies.
func (h *AdminHandler) VerifyPasskey(c *gin.Context) {
	var req VerifyPasskeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	if h.Cfg.AdminPasskey == "" {
		utils.InternalServerError(c, "Admin passkey is not configured")
		return
	}

	passkey := req.Passkey
	if passkey == "" && req.EncodedKey != "" {
		decoded, err := utils.DecodePasskey(req.EncodedKey)
		if err != nil {
			utils.BadRequest(c, "Invalid encoded key")
			return
		}
		passkey = decoded
	}

	if passkey != h.Cfg.AdminPasskey {
		utils.Unauthorized(c, "Invalid passkey")
		return
	}

	utils.Success(c, "Passkey verified", VerifyPasskeyResponse{
		EncodedKey: utils.EncodePasskey(passkey),
	})
}

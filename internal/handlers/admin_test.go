package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healio-server/internal/config"
	"healio-server/internal/utils"
)

func adminTestRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewAdminHandler(cfg)

	router := gin.New()
	router.POST("/api/v1/admin/verify", handler.VerifyPasskey)
	return router
}

func postVerify(t *testing.T, router *gin.Engine, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/verify", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestVerifyPasskeyAcceptsRawKey(t *testing.T) {
	router := adminTestRouter(&config.Config{AdminPasskey: "123456"})

	w := postVerify(t, router, gin.H{"passkey": "123456"})

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			EncodedKey string `json:"encodedKey"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, utils.EncodePasskey("123456"), body.Data.EncodedKey)
}

func TestVerifyPasskeyAcceptsEncodedKey(t *testing.T) {
	router := adminTestRouter(&config.Config{AdminPasskey: "123456"})

	w := postVerify(t, router, gin.H{"encodedKey": utils.EncodePasskey("123456")})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestVerifyPasskeyRejectsWrongKey(t *testing.T) {
	router := adminTestRouter(&config.Config{AdminPasskey: "123456"})

	w := postVerify(t, router, gin.H{"passkey": "654321"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVerifyPasskeyRejectsMalformedEncodedKey(t *testing.T) {
	router := adminTestRouter(&config.Config{AdminPasskey: "123456"})

	w := postVerify(t, router, gin.H{"encodedKey": "%%%not-base64%%%"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerifyPasskeyFailsWhenUnconfigured(t *testing.T) {
	router := adminTestRouter(&config.Config{AdminPasskey: ""})

	w := postVerify(t, router, gin.H{"passkey": "123456"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

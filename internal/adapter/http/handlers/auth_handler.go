package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/paveiq/bidmaster/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCredentials = pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid credentials, Please Try Again", http.StatusUnauthorized)

// AuthHandler implements the admin gate: credential login issuing an
// HMAC-signed session token, and the middleware that verifies it on review
// and report endpoints. Tokens are stateless; rotating the secret invalidates
// every outstanding session.

type AuthHandler struct {
	adminEmail    string
	adminPassword string
	secret        []byte
}

func NewAuthHandler(adminEmail, adminPassword, sessionSecret string) *AuthHandler {
	return &AuthHandler{
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
		secret:        []byte(sessionSecret),
	}
}

type loginRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// Login checks the configured admin credentials and returns a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var payload loginRequest
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(errInvalidCredentials.HTTPStatus, errInvalidCredentials.ToHTTPError())
		return
	}

	emailOK := subtle.ConstantTimeCompare([]byte(payload.Email), []byte(h.adminEmail)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(payload.Password), []byte(h.adminPassword)) == 1
	if !emailOK || !passwordOK {
		c.JSON(errInvalidCredentials.HTTPStatus, errInvalidCredentials.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": h.createSessionToken(payload.Email)})
}

// RequireAdmin is the gin middleware guarding admin routes. It accepts the
// session token as a Bearer header.
func (h *AuthHandler) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token == "" || !h.isAdmin(token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}

func (h *AuthHandler) createSessionToken(email string) string {
	payload := base64.RawURLEncoding.EncodeToString([]byte(email))
	mac := hmac.New(sha256.New, h.secret)
	mac.Write([]byte(payload))
	return payload + "." + hex.EncodeToString(mac.Sum(nil))
}

// isAdmin verifies the token signature and that it was minted for the
// configured admin identity.
func (h *AuthHandler) isAdmin(token string) bool {
	parts := strings.Split(token, ".")
	if len(parts) != 2 {
		return false
	}

	mac := hmac.New(sha256.New, h.secret)
	mac.Write([]byte(parts[0]))
	expected := mac.Sum(nil)

	provided, err := hex.DecodeString(parts[1])
	if err != nil || !hmac.Equal(provided, expected) {
		return false
	}

	email, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(email, []byte(h.adminEmail)) == 1
}

package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/inventory/internal/domain/errors"
	"github.com/polkiloo/inventory/internal/server/http/dto"
	"github.com/polkiloo/inventory/internal/server/http/middleware"
)

type tokenIssuer func(ctx context.Context, login, password string) (string, error)

// AuthHandler processes operator registration and login.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/user/register. Malformed credentials are a bad
// request here, not an authentication failure.
func (h *AuthHandler) Register(c *gin.Context) {
	h.issue(c, h.facade.Register, func(err error) int {
		if errors.Is(err, domainErrors.ErrInvalidCredentials) {
			return http.StatusBadRequest
		}
		return statusFor(err)
	})
}

// Login handles POST /api/user/login.
func (h *AuthHandler) Login(c *gin.Context) {
	h.issue(c, h.facade.Authenticate, statusFor)
}

func (h *AuthHandler) issue(c *gin.Context, issuer tokenIssuer, status func(error) int) {
	var req dto.AuthRequest
	if !bindJSON(c, &req) {
		return
	}

	token, err := issuer(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		respondStatus(c, status(err), err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.Status(http.StatusOK)
}

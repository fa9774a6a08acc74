package handler

import (
	"net/http"

	"github.com/marco2712/POS-PROCESOS/internal/apierror"
	"github.com/marco2712/POS-PROCESOS/internal/dto"
	"github.com/marco2712/POS-PROCESOS/internal/middleware"
	"github.com/marco2712/POS-PROCESOS/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarOrgs returns the organizations the authenticated user belongs to.
// Runs after JWTAuth but before TenantScope — the client calls it exactly
// to decide which X-Org-ID to send.
func (h *AuthHandler) ListarOrgs(c *gin.Context) {
	claims := middleware.GetClaims(c)
	usuarioID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Token invalido o expirado"))
		return
	}
	resp, err := h.svc.ListarOrgs(c.Request.Context(), usuarioID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

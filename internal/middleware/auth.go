package middleware

import (
	"net/http"
	"strings"

	"github.com/marco2712/POS-PROCESOS/internal/apierror"
	"github.com/marco2712/POS-PROCESOS/internal/repository"
	"github.com/marco2712/POS-PROCESOS/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	ClaimsKey = "claims"
	ScopeKey  = "scope"
)

// JWTClaims are the custom claims embedded in every access token.
// Organization and role are deliberately absent — they are resolved per
// request by TenantScope.
type JWTClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTAuth validates the Bearer token on every protected route.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Autenticacion requerida"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token invalido o expirado"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// TenantScope resolves the acting organization from the X-Org-ID header
// and the caller's membership in it. Requests without a resolvable
// organization fail closed before any handler runs.
func TenantScope(usuarioRepo repository.UsuarioRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet(ClaimsKey).(*JWTClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Autenticacion requerida"))
			return
		}
		usuarioID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token invalido o expirado"))
			return
		}

		orgHeader := c.GetHeader("X-Org-ID")
		if orgHeader == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, apierror.New(tenant.ErrSinOrganizacion.Error()))
			return
		}
		orgID, err := uuid.Parse(orgHeader)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, apierror.New(tenant.ErrSinOrganizacion.Error()))
			return
		}

		rol, err := usuarioRepo.FindRol(c.Request.Context(), usuarioID, orgID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("No perteneces a esta organización"))
			return
		}

		c.Set(ScopeKey, tenant.Scope{
			OrgID:     orgID,
			UsuarioID: usuarioID,
			Rol:       rol.Rol,
		})
		c.Next()
	}
}

// RequireRol rejects requests whose resolved role is not in the allowed list.
func RequireRol(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		scope, ok := c.MustGet(ScopeKey).(tenant.Scope)
		if !ok || !allowed[scope.Rol] {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Permisos insuficientes"))
			return
		}
		c.Next()
	}
}

// GetScope retrieves the resolved tenant scope from the Gin context.
func GetScope(c *gin.Context) tenant.Scope {
	scope, _ := c.MustGet(ScopeKey).(tenant.Scope)
	return scope
}

// GetClaims retrieves the typed JWT claims from the Gin context.
func GetClaims(c *gin.Context) *JWTClaims {
	claims, _ := c.MustGet(ClaimsKey).(*JWTClaims)
	return claims
}

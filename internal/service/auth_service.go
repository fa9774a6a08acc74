package service

import (
	"context"
	"errors"
	"time"

	"github.com/marco2712/POS-PROCESOS/internal/config"
	"github.com/marco2712/POS-PROCESOS/internal/dto"
	"github.com/marco2712/POS-PROCESOS/internal/model"
	"github.com/marco2712/POS-PROCESOS/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	// ListarOrgs returns the organizations the user belongs to, with the
	// role held in each. The client picks one and sends it as X-Org-ID.
	ListarOrgs(ctx context.Context, usuarioID uuid.UUID) ([]dto.OrganizacionResponse, error)
}

type authService struct {
	repo repository.UsuarioRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, errors.New("credenciales invalidas")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("credenciales invalidas")
	}

	token, err := s.generateToken(user, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		User: dto.UsuarioResponse{
			ID:       user.ID.String(),
			Username: user.Username,
			Nombre:   user.Nombre,
		},
	}, nil
}

func (s *authService) ListarOrgs(ctx context.Context, usuarioID uuid.UUID) ([]dto.OrganizacionResponse, error) {
	roles, err := s.repo.ListOrgs(ctx, usuarioID)
	if err != nil {
		return nil, errors.New("Error al listar organizaciones")
	}
	resp := make([]dto.OrganizacionResponse, 0, len(roles))
	for _, r := range roles {
		resp = append(resp, dto.OrganizacionResponse{
			ID:     r.OrgID.String(),
			Nombre: r.Organizacion.Nombre,
			Rol:    r.Rol,
		})
	}
	return resp, nil
}

// The token carries identity only. Organization and role are resolved per
// request from the X-Org-ID header against usuario_roles, so a revoked
// membership takes effect immediately instead of at token expiry.
func (s *authService) generateToken(user *model.Usuario, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID.String(),
		"username": user.Username,
		"exp":      time.Now().Add(duration).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

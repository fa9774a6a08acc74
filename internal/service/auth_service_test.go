package service

import (
	"context"
	"errors"
	"testing"

	"github.com/marco2712/POS-PROCESOS/internal/config"
	"github.com/marco2712/POS-PROCESOS/internal/dto"
	"github.com/marco2712/POS-PROCESOS/internal/model"
	"github.com/marco2712/POS-PROCESOS/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type stubUsuarioRepo struct {
	usuarios map[string]*model.Usuario
	roles    []model.UsuarioRol
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[string]*model.Usuario)}
}

func (r *stubUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	u, ok := r.usuarios[username]
	if !ok || !u.Activo {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubUsuarioRepo) FindRol(_ context.Context, usuarioID, orgID uuid.UUID) (*model.UsuarioRol, error) {
	for i := range r.roles {
		ur := &r.roles[i]
		if ur.UsuarioID == usuarioID && ur.OrgID == orgID && ur.Activo {
			return ur, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubUsuarioRepo) ListOrgs(_ context.Context, usuarioID uuid.UUID) ([]model.UsuarioRol, error) {
	var out []model.UsuarioRol
	for _, ur := range r.roles {
		if ur.UsuarioID == usuarioID && ur.Activo {
			out = append(out, ur)
		}
	}
	return out, nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

func authFixture(t *testing.T) (*stubUsuarioRepo, AuthService, *model.Usuario) {
	t.Helper()
	repo := newStubUsuarioRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreta123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &model.Usuario{
		ID:           uuid.New(),
		Username:     "ana@tienda.com",
		Nombre:       "Ana",
		PasswordHash: string(hash),
		Activo:       true,
	}
	repo.usuarios[user.Username] = user
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpirationHours: 8}
	return repo, NewAuthService(repo, cfg), user
}

func TestLogin_Exitoso(t *testing.T) {
	_, svc, user := authFixture(t)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: user.Username, Password: "secreta123"})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 8*3600, resp.ExpiresIn)
	assert.Equal(t, user.ID.String(), resp.User.ID)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	_, svc, user := authFixture(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: user.Username, Password: "otra"})

	require.EqualError(t, err, "credenciales invalidas")
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	_, svc, _ := authFixture(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "x"})

	require.EqualError(t, err, "credenciales invalidas")
}

func TestListarOrgs(t *testing.T) {
	repo, svc, user := authFixture(t)
	org := &model.Organizacion{ID: uuid.New(), Nombre: "Tienda Centro"}
	repo.roles = []model.UsuarioRol{
		{UsuarioID: user.ID, OrgID: org.ID, Rol: "admin", Activo: true, Organizacion: org},
		{UsuarioID: user.ID, OrgID: uuid.New(), Rol: "cashier", Activo: false},
	}

	resp, err := svc.ListarOrgs(context.Background(), user.ID)

	require.NoError(t, err)
	require.Len(t, resp, 1, "inactive memberships are excluded")
	assert.Equal(t, "Tienda Centro", resp[0].Nombre)
	assert.Equal(t, "admin", resp[0].Rol)
}

package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dulceria/sweets-api/internal/application/auth"
	"github.com/dulceria/sweets-api/internal/application/dto"
	"github.com/dulceria/sweets-api/internal/domain"
	"github.com/dulceria/sweets-api/internal/domain/entity"
	"github.com/dulceria/sweets-api/pkg/jwt"
)

// fakeUserRepo implementación en memoria del puerto UserRepository.
type fakeUserRepo struct {
	users map[string]*entity.User // por ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func testJWTConfig() auth.JWTConfig {
	return auth.JWTConfig{
		Secret:     "test-secret",
		Algorithm:  "HS256",
		ExpMinutes: 60,
		Issuer:     "sweets-shop-test",
	}
}

func TestRegister_CreaUsuario(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	out, err := uc.Register(dto.RegisterRequest{Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "a@x.com", out.Email)
	assert.False(t, out.IsAdmin)

	stored, err := repo.GetByID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "pw1", stored.PasswordHash, "nunca se persiste el texto plano")
}

// Email duplicado falla sin importar password ni flag de admin.
func TestRegister_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	_, err := uc.Register(dto.RegisterRequest{Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "a@x.com", Password: "otro", IsAdmin: true})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// Registro seguido de login con el mismo par produce un token cuyo subject
// resuelve de vuelta al mismo usuario.
func TestLogin_TokenResuelveAlUsuario(t *testing.T) {
	repo := newFakeUserRepo()
	cfg := testJWTConfig()
	uc := auth.NewAuthUseCase(repo, cfg)

	reg, err := uc.Register(dto.RegisterRequest{Email: "a@x.com", Password: "pw1", IsAdmin: true})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", out.TokenType)

	userID, isAdmin, err := jwt.Parse(cfg.Secret, cfg.Algorithm, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, userID)
	assert.True(t, isAdmin)

	resolved, err := repo.GetByID(userID)
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, "a@x.com", resolved.Email)
}

// Email desconocido y password incorrecto fallan con el mismo error.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	_, err := uc.Register(dto.RegisterRequest{Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "a@x.com", Password: "mala"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@x.com", Password: "pw1"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

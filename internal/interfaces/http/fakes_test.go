package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/dulceria/sweets-api/internal/application/auth"
	"github.com/dulceria/sweets-api/internal/application/dto"
	"github.com/dulceria/sweets-api/internal/application/usecase"
	"github.com/dulceria/sweets-api/internal/domain"
	"github.com/dulceria/sweets-api/internal/domain/entity"
	"github.com/dulceria/sweets-api/internal/domain/repository"
	httpapi "github.com/dulceria/sweets-api/internal/interfaces/http"
)

// Fakes en memoria de los puertos de repositorio, para levantar el router
// completo sin PostgreSQL.

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

type fakeSweetRepo struct {
	sweets []*entity.Sweet
}

func (r *fakeSweetRepo) Create(sweet *entity.Sweet) error {
	cp := *sweet
	r.sweets = append(r.sweets, &cp)
	return nil
}

func (r *fakeSweetRepo) GetByID(id string) (*entity.Sweet, error) {
	for _, s := range r.sweets {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSweetRepo) List(limit int) ([]*entity.Sweet, error) {
	out := make([]*entity.Sweet, 0, len(r.sweets))
	for _, s := range r.sweets {
		if len(out) == limit {
			break
		}
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeSweetRepo) Search(filter repository.SweetFilter, limit int) ([]*entity.Sweet, error) {
	out := []*entity.Sweet{}
	for _, s := range r.sweets {
		if len(out) == limit {
			break
		}
		if filter.Name != nil && !strings.Contains(strings.ToLower(s.Name), strings.ToLower(*filter.Name)) {
			continue
		}
		if filter.Category != nil && !strings.Contains(strings.ToLower(s.Category), strings.ToLower(*filter.Category)) {
			continue
		}
		if filter.MinPrice != nil && s.Price.LessThan(*filter.MinPrice) {
			continue
		}
		if filter.MaxPrice != nil && s.Price.GreaterThan(*filter.MaxPrice) {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeSweetRepo) Replace(sweet *entity.Sweet) (bool, error) {
	for _, s := range r.sweets {
		if s.ID == sweet.ID {
			s.Name = sweet.Name
			s.Category = sweet.Category
			s.Price = sweet.Price
			s.Quantity = sweet.Quantity
			s.UpdatedAt = sweet.UpdatedAt
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSweetRepo) Delete(id string) (bool, error) {
	for i, s := range r.sweets {
		if s.ID == id {
			r.sweets = append(r.sweets[:i], r.sweets[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSweetRepo) DecrementStock(id string, qty int64) (bool, error) {
	for _, s := range r.sweets {
		if s.ID == id && s.Quantity >= qty {
			s.Quantity -= qty
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSweetRepo) IncrementStock(id string, qty int64) (bool, error) {
	for _, s := range r.sweets {
		if s.ID == id {
			s.Quantity += qty
			return true, nil
		}
	}
	return false, nil
}

const (
	testSecret = "test-secret-key-for-http-tests"
	testAlg    = "HS256"
)

type testEnv struct {
	app       *fiber.App
	userRepo  *fakeUserRepo
	sweetRepo *fakeSweetRepo
}

// newTestEnv arma la app Fiber con el router real sobre los fakes.
func newTestEnv() *testEnv {
	userRepo := newFakeUserRepo()
	sweetRepo := &fakeSweetRepo{}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     testSecret,
		Algorithm:  testAlg,
		ExpMinutes: 60,
		Issuer:     "sweets-shop-test",
	})
	sweetUC := usecase.NewSweetUseCase(sweetRepo)

	app := fiber.New()
	httpapi.Router(app, httpapi.RouterDeps{
		AuthUC:   authUC,
		SweetUC:  sweetUC,
		UserRepo: userRepo,
		Auth:     httpapi.AuthConfig{Secret: testSecret, Algorithm: testAlg},
	})
	return &testEnv{app: app, userRepo: userRepo, sweetRepo: sweetRepo}
}

// doJSON ejecuta una petición contra la app; body nil envía sin cuerpo y
// token vacío omite el header Authorization.
func (e *testEnv) doJSON(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// register + login; devuelve el access token listo para el header.
func (e *testEnv) loginAs(t *testing.T, email, pw string, isAdmin bool) string {
	t.Helper()
	resp := e.doJSON(t, fiber.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Email: email, Password: pw, IsAdmin: isAdmin,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = e.doJSON(t, fiber.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: email, Password: pw})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decodeJSON[dto.LoginResponse](t, resp)
	require.NotEmpty(t, out.AccessToken)
	return out.AccessToken
}

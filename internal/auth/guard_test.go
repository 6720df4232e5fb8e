package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "artisticdb/internal/errors"
	"artisticdb/internal/model"
)

func TestOwnerMatches(t *testing.T) {
	claims := &Claims{Email: "a@x.com"}

	tests := []struct {
		name   string
		claims *Claims
		target string
		want   bool
	}{
		{"same email", claims, "a@x.com", true},
		{"different case", claims, "A@X.COM", true},
		{"surrounding space", claims, " a@x.com ", true},
		{"other user", claims, "b@x.com", false},
		{"empty target", claims, "", false},
		{"nil claims", nil, "a@x.com", false},
		{"prefix only", claims, "a@x.co", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OwnerMatches(tt.claims, tt.target))
		})
	}
}

func TestRequireOwner(t *testing.T) {
	e := echo.New()

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	_, err := RequireOwner(c, "a@x.com")
	assertStatus(t, err, http.StatusUnauthorized)

	c.Set(ClaimsContextKey, &Claims{Email: "a@x.com"})
	_, err = RequireOwner(c, "b@x.com")
	assertStatus(t, err, http.StatusForbidden)

	claims, err := RequireOwner(c, "A@x.com")
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
}

type MockRoleLookup struct {
	mock.Mock
}

func (m *MockRoleLookup) RoleOf(ctx context.Context, email string) (model.Role, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.Role), args.Error(1)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		role       model.Role
		lookupErr  error
		wantStatus int
	}{
		{"admin admitted", model.RoleAdmin, nil, http.StatusOK},
		{"instructor rejected", model.RoleInstructor, nil, http.StatusForbidden},
		{"unknown user rejected", "", apperrors.ErrUserNotFound, http.StatusForbidden},
		{"store failure", "", errors.New("mongo down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := new(MockRoleLookup)
			lookup.On("RoleOf", mock.Anything, "a@x.com").Return(tt.role, tt.lookupErr)

			e := echo.New()
			called := false
			handler := RequireRole(lookup, model.RoleAdmin)(func(c echo.Context) error {
				called = true
				role, ok := RoleFrom(c)
				assert.True(t, ok)
				assert.Equal(t, model.RoleAdmin, role)
				return c.NoContent(http.StatusOK)
			})

			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPatch, "/", nil), rec)
			c.Set(ClaimsContextKey, &Claims{Email: "a@x.com"})

			err := handler(c)
			if tt.wantStatus == http.StatusOK {
				assert.NoError(t, err)
				assert.True(t, called)
			} else {
				assertStatus(t, err, tt.wantStatus)
				assert.False(t, called)
			}
			lookup.AssertExpectations(t)
		})
	}
}

func assertStatus(t *testing.T, err error, status int) {
	t.Helper()
	var httpErr *echo.HTTPError
	if assert.ErrorAs(t, err, &httpErr) {
		assert.Equal(t, status, httpErr.Code)
	}
}

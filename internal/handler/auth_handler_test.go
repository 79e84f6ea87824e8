package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-gin-seat-booking/internal/handler"
	"go-gin-seat-booking/internal/model"
	"go-gin-seat-booking/internal/service/mocks"
	apperrors "go-gin-seat-booking/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		users := mocks.NewUserServiceMock()
		router := setupAdminTestRouter(t, users)

		users.On("Authenticate", mock.Anything, "root@site.com", "pw1").Return(superuser(), nil).Once()
		users.On("RecordLogin", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/admin/login", handler.LoginRequest{Email: "root@site.com", Password: "pw1"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp handler.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.UserID)
		assert.True(t, resp.IsSuperuser)

		claims, err := testIssuer.Parse(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "root@site.com", claims.Email)
		users.AssertExpectations(t)
	})

	t.Run("Failed - not staff", func(t *testing.T) {
		users := mocks.NewUserServiceMock()
		router := setupAdminTestRouter(t, users)

		customer := &model.User{ID: 3, Email: "a@b.com", IsActive: true}
		users.On("Authenticate", mock.Anything, "a@b.com", "pw1").Return(customer, nil).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/admin/login", handler.LoginRequest{Email: "a@b.com", Password: "pw1"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		users.AssertNotCalled(t, "RecordLogin", mock.Anything, mock.Anything)
	})

	t.Run("Failed - ErrInvalidCredentials", func(t *testing.T) {
		users := mocks.NewUserServiceMock()
		router := setupAdminTestRouter(t, users)

		users.On("Authenticate", mock.Anything, "a@b.com", "bad").Return(nil, apperrors.ErrInvalidCredentials).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/admin/login", handler.LoginRequest{Email: "a@b.com", Password: "bad"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Failed - Invalid JSON", func(t *testing.T) {
		users := mocks.NewUserServiceMock()
		router := setupAdminTestRouter(t, users)

		req := createJSONHTTPRequest("POST", "/api/v1/admin/login", InvalidJSON)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		users.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failed - missing password", func(t *testing.T) {
		users := mocks.NewUserServiceMock()
		router := setupAdminTestRouter(t, users)

		req := createJSONHTTPRequest("POST", "/api/v1/admin/login", map[string]string{"email": "a@b.com"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"go-gin-seat-booking/internal/admin"
	"go-gin-seat-booking/internal/auth"
	"go-gin-seat-booking/internal/handler"
	"go-gin-seat-booking/internal/model"
	"go-gin-seat-booking/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var (
	InvalidJSON = `{"invalid": json}`

	testIssuer = auth.NewJWTIssuer("test-secret", time.Hour)
)

// create JSON request body
func createJSONRequest(data interface{}) *bytes.Buffer {
	if s, ok := data.(string); ok {
		return bytes.NewBufferString(s)
	}
	jsonData, err := json.Marshal(data)
	if err != nil {
		return bytes.NewBuffer([]byte(""))
	}
	return bytes.NewBuffer(jsonData)
}

// create HTTP request with JSON body
func createJSONHTTPRequest(method, url string, data interface{}) *http.Request {
	req, err := http.NewRequest(method, url, createJSONRequest(data))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

// withToken 為請求加上指定使用者的 Bearer token
func withToken(t *testing.T, req *http.Request, user *model.User) *http.Request {
	t.Helper()
	token, _, err := testIssuer.Issue(user)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

// setupAdminTestRouter 使用者 model 的持久層與登入共用同一個 mock
func setupAdminTestRouter(t *testing.T, users *mocks.UserServiceMock) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()

	site := admin.NewSite(nil)
	require.NoError(t, admin.Register(site, admin.ModelUser, admin.Store[*model.User](users), model.NewUser, &admin.UserModelAdmin))

	handler.NewAuthHandler(users, testIssuer).RegisterRoutes(router)
	handler.NewAdminHandler(site).RegisterRoutes(router,
		handler.AdminAuth(testIssuer, users),
		handler.RequireSuperuserForWrites(),
	)
	return router
}

func superuser() *model.User {
	return &model.User{ID: 1, Email: "root@site.com", IsActive: true, IsStaff: true, IsSuperuser: true}
}

func staffUser() *model.User {
	return &model.User{ID: 2, Email: "staff@site.com", IsActive: true, IsStaff: true}
}

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resume-site/resume-backend/internal/auth/domain"
)

type stubLogin struct{}

func (stubLogin) Login(_ context.Context, username, password string) (string, error) {
	if username == "admin" && password == "admin123" {
		return "signed-token", nil
	}
	return "", domain.ErrInvalidCredentials
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(stubLogin{}).Register(r.Group("/api/auth"))
	return r
}

func postLogin(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestLoginReturnsBearerToken(t *testing.T) {
	r := newRouter()

	rr := postLogin(t, r, `{"username":"admin","password":"admin123"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp tokenResp
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := newRouter()

	rr := postLogin(t, r, `{"username":"admin","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestLoginRejectsBadBody(t *testing.T) {
	r := newRouter()

	for _, body := range []string{"", "{}", `{"username":"admin"}`, "not json"} {
		rr := postLogin(t, r, body)
		assert.Equal(t, http.StatusBadRequest, rr.Code, "body %q", body)
	}
}

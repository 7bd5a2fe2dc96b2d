package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"notesapp/notes-api/internal"
	"notesapp/notes-api/internal/model"
	"notesapp/notes-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type stubMailer struct {
	lastTo   string
	lastCode string
	fail     bool
}

func (s *stubMailer) SendOTP(to, code string) error {
	if s.fail {
		return errors.New("smtp unreachable")
	}

	s.lastTo = to
	s.lastCode = code
	return nil
}

type stubGoogle struct {
	claims *service.GoogleClaims
	err    error
}

func (s *stubGoogle) Verify(_ context.Context, _ string) (*service.GoogleClaims, error) {
	if s.err != nil {
		return nil, s.err
	}

	return s.claims, nil
}

type testEnv struct {
	router *gin.Engine
	deps   *internal.Deps
	mailer *stubMailer
	google *stubGoogle
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)
	viper.Set("jwt.secret", "test-secret")
	viper.Set("host.cors", []string{"http://localhost:5173"})

	name := strings.ReplaceAll(t.Name(), "/", "_")

	conn, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(model.User{}, model.OneTimePasscode{}, model.Note{}))

	mailer := &stubMailer{}
	google := &stubGoogle{}

	d := &internal.Deps{
		DB:               conn,
		Mailer:           mailer,
		Google:           google,
		MailOnFailure:    "propagate",
		GoogleLinkPolicy: "link-by-email",
	}

	return &testEnv{
		router: newRouter(d),
		deps:   d,
		mailer: mailer,
		google: google,
	}
}

// do fires a JSON request against the test router and decodes the
// response body into a map
func (e *testEnv) do(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	resp := map[string]any{}
	if len(w.Body.Bytes()) > 0 && w.Body.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}

	return w.Code, resp
}

// doList is like do but for endpoints answering with a bare JSON array
func (e *testEnv) doList(t *testing.T, path, token string) []map[string]any {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	list := []map[string]any{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))

	return list
}

// signupAndVerify walks a user through the whole password onboarding
// flow and returns a usable session token
func (e *testEnv) signupAndVerify(t *testing.T, email, password, name string) string {
	t.Helper()

	code, _ := e.do(t, http.MethodPost, "/api/auth/signup", gin.H{
		"email": email, "password": password, "name": name,
	}, "")
	require.Equal(t, http.StatusCreated, code)

	code, _ = e.do(t, http.MethodPost, "/api/auth/send-otp", gin.H{"email": email}, "")
	require.Equal(t, http.StatusOK, code)

	code, resp := e.do(t, http.MethodPost, "/api/auth/verify-otp", gin.H{
		"email": email, "otp": e.mailer.lastCode,
	}, "")
	require.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, resp["token"])

	return resp["token"].(string)
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtpkg "github.com/dealerhub/portal/internal/pkg/jwt"
	"github.com/dealerhub/portal/internal/pkg/models"
)

var testSessionCfg = models.SessionConfig{
	CookieName: "dealerhub_session",
	Secret:     "test-session-secret",
	TTL:        720,
}

func TestSessionCookie_MintsCookieForNewBrowser(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotSID string
	handler := SessionCookie(testSessionCfg)(func(c echo.Context) error {
		gotSID = SessionID(c)
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.NotEmpty(t, gotSID)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, "dealerhub_session", cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, 0, cookie.MaxAge)

	// The cookie value resolves back to the context session ID
	sid, err := jwtpkg.ParseSessionID(cookie.Value, testSessionCfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, gotSID, sid)
}

func TestSessionCookie_ReusesValidCookie(t *testing.T) {
	token, err := jwtpkg.GenerateSessionToken("sid-existing", testSessionCfg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "dealerhub_session", Value: token})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotSID string
	handler := SessionCookie(testSessionCfg)(func(c echo.Context) error {
		gotSID = SessionID(c)
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "sid-existing", gotSID)
	assert.Empty(t, rec.Result().Cookies(), "an existing session must not be reissued")
}

func TestSessionCookie_DiscardsTamperedCookie(t *testing.T) {
	otherCfg := testSessionCfg
	otherCfg.Secret = "a-different-secret"
	token, err := jwtpkg.GenerateSessionToken("sid-forged", otherCfg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "dealerhub_session", Value: token})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotSID string
	handler := SessionCookie(testSessionCfg)(func(c echo.Context) error {
		gotSID = SessionID(c)
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.NotEmpty(t, gotSID)
	assert.NotEqual(t, "sid-forged", gotSID)
	require.Len(t, rec.Result().Cookies(), 1, "a fresh cookie replaces the forged one")
}

package newrelic

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionMiddleware_AttachesTransactionToContext(t *testing.T) {
	// A disabled application still hands out transaction objects, which is
	// enough to verify the context plumbing without a license key.
	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName("portal-test"),
		newrelic.ConfigEnabled(false),
	)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotTxn *newrelic.Transaction
	handler := TransactionMiddleware(app)(func(c echo.Context) error {
		gotTxn = FromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.NotNil(t, gotTxn, "downstream handlers must see the transaction")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTransactionMiddleware_NilAppIsNoop(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotTxn *newrelic.Transaction
	handler := TransactionMiddleware(nil)(func(c echo.Context) error {
		gotTxn = FromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Nil(t, gotTxn)
	assert.Equal(t, http.StatusOK, rec.Code)
}

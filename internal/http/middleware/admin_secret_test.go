package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAdminSecret(t *testing.T, configured string, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}

	err := AdminSecret(configured)(next)(c)
	if err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestAdminSecretFromHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(HeaderAdminSecret, "s3cret")

	rec := runAdminSecret(t, "s3cret", req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestAdminSecretFromBody(t *testing.T) {
	body := `{"secret":"s3cret","hours":[]}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := runAdminSecret(t, "s3cret", req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminSecretBodyRestoredForHandler(t *testing.T) {
	body := `{"secret":"s3cret","hours":[1,2,3]}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		var payload struct {
			Hours []int `json:"hours"`
		}
		require.NoError(t, c.Bind(&payload))
		assert.Len(t, payload.Hours, 3)
		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, AdminSecret("s3cret")(next)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminSecretMismatch(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(HeaderAdminSecret, "wrong")

	rec := runAdminSecret(t, "s3cret", req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminSecretMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := runAdminSecret(t, "s3cret", req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminSecretNotConfigured(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(HeaderAdminSecret, "anything")

	rec := runAdminSecret(t, "", req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

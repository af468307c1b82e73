package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newRateKeyContext(t *testing.T) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/maps/42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/maps/:id")
	return c
}

func TestRateKeyUsesNumericSubject(t *testing.T) {
	t.Parallel()

	// JWTAuth stores the sub claim, which json decodes as float64.
	cases := []struct {
		name string
		uid  interface{}
		want string
	}{
		{"float64", float64(7), ":7:"},
		{"uint64", uint64(12), ":12:"},
		{"int64", int64(3), ":3:"},
		{"int", 9, ":9:"},
		{"string", "41", ":41:"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newRateKeyContext(t)
			c.Set("user_id", tc.uid)
			key := rateKey("rl", c)
			if !strings.Contains(key, tc.want) {
				t.Errorf("rateKey with user_id %v = %q, want user component %q", tc.uid, key, tc.want)
			}
			if strings.Contains(key, ":anon:") {
				t.Errorf("rateKey with user_id %v = %q, keyed as anonymous", tc.uid, key)
			}
		})
	}
}

func TestRateKeyAnonymousWithoutSubject(t *testing.T) {
	t.Parallel()

	c := newRateKeyContext(t)
	key := rateKey("rl", c)
	if !strings.Contains(key, ":anon:") {
		t.Errorf("rateKey without user_id = %q, want anon component", key)
	}
	if !strings.HasSuffix(key, "GET /v1/maps/:id") {
		t.Errorf("rateKey = %q, want method+route suffix", key)
	}
}

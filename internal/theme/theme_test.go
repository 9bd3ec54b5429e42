package theme

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAndToggle(t *testing.T) {
	require.Equal(t, Dark, Parse(" DARK "))
	require.Equal(t, Light, Parse("sepia"))
	require.Equal(t, Dark, Light.Toggle())
	require.Equal(t, Light, Dark.Toggle())
}

func TestFromRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	require.Equal(t, Light, FromRequest(r))

	r.AddCookie(Dark.Cookie(false))
	require.Equal(t, Dark, FromRequest(r))
}

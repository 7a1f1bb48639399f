package policy

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRulesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, r := range Rules() {
		assert.False(t, seen[r.Key()], "duplicate rule %s", r.Key())
		seen[r.Key()] = true
	}
	assert.Len(t, seen, 14)
}

func TestAdminImpliesAuth(t *testing.T) {
	for _, r := range AdminOnly() {
		assert.True(t, r.Auth, r.Key())
	}
}

func TestMatrix(t *testing.T) {
	tests := []struct {
		method, path string
		gate         string
	}{
		{http.MethodGet, "/menu", "public"},
		{http.MethodPost, "/menu", "admin"},
		{http.MethodDelete, "/menu/:id", "admin"},
		{http.MethodGet, "/reviews", "public"},
		{http.MethodGet, "/cart", "token"},
		{http.MethodPost, "/cart", "public"},
		{http.MethodDelete, "/cart/:id", "public"},
		{http.MethodGet, "/users", "admin"},
		{http.MethodPost, "/users", "public"},
		{http.MethodGet, "/users/admin/:email", "token"},
		{http.MethodPatch, "/users/admin/:id", "public"},
		{http.MethodPost, "/jwt", "public"},
		{http.MethodPost, "/create-payment-intent", "token"},
		{http.MethodPost, "/payments", "token"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			r, ok := Lookup(tt.method, tt.path)
			require.True(t, ok)
			assert.Equal(t, tt.gate, r.Gate())
		})
	}
}

func TestLookup(t *testing.T) {
	r, ok := Lookup("post", "/jwt")
	require.True(t, ok)
	assert.Equal(t, "POST /jwt", r.Key())

	_, ok = Lookup(http.MethodPut, "/menu")
	assert.False(t, ok)
}

func TestProtectedAndAdminOnly(t *testing.T) {
	assert.Len(t, Protected(), 7)
	assert.Len(t, AdminOnly(), 3)
}

// Package policy is the access table: for every route it states whether a
// verified token and an admin role are required. Routes are mounted from it.
package policy

import (
	"net/http"
	"strings"
)

// Rule is one route and the gates in front of it.
type Rule struct {
	Method string
	Path   string
	// Auth requires a valid bearer token.
	Auth bool
	// Admin requires the caller's stored role to be admin. Implies Auth.
	Admin bool
	Note  string
}

// Key identifies the route of a rule, e.g. "DELETE /menu/:id".
func (r Rule) Key() string {
	return r.Method + " " + r.Path
}

// Gate names the strongest check in front of the route.
func (r Rule) Gate() string {
	switch {
	case r.Admin:
		return "admin"
	case r.Auth:
		return "token"
	default:
		return "public"
	}
}

// rules mirrors the deployed client contract. The unauthenticated cart writes
// and admin promotion are kept as they are; see DESIGN.md.
var rules = []Rule{
	{Method: http.MethodGet, Path: "/menu", Note: "list menu"},
	{Method: http.MethodPost, Path: "/menu", Auth: true, Admin: true, Note: "create menu item"},
	{Method: http.MethodDelete, Path: "/menu/:id", Auth: true, Admin: true, Note: "delete menu item"},

	{Method: http.MethodGet, Path: "/reviews", Note: "list reviews"},

	{Method: http.MethodGet, Path: "/cart", Auth: true, Note: "list cart of the token's email"},
	{Method: http.MethodPost, Path: "/cart", Note: "add cart item"},
	{Method: http.MethodDelete, Path: "/cart/:id", Note: "remove cart item, no ownership check"},

	{Method: http.MethodGet, Path: "/users", Auth: true, Admin: true, Note: "list users"},
	{Method: http.MethodPost, Path: "/users", Note: "register user once per email"},
	{Method: http.MethodGet, Path: "/users/admin/:email", Auth: true, Note: "is the caller an admin"},
	{Method: http.MethodPatch, Path: "/users/admin/:id", Note: "promote user to admin"},

	{Method: http.MethodPost, Path: "/jwt", Note: "issue access token"},

	{Method: http.MethodPost, Path: "/create-payment-intent", Auth: true, Note: "create gateway payment intent"},
	{Method: http.MethodPost, Path: "/payments", Auth: true, Note: "record completed payment"},
}

var ruleIndex = func() map[string]Rule {
	m := make(map[string]Rule, len(rules))
	for _, r := range rules {
		if r.Admin {
			r.Auth = true
		}
		m[r.Key()] = r
	}
	return m
}()

// Rules returns a copy of the access table in declaration order.
func Rules() []Rule {
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		out = append(out, ruleIndex[r.Key()])
	}
	return out
}

// Lookup returns the rule for a method and route pattern.
func Lookup(method, path string) (Rule, bool) {
	r, ok := ruleIndex[strings.ToUpper(method)+" "+path]
	return r, ok
}

// Protected returns the rules that require a token.
func Protected() []Rule {
	var out []Rule
	for _, r := range Rules() {
		if r.Auth {
			out = append(out, r)
		}
	}
	return out
}

// AdminOnly returns the rules that require the admin role.
func AdminOnly() []Rule {
	var out []Rule
	for _, r := range Rules() {
		if r.Admin {
			out = append(out, r)
		}
	}
	return out
}

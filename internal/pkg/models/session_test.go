package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleRedirectPath(t *testing.T) {
	tests := []struct {
		name string
		role Role
		want string
	}{
		{"admin", RoleAdmin, "/admin"},
		{"customer", RoleCustomer, "/customer/dashboard"},
		{"dealer", RoleDealer, "/dealer"},
		{"unknown role fails closed", Role("SUPERVISOR"), "/unauthorized"},
		{"empty role fails closed", Role(""), "/unauthorized"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.RedirectPath())
		})
	}
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleCustomer.Valid())
	assert.True(t, RoleDealer.Valid())
	assert.False(t, Role("root").Valid())
	assert.False(t, Role("").Valid())
}

func TestSessionRedirectPath(t *testing.T) {
	var nilSession *Session
	assert.False(t, nilSession.IsAuthenticated())
	assert.Equal(t, "/login", nilSession.RedirectPath())

	anonymous := &Session{}
	assert.Equal(t, "/login", anonymous.RedirectPath())

	authed := &Session{Token: "jwt-token", User: &User{Role: RoleDealer}}
	assert.True(t, authed.IsAuthenticated())
	assert.Equal(t, "/dealer", authed.RedirectPath())
}

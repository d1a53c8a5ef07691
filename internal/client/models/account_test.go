package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_DisplayName(t *testing.T) {
	tests := []struct {
		name string
		user User
		want string
	}{
		{name: "full name", user: User{Username: "admin", FirstName: "Admin", LastName: "User"}, want: "Admin User"},
		{name: "first only", user: User{Username: "admin", FirstName: "Admin"}, want: "Admin"},
		{name: "username fallback", user: User{Username: "admin"}, want: "admin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.DisplayName())
		})
	}
}

func TestLoginResponse_OptionalFieldsOmitted(t *testing.T) {
	b, err := json.Marshal(LoginResponse{Success: true, User: User{ID: "1", Username: "admin"}, Token: "t"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"user":{"id":"1","username":"admin"},"token":"t"}`, string(b))
}

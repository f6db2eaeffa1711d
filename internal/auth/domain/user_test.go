package domain

import (
	"testing"

	"github.com/angusyg/mean-stack/pkg/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	tests := []struct {
		name         string
		login        string
		passwordHash string
		roles        []string
		wantErr      error
		wantLogin    string
		wantRoles    []string
	}{
		{
			name:         "defaults applied",
			login:        "TEST",
			passwordHash: "hash",
			roles:        nil,
			wantLogin:    "TEST",
			wantRoles:    []string{constant.RoleUser},
		},
		{
			name:         "login trimmed",
			login:        "  TEST  ",
			passwordHash: "hash",
			roles:        []string{constant.RoleAdmin},
			wantLogin:    "TEST",
			wantRoles:    []string{constant.RoleAdmin},
		},
		{
			name:         "empty login rejected",
			login:        "   ",
			passwordHash: "hash",
			wantErr:      ErrEmptyLogin,
		},
		{
			name:    "empty password hash rejected",
			login:   "TEST",
			wantErr: ErrEmptyPasswordHash,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := NewUser(tt.login, tt.passwordHash, tt.roles)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, user.ID)
			assert.Equal(t, tt.wantLogin, user.Login)
			assert.Equal(t, tt.wantRoles, user.Roles)
			assert.Empty(t, user.RefreshToken)
			assert.Equal(t, constant.DefaultTheme, user.Settings.Theme)
			assert.NotZero(t, user.CreatedAt)
			assert.NotZero(t, user.UpdatedAt)
		})
	}
}

func TestUser_HasAnyRole(t *testing.T) {
	user := &User{Roles: []string{constant.RoleUser}}

	assert.True(t, user.HasAnyRole(constant.RoleUser))
	assert.True(t, user.HasAnyRole(constant.RoleAdmin, constant.RoleUser))
	assert.False(t, user.HasAnyRole(constant.RoleAdmin))
	assert.False(t, user.HasAnyRole())
}

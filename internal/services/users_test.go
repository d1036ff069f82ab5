package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUserService_EnsureAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	require.NoError(t, svc.EnsureAdmin(zap.NewNop()))
	admin, err := svc.FindByUsername(DefaultAdminUsername)
	require.NoError(t, err)
	assert.True(t, admin.IsActive)
	assert.True(t, admin.ForcePasswordChange)
	assert.True(t, CheckPassword(admin.Password, DefaultAdminPassword))

	// Second call is a no-op.
	require.NoError(t, svc.EnsureAdmin(zap.NewNop()))
	var count int64
	require.NoError(t, db.Table("users").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUserService_Create(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	u, err := svc.Create(NewUser{Username: " editor ", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "editor", u.Username)
	assert.NotEqual(t, "secret1", u.Password)

	_, err = svc.Create(NewUser{Username: "editor", Password: "secret2"})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	_, err = svc.Create(NewUser{Username: "short", Password: "123"})
	assert.ErrorIs(t, err, ErrWeakPassword)

	_, err = svc.FindByUsername("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserService_PasswordAndTwoFactor(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	u, err := svc.Create(NewUser{Username: "staff", Password: "initial", ForcePasswordChange: true})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.SetPassword(u, "x"), ErrWeakPassword)
	require.NoError(t, svc.SetPassword(u, "changed!"))
	require.NoError(t, svc.SetTwoFactor(u, "JBSWY3DPEHPK3PXP", true))
	require.NoError(t, svc.TouchLogin(u))

	fresh, err := svc.Get(u.ID)
	require.NoError(t, err)
	assert.False(t, fresh.ForcePasswordChange)
	assert.True(t, CheckPassword(fresh.Password, "changed!"))
	assert.False(t, CheckPassword(fresh.Password, "initial"))
	assert.True(t, fresh.TwoFactorEnabled)
	assert.Equal(t, "JBSWY3DPEHPK3PXP", fresh.TwoFactorSecret)
	assert.NotNil(t, fresh.LastLogin)
}

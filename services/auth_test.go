package services

import (
	"context"
	"testing"

	"foodapi/config"
	"foodapi/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)
	cfg := &config.Config{AdminEmail: "admin@example.com", AdminPassword: "s3cret", SaltRound: bcrypt.MinCost}
	require.NoError(t, database.SeedAdmin(db, cfg))

	svc := NewAuthService(db)
	ctx := context.Background()

	user, err := svc.Authenticate(ctx, "admin@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", user.Email)

	_, err = svc.Authenticate(ctx, "admin@example.com", "wrong")
	assert.Equal(t, KindUnauthorized, KindOf(err))
	assert.Equal(t, MsgInvalidCredentials, err.Error())

	_, err = svc.Authenticate(ctx, "nobody@example.com", "s3cret")
	assert.Equal(t, KindUnauthorized, KindOf(err))
}

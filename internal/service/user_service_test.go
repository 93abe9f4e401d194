package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forum-api/internal/domain"
)

func TestProfile(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	token, user, err := env.signUpAndIn(ctx, "alice", domain.RoleMember)
	require.NoError(t, err)

	got, err := env.user.Profile(ctx, token, user.UUID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	_, err = env.user.Profile(ctx, token, "no-such-user")
	require.Error(t, err)
	assert.Equal(t, "USR-001 User with entered uuid does not exist", err.Error())

	_, err = env.user.Profile(ctx, "", user.UUID)
	require.Error(t, err)
	assert.Equal(t, domain.KindUnauthenticated, domain.KindOf(err))
}

func TestDeleteUserRequiresAdmin(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	tokenMember, _, err := env.signUpAndIn(ctx, "alice", domain.RoleMember)
	require.NoError(t, err)
	tokenAdmin, _, err := env.signUpAndIn(ctx, "root", domain.RoleAdmin)
	require.NoError(t, err)
	_, target, err := env.signUpAndIn(ctx, "bob", domain.RoleMember)
	require.NoError(t, err)

	// a member may not delete anyone, including themselves
	_, err = env.user.Delete(ctx, tokenMember, target.UUID)
	require.Error(t, err)
	assert.Equal(t, "ATHR-003 Unauthorized Access, Entered user is not an admin", err.Error())

	deleted, err := env.user.Delete(ctx, tokenAdmin, target.UUID)
	require.NoError(t, err)
	assert.Equal(t, target.UUID, deleted.UUID)

	_, err = env.user.Delete(ctx, tokenAdmin, target.UUID)
	require.Error(t, err)
	assert.Equal(t, "USR-001 User with entered uuid to be deleted does not exist", err.Error())
}

// Existence is reported before the role check for authenticated callers.
func TestDeleteUserNotFoundBeforeForbidden(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	tokenMember, _, err := env.signUpAndIn(ctx, "alice", domain.RoleMember)
	require.NoError(t, err)

	_, err = env.user.Delete(ctx, tokenMember, "no-such-user")
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryCreateGetRemove(t *testing.T) {
	_, accounts, profiles := newTestManager(true)
	registry := NewRegistry(accounts, profiles)

	mgr := registry.Create("sess-1")
	require.NotNil(t, mgr)
	assert.Same(t, mgr, registry.Get("sess-1"))
	assert.Equal(t, Anonymous, mgr.Current().State)

	assert.Nil(t, registry.Get("sess-unknown"))

	registry.Remove("sess-1")
	assert.Nil(t, registry.Get("sess-1"))
}

func TestRegistryRehydrate(t *testing.T) {
	_, accounts, profiles := newTestManager(true)
	registry := NewRegistry(accounts, profiles)

	mgr, err := registry.Rehydrate("sess-1", "acc-1")
	require.NoError(t, err)
	assert.Equal(t, AuthenticatedApproved, mgr.Current().State)
	assert.Equal(t, "acc-1", mgr.AccountID())

	// Rehydrating an already-live session returns the existing manager.
	again, err := registry.Rehydrate("sess-1", "acc-1")
	require.NoError(t, err)
	assert.Same(t, mgr, again)
}

func TestRegistryRehydrateMissingProfile(t *testing.T) {
	_, accounts, profiles := newTestManager(true)
	registry := NewRegistry(accounts, profiles)

	mgr, err := registry.Rehydrate("sess-1", "acc-unknown")
	require.ErrorIs(t, err, ErrProfileNotFound)
	assert.Nil(t, mgr)
	assert.Nil(t, registry.Get("sess-1"))
}

func TestRegistryRefreshAccount(t *testing.T) {
	_, accounts, profiles := newTestManager(false)
	registry := NewRegistry(accounts, profiles)

	// Two sessions for the same account, one for another.
	first, err := registry.Rehydrate("sess-1", "acc-1")
	require.NoError(t, err)
	second, err := registry.Rehydrate("sess-2", "acc-1")
	require.NoError(t, err)
	other := registry.Create("sess-3")

	require.NoError(t, profiles.SetApproval("acc-1", true))
	registry.RefreshAccount("acc-1")

	assert.Equal(t, AuthenticatedApproved, first.Current().State)
	assert.Equal(t, AuthenticatedApproved, second.Current().State)
	assert.Equal(t, Anonymous, other.Current().State)
}

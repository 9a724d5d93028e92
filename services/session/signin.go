package session

import (
	"niryaat/utils"

	"go.uber.org/zap"
)

// SignIn exchanges credentials for an authenticated state. On failure the
// session holds no partial state: the profile cache is cleared and the
// identity is dropped. The repository calls run without the mutex so Current
// stays responsive during the exchange.
func (m *Manager) SignIn(email, password string) (Snapshot, error) {
	m.mu.Lock()
	if email == "" || password == "" {
		snap := m.transitionLocked(AuthFailed, "", nil)
		m.mu.Unlock()
		return snap, ErrInvalidCredentials
	}
	m.transitionLocked(Authenticating, "", nil)
	epoch := m.epoch
	m.mu.Unlock()

	accountID, ok, err := m.Accounts.Authenticate(email, password)
	if err != nil {
		utils.GetLogger().Error("SignIn: authentication failed", zap.Error(err))
		return m.complete(epoch, AuthFailed, "", nil), NetworkError{Err: err}
	}
	if !ok {
		return m.complete(epoch, AuthFailed, "", nil), ErrInvalidCredentials
	}

	profile, err := m.Profiles.GetByAccountID(accountID)
	if err != nil {
		utils.GetLogger().Error("SignIn: failed to fetch profile", zap.Error(err))
		return m.complete(epoch, AuthFailed, "", nil), NetworkError{Err: err}
	}
	if profile == nil {
		return m.complete(epoch, AuthFailed, "", nil), ErrProfileNotFound
	}

	return m.complete(epoch, stateForProfile(profile), accountID, profile), nil
}

// SignOut returns the session to Anonymous and discards the cached profile.
// Always succeeds, from any state.
func (m *Manager) SignOut() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transitionLocked(Anonymous, "", nil)
}

// AcknowledgeFailure returns an AuthFailed session to Anonymous.
func (m *Manager) AcknowledgeFailure() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == AuthFailed {
		m.transitionLocked(Anonymous, "", nil)
	}
}

// Refresh re-fetches the profile and re-derives the lifecycle state. A
// no-op for sessions that are not authenticated.
func (m *Manager) Refresh() (Snapshot, error) {
	m.mu.Lock()
	if !m.state.Authenticated() {
		snap := m.snapshotLocked()
		m.mu.Unlock()
		return snap, nil
	}
	accountID := m.accountID
	epoch := m.epoch
	m.mu.Unlock()

	profile, err := m.Profiles.GetByAccountID(accountID)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		// Keep the last known state; approval re-evaluation can retry.
		return m.snapshotLocked(), NetworkError{Err: err}
	}
	if profile == nil {
		return m.snapshotLocked(), ErrProfileNotFound
	}
	if m.epoch != epoch {
		return m.snapshotLocked(), nil
	}
	return m.transitionLocked(stateForProfile(profile), accountID, profile), nil
}

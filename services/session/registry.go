package session

import (
	"sync"

	accountRepo "niryaat/database/repository/account"
	profileRepo "niryaat/database/repository/profile"
)

// Registry tracks live session managers by session ID so approval events
// and auth middleware can reach the manager for a given client session.
type Registry struct {
	Accounts accountRepo.AccountRepository
	Profiles profileRepo.ProfileRepository

	mu       sync.RWMutex
	sessions map[string]*Manager
}

// NewRegistry creates an empty registry backed by the given repositories.
func NewRegistry(accounts accountRepo.AccountRepository, profiles profileRepo.ProfileRepository) *Registry {
	return &Registry{
		Accounts: accounts,
		Profiles: profiles,
		sessions: make(map[string]*Manager),
	}
}

// Create registers a fresh Anonymous manager under the given session ID.
func (r *Registry) Create(sessionID string) *Manager {
	r.mu.Lock()
	defer r.mu.Unlock()
	mgr := NewManager(r.Accounts, r.Profiles)
	r.sessions[sessionID] = mgr
	return mgr
}

// Get returns the live manager for a session ID, or nil.
func (r *Registry) Get(sessionID string) *Manager {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[sessionID]
}

// Remove drops a manager from the registry.
func (r *Registry) Remove(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
}

// Rehydrate rebuilds a manager for a persisted session record, re-fetching
// the profile so the lifecycle state reflects the store, not a stale flag.
func (r *Registry) Rehydrate(sessionID, accountID string) (*Manager, error) {
	profile, err := r.Profiles.GetByAccountID(accountID)
	if err != nil {
		return nil, NetworkError{Err: err}
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.sessions[sessionID]; ok {
		return existing, nil
	}
	mgr := NewManager(r.Accounts, r.Profiles)
	mgr.mu.Lock()
	mgr.transitionLocked(stateForProfile(profile), accountID, profile)
	mgr.mu.Unlock()
	r.sessions[sessionID] = mgr
	return mgr, nil
}

// RefreshAccount refreshes every live session belonging to an account.
// Called when an out-of-band approval lands.
func (r *Registry) RefreshAccount(accountID string) {
	r.mu.RLock()
	managers := make([]*Manager, 0, len(r.sessions))
	for _, mgr := range r.sessions {
		if mgr.AccountID() == accountID {
			managers = append(managers, mgr)
		}
	}
	r.mu.RUnlock()

	for _, mgr := range managers {
		_, _ = mgr.Refresh()
	}
}

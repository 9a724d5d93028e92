package session

import (
	"sync"

	accountRepo "niryaat/database/repository/account"
	profileRepo "niryaat/database/repository/profile"
	"niryaat/models"
)

// Session is the lifecycle state machine for one logical client session.
type Session interface {
	// SignIn exchanges credentials for an authenticated state.
	SignIn(email, password string) (Snapshot, error)
	// SignUp validates the registration locally, then creates the account
	// and its profile with the approval flag unset.
	SignUp(reg models.Registration) (Snapshot, error)
	// SignOut returns the session to Anonymous. Always succeeds; idempotent.
	SignOut()
	// AcknowledgeFailure returns an AuthFailed session to Anonymous.
	AcknowledgeFailure()
	// Current returns a read-only snapshot. Never blocks on the network.
	Current() Snapshot
	// Refresh re-fetches the profile and re-derives the state. Used when an
	// out-of-band approval lands; never assumes the flag changed locally.
	Refresh() (Snapshot, error)
	// Subscribe registers a callback invoked synchronously on every state
	// transition. The returned function unsubscribes.
	Subscribe(fn func(Snapshot)) func()
}

// Manager is the production Session implementation. Transitions are
// serialized by the mutex, but repository calls run outside it, so Current
// never waits on the network. Each transition bumps the epoch; an operation
// whose epoch went stale while it was on the wire stands down instead of
// overwriting the racing transition. Subscribers run under the mutex, so
// callbacks must not call back into the manager.
type Manager struct {
	Accounts accountRepo.AccountRepository
	Profiles profileRepo.ProfileRepository

	mu        sync.Mutex
	epoch     uint64
	state     State
	accountID string
	profile   *models.Profile
	subs      map[int]func(Snapshot)
	nextSub   int
}

// NewManager creates an Anonymous session backed by the given repositories.
func NewManager(accounts accountRepo.AccountRepository, profiles profileRepo.ProfileRepository) *Manager {
	return &Manager{
		Accounts: accounts,
		Profiles: profiles,
		state:    Anonymous,
		subs:     make(map[int]func(Snapshot)),
	}
}

// Current returns a read-only snapshot of the session.
func (m *Manager) Current() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// AccountID returns the signed-in account ID, or "" when anonymous.
func (m *Manager) AccountID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.accountID
}

// Subscribe registers a callback for state transitions.
func (m *Manager) Subscribe(fn func(Snapshot)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
}

func (m *Manager) snapshotLocked() Snapshot {
	return Snapshot{State: m.state, Profile: cloneProfile(m.profile)}
}

// transitionLocked updates the state and notifies subscribers synchronously,
// so no consumer observes a stale state after an awaited operation returns.
func (m *Manager) transitionLocked(state State, accountID string, profile *models.Profile) Snapshot {
	m.epoch++
	m.state = state
	m.accountID = accountID
	m.profile = profile

	snap := m.snapshotLocked()
	for _, fn := range m.subs {
		fn(snap)
	}
	return snap
}

// complete finishes an operation begun at the given epoch. When another
// transition landed while the operation was on the wire, the racing
// transition's state stands and this result is discarded.
func (m *Manager) complete(epoch uint64, state State, accountID string, profile *models.Profile) Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.epoch != epoch {
		return m.snapshotLocked()
	}
	return m.transitionLocked(state, accountID, profile)
}

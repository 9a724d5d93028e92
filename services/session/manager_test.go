package session

import (
	"errors"
	"sync"
	"testing"
	"time"

	"niryaat/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAccounts struct {
	mu        sync.Mutex
	accountID string
	password  string
	authErr   error
	createErr error
	created   []*models.Account
}

func (f *fakeAccounts) Authenticate(email, password string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.authErr != nil {
		return "", false, f.authErr
	}
	if f.accountID == "" || password != f.password {
		return "", false, nil
	}
	return f.accountID, true, nil
}

func (f *fakeAccounts) Create(account *models.Account, password string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, account)
	return nil
}

func (f *fakeAccounts) GetByID(id string) (*models.Account, error)       { return nil, nil }
func (f *fakeAccounts) GetByEmail(email string) (*models.Account, error) { return nil, nil }

type fakeProfiles struct {
	mu       sync.Mutex
	profiles map[string]*models.Profile
	getErr   error
}

func newFakeProfiles() *fakeProfiles {
	return &fakeProfiles{profiles: make(map[string]*models.Profile)}
}

func (f *fakeProfiles) GetByAccountID(accountID string) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.profiles[accountID], nil
}

func (f *fakeProfiles) Create(profile *models.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profiles[profile.AccountID] = profile
	return nil
}

func (f *fakeProfiles) Update(accountID string, update models.ProfileUpdate) (*models.Profile, error) {
	return f.GetByAccountID(accountID)
}

func (f *fakeProfiles) SetApproval(accountID string, approved bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.profiles[accountID]; ok {
		p.IsApproved = approved
	}
	return nil
}

func (f *fakeProfiles) AddHSCode(accountID, hsCode string) (*models.Profile, error) {
	return f.GetByAccountID(accountID)
}

func (f *fakeProfiles) RemoveHSCode(accountID, hsCode string) (*models.Profile, error) {
	return f.GetByAccountID(accountID)
}

func newTestManager(approved bool) (*Manager, *fakeAccounts, *fakeProfiles) {
	accounts := &fakeAccounts{accountID: "acc-1", password: "secret1"}
	profiles := newFakeProfiles()
	profiles.profiles["acc-1"] = &models.Profile{
		AccountID:    "acc-1",
		FullName:     "Asha Exporter",
		Role:         models.RoleExporter,
		Country:      "India",
		BusinessType: models.BusinessMSME,
		IsApproved:   approved,
		HSCodes:      []string{"0901"},
	}
	return NewManager(accounts, profiles), accounts, profiles
}

func validRegistration() models.Registration {
	return models.Registration{
		Email:           "new@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		FullName:        "New Exporter",
		Role:            models.RoleExporter,
		CompanyName:     "New Exports Pvt Ltd",
		IECCode:         "AB12345678",
		Country:         "India",
		PhoneNumber:     "+911234567890",
		BusinessType:    models.BusinessMSME,
		HSCodes:         []string{"1006", "1006", "0901", ""},
	}
}

func TestSignInOutcomes(t *testing.T) {
	tests := []struct {
		name          string
		approved      bool
		email         string
		password      string
		expectedState State
		expectedErr   error
	}{
		{
			name:          "approved account lands approved",
			approved:      true,
			email:         "a@b.com",
			password:      "secret1",
			expectedState: AuthenticatedApproved,
		},
		{
			name:          "unapproved account lands pending",
			approved:      false,
			email:         "a@b.com",
			password:      "secret1",
			expectedState: AuthenticatedPendingApproval,
		},
		{
			name:          "wrong password fails",
			approved:      true,
			email:         "a@b.com",
			password:      "wrong",
			expectedState: AuthFailed,
			expectedErr:   ErrInvalidCredentials,
		},
		{
			name:          "empty credentials fail without a repo call",
			approved:      true,
			email:         "",
			password:      "",
			expectedState: AuthFailed,
			expectedErr:   ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mgr, _, _ := newTestManager(tt.approved)

			snap, err := mgr.SignIn(tt.email, tt.password)
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, snap.Profile)
			} else {
				require.NoError(t, err)
				require.NotNil(t, snap.Profile)
			}
			assert.Equal(t, tt.expectedState, snap.State)
			assert.Equal(t, tt.expectedState, mgr.Current().State)
		})
	}
}

func TestSignInStoreFailure(t *testing.T) {
	mgr, accounts, _ := newTestManager(true)
	accounts.authErr = errors.New("connection refused")

	snap, err := mgr.SignIn("a@b.com", "secret1")
	assert.Equal(t, AuthFailed, snap.State)

	var netErr NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.ErrorIs(t, err, accounts.authErr)
}

func TestSignInMissingProfile(t *testing.T) {
	mgr, _, profiles := newTestManager(true)
	delete(profiles.profiles, "acc-1")

	snap, err := mgr.SignIn("a@b.com", "secret1")
	require.ErrorIs(t, err, ErrProfileNotFound)
	assert.Equal(t, AuthFailed, snap.State)
	assert.Empty(t, mgr.AccountID())
}

func TestSignOutIdempotent(t *testing.T) {
	mgr, _, _ := newTestManager(true)

	_, err := mgr.SignIn("a@b.com", "secret1")
	require.NoError(t, err)

	mgr.SignOut()
	assert.Equal(t, Anonymous, mgr.Current().State)
	assert.Nil(t, mgr.Current().Profile)

	// A second sign-out from Anonymous is a no-op, not an error.
	mgr.SignOut()
	assert.Equal(t, Anonymous, mgr.Current().State)
}

func TestAcknowledgeFailure(t *testing.T) {
	mgr, _, _ := newTestManager(true)

	_, err := mgr.SignIn("a@b.com", "wrong")
	require.Error(t, err)
	require.Equal(t, AuthFailed, mgr.Current().State)

	mgr.AcknowledgeFailure()
	assert.Equal(t, Anonymous, mgr.Current().State)

	// From any other state the acknowledgement does nothing.
	_, err = mgr.SignIn("a@b.com", "secret1")
	require.NoError(t, err)
	mgr.AcknowledgeFailure()
	assert.Equal(t, AuthenticatedApproved, mgr.Current().State)
}

func TestRefreshObservesApproval(t *testing.T) {
	mgr, _, profiles := newTestManager(false)

	snap, err := mgr.SignIn("a@b.com", "secret1")
	require.NoError(t, err)
	require.Equal(t, AuthenticatedPendingApproval, snap.State)

	// Approval lands out of band; the session only sees it on refresh.
	require.NoError(t, profiles.SetApproval("acc-1", true))
	assert.Equal(t, AuthenticatedPendingApproval, mgr.Current().State)

	snap, err = mgr.Refresh()
	require.NoError(t, err)
	assert.Equal(t, AuthenticatedApproved, snap.State)
}

func TestRefreshKeepsStateOnStoreFailure(t *testing.T) {
	mgr, _, profiles := newTestManager(true)

	_, err := mgr.SignIn("a@b.com", "secret1")
	require.NoError(t, err)

	profiles.getErr = errors.New("timeout")
	snap, err := mgr.Refresh()

	var netErr NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, AuthenticatedApproved, snap.State)
	require.NotNil(t, snap.Profile)
}

func TestRefreshNoopWhenAnonymous(t *testing.T) {
	mgr, _, _ := newTestManager(true)

	snap, err := mgr.Refresh()
	require.NoError(t, err)
	assert.Equal(t, Anonymous, snap.State)
}

func TestSignUp(t *testing.T) {
	mgr, accounts, profiles := newTestManager(true)

	snap, err := mgr.SignUp(validRegistration())
	require.NoError(t, err)
	assert.Equal(t, AuthenticatedPendingApproval, snap.State)
	require.NotNil(t, snap.Profile)
	assert.False(t, snap.Profile.IsApproved)
	assert.Equal(t, []string{"1006", "0901"}, snap.Profile.HSCodes)

	require.Len(t, accounts.created, 1)
	created, err := profiles.GetByAccountID(accounts.created[0].ID)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "New Exports Pvt Ltd", created.CompanyName)
}

func TestSignUpValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Registration)
		field  string
	}{
		{
			name:   "missing email",
			mutate: func(r *models.Registration) { r.Email = "" },
			field:  "email",
		},
		{
			name:   "iec code too short",
			mutate: func(r *models.Registration) { r.IECCode = "AB1234567" },
			field:  "iecCode",
		},
		{
			name:   "iec code lowercase",
			mutate: func(r *models.Registration) { r.IECCode = "ab12345678" },
			field:  "iecCode",
		},
		{
			name:   "password too short",
			mutate: func(r *models.Registration) { r.Password = "abc"; r.ConfirmPassword = "abc" },
			field:  "password",
		},
		{
			name:   "password mismatch",
			mutate: func(r *models.Registration) { r.ConfirmPassword = "different" },
			field:  "confirmPassword",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mgr, accounts, _ := newTestManager(true)

			reg := validRegistration()
			tt.mutate(&reg)

			snap, err := mgr.SignUp(reg)

			var vErr ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)

			// Validation failures never reach the store and never transition.
			assert.Equal(t, Anonymous, snap.State)
			assert.Empty(t, accounts.created)
		})
	}
}

func TestSubscribeNotifiedSynchronously(t *testing.T) {
	mgr, _, _ := newTestManager(true)

	var states []State
	unsubscribe := mgr.Subscribe(func(s Snapshot) {
		states = append(states, s.State)
	})

	_, err := mgr.SignIn("a@b.com", "secret1")
	require.NoError(t, err)

	// The subscriber saw every transition before SignIn returned.
	assert.Equal(t, []State{Authenticating, AuthenticatedApproved}, states)

	unsubscribe()
	mgr.SignOut()
	assert.Equal(t, []State{Authenticating, AuthenticatedApproved}, states)
}

func TestSnapshotProfileIsACopy(t *testing.T) {
	mgr, _, _ := newTestManager(true)

	_, err := mgr.SignIn("a@b.com", "secret1")
	require.NoError(t, err)

	snap := mgr.Current()
	snap.Profile.HSCodes[0] = "mutated"
	snap.Profile.FullName = "mutated"

	fresh := mgr.Current()
	assert.Equal(t, "0901", fresh.Profile.HSCodes[0])
	assert.Equal(t, "Asha Exporter", fresh.Profile.FullName)
}

// blockingAccounts parks Authenticate until released, signalling entry.
type blockingAccounts struct {
	fakeAccounts
	started chan struct{}
	release chan struct{}
}

func (b *blockingAccounts) Authenticate(email, password string) (string, bool, error) {
	close(b.started)
	<-b.release
	return b.fakeAccounts.Authenticate(email, password)
}

func newBlockingManager() (*Manager, *blockingAccounts) {
	accounts := &blockingAccounts{
		fakeAccounts: fakeAccounts{accountID: "acc-1", password: "secret1"},
		started:      make(chan struct{}),
		release:      make(chan struct{}),
	}
	profiles := newFakeProfiles()
	profiles.profiles["acc-1"] = &models.Profile{
		AccountID:  "acc-1",
		FullName:   "Asha Exporter",
		Role:       models.RoleExporter,
		IsApproved: true,
	}
	return NewManager(accounts, profiles), accounts
}

func TestCurrentDoesNotBlockDuringSignIn(t *testing.T) {
	mgr, accounts := newBlockingManager()

	result := make(chan Snapshot, 1)
	go func() {
		snap, _ := mgr.SignIn("a@b.com", "secret1")
		result <- snap
	}()
	<-accounts.started

	// The credential exchange is parked on the wire; Current must answer
	// without waiting for it.
	observed := make(chan Snapshot, 1)
	go func() { observed <- mgr.Current() }()
	select {
	case snap := <-observed:
		assert.Equal(t, Authenticating, snap.State)
	case <-time.After(500 * time.Millisecond):
		t.Fatal("Current blocked while a credential exchange was in flight")
	}

	close(accounts.release)
	snap := <-result
	assert.Equal(t, AuthenticatedApproved, snap.State)
}

func TestSignOutSupersedesInFlightSignIn(t *testing.T) {
	mgr, accounts := newBlockingManager()

	type outcome struct {
		snap Snapshot
		err  error
	}
	result := make(chan outcome, 1)
	go func() {
		snap, err := mgr.SignIn("a@b.com", "secret1")
		result <- outcome{snap, err}
	}()
	<-accounts.started

	// The sign-out lands while the exchange is on the wire; its transition
	// stands and the late sign-in result is discarded.
	mgr.SignOut()
	close(accounts.release)

	out := <-result
	require.NoError(t, out.err)
	assert.Equal(t, Anonymous, out.snap.State)
	assert.Equal(t, Anonymous, mgr.Current().State)
	assert.Empty(t, mgr.AccountID())
}

func TestConcurrentOperations(t *testing.T) {
	mgr, _, _ := newTestManager(true)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = mgr.SignIn("a@b.com", "secret1")
		}()
		go func() {
			defer wg.Done()
			mgr.SignOut()
		}()
	}
	wg.Wait()

	// Serialization leaves the session in one of the two terminal states of
	// the racing operations, never a transient one.
	final := mgr.Current().State
	assert.Contains(t, []State{Anonymous, AuthenticatedApproved}, final)
}

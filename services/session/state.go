package session

import "niryaat/models"

// State is the account lifecycle state of a session.
type State string

const (
	// Anonymous means no credential exchange has happened.
	Anonymous State = "anonymous"
	// Authenticating is the transient state while a credential exchange is
	// in flight.
	Authenticating State = "authenticating"
	// AuthenticatedPendingApproval means the credential exchange succeeded
	// but an administrator has not approved the profile yet.
	AuthenticatedPendingApproval State = "authenticated_pending_approval"
	// AuthenticatedApproved means the credential exchange succeeded and the
	// profile is approved.
	AuthenticatedApproved State = "authenticated_approved"
	// AuthFailed means the last credential exchange failed. Acknowledge
	// returns the session to Anonymous.
	AuthFailed State = "auth_failed"
)

// Authenticated reports whether the state carries a signed-in identity.
func (s State) Authenticated() bool {
	return s == AuthenticatedPendingApproval || s == AuthenticatedApproved
}

// Snapshot is a read-only view of a session at a point in time. The profile
// is a private copy, safe to read without synchronization.
type Snapshot struct {
	State   State
	Profile *models.Profile
}

func stateForProfile(p *models.Profile) State {
	if p != nil && p.IsApproved {
		return AuthenticatedApproved
	}
	return AuthenticatedPendingApproval
}

func cloneProfile(p *models.Profile) *models.Profile {
	if p == nil {
		return nil
	}
	cp := *p
	if p.HSCodes != nil {
		cp.HSCodes = append([]string(nil), p.HSCodes...)
	}
	return &cp
}

package profileRepo

import "niryaat/models"

// ProfileRepository defines methods for profile data access.
type ProfileRepository interface {
	// GetByAccountID retrieves the profile attached to an account.
	// Returns nil when absent.
	GetByAccountID(accountID string) (*models.Profile, error)
	// Create inserts a new profile record.
	Create(profile *models.Profile) error
	// Update applies the non-nil fields of the update to the profile.
	Update(accountID string, update models.ProfileUpdate) (*models.Profile, error)
	// SetApproval flips the approval flag. Invoked by the admin surface only,
	// never by the session core.
	SetApproval(accountID string, approved bool) error
	// AddHSCode adds a tracked HS code, keeping the set unique.
	AddHSCode(accountID, hsCode string) (*models.Profile, error)
	// RemoveHSCode removes a tracked HS code.
	RemoveHSCode(accountID, hsCode string) (*models.Profile, error)
}

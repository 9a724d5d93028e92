package accountRepo

import "niryaat/models"

// AccountRepository defines methods for account data access. Authentication
// (credential verification) lives here so the session layer never touches
// password hashes.
type AccountRepository interface {
	// Authenticate verifies the email/password pair and returns the account
	// ID on success. ok is false for an unknown email or a wrong password;
	// err is reserved for store failures.
	Authenticate(email, password string) (accountID string, ok bool, err error)
	// Create inserts a new account record with a freshly hashed password.
	Create(account *models.Account, password string) error
	// GetByID retrieves an account by its unique ID. Returns nil when absent.
	GetByID(id string) (*models.Account, error)
	// GetByEmail retrieves an account by email. Returns nil when absent.
	GetByEmail(email string) (*models.Account, error)
}

package session

import (
	"regexp"
	"time"

	"niryaat/models"
	"niryaat/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var iecCodePattern = regexp.MustCompile(`^[A-Z0-9]{10}$`)

// ValidateRegistration checks the sign-up payload locally. It fails fast on
// the first offending field, before any repository call.
func ValidateRegistration(reg models.Registration) error {
	required := []struct {
		field string
		value string
	}{
		{"email", reg.Email},
		{"password", reg.Password},
		{"fullName", reg.FullName},
		{"role", string(reg.Role)},
		{"companyName", reg.CompanyName},
		{"iecCode", reg.IECCode},
		{"country", reg.Country},
		{"phoneNumber", reg.PhoneNumber},
		{"businessType", string(reg.BusinessType)},
	}
	for _, f := range required {
		if f.value == "" {
			return ValidationError{Field: f.field, Reason: "is required"}
		}
	}

	if !iecCodePattern.MatchString(reg.IECCode) {
		return ValidationError{Field: "iecCode", Reason: "must be 10 uppercase alphanumeric characters"}
	}
	if len(reg.Password) < 6 {
		return ValidationError{Field: "password", Reason: "must be at least 6 characters"}
	}
	if reg.Password != reg.ConfirmPassword {
		return ValidationError{Field: "confirmPassword", Reason: "does not match password"}
	}
	return nil
}

// SignUp validates the registration, creates the account and its profile
// with the approval flag unset, and leaves the session pending approval.
// Like SignIn, the repository calls run without the mutex.
func (m *Manager) SignUp(reg models.Registration) (Snapshot, error) {
	m.mu.Lock()
	if err := ValidateRegistration(reg); err != nil {
		snap := m.snapshotLocked()
		m.mu.Unlock()
		return snap, err
	}
	m.transitionLocked(Authenticating, "", nil)
	epoch := m.epoch
	m.mu.Unlock()

	account := &models.Account{
		ID:    uuid.New().String(),
		Email: reg.Email,
	}
	if err := m.Accounts.Create(account, reg.Password); err != nil {
		utils.GetLogger().Error("SignUp: failed to create account", zap.Error(err))
		return m.complete(epoch, AuthFailed, "", nil), NetworkError{Err: err}
	}

	profile := &models.Profile{
		AccountID:    account.ID,
		FullName:     reg.FullName,
		Role:         reg.Role,
		CompanyName:  reg.CompanyName,
		IECCode:      reg.IECCode,
		Country:      reg.Country,
		PhoneNumber:  reg.PhoneNumber,
		BusinessType: reg.BusinessType,
		IsApproved:   false,
		HSCodes:      dedupeHSCodes(reg.HSCodes),
		CreatedAt:    time.Now(),
	}
	if err := m.Profiles.Create(profile); err != nil {
		utils.GetLogger().Error("SignUp: failed to create profile", zap.Error(err))
		return m.complete(epoch, AuthFailed, "", nil), NetworkError{Err: err}
	}

	return m.complete(epoch, AuthenticatedPendingApproval, account.ID, profile), nil
}

// dedupeHSCodes keeps the tracked code set unique, preserving input order.
func dedupeHSCodes(codes []string) []string {
	seen := make(map[string]bool, len(codes))
	var out []string
	for _, c := range codes {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

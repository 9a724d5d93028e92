package access

import (
	"niryaat/models"
	"niryaat/services/session"
)

// Capability names a guarded surface of the platform. Capabilities map 1:1
// to route groups; gating a new surface means adding a table row, not a new
// conditional.
type Capability string

const (
	CapDashboard        Capability = "dashboard"
	CapProfile          Capability = "profile"
	CapNotifications    Capability = "notifications"
	CapMarketIntel      Capability = "market-intel"
	CapCountryRelations Capability = "country-relations"
	CapGovtBenefits     Capability = "govt-benefits"
	CapImporterRatings  Capability = "importer-ratings"
	CapAdmin            Capability = "admin"
)

// Redirect targets.
const (
	TargetLogin           = "/login"
	TargetPendingApproval = "/pending-approval"
	TargetDefaultHome     = "/dashboard"
)

// Decision is the outcome of a policy evaluation.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

// Allow is the decision that grants access.
var Allow = Decision{Allowed: true}

// RedirectTo builds a denial decision pointing at the given target.
func RedirectTo(target string) Decision {
	return Decision{RedirectTo: target}
}

// Rule is one row of the access policy table.
type Rule struct {
	RequiresApproval bool
	// AllowedRoles is the optional role allow-list; nil means any role.
	AllowedRoles []models.Role
}

// Policy is the static capability table, built at process start and never
// mutated at runtime.
type Policy struct {
	rules map[Capability]Rule
}

// NewPolicy builds a policy from explicit rules.
func NewPolicy(rules map[Capability]Rule) *Policy {
	copied := make(map[Capability]Rule, len(rules))
	for cap, rule := range rules {
		copied[cap] = rule
	}
	return &Policy{rules: copied}
}

// DefaultPolicy is the platform's capability table. Dashboard, profile and
// notifications are reachable while approval is pending; the intelligence
// surfaces require an approved profile; ratings and admin add role gates.
func DefaultPolicy() *Policy {
	return NewPolicy(map[Capability]Rule{
		CapDashboard:        {},
		CapProfile:          {},
		CapNotifications:    {},
		CapMarketIntel:      {RequiresApproval: true},
		CapCountryRelations: {RequiresApproval: true},
		CapGovtBenefits:     {RequiresApproval: true},
		CapImporterRatings:  {RequiresApproval: true, AllowedRoles: []models.Role{models.RoleExporter, models.RoleAdmin}},
		CapAdmin:            {RequiresApproval: true, AllowedRoles: []models.Role{models.RoleAdmin}},
	})
}

// Evaluate applies the decision table in fixed order; first match wins.
// Approval is checked before role on purpose: an unapproved admin lands on
// the pending screen, not a role denial.
func (p *Policy) Evaluate(snap session.Snapshot, cap Capability) Decision {
	if !snap.State.Authenticated() {
		return RedirectTo(TargetLogin)
	}
	if snap.Profile == nil {
		// Unreachable when the state machine is respected.
		return RedirectTo(TargetLogin)
	}

	rule := p.rules[cap]
	if rule.RequiresApproval && snap.State != session.AuthenticatedApproved {
		return RedirectTo(TargetPendingApproval)
	}
	if rule.AllowedRoles != nil && !roleAllowed(rule.AllowedRoles, snap.Profile.Role) {
		return RedirectTo(TargetDefaultHome)
	}
	return Allow
}

func roleAllowed(allowed []models.Role, role models.Role) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

package models

// Registration is the sign-up payload. Validation (required fields, IEC
// format, password rules) happens in the session service before any
// repository call.
type Registration struct {
	Email           string       `json:"email"`
	Password        string       `json:"password"`
	ConfirmPassword string       `json:"confirmPassword"`
	FullName        string       `json:"fullName"`
	Role            Role         `json:"role"`
	CompanyName     string       `json:"companyName"`
	IECCode         string       `json:"iecCode"`
	Country         string       `json:"country"`
	PhoneNumber     string       `json:"phoneNumber"`
	BusinessType    BusinessType `json:"businessType"`
	HSCodes         []string     `json:"hsCodes"`
}

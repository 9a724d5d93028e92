package models

import "time"

// Role identifies what side of a trade a profile operates on.
type Role string

const (
	RoleExporter Role = "exporter"
	RoleImporter Role = "importer"
	RoleAdmin    Role = "admin"
)

// BusinessType classifies the registered business.
type BusinessType string

const (
	BusinessMSME       BusinessType = "msme"
	BusinessStartup    BusinessType = "startup"
	BusinessEnterprise BusinessType = "enterprise"
)

// Profile holds the business attributes attached 1:1 to an Account.
// HSCodes is the set of Harmonized System codes the business tracks;
// duplicates are rejected at the repository.
type Profile struct {
	AccountID    string       `bson:"account_id" json:"accountId"`
	FullName     string       `bson:"full_name" json:"fullName"`
	Role         Role         `bson:"role" json:"role"`
	CompanyName  string       `bson:"company_name" json:"companyName"`
	IECCode      string       `bson:"iec_code" json:"iecCode"`
	Country      string       `bson:"country" json:"country"`
	PhoneNumber  string       `bson:"phone_number" json:"phoneNumber"`
	BusinessType BusinessType `bson:"business_type" json:"businessType"`
	IsApproved   bool         `bson:"is_approved" json:"isApproved"`
	HSCodes      []string     `bson:"hs_codes" json:"hsCodes"`
	CreatedAt    time.Time    `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time    `bson:"updated_at" json:"updatedAt"`
}

// ProfileUpdate carries the mutable profile fields. Nil pointers mean
// "leave unchanged".
type ProfileUpdate struct {
	FullName    *string `json:"fullName,omitempty"`
	CompanyName *string `json:"companyName,omitempty"`
	Country     *string `json:"country,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

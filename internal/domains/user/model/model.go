package model

import (
	gModel "github.com/ah01567/Bookini/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID              = "id"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldRole            = "role"
	FieldOrgIDs          = "org_ids"
	FieldDefaultCurrency = "default_currency"
	FieldKYCStatus       = "kyc_status"
	FieldGoogleID        = "google_id"
	FieldFullName        = "full_name"
	FieldPhone           = "phone"
	FieldProfileImage    = "profile_image"
	FieldIsVerified      = "is_verified"
	FieldLastLogin       = "last_login"
	FieldActive          = "active"
)

const (
	KYCStatusNone     = "none"
	KYCStatusPending  = "pending"
	KYCStatusVerified = "verified"
)

// User is a host or admin profile. Hosts can additionally manage the
// properties owned by any organization in OrgIDs.
type User struct {
	ID              string         `db:"id"`
	Email           string         `db:"email"`
	Password        string         `db:"password"`
	Role            string         `db:"role"`
	OrgIDs          pq.StringArray `db:"org_ids"`
	DefaultCurrency string         `db:"default_currency"`
	KYCStatus       string         `db:"kyc_status"`
	GoogleID        *string        `db:"google_id"`
	FullName        *string        `db:"full_name"`
	Phone           *string        `db:"phone"`
	ProfileImage    *string        `db:"profile_image"`
	IsVerified      bool           `db:"is_verified"`
	LastLogin       *string        `db:"last_login"`
	Active          bool           `db:"active"`
	gModel.Metadata
}

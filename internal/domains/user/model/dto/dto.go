package dto

import (
	"github.com/ah01567/Bookini/internal/domains/user/model"
	"github.com/ah01567/Bookini/shared"
	"github.com/ah01567/Bookini/shared/constant"
	gDto "github.com/ah01567/Bookini/shared/dto"
	gModel "github.com/ah01567/Bookini/shared/model"
	"github.com/ah01567/Bookini/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreateUserRequest struct {
	Email        string   `json:"email"    validate:"required,email"`
	Password     string   `json:"password" validate:"required,min=8"`
	Role         string   `json:"role"     validate:"omitempty,oneof=admin host"`
	FullName     *string  `json:"full_name,omitempty"`
	Phone        *string  `json:"phone,omitempty"`
	ProfileImage *string  `json:"profile_image,omitempty"`
	OrgIDs       []string `json:"org_ids,omitempty" validate:"omitempty,dive,uuid"`
}

// ToModel builds a profile with the registration defaults: hosts on the
// platform currency with no verification yet.
func (r *CreateUserRequest) ToModel(username, hashedPassword string) model.User {
	role := r.Role
	if role == constant.Empty {
		role = constant.RoleHost
	}

	return model.User{
		ID:              uuid.NewString(),
		Email:           r.Email,
		Password:        hashedPassword,
		Role:            role,
		OrgIDs:          pq.StringArray(r.OrgIDs),
		DefaultCurrency: constant.DefaultCurrency,
		KYCStatus:       model.KYCStatusNone,
		FullName:        r.FullName,
		Phone:           r.Phone,
		ProfileImage:    r.ProfileImage,
		Active:          true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type UserResponse struct {
	ID              string   `json:"id"`
	Email           string   `json:"email"`
	Role            string   `json:"role"`
	OrgIDs          []string `json:"org_ids"`
	DefaultCurrency string   `json:"default_currency"`
	KYCStatus       string   `json:"kyc_status"`
	FullName        *string  `json:"full_name,omitempty"`
	Phone           *string  `json:"phone,omitempty"`
	ProfileImage    *string  `json:"profile_image,omitempty"`
	IsVerified      bool     `json:"is_verified"`
	LastLogin       *string  `json:"last_login,omitempty"`
	Active          bool     `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(mod model.User) {
	r.ID = mod.ID
	r.Email = mod.Email
	r.Role = mod.Role
	r.OrgIDs = mod.OrgIDs
	r.DefaultCurrency = mod.DefaultCurrency
	r.KYCStatus = mod.KYCStatus
	r.FullName = mod.FullName
	r.Phone = mod.Phone
	r.ProfileImage = mod.ProfileImage
	r.IsVerified = mod.IsVerified
	r.LastLogin = mod.LastLogin
	r.Active = mod.Active
	r.Metadata.FromModel(mod.Metadata)
}

type UpdateUserRequest struct {
	Role         *string `db:"role"          json:"role,omitempty"       validate:"omitempty,oneof=admin host"`
	KYCStatus    *string `db:"kyc_status"    json:"kyc_status,omitempty" validate:"omitempty,oneof=none pending verified"`
	FullName     *string `db:"full_name"     json:"full_name,omitempty"`
	Phone        *string `db:"phone"         json:"phone,omitempty"`
	ProfileImage *string `db:"profile_image" json:"profile_image,omitempty"`
	IsVerified   *bool   `db:"is_verified"   json:"is_verified,omitempty"`
	Active       *bool   `db:"active"        json:"active,omitempty"`
}

type UpdateProfileRequest struct {
	FullName        *string `db:"full_name"        json:"full_name,omitempty"`
	Phone           *string `db:"phone"            json:"phone,omitempty"`
	ProfileImage    *string `db:"profile_image"    json:"profile_image,omitempty"`
	DefaultCurrency *string `db:"default_currency" json:"default_currency,omitempty" validate:"omitempty,len=3"`
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}

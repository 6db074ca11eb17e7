package users_models

import "github.com/google/uuid"

type UsersSettings struct {
	ID uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	// any user can register via the sign up form without being invited first
	IsAllowExternalRegistrations bool `json:"isAllowExternalRegistrations"   gorm:"column:is_allow_external_registrations"`
	// any user with role MEMBER can create their own artists
	IsMemberAllowedToCreateArtists bool `json:"isMemberAllowedToCreateArtists" gorm:"column:is_member_allowed_to_create_artists"`
}

func (UsersSettings) TableName() string {
	return "users_settings"
}

package users_testing

import (
	users_repositories "marca/internal/features/users/repositories"
)

func EnableExternalRegistrations() {
	updateUsersSetting("is_allow_external_registrations", true)
}

func DisableExternalRegistrations() {
	updateUsersSetting("is_allow_external_registrations", false)
}

func EnableMemberArtistCreation() {
	updateUsersSetting("is_member_allowed_to_create_artists", true)
}

func DisableMemberArtistCreation() {
	updateUsersSetting("is_member_allowed_to_create_artists", false)
}

func ResetSettingsToDefaults() {
	repository := &users_repositories.UsersSettingsRepository{}
	settings, err := repository.GetSettings()
	if err != nil {
		panic(err)
	}

	settings.IsAllowExternalRegistrations = true
	settings.IsMemberAllowedToCreateArtists = true

	err = repository.UpdateSettings(settings)
	if err != nil {
		panic(err)
	}
}

func updateUsersSetting(column string, value bool) {
	repository := &users_repositories.UsersSettingsRepository{}
	settings, err := repository.GetSettings()
	if err != nil {
		panic(err)
	}

	switch column {
	case "is_allow_external_registrations":
		settings.IsAllowExternalRegistrations = value
	case "is_member_allowed_to_create_artists":
		settings.IsMemberAllowedToCreateArtists = value
	}

	err = repository.UpdateSettings(settings)
	if err != nil {
		panic(err)
	}
}

package artists_controllers

import (
	artists_services "marca/internal/features/artists/services"
)

var artistController = &ArtistController{
	artists_services.GetArtistService(),
}

var membershipController = &MembershipController{
	artists_services.GetMembershipService(),
}

func GetArtistController() *ArtistController {
	return artistController
}

func GetMembershipController() *MembershipController {
	return membershipController
}

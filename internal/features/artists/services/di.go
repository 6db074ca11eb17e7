package artists_services

import (
	"marca/internal/cache"
	artists_interfaces "marca/internal/features/artists/interfaces"
	artists_models "marca/internal/features/artists/models"
	artists_repositories "marca/internal/features/artists/repositories"
	"marca/internal/features/audit_logs"
	"marca/internal/features/permissions"
	users_services "marca/internal/features/users/services"
	cache_utils "marca/internal/util/cache"

	"golang.org/x/sync/singleflight"
)

var artistRepository = &artists_repositories.ArtistRepository{}
var membershipRepository = artists_repositories.GetMembershipRepository()

var artistService = &ArtistService{
	artistRepository,
	membershipRepository,
	users_services.GetUserService(),
	audit_logs.GetAuditLogService(),
	users_services.GetSettingsService(),
	permissions.GetPermissionService(),
	[]artists_interfaces.ArtistDeletionListener{},
	cache_utils.NewCacheUtil[artists_models.Artist](cache.GetCache(), "marca_artist:"),
	singleflight.Group{},
}

var membershipService = &MembershipService{
	membershipRepository,
	artistRepository,
	users_services.GetUserService(),
	audit_logs.GetAuditLogService(),
	artistService,
	permissions.GetPermissionService(),
	nil,
}

func GetArtistService() *ArtistService {
	return artistService
}

func GetMembershipService() *MembershipService {
	return membershipService
}

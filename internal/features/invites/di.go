package invites

import (
	artists_services "marca/internal/features/artists/services"
	"marca/internal/features/audit_logs"
	users_services "marca/internal/features/users/services"
	rate_limit "marca/internal/util/rate_limit"
)

var inviteRepository = &InviteRepository{}

var inviteService = &InviteService{
	inviteRepository:  inviteRepository,
	userService:       users_services.GetUserService(),
	artistService:     artists_services.GetArtistService(),
	membershipService: artists_services.GetMembershipService(),
	auditLogService:   audit_logs.GetAuditLogService(),
	rateLimiter:       rate_limit.NewRateLimiter(),
}

var inviteController = &InviteController{
	inviteService: inviteService,
}

func GetInviteService() *InviteService {
	return inviteService
}

func GetInviteController() *InviteController {
	return inviteController
}

func SetupDependencies() {
	artists_services.GetArtistService().AddArtistDeletionListener(inviteService)
}

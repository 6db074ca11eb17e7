package notifications

import (
	"marca/internal/cache"
	artists_services "marca/internal/features/artists/services"
	"marca/internal/features/invites"
	"marca/internal/features/push"
	users_services "marca/internal/features/users/services"
	"marca/internal/util/logger"
)

var notificationRepository = &NotificationRepository{}

var realtimePublisher = &RealtimePublisher{
	client: cache.GetCache(),
	logger: logger.GetLogger(),
}

var notificationService = &NotificationService{
	notificationRepository: notificationRepository,
	realtimePublisher:      realtimePublisher,
	artistService:          artists_services.GetArtistService(),
	userService:            users_services.GetUserService(),
	pushService:            push.GetPushService(),
	logger:                 logger.GetLogger(),
}

var notificationController = &NotificationController{
	notificationService: notificationService,
}

func GetNotificationService() *NotificationService {
	return notificationService
}

func GetNotificationController() *NotificationController {
	return notificationController
}

func SetupDependencies() {
	artists_services.GetMembershipService().SetMembershipNotifier(notificationService)
	invites.GetInviteService().SetInviteNotifier(notificationService)
	artists_services.GetArtistService().AddArtistDeletionListener(notificationService)
}

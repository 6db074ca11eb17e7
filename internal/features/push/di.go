package push

import (
	"net/http"

	cache_utils "marca/internal/util/cache"
	"marca/internal/util/logger"
)

var deviceTokenRepository = &DeviceTokenRepository{}

var pushService = &PushService{
	deviceTokenRepository: deviceTokenRepository,
	queueService:          cache_utils.NewValkeyQueueService(),
	logger:                logger.GetLogger(),
}

var pushWorkerService = &PushWorkerService{
	deviceTokenRepository: deviceTokenRepository,
	queueService:          cache_utils.NewValkeyQueueService(),
	httpClient:            &http.Client{},
	logger:                logger.GetLogger(),
}

var pushController = &PushController{
	pushService: pushService,
}

func GetPushService() *PushService {
	return pushService
}

func GetPushWorkerService() *PushWorkerService {
	return pushWorkerService
}

func GetPushController() *PushController {
	return pushController
}

package permissions

import (
	"marca/internal/cache"
	artists_repositories "marca/internal/features/artists/repositories"
	cache_utils "marca/internal/util/cache"
	"marca/internal/util/logger"
)

var permissionService = &PermissionService{
	roleSource:    artists_repositories.GetMembershipRepository(),
	snapshotCache: cache_utils.NewCacheUtil[PermissionSnapshot](cache.GetCache(), "marca_perm:"),
	logger:        logger.GetLogger(),
}

func GetPermissionService() *PermissionService {
	return permissionService
}

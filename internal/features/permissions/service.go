package permissions

import (
	"fmt"
	"log/slog"

	users_enums "marca/internal/features/users/enums"
	cache_utils "marca/internal/util/cache"

	"github.com/google/uuid"
)

// RoleSource resolves a user's role within an artist from the authoritative
// store. Returns nil when no membership row exists.
type RoleSource interface {
	GetUserArtistRole(artistID, userID uuid.UUID) (*users_enums.ArtistRole, error)
}

// PermissionService evaluates per-artist permissions. Snapshots are cached
// in Valkey keyed by (user, artist); every membership mutation must call
// Invalidate for the affected pair before its result can be trusted.
//
// Policy is fail-closed: no membership row means no access. Platform ADMIN
// bypasses live in calling services as explicit checks against the user's
// platform role, never as a default applied to an absent snapshot.
type PermissionService struct {
	roleSource    RoleSource
	snapshotCache *cache_utils.CacheUtil[PermissionSnapshot]
	logger        *slog.Logger
}

func snapshotKey(userID, artistID uuid.UUID) string {
	return userID.String() + ":" + artistID.String()
}

// Resolve returns the permission snapshot for (user, artist), or nil when
// the user has no membership there.
func (s *PermissionService) Resolve(userID, artistID uuid.UUID) (*PermissionSnapshot, error) {
	key := snapshotKey(userID, artistID)

	if cached := s.snapshotCache.Get(key); cached != nil {
		return cached, nil
	}

	role, err := s.roleSource.GetUserArtistRole(artistID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve role: %w", err)
	}

	if role == nil {
		return nil, nil
	}

	snapshot := &PermissionSnapshot{
		UserID:       userID,
		ArtistID:     artistID,
		Role:         *role,
		Capabilities: CapabilitiesOf(*role),
	}

	s.snapshotCache.Set(key, snapshot)

	return snapshot, nil
}

// Invalidate drops the cached snapshot for (user, artist). Invalidating a
// pair that was never cached is a no-op.
func (s *PermissionService) Invalidate(userID, artistID uuid.UUID) {
	s.snapshotCache.Invalidate(snapshotKey(userID, artistID))
}

// Check reports whether the user holds the capability within the artist.
// Lookup failures and absent memberships both deny.
func (s *PermissionService) Check(userID, artistID uuid.UUID, capability Capability) bool {
	snapshot, err := s.Resolve(userID, artistID)
	if err != nil {
		s.logger.Error("permission check failed, denying",
			slog.String("userId", userID.String()),
			slog.String("artistId", artistID.String()),
			slog.String("error", err.Error()))
		return false
	}

	if snapshot == nil {
		return false
	}

	return snapshot.Capabilities.Has(capability)
}

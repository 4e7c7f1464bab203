package constants

import "time"

// Cache key prefixes. CacheBuilder.WithHash adds the colon.
const (
	UserCachePrefix = "user"
	UserCacheExpiry = 24 * time.Hour

	HopRoomFloor   = "room_floor"
	HopFloorHouse  = "floor_house"
	HopHouseOwner  = "house_owner"
	HopUtilityRoom = "utility_room"

	// OwnershipCacheExpiry bounds how long a moved room can resolve to its
	// old floor if an invalidation is lost.
	OwnershipCacheExpiry = 1 * time.Hour
)

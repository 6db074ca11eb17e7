package events

import (
	artists_services "marca/internal/features/artists/services"
	"marca/internal/features/permissions"
)

var (
	eventRepository   = &EventRepository{}
	expenseRepository = &ExpenseRepository{}

	eventService = &EventService{
		eventRepository:   eventRepository,
		expenseRepository: expenseRepository,
		permissionService: permissions.GetPermissionService(),
	}

	eventController = &EventController{
		eventService: eventService,
	}
)

func GetEventService() *EventService {
	return eventService
}

func GetEventController() *EventController {
	return eventController
}

// SetupDependencies registers cross-feature hooks that cannot be wired in
// package variable initialization without import cycles.
func SetupDependencies() {
	artists_services.GetArtistService().AddArtistDeletionListener(eventService)
}

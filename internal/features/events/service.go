package events

import (
	"fmt"
	"time"

	artists_services "marca/internal/features/artists/services"
	"marca/internal/features/permissions"
	users_enums "marca/internal/features/users/enums"
	users_models "marca/internal/features/users/models"
	time_utils "marca/internal/util/time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type EventService struct {
	eventRepository   *EventRepository
	expenseRepository *ExpenseRepository
	permissionService *permissions.PermissionService
}

const summaryConcurrency = 8

func (s *EventService) CreateEvent(
	artistID uuid.UUID,
	request *CreateEventRequestDTO,
	user *users_models.User,
) (*EventResponseDTO, error) {
	if !s.hasCapability(user, artistID, permissions.CapCreateEvents) {
		return nil, artists_services.ErrForbidden
	}

	event := &Event{
		ID:         uuid.New(),
		ArtistID:   artistID,
		Title:      request.Title,
		Venue:      request.Venue,
		EventDate:  time_utils.ParseTimestamp(request.Date),
		ValueCents: request.ValueCents,
		Notes:      request.Notes,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.eventRepository.CreateEvent(event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return s.sanitizeEvent(event, user), nil
}

func (s *EventService) GetEvent(eventID uuid.UUID, user *users_models.User) (*EventResponseDTO, error) {
	event, err := s.eventRepository.GetEventByID(eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	if event == nil {
		return nil, ErrEventNotFound
	}

	if !s.hasCapability(user, event.ArtistID, permissions.CapViewEvents) {
		return nil, artists_services.ErrForbidden
	}

	return s.sanitizeEvent(event, user), nil
}

func (s *EventService) ListEvents(
	artistID uuid.UUID,
	user *users_models.User,
) (*ListEventsResponseDTO, error) {
	if !s.hasCapability(user, artistID, permissions.CapViewEvents) {
		return nil, artists_services.ErrForbidden
	}

	events, err := s.eventRepository.GetEventsByArtist(artistID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	response := &ListEventsResponseDTO{
		Events: make([]*EventResponseDTO, len(events)),
	}

	for i, event := range events {
		response.Events[i] = s.sanitizeEvent(event, user)
	}

	return response, nil
}

func (s *EventService) UpdateEvent(
	eventID uuid.UUID,
	request *UpdateEventRequestDTO,
	user *users_models.User,
) (*EventResponseDTO, error) {
	event, err := s.eventRepository.GetEventByID(eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	if event == nil {
		return nil, ErrEventNotFound
	}

	if !s.hasCapability(user, event.ArtistID, permissions.CapEditEvents) {
		return nil, artists_services.ErrForbidden
	}

	event.Title = request.Title
	event.Venue = request.Venue
	event.EventDate = time_utils.ParseTimestamp(request.Date)
	event.ValueCents = request.ValueCents
	event.Notes = request.Notes

	if err := s.eventRepository.UpdateEvent(event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return s.sanitizeEvent(event, user), nil
}

func (s *EventService) DeleteEvent(eventID uuid.UUID, user *users_models.User) error {
	event, err := s.eventRepository.GetEventByID(eventID)
	if err != nil {
		return fmt.Errorf("failed to get event: %w", err)
	}

	if event == nil {
		return ErrEventNotFound
	}

	if !s.hasCapability(user, event.ArtistID, permissions.CapDeleteEvents) {
		return artists_services.ErrForbidden
	}

	if err := s.eventRepository.DeleteEvent(eventID); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	return nil
}

func (s *EventService) AddExpense(
	eventID uuid.UUID,
	request *CreateExpenseRequestDTO,
	user *users_models.User,
) (*Expense, error) {
	event, err := s.eventRepository.GetEventByID(eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	if event == nil {
		return nil, ErrEventNotFound
	}

	if !s.hasCapability(user, event.ArtistID, permissions.CapEditEvents) {
		return nil, artists_services.ErrForbidden
	}

	expense := &Expense{
		ID:          uuid.New(),
		EventID:     eventID,
		Description: request.Description,
		AmountCents: request.AmountCents,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.expenseRepository.CreateExpense(expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return expense, nil
}

func (s *EventService) ListExpenses(
	eventID uuid.UUID,
	user *users_models.User,
) (*ListExpensesResponseDTO, error) {
	event, err := s.eventRepository.GetEventByID(eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	if event == nil {
		return nil, ErrEventNotFound
	}

	// Expense lines are financial data, viewers never see them
	if !s.hasCapability(user, event.ArtistID, permissions.CapViewFinancials) {
		return nil, artists_services.ErrForbidden
	}

	expenses, err := s.expenseRepository.GetExpensesByEvent(eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	return &ListExpensesResponseDTO{Expenses: expenses}, nil
}

func (s *EventService) DeleteExpense(expenseID uuid.UUID, user *users_models.User) error {
	expense, err := s.expenseRepository.GetExpenseByID(expenseID)
	if err != nil {
		return fmt.Errorf("failed to get expense: %w", err)
	}

	if expense == nil {
		return ErrExpenseNotFound
	}

	event, err := s.eventRepository.GetEventByID(expense.EventID)
	if err != nil {
		return fmt.Errorf("failed to get event: %w", err)
	}

	if event == nil {
		return ErrExpenseNotFound
	}

	if !s.hasCapability(user, event.ArtistID, permissions.CapEditEvents) {
		return artists_services.ErrForbidden
	}

	if err := s.expenseRepository.DeleteExpense(expenseID); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	return nil
}

// GetFinancialSummary aggregates event values and expense totals across the
// artist's events, fanning the per-event expense sums out concurrently.
func (s *EventService) GetFinancialSummary(
	artistID uuid.UUID,
	user *users_models.User,
) (*FinancialSummaryResponseDTO, error) {
	if !s.hasCapability(user, artistID, permissions.CapViewFinancials) {
		return nil, artists_services.ErrForbidden
	}

	events, err := s.eventRepository.GetEventsByArtist(artistID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	summaries := make([]*EventFinancialsDTO, len(events))

	var group errgroup.Group
	group.SetLimit(summaryConcurrency)

	for i, event := range events {
		group.Go(func() error {
			expensesCents, err := s.expenseRepository.SumExpensesByEvent(event.ID)
			if err != nil {
				return fmt.Errorf("failed to sum expenses for event %s: %w", event.ID, err)
			}

			var valueCents int64
			if event.ValueCents != nil {
				valueCents = *event.ValueCents
			}

			summaries[i] = &EventFinancialsDTO{
				EventID:       event.ID,
				Title:         event.Title,
				ValueCents:    valueCents,
				ExpensesCents: expensesCents,
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	response := &FinancialSummaryResponseDTO{
		ArtistID: artistID,
		Events:   summaries,
	}

	for _, summary := range summaries {
		response.TotalValueCents += summary.ValueCents
		response.TotalExpensesCents += summary.ExpensesCents
	}

	response.NetCents = response.TotalValueCents - response.TotalExpensesCents

	return response, nil
}

// OnBeforeArtistDeletion drops the artist's events and their expenses.
func (s *EventService) OnBeforeArtistDeletion(artistID uuid.UUID) error {
	return s.eventRepository.DeleteEventsByArtist(artistID)
}

func (s *EventService) hasCapability(
	user *users_models.User,
	artistID uuid.UUID,
	capability permissions.Capability,
) bool {
	if user.Role == users_enums.UserRoleAdmin {
		return true
	}

	return s.permissionService.Check(user.ID, artistID, capability)
}

func (s *EventService) sanitizeEvent(event *Event, user *users_models.User) *EventResponseDTO {
	response := &EventResponseDTO{
		ID:        event.ID,
		ArtistID:  event.ArtistID,
		Title:     event.Title,
		Venue:     event.Venue,
		EventDate: event.EventDate,
		Notes:     event.Notes,
		CreatedAt: event.CreatedAt,
	}

	if s.hasCapability(user, event.ArtistID, permissions.CapViewFinancials) {
		response.ValueCents = event.ValueCents
	}

	return response
}

package events

import (
	"errors"
	"net/http"

	artists_services "marca/internal/features/artists/services"
	users_models "marca/internal/features/users/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EventController struct {
	eventService *EventService
}

func (c *EventController) RegisterRoutes(router *gin.RouterGroup) {
	events := router.Group("/events")

	events.POST("/artists/:artistId", c.CreateEvent)
	events.GET("/artists/:artistId", c.ListEvents)
	events.GET("/artists/:artistId/financial-summary", c.GetFinancialSummary)
	events.GET("/:id", c.GetEvent)
	events.PUT("/:id", c.UpdateEvent)
	events.DELETE("/:id", c.DeleteEvent)
	events.POST("/:id/expenses", c.AddExpense)
	events.GET("/:id/expenses", c.ListExpenses)
	events.DELETE("/expenses/:expenseId", c.DeleteExpense)
}

// CreateEvent
// @Summary Create event
// @Description Create a new event for an artist
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param artistId path string true "Artist ID"
// @Param request body CreateEventRequestDTO true "Event creation request"
// @Success 201 {object} EventResponseDTO
// @Failure 400 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /events/artists/{artistId} [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	artistID, err := uuid.Parse(ctx.Param("artistId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid artist ID format"})
		return
	}

	var request CreateEventRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := c.eventService.CreateEvent(artistID, &request, user.(*users_models.User))
	if err != nil {
		respondWithEventError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, event)
}

// ListEvents
// @Summary List events
// @Description Get all events for an artist
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param artistId path string true "Artist ID"
// @Success 200 {object} ListEventsResponseDTO
// @Failure 403 {object} map[string]interface{}
// @Router /events/artists/{artistId} [get]
func (c *EventController) ListEvents(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	artistID, err := uuid.Parse(ctx.Param("artistId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid artist ID format"})
		return
	}

	response, err := c.eventService.ListEvents(artistID, user.(*users_models.User))
	if err != nil {
		respondWithEventError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetEvent
// @Summary Get event
// @Description Get a single event by ID
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} EventResponseDTO
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /events/{id} [get]
func (c *EventController) GetEvent(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID format"})
		return
	}

	event, err := c.eventService.GetEvent(eventID, user.(*users_models.User))
	if err != nil {
		respondWithEventError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// UpdateEvent
// @Summary Update event
// @Description Update an event's details
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body UpdateEventRequestDTO true "Event update request"
// @Success 200 {object} EventResponseDTO
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /events/{id} [put]
func (c *EventController) UpdateEvent(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID format"})
		return
	}

	var request UpdateEventRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := c.eventService.UpdateEvent(eventID, &request, user.(*users_models.User))
	if err != nil {
		respondWithEventError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// DeleteEvent
// @Summary Delete event
// @Description Delete an event and its expenses
// @Tags events
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID format"})
		return
	}

	if err := c.eventService.DeleteEvent(eventID, user.(*users_models.User)); err != nil {
		respondWithEventError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AddExpense
// @Summary Add expense
// @Description Record an expense against an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body CreateExpenseRequestDTO true "Expense creation request"
// @Success 201 {object} Expense
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /events/{id}/expenses [post]
func (c *EventController) AddExpense(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID format"})
		return
	}

	var request CreateExpenseRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expense, err := c.eventService.AddExpense(eventID, &request, user.(*users_models.User))
	if err != nil {
		respondWithEventError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, expense)
}

// ListExpenses
// @Summary List expenses
// @Description Get all expenses for an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} ListExpensesResponseDTO
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /events/{id}/expenses [get]
func (c *EventController) ListExpenses(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID format"})
		return
	}

	response, err := c.eventService.ListExpenses(eventID, user.(*users_models.User))
	if err != nil {
		respondWithEventError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// DeleteExpense
// @Summary Delete expense
// @Description Remove an expense from an event
// @Tags events
// @Security BearerAuth
// @Param expenseId path string true "Expense ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /events/expenses/{expenseId} [delete]
func (c *EventController) DeleteExpense(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	expenseID, err := uuid.Parse(ctx.Param("expenseId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid expense ID format"})
		return
	}

	if err := c.eventService.DeleteExpense(expenseID, user.(*users_models.User)); err != nil {
		respondWithEventError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetFinancialSummary
// @Summary Financial summary
// @Description Aggregate event values and expenses for an artist
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param artistId path string true "Artist ID"
// @Success 200 {object} FinancialSummaryResponseDTO
// @Failure 403 {object} map[string]interface{}
// @Router /events/artists/{artistId}/financial-summary [get]
func (c *EventController) GetFinancialSummary(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	artistID, err := uuid.Parse(ctx.Param("artistId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid artist ID format"})
		return
	}

	response, err := c.eventService.GetFinancialSummary(artistID, user.(*users_models.User))
	if err != nil {
		respondWithEventError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func respondWithEventError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, artists_services.ErrForbidden):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, ErrEventNotFound), errors.Is(err, ErrExpenseNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

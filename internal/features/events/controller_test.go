package events

import (
	"net/http"
	"testing"

	artists_controllers "marca/internal/features/artists/controllers"
	artists_testing "marca/internal/features/artists/testing"
	users_enums "marca/internal/features/users/enums"
	users_testing "marca/internal/features/users/testing"
	test_utils "marca/internal/util/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func valueCents(v int64) *int64 {
	return &v
}

// CreateEvent Tests

func Test_CreateEvent_WhenUserIsEditor_EventCreated(t *testing.T) {
	router := artists_testing.CreateTestRouter(
		artists_controllers.GetArtistController(),
		artists_controllers.GetMembershipController(),
		GetEventController(),
	)
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	editor := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, _ := artists_testing.CreateTestArtistViaAPI("Gig Band", owner, router)
	artists_testing.AddMemberToArtistViaOwner(artist, editor, users_enums.ArtistRoleEditor, router)

	request := CreateEventRequestDTO{
		Title:      "Album Release Show",
		Venue:      "The Basement",
		Date:       "2026-09-12T20:00:00Z",
		ValueCents: valueCents(150000),
		Notes:      "load-in at 18:00",
	}

	var event EventResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/events/artists/"+artist.ID.String(),
		"Bearer "+editor.Token,
		request,
		http.StatusCreated,
		&event,
	)

	assert.Equal(t, "Album Release Show", event.Title)
	assert.Equal(t, artist.ID, event.ArtistID)
	require.NotNil(t, event.ValueCents)
	assert.Equal(t, int64(150000), *event.ValueCents)
}

func Test_CreateEvent_WhenUserIsViewer_ReturnsForbidden(t *testing.T) {
	router := artists_testing.CreateTestRouter(
		artists_controllers.GetArtistController(),
		artists_controllers.GetMembershipController(),
		GetEventController(),
	)
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	viewer := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, _ := artists_testing.CreateTestArtistViaAPI("Gig Band", owner, router)
	artists_testing.AddMemberToArtistViaOwner(artist, viewer, users_enums.ArtistRoleViewer, router)

	request := CreateEventRequestDTO{
		Title: "Unauthorized Show",
		Date:  "2026-09-12T20:00:00Z",
	}

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/events/artists/"+artist.ID.String(),
		"Bearer "+viewer.Token,
		request,
		http.StatusForbidden,
	)
}

func Test_CreateEvent_WhenUserIsNotMember_ReturnsForbidden(t *testing.T) {
	router := artists_testing.CreateTestRouter(
		artists_controllers.GetArtistController(),
		artists_controllers.GetMembershipController(),
		GetEventController(),
	)
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	stranger := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, _ := artists_testing.CreateTestArtistViaAPI("Gig Band", owner, router)

	request := CreateEventRequestDTO{
		Title: "Crashed Show",
		Date:  "2026-09-12T20:00:00Z",
	}

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/events/artists/"+artist.ID.String(),
		"Bearer "+stranger.Token,
		request,
		http.StatusForbidden,
	)
}

// ListEvents Tests

func Test_ListEvents_WhenUserIsViewer_ValueCentsHidden(t *testing.T) {
	router := artists_testing.CreateTestRouter(
		artists_controllers.GetArtistController(),
		artists_controllers.GetMembershipController(),
		GetEventController(),
	)
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	viewer := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, ownerToken := artists_testing.CreateTestArtistViaAPI("Gig Band", owner, router)
	artists_testing.AddMemberToArtistViaOwner(artist, viewer, users_enums.ArtistRoleViewer, router)

	request := CreateEventRequestDTO{
		Title:      "Paid Show",
		Date:       "2026-09-12T20:00:00Z",
		ValueCents: valueCents(90000),
	}
	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/events/artists/"+artist.ID.String(),
		"Bearer "+ownerToken,
		request,
		http.StatusCreated,
	)

	var response ListEventsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/events/artists/"+artist.ID.String(),
		"Bearer "+viewer.Token,
		http.StatusOK,
		&response,
	)

	require.Len(t, response.Events, 1)
	assert.Equal(t, "Paid Show", response.Events[0].Title)
	assert.Nil(t, response.Events[0].ValueCents)
}

func Test_ListEvents_WhenUserIsEditor_ValueCentsVisible(t *testing.T) {
	router := artists_testing.CreateTestRouter(
		artists_controllers.GetArtistController(),
		artists_controllers.GetMembershipController(),
		GetEventController(),
	)
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	editor := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, ownerToken := artists_testing.CreateTestArtistViaAPI("Gig Band", owner, router)
	artists_testing.AddMemberToArtistViaOwner(artist, editor, users_enums.ArtistRoleEditor, router)

	request := CreateEventRequestDTO{
		Title:      "Paid Show",
		Date:       "2026-09-12T20:00:00Z",
		ValueCents: valueCents(90000),
	}
	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/events/artists/"+artist.ID.String(),
		"Bearer "+ownerToken,
		request,
		http.StatusCreated,
	)

	var response ListEventsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/events/artists/"+artist.ID.String(),
		"Bearer "+editor.Token,
		http.StatusOK,
		&response,
	)

	require.Len(t, response.Events, 1)
	require.NotNil(t, response.Events[0].ValueCents)
	assert.Equal(t, int64(90000), *response.Events[0].ValueCents)
}

func Test_ListEvents_WhenUserIsNotMember_ReturnsForbidden(t *testing.T) {
	router := artists_testing.CreateTestRouter(
		artists_controllers.GetArtistController(),
		artists_controllers.GetMembershipController(),
		GetEventController(),
	)
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	stranger := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, _ := artists_testing.CreateTestArtistViaAPI("Gig Band", owner, router)

	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/events/artists/"+artist.ID.String(),
		"Bearer "+stranger.Token,
		http.StatusForbidden,
	)
}

// UpdateEvent Tests

func Test_UpdateEvent_WhenUserIsEditor_EventUpdated(t *testing.T) {
	router := artists_testing.CreateTestRouter(
		artists_controllers.GetArtistController(),
		artists_controllers.GetMembershipController(),
		GetEventController(),
	)
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	editor := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, ownerToken := artists_testing.CreateTestArtistViaAPI("Gig Band", owner, router)
	artists_testing.AddMemberToArtistViaOwner(artist, editor, users_enums.ArtistRoleEditor, router)

	var created EventResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/events/artists/"+artist.ID.String(),
		"Bearer "+ownerToken,
		CreateEventRequestDTO{Title: "Old Title", Date: "2026-09-12T20:00:00Z"},
		http.StatusCreated,
		&created,
	)

	update := UpdateEventRequestDTO{
		Title:      "New Title",
		Venue:      "Bigger Room",
		Date:       "2026-10-01T21:00:00Z",
		ValueCents: valueCents(200000),
	}

	var updated EventResponseDTO
	test_utils.MakePutRequestAndUnmarshal(
		t,
		router,
		"/api/v1/events/"+created.ID.String(),
		"Bearer "+editor.Token,
		update,
		http.StatusOK,
		&updated,
	)

	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, "Bigger Room", updated.Venue)
	require.NotNil(t, updated.ValueCents)
	assert.Equal(t, int64(200000), *updated.ValueCents)
}

func Test_UpdateEvent_WhenUserIsViewer_ReturnsForbidden(t *testing.T) {
	router := artists_testing.CreateTestRouter(
		artists_controllers.GetArtistController(),
		artists_controllers.GetMembershipController(),
		GetEventController(),
	)
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	viewer := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, ownerToken := artists_testing.CreateTestArtistViaAPI("Gig Band", owner, router)
	artists_testing.AddMemberToArtistViaOwner(artist, viewer, users_enums.ArtistRoleViewer, router)

	var created EventResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/events/artists/"+artist.ID.String(),
		"Bearer "+ownerToken,
		CreateEventRequestDTO{Title: "Locked Show", Date: "2026-09-12T20:00:00Z"},
		http.StatusCreated,
		&created,
	)

	test_utils.MakePutRequest(
		t,
		router,
		"/api/v1/events/"+created.ID.String(),
		"Bearer "+viewer.Token,
		UpdateEventRequestDTO{Title: "Hijacked Show", Date: "2026-09-12T20:00:00Z"},
		http.StatusForbidden,
	)
}

// DeleteEvent Tests

func Test_DeleteEvent_WhenUserIsEditor_EventAndExpensesRemoved(t *testing.T) {
	router := artists_testing.CreateTestRouter(
		artists_controllers.GetArtistController(),
		artists_controllers.GetMembershipController(),
		GetEventController(),
	)
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	editor := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, ownerToken := artists_testing.CreateTestArtistViaAPI("Gig Band", owner, router)
	artists_testing.AddMemberToArtistViaOwner(artist, editor, users_enums.ArtistRoleEditor, router)

	var created EventResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/events/artists/"+artist.ID.String(),
		"Bearer "+ownerToken,
		CreateEventRequestDTO{Title: "Doomed Show", Date: "2026-09-12T20:00:00Z"},
		http.StatusCreated,
		&created,
	)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/events/"+created.ID.String()+"/expenses",
		"Bearer "+editor.Token,
		CreateExpenseRequestDTO{Description: "van rental", AmountCents: 12000},
		http.StatusCreated,
	)

	test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/events/"+created.ID.String(),
		"Bearer "+editor.Token,
		http.StatusNoContent,
	)

	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/events/"+created.ID.String(),
		"Bearer "+editor.Token,
		http.StatusNotFound,
	)
}

// Expense Tests

func Test_AddExpense_WhenUserIsViewer_ReturnsForbidden(t *testing.T) {
	router := artists_testing.CreateTestRouter(
		artists_controllers.GetArtistController(),
		artists_controllers.GetMembershipController(),
		GetEventController(),
	)
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	viewer := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, ownerToken := artists_testing.CreateTestArtistViaAPI("Gig Band", owner, router)
	artists_testing.AddMemberToArtistViaOwner(artist, viewer, users_enums.ArtistRoleViewer, router)

	var created EventResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/events/artists/"+artist.ID.String(),
		"Bearer "+ownerToken,
		CreateEventRequestDTO{Title: "Costly Show", Date: "2026-09-12T20:00:00Z"},
		http.StatusCreated,
		&created,
	)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/events/"+created.ID.String()+"/expenses",
		"Bearer "+viewer.Token,
		CreateExpenseRequestDTO{Description: "merch table", AmountCents: 5000},
		http.StatusForbidden,
	)
}

func Test_ListExpenses_WhenUserIsViewer_ReturnsForbidden(t *testing.T) {
	router := artists_testing.CreateTestRouter(
		artists_controllers.GetArtistController(),
		artists_controllers.GetMembershipController(),
		GetEventController(),
	)
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	viewer := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, ownerToken := artists_testing.CreateTestArtistViaAPI("Gig Band", owner, router)
	artists_testing.AddMemberToArtistViaOwner(artist, viewer, users_enums.ArtistRoleViewer, router)

	var created EventResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/events/artists/"+artist.ID.String(),
		"Bearer "+ownerToken,
		CreateEventRequestDTO{Title: "Costly Show", Date: "2026-09-12T20:00:00Z"},
		http.StatusCreated,
		&created,
	)

	resp := test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/events/"+created.ID.String()+"/expenses",
		"Bearer "+viewer.Token,
		http.StatusForbidden,
	)
	assert.Contains(t, resp.Body.String(), "insufficient permissions")
}

func Test_ListExpenses_WhenUserIsEditor_ReturnsExpenses(t *testing.T) {
	router := artists_testing.CreateTestRouter(
		artists_controllers.GetArtistController(),
		artists_controllers.GetMembershipController(),
		GetEventController(),
	)
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	editor := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, ownerToken := artists_testing.CreateTestArtistViaAPI("Gig Band", owner, router)
	artists_testing.AddMemberToArtistViaOwner(artist, editor, users_enums.ArtistRoleEditor, router)

	var created EventResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/events/artists/"+artist.ID.String(),
		"Bearer "+ownerToken,
		CreateEventRequestDTO{Title: "Costly Show", Date: "2026-09-12T20:00:00Z"},
		http.StatusCreated,
		&created,
	)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/events/"+created.ID.String()+"/expenses",
		"Bearer "+editor.Token,
		CreateExpenseRequestDTO{Description: "sound engineer", AmountCents: 30000},
		http.StatusCreated,
	)

	var response ListExpensesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/events/"+created.ID.String()+"/expenses",
		"Bearer "+editor.Token,
		http.StatusOK,
		&response,
	)

	require.Len(t, response.Expenses, 1)
	assert.Equal(t, "sound engineer", response.Expenses[0].Description)
	assert.Equal(t, int64(30000), response.Expenses[0].AmountCents)
}

func Test_DeleteExpense_WhenUserIsEditor_ExpenseRemoved(t *testing.T) {
	router := artists_testing.CreateTestRouter(
		artists_controllers.GetArtistController(),
		artists_controllers.GetMembershipController(),
		GetEventController(),
	)
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, ownerToken := artists_testing.CreateTestArtistViaAPI("Gig Band", owner, router)

	var created EventResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/events/artists/"+artist.ID.String(),
		"Bearer "+ownerToken,
		CreateEventRequestDTO{Title: "Costly Show", Date: "2026-09-12T20:00:00Z"},
		http.StatusCreated,
		&created,
	)

	var expense Expense
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/events/"+created.ID.String()+"/expenses",
		"Bearer "+ownerToken,
		CreateExpenseRequestDTO{Description: "backline", AmountCents: 15000},
		http.StatusCreated,
		&expense,
	)

	test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/events/expenses/"+expense.ID.String(),
		"Bearer "+ownerToken,
		http.StatusNoContent,
	)

	var response ListExpensesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/events/"+created.ID.String()+"/expenses",
		"Bearer "+ownerToken,
		http.StatusOK,
		&response,
	)
	assert.Empty(t, response.Expenses)
}

// FinancialSummary Tests

func Test_GetFinancialSummary_AggregatesValuesAndExpenses(t *testing.T) {
	router := artists_testing.CreateTestRouter(
		artists_controllers.GetArtistController(),
		artists_controllers.GetMembershipController(),
		GetEventController(),
	)
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, ownerToken := artists_testing.CreateTestArtistViaAPI("Gig Band", owner, router)

	var first EventResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/events/artists/"+artist.ID.String(),
		"Bearer "+ownerToken,
		CreateEventRequestDTO{
			Title:      "First Show",
			Date:       "2026-09-12T20:00:00Z",
			ValueCents: valueCents(100000),
		},
		http.StatusCreated,
		&first,
	)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/events/artists/"+artist.ID.String(),
		"Bearer "+ownerToken,
		CreateEventRequestDTO{
			Title:      "Second Show",
			Date:       "2026-10-03T20:00:00Z",
			ValueCents: valueCents(50000),
		},
		http.StatusCreated,
	)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/events/"+first.ID.String()+"/expenses",
		"Bearer "+ownerToken,
		CreateExpenseRequestDTO{Description: "travel", AmountCents: 20000},
		http.StatusCreated,
	)
	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/events/"+first.ID.String()+"/expenses",
		"Bearer "+ownerToken,
		CreateExpenseRequestDTO{Description: "catering", AmountCents: 10000},
		http.StatusCreated,
	)

	var summary FinancialSummaryResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/events/artists/"+artist.ID.String()+"/financial-summary",
		"Bearer "+ownerToken,
		http.StatusOK,
		&summary,
	)

	assert.Equal(t, artist.ID, summary.ArtistID)
	assert.Equal(t, int64(150000), summary.TotalValueCents)
	assert.Equal(t, int64(30000), summary.TotalExpensesCents)
	assert.Equal(t, int64(120000), summary.NetCents)
	require.Len(t, summary.Events, 2)

	for _, eventFinancials := range summary.Events {
		if eventFinancials.EventID == first.ID {
			assert.Equal(t, int64(100000), eventFinancials.ValueCents)
			assert.Equal(t, int64(30000), eventFinancials.ExpensesCents)
		}
	}
}

func Test_GetFinancialSummary_WhenUserIsViewer_ReturnsForbidden(t *testing.T) {
	router := artists_testing.CreateTestRouter(
		artists_controllers.GetArtistController(),
		artists_controllers.GetMembershipController(),
		GetEventController(),
	)
	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	viewer := users_testing.CreateTestUser(users_enums.UserRoleMember)

	artist, _ := artists_testing.CreateTestArtistViaAPI("Gig Band", owner, router)
	artists_testing.AddMemberToArtistViaOwner(artist, viewer, users_enums.ArtistRoleViewer, router)

	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/events/artists/"+artist.ID.String()+"/financial-summary",
		"Bearer "+viewer.Token,
		http.StatusForbidden,
	)
}

func Test_GetEvent_WithInvalidID_ReturnsBadRequest(t *testing.T) {
	router := artists_testing.CreateTestRouter(
		artists_controllers.GetArtistController(),
		artists_controllers.GetMembershipController(),
		GetEventController(),
	)
	user := users_testing.CreateTestUser(users_enums.UserRoleMember)

	resp := test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/events/not-a-uuid",
		"Bearer "+user.Token,
		http.StatusBadRequest,
	)
	assert.Contains(t, resp.Body.String(), "invalid event ID format")
}

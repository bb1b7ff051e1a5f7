package store_test

import (
	"testing"

	"github.com/popoutlabs/popout-store/internal/models"
	"github.com/popoutlabs/popout-store/internal/store"
)

func eventIDs(events []models.Event) []int64 {
	ids := make([]int64, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	return ids
}

func assertIDs(t *testing.T, got []models.Event, want ...int64) {
	t.Helper()
	ids := eventIDs(got)
	if len(ids) != len(want) {
		t.Fatalf("expected events %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected events %v, got %v", want, ids)
		}
	}
}

func TestQueryEventsByCategory(t *testing.T) {
	s := openStore(t, setupTestDB(t))

	music := s.QueryEvents(store.EventFilter{Category: "music"})
	for _, e := range music {
		if e.Category != "music" {
			t.Errorf("category filter returned %q event %d", e.Category, e.ID)
		}
	}
	// Jazz Night (2024-07-03) sorts before Summer Music Festival (2024-07-15).
	assertIDs(t, music, 5, 1)
}

func TestQueryEventsSortAscendingByDate(t *testing.T) {
	s := openStore(t, setupTestDB(t))

	all := s.QueryEvents(store.EventFilter{})
	if len(all) != 8 {
		t.Fatalf("expected 8 events, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Date > all[i].Date {
			t.Fatalf("events not sorted ascending by date: %q before %q", all[i-1].Date, all[i].Date)
		}
	}
}

func TestQueryEventsSearch(t *testing.T) {
	s := openStore(t, setupTestDB(t))

	// "wine" appears in the Art Gallery Opening description and the
	// Food & Wine Festival title; matching is case-insensitive.
	for _, q := range []string{"wine", "WINE", "Wine"} {
		assertIDs(t, s.QueryEvents(store.EventFilter{Search: q}), 3, 7)
	}

	// Location matches too.
	assertIDs(t, s.QueryEvents(store.EventFilter{Search: "boston"}), 8)

	if got := s.QueryEvents(store.EventFilter{Search: "no such event"}); len(got) != 0 {
		t.Errorf("expected no matches, got %v", eventIDs(got))
	}
}

func TestQueryEventsSearchMatchesDescriptionOnly(t *testing.T) {
	db := setupTestDB(t)
	writeEvents(t, db, []models.Event{
		{ID: 1, Title: "Evening Downtown", Description: "A night of smooth Jazz downtown.", Location: "Chicago", Date: "2024-08-01"},
		{ID: 2, Title: "Rock Concert", Description: "Loud guitars.", Location: "Chicago", Date: "2024-08-02"},
	})
	s := openStore(t, db)

	assertIDs(t, s.QueryEvents(store.EventFilter{Search: "jazz"}), 1)
}

func TestQueryEventsCombinesFilters(t *testing.T) {
	s := openStore(t, setupTestDB(t))

	got := s.QueryEvents(store.EventFilter{Category: "sports", Search: "marathon"})
	assertIDs(t, got, 8)

	// AND semantics: right search, wrong category.
	if got := s.QueryEvents(store.EventFilter{Category: "music", Search: "marathon"}); len(got) != 0 {
		t.Errorf("expected no matches, got %v", eventIDs(got))
	}
}

// The clock is fixed at 2024-07-03; buckets are relative to it.
func TestQueryEventsDateBuckets(t *testing.T) {
	s := openStore(t, setupTestDB(t))

	assertIDs(t, s.QueryEvents(store.EventFilter{DateBucket: store.BucketToday}), 5)

	if got := s.QueryEvents(store.EventFilter{DateBucket: store.BucketTomorrow}); len(got) != 0 {
		t.Errorf("expected no events tomorrow, got %v", eventIDs(got))
	}

	// 2024-07-03 through 2024-07-10: Jazz Night then the basketball game.
	assertIDs(t, s.QueryEvents(store.EventFilter{DateBucket: store.BucketThisWeek}), 5, 4)

	// All of July, ascending.
	assertIDs(t, s.QueryEvents(store.EventFilter{DateBucket: store.BucketThisMonth}), 5, 4, 1)
}

func TestQueryFeatured(t *testing.T) {
	s := openStore(t, setupTestDB(t))

	// Featured events come back in collection order, unsorted.
	assertIDs(t, s.QueryFeatured(), 1, 2, 4, 7)
}

func TestQueryFeaturedCapsAtSix(t *testing.T) {
	db := setupTestDB(t)
	var events []models.Event
	for i := int64(1); i <= 8; i++ {
		events = append(events, models.Event{ID: i, Title: "E", Date: "2024-08-01", Capacity: 10, Featured: true})
	}
	writeEvents(t, db, events)
	s := openStore(t, db)

	assertIDs(t, s.QueryFeatured(), 1, 2, 3, 4, 5, 6)
}

func TestUserTickets(t *testing.T) {
	s := openStore(t, setupTestDB(t))
	ada, err := s.Signup("Ada", "ada@x.com", "secret1")
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if len(s.UserTickets(ada.ID)) != 0 {
		t.Error("new user should have no tickets")
	}

	if _, err := s.PurchaseTicket(ada.ID, 1, 1, validPayment()); err != nil {
		t.Fatalf("PurchaseTicket: %v", err)
	}
	tickets := s.UserTickets(ada.ID)
	if len(tickets) != 1 {
		t.Fatalf("expected 1 ticket, got %d", len(tickets))
	}
	if len(s.UserTickets(999)) != 0 {
		t.Error("other users should not see the ticket")
	}
}

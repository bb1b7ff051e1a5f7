package store_test

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/popoutlabs/popout-store/internal/models"
	"github.com/popoutlabs/popout-store/internal/store"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite substrate for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Collection{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

// testClock is an injectable clock. Every Now call advances it by one
// millisecond so timestamp-derived ids stay unique within a test.
type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func newTestClock(at string) *testClock {
	t, err := time.Parse("2006-01-02 15:04", at)
	if err != nil {
		panic(err)
	}
	return &testClock{t: t}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Millisecond)
	return c.t
}

// testNow is mid-2024, between the seed catalog's June and October dates.
const testNow = "2024-07-03 10:00"

func openStore(t *testing.T, db *gorm.DB) *store.Store {
	t.Helper()
	s, err := store.Open(db, store.Options{Now: newTestClock(testNow).Now})
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	return s
}

func TestLoadSeedsDemoCatalog(t *testing.T) {
	s := openStore(t, setupTestDB(t))

	events := s.QueryEvents(store.EventFilter{})
	if len(events) != 8 {
		t.Fatalf("expected 8 seeded events, got %d", len(events))
	}

	first, err := s.EventByID(1)
	if err != nil {
		t.Fatalf("EventByID(1): %v", err)
	}
	if first.Title != "Summer Music Festival" {
		t.Errorf("unexpected seed title: %q", first.Title)
	}
	if first.Sold != 3200 || first.Capacity != 5000 {
		t.Errorf("unexpected seed counts: sold=%d capacity=%d", first.Sold, first.Capacity)
	}
	if !first.Featured {
		t.Error("seed event 1 should be featured")
	}

	if _, ok := s.CurrentUser(); ok {
		t.Error("fresh store should have no current user")
	}
	if tickets := s.UserTickets(1); len(tickets) != 0 {
		t.Errorf("fresh store should have no tickets, got %d", len(tickets))
	}
}

func TestLoadIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	s := openStore(t, db)

	if _, err := s.Signup("Ada", "ada@x.com", "secret1"); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	// A second store over the same substrate re-reads; nothing re-seeds.
	s2 := openStore(t, db)
	if got := len(s2.QueryEvents(store.EventFilter{})); got != 8 {
		t.Fatalf("expected 8 events after reopen, got %d", got)
	}
	if _, err := s2.Login("ada@x.com", "secret1"); err != nil {
		t.Fatalf("user did not survive reopen: %v", err)
	}

	if err := s2.Load(); err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if got := len(s2.QueryEvents(store.EventFilter{})); got != 8 {
		t.Fatalf("expected 8 events after re-Load, got %d", got)
	}
}

func TestCurrentUserPersistsAcrossOpen(t *testing.T) {
	db := setupTestDB(t)
	s := openStore(t, db)

	if _, err := s.Signup("Ada", "ada@x.com", "secret1"); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	s2 := openStore(t, db)
	user, ok := s2.CurrentUser()
	if !ok {
		t.Fatal("current user should persist across opens")
	}
	if user.Email != "ada@x.com" {
		t.Errorf("unexpected current user: %q", user.Email)
	}

	if err := s2.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	s3 := openStore(t, db)
	if _, ok := s3.CurrentUser(); ok {
		t.Error("logout should clear the persisted pointer")
	}
	// The record itself survives logout.
	if _, err := s3.Login("ada@x.com", "secret1"); err != nil {
		t.Fatalf("user record should survive logout: %v", err)
	}
}

// writeEvents overwrites the events collection directly, bypassing the store,
// to exercise loading pre-existing data.
func writeEvents(t *testing.T, db *gorm.DB, events []models.Event) {
	t.Helper()
	data, err := json.Marshal(events)
	if err != nil {
		t.Fatalf("marshal events: %v", err)
	}
	row := models.Collection{Name: models.CollectionEvents}
	row.Data.JSON = data
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("write events collection: %v", err)
	}
}

func TestLoadPrefersExistingCollection(t *testing.T) {
	db := setupTestDB(t)
	writeEvents(t, db, []models.Event{
		{ID: 42, Title: "Existing", Category: "music", Date: "2024-08-01", Capacity: 10},
	})

	s := openStore(t, db)
	events := s.QueryEvents(store.EventFilter{})
	if len(events) != 1 || events[0].ID != 42 {
		t.Fatalf("expected the pre-existing collection, got %d events", len(events))
	}
}

func TestSaveOverwritesWholeCollections(t *testing.T) {
	db := setupTestDB(t)
	s := openStore(t, db)
	if _, err := s.Signup("Ada", "ada@x.com", "secret1"); err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	var row models.Collection
	if err := db.Where("name = ?", models.CollectionUsers).First(&row).Error; err != nil {
		t.Fatalf("users collection missing: %v", err)
	}
	var users []models.User
	if err := json.Unmarshal(row.Data.JSON, &users); err != nil {
		t.Fatalf("users collection not valid JSON: %v", err)
	}
	if len(users) != 1 || users[0].Email != "ada@x.com" {
		t.Fatalf("unexpected users document: %+v", users)
	}
}

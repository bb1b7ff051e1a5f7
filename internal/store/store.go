// Package store owns the users, events, tickets, and withdrawals collections
// and the current-user pointer, persisting each as a whole JSON document in
// the collections table. Every operation runs as a single synchronous
// critical section, so exactly one mutation is in flight at a time and no
// availability check can be evaluated against a stale snapshot.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/popoutlabs/popout-store/internal/models"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Options configures a Store. The zero value is usable: wall clock, no
// simulated processing delay, no logging.
type Options struct {
	// Now supplies the reference time for ids, date buckets, event-date and
	// card-expiry checks. Defaults to time.Now.
	Now func() time.Time

	// ProcessingDelay is slept inside the critical section of login, signup,
	// event creation, and purchase, reproducing the original UI's simulated
	// latency while keeping operations serialized.
	ProcessingDelay time.Duration

	// Sleep overrides time.Sleep, letting tests run a configured delay
	// synchronously.
	Sleep func(time.Duration)

	Logger *zerolog.Logger
}

// Store is the persistent event-ticketing store.
type Store struct {
	db    *gorm.DB
	log   zerolog.Logger
	now   func() time.Time
	delay time.Duration
	sleep func(time.Duration)

	mu          sync.Mutex
	users       []models.User
	events      []models.Event
	tickets     []models.Ticket
	withdrawals []models.Withdrawal
	currentUser *models.User
}

// Open constructs a Store over an opened substrate and loads all collections,
// seeding the demo catalog when the events collection is absent.
func Open(db *gorm.DB, opts Options) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}

	s := &Store{
		db:    db,
		now:   opts.Now,
		delay: opts.ProcessingDelay,
		sleep: opts.Sleep,
		log:   zerolog.Nop(),
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.sleep == nil {
		s.sleep = time.Sleep
	}
	if opts.Logger != nil {
		s.log = *opts.Logger
	}

	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads all collections from the substrate. Absent collections seed as
// empty, except events, which seeds the fixed demo catalog (persisted so a
// second Load sees it). Calling Load again with existing data only re-reads.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = nil
	s.events = nil
	s.tickets = nil
	s.withdrawals = nil

	if err := s.loadCollection(models.CollectionUsers, &s.users, nil); err != nil {
		return err
	}
	if err := s.loadCollection(models.CollectionTickets, &s.tickets, nil); err != nil {
		return err
	}
	if err := s.loadCollection(models.CollectionWithdrawals, &s.withdrawals, nil); err != nil {
		return err
	}

	seeded := false
	if err := s.loadCollection(models.CollectionEvents, &s.events, func() {
		s.events = seedEvents()
		seeded = true
	}); err != nil {
		return err
	}
	if seeded {
		if err := s.saveCollection(models.CollectionEvents, s.events); err != nil {
			return err
		}
		s.log.Info().Int("events", len(s.events)).Msg("seeded demo catalog")
	}

	s.currentUser = nil
	var current models.User
	found, err := s.readCollection(models.CollectionCurrentUser, &current)
	if err != nil {
		return err
	}
	if found {
		s.currentUser = &current
	}

	return nil
}

// Save serializes all collections back to the substrate as whole-document
// overwrites. There is no transaction across collections: a torn write
// between them is an accepted limitation.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveAll()
}

// CurrentUser returns a copy of the logged-in user, or false when nobody is.
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentUser == nil {
		return models.User{}, false
	}
	return *s.currentUser, true
}

// newID derives a record id from the wall clock in milliseconds. Unique only
// when no two records are created within the same millisecond in-process.
func (s *Store) newID() int64 {
	return s.now().UnixMilli()
}

// simulateProcessing holds the critical section for the configured delay.
func (s *Store) simulateProcessing() {
	if s.delay > 0 {
		s.sleep(s.delay)
	}
}

// readCollection unmarshals one substrate document into dest, reporting
// whether the key was present.
func (s *Store) readCollection(name string, dest any) (bool, error) {
	var row models.Collection
	err := s.db.Where("name = ?", name).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read collection %s: %w", name, err)
	}
	if err := json.Unmarshal(row.Data.JSON, dest); err != nil {
		return false, fmt.Errorf("decode collection %s: %w", name, err)
	}
	return true, nil
}

// loadCollection fills dest from the substrate, invoking seed (when non-nil)
// if the key is absent.
func (s *Store) loadCollection(name string, dest any, seed func()) error {
	found, err := s.readCollection(name, dest)
	if err != nil {
		return err
	}
	if !found && seed != nil {
		seed()
	}
	return nil
}

// saveCollection overwrites one substrate document.
func (s *Store) saveCollection(name string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", name, err)
	}
	row := models.Collection{Name: name}
	row.Data.JSON = data
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		UpdateAll: true,
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("save collection %s: %w", name, err)
	}
	return nil
}

// saveAll persists the four record collections. Callers hold the lock.
func (s *Store) saveAll() error {
	if err := s.saveCollection(models.CollectionUsers, s.users); err != nil {
		return err
	}
	if err := s.saveCollection(models.CollectionEvents, s.events); err != nil {
		return err
	}
	if err := s.saveCollection(models.CollectionTickets, s.tickets); err != nil {
		return err
	}
	return s.saveCollection(models.CollectionWithdrawals, s.withdrawals)
}

// saveCurrentUser persists only the current-user pointer: a single record
// under its own key, removed entirely on logout.
func (s *Store) saveCurrentUser() error {
	if s.currentUser == nil {
		err := s.db.Where("name = ?", models.CollectionCurrentUser).
			Delete(&models.Collection{}).Error
		if err != nil {
			return fmt.Errorf("clear current user: %w", err)
		}
		return nil
	}
	return s.saveCollection(models.CollectionCurrentUser, s.currentUser)
}

// findUser returns a pointer into the users collection. Callers hold the lock.
func (s *Store) findUser(id int64) *models.User {
	for i := range s.users {
		if s.users[i].ID == id {
			return &s.users[i]
		}
	}
	return nil
}

// findEvent returns a pointer into the events collection. Callers hold the lock.
func (s *Store) findEvent(id int64) *models.Event {
	for i := range s.events {
		if s.events[i].ID == id {
			return &s.events[i]
		}
	}
	return nil
}

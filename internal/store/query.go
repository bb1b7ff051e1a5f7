package store

import (
	"sort"
	"strings"
	"time"

	"github.com/popoutlabs/popout-store/internal/models"
)

// Date buckets recognized by EventFilter, evaluated against the store's clock.
const (
	BucketToday     = "today"
	BucketTomorrow  = "tomorrow"
	BucketThisWeek  = "this-week"
	BucketThisMonth = "this-month"
)

// EventFilter selects events. Every field is optional; an absent field
// matches all events for that dimension. Supplied fields are ANDed.
type EventFilter struct {
	// Category must match the event category exactly.
	Category string

	// Search is a case-insensitive substring matched against title,
	// description, or location.
	Search string

	// DateBucket is one of the Bucket constants.
	DateBucket string
}

const eventDateLayout = "2006-01-02"

// QueryEvents returns events matching the filter, stable-sorted ascending by
// date with ties kept in insertion order.
func (s *Store) QueryEvents(filter EventFilter) []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	search := strings.ToLower(filter.Search)
	now := s.now()

	var matched []models.Event
	for _, e := range s.events {
		if filter.Category != "" && e.Category != filter.Category {
			continue
		}
		if search != "" && !matchesSearch(&e, search) {
			continue
		}
		if filter.DateBucket != "" && !matchesBucket(e.Date, filter.DateBucket, now) {
			continue
		}
		matched = append(matched, e)
	}

	// ISO dates compare lexicographically in chronological order.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date < matched[j].Date
	})
	return matched
}

// QueryFeatured returns up to 6 featured events in collection order.
func (s *Store) QueryFeatured() []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	var featured []models.Event
	for _, e := range s.events {
		if e.Featured {
			featured = append(featured, e)
			if len(featured) == 6 {
				break
			}
		}
	}
	return featured
}

// EventByID returns a copy of the event, or ErrNotFound.
func (s *Store) EventByID(id int64) (models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e := s.findEvent(id); e != nil {
		return *e, nil
	}
	return models.Event{}, ErrNotFound
}

// UserTickets returns the tickets owned by a user, in purchase order.
func (s *Store) UserTickets(userID int64) []models.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	var owned []models.Ticket
	for _, t := range s.tickets {
		if t.UserID == userID {
			owned = append(owned, t)
		}
	}
	return owned
}

// UserWithdrawals returns a user's withdrawal requests, in request order.
func (s *Store) UserWithdrawals(userID int64) []models.Withdrawal {
	s.mu.Lock()
	defer s.mu.Unlock()

	var owned []models.Withdrawal
	for _, w := range s.withdrawals {
		if w.UserID == userID {
			owned = append(owned, w)
		}
	}
	return owned
}

func matchesSearch(e *models.Event, search string) bool {
	return strings.Contains(strings.ToLower(e.Title), search) ||
		strings.Contains(strings.ToLower(e.Description), search) ||
		strings.Contains(strings.ToLower(e.Location), search)
}

// matchesBucket compares calendar dates, not instants: an event later today
// is still "today" and "this-week" regardless of the time of day.
func matchesBucket(date, bucket string, now time.Time) bool {
	d, err := time.ParseInLocation(eventDateLayout, date, now.Location())
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch bucket {
	case BucketToday:
		return d.Equal(today)
	case BucketTomorrow:
		return d.Equal(today.AddDate(0, 0, 1))
	case BucketThisWeek:
		return !d.Before(today) && !d.After(today.AddDate(0, 0, 7))
	case BucketThisMonth:
		return d.Year() == now.Year() && d.Month() == now.Month()
	default:
		return true
	}
}

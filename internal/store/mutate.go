package store

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/popoutlabs/popout-store/internal/models"
	"github.com/popoutlabs/popout-store/pkg/validator"
	"github.com/shopspring/decimal"
)

const (
	eventDateTimeLayout = "2006-01-02 15:04"
	expiryLayout        = "01/06"

	// defaultEventImage backs events created without an image reference.
	defaultEventImage = "https://images.pexels.com/photos/1190298/pexels-photo-1190298.jpeg?auto=compress&cs=tinysrgb&w=800"
)

// CreateEvent validates the input and appends a new event with sold = 0 and
// featured = false, attributed to the current user (or "Anonymous").
//
// Required fields are checked in a fixed order — title, description,
// category, price, date, time, location, capacity — and the ValidationError
// names the first one missing. A zero price or capacity counts as missing.
// The event's date and time must be strictly after the store's clock.
func (s *Store) CreateEvent(input models.EventInput) (models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.simulateProcessing()

	switch {
	case strings.TrimSpace(input.Title) == "":
		return models.Event{}, &ValidationError{Field: "title"}
	case strings.TrimSpace(input.Description) == "":
		return models.Event{}, &ValidationError{Field: "description"}
	case strings.TrimSpace(input.Category) == "":
		return models.Event{}, &ValidationError{Field: "category"}
	case input.Price.IsZero() || input.Price.IsNegative():
		return models.Event{}, &ValidationError{Field: "price"}
	case input.Date == "":
		return models.Event{}, &ValidationError{Field: "date"}
	case input.Time == "":
		return models.Event{}, &ValidationError{Field: "time"}
	case strings.TrimSpace(input.Location) == "":
		return models.Event{}, &ValidationError{Field: "location"}
	case input.Capacity <= 0:
		return models.Event{}, &ValidationError{Field: "capacity"}
	}

	now := s.now()
	starts, err := time.ParseInLocation(eventDateTimeLayout, input.Date+" "+input.Time, now.Location())
	if err != nil {
		return models.Event{}, &ValidationError{Field: "date", Reason: "is malformed"}
	}
	if !starts.After(now) {
		return models.Event{}, &ValidationError{Field: "date", Reason: "must be in the future"}
	}

	organizer := "Anonymous"
	if s.currentUser != nil {
		organizer = s.currentUser.Name
	}
	image := input.Image
	if image == "" {
		image = defaultEventImage
	}

	event := models.Event{
		ID:          s.newID(),
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		Date:        input.Date,
		Time:        input.Time,
		Location:    input.Location,
		Capacity:    input.Capacity,
		Sold:        0,
		Image:       image,
		Organizer:   organizer,
		Featured:    false,
	}
	s.events = append(s.events, event)

	if err := s.saveAll(); err != nil {
		return models.Event{}, err
	}

	s.log.Info().Int64("event_id", event.ID).Str("title", event.Title).Msg("event created")
	return event, nil
}

// PurchaseTicket sells quantity tickets for an event to a user. Checks run in
// a single critical section with no suspension point between the availability
// read and the write, so capacity is never oversold: unknown event or user
// fails with ErrNotFound, a quantity above capacity−sold with
// ErrInsufficientAvailability, and malformed payment details with a
// PaymentError naming the failing field (card expiry is compared against the
// store's clock). On success the event's sold count and the new ticket, with
// its denormalized event snapshot and generated code, persist together.
func (s *Store) PurchaseTicket(userID, eventID int64, quantity int, payment models.PaymentDetails) (models.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.simulateProcessing()

	event := s.findEvent(eventID)
	if event == nil {
		return models.Ticket{}, ErrNotFound
	}
	user := s.findUser(userID)
	if user == nil {
		return models.Ticket{}, ErrNotFound
	}
	if quantity < 1 {
		return models.Ticket{}, &ValidationError{Field: "quantity", Reason: "must be positive"}
	}
	if quantity > event.Remaining() {
		return models.Ticket{}, ErrInsufficientAvailability
	}
	if err := s.validatePayment(payment); err != nil {
		return models.Ticket{}, err
	}

	now := s.now()
	total := event.Price.Mul(decimal.NewFromInt(int64(quantity)))

	event.Sold += quantity
	ticket := models.Ticket{
		ID:            s.newID(),
		UserID:        userID,
		EventID:       eventID,
		EventTitle:    event.Title,
		EventDate:     event.Date,
		EventTime:     event.Time,
		EventLocation: event.Location,
		Quantity:      quantity,
		TotalPrice:    total,
		TicketCode:    newTicketCode(),
		PurchaseDate:  now,
		Status:        models.TicketStatusConfirmed,
	}
	s.tickets = append(s.tickets, ticket)

	// Ticket revenue funds the organizer's withdrawable balance. Organizers
	// are linked by display name; seeded organizers are not users.
	for i := range s.users {
		if s.users[i].Name == event.Organizer {
			s.users[i].Balance = s.users[i].Balance.Add(total)
			break
		}
	}

	if err := s.saveAll(); err != nil {
		return models.Ticket{}, err
	}

	s.log.Info().
		Int64("ticket_id", ticket.ID).
		Int64("event_id", eventID).
		Int("quantity", quantity).
		Str("total", total.String()).
		Msg("ticket purchased")
	return ticket, nil
}

// RequestWithdrawal files a pending payout request against a user's balance.
// The minimum amount is 100; the balance is debited when the request is
// created.
func (s *Store) RequestWithdrawal(userID int64, amount decimal.Decimal, reason string) (models.Withdrawal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.findUser(userID)
	if user == nil {
		return models.Withdrawal{}, ErrNotFound
	}
	if amount.LessThan(decimal.NewFromInt(100)) {
		return models.Withdrawal{}, &ValidationError{Field: "amount", Reason: "must be at least 100"}
	}
	if amount.GreaterThan(user.Balance) {
		return models.Withdrawal{}, ErrInsufficientBalance
	}

	withdrawal := models.Withdrawal{
		ID:     s.newID(),
		UserID: userID,
		Amount: amount,
		Status: models.WithdrawalStatusPending,
		Date:   s.now(),
		Reason: reason,
	}
	s.withdrawals = append(s.withdrawals, withdrawal)
	user.Balance = user.Balance.Sub(amount)

	if err := s.saveAll(); err != nil {
		return models.Withdrawal{}, err
	}

	s.log.Info().
		Int64("withdrawal_id", withdrawal.ID).
		Str("amount", amount.String()).
		Msg("withdrawal requested")
	return withdrawal, nil
}

// validatePayment runs the structural card checks, then the expiry-in-the-
// past check against the store's clock.
func (s *Store) validatePayment(payment models.PaymentDetails) error {
	if err := validator.Validate(payment); err != nil {
		if fe, ok := err.(*validator.FieldError); ok {
			return &PaymentError{Field: fe.Field}
		}
		return err
	}

	expiry, err := time.Parse(expiryLayout, payment.Expiry)
	if err != nil {
		return &PaymentError{Field: "expiry"}
	}
	now := s.now()
	if expiry.Year() < now.Year() ||
		(expiry.Year() == now.Year() && expiry.Month() < now.Month()) {
		return &PaymentError{Field: "expiry"}
	}
	return nil
}

// newTicketCode generates the human-readable code printed on a ticket.
func newTicketCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:9])
}

// Package models defines the domain records held by the store. JSON field
// names are the substrate contract: collections round-trip through these tags.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is an account created on signup. The password is stored and compared
// in plaintext; that is the behavior contract of the simulated auth layer.
type User struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Password      string          `json:"password"`
	JoinDate      time.Time       `json:"joinDate"`
	AccountNumber string          `json:"accountNumber,omitempty"`
	Bank          string          `json:"bank,omitempty"`
	AccountName   string          `json:"accountName,omitempty"`
	Balance       decimal.Decimal `json:"balance"`
}

// Event is a bookable listing. Date is a calendar date ("2006-01-02") and
// Time a local time of day ("15:04"), kept as strings as they are displayed
// and filtered, not computed with.
type Event struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Date        string          `json:"date"`
	Time        string          `json:"time"`
	Location    string          `json:"location"`
	Capacity    int             `json:"capacity"`
	Sold        int             `json:"sold"`
	Image       string          `json:"image"`
	Organizer   string          `json:"organizer"`
	Featured    bool            `json:"featured"`
}

// Remaining returns the number of unsold tickets.
func (e *Event) Remaining() int {
	return e.Capacity - e.Sold
}

// IsSoldOut returns true when no tickets remain.
func (e *Event) IsSoldOut() bool {
	return e.Sold >= e.Capacity
}

// Ticket is an issued purchase. Event fields are a snapshot taken at purchase
// time so later event edits never alter issued tickets.
type Ticket struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"userId"`
	EventID       int64           `json:"eventId"`
	EventTitle    string          `json:"eventTitle"`
	EventDate     string          `json:"eventDate"`
	EventTime     string          `json:"eventTime"`
	EventLocation string          `json:"eventLocation"`
	Quantity      int             `json:"quantity"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	TicketCode    string          `json:"ticketId"`
	PurchaseDate  time.Time       `json:"purchaseDate"`
	Status        string          `json:"status"`
}

// TicketStatusConfirmed is the only status an issued ticket can hold.
const TicketStatusConfirmed = "confirmed"

// Withdrawal is an organizer's payout request.
type Withdrawal struct {
	ID     int64           `json:"id"`
	UserID int64           `json:"userId"`
	Amount decimal.Decimal `json:"amount"`
	Status string          `json:"status"`
	Date   time.Time       `json:"date"`
	Reason string          `json:"reason,omitempty"`
}

// Withdrawal statuses. Requests are created pending; review happens elsewhere.
const (
	WithdrawalStatusPending  = "pending"
	WithdrawalStatusApproved = "approved"
	WithdrawalStatusRejected = "rejected"
)

// EventInput is the payload for creating an event.
type EventInput struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Date        string          `json:"date"`
	Time        string          `json:"time"`
	Location    string          `json:"location"`
	Capacity    int             `json:"capacity"`
	Image       string          `json:"image"`
}

// PaymentDetails is the card data presented at purchase. Field order matters:
// validation reports the first failing field in this order.
type PaymentDetails struct {
	CardholderName string `json:"cardholderName" validate:"required"`
	CardNumber     string `json:"cardNumber" validate:"required,cardnumber"`
	Expiry         string `json:"expiry" validate:"required,expiry"`
	CVV            string `json:"cvv" validate:"required,cvv"`
}

// ProfileUpdate carries the settings-form fields. Empty strings leave the
// corresponding field unchanged.
type ProfileUpdate struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	AccountNumber string `json:"accountNumber"`
	Bank          string `json:"bank"`
	AccountName   string `json:"accountName"`
}

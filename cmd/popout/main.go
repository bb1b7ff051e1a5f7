// Command popout is the demo shell over the event-ticketing store: it opens
// the configured substrate, runs one operation, and renders the result.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/popoutlabs/popout-store/internal/config"
	"github.com/popoutlabs/popout-store/internal/database"
	"github.com/popoutlabs/popout-store/internal/models"
	"github.com/popoutlabs/popout-store/internal/store"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	flag "github.com/spf13/pflag"
)

func main() {
	// .env is optional; the environment wins.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to substrate")
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate substrate")
	}

	st, err := store.Open(db, store.Options{
		ProcessingDelay: cfg.ProcessingDelay,
		Logger:          &log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open store")
	}

	if err := run(st, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(st *store.Store, command string, args []string) error {
	switch command {
	case "events":
		return cmdEvents(st, args)
	case "featured":
		for _, e := range st.QueryFeatured() {
			printEvent(e)
		}
		return nil
	case "signup":
		return cmdSignup(st, args)
	case "login":
		return cmdLogin(st, args)
	case "logout":
		return st.Logout()
	case "whoami":
		user, ok := st.CurrentUser()
		if !ok {
			fmt.Println("not logged in")
			return nil
		}
		fmt.Printf("%s <%s> (balance %s)\n", user.Name, user.Email, formatPrice(user.Balance))
		return nil
	case "create-event":
		return cmdCreateEvent(st, args)
	case "buy":
		return cmdBuy(st, args)
	case "tickets":
		return cmdTickets(st)
	case "withdraw":
		return cmdWithdraw(st, args)
	case "withdrawals":
		return cmdWithdrawals(st)
	case "settings":
		return cmdSettings(st, args)
	default:
		usage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func cmdEvents(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("events", flag.ExitOnError)
	category := fs.String("category", "", "exact category match")
	search := fs.String("search", "", "substring over title, description, location")
	date := fs.String("date", "", "today | tomorrow | this-week | this-month")
	if err := fs.Parse(args); err != nil {
		return err
	}

	events := st.QueryEvents(store.EventFilter{
		Category:   *category,
		Search:     *search,
		DateBucket: *date,
	})
	if len(events) == 0 {
		fmt.Println("no events found")
		return nil
	}
	for _, e := range events {
		printEvent(e)
	}
	return nil
}

func cmdSignup(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password (6+ characters)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := st.Signup(*name, *email, *password)
	if err != nil {
		return err
	}
	fmt.Printf("welcome to PopOut Tickets, %s!\n", user.Name)
	return nil
}

func cmdLogin(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := st.Login(*email, *password)
	if err != nil {
		return err
	}
	fmt.Printf("welcome back, %s!\n", user.Name)
	return nil
}

func cmdCreateEvent(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("create-event", flag.ExitOnError)
	title := fs.String("title", "", "event title")
	description := fs.String("description", "", "event description")
	category := fs.String("category", "", "music | business | arts | sports | ...")
	price := fs.String("price", "0", "ticket price")
	date := fs.String("date", "", "calendar date (YYYY-MM-DD)")
	timeOfDay := fs.String("time", "", "start time (HH:MM)")
	location := fs.String("location", "", "venue")
	capacity := fs.Int("capacity", 0, "ticket capacity")
	image := fs.String("image", "", "image URL")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, err := decimal.NewFromString(*price)
	if err != nil {
		return fmt.Errorf("invalid price: %w", err)
	}
	event, err := st.CreateEvent(models.EventInput{
		Title:       *title,
		Description: *description,
		Category:    *category,
		Price:       p,
		Date:        *date,
		Time:        *timeOfDay,
		Location:    *location,
		Capacity:    *capacity,
		Image:       *image,
	})
	if err != nil {
		return err
	}
	fmt.Printf("event created: %d %q\n", event.ID, event.Title)
	return nil
}

func cmdBuy(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("buy", flag.ExitOnError)
	eventID := fs.Int64("event", 0, "event id")
	quantity := fs.Int("quantity", 1, "number of tickets")
	cardName := fs.String("card-name", "", "cardholder name")
	cardNumber := fs.String("card-number", "", "card number (13-19 digits)")
	expiry := fs.String("expiry", "", "card expiry (MM/YY)")
	cvv := fs.String("cvv", "", "card CVV (3-4 digits)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, ok := st.CurrentUser()
	if !ok {
		return fmt.Errorf("please login to purchase tickets")
	}

	ticket, err := st.PurchaseTicket(user.ID, *eventID, *quantity, models.PaymentDetails{
		CardholderName: *cardName,
		CardNumber:     *cardNumber,
		Expiry:         *expiry,
		CVV:            *cvv,
	})
	if err != nil {
		return err
	}
	fmt.Printf("purchased %d ticket(s) for %q — code %s, total %s\n",
		ticket.Quantity, ticket.EventTitle, ticket.TicketCode, formatPrice(ticket.TotalPrice))
	return nil
}

func cmdTickets(st *store.Store) error {
	user, ok := st.CurrentUser()
	if !ok {
		return fmt.Errorf("please login to view your tickets")
	}
	tickets := st.UserTickets(user.ID)
	if len(tickets) == 0 {
		fmt.Println("no tickets yet")
		return nil
	}
	for _, t := range tickets {
		fmt.Printf("%s  %s — %s at %s, %s — %d ticket(s), %s [%s]\n",
			t.TicketCode, t.EventTitle, formatDate(t.EventDate), t.EventTime,
			t.EventLocation, t.Quantity, formatPrice(t.TotalPrice), t.Status)
	}
	return nil
}

func cmdWithdraw(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("withdraw", flag.ExitOnError)
	amount := fs.String("amount", "", "amount to withdraw (minimum 100)")
	reason := fs.String("reason", "", "optional note")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, ok := st.CurrentUser()
	if !ok {
		return fmt.Errorf("please login to request a withdrawal")
	}
	a, err := decimal.NewFromString(*amount)
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	w, err := st.RequestWithdrawal(user.ID, a, *reason)
	if err != nil {
		return err
	}
	fmt.Printf("withdrawal request %d submitted (%s, %s)\n", w.ID, formatPrice(w.Amount), w.Status)
	return nil
}

func cmdWithdrawals(st *store.Store) error {
	user, ok := st.CurrentUser()
	if !ok {
		return fmt.Errorf("please login to view withdrawals")
	}
	for _, w := range st.UserWithdrawals(user.ID) {
		fmt.Printf("%d  %s  %s  %s\n", w.ID, formatPrice(w.Amount), w.Status,
			w.Date.Format("2006-01-02 15:04"))
	}
	return nil
}

func cmdSettings(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("settings", flag.ExitOnError)
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "email address")
	accountNumber := fs.String("account-number", "", "payout account number")
	bank := fs.String("bank", "", "payout bank")
	accountName := fs.String("account-name", "", "payout account name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, ok := st.CurrentUser()
	if !ok {
		return fmt.Errorf("please login to change settings")
	}
	updated, err := st.UpdateProfile(user.ID, models.ProfileUpdate{
		Name:          *name,
		Email:         *email,
		AccountNumber: *accountNumber,
		Bank:          *bank,
		AccountName:   *accountName,
	})
	if err != nil {
		return err
	}
	fmt.Printf("settings saved for %s <%s>\n", updated.Name, updated.Email)
	return nil
}

func printEvent(e models.Event) {
	status := fmt.Sprintf("%d remaining", e.Remaining())
	if e.IsSoldOut() {
		status = "sold out"
	}
	fmt.Printf("%d  [%s] %s — %s at %s, %s — %s (%s)\n",
		e.ID, e.Category, e.Title, formatDate(e.Date), e.Time, e.Location,
		formatPrice(e.Price), status)
}

func formatPrice(p decimal.Decimal) string {
	return "$" + p.StringFixed(2)
}

func formatDate(date string) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return d.Format("Monday, January 2, 2006")
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: popout <command> [flags]

commands:
  events        list events (--category, --search, --date)
  featured      list featured events
  signup        create an account (--name, --email, --password)
  login         log in (--email, --password)
  logout        log out
  whoami        show the current user
  create-event  create an event (--title, --description, --category, --price,
                --date, --time, --location, --capacity, --image)
  buy           purchase tickets (--event, --quantity, --card-name,
                --card-number, --expiry, --cvv)
  tickets       list your tickets
  withdraw      request a payout (--amount, --reason)
  withdrawals   list your payout requests
  settings      update profile (--name, --email, --account-number, --bank,
                --account-name)`)
}

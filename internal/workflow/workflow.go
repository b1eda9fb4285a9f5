// Package workflow sequences the airbook console operations: prompting,
// reference generation, statement execution and result rendering for
// each menu action.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/willfong/airbook/internal/config"
	"github.com/willfong/airbook/internal/database"
	"github.com/willfong/airbook/internal/models"
	"github.com/willfong/airbook/internal/prompt"
	"github.com/willfong/airbook/internal/ui"
)

// Store is the statement-execution capability the workflows consume.
// database.Queries implements it against MariaDB/MySQL.
type Store interface {
	InsertPassenger(ctx context.Context, p *models.Passenger) error
	InsertBooking(ctx context.Context, b *models.Booking) error
	InsertRating(ctx context.Context, r *models.Rating) error
	FlightsBetween(ctx context.Context, origin, destination string) ([]models.Flight, error)
	PopularDestinations(ctx context.Context, k int) ([]models.DestinationCount, error)
	HighestRatedRoutes(ctx context.Context, k int) ([]models.RouteRating, error)
	FlightsByDuration(ctx context.Context, origin, destination string, k int) ([]models.RouteDuration, error)
	AvailableSeats(ctx context.Context, flightNum, departure string) (*models.SeatReport, error)
}

var _ Store = (*database.Queries)(nil)

// Workflow drives one console operation at a time. Validation failures
// are handled inside the prompter, business-rule violations become
// user-facing messages, and only store errors propagate to the caller.
type Workflow struct {
	store  Store
	prompt *prompt.Prompter
	ui     *ui.UI
	refs   *RefGenerator
	out    io.Writer
}

// New creates a Workflow over the given collaborators.
func New(store Store, p *prompt.Prompter, u *ui.UI, refs *RefGenerator, out io.Writer) *Workflow {
	return &Workflow{
		store:  store,
		prompt: p,
		ui:     u,
		refs:   refs,
		out:    out,
	}
}

// reject prints a business-rule violation. The operation is abandoned
// but the error is consumed: the menu continues.
func (w *Workflow) reject(msg string) {
	fmt.Fprintln(w.out, w.ui.Error(msg))
}

// RegisterPassenger collects and inserts a new passenger row.
// Passport uniqueness is enforced by the store's constraint; a conflict
// is reported as a duplicate, not retried.
func (w *Workflow) RegisterPassenger(ctx context.Context) error {
	passport, err := w.prompt.FixedLen("Enter your 10-character Passport Number: ", config.PassportLength)
	if err != nil {
		return err
	}
	name, err := w.prompt.TitleCase("Enter your full name: ")
	if err != nil {
		return err
	}
	bdate, err := w.prompt.Date("your birth", config.BirthYearMin, config.BirthYearMax)
	if err != nil {
		return err
	}
	country, err := w.prompt.TitleCase("Enter your country of origin: ")
	if err != nil {
		return err
	}

	p := &models.Passenger{
		Passport:  passport,
		FullName:  name,
		BirthDate: bdate,
		Country:   country,
	}
	if err := w.store.InsertPassenger(ctx, p); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			w.reject(fmt.Sprintf("A passenger with passport %s is already registered.", passport))
			return nil
		}
		return err
	}

	fmt.Fprintln(w.out, w.ui.Success("total row(s): 1"))
	return nil
}

// CreateBooking reserves a seat: departure date, flight number and
// passenger id from the operator, booking reference from the generator.
// A bookRef conflict means the reference collided, so the insert retries
// with a fresh one; the attempt cap only guards against a store that
// reports conflicts for some other reason.
func (w *Workflow) CreateBooking(ctx context.Context) error {
	departure, err := w.prompt.Date("the departure", config.BirthYearMin, config.BirthYearMax)
	if err != nil {
		return err
	}
	flightNum, err := w.prompt.NonEmpty("Enter the flight number: ")
	if err != nil {
		return err
	}
	passengerID, err := w.prompt.NonEmpty("Enter the passenger ID: ")
	if err != nil {
		return err
	}

	for attempt := 0; attempt < config.BookingRefMaxAttempts; attempt++ {
		b := &models.Booking{
			Reference:   w.refs.Next(),
			Departure:   departure,
			FlightNum:   flightNum,
			PassengerID: passengerID,
		}

		err := w.store.InsertBooking(ctx, b)
		if errors.Is(err, database.ErrDuplicate) {
			continue
		}
		if errors.Is(err, database.ErrForeignKey) {
			w.reject(fmt.Sprintf("No flight %s or passenger %s exists.", flightNum, passengerID))
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(w.out, w.ui.Success(fmt.Sprintf("Booking created with reference %s.", b.Reference)))
		return nil
	}

	return fmt.Errorf("no unique booking reference after %d attempts", config.BookingRefMaxAttempts)
}

// SubmitRating records a customer review. The store guards both
// business rules in one transaction: a missing booking and an existing
// rating for the (passenger, flight) pair.
func (w *Workflow) SubmitRating(ctx context.Context) error {
	passengerID, err := w.prompt.NonEmpty("Enter the passenger ID: ")
	if err != nil {
		return err
	}
	flightNum, err := w.prompt.NonEmpty("Enter the flight number: ")
	if err != nil {
		return err
	}
	score, err := w.prompt.IntRange("Enter a score on a scale from 0-5: ", config.ScoreMin, config.ScoreMax)
	if err != nil {
		return err
	}
	comment, err := w.prompt.Line("Enter a comment: ")
	if err != nil {
		return err
	}

	r := &models.Rating{
		PassengerID: passengerID,
		FlightNum:   flightNum,
		Score:       score,
		Comment:     comment,
	}
	if err := w.store.InsertRating(ctx, r); err != nil {
		if errors.Is(err, database.ErrNoBooking) {
			w.reject(fmt.Sprintf("No booking found for passenger %s on flight %s.", passengerID, flightNum))
			return nil
		}
		if errors.Is(err, database.ErrDuplicate) {
			w.reject(fmt.Sprintf("Passenger %s has already rated flight %s.", passengerID, flightNum))
			return nil
		}
		return err
	}

	fmt.Fprintln(w.out, w.ui.Success("total row(s): 1"))
	return nil
}

// ListFlights prints all flights between an origin and a destination.
func (w *Workflow) ListFlights(ctx context.Context) error {
	origin, err := w.prompt.NonEmpty("Enter an origin: ")
	if err != nil {
		return err
	}
	destination, err := w.prompt.NonEmpty("Enter a destination: ")
	if err != nil {
		return err
	}

	flights, err := w.store.FlightsBetween(ctx, origin, destination)
	if err != nil {
		return err
	}
	if len(flights) == 0 {
		fmt.Fprintf(w.out, "There are no flights between %s and %s.\n", origin, destination)
		return nil
	}

	rows := make([][]string, 0, len(flights))
	for _, f := range flights {
		rows = append(rows, []string{
			f.FlightNum, f.Origin, f.Destination, f.Plane, strconv.Itoa(f.Duration),
		})
	}
	fmt.Fprint(w.out, w.ui.Table([]string{"flightNum", "origin", "destination", "plane", "duration"}, rows))
	fmt.Fprintf(w.out, "total row(s): %d\n", len(rows))
	return nil
}

// PopularDestinations prints the k destinations with the most flights.
func (w *Workflow) PopularDestinations(ctx context.Context) error {
	k, err := w.prompt.PositiveInt("Please enter the number of results you would like to see: ")
	if err != nil {
		return err
	}

	results, err := w.store.PopularDestinations(ctx, k)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(results))
	for _, d := range results {
		rows = append(rows, []string{d.Destination, strconv.Itoa(d.Flights)})
	}
	fmt.Fprint(w.out, w.ui.Table([]string{"destination", "choices"}, rows))
	fmt.Fprintf(w.out, "total row(s): %d\n", len(rows))
	return nil
}

// HighestRatedRoutes prints the k routes with the best average score.
func (w *Workflow) HighestRatedRoutes(ctx context.Context) error {
	k, err := w.prompt.PositiveInt("Please enter the number of results you would like to see: ")
	if err != nil {
		return err
	}

	results, err := w.store.HighestRatedRoutes(ctx, k)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			r.Airline, r.FlightNum, r.Origin, r.Destination, r.Plane,
			strconv.FormatFloat(r.AvgScore, 'f', 2, 64),
		})
	}
	fmt.Fprint(w.out, w.ui.Table([]string{"name", "flightNum", "origin", "destination", "plane", "avgScore"}, rows))
	fmt.Fprintf(w.out, "total row(s): %d\n", len(rows))
	return nil
}

// FlightsByDuration prints up to k flights on a route, longest first.
func (w *Workflow) FlightsByDuration(ctx context.Context) error {
	origin, err := w.prompt.NonEmpty("Enter an origin: ")
	if err != nil {
		return err
	}
	destination, err := w.prompt.NonEmpty("Enter a destination: ")
	if err != nil {
		return err
	}
	k, err := w.prompt.PositiveInt("Please enter the number of results you would like to see: ")
	if err != nil {
		return err
	}

	results, err := w.store.FlightsByDuration(ctx, origin, destination, k)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			r.Airline, r.FlightNum, r.Origin, r.Destination, strconv.Itoa(r.Duration), r.Plane,
		})
	}
	fmt.Fprint(w.out, w.ui.Table([]string{"name", "flightNum", "origin", "destination", "duration", "plane"}, rows))
	fmt.Fprintf(w.out, "total row(s): %d\n", len(rows))
	return nil
}

// AvailableSeats prints the seat availability for a flight on a date.
func (w *Workflow) AvailableSeats(ctx context.Context) error {
	flightNum, err := w.prompt.NonEmpty("Enter a flight number: ")
	if err != nil {
		return err
	}
	departure, err := w.prompt.Date("a departure", config.BirthYearMin, config.BirthYearMax)
	if err != nil {
		return err
	}

	report, err := w.store.AvailableSeats(ctx, flightNum, departure)
	if err != nil {
		return err
	}
	if report == nil {
		fmt.Fprintf(w.out, "There is no information for flight %s on %s.\n", flightNum, departure)
		return nil
	}

	fmt.Fprint(w.out, w.ui.Table(
		[]string{"flightNum", "departure", "total seats", "booked", "available"},
		[][]string{{
			report.FlightNum, report.Departure,
			strconv.Itoa(report.Total), strconv.Itoa(report.Booked), strconv.Itoa(report.Available),
		}},
	))
	return nil
}

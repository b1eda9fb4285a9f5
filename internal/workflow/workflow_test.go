package workflow

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/willfong/airbook/internal/database"
	"github.com/willfong/airbook/internal/models"
	"github.com/willfong/airbook/internal/prompt"
	"github.com/willfong/airbook/internal/ui"
	"github.com/willfong/airbook/internal/utils"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) InsertPassenger(ctx context.Context, p *models.Passenger) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockStore) InsertBooking(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockStore) InsertRating(ctx context.Context, r *models.Rating) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockStore) FlightsBetween(ctx context.Context, origin, destination string) ([]models.Flight, error) {
	args := m.Called(ctx, origin, destination)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flight), args.Error(1)
}

func (m *MockStore) PopularDestinations(ctx context.Context, k int) ([]models.DestinationCount, error) {
	args := m.Called(ctx, k)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DestinationCount), args.Error(1)
}

func (m *MockStore) HighestRatedRoutes(ctx context.Context, k int) ([]models.RouteRating, error) {
	args := m.Called(ctx, k)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RouteRating), args.Error(1)
}

func (m *MockStore) FlightsByDuration(ctx context.Context, origin, destination string, k int) ([]models.RouteDuration, error) {
	args := m.Called(ctx, origin, destination, k)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RouteDuration), args.Error(1)
}

func (m *MockStore) AvailableSeats(ctx context.Context, flightNum, departure string) (*models.SeatReport, error) {
	args := m.Called(ctx, flightNum, departure)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SeatReport), args.Error(1)
}

// newTestWorkflow wires a workflow over scripted input and a plain
// (non-TTY) UI so output assertions are stable.
func newTestWorkflow(store Store, input string) (*Workflow, *bytes.Buffer) {
	out := &bytes.Buffer{}
	p := prompt.New(strings.NewReader(input), out)
	u := &ui.UI{IsTTY: false, Width: 80, NoColor: true}
	refs := NewRefGenerator(utils.NewRandom(42))
	return New(store, p, u, refs, out), out
}

func TestRegisterPassenger(t *testing.T) {
	t.Run("stores title-cased name and country", func(t *testing.T) {
		store := &MockStore{}
		store.On("InsertPassenger", mock.Anything, &models.Passenger{
			Passport:  "ABCDEFGHIJ",
			FullName:  "Jane Doe",
			BirthDate: "5/17/1990",
			Country:   "Canada",
		}).Return(nil)

		w, out := newTestWorkflow(store, "ABCDEFGHIJ\njane doe\n5\n17\n1990\ncanada\n")
		err := w.RegisterPassenger(context.Background())

		assert.NoError(t, err)
		assert.Contains(t, out.String(), "total row(s): 1")
		store.AssertExpectations(t)
	})

	t.Run("re-prompts until passport is 10 characters", func(t *testing.T) {
		store := &MockStore{}
		store.On("InsertPassenger", mock.Anything, mock.MatchedBy(func(p *models.Passenger) bool {
			return p.Passport == "ABCDEFGHIJ"
		})).Return(nil)

		w, out := newTestWorkflow(store, "ABC\nABCDEFGHIJKLM\nABCDEFGHIJ\njane doe\n5\n17\n1990\ncanada\n")
		err := w.RegisterPassenger(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 2, strings.Count(out.String(), "Invalid length"))
		store.AssertExpectations(t)
	})

	t.Run("duplicate passport is rejected, not retried", func(t *testing.T) {
		store := &MockStore{}
		store.On("InsertPassenger", mock.Anything, mock.Anything).Return(database.ErrDuplicate)

		w, out := newTestWorkflow(store, "ABCDEFGHIJ\njane doe\n5\n17\n1990\ncanada\n")
		err := w.RegisterPassenger(context.Background())

		assert.NoError(t, err)
		assert.Contains(t, out.String(), "already registered")
		store.AssertNumberOfCalls(t, "InsertPassenger", 1)
	})
}

func TestCreateBooking(t *testing.T) {
	refPattern := regexp.MustCompile(`^[A-Z0-9]{10}$`)
	input := "12\n25\n2019\nAA101\n7\n"

	t.Run("inserts with generated reference", func(t *testing.T) {
		store := &MockStore{}
		var got *models.Booking
		store.On("InsertBooking", mock.Anything, mock.MatchedBy(func(b *models.Booking) bool {
			got = b
			return refPattern.MatchString(b.Reference)
		})).Return(nil)

		w, out := newTestWorkflow(store, input)
		err := w.CreateBooking(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, "12/25/2019", got.Departure)
		assert.Equal(t, "AA101", got.FlightNum)
		assert.Equal(t, "7", got.PassengerID)
		assert.Contains(t, out.String(), got.Reference)
		store.AssertExpectations(t)
	})

	t.Run("retries with a fresh reference on conflict", func(t *testing.T) {
		store := &MockStore{}
		var refs []string
		record := func(args mock.Arguments) {
			refs = append(refs, args.Get(1).(*models.Booking).Reference)
		}
		store.On("InsertBooking", mock.Anything, mock.Anything).Run(record).Return(database.ErrDuplicate).Twice()
		store.On("InsertBooking", mock.Anything, mock.Anything).Run(record).Return(nil).Once()

		w, _ := newTestWorkflow(store, input)
		err := w.CreateBooking(context.Background())

		assert.NoError(t, err)
		assert.Len(t, refs, 3)
		assert.NotEqual(t, refs[0], refs[1])
		assert.NotEqual(t, refs[1], refs[2])
	})

	t.Run("foreign key violation aborts with a message", func(t *testing.T) {
		store := &MockStore{}
		store.On("InsertBooking", mock.Anything, mock.Anything).Return(database.ErrForeignKey)

		w, out := newTestWorkflow(store, input)
		err := w.CreateBooking(context.Background())

		assert.NoError(t, err)
		assert.Contains(t, out.String(), "No flight AA101 or passenger 7 exists.")
		store.AssertNumberOfCalls(t, "InsertBooking", 1)
	})

	t.Run("persistent conflicts eventually error out", func(t *testing.T) {
		store := &MockStore{}
		store.On("InsertBooking", mock.Anything, mock.Anything).Return(database.ErrDuplicate)

		w, _ := newTestWorkflow(store, input)
		err := w.CreateBooking(context.Background())

		assert.Error(t, err)
	})
}

func TestSubmitRating(t *testing.T) {
	t.Run("valid rating is stored", func(t *testing.T) {
		store := &MockStore{}
		store.On("InsertRating", mock.Anything, &models.Rating{
			PassengerID: "7",
			FlightNum:   "AA101",
			Score:       4,
			Comment:     "smooth flight",
		}).Return(nil)

		w, out := newTestWorkflow(store, "7\nAA101\n4\nsmooth flight\n")
		err := w.SubmitRating(context.Background())

		assert.NoError(t, err)
		assert.Contains(t, out.String(), "total row(s): 1")
		store.AssertExpectations(t)
	})

	t.Run("score outside 0-5 is re-prompted", func(t *testing.T) {
		store := &MockStore{}
		store.On("InsertRating", mock.Anything, mock.MatchedBy(func(r *models.Rating) bool {
			return r.Score == 5
		})).Return(nil)

		w, out := newTestWorkflow(store, "7\nAA101\n7\n-1\n5\nok\n")
		err := w.SubmitRating(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 2, strings.Count(out.String(), "Please enter a value between 0 and 5."))
		store.AssertExpectations(t)
	})

	t.Run("missing booking is rejected", func(t *testing.T) {
		store := &MockStore{}
		store.On("InsertRating", mock.Anything, mock.Anything).Return(database.ErrNoBooking)

		w, out := newTestWorkflow(store, "7\nAA101\n4\nok\n")
		err := w.SubmitRating(context.Background())

		assert.NoError(t, err)
		assert.Contains(t, out.String(), "No booking found for passenger 7 on flight AA101.")
	})

	t.Run("second rating for the same pair is rejected", func(t *testing.T) {
		store := &MockStore{}
		store.On("InsertRating", mock.Anything, mock.Anything).Return(database.ErrDuplicate)

		w, out := newTestWorkflow(store, "7\nAA101\n4\nok\n")
		err := w.SubmitRating(context.Background())

		assert.NoError(t, err)
		assert.Contains(t, out.String(), "already rated")
	})
}

func TestListFlights(t *testing.T) {
	t.Run("renders table with row count", func(t *testing.T) {
		store := &MockStore{}
		store.On("FlightsBetween", mock.Anything, "JFK", "LAX").Return([]models.Flight{
			{FlightNum: "AA101", Origin: "JFK", Destination: "LAX", Plane: "Boeing 737", Duration: 6},
			{FlightNum: "DL202", Origin: "JFK", Destination: "LAX", Plane: "Airbus A320", Duration: 5},
		}, nil)

		w, out := newTestWorkflow(store, "JFK\nLAX\n")
		err := w.ListFlights(context.Background())

		assert.NoError(t, err)
		assert.Contains(t, out.String(), "flightNum\torigin\tdestination\tplane\tduration")
		assert.Contains(t, out.String(), "AA101\tJFK\tLAX\tBoeing 737\t6")
		assert.Contains(t, out.String(), "total row(s): 2")
	})

	t.Run("no flights between origin and destination", func(t *testing.T) {
		store := &MockStore{}
		store.On("FlightsBetween", mock.Anything, "JFK", "LAX").Return([]models.Flight{}, nil)

		w, out := newTestWorkflow(store, "JFK\nLAX\n")
		err := w.ListFlights(context.Background())

		assert.NoError(t, err)
		assert.Contains(t, out.String(), "There are no flights between JFK and LAX.")
	})
}

func TestPopularDestinations(t *testing.T) {
	store := &MockStore{}
	store.On("PopularDestinations", mock.Anything, 3).Return([]models.DestinationCount{
		{Destination: "LAX", Flights: 12},
		{Destination: "ORD", Flights: 9},
	}, nil)

	w, out := newTestWorkflow(store, "3\n")
	err := w.PopularDestinations(context.Background())

	assert.NoError(t, err)
	assert.Contains(t, out.String(), "destination\tchoices")
	assert.Contains(t, out.String(), "LAX\t12")
	assert.Contains(t, out.String(), "total row(s): 2")
	store.AssertExpectations(t)
}

func TestHighestRatedRoutes(t *testing.T) {
	store := &MockStore{}
	store.On("HighestRatedRoutes", mock.Anything, 1).Return([]models.RouteRating{
		{Airline: "United", FlightNum: "UA900", Origin: "SFO", Destination: "NRT", Plane: "Boeing 787", AvgScore: 4.5},
	}, nil)

	w, out := newTestWorkflow(store, "1\n")
	err := w.HighestRatedRoutes(context.Background())

	assert.NoError(t, err)
	assert.Contains(t, out.String(), "United\tUA900\tSFO\tNRT\tBoeing 787\t4.50")
	store.AssertExpectations(t)
}

func TestFlightsByDuration(t *testing.T) {
	store := &MockStore{}
	store.On("FlightsByDuration", mock.Anything, "JFK", "LAX", 2).Return([]models.RouteDuration{
		{Airline: "American", FlightNum: "AA101", Origin: "JFK", Destination: "LAX", Duration: 6, Plane: "Boeing 737"},
		{Airline: "Delta", FlightNum: "DL202", Origin: "JFK", Destination: "LAX", Duration: 5, Plane: "Airbus A320"},
	}, nil)

	w, out := newTestWorkflow(store, "JFK\nLAX\n2\n")
	err := w.FlightsByDuration(context.Background())

	assert.NoError(t, err)
	assert.Contains(t, out.String(), "American\tAA101\tJFK\tLAX\t6\tBoeing 737")
	assert.Contains(t, out.String(), "total row(s): 2")
	store.AssertExpectations(t)
}

func TestAvailableSeats(t *testing.T) {
	input := "AA101\n12\n25\n2019\n"

	t.Run("reports totals and remainder", func(t *testing.T) {
		store := &MockStore{}
		store.On("AvailableSeats", mock.Anything, "AA101", "12/25/2019").Return(&models.SeatReport{
			FlightNum: "AA101",
			Departure: "12/25/2019",
			Total:     180,
			Booked:    175,
			Available: 5,
		}, nil)

		w, out := newTestWorkflow(store, input)
		err := w.AvailableSeats(context.Background())

		assert.NoError(t, err)
		assert.Contains(t, out.String(), "AA101\t12/25/2019\t180\t175\t5")
		store.AssertExpectations(t)
	})

	t.Run("no bookings for the flight and date", func(t *testing.T) {
		store := &MockStore{}
		store.On("AvailableSeats", mock.Anything, "AA101", "12/25/2019").Return(nil, nil)

		w, out := newTestWorkflow(store, input)
		err := w.AvailableSeats(context.Background())

		assert.NoError(t, err)
		assert.Contains(t, out.String(), "There is no information for flight AA101 on 12/25/2019.")
	})
}

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/willfong/airbook/internal/config"
	"github.com/willfong/airbook/internal/database"
	"github.com/willfong/airbook/internal/prompt"
	"github.com/willfong/airbook/internal/ui"
	"github.com/willfong/airbook/internal/utils"
	"github.com/willfong/airbook/internal/workflow"
)

var (
	dbMaxOpenConns int
	dbMaxIdleConns int
	refSeed        int64
)

// consoleCmd represents the console command
var consoleCmd = &cobra.Command{
	Use:   "console <dbname> <port> <user>",
	Short: "Run the interactive booking console",
	Long: `Connect to the booking store and run the interactive menu.

Takes exactly three positional arguments: the database name, the
database port, and the user to connect as. The password comes from
--password or the AIRBOOK_DB_PASSWORD environment variable.

Menu actions:
  1. Add Passenger
  2. Book Flight
  3. Review Flight
  4. List Flights From Origin to Destination
  5. List Most Popular Destinations
  6. List Highest Rated Routes
  7. List Flights From Origin to Destination in Order of Duration
  8. Find Number of Available Seats on a given Flight
  9. Exit

Example:
  airbook console airbookdb 3306 staff
  airbook console airbookdb 3306 staff --host db.internal --seed 42`,
	Args: cobra.ExactArgs(3),
	RunE: runConsole,
}

func init() {
	rootCmd.AddCommand(consoleCmd)

	consoleCmd.Flags().String("host", config.DBHost, "database host")
	consoleCmd.Flags().String("password", "", "database password")
	consoleCmd.Flags().IntVar(&dbMaxOpenConns, "db-max-open", config.DBMaxOpenConns, "max open database connections")
	consoleCmd.Flags().IntVar(&dbMaxIdleConns, "db-max-idle", config.DBMaxIdleConns, "max idle database connections")
	consoleCmd.Flags().Int64Var(&refSeed, "seed", 0, "reference generator seed (0 = random)")

	viper.BindPFlag("database.host", consoleCmd.Flags().Lookup("host"))
	viper.BindPFlag("database.password", consoleCmd.Flags().Lookup("password"))
	viper.BindEnv("database.password", "AIRBOOK_DB_PASSWORD")
}

func runConsole(cmd *cobra.Command, args []string) error {
	u := ui.New()
	if noColor {
		u.SetNoColor(true)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.Database.Name = args[0]
	cfg.Database.Port = args[1]
	cfg.Database.User = args[2]
	cfg.Database.MaxOpenConns = dbMaxOpenConns
	cfg.Database.MaxIdleConns = dbMaxIdleConns
	cfg.Seed = refSeed
	cfg.Verbose = verbose

	if err := cfg.Validate(); err != nil {
		return err
	}

	fmt.Println(u.Header("AirBooking Console"))
	fmt.Println()
	fmt.Println(u.KeyValue("Database", cfg.Database.Name))
	fmt.Println(u.KeyValue("Host", fmt.Sprintf("%s:%s", cfg.Database.Host, cfg.Database.Port)))
	fmt.Println(u.KeyValue("User", cfg.Database.User))
	fmt.Println()

	pool, err := database.NewPool(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to create database pool: %w", err)
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), config.ConnectTimeout)
	defer cancel()

	spin := u.NewSpinner("Connecting to database")
	spin.Start()
	if err := pool.Connect(ctx); err != nil {
		spin.Error("connection failed: " + err.Error())
		return err
	}
	spin.Success("connected!")
	fmt.Println()

	// One prompter for the menu and the workflows: they share the
	// buffered reader over stdin.
	p := prompt.New(os.Stdin, os.Stdout)
	refs := workflow.NewRefGenerator(utils.NewRandom(cfg.Seed))
	wf := workflow.New(database.NewQueries(pool), p, u, refs, os.Stdout)

	runMenu(wf, p, u)

	stats := pool.Stats()
	fmt.Println(u.SummaryBox("Session", []ui.KV{
		{Key: "Statements", Value: fmt.Sprintf("%d", stats.TotalQueries)},
		{Key: "Failed", Value: fmt.Sprintf("%d", stats.FailedQueries)},
		{Key: "Avg Latency", Value: stats.AvgLatency.String()},
	}))
	fmt.Println(u.Muted("Bye!"))
	return nil
}

// runMenu loops until the operator picks Exit or stdin closes.
// Operation failures print one diagnostic and return to the menu; they
// never terminate the process.
func runMenu(wf *workflow.Workflow, p *prompt.Prompter, u *ui.UI) {
	ctx := context.Background()

	for {
		fmt.Println()
		fmt.Println("MAIN MENU")
		fmt.Println("---------")
		fmt.Println("1. Add Passenger")
		fmt.Println("2. Book Flight")
		fmt.Println("3. Review Flight")
		fmt.Println("4. List Flights From Origin to Destination")
		fmt.Println("5. List Most Popular Destinations")
		fmt.Println("6. List Highest Rated Routes")
		fmt.Println("7. List Flights From Origin to Destination in Order of Duration")
		fmt.Println("8. Find Number of Available Seats on a given Flight")
		fmt.Println("9. < EXIT")

		choice, err := p.IntRange("Please make your choice: ", 1, 9)
		if err != nil {
			// stdin closed; treat like Exit
			return
		}

		var opErr error
		switch choice {
		case 1:
			opErr = wf.RegisterPassenger(ctx)
		case 2:
			opErr = wf.CreateBooking(ctx)
		case 3:
			opErr = wf.SubmitRating(ctx)
		case 4:
			opErr = wf.ListFlights(ctx)
		case 5:
			opErr = wf.PopularDestinations(ctx)
		case 6:
			opErr = wf.HighestRatedRoutes(ctx)
		case 7:
			opErr = wf.FlightsByDuration(ctx)
		case 8:
			opErr = wf.AvailableSeats(ctx)
		case 9:
			return
		}

		if opErr != nil {
			fmt.Println(u.Error(opErr.Error()))
		}
	}
}

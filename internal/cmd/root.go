package cmd

import (
	"github.com/spf13/cobra"
)

var verbose bool
var noColor bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "airbook",
	Short: "Airline booking console for registration, reservations and reporting",
	Long: `An interactive console for airline-booking staff.

The console connects to a shared MariaDB/MySQL store holding airlines,
flights, passengers, bookings and ratings, and offers one menu action
per workflow: register a passenger, book a flight, record a customer
review, and a handful of reporting queries.

The schema is expected to exist already; the console never creates or
migrates tables.

Example usage:
  airbook console airbookdb 3306 staff
  AIRBOOK_DB_PASSWORD=secret airbook console airbookdb 3306 staff --host db.internal`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colors and animations")

	// Silence usage on error - we'll print our own messages
	rootCmd.SilenceUsage = true

	// Set version template
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// Verbose returns whether verbose mode is enabled
func Verbose() bool {
	return verbose
}

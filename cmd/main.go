package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "smc-doctor-booking",
	Short: "SMC-DoctorBooking - doctor appointment booking gateway",
	Long: `Gateway in front of the clinic API: rolling window of free appointment slots,
appointment booking, phone OTP login and per-doctor schedule overrides.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "Path to TOML config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-DoctorBooking/internal/config"
	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
	"github.com/m04kA/SMC-DoctorBooking/internal/integrations/clinicapi"
	getAvailableSlotsUC "github.com/m04kA/SMC-DoctorBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-DoctorBooking/pkg/logger"
	"github.com/m04kA/SMC-DoctorBooking/pkg/metrics"
)

var (
	slotsDoctorID string
	slotsDays     int
	slotsJSON     bool
)

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "Print the free slot window of a doctor",
	Long: `Fetches the doctor from the clinic API and prints the rolling window of free
slots using the default opening hours. Does not touch the database.`,
	RunE: runSlots,
}

func init() {
	slotsCmd.Flags().StringVar(&slotsDoctorID, "doctor", "", "Doctor ID in the clinic API (required)")
	slotsCmd.Flags().IntVar(&slotsDays, "days", domain.DefaultWindowDays, "Number of non-empty dates to print")
	slotsCmd.Flags().BoolVar(&slotsJSON, "json", false, "Print JSON instead of a text table")
	_ = slotsCmd.MarkFlagRequired("doctor")
	rootCmd.AddCommand(slotsCmd)
}

// defaultSchedules отдает настройки по умолчанию без обращения к БД
type defaultSchedules struct{}

func (defaultSchedules) GetSchedule(_ context.Context, doctorID string) (*domain.DoctorSchedule, error) {
	return domain.DefaultDoctorSchedule(doctorID), nil
}

type slotsOutput struct {
	DoctorID   string           `json:"doctorId"`
	DoctorName string           `json:"doctorName"`
	Truncated  bool             `json:"truncated"`
	Days       []slotsOutputDay `json:"days"`
}

type slotsOutputDay struct {
	DateKey string   `json:"dateKey"`
	Weekday string   `json:"weekday"`
	Slots   []string `json:"slots"`
}

func runSlots(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New("", "warn")
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Close()

	loc, err := cfg.Slots.Location()
	if err != nil {
		return fmt.Errorf("load timezone: %w", err)
	}

	var noMetrics *metrics.Metrics
	client := clinicapi.NewClient(
		cfg.ClinicAPI.URL,
		time.Duration(cfg.ClinicAPI.Timeout)*time.Second,
		noMetrics,
		log,
	)
	uc := getAvailableSlotsUC.NewUseCase(client, defaultSchedules{}, noMetrics, cfg.Slots.LabelLayout, loc, log)

	resp, err := uc.Execute(cmd.Context(), &getAvailableSlotsUC.Request{DoctorID: slotsDoctorID, Days: slotsDays})
	if err != nil {
		return err
	}

	out := slotsOutput{
		DoctorID:   resp.DoctorID,
		DoctorName: resp.DoctorName,
		Truncated:  resp.Window.Truncated,
		Days:       make([]slotsOutputDay, 0, len(resp.Window.Buckets)),
	}
	for _, b := range resp.Window.Buckets {
		day := slotsOutputDay{DateKey: b.DateKey, Weekday: b.Weekday, Slots: make([]string, 0, len(b.Candidates))}
		for _, c := range b.Candidates {
			day.Slots = append(day.Slots, c.Time)
		}
		out.Days = append(out.Days, day)
	}

	if slotsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("%s (%s)\n", out.DoctorName, out.DoctorID)
	for _, d := range out.Days {
		fmt.Printf("%-3s %-10s %s\n", d.Weekday, d.DateKey, strings.Join(d.Slots, ", "))
	}
	if out.Truncated {
		fmt.Println("(horizon reached before the requested number of dates)")
	}
	return nil
}

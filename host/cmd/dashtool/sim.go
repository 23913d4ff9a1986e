package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"sensordash/core"
	"sensordash/host/sim"
)

var (
	scenarioPath string
	headless     bool
	steps        int
	nackEvery    uint32
	debugLog     string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the dashboard firmware against simulated hardware",
	Long: `Run the real control loop against an emulated SSD1306 panel.

Interactive mode shows the panel, actuator level and counters.
Keys: up/k and down/j nudge the sensor, e injects an external edge, q quits.

Headless mode replays --steps loop passes in virtual time and prints the
final panel, which makes runs reproducible.`,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "Scenario YAML file (default: built-in sine)")
	simCmd.Flags().BoolVar(&headless, "headless", false, "Replay in virtual time and print the result")
	simCmd.Flags().IntVarP(&steps, "steps", "n", 500, "Loop passes to replay in headless mode")
	simCmd.Flags().Uint32Var(&nackEvery, "nack-every", 0, "Reject every nth display frame (overrides the scenario)")
	simCmd.Flags().StringVar(&debugLog, "debug-log", "", "Write firmware debug output to this file")
	rootCmd.AddCommand(simCmd)
}

func loadScenario() (*sim.Scenario, error) {
	if scenarioPath == "" {
		return sim.DefaultScenario(), nil
	}
	return sim.LoadScenario(scenarioPath)
}

func runSim(cmd *cobra.Command, args []string) error {
	sc, err := loadScenario()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("nack-every") {
		sc.Bus.NackEvery = nackEvery
	}

	if debugLog != "" {
		f, err := os.Create(debugLog)
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer f.Close()
		enableFirmwareDebug(f)
	}

	if headless {
		return runHeadless(cmd.OutOrStdout(), sc)
	}

	r, err := sim.NewRunner(sc)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(newSimModel(r), tea.WithAltScreen()).Run()
	return err
}

// enableFirmwareDebug routes the core's debug lines to w.
func enableFirmwareDebug(w io.Writer) {
	logger := log.New(w, "", log.Ltime|log.Lmicroseconds)
	core.SetDebugWriter(func(s string) {
		logger.Print(strings.TrimRight(s, "\r\n"))
	})
	core.SetDebugEnabled(true)
}

func runHeadless(w io.Writer, sc *sim.Scenario) error {
	r, err := sim.Replay(sc, steps, nil)
	if r == nil {
		return err
	}
	fmt.Fprint(w, formatReport(sc, r.Snapshot()))
	return err
}

// formatReport renders the panel and board state as plain text.
func formatReport(sc *sim.Scenario, snap sim.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "scenario: %s\n", sc.Name)
	b.WriteString("+" + strings.Repeat("-", sim.PanelColumns) + "+\n")
	for _, line := range snap.Lines {
		fmt.Fprintf(&b, "|%-*s|\n", sim.PanelColumns, line)
	}
	b.WriteString("+" + strings.Repeat("-", sim.PanelColumns) + "+\n")
	fmt.Fprintf(&b, "state=%s sample=%d level=%d timer=%d external=%d\n",
		snap.State, snap.Sample, snap.Level, snap.Timer, snap.External)
	fmt.Fprintf(&b, "iterations=%d sensor_refreshes=%d counter_refreshes=%d display_failures=%d bus_failures=%d\n",
		snap.Stats.Iterations, snap.Stats.SensorRefreshes, snap.Stats.CounterRefreshes,
		snap.Stats.DisplayFailures, snap.BusFailures)
	if snap.Fault != nil {
		fmt.Fprintf(&b, "fault: %v\n", snap.Fault)
	}
	return b.String()
}

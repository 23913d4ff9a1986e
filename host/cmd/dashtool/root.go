package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dashtool",
	Short: "Sensor dashboard development tool",
	Long: `Dashtool - host tooling for the sensor dashboard firmware.

Commands:
  sim:      run the firmware control loop against an emulated SSD1306 panel,
            a scenario-driven analog sensor and simulated interrupt sources
  monitor:  print the debug console of a board over a serial port`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

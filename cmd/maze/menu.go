package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Launch the interactive start menu",
	Long: `Launch the start menu. Pick a difficulty and a start level, play,
and look at the high scores. Finished runs return to the menu.`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagPlayer, "name", "", "Player name stored with each run (default: login name)")
}

func runMenu(cmd *cobra.Command, args []string) {
	e, err := loadEnv(cmd, flagPlayer, true, false)
	exitOnError("config", err)
	defer e.close()

	if err := tui.RunSession(e.setup, runtimeConfig()); err != nil {
		e.close()
		exitOnError("menu", err)
	}
}

package cmd

import (
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Launch the screen with sample data",
	Long: "Starts a session pre-filled with a typical hostel month: spends across\n" +
		"categories, a few jars, a trip squad, and an upcoming fest. Nothing is\n" +
		"persisted; quit and it is gone.",
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(_ *cobra.Command, _ []string) error {
	return launchTUI(true)
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/mathsprint/internal/console"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz right away",
	Long:  "Start a quiz right away. With --plain the quiz runs line by line on stdin and stdout instead of the full-screen UI.",
	RunE: func(cmd *cobra.Command, args []string) error {
		plain, _ := cmd.Flags().GetBool("plain")
		if !plain {
			return runApp(cmd, true)
		}

		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = d.log.Sync() }()

		r := console.NewRunner(d.engine, cmd.InOrStdin(), cmd.OutOrStdout(), d.log)
		return r.Run(cmd.Context())
	},
}

func init() {
	playCmd.Flags().Bool("plain", false, "Plain line-by-line mode for pipes and simple terminals")
}

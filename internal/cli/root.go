package cli

import (
	"github.com/finlark/onboard/internal/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	logLevel string

	// loaded at init time
	log *logging.Logger
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "onboard — merchant-onboarding assistant and Gemini proxy",
		Long: "onboard guides new business owners through a merchant-services application " +
			"using a conversational AI front-end, and serves the proxy gateway the browser UI talks to.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Credentials may live in a .env file next to the binary.
			_ = godotenv.Load()

			level := logLevel
			if level == "" {
				level = "info"
			}
			log = logging.New(nil, level)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "onboard.yaml", "config file")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error, fatal, silent)")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newChatCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

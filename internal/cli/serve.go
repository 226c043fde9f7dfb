package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/finlark/onboard/internal/config"
	"github.com/finlark/onboard/internal/gateway"
	"github.com/finlark/onboard/internal/genai"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var (
		port int
		bind string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the proxy gateway server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			if port != 0 {
				cfg.Gateway.Port = port
			}
			if bind != "" {
				cfg.Gateway.Bind = bind
			}
			if cfg.API.Key == "" {
				return fmt.Errorf("no API key configured — set GEMINI_API_KEY or api.key in %s", cfgFile)
			}

			client := genai.NewGeminiClient(cfg.API.Key, cfg.API.Model)
			srv := gateway.New(cfg.Gateway, client, log)

			// Block until SIGINT/SIGTERM
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return srv.Start(ctx)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "override gateway port")
	cmd.Flags().StringVar(&bind, "bind", "", "override bind mode (loopback, lan)")

	return cmd
}

package main

import (
	"Genie-Expiry-Tracker/cmd/config"
	"Genie-Expiry-Tracker/internal/utils"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	var port, env string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the REST API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := utils.LoadConfig(cfgFile); err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if port != "" {
				utils.SetConfigValue("APP_PORT", port)
			}
			if env != "" {
				utils.SetConfigValue("APP_ENV", env)
			}
			cfg := utils.GetAppConfig()

			app, err := config.NewApp(cfg, nil)
			if err != nil {
				return err
			}

			errCh := make(chan error, 1)
			go func() {
				errCh <- app.Listen(":" + cfg.AppPort)
			}()
			log.Infof("environment: %s, listening on :%s", cfg.AppEnv, cfg.AppPort)

			select {
			case err := <-errCh:
				return err
			case <-cmd.Context().Done():
				log.Info("shutting down")
				return app.ShutdownWithTimeout(shutdownTimeout)
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "port to listen on (overrides APP_PORT)")
	cmd.Flags().StringVar(&env, "env", "", "environment name, e.g. development or production")
	return cmd
}

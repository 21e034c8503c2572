package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "wizardwayz",
		Short: "The MEME is the Magic",
		Long: `Serves the wizardwayz site: a homepage whose tagline letters are bound to
randomly dealt pillars, and one page per pillar.

Configuration is read from the environment and an optional .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}

	root.AddCommand(newServeCmd(), newPillarsCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Long: `Run the HTTP server until interrupted.

Environment:
  HTTP_ADDR                   listen address (default :8080)
  APP_ENV                     development, staging or production
  BASE_URL                    public origin used in QR codes
  ENTRY_URL                   where the merchandise redirect returns
  RETURN_URL                  target of "Return to the Source"
  MERCHANDISE_REDIRECT_DELAY  delay before returning from the store (default 500ms)
  MERCHANDISE_STORE_URL       overrides the storefront URL of the catalog
  PILLAR_CATALOG              path to a catalog YAML file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

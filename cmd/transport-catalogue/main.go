package main

import (
	"fmt"
	"os"

	"github.com/antigravity/transport-catalogue/internal/app"
	"github.com/antigravity/transport-catalogue/internal/applog"
	"github.com/spf13/cobra"
)

var devLogging bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "transport-catalogue",
		Short: "Builds and queries a transport catalogue snapshot",
		Long: `transport-catalogue has exactly two modes:

  transport-catalogue make_base        reads base_requests + settings from
                                        stdin, writes a binary snapshot
  transport-catalogue process_requests reads stat_requests from stdin,
                                        loads the snapshot, writes responses`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("a mode is required: make_base or process_requests")
		},
	}
	rootCmd.PersistentFlags().BoolVar(&devLogging, "dev-logging", false, "use human-readable development logging instead of structured JSON")

	rootCmd.AddCommand(makeBaseCmd(), processRequestsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func makeBaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "make_base",
		Short: "Build the catalogue and write a snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := applog.New(devLogging)
			if err != nil {
				return err
			}
			defer log.Sync()

			if err := app.RunMakeBase(os.Stdin, log); err != nil {
				log.Error("make_base", err)
				fmt.Fprintln(os.Stderr, err)
				return err
			}
			return nil
		},
	}
}

func processRequestsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "process_requests",
		Short: "Load a snapshot and answer stat_requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := applog.New(devLogging)
			if err != nil {
				return err
			}
			defer log.Sync()

			if err := app.RunProcessRequests(os.Stdin, os.Stdout, log); err != nil {
				log.Error("process_requests", err)
				fmt.Fprintln(os.Stderr, err)
				return err
			}
			return nil
		},
	}
}

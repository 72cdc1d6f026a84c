package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/a-peyrard/appboot/appconfig"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration resolved from the environment",
	}
	configCmd.AddCommand(newConfigShowCmd(), newConfigCheckCmd())
	return configCmd
}

func newConfigShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print every resolved setting, credentials redacted",
		Example: `  appboot config show
  appboot config show --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := appconfig.Load()
			if err != nil {
				return err
			}

			switch output {
			case "json":
				data, err := json.MarshalIndent(cfg.Attributes(), "", "  ")
				if err != nil {
					return fmt.Errorf("unable to encode configuration: %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			case "text":
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				for _, attribute := range cfg.Attributes() {
					_, _ = fmt.Fprintf(w, "%s\t%s\n", attribute.Name, attribute.Value)
				}
				return w.Flush()
			default:
				return fmt.Errorf("unknown output format %q, expected text or json", output)
			}
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text or json)")

	return cmd
}

func newConfigCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load the configuration and exit non-zero when it is incomplete",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := appconfig.Load(); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "configuration ok")
			return err
		},
	}
}

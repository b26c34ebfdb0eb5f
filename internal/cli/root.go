// Package cli implements the sitectl command line: exporting the static
// site, sending the contact form from a terminal and checking site content.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/DukeRupert/frontdoor/internal"
	"github.com/DukeRupert/frontdoor/internal/contact"
)

// Set with -ldflags "-X github.com/DukeRupert/frontdoor/internal/cli.Version=..."
var (
	Version = "dev"
	Commit  = "unknown"
)

// deps are the pieces tests replace.
type deps struct {
	prompter  contact.Prompter
	newConfig func() (*internal.Config, error)
}

// NewRootCommand returns the sitectl command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(deps{
		prompter:  &contact.SurveyPrompter{},
		newConfig: internal.NewConfig,
	})
}

func newRootCommand(d deps) *cobra.Command {
	root := &cobra.Command{
		Use:   "sitectl",
		Short: "Manage the marketing site",
		Long: `sitectl exports the marketing site as static files, sends the contact
form from a terminal and validates site content files.

Settings come from the environment (and a .env file in the working
directory); flags override them.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().String("site-config", "", "site content YAML (default $SITE_CONFIG, else the built-in content)")

	root.AddCommand(
		newExportCommand(d),
		newContactCommand(d),
		newCheckCommand(d),
		newVersionCommand(),
	)
	return root
}

// loadConfig reads the environment and applies persistent flag overrides.
func loadConfig(cmd *cobra.Command, d deps) (*internal.Config, error) {
	cfg, err := d.newConfig()
	if err != nil {
		return nil, err
	}
	if f := cmd.Flags().Lookup("site-config"); f != nil && f.Changed {
		cfg.SiteConfigPath = f.Value.String()
	}
	return cfg, nil
}

func newLogger(w io.Writer, cfg *internal.Config) *slog.Logger {
	return internal.NewLogger(w, cfg.Env, cfg.LogLevel)
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sitectl %s (%s)\n", Version, Commit)
			fmt.Fprintf(out, "  Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

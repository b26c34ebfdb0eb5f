package cli

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/DukeRupert/frontdoor/internal/contact"
)

func newContactCommand(d deps) *cobra.Command {
	var (
		origin  string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Fill in and send the contact form from the terminal",
		Long: `Prompt for name, email, phone and message, then post them to the site
the same way the page's contact form does. A failed send keeps your
answers so you can edit and resend them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, d)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("origin") {
				cfg.ContactOrigin = origin
			}
			if cmd.Flags().Changed("timeout") {
				cfg.ContactTimeout = timeout
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			submitter, err := contact.NewSubmitter(contact.SubmitterConfig{
				Origin:   cfg.ContactOrigin,
				Client:   &http.Client{Timeout: cfg.ContactTimeout},
				Notifier: contact.TextNotifier{W: out},
				Logger:   newLogger(cmd.ErrOrStderr(), cfg),
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Sending to %s\n", submitter.Endpoint())
			_, err = contact.RunForm(cmd.Context(), d.prompter, submitter, out)
			if errors.Is(err, contact.ErrPromptAborted) {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&origin, "origin", "", "site origin to post to (default $CONTACT_ORIGIN, else $BASE_URL)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "give up waiting for the site after this long (default $CONTACT_TIMEOUT, 0 waits forever)")
	return cmd
}

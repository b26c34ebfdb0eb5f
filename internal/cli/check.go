package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/DukeRupert/frontdoor/internal/domain"
	"github.com/DukeRupert/frontdoor/internal/site"
)

func newCheckCommand(d deps) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a site content file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("config") {
				cfg, err := loadConfig(cmd, d)
				if err != nil {
					return err
				}
				path = cfg.SiteConfigPath
			}

			source := path
			if source == "" {
				source = "built-in content"
			}

			out := cmd.OutOrStdout()
			siteCfg, err := site.Load(path)
			if err != nil {
				var ve *domain.ValidationError
				if errors.As(err, &ve) {
					fmt.Fprintf(out, "%s: %d problem(s)\n", source, len(ve.Fields))
					keys := make([]string, 0, len(ve.Fields))
					for k := range ve.Fields {
						keys = append(keys, k)
					}
					sort.Strings(keys)
					for _, k := range keys {
						fmt.Fprintf(out, "  %s %s\n", k, ve.Fields[k])
					}
				}
				return err
			}

			fmt.Fprintf(out, "%s: ok (%s, %d features, %d testimonials)\n",
				source,
				siteCfg.Business.Name,
				len(siteCfg.Features.Main)+len(siteCfg.Features.Secondary),
				len(siteCfg.Testimonials),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "config", "c", "", "site content YAML to check (default $SITE_CONFIG)")
	return cmd
}

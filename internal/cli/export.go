package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DukeRupert/frontdoor/internal/export"
	"github.com/DukeRupert/frontdoor/internal/site"
	"github.com/DukeRupert/frontdoor/internal/storage"
	"github.com/DukeRupert/frontdoor/internal/view"
	"github.com/DukeRupert/frontdoor/web"
)

func newExportCommand(d deps) *cobra.Command {
	var (
		out      string
		basePath string
		provider string
		prune    bool
		noShim   bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the site into static files and publish them",
		Long: `Render index.html and 404.html, copy the browser assets below static/
and write manifest.json, either into a local directory or an R2 bucket.`,
		Example: `  sitectl export --out ./public
  sitectl export --base-path /landing --provider r2 --prune`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, d)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("out") {
				cfg.ExportDir = out
			}
			if flags.Changed("base-path") {
				cfg.BasePath = basePath
			}
			if flags.Changed("provider") {
				cfg.PublishProvider = provider
			}
			if flags.Changed("prune") {
				cfg.ExportPrune = prune
			}
			if noShim {
				cfg.FormDetectionShim = false
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), cfg)

			siteCfg, err := site.Load(cfg.SiteConfigPath)
			if err != nil {
				return err
			}

			store, err := storage.New(cfg.PublishProvider, cfg.LocalStorageConfig(), cfg.R2StorageConfig(), logger)
			if err != nil {
				return fmt.Errorf("publish target: %w", err)
			}

			exporter, err := export.New(export.Config{
				Site: siteCfg,
				Options: view.Options{
					Mode:              site.ExportStatic,
					BasePath:          cfg.BasePath,
					FormDetectionShim: cfg.FormDetectionShim,
				},
				Assets:   web.Static(),
				Storage:  store,
				Provider: cfg.PublishProvider,
				Prune:    cfg.ExportPrune,
				Logger:   logger,
			})
			if err != nil {
				return err
			}

			m, err := exporter.Export(cmd.Context())
			if storage.IsAccessDenied(err) {
				return fmt.Errorf("%w (check the R2_* credentials and bucket permissions)", err)
			}
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Exported %d files (build %s)\n", len(m.Files), m.BuildID)
			if u, err := store.URL(cmd.Context(), export.IndexKey, 0); err == nil && u != "" {
				fmt.Fprintf(w, "  %s\n", u)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory for the local provider (default $EXPORT_DIR)")
	cmd.Flags().StringVar(&basePath, "base-path", "", "path prefix for sub-path hosting, e.g. /landing (default $BASE_PATH)")
	cmd.Flags().StringVar(&provider, "provider", "", "publish target: local or r2 (default $PUBLISH_PROVIDER)")
	cmd.Flags().BoolVar(&prune, "prune", false, "delete files the previous export wrote that this one does not")
	cmd.Flags().BoolVar(&noShim, "no-form-shim", false, "omit the hidden form used by the host's form detection")
	return cmd
}

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	querydialog "github.com/goliatone/go-querydialog"
	"github.com/goliatone/go-querydialog/internal/config"
	"github.com/goliatone/go-querydialog/pkg/catalog"
	"github.com/goliatone/go-querydialog/pkg/hierarchy"
)

type app struct {
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	rootCmd := &cobra.Command{
		Use:   "querydialog",
		Short: "Create broker queries scoped to a management object",
		Long: `querydialog loads a broker structure document and a metadata catalog,
then walks through the query creation dialog: pick a broker or virtual host
as scope, name an object category, and emit the creation request.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			cfg, err := config.Load(a.cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = cfg.Logger()
			if cfg.FileUsed != "" {
				a.logger.Debug("using config file", "path", cfg.FileUsed)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: ./"+config.DefaultConfigFile+")")
	flags.String("structure", "", "broker structure document (JSON or YAML)")
	flags.String("catalog", "", "metadata catalog document")
	flags.String("catalog-format", "", "catalog format (yaml|json|openapi)")
	flags.StringP("output", "o", "", "output format (json|pretty)")
	flags.String("log-level", "", "log level (debug|info|warn|error)")

	_ = rootCmd.RegisterFlagCompletionFunc("catalog-format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"yaml", "json", "openapi"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"json", "pretty"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newScopesCmd(a))
	rootCmd.AddCommand(newCategoriesCmd(a))
	rootCmd.AddCommand(newCreateCmd(a))
	return rootCmd
}

func (a *app) loadStructure() (*hierarchy.Tree, error) {
	tree, err := hierarchy.LoadFile(os.DirFS(filepath.Dir(a.cfg.Structure)), filepath.Base(a.cfg.Structure))
	if err != nil {
		return nil, err
	}
	a.logger.Debug("structure loaded", "path", a.cfg.Structure, "objects", tree.Len())
	return tree, nil
}

func (a *app) loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	cat, err := catalog.LoadFile(ctx, os.DirFS(filepath.Dir(a.cfg.Catalog)), filepath.Base(a.cfg.Catalog), catalog.Format(a.cfg.CatalogFormat))
	if err != nil {
		return nil, err
	}
	a.logger.Debug("catalog loaded", "path", a.cfg.Catalog, "categories", cat.Len())
	return cat, nil
}

func (a *app) openDialog(ctx context.Context) (*querydialog.Dialog, error) {
	d, err := querydialog.Open(ctx, querydialog.Source{
		FS:            os.DirFS(filepath.Dir(a.cfg.Structure)),
		Structure:     filepath.Base(a.cfg.Structure),
		CatalogFS:     os.DirFS(filepath.Dir(a.cfg.Catalog)),
		Catalog:       filepath.Base(a.cfg.Catalog),
		CatalogFormat: catalog.Format(a.cfg.CatalogFormat),
	}, querydialog.WithLogger(a.logger))
	if err != nil {
		return nil, fmt.Errorf("open query dialog: %w", err)
	}
	a.logger.Debug("query dialog opened",
		"brokers", len(d.Structure.Roots()),
		"objects", d.Structure.Len(),
		"categories", d.Catalog.Len(),
	)
	return d, nil
}

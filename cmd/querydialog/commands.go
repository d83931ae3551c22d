package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	dialog "github.com/goliatone/go-querydialog/pkg/querydialog"
	"github.com/goliatone/go-querydialog/pkg/render"
	"github.com/goliatone/go-querydialog/pkg/scope"
	"github.com/goliatone/go-querydialog/pkg/tui"
)

func newScopesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scopes",
		Short: "List the selectable query scopes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tree, err := a.loadStructure()
			if err != nil {
				return err
			}
			result, err := scope.BuildEntries(tree)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.cfg.Output == "json" {
				return writeJSON(out, map[string]any{
					"entries":   result.Entries,
					"defaultId": result.DefaultID,
				})
			}
			for _, entry := range result.Entries {
				marker := " "
				if entry.ID == result.DefaultID {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s\t%s\n", marker, entry.ID, render.SanitizeLabel(entry.Label))
			}
			return nil
		},
	}
}

func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the categories known to the metadata catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := a.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.cfg.Output == "json" {
				return writeJSON(out, cat.Categories())
			}
			for _, name := range cat.Categories() {
				desc, _ := cat.Metadata(name)
				fmt.Fprintf(out, "%s\t%v\n", name, desc.TypeNames())
			}
			return nil
		},
	}
}

func newCreateCmd(a *app) *cobra.Command {
	var scopeID, category string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Run the query creation dialog",
		Long: `Without --category the dialog runs interactively. With --category the
selection is submitted directly; --scope defaults to the first broker.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			d, err := a.openDialog(ctx)
			if err != nil {
				return err
			}

			var created *dialog.QueryCreationRequest
			d.OnCreate(func(req dialog.QueryCreationRequest) {
				created = &req
			})
			d.OnCancel(func() {
				a.logger.Info("query creation cancelled")
			})

			if !cmd.Flags().Changed("category") {
				session, err := tui.NewSession(d.Controller,
					tui.WithPromptDriver(tui.NewSurveyDriver(cmd.OutOrStdout())),
					tui.WithCategorySuggestions(d.Catalog.Categories()),
					tui.WithLogger(a.logger),
				)
				if err != nil {
					return err
				}
				if _, err := session.Run(ctx); err != nil {
					if errors.Is(err, tui.ErrCancelled) || errors.Is(err, tui.ErrAborted) {
						return nil
					}
					return err
				}
			} else {
				if cmd.Flags().Changed("scope") {
					d.SetScope(scopeID)
				}
				d.SetCategory(category)
				if _, err := d.Submit(); err != nil {
					for _, line := range render.MapSubmitError(err).Lines(dialog.FieldScope, dialog.FieldCategory) {
						fmt.Fprintln(cmd.ErrOrStderr(), line)
					}
					return err
				}
			}

			if created == nil {
				return nil
			}
			return a.printRequest(cmd.OutOrStdout(), *created)
		},
	}

	cmd.Flags().StringVar(&scopeID, "scope", "", "scope object id")
	cmd.Flags().StringVar(&category, "category", "", "object category (e.g. queue)")
	return cmd
}

func (a *app) printRequest(out io.Writer, req dialog.QueryCreationRequest) error {
	if a.cfg.Output == "json" {
		return writeJSON(out, req)
	}
	parent := req.ParentObject
	_, err := fmt.Fprintf(out, "category: %s\nscope:    %s %s (%s)\n",
		req.Preference.Value.Category, parent.Type, render.SanitizeLabel(parent.Path()), parent.ID)
	return err
}

func writeJSON(out io.Writer, value any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

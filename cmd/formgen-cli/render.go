package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-form/pkg/form"
	"github.com/goliatone/go-form/pkg/render"
	"github.com/goliatone/go-form/pkg/session"
)

func renderCmd(opts *globalOptions) *cobra.Command {
	var (
		rendererName string
		title        string
		keys         string
		kinds        string
		output       string
		values       map[string]string
		hidden       map[string]string
		lockVersion  string
		pageOpts     pageOptions
	)

	cmd := &cobra.Command{
		Use:   "render <form-id>",
		Short: "Render a form as HTML",
		Long: `Render a loaded form with the markup (fragment) or page (full document)
renderer and write the result to stdout or a file.

Examples:
  formgen-cli render login -d ./forms
  formgen-cli render login -d ./forms --renderer page --title "Sign in"
  formgen-cli render login -d ./forms --value username=ada --keys username,password`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := opts.logger()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			entry, err := opts.entry(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			registry, err := newRegistry(&pageOpts)
			if err != nil {
				return err
			}
			renderer, err := registry.Get(rendererName)
			if err != nil {
				return err
			}

			f, err := entry.New(session.NewMemory(), form.WithLogger(logger))
			if err != nil {
				return err
			}
			var extra []render.HiddenField
			if lockVersion != "" {
				extra = append(extra, render.Hidden(versionField, lockVersion))
			}
			out, err := renderer.Render(cmd.Context(), f, render.RenderOptions{
				Values:  toAnyMap(values),
				Hidden:  render.MergeHiddenFields(hidden, extra...),
				Subset:  render.ParseSubset(keys, kinds),
				Title:   title,
				Theme:   pageOpts.themeName,
				Variant: pageOpts.variant,
			})
			if err != nil {
				return err
			}
			return writeOutput(cmd, output, out)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&rendererName, "renderer", "r", "markup", "renderer to use (markup, page)")
	flags.StringVar(&title, "title", "", "page title (page renderer)")
	flags.StringVar(&keys, "keys", "", "comma separated field keys to render")
	flags.StringVar(&kinds, "kinds", "", "comma separated field kinds to render")
	flags.StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	flags.StringToStringVar(&values, "value", nil, "pre-populate a field (key=value)")
	flags.StringToStringVar(&hidden, "hidden", nil, "extra hidden input (name=value)")
	flags.StringVar(&lockVersion, "lock-version", "", "record version as a hidden input for optimistic locking")
	addPageFlags(cmd, &pageOpts)
	return cmd
}

// versionField is the hidden input carrying --lock-version.
const versionField = "version"

func addPageFlags(cmd *cobra.Command, p *pageOptions) {
	flags := cmd.Flags()
	flags.StringVar(&p.templates, "templates", "", "directory holding page templates")
	flags.StringVar(&p.themeManifest, "theme-manifest", "", "go-theme manifest (YAML) used by the page renderer")
	flags.StringVar(&p.themeName, "theme", "", "theme name")
	flags.StringVar(&p.variant, "variant", "", "theme variant")
	flags.StringVar(&p.lang, "lang", "", "document language")
	flags.StringVar(&p.engine, "engine", enginePongo2, "page template engine (pongo2, go-template)")
}

func toAnyMap(in map[string]string) map[string]any {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]any, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if strings.TrimSpace(path) == "" {
		_, err := cmd.OutOrStdout().Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Form written to %s\n", path)
	return nil
}

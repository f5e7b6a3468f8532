package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-form/pkg/form"
	"github.com/goliatone/go-form/pkg/render"
	"github.com/goliatone/go-form/pkg/renderers/tui"
	"github.com/goliatone/go-form/pkg/session"
)

func promptCmd(opts *globalOptions) *cobra.Command {
	var (
		format      string
		keys        string
		kinds       string
		output      string
		maxAttempts int
	)

	cmd := &cobra.Command{
		Use:   "prompt <form-id>",
		Short: "Fill a form interactively in the terminal",
		Long: `Ask for every field of a form in the terminal, validate the answers and
print the accepted submission. Prompts are written to stderr so the
submission can be piped.

Examples:
  formgen-cli prompt login -d ./forms
  formgen-cli prompt createContact --openapi ./api.yaml --format form`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputFormat, err := parseOutputFormat(format)
			if err != nil {
				return err
			}
			logger, err := opts.logger()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			entry, err := opts.entry(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			f, err := entry.New(session.NewMemory(), form.WithLogger(logger))
			if err != nil {
				return err
			}

			renderer := tui.New(
				tui.WithPromptDriver(tui.NewSurveyDriver(cmd.ErrOrStderr())),
				tui.WithOutputFormat(outputFormat),
				tui.WithMaxAttempts(maxAttempts),
				tui.WithTheme(tui.Theme{InfoPrefix: "i ", ErrorPrefix: "x "}),
			)
			out, err := renderer.Render(cmd.Context(), f, render.RenderOptions{
				Subset: render.ParseSubset(keys, kinds),
			})
			switch {
			case errors.Is(err, tui.ErrAborted):
				return fmt.Errorf("prompt for %q cancelled", args[0])
			case err != nil:
				return err
			}
			return writeOutput(cmd, output, out)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&format, "format", "f", string(tui.OutputFormatJSON), "submission format (json, form, pretty)")
	flags.StringVar(&keys, "keys", "", "comma separated field keys to ask for")
	flags.StringVar(&kinds, "kinds", "", "comma separated field kinds to ask for")
	flags.StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	flags.IntVar(&maxAttempts, "max-attempts", 3, "attempts per field before giving up")
	return cmd
}

func parseOutputFormat(raw string) (tui.OutputFormat, error) {
	switch format := tui.OutputFormat(raw); format {
	case tui.OutputFormatJSON, tui.OutputFormatFormURLEncoded, tui.OutputFormatPrettyText:
		return format, nil
	default:
		return "", fmt.Errorf("unknown format %q (want json, form or pretty)", raw)
	}
}

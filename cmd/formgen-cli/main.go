package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "formgen-cli: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "formgen-cli",
		Short: "Render, prompt and serve declarative HTML forms",
		Long: `formgen-cli loads form definitions (JSON/YAML files or an OpenAPI
document) and renders them as HTML fragments, full pages or terminal
prompts. The serve command hosts every form over HTTP.

Examples:
  formgen-cli list --definitions ./forms
  formgen-cli render login --definitions ./forms --renderer page
  formgen-cli prompt createContact --openapi ./api.yaml --format json
  formgen-cli serve --definitions ./forms --addr :8080`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.definitions, "definitions", "d", "", "definition file or directory (JSON/YAML)")
	flags.StringVar(&opts.openapi, "openapi", "", "OpenAPI document path or URL")
	flags.BoolVar(&opts.validateOpenAPI, "validate-openapi", false, "validate the OpenAPI document before building forms")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		listCmd(opts),
		renderCmd(opts),
		promptCmd(opts),
		serveCmd(opts),
	)
	return root
}

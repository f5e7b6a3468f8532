// Package template defines the engine contract page level renderers use to
// execute layout templates. The gotemplate subpackage provides the pongo2
// backed implementation.
package template

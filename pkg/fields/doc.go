// Package fields defines the form controls a Form is built from. Every field
// is a Field value whose Kind selects the rendering, filtering and
// validation rules; the set of kinds is closed and each operation switches on
// it exhaustively.
//
// Markup is deterministic. Attributes are emitted in lexical order, labels
// default to the field name and multi-value fields (radio, checkbox, select)
// expand their choices in declaration order:
//
//	f := fields.Radio("colour", fields.WithChoices(
//		fields.Choice{Label: "Red", Value: "red"},
//		fields.Choice{Label: "Blue", Value: "blue"},
//	))
//	f.Render()
//	// <label for="colour_0">Red<input id="colour_0" name="colour" type="radio" value="red" /></label>...
//
// Fields declared on a form definition are prototypes. Forms call Clone to
// obtain an instance they can mutate, so definitions can be shared freely.
package fields

// Package form aggregates fields into a Form: it distributes submitted data
// through each field's filters, runs field and form level validators, binds
// values to and from domain objects and renders the surrounding <form> tags.
//
// Forms are created from a Definition, whose fields are prototypes cloned into
// every instance:
//
//	var Login = form.Define("LoginForm",
//		fields.Text("username", fields.Required()),
//		fields.Password("password", fields.Required()),
//	)
//
//	f := Login.New(form.WithAction("/login"))
//	f.SetData(map[string]any{"username": "simon"})
//	ok, err := f.IsValid()
//
// A Form is owned by one request at a time and is not safe for concurrent
// mutation. Definitions are read only once declared and may be shared.
package form

package form

import (
	"crypto/subtle"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goliatone/go-form/pkg/fields"
	"github.com/goliatone/go-form/pkg/html"
	"github.com/goliatone/go-form/pkg/session"
)

// CSRFMessage is reported under FormErrorKey when the submitted token does not
// match the session.
const CSRFMessage = "Cross-site request forgery token is invalid"

// CSRFFieldSuffix is appended to the form name to build the token field key.
const CSRFFieldSuffix = "_csrf_token"

// Protected creates a CSRF protected form from def.
func (d *Definition) Protected(store session.Store, opts ...Option) *Form {
	return newForm(d, append(opts, WithSession(store))...)
}

func (f *Form) protect(store session.Store) {
	f.session = store
	f.csrfKey = f.Name + CSRFFieldSuffix

	token := f.sessionToken()
	if token == "" {
		token = uuid.NewString()
		store.Set(f.csrfKey, token)
		f.logger.Debug("csrf token issued", zap.String("form", f.Name))
	}
	f.appendField(fields.Hidden(f.csrfKey, fields.WithValue(token)))
}

// CSRFKey returns the token field key, or "" for unprotected forms.
func (f *Form) CSRFKey() string {
	return f.csrfKey
}

func (f *Form) sessionToken() string {
	if f.session == nil {
		return ""
	}
	raw, ok := f.session.Get(f.csrfKey)
	if !ok {
		return ""
	}
	return html.Stringify(raw)
}

// assignToken records the submitted token and keeps the hidden field showing
// the session token.
func (f *Form) assignToken(data map[string]any) {
	field, _ := f.Field(f.csrfKey)
	f.submittedToken = ""
	if raw, ok := lookup(data, field); ok {
		f.submittedToken = html.Stringify(field.Filter(raw))
		field.OriginalValue = raw
	}
	field.Value = f.sessionToken()
}

func (f *Form) validToken() bool {
	expected := f.sessionToken()
	if expected == "" || f.submittedToken == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(f.submittedToken)) == 1
}

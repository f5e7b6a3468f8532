// Package request adapts incoming HTTP requests into the key/value source a
// form reads its data from.
package request

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
)

// DefaultMaxMemory bounds the in-memory part of multipart parsing.
const DefaultMaxMemory = 32 << 20

// Source exposes the data a form may consume.
type Source interface {
	PostValues() url.Values
	FileValues() map[string][]*multipart.FileHeader
	QueryValues() url.Values
}

// Values is a static Source, handy in tests and for replaying submissions.
type Values struct {
	Post  url.Values
	Files map[string][]*multipart.FileHeader
	Query url.Values
}

func (v Values) PostValues() url.Values                         { return v.Post }
func (v Values) FileValues() map[string][]*multipart.FileHeader { return v.Files }
func (v Values) QueryValues() url.Values                        { return v.Query }

// FromHTTP parses the request body and returns a Source over it. Multipart
// bodies are parsed with maxMemory (DefaultMaxMemory when <= 0).
func FromHTTP(r *http.Request, maxMemory int64) (Source, error) {
	if r == nil {
		return nil, errors.New("request: nil http request")
	}
	if maxMemory <= 0 {
		maxMemory = DefaultMaxMemory
	}

	out := Values{Query: r.URL.Query()}
	contentType := r.Header.Get("Content-Type")
	switch {
	case strings.HasPrefix(contentType, "multipart/form-data"):
		if err := r.ParseMultipartForm(maxMemory); err != nil {
			return nil, fmt.Errorf("request: parse multipart form: %w", err)
		}
		out.Post = r.PostForm
		if r.MultipartForm != nil {
			out.Files = r.MultipartForm.File
		}
	default:
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("request: parse form: %w", err)
		}
		out.Post = r.PostForm
	}
	return out, nil
}

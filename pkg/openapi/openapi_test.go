package openapi_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"sort"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-form/pkg/fields"
	"github.com/goliatone/go-form/pkg/form"
	"github.com/goliatone/go-form/pkg/openapi"
)

func loadContacts(t *testing.T) *openapi.Document {
	t.Helper()
	doc, err := openapi.NewLoader().Load(context.Background(), openapi.SourceFromFile("testdata/contacts.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return doc
}

func TestDocumentOperations(t *testing.T) {
	doc := loadContacts(t)

	type summary struct {
		ID, Method, Path, MediaType string
	}
	var got []summary
	for _, op := range doc.Operations() {
		got = append(got, summary{op.ID, op.Method, op.Path, op.MediaType})
	}
	want := []summary{
		{"createContact", "POST", "/contacts", "application/x-www-form-urlencoded"},
		{"put:/contacts/{id}", "PUT", "/contacts/{id}", "application/json"},
		{"uploadAvatar", "POST", "/contacts/{id}/avatar", "multipart/form-data"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("operations mismatch (-want +got):\n%s", diff)
	}
}

func TestOperationFormSpec(t *testing.T) {
	doc := loadContacts(t)
	op, ok := doc.Operation("createContact")
	if !ok {
		t.Fatalf("expected createContact")
	}
	spec, err := op.FormSpec()
	if err != nil {
		t.Fatalf("form spec: %v", err)
	}

	type summary struct {
		Key, Kind, InputType string
		Required             bool
	}
	var got []summary
	for _, f := range spec.Fields {
		got = append(got, summary{f.Key, f.Kind, f.InputType, f.Required})
	}
	want := []summary{
		{Key: "age", Kind: "text", InputType: "number"},
		{Key: "birthday", Kind: "date"},
		{Key: "email", Kind: "email", Required: true},
		{Key: "first_name", Kind: "text", Required: true},
		{Key: "kind", Kind: "select"},
		{Key: "newsletter", Kind: "checkbox"},
		{Key: "tags", Kind: "checkbox"},
		{Key: "zip", Kind: "text"},
		{Key: "submit", Kind: "submit"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	if spec.Method != "POST" || spec.Action != "/contacts" || spec.Multipart {
		t.Fatalf("unexpected form header: %+v", spec)
	}
	if spec.Fields[3].Label != "First name" {
		t.Fatalf("expected humanized label, got %q", spec.Fields[3].Label)
	}
	if spec.Fields[8].Label != "Create contact" {
		t.Fatalf("expected summary as submit label, got %q", spec.Fields[8].Label)
	}
}

func TestDocumentStore(t *testing.T) {
	doc := loadContacts(t)
	store, err := doc.Store()
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if diff := cmp.Diff([]string{"createContact", "put:/contacts/{id}", "uploadAvatar"}, store.IDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}

	entry, _ := store.Entry("createContact")
	f, err := entry.New(nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	kind, _ := f.Field("kind")
	want := `<select name="kind"><option value="person" selected="selected">person</option><option value="company">company</option></select>`
	if got := kind.Render(); got != want {
		t.Fatalf("select markup mismatch\nwant %s\ngot  %s", want, got)
	}

	f.SetData(map[string]any{
		"first_name": "A",
		"email":      "ada@example.com",
		"age":        "12",
		"zip":        "abc",
		"tags":       []string{"friend", "enemy"},
		"newsletter": "true",
	})
	if valid, err := f.IsValid(); err != nil || valid {
		t.Fatalf("expected invalid form, got valid=%v err=%v", valid, err)
	}
	var failed []string
	for key := range f.Errors {
		failed = append(failed, key)
	}
	sort.Strings(failed)
	if diff := cmp.Diff([]string{"age", "first_name", "tags", "zip"}, failed); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
	if got := f.Value("age"); got != 12 {
		t.Fatalf("expected int filter, got %#v", got)
	}
	if got := f.Value("newsletter"); got != true {
		t.Fatalf("expected bool filter, got %#v", got)
	}
}

func TestDocumentStore_MethodOverride(t *testing.T) {
	store, err := loadContacts(t).Store()
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	entry, _ := store.Entry("put:/contacts/{id}")
	f, _ := entry.New(nil)
	if f.Method != "POST" || f.HTTPRequestMethod != "PUT" {
		t.Fatalf("expected POST with PUT override, got %q/%q", f.Method, f.HTTPRequestMethod)
	}
}

func TestDocumentStore_Multipart(t *testing.T) {
	store, err := loadContacts(t).Store()
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	entry, _ := store.Entry("uploadAvatar")
	f, _ := entry.New(nil)
	if f.Enctype() != form.EnctypeMultipart {
		t.Fatalf("expected multipart enctype, got %q", f.Enctype())
	}
	file, _ := f.Field("file")
	if file.Kind != fields.KindFile || !file.Required {
		t.Fatalf("unexpected file field: %+v", file)
	}
	caption, _ := f.Field("caption")
	if caption.Kind != fields.KindTextarea {
		t.Fatalf("expected long string to render as textarea, got %s", caption.Kind)
	}
}

func TestLoader_FS(t *testing.T) {
	data, err := os.ReadFile("testdata/contacts.yaml")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	files := fstest.MapFS{"specs/contacts.yaml": {Data: data}}

	loader := openapi.NewLoader(openapi.WithFileSystem(files))
	doc, err := loader.Load(context.Background(), openapi.SourceFromFS("specs/contacts.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.Location() != "specs/contacts.yaml" || len(doc.Operations()) != 3 {
		t.Fatalf("unexpected document from fs: %s", doc.Location())
	}

	if _, err := openapi.NewLoader().Load(context.Background(), openapi.SourceFromFS("specs/contacts.yaml")); err == nil {
		t.Fatalf("expected error without filesystem")
	}
}

func TestLoader_URL(t *testing.T) {
	data, err := os.ReadFile("testdata/contacts.yaml")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(data)
	}))
	defer server.Close()

	_, err = openapi.NewLoader().Load(context.Background(), openapi.SourceFromURL(server.URL))
	if !errors.Is(err, openapi.ErrHTTPDisabled) {
		t.Fatalf("expected ErrHTTPDisabled, got %v", err)
	}

	loader := openapi.NewLoader(openapi.WithHTTPClient(server.Client()), openapi.WithValidation())
	doc, err := loader.Load(context.Background(), openapi.SourceFromURL(server.URL))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(doc.Definitions().Forms) != 3 {
		t.Fatalf("expected three forms, got %d", len(doc.Definitions().Forms))
	}
}

func TestLoader_ParseErrors(t *testing.T) {
	loader := openapi.NewLoader()
	if _, err := loader.Parse(context.Background(), openapi.SourceFromFile("empty.yaml"), nil); err == nil {
		t.Fatalf("expected error for empty payload")
	}
	if _, err := loader.Parse(context.Background(), openapi.SourceFromFile("bad.yaml"), []byte("openapi: [")); err == nil {
		t.Fatalf("expected parse error")
	}
}

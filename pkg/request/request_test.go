package request_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-form/pkg/request"
)

func TestFromHTTP_URLEncoded(t *testing.T) {
	body := url.Values{"checkbox[]": {"1", "2"}, "name": {"simon"}}.Encode()
	req := httptest.NewRequest(http.MethodPost, "/submit?page=2", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	src, err := request.FromHTTP(req, 0)
	if err != nil {
		t.Fatalf("from http: %v", err)
	}
	if diff := cmp.Diff([]string{"1", "2"}, src.PostValues()["checkbox[]"]); diff != "" {
		t.Fatalf("post mismatch (-want +got):\n%s", diff)
	}
	if got := src.QueryValues().Get("page"); got != "2" {
		t.Fatalf("expected query page=2, got %q", got)
	}
}

func TestFromHTTP_Multipart(t *testing.T) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.WriteField("first_name", "1234"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	part, err := writer.CreateFormFile("avatar", "avatar.txt")
	if err != nil {
		t.Fatalf("create file: %v", err)
	}
	if _, err := part.Write([]byte("hello")); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	src, err := request.FromHTTP(req, 1<<20)
	if err != nil {
		t.Fatalf("from http: %v", err)
	}
	if got := src.PostValues().Get("first_name"); got != "1234" {
		t.Fatalf("expected first_name=1234, got %q", got)
	}
	files := src.FileValues()["avatar"]
	if len(files) != 1 || files[0].Filename != "avatar.txt" {
		t.Fatalf("expected uploaded avatar, got %+v", files)
	}
}

func TestFromHTTP_NilRequest(t *testing.T) {
	if _, err := request.FromHTTP(nil, 0); err == nil {
		t.Fatalf("expected error for nil request")
	}
}

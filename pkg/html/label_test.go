package html_test

import (
	"testing"

	"github.com/goliatone/go-form/pkg/html"
)

func TestLabel_Render(t *testing.T) {
	label := html.NewLabel("Testing", nil)
	if got := label.Render(); got != "<label >Testing</label>" {
		t.Fatalf("unexpected label markup: %q", got)
	}
	if got := label.Render(); got != label.Render() {
		t.Fatalf("label render is not stable")
	}
}

func TestLabel_RenderWithOverrides(t *testing.T) {
	label := html.NewLabel("Testing", nil)
	if got := label.RenderWith("Te", "test"); got != `<label for="test">Te</label>` {
		t.Fatalf("unexpected label markup: %q", got)
	}
	if label.Text != "Testing" {
		t.Fatalf("override mutated label text: %q", label.Text)
	}
}

func TestLabel_KeepsExtraAttributes(t *testing.T) {
	label := html.NewLabel("Test", html.Attributes{"class": "inline"})
	if got := label.RenderWith("Test", "test"); got != `<label class="inline" for="test">Test</label>` {
		t.Fatalf("unexpected label markup: %q", got)
	}
}

package htmlsanitize_test

import (
	"strings"
	"testing"

	"github.com/rotahub/rotahub/internal/app/system/htmlsanitize"
)

func TestSanitize_Empty(t *testing.T) {
	result := htmlsanitize.Sanitize("")
	if result != "" {
		t.Errorf("expected empty string, got %q", result)
	}
}

func TestSanitize_PlainText(t *testing.T) {
	result := htmlsanitize.Sanitize("Handover at 14:00, bleep 1234")
	if result != "Handover at 14:00, bleep 1234" {
		t.Errorf("expected plain text unchanged, got %q", result)
	}
}

func TestSanitize_SafeHTML(t *testing.T) {
	input := "<p><strong>Late start</strong> and <em>cover needed</em></p>"
	result := htmlsanitize.Sanitize(input)
	if result != input {
		t.Errorf("expected safe HTML preserved, got %q", result)
	}
}

func TestSanitize_RemovesScript(t *testing.T) {
	input := "<p>Hello</p><script>alert('xss')</script>"
	result := htmlsanitize.Sanitize(input)
	if result != "<p>Hello</p>" {
		t.Errorf("expected script removed, got %q", result)
	}
}

func TestSanitize_RemovesOnclick(t *testing.T) {
	input := `<button onclick="alert('xss')">Click</button>`
	result := htmlsanitize.Sanitize(input)
	if result == input {
		t.Error("expected onclick attribute to be removed")
	}
}

func TestSanitize_RemovesJavascriptHref(t *testing.T) {
	input := `<a href="javascript:alert('xss')">Click</a>`
	result := htmlsanitize.Sanitize(input)
	if result == input {
		t.Error("expected javascript: href to be removed")
	}
}

func TestSanitize_AllowsLists(t *testing.T) {
	input := "<ul><li>Ward 3</li><li>Dispensary</li></ul>"
	result := htmlsanitize.Sanitize(input)
	if result != input {
		t.Errorf("expected list preserved, got %q", result)
	}
}

func TestStripTags_Empty(t *testing.T) {
	if got := htmlsanitize.StripTags(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestStripTags_PlainTextUnchanged(t *testing.T) {
	if got := htmlsanitize.StripTags("Offsite clinic"); got != "Offsite clinic" {
		t.Errorf("expected plain text unchanged, got %q", got)
	}
}

func TestStripTags_RemovesAllTags(t *testing.T) {
	got := htmlsanitize.StripTags("<b>Ward</b> <i>7</i>")
	if got != "Ward 7" {
		t.Errorf("expected all tags removed, got %q", got)
	}
}

func TestStripTags_RemovesScriptContent(t *testing.T) {
	got := htmlsanitize.StripTags("Pharmacy<script>alert('xss')</script>")
	if strings.Contains(got, "alert") {
		t.Errorf("expected script content removed, got %q", got)
	}
	if !strings.Contains(got, "Pharmacy") {
		t.Errorf("expected text preserved, got %q", got)
	}
}

func TestStripTags_DecodesEntities(t *testing.T) {
	got := htmlsanitize.StripTags("Theatres &amp; Recovery")
	if got != "Theatres & Recovery" {
		t.Errorf("expected entities decoded, got %q", got)
	}
}

func TestStripTags_TrimsWhitespace(t *testing.T) {
	got := htmlsanitize.StripTags("  Ward 2  ")
	if got != "Ward 2" {
		t.Errorf("expected surrounding whitespace trimmed, got %q", got)
	}
}

package markdown

import (
	"strings"
	"testing"
)

func TestResolvePlaceholdersReplacesKnownTokens(t *testing.T) {
	content := "Panen raya! {{image:12}} Hasilnya memuaskan."
	images := []ImageRef{{ID: "12", URL: "https://cdn.example.com/p.jpg", Alt: "panen"}}

	got := ResolvePlaceholders(content, images)

	if !strings.Contains(got, "![panen](https://cdn.example.com/p.jpg)") {
		t.Fatalf("expected resolved image syntax, got %q", got)
	}
	if !strings.HasPrefix(got, "Panen raya! ") || !strings.HasSuffix(got, " Hasilnya memuaskan.") {
		t.Fatalf("surrounding text must be preserved, got %q", got)
	}
}

func TestResolvePlaceholdersStripsUnknownTokens(t *testing.T) {
	content := "Sebelum {{image:99}} sesudah"

	got := ResolvePlaceholders(content, nil)

	if strings.Contains(got, "{{image:") {
		t.Fatalf("unresolved token must never leak into output, got %q", got)
	}
	if got != "Sebelum  sesudah" {
		t.Fatalf("only the token should be removed, got %q", got)
	}
}

func TestResolvePlaceholdersWithoutTokensIsPassthrough(t *testing.T) {
	content := "Tidak ada gambar di sini."
	if got := ResolvePlaceholders(content, nil); got != content {
		t.Fatalf("content without tokens must pass through, got %q", got)
	}
}

func TestRenderSanitizesScripts(t *testing.T) {
	r := NewRenderer()

	html, err := r.Render("hello <script>alert(1)</script> world", nil)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if strings.Contains(html, "<script") {
		t.Fatalf("script tags must be stripped, got %q", html)
	}
}

func TestRenderResolvesImagesIntoHTML(t *testing.T) {
	r := NewRenderer()
	images := []ImageRef{{ID: "a1", URL: "https://cdn.example.com/a.png", Alt: "foto"}}

	html, err := r.Render("lihat {{image:a1}}", images)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(html, `src="https://cdn.example.com/a.png"`) {
		t.Fatalf("expected img tag with resolved URL, got %q", html)
	}
}

func TestPreviewStripsMarkupAndTruncates(t *testing.T) {
	r := NewRenderer()

	content := "# Judul\n\nIni **tebal** dan {{image:5}} panjang sekali " + strings.Repeat("x", 300)
	got := r.Preview(content, 50)

	if strings.Contains(got, "{{image:") || strings.Contains(got, "**") || strings.Contains(got, "#") {
		t.Fatalf("preview must be plain text, got %q", got)
	}
	if len([]rune(got)) > 51 { // 50 + ellipsis
		t.Fatalf("preview longer than limit: %d runes", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("truncated preview should end with ellipsis, got %q", got)
	}
}

func TestPreviewShortContentNotTruncated(t *testing.T) {
	r := NewRenderer()
	got := r.Preview("singkat saja", 50)
	if got != "singkat saja" {
		t.Fatalf("short content must not be altered, got %q", got)
	}
}

func TestPlainTextCollapsesWhitespace(t *testing.T) {
	got := PlainText("baris satu\n\nbaris   dua")
	if got != "baris satu baris dua" {
		t.Fatalf("expected collapsed plain text, got %q", got)
	}
}

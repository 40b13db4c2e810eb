package markdown

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Konten tersimpan boleh menyisipkan token {{image:ID}} yang dipetakan
// ke daftar gambar milik entitas saat dirender. Token yang tidak
// terpetakan selalu dibuang, tidak pernah ditampilkan sebagai teks.

// ImageRef is one resolvable attachment of the entity being rendered.
type ImageRef struct {
	ID  string
	URL string
	Alt string
}

var placeholderRe = regexp.MustCompile(`\{\{image:([A-Za-z0-9_-]+)\}\}`)

type Renderer struct {
	md        goldmark.Markdown
	sanitizer *bluemonday.Policy
}

func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
		// UGCPolicy keeps basic formatting and images while stripping
		// anything script-bearing.
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// Render resolves placeholders against the image list, renders the
// markdown, and sanitizes the resulting HTML.
func (r *Renderer) Render(content string, images []ImageRef) (string, error) {
	resolved := ResolvePlaceholders(content, images)

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(resolved), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}

	return r.sanitizer.Sanitize(buf.String()), nil
}

// ResolvePlaceholders replaces every {{image:ID}} token with markdown
// image syntax; tokens with no matching image are stripped.
func ResolvePlaceholders(content string, images []ImageRef) string {
	if !strings.Contains(content, "{{image:") {
		return content
	}

	byID := make(map[string]ImageRef, len(images))
	for _, img := range images {
		byID[img.ID] = img
	}

	return placeholderRe.ReplaceAllStringFunc(content, func(token string) string {
		id := placeholderRe.FindStringSubmatch(token)[1]
		img, ok := byID[id]
		if !ok {
			return ""
		}
		return fmt.Sprintf("![%s](%s)", img.Alt, img.URL)
	})
}

// Preview menghasilkan kutipan teks polos untuk tampilan daftar:
// tanpa token, tanpa markup, dipotong maksimal n rune.
func (r *Renderer) Preview(content string, n int) string {
	text := r.plain(content)

	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return strings.TrimSpace(string(runes[:n])) + "…"
}

func (r *Renderer) plain(content string) string {
	stripped := placeholderRe.ReplaceAllString(content, "")

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(stripped), &buf); err != nil {
		buf.Reset()
		buf.WriteString(stripped)
	}

	text := buf.String()
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(text)); err == nil {
		text = doc.Text()
	}

	return strings.Join(strings.Fields(text), " ")
}

var defaultRenderer = NewRenderer()

// PlainText mengubah markdown menjadi teks polos, dipakai untuk
// pengindeksan pencarian.
func PlainText(content string) string {
	return defaultRenderer.plain(content)
}

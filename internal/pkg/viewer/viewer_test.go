package viewer

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"unicode"
	"unicode/utf8"
)

func TestDeriveLengthAndCharset(t *testing.T) {
	key := Derive("Mozilla/5.0", "id-ID", "1920x1080", time.Now())

	if len(key) != KeyLength {
		t.Fatalf("expected key length %d, got %d (%q)", KeyLength, len(key), key)
	}
	for _, r := range key {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			t.Fatalf("key %q contains non-alphanumeric rune %q", key, r)
		}
	}
}

func TestDeriveEmptyInputsStillFillsKey(t *testing.T) {
	key := Derive("", "", "", time.Unix(0, 0))
	if len(key) != KeyLength {
		t.Fatalf("expected padded key of length %d, got %q", KeyLength, key)
	}
}

func TestFromRequestHeaderWinsOverCookie(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(HeaderName, "headerkey1234567")
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "cookiekey1234567"})

	if got := FromRequest(r); got != "headerkey1234567" {
		t.Fatalf("expected header key, got %q", got)
	}
}

func TestFromRequestSanitizesKey(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(HeaderName, "abc!@#def123ghi456jkl")

	got := FromRequest(r)
	if len(got) != KeyLength {
		t.Fatalf("expected sanitized key trimmed to %d, got %q", KeyLength, got)
	}
	for _, c := range got {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) {
			t.Fatalf("sanitized key %q still contains %q", got, c)
		}
	}
}

func TestFromRequestTruncatesMultibyteKeyByRunes(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	// 20 huruf Jepang, masing-masing 3 byte dalam UTF-8
	r.Header.Set(HeaderName, "あいうえおかきくけこさしすせそたちつてと")

	got := FromRequest(r)
	if !utf8.ValidString(got) {
		t.Fatalf("truncation split a rune: %q", got)
	}
	if utf8.RuneCountInString(got) != KeyLength {
		t.Fatalf("expected %d runes, got %d (%q)", KeyLength, utf8.RuneCountInString(got), got)
	}
	if got != "あいうえおかきくけこさしすせそた" {
		t.Fatalf("expected the first %d runes kept, got %q", KeyLength, got)
	}
}

func TestGetOrCreateIsStableForSameKey(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(HeaderName, "stablekey1234567")

	first := GetOrCreate(httptest.NewRecorder(), r)
	second := GetOrCreate(httptest.NewRecorder(), r)

	if first != second {
		t.Fatalf("same request must yield same key: %q vs %q", first, second)
	}
	if first != "stablekey1234567" {
		t.Fatalf("expected carried key to be reused, got %q", first)
	}
}

func TestGetOrCreateSetsCookieForNewVisitor(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	key := GetOrCreate(w, r)
	if len(key) != KeyLength {
		t.Fatalf("expected generated key of length %d, got %q", KeyLength, key)
	}

	cookies := w.Result().Cookies()
	found := false
	for _, c := range cookies {
		if c.Name == CookieName && c.Value == key {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected %s cookie carrying the new key, got %v", CookieName, cookies)
	}
}

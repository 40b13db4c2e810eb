package viewer

import (
	"encoding/base64"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Pengunjung portal tidak punya akun: setiap browser membawa kunci
// pseudo-anonim untuk atribusi like dan komentar. Kunci hanyalah
// petunjuk best-effort, bukan batas keamanan.

const (
	CookieName = "pj_viewer"
	HeaderName = "X-Viewer-ID"
	KeyLength  = 16

	cookieMaxAge = 365 * 24 * 60 * 60
)

// FromRequest mengembalikan kunci viewer dari request, atau string kosong.
// Header menang atas cookie supaya klien non-browser bisa memaksakan kunci.
func FromRequest(r *http.Request) string {
	if key := r.Header.Get(HeaderName); key != "" {
		return sanitize(key)
	}
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return sanitize(c.Value)
	}
	return ""
}

// Derive membuat kunci baru dari atribut request dan waktu saat ini:
// base64 dari gabungan atribut, non-alfanumerik dibuang, dipotong 16 karakter.
func Derive(userAgent, acceptLanguage, screenHint string, now time.Time) string {
	seed := userAgent + "|" + acceptLanguage + "|" + screenHint + "|" + strconv.FormatInt(now.UnixNano(), 10)
	encoded := base64.StdEncoding.EncodeToString([]byte(seed))

	var b strings.Builder
	b.Grow(KeyLength)
	for _, r := range encoded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			if b.Len() == KeyLength {
				break
			}
		}
	}

	key := b.String()
	// base64 output hampir selalu cukup panjang; padding hanya untuk input kosong
	for len(key) < KeyLength {
		key = key + "0"
	}
	return key
}

// GetOrCreate mengembalikan kunci yang dibawa request, atau menurunkan
// kunci baru dan menuliskannya sebagai cookie tahan lama.
func GetOrCreate(w http.ResponseWriter, r *http.Request) string {
	if key := FromRequest(r); key != "" {
		return key
	}

	key := Derive(r.UserAgent(), r.Header.Get("Accept-Language"), r.Header.Get("X-Screen"), time.Now())
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    key,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		SameSite: http.SameSiteLaxMode,
	})
	return key
}

// sanitize membuang rune non-alfanumerik dan memotong per rune, bukan
// per byte, supaya huruf multibyte tidak terpenggal di tengah.
func sanitize(key string) string {
	var b strings.Builder
	n := 0
	for _, r := range key {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			n++
			if n == KeyLength {
				break
			}
		}
	}
	return b.String()
}

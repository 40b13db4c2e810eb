package imagex

import (
	"image"
	"io"

	"github.com/disintegration/imaging"
)

// Rendition gambar untuk penampil portal: zoom dan rotasi dihitung di
// sisi server sehingga semua klien melihat hasil yang sama.

const (
	MinZoom = 0.5
	MaxZoom = 5.0

	// ZoomStep adalah kelipatan per klik tombol zoom di portal
	ZoomStep = 1.5

	ThumbnailSize = 320
)

// Transform is the controllable view state of a single image.
type Transform struct {
	Zoom     float64
	Rotation int
}

// Reset is the state every freshly opened view starts from.
func Reset() Transform {
	return Transform{Zoom: 1, Rotation: 0}
}

// Normalize clamps zoom to [MinZoom, MaxZoom] and snaps rotation to a
// multiple of 90 in [0, 270]. A zero-value zoom means "unset" and
// resets to 1.
func (t Transform) Normalize() Transform {
	out := t

	if out.Zoom == 0 {
		out.Zoom = 1
	}
	if out.Zoom < MinZoom {
		out.Zoom = MinZoom
	}
	if out.Zoom > MaxZoom {
		out.Zoom = MaxZoom
	}

	r := out.Rotation % 360
	if r < 0 {
		r += 360
	}
	out.Rotation = r - r%90
	return out
}

// IsIdentity reports whether applying the transform would change nothing.
func (t Transform) IsIdentity() bool {
	n := t.Normalize()
	return n.Zoom == 1 && n.Rotation == 0
}

// Apply renders the transform: rotation first, then scaling.
func Apply(src image.Image, t Transform) image.Image {
	n := t.Normalize()

	out := src
	switch n.Rotation {
	case 90:
		out = imaging.Rotate90(out)
	case 180:
		out = imaging.Rotate180(out)
	case 270:
		out = imaging.Rotate270(out)
	}

	if n.Zoom != 1 {
		w := int(float64(out.Bounds().Dx()) * n.Zoom)
		if w < 1 {
			w = 1
		}
		out = imaging.Resize(out, w, 0, imaging.Lanczos)
	}

	return out
}

// Thumbnail membuat rendition kecil untuk tampilan daftar.
func Thumbnail(src image.Image) image.Image {
	return imaging.Fit(src, ThumbnailSize, ThumbnailSize, imaging.Lanczos)
}

func Decode(r io.Reader) (image.Image, error) {
	return imaging.Decode(r)
}

// Encode writes the image back in the format matching its mimetype;
// unknown types fall back to JPEG.
func Encode(w io.Writer, img image.Image, mimeType string) error {
	return imaging.Encode(w, img, FormatFromMime(mimeType))
}

func FormatFromMime(mimeType string) imaging.Format {
	switch mimeType {
	case "image/png":
		return imaging.PNG
	case "image/gif":
		return imaging.GIF
	default:
		return imaging.JPEG
	}
}

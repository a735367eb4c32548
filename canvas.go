package inks

import "image"

// Canvas is the immediate-mode 2D drawing target the renderer issues
// commands to. Transform, alpha, blend, shadow and clip are part of the
// saved state.
type Canvas interface {
	Clear(c Color)
	Save()
	Restore()

	Translate(x, y float64)
	Rotate(theta float64)
	Scale(x, y float64)

	// SetAlpha sets the global alpha applied to subsequent draws.
	SetAlpha(a float64)
	SetBlendMode(b BlendMode)
	// SetShadow sets the drop shadow for subsequent draws; nil disables it.
	SetShadow(s *Shadow)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadTo(cx, cy, x, y float64)
	// Arc adds a clockwise arc around (cx, cy) from start to end radians.
	Arc(cx, cy, r, start, end float64)
	Rect(x, y, w, h float64)
	ClosePath()

	Fill(c Color)
	Stroke(c Color, style StrokeStyle)
	// Clip restricts subsequent draws to the current path until Restore.
	Clip()

	// DrawImage draws the src region of img into dst in local coordinates.
	DrawImage(img Image, src, dst Rect)
	// FillText draws s with its top-left corner at (x, y). A nil font
	// selects the backend's debug font.
	FillText(s string, x, y float64, font Font, c Color)
	DebugPrint(msg string, x, y float64)
}

// StrokeStyle holds the line parameters for Canvas.Stroke.
type StrokeStyle struct {
	Width float64
	Join  LineJoin
	Cap   LineCap
}

// Image is a raster source. *ebiten.Image satisfies it.
type Image interface {
	Bounds() image.Rectangle
}

// AssetStore resolves image keys for sprites at render time.
type AssetStore interface {
	Image(key string) (Image, bool)
}

// MapAssets is an AssetStore backed by a map.
type MapAssets map[string]Image

// Image returns the image stored under key.
func (m MapAssets) Image(key string) (Image, bool) {
	img, ok := m[key]
	return img, ok
}

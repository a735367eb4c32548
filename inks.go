package inks

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// A color with zero alpha is treated as "none" by the renderer and the
// corresponding fill or stroke is skipped.
type Color struct {
	R, G, B, A float64
}

var (
	// ColorNone disables a fill or stroke.
	ColorNone = Color{}
	// ColorWhite is opaque white.
	ColorWhite = Color{1, 1, 1, 1}
	// ColorBlack is opaque black.
	ColorBlack = Color{0, 0, 0, 1}
	// ColorGray is the default shape fill.
	ColorGray = Color{128.0 / 255, 128.0 / 255, 128.0 / 255, 1}
	// ColorRed is used for debug bounds.
	ColorRed = Color{1, 0, 0, 1}
)

// IsNone reports whether the color is fully transparent.
func (c Color) IsNone() bool {
	return c.A <= 0
}

// WithAlpha returns c with its alpha multiplied by a.
func (c Color) WithAlpha(a float64) Color {
	c.A *= a
	return c
}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width == 0 && r.Height == 0
}

// BlendMode selects a compositing operation. Each maps to a specific ebiten.Blend value.
type BlendMode uint8

const (
	BlendNormal   BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                       // additive / lighter
	BlendMultiply                  // multiply (source * destination; only darkens)
	BlendScreen                    // screen (1 - (1-src)*(1-dst); only brightens)
	BlendErase                     // destination-out (punch transparent holes)
	BlendMask                      // destination-in (clip destination to source alpha)
	BlendBelow                     // destination-over (draw behind existing content)
	BlendNone                      // copy (skip blending)
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendNormal:
		return ebiten.BlendSourceOver
	case BlendAdd:
		return ebiten.BlendLighter
	case BlendMultiply:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
			BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendScreen:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendErase:
		return ebiten.BlendDestinationOut
	case BlendMask:
		return ebiten.BlendDestinationIn
	case BlendBelow:
		return ebiten.BlendDestinationOver
	case BlendNone:
		return ebiten.BlendCopy
	default:
		return ebiten.BlendSourceOver
	}
}

// NodeType distinguishes rendering and collision behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypeCircle                    // circle or arc; radius is Width/2
	NodeTypeRectangle                 // rectangle with optional rounded corners
	NodeTypeTriangle                  // right triangle inclined left or right
	NodeTypeLine                      // segment between A and B
	NodeTypeSprite                    // image pulled from the asset store
	NodeTypeText                      // lines of text sized to their content
)

var nodeTypeNames = [...]string{"container", "circle", "rectangle", "triangle", "line", "sprite", "text"}

func (t NodeType) String() string {
	if int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return "unknown"
}

// Side reports which face of a shape a collision happened on.
type Side uint8

const (
	SideNone Side = iota
	SideTop
	SideBottom
	SideLeft
	SideRight
	SideHypotenuse
)

var sideNames = [...]string{"none", "top", "bottom", "left", "right", "hypotenuse"}

func (s Side) String() string {
	if int(s) < len(sideNames) {
		return sideNames[s]
	}
	return "unknown"
}

// Inclination selects which way a triangle's hypotenuse leans.
type Inclination uint8

const (
	// InclinationRight places the right angle at the bottom-left corner.
	InclinationRight Inclination = iota
	// InclinationLeft places the right angle at the bottom-right corner.
	InclinationLeft
)

// LineJoin controls how stroked path segments are joined.
type LineJoin uint8

const (
	JoinRound LineJoin = iota
	JoinBevel
	JoinMiter
)

// LineCap controls how the ends of stroked paths are drawn.
type LineCap uint8

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// Shadow describes a drop shadow drawn beneath a node.
type Shadow struct {
	Color            Color
	OffsetX, OffsetY float64
	Blur             float64
}

// DefaultShadow returns the shadow used when a node enables shadows without
// customizing them.
func DefaultShadow() *Shadow {
	return &Shadow{
		Color:   Color{100.0 / 255, 100.0 / 255, 100.0 / 255, 0.5},
		OffsetX: 3,
		OffsetY: 3,
		Blur:    3,
	}
}

// Corners holds per-corner rounding radii for rectangles.
type Corners struct {
	TopLeft, TopRight, BottomRight, BottomLeft float64
}

// IsZero reports whether every corner is square.
func (c Corners) IsZero() bool {
	return c == Corners{}
}

package inks

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Glyph size of ebiten's built-in debug font, used when a text node has no
// Font.
const (
	debugGlyphW = 6
	debugGlyphH = 16
)

// Font measures text for layout.
type Font interface {
	MeasureString(s string) (width, height float64)
	LineHeight() float64
}

// TextAlign selects the horizontal alignment of text lines.
type TextAlign uint8

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// TTFFont wraps ebiten's text/v2 for TrueType rendering.
type TTFFont struct {
	face *text.GoTextFace
	lh   float64
}

// LoadTTFFont loads a TrueType or OpenType font at the given pixel size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &TTFFont{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}, nil
}

// MeasureString returns the size of the rendered string.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying face.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}

// NewText creates a text node. A nil font uses the debug font, which
// ignores the fill color.
func NewText(name, content string, font Font, col Color) *Node {
	n := &Node{Name: name, Type: NodeTypeText, Font: font}
	nodeDefaults(n)
	n.Fill = col
	n.Stroke = ColorNone
	n.SetText(content)
	return n
}

// SetText replaces the content and resizes the node to fit it.
func (n *Node) SetText(s string) {
	n.Text = s
	n.measureText()
	n.Bounds.Width, n.Bounds.Height = n.Width, n.Height
}

// measureText sets Width and Height to the size of the text block.
func (n *Node) measureText() {
	lines := strings.Split(n.Text, "\n")
	w, lh := 0.0, n.lineHeight()
	for _, line := range lines {
		lw, _ := n.measureLine(line)
		w = max(w, lw)
	}
	n.Width = w
	n.Height = lh*float64(len(lines)) + n.Leading*float64(len(lines)-1)
}

func (n *Node) lineHeight() float64 {
	if n.Font == nil {
		return debugGlyphH
	}
	return n.Font.LineHeight()
}

func (n *Node) measureLine(line string) (float64, float64) {
	if n.Font == nil {
		return float64(len([]rune(line)) * debugGlyphW), debugGlyphH
	}
	return n.Font.MeasureString(line)
}

// drawText prints every line inside the node's box, aligned by TextAlign.
func (n *Node) drawText(c Canvas) {
	if n.Text == "" {
		return
	}
	x, y := n.origin()
	lh := n.lineHeight()
	for i, line := range strings.Split(n.Text, "\n") {
		lw, _ := n.measureLine(line)
		lx := x
		switch n.TextAlign {
		case AlignCenter:
			lx += (n.Width - lw) / 2
		case AlignRight:
			lx += n.Width - lw
		}
		c.FillText(line, lx, y+float64(i)*(lh+n.Leading), n.Font, n.Fill)
	}
}

package inks

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownFrame is returned when an atlas has no frame with the requested
// name.
var ErrUnknownFrame = errors.New("inks: unknown atlas frame")

// Atlas maps frame names to source rectangles within one sprite-sheet
// image. Image is the asset key of that image, taken from meta.image.
type Atlas struct {
	Image  string
	frames map[string]Rect
}

// LoadAtlas parses TexturePacker JSON data. Both the hash format ("frames"
// is an object keyed by name) and the array format ("frames" is a list of
// entries carrying "filename") are supported.
func LoadAtlas(jsonData []byte) (*Atlas, error) {
	var head struct {
		Frames json.RawMessage `json:"frames"`
		Meta   struct {
			Image string `json:"image"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(jsonData, &head); err != nil {
		return nil, fmt.Errorf("parse atlas: %w", err)
	}
	if len(head.Frames) == 0 {
		return nil, errors.New("parse atlas: no \"frames\" key")
	}

	atlas := &Atlas{Image: head.Meta.Image, frames: make(map[string]Rect)}
	var err error
	if head.Frames[0] == '[' {
		err = parseArrayFrames(head.Frames, atlas)
	} else {
		err = parseHashFrames(head.Frames, atlas)
	}
	if err != nil {
		return nil, err
	}
	return atlas, nil
}

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Filename string   `json:"filename"`
	Frame    jsonRect `json:"frame"`
}

func (f jsonFrame) rect() Rect {
	return Rect{float64(f.Frame.X), float64(f.Frame.Y), float64(f.Frame.W), float64(f.Frame.H)}
}

func parseHashFrames(raw json.RawMessage, atlas *Atlas) error {
	var frames map[string]jsonFrame
	if err := json.Unmarshal(raw, &frames); err != nil {
		return fmt.Errorf("parse atlas frames: %w", err)
	}
	for name, f := range frames {
		atlas.frames[name] = f.rect()
	}
	return nil
}

func parseArrayFrames(raw json.RawMessage, atlas *Atlas) error {
	var frames []jsonFrame
	if err := json.Unmarshal(raw, &frames); err != nil {
		return fmt.Errorf("parse atlas frames: %w", err)
	}
	for i, f := range frames {
		if f.Filename == "" {
			return fmt.Errorf("parse atlas frames: entry %d has no filename", i)
		}
		atlas.frames[f.Filename] = f.rect()
	}
	return nil
}

// Frame returns the source rectangle of the named frame.
func (a *Atlas) Frame(name string) (Rect, bool) {
	r, ok := a.frames[name]
	return r, ok
}

// Len returns the number of frames.
func (a *Atlas) Len() int {
	return len(a.frames)
}

// Names returns every frame name in sorted order.
func (a *Atlas) Names() []string {
	names := make([]string, 0, len(a.frames))
	for name := range a.frames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewSprite creates a sprite showing the named frames in order, sized to the
// first frame.
func (a *Atlas) NewSprite(nodeName string, frames ...string) (*Node, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("sprite %q: %w", nodeName, ErrUnknownFrame)
	}
	rects := make([]Rect, len(frames))
	for i, name := range frames {
		r, ok := a.frames[name]
		if !ok {
			return nil, fmt.Errorf("sprite %q frame %q: %w", nodeName, name, ErrUnknownFrame)
		}
		rects[i] = r
	}
	return NewSprite(nodeName, a.Image, rects[0].Width, rects[0].Height, rects...), nil
}

// GridFrames cuts an image of the given size into frameW x frameH cells,
// row by row. Partial cells at the right and bottom edges are skipped.
func GridFrames(imageW, imageH, frameW, frameH int) []Rect {
	if frameW <= 0 || frameH <= 0 {
		return nil
	}
	perRow, rows := imageW/frameW, imageH/frameH
	out := make([]Rect, 0, perRow*rows)
	for i := 0; i < perRow*rows; i++ {
		out = append(out, Rect{
			X:      float64(i%perRow * frameW),
			Y:      float64(i/perRow * frameH),
			Width:  float64(frameW),
			Height: float64(frameH),
		})
	}
	return out
}

package inks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hashAtlasJSON = `{
  "frames": {
    "walk_1": {"frame": {"x": 0, "y": 0, "w": 16, "h": 24}},
    "walk_0": {"frame": {"x": 16, "y": 0, "w": 16, "h": 24}},
    "idle":   {"frame": {"x": 32, "y": 8, "w": 12, "h": 12}}
  },
  "meta": {"image": "hero.png"}
}`

const arrayAtlasJSON = `{
  "frames": [
    {"filename": "coin", "frame": {"x": 1, "y": 2, "w": 8, "h": 8}},
    {"filename": "gem",  "frame": {"x": 9, "y": 2, "w": 8, "h": 10}}
  ],
  "meta": {"image": "items.png"}
}`

func TestLoadAtlasHash(t *testing.T) {
	a, err := LoadAtlas([]byte(hashAtlasJSON))
	require.NoError(t, err)
	assert.Equal(t, "hero.png", a.Image)
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, []string{"idle", "walk_0", "walk_1"}, a.Names())

	r, ok := a.Frame("idle")
	require.True(t, ok)
	assert.Equal(t, Rect{32, 8, 12, 12}, r)

	_, ok = a.Frame("jump")
	assert.False(t, ok)
}

func TestLoadAtlasArray(t *testing.T) {
	a, err := LoadAtlas([]byte(arrayAtlasJSON))
	require.NoError(t, err)
	assert.Equal(t, "items.png", a.Image)
	assert.Equal(t, []string{"coin", "gem"}, a.Names())

	r, _ := a.Frame("gem")
	assert.Equal(t, Rect{9, 2, 8, 10}, r)
}

func TestLoadAtlasErrors(t *testing.T) {
	cases := map[string]string{
		"not json":         `{`,
		"no frames":        `{"meta": {"image": "x.png"}}`,
		"missing filename": `{"frames": [{"frame": {"x": 0, "y": 0, "w": 1, "h": 1}}]}`,
		"bad frame type":   `{"frames": {"a": {"frame": "oops"}}}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadAtlas([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestAtlasNewSprite(t *testing.T) {
	a, err := LoadAtlas([]byte(hashAtlasJSON))
	require.NoError(t, err)

	s, err := a.NewSprite("hero", "walk_0", "walk_1")
	require.NoError(t, err)
	assert.Equal(t, NodeTypeSprite, s.Type)
	assert.Equal(t, "hero.png", s.Image)
	assert.Equal(t, 16.0, s.Width)
	assert.Equal(t, 24.0, s.Height)
	assert.Equal(t, []Rect{{16, 0, 16, 24}, {0, 0, 16, 24}}, s.Frames)

	_, err = a.NewSprite("hero", "walk_0", "fly")
	assert.ErrorIs(t, err, ErrUnknownFrame)
	assert.Contains(t, err.Error(), "fly")

	_, err = a.NewSprite("empty")
	assert.ErrorIs(t, err, ErrUnknownFrame)
}

func TestGridFrames(t *testing.T) {
	frames := GridFrames(50, 20, 16, 10)
	require.Len(t, frames, 6, "partial column is skipped")
	assert.Equal(t, Rect{0, 0, 16, 10}, frames[0])
	assert.Equal(t, Rect{32, 0, 16, 10}, frames[2])
	assert.Equal(t, Rect{16, 10, 16, 10}, frames[4])

	assert.Nil(t, GridFrames(64, 64, 0, 16))
	assert.Empty(t, GridFrames(8, 8, 16, 16))
}

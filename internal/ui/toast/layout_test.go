package toast

import (
	"fmt"
	"testing"

	"github.com/riordanpawley/toaster/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestComputeFrame_FixedWidth(t *testing.T) {
	calls := 0
	f := computeFrame(sampleToast(&calls), types.FixedWidth, DefaultMetrics(), Bounds{Width: 400, Height: 800})

	assert.Equal(t, 336, f.Width, "400 - 2*32")
	assert.True(t, f.HasTitle)
	assert.True(t, f.HasButton)
	assert.False(t, f.HasIcon)

	// title + spacing + message, padded above and below
	assert.Equal(t, 16+1+2+1+16, f.Height)
	assert.Equal(t, Rect{X: 16, Y: 16, Width: 5, Height: 1}, f.Title)
	assert.Equal(t, Rect{X: 16, Y: 19, Width: 17, Height: 1}, f.Message)

	// button trails with its own padding and is centered on the text stack
	assert.Equal(t, 336-16-6, f.Button.X)
	assert.Equal(t, 6, f.Button.Width)
	assert.Equal(t, 17, f.Button.Y)

	// the text area absorbs the slack up to the button inset
	assert.Equal(t, f.Button.X-16-f.Text.X, f.Text.Width)
}

func TestComputeFrame_FixedWidth_NarrowHost(t *testing.T) {
	f := computeFrame(types.Toast{Message: "m"}, types.FixedWidth, DefaultMetrics(), Bounds{Width: 40})

	assert.Equal(t, 0, f.Width)
	assert.Equal(t, 0, f.Text.Width)
}

func TestComputeFrame_FixedWidth_NarrowHostWithButton(t *testing.T) {
	calls := 0
	tests := []struct {
		host       int
		wantWidth  int
		wantButton Rect
	}{
		{17, 9, Rect{X: 2, Width: 6, Height: 1, Y: 1}},
		{16, 8, Rect{X: 2, Width: 6, Height: 1, Y: 1}},
		{12, 4, Rect{X: 2, Width: 2, Height: 1, Y: 1}},
		{9, 1, Rect{X: 2, Width: 0, Height: 1, Y: 1}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("host %d", tt.host), func(t *testing.T) {
			f := computeFrame(sampleToast(&calls), types.FixedWidth, cellMetrics, Bounds{Width: tt.host})

			assert.Equal(t, tt.wantWidth, f.Width)
			assert.Equal(t, tt.wantButton, f.Button)
			assert.Equal(t, 0, f.Text.Width)
		})
	}
}

func TestComputeFrame_ContentWidth(t *testing.T) {
	cfg := types.Toast{Icon: &types.Icon{Glyph: "@"}, Message: "m"}
	f := computeFrame(cfg, types.ContentWidth, DefaultMetrics(), Bounds{Width: 400})

	// icon + gap + text + leading and trailing padding
	assert.Equal(t, 1+16+1+2*16, f.Width)
	assert.False(t, f.HasTitle)
	assert.False(t, f.HasButton)
	assert.Equal(t, Rect{}, f.Button)
	assert.Equal(t, Rect{X: 16, Y: 16, Width: 1, Height: 1}, f.Icon)
	assert.Equal(t, 33, f.Text.X)
	assert.Equal(t, 33, f.Height)
}

func TestComputeFrame_ContentWidth_IgnoresHost(t *testing.T) {
	calls := 0
	cfg := sampleToast(&calls)

	narrow := computeFrame(cfg, types.ContentWidth, DefaultMetrics(), Bounds{Width: 10})
	wide := computeFrame(cfg, types.ContentWidth, DefaultMetrics(), Bounds{Width: 1000})

	assert.Equal(t, narrow.Width, wide.Width)
	// "message goes here" is wider than "Title"
	assert.Equal(t, 16+17+16+6+16, wide.Width)
}

func TestComputeFrame_TitlePresence(t *testing.T) {
	tests := []struct {
		name      string
		title     *string
		wantTitle bool
		wantH     int
	}{
		{"absent", nil, false, 1},
		{"present", strPtr("Hello"), true, 4},
		{"empty but present", strPtr(""), true, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := computeFrame(types.Toast{Title: tt.title, Message: "m"}, types.FixedWidth, DefaultMetrics(), Bounds{Width: 400})
			assert.Equal(t, tt.wantTitle, f.HasTitle)
			assert.Equal(t, tt.wantH, f.Text.Height)
		})
	}
}

func TestComputeFrame_TallIcon(t *testing.T) {
	m := Metrics{HorizontalPadding: 1, VerticalPadding: 1}
	cfg := types.Toast{Icon: &types.Icon{Glyph: "a\nb\nc"}, Message: "m"}

	f := computeFrame(cfg, types.ContentWidth, m, Bounds{})

	assert.Equal(t, 5, f.Height)
	assert.Equal(t, 1, f.Icon.Y)
	assert.Equal(t, 2, f.Text.Y, "text centered on the icon")
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 2, Y: 1, Width: 3, Height: 2}

	assert.True(t, r.Contains(2, 1))
	assert.True(t, r.Contains(4, 2))
	assert.False(t, r.Contains(5, 1))
	assert.False(t, r.Contains(2, 3))
	assert.False(t, Rect{}.Contains(0, 0))
}

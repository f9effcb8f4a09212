// Package rendertest provides in-memory render fakes that record what was
// drawn, for tests that run without a window.
package rendertest

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"chosenoffset.com/hatchling/internal/render"
)

func init() {
	if render.NewGeoM == nil {
		render.NewGeoM = func() render.GeoM { return &GeoM{SX: 1, SY: 1} }
	}
}

// Op is one recorded draw call.
type Op struct {
	Kind  string // "fill", "rect", "stroke", "text", "image"
	Text  string
	X, Y  float64
	Color color.Color
	Src   *Image
	GeoM  *GeoM
	Scale [4]float32
}

// Renderer records draw calls on the images it is given.
type Renderer struct{}

// NewImage creates a blank image.
func (r *Renderer) NewImage(width, height int) render.Image {
	return NewImage(width, height)
}

// NewImageFromImage wraps src's bounds.
func (r *Renderer) NewImageFromImage(src image.Image) render.Image {
	b := src.Bounds()
	return NewImage(b.Dx(), b.Dy())
}

func (r *Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	dst.(*Image).record(Op{Kind: "rect", X: float64(x), Y: float64(y), Color: clr})
}

func (r *Renderer) StrokeRect(dst render.Image, x, y, width, height, strokeWidth float32, clr color.Color) {
	dst.(*Image).record(Op{Kind: "stroke", X: float64(x), Y: float64(y), Color: clr})
}

func (r *Renderer) DrawText(dst render.Image, text string, x, y int, clr color.Color, scale float64) {
	dst.(*Image).record(Op{Kind: "text", Text: text, X: float64(x), Y: float64(y), Color: clr})
}

// MeasureText uses the same 6x13 cell as the debug font.
func (r *Renderer) MeasureText(text string, scale float64) (width, height int) {
	return int(float64(len(text)) * 6 * scale), int(13 * scale)
}

// Image is a recording render.Image.
type Image struct {
	W, H     int
	Ops      []Op
	Disposed bool
}

// NewImage creates a recording image of the given size.
func NewImage(width, height int) *Image {
	return &Image{W: width, H: height}
}

func (i *Image) Bounds() image.Rectangle   { return image.Rect(0, 0, i.W, i.H) }
func (i *Image) Size() (width, height int) { return i.W, i.H }
func (i *Image) Fill(clr color.Color)      { i.record(Op{Kind: "fill", Color: clr}) }
func (i *Image) Dispose()                  { i.Disposed = true }

func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	op := Op{Kind: "image", Src: src.(*Image)}
	if opts != nil {
		if g, ok := opts.GeoM.(*GeoM); ok {
			op.GeoM = g
			op.X, op.Y = g.TX, g.TY
		}
		op.Scale = opts.ColorScale
	}
	i.record(op)
}

func (i *Image) record(op Op) {
	i.Ops = append(i.Ops, op)
}

// Texts returns every string drawn, in order.
func (i *Image) Texts() []string {
	var out []string
	for _, op := range i.Ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

// Count returns how many ops of kind were recorded.
func (i *Image) Count(kind string) int {
	n := 0
	for _, op := range i.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// GeoM tracks scale and translation.
type GeoM struct {
	SX, SY float64
	TX, TY float64
}

func (g *GeoM) Translate(tx, ty float64) { g.TX += tx; g.TY += ty }

func (g *GeoM) Scale(sx, sy float64) {
	g.SX *= sx
	g.SY *= sy
	g.TX *= sx
	g.TY *= sy
}

func (g *GeoM) Reset() { *g = GeoM{SX: 1, SY: 1} }

// Input is a scripted render.InputManager. Pressed keys and buttons stay
// pressed until Release.
type Input struct {
	Keys    map[render.Key]bool
	Buttons map[render.MouseButton]bool
	X, Y    int
}

// NewInput creates an input with nothing pressed.
func NewInput() *Input {
	return &Input{Keys: map[render.Key]bool{}, Buttons: map[render.MouseButton]bool{}}
}

// Click presses the left button at (x, y).
func (in *Input) Click(x, y int) {
	in.X, in.Y = x, y
	in.Buttons[render.MouseButtonLeft] = true
}

// Press presses key.
func (in *Input) Press(key render.Key) {
	in.Keys[key] = true
}

// Release lets go of everything.
func (in *Input) Release() {
	clear(in.Keys)
	clear(in.Buttons)
}

func (in *Input) IsKeyJustPressed(key render.Key) bool { return in.Keys[key] }
func (in *Input) GetCursorPosition() (x, y int)        { return in.X, in.Y }
func (in *Input) IsMouseButtonJustPressed(button render.MouseButton) bool {
	return in.Buttons[button]
}

// Loader serves images for paths that exist on disk.
type Loader struct {
	Loaded []string
}

func (l *Loader) LoadImage(path string) (render.Image, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	l.Loaded = append(l.Loaded, path)
	return NewImage(1, 1), nil
}

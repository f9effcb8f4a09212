package rendertest_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"chosenoffset.com/hatchling/internal/render"
	"chosenoffset.com/hatchling/internal/render/rendertest"
)

var (
	_ render.Renderer       = (*rendertest.Renderer)(nil)
	_ render.Image          = (*rendertest.Image)(nil)
	_ render.GeoM           = (*rendertest.GeoM)(nil)
	_ render.InputManager   = (*rendertest.Input)(nil)
	_ render.ResourceLoader = (*rendertest.Loader)(nil)
)

func TestRendererRecordsOps(t *testing.T) {
	r := &rendertest.Renderer{}
	dst := rendertest.NewImage(10, 10)

	dst.Fill(color.Black)
	r.FillRect(dst, 1, 2, 3, 4, color.White)
	r.StrokeRect(dst, 1, 2, 3, 4, 1, color.White)
	r.DrawText(dst, "hi", 5, 6, color.White, 1)

	assert.Equal(t, 1, dst.Count("fill"))
	assert.Equal(t, 1, dst.Count("rect"))
	assert.Equal(t, 1, dst.Count("stroke"))
	assert.Equal(t, []string{"hi"}, dst.Texts())
}

func TestGeoMScaleThenTranslate(t *testing.T) {
	g := render.NewGeoM().(*rendertest.GeoM)
	g.Translate(2, 3)
	g.Scale(2, 2)
	g.Translate(1, 1)

	assert.Equal(t, rendertest.GeoM{SX: 2, SY: 2, TX: 5, TY: 7}, *g)

	g.Reset()
	assert.Equal(t, rendertest.GeoM{SX: 1, SY: 1}, *g)
}

func TestInputOnlyLeftButton(t *testing.T) {
	in := rendertest.NewInput()
	in.Click(3, 4)

	assert.True(t, in.IsMouseButtonJustPressed(render.MouseButtonLeft))
	x, y := in.GetCursorPosition()
	assert.Equal(t, 3, x)
	assert.Equal(t, 4, y)

	in.Release()
	assert.False(t, in.IsMouseButtonJustPressed(render.MouseButtonLeft))
}

// Package placeholders draws stand-in creature sprites so the game runs
// without any art on disk.
package placeholders

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"chosenoffset.com/hatchling/internal/sprites"
)

// SpriteSize is the edge length of every generated frame.
const SpriteSize = 128

// ColorPalette defines colors for the creature frames.
var ColorPalette = struct {
	Shell     color.RGBA
	ShellSpot color.RGBA
	Crack     color.RGBA
	Eye       color.RGBA

	// Growth stages, calm to unstable
	Stages []color.RGBA

	BranchA  color.RGBA
	BranchB  color.RGBA
	GameOver color.RGBA

	Outline color.RGBA
}{
	Shell:     color.RGBA{235, 225, 200, 255}, // Off-white shell
	ShellSpot: color.RGBA{180, 160, 120, 255},
	Crack:     color.RGBA{40, 30, 20, 255},
	Eye:       color.RGBA{20, 20, 20, 255},

	Stages: []color.RGBA{
		{60, 200, 90, 255},  // Green
		{200, 210, 60, 255}, // Yellow
		{230, 150, 40, 255}, // Orange
		{220, 60, 50, 255},  // Red
		{200, 40, 200, 255}, // Magenta
		{120, 20, 120, 255}, // Dark magenta
	},

	BranchA:  color.RGBA{60, 120, 230, 255}, // Cold blue
	BranchB:  color.RGBA{150, 90, 40, 255},  // Rot brown
	GameOver: color.RGBA{90, 90, 90, 255},

	Outline: color.RGBA{20, 20, 30, 255},
}

// stageColor returns the body colour for a growth ordinal. Ordinals past the
// palette keep darkening the last entry.
func stageColor(ordinal int) color.RGBA {
	n := len(ColorPalette.Stages)
	if ordinal < n {
		return ColorPalette.Stages[ordinal]
	}
	return Darken(ColorPalette.Stages[n-1], math.Pow(0.8, float64(ordinal-n+1)))
}

// Generate draws one image for every frame in the book.
func Generate(book *sprites.Book) map[sprites.Frame]*image.RGBA {
	images := make(map[sprites.Frame]*image.RGBA)

	images[book.Egg()] = CreateEgg(0, 1)
	images[book.GameOver()] = CreateGameOver()

	egg := book.EggSequence()
	for i, f := range egg {
		images[f] = CreateEgg(i+1, len(egg))
	}

	for ord := 0; ord < book.StageCount(); ord++ {
		f, _ := book.Stage(ord)
		body := stageColor(ord)
		images[f] = CreateCreature(body, creatureRadius(ord), 0)

		grow := book.GrowSequence(ord)
		prev := creatureRadius(max(ord-1, 0))
		for i, gf := range grow {
			// Grow from the previous stage's size to this one's.
			t := float64(i+1) / float64(len(grow)+1)
			r := prev + int(float64(creatureRadius(ord)-prev)*t)
			images[gf] = CreateCreature(body, r, 0)
		}
	}

	for _, branch := range []sprites.Branch{sprites.BranchA, sprites.BranchB} {
		seq := book.BranchSequence(branch)
		body := ColorPalette.BranchA
		if branch == sprites.BranchB {
			body = ColorPalette.BranchB
		}
		for i, f := range seq {
			images[f] = CreateCreature(body, creatureRadius(book.StageCount()), i+1)
		}
	}

	return images
}

// GenerateAndSave generates every frame in the book and writes them to dir as
// <frame>.png.
func GenerateAndSave(dir string, book *sprites.Book) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create sprite directory: %w", err)
	}

	for frame, img := range Generate(book) {
		path := filepath.Join(dir, string(frame)+".png")
		if err := SavePNG(img, path); err != nil {
			return fmt.Errorf("failed to save %s: %w", path, err)
		}
	}
	return nil
}

// SaveSheet writes every frame in catalog order into one contact sheet.
func SaveSheet(path string, book *sprites.Book, columns int) error {
	images := Generate(book)
	frames := book.All()
	tiles := make([]*image.RGBA, 0, len(frames))
	for _, f := range frames {
		tiles = append(tiles, images[f])
	}
	if err := SavePNG(CreateAtlas(tiles, max(columns, 1)), path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

func creatureRadius(ordinal int) int {
	return min(SpriteSize/6+ordinal*6, SpriteSize/2-4)
}

// CreateEgg draws the egg with crack stage out of total. Stage 0 is intact.
func CreateEgg(stage, total int) *image.RGBA {
	img := transparent()
	center := SpriteSize / 2
	rx, ry := SpriteSize/3, SpriteSize*2/5

	for y := 0; y < SpriteSize; y++ {
		for x := 0; x < SpriteSize; x++ {
			dx := float64(x-center) / float64(rx)
			dy := float64(y-center) / float64(ry)
			d := dx*dx + dy*dy
			if d <= 1 {
				img.Set(x, y, ColorPalette.Shell)
			} else if d <= 1.08 {
				img.Set(x, y, ColorPalette.Outline)
			}
		}
	}

	// Spots
	for _, p := range []image.Point{{center - 14, center - 20}, {center + 12, center - 4}, {center - 6, center + 18}} {
		fillCircle(img, p.X, p.Y, 5, ColorPalette.ShellSpot)
	}

	if stage <= 0 || total <= 0 {
		return img
	}

	// Zig-zag crack across the middle, longer with each stage
	length := (2 * rx) * stage / total
	x0 := center - rx
	for i := 0; i < length; i++ {
		offset := (i / 4) % 2 * 4
		if (i/4)%4 >= 2 {
			offset = 4 - offset
		}
		img.Set(x0+i, center-2+offset, ColorPalette.Crack)
		img.Set(x0+i, center-1+offset, ColorPalette.Crack)
	}
	return img
}

// CreateCreature draws a round creature. distortion > 0 offsets rows to make
// the body wobble, used for the branch endings.
func CreateCreature(body color.RGBA, radius, distortion int) *image.RGBA {
	img := transparent()
	center := SpriteSize / 2
	outline := Darken(body, 0.5)

	for y := 0; y < SpriteSize; y++ {
		shift := 0
		if distortion > 0 {
			shift = int(math.Sin(float64(y)/6+float64(distortion)) * float64(distortion) * 2)
		}
		for x := 0; x < SpriteSize; x++ {
			dx := x - center - shift
			dy := y - center
			distSq := dx*dx + dy*dy

			if distSq <= radius*radius {
				img.Set(x, y, body)
			} else if distSq <= (radius+2)*(radius+2) {
				img.Set(x, y, outline)
			}
		}
	}

	// Eyes and belly
	eyeOff := radius / 3
	eyeR := max(radius/8, 2)
	fillCircle(img, center-eyeOff, center-eyeOff, eyeR, ColorPalette.Eye)
	fillCircle(img, center+eyeOff, center-eyeOff, eyeR, ColorPalette.Eye)
	fillCircle(img, center, center+radius/3, radius/3, Lighten(body, 0.4))

	return img
}

// CreateGameOver draws the terminal frame: a grey creature with crossed eyes.
func CreateGameOver() *image.RGBA {
	img := CreateCreature(ColorPalette.GameOver, SpriteSize/3, 0)
	center := SpriteSize / 2
	off := SpriteSize / 9
	for _, cx := range []int{center - off, center + off} {
		cy := center - off
		for i := -5; i <= 5; i++ {
			img.Set(cx+i, cy+i, ColorPalette.Crack)
			img.Set(cx+i, cy-i, ColorPalette.Crack)
		}
	}
	return img
}

// CreateAtlas lays frames out in a grid, in order.
func CreateAtlas(tiles []*image.RGBA, columns int) *image.RGBA {
	rows := (len(tiles) + columns - 1) / columns
	atlas := image.NewRGBA(image.Rect(0, 0, columns*SpriteSize, rows*SpriteSize))

	for i, tile := range tiles {
		if tile == nil {
			continue
		}
		x := (i % columns) * SpriteSize
		y := (i / columns) * SpriteSize
		draw.Draw(atlas, image.Rect(x, y, x+SpriteSize, y+SpriteSize), tile, image.Point{}, draw.Src)
	}
	return atlas
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of a color
func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}

func transparent() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, SpriteSize, SpriteSize))
}

func fillCircle(img *image.RGBA, cx, cy, r int, col color.RGBA) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, col)
			}
		}
	}
}

package game

import (
	"log/slog"
	"path/filepath"

	"chosenoffset.com/hatchling/internal/placeholders"
	"chosenoffset.com/hatchling/internal/render"
	"chosenoffset.com/hatchling/internal/sprites"
)

// SpriteSet resolves frames to uploaded images.
type SpriteSet struct {
	images map[sprites.Frame]render.Image
}

// LoadSprites uploads an image for every frame in the book. Frames found as
// <dir>/<frame>.png are loaded from disk; the rest are generated placeholders.
func LoadSprites(r render.Renderer, loader render.ResourceLoader, book *sprites.Book, dir string, logger *slog.Logger) *SpriteSet {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	generated := placeholders.Generate(book)
	set := &SpriteSet{images: make(map[sprites.Frame]render.Image, len(generated))}

	fromDisk := 0
	for _, f := range book.All() {
		if dir != "" && loader != nil {
			img, err := loader.LoadImage(filepath.Join(dir, string(f)+".png"))
			if err == nil {
				set.images[f] = img
				fromDisk++
				continue
			}
			logger.Debug("sprite not on disk, using placeholder", slog.String("frame", string(f)), slog.Any("error", err))
		}
		set.images[f] = r.NewImageFromImage(generated[f])
	}

	logger.Info("sprites loaded",
		slog.Int("frames", len(set.images)),
		slog.Int("from_disk", fromDisk))
	return set
}

// Image returns the image for f.
func (s *SpriteSet) Image(f sprites.Frame) (render.Image, bool) {
	img, ok := s.images[f]
	return img, ok
}

// Len returns the number of loaded frames.
func (s *SpriteSet) Len() int {
	return len(s.images)
}

// Dispose releases every image.
func (s *SpriteSet) Dispose() {
	for _, img := range s.images {
		img.Dispose()
	}
	clear(s.images)
}

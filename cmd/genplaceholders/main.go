package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"chosenoffset.com/hatchling/internal/config"
	"chosenoffset.com/hatchling/internal/placeholders"
	"chosenoffset.com/hatchling/internal/sprites"
)

func main() {
	configPath := flag.String("config", "hatchling.yaml", "path to the YAML config file")
	outDir := flag.String("out", "assets/sprites", "directory to write frames to")
	sheet := flag.Bool("sheet", false, "also write a contact sheet of every frame")
	flag.Parse()

	fmt.Println("Hatchling Placeholder Sprite Generator")
	fmt.Println("======================================")
	fmt.Println()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	book := sprites.NewBook(cfg.Layout())

	if err := placeholders.GenerateAndSave(*outDir, book); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✓ Generated %d frames in %s (%dx%d pixels)\n",
		len(book.All()), *outDir, placeholders.SpriteSize, placeholders.SpriteSize)

	if *sheet {
		path := filepath.Join(*outDir, "sheet.png")
		if err := placeholders.SaveSheet(path, book, 8); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✓ Generated %s\n", path)
	}

	fmt.Println()
	fmt.Println("Done! Set animation.sprite_dir to use these frames.")
}

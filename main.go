package main

import (
	"log"

	"MySketchPad/internal/config"
	"MySketchPad/internal/ui"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Printf("Starting drawing pad (%dx%d)", cfg.Width, cfg.Height)
	ui.RunApp(cfg)
}

package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	settings, err := LoadSettings(SettingsFile)
	if err != nil {
		log.Println("settings error, using defaults:", err)
	}

	ebiten.SetWindowSize(1024, 768)
	ebiten.SetWindowTitle("Scene Camera")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(settings)); err != nil {
		log.Fatal(err)
	}
}

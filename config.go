package main

import "image/color"

const (
	// --- Camera & View ---
	DefaultContentWidth  = 2048.0
	DefaultContentHeight = 1536.0
	ZoomSpeed            = 0.1

	// --- Scenery ---
	GridSize         = 128.0
	ShadowOffset     = 5.0
	BorderThickness  = 3.0
	DefaultSegments  = 16
	DefaultTolerance = 0.75
	PathThickness    = 2.0

	// --- UI ---
	ButtonSize    = 30.0
	ButtonPadding = 10.0

	// --- Files ---
	SettingsFile = "settings.yaml"
)

var (
	// --- Colors ---
	ColorBackground = color.RGBA{30, 30, 35, 255}
	ColorVoid       = color.RGBA{20, 20, 25, 255}
	ColorGrid       = color.RGBA{255, 255, 255, 20}
	ColorBorder     = color.RGBA{255, 100, 100, 150}
	ColorShadow     = color.RGBA{0, 0, 0, 100}
	ColorPath       = color.RGBA{255, 255, 100, 200}
	ColorButton     = color.RGBA{60, 60, 70, 200}
	ColorHUD        = color.RGBA{220, 220, 220, 255}
)

package core

// Color represents a foreground/background style slot for a screen cell.
// The platform layer maps each slot to a concrete terminal style.
type Color uint8

// Predefined colors for maze elements.
const (
	ColorDefault Color = iota
	ColorWall          // solid block, drawn as a background fill
	ColorPlayer
	ColorWanderer
	ColorExit
	ColorCollectible
	ColorHUD
	ColorWarning
	ColorBanner
	ColorGray
)

// String returns the slot name, used in screenshots and tests.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorWall:
		return "wall"
	case ColorPlayer:
		return "player"
	case ColorWanderer:
		return "wanderer"
	case ColorExit:
		return "exit"
	case ColorCollectible:
		return "collectible"
	case ColorHUD:
		return "hud"
	case ColorWarning:
		return "warning"
	case ColorBanner:
		return "banner"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}

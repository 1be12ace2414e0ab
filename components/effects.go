package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// FlashData tints a character for a few ticks after a hit.
type FlashData struct {
	Duration int // ticks remaining
	Color    color.RGBA
}

func (f *FlashData) Start(ticks int, c color.RGBA) {
	f.Duration = ticks
	f.Color = c
}

func (f *FlashData) Active() bool {
	return f.Duration > 0
}

var Flash = donburi.NewComponentType[FlashData]()

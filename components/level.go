package components

import "github.com/yohamta/donburi"

type LevelData struct {
	Name          string
	Width, Height float64
}

var Level = donburi.NewComponentType[LevelData]()

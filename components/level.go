package components

import (
	"github.com/automoto/charcontroller/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.LevelData
	LevelNames   []string
}

var Level = donburi.NewComponentType[LevelData]()

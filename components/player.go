package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Index  int
	SpawnX float64
	SpawnY float64
}

var Player = donburi.NewComponentType[PlayerData]()

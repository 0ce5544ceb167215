package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Ground   = donburi.NewTag().SetName("Ground")
	Platform = donburi.NewTag().SetName("Platform")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = "solid"
	ResolvGround   = "ground"
	ResolvPlatform = "platform"
	ResolvPlayer   = "Player"
	ResolvProbe    = "probe"
)

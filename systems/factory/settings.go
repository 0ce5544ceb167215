package factory

import (
	"github.com/automoto/charcontroller/archetypes"
	"github.com/automoto/charcontroller/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSettings(ecs *ecs.ECS, settings components.SettingsData) *donburi.Entry {
	entry := archetypes.Settings.Spawn(ecs)
	components.Settings.SetValue(entry, settings)
	return entry
}

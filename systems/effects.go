package systems

import (
	"math"

	"github.com/automoto/charcontroller/components"
	"github.com/automoto/charcontroller/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects processes visual effect components
func UpdateEffects(ecs *ecs.ECS) {
	updateSquashStretchEffects(ecs)
}

// SubscribeEffects hooks the squash/stretch effect to controller events.
func SubscribeEffects(w donburi.World) {
	components.StateChanged.Subscribe(w, OnStateChanged)
	components.GroundContact.Subscribe(w, OnGroundContact)
}

// OnStateChanged stretches a character when it jumps.
func OnStateChanged(w donburi.World, event components.StateChangedEvent) {
	if event.To != config.Jump || !event.Entry.Valid() {
		return
	}
	TriggerSquashStretch(event.Entry, config.SquashStretch.JumpScaleX, config.SquashStretch.JumpScaleY)
}

// OnGroundContact squashes a character when it lands.
func OnGroundContact(w donburi.World, event components.GroundContactEvent) {
	if !event.Grounded || !event.Entry.Valid() {
		return
	}
	TriggerSquashStretch(event.Entry, config.SquashStretch.LandScaleX, config.SquashStretch.LandScaleY)
}

// updateSquashStretchEffects lerps scale values toward target and removes when normalized
func updateSquashStretchEffects(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	components.SquashStretch.Each(ecs.World, func(e *donburi.Entry) {
		ss := components.SquashStretch.Get(e)

		ss.ScaleX += (ss.TargetX - ss.ScaleX) * ss.LerpSpeed
		ss.ScaleY += (ss.TargetY - ss.ScaleY) * ss.LerpSpeed

		threshold := 0.01
		if math.Abs(ss.ScaleX-ss.TargetX) < threshold && math.Abs(ss.ScaleY-ss.TargetY) < threshold {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		e.RemoveComponent(components.SquashStretch)
	}
}

// TriggerSquashStretch adds a squash/stretch effect to an entity
func TriggerSquashStretch(entry *donburi.Entry, scaleX, scaleY float64) {
	if entry.HasComponent(components.SquashStretch) {
		ss := components.SquashStretch.Get(entry)
		ss.ScaleX = scaleX
		ss.ScaleY = scaleY
		ss.TargetX = 1.0
		ss.TargetY = 1.0
		ss.LerpSpeed = config.SquashStretch.LerpSpeed
		return
	}

	entry.AddComponent(components.SquashStretch)
	components.SquashStretch.Set(entry, &components.SquashStretchData{
		ScaleX:    scaleX,
		ScaleY:    scaleY,
		TargetX:   1.0,
		TargetY:   1.0,
		LerpSpeed: config.SquashStretch.LerpSpeed,
	})
}

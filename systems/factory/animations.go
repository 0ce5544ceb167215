package factory

import (
	"github.com/automoto/charcontroller/assets/animations"
	"github.com/automoto/charcontroller/components"
	cfg "github.com/automoto/charcontroller/config"
)

// GenerateAnimator builds the clip table for a character. Frames are filled in
// lazily by the renderer, so this stays usable without a graphics context.
func GenerateAnimator() *components.AnimatorData {
	last := cfg.Animation.FrameCount - 1
	anims := map[cfg.PlayerState]*animations.Animation{
		cfg.Idle: animations.NewAnimation(0, last, cfg.Animation.IdleSpeed),
		cfg.Walk: animations.NewAnimation(0, last, cfg.Animation.WalkSpeed),
		cfg.Run:  animations.NewAnimation(0, last, cfg.Animation.RunSpeed),
		cfg.Jump: animations.NewAnimation(0, last, cfg.Animation.AirSpeed),
		cfg.Fall: animations.NewAnimation(0, last, cfg.Animation.AirSpeed),
	}
	anims[cfg.Jump].Hold = true

	animator := &components.AnimatorData{
		Flags:       make(map[string]bool),
		Animations:  anims,
		FrameWidth:  cfg.Controller.FrameWidth,
		FrameHeight: cfg.Controller.FrameHeight,
	}
	animator.SetClip(cfg.Idle)
	return animator
}

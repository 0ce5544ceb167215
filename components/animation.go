package components

import (
	"github.com/automoto/charcontroller/assets/animations"
	cfg "github.com/automoto/charcontroller/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// AnimatorData holds the boolean parameters the controller writes and the clip
// currently displayed for them.
type AnimatorData struct {
	Flags            map[string]bool
	CurrentAnimation *animations.Animation
	CurrentClip      cfg.PlayerState
	Animations       map[cfg.PlayerState]*animations.Animation
	Frames           map[cfg.PlayerState][]*ebiten.Image
	FrameWidth       int
	FrameHeight      int
}

// SetBool sets an animator parameter.
func (a *AnimatorData) SetBool(name string, value bool) {
	if a.Flags == nil {
		a.Flags = make(map[string]bool)
	}
	a.Flags[name] = value
}

// GetBool returns an animator parameter, false when unset.
func (a *AnimatorData) GetBool(name string) bool {
	return a.Flags[name]
}

// SetClip switches the displayed clip, restarting it on change.
func (a *AnimatorData) SetClip(clip cfg.PlayerState) {
	if a.CurrentClip == clip && a.CurrentAnimation != nil {
		return
	}
	a.CurrentClip = clip
	anim, ok := a.Animations[clip]
	if !ok {
		a.CurrentAnimation = nil
		return
	}
	a.CurrentAnimation = anim
	a.CurrentAnimation.Restart()
	a.CurrentAnimation.Looped = false
}

var Animator = donburi.NewComponentType[AnimatorData]()

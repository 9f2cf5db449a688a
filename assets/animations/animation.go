package animations

import "github.com/automoto/bancho-vs/config"

type Animation struct {
	Frames       int
	Speed        float64 // progress added per tick; the frame advances at 1.0
	frameCounter float64
	frame        int
	Looped       bool
}

func (a *Animation) Update() {
	a.frameCounter += a.Speed
	if a.frameCounter >= 1.0 {
		a.frameCounter = 0
		a.frame++
		if a.frame >= a.Frames {
			a.Looped = true
			a.frame = 0
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) FrameCount() int {
	return a.Frames
}

// IsFinished reports whether the final frame is showing.
func (a *Animation) IsFinished() bool {
	return a.frame == a.Frames-1
}

func (a *Animation) Restart() {
	a.frame = 0
	a.frameCounter = 0
	a.Looped = false
}

func NewAnimation(frames int, speed float64) *Animation {
	if frames < 1 {
		frames = 1
	}
	return &Animation{
		Frames: frames,
		Speed:  speed,
	}
}

// FromDef builds an animation from a character table entry.
func FromDef(def config.AnimationDef) *Animation {
	return NewAnimation(def.Frames, def.Speed)
}

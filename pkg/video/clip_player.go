// Package video plays the intro clip: a timed sequence of still frames with
// an optional music bed, driven by the host loop.
package video

import (
	"log"

	"github.com/decker502/catan/pkg/content"
	"github.com/decker502/catan/pkg/tutorial"
)

// State is the playback state of a ClipPlayer.
type State int

const (
	StateIdle State = iota
	StatePreparing
	StateReady
	StatePlaying
	StateFinished
)

// String returns the state name used in log lines.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StatePreparing:
		return "Preparing"
	case StateReady:
		return "Ready"
	case StatePlaying:
		return "Playing"
	case StateFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Hooks connect the player to rendering and audio. Every hook is optional.
type Hooks struct {
	// OnFrame shows a frame by image resource ID.
	OnFrame func(frameID string)
	// OnPlay starts the music bed by sound resource ID.
	OnPlay func(musicID string)
	// OnStop stops the music bed.
	OnStop func()
}

// subscription is the callback pair registered by one Prepare call.
type subscription struct {
	onReady    func()
	onFinished func()
	cancelled  bool
}

func (s *subscription) Cancel() {
	s.cancelled = true
}

// ClipPlayer implements tutorial.VideoPlayer for an IntroClip.
//
// Prepare never calls back synchronously: readiness is reported on the
// next Update, like a real decoder finishing in the background.
type ClipPlayer struct {
	clip  content.IntroClip
	hooks Hooks

	state   State
	elapsed float64
	frame   int
	sub     *subscription
}

var _ tutorial.VideoPlayer = (*ClipPlayer)(nil)

// NewClipPlayer creates an idle player for clip.
func NewClipPlayer(clip content.IntroClip, hooks Hooks) *ClipPlayer {
	return &ClipPlayer{
		clip:  clip,
		hooks: hooks,
		frame: -1,
	}
}

// SetClip replaces the clip. A clip that is already playing continues
// from its current position with the new frames.
func (p *ClipPlayer) SetClip(clip content.IntroClip) {
	p.clip = clip
}

// State returns the playback state.
func (p *ClipPlayer) State() State { return p.state }

// Elapsed returns the playback position in seconds.
func (p *ClipPlayer) Elapsed() float64 { return p.elapsed }

// Frame returns the index of the frame on screen, -1 before the first one.
func (p *ClipPlayer) Frame() int { return p.frame }

// Prepare loads the clip. onReady runs on the next Update, onFinished when
// playback reaches the end; neither runs once the subscription is
// cancelled. A new Prepare replaces the previous subscription.
func (p *ClipPlayer) Prepare(onReady, onFinished func()) tutorial.Subscription {
	if p.sub != nil {
		p.sub.Cancel()
	}
	p.sub = &subscription{onReady: onReady, onFinished: onFinished}
	p.state = StatePreparing
	p.elapsed = 0
	p.frame = -1
	log.Printf("[ClipPlayer] Preparing clip (%d frames, %.1fs)", len(p.clip.Frames), p.clip.Duration)
	return p.sub
}

// Play starts playback from the first frame.
func (p *ClipPlayer) Play() {
	if p.state != StateReady && p.state != StatePreparing {
		log.Printf("[ClipPlayer] Play ignored in state %s", p.state)
		return
	}
	p.state = StatePlaying
	p.elapsed = 0
	p.showFrame(0)
	if p.clip.Music != "" && p.hooks.OnPlay != nil {
		p.hooks.OnPlay(p.clip.Music)
	}
}

// Stop halts playback. The subscription stays registered, so a caller that
// wants no completion must cancel it.
func (p *ClipPlayer) Stop() {
	if p.state == StateIdle {
		return
	}
	wasPlaying := p.state == StatePlaying
	p.state = StateIdle
	if wasPlaying && p.hooks.OnStop != nil {
		p.hooks.OnStop()
	}
	log.Printf("[ClipPlayer] Stopped at %.2fs", p.elapsed)
}

// Update advances playback by dt seconds.
func (p *ClipPlayer) Update(dt float64) {
	switch p.state {
	case StatePreparing:
		p.state = StateReady
		if sub := p.sub; sub != nil && !sub.cancelled && sub.onReady != nil {
			sub.onReady()
		}

	case StatePlaying:
		p.elapsed += dt
		if p.elapsed >= p.clip.Duration {
			p.finish()
			return
		}
		if n := len(p.clip.Frames); n > 0 {
			p.showFrame(min(int(p.elapsed/p.clip.Duration*float64(n)), n-1))
		}
	}
}

func (p *ClipPlayer) showFrame(i int) {
	if i == p.frame || i >= len(p.clip.Frames) {
		return
	}
	p.frame = i
	if p.hooks.OnFrame != nil {
		p.hooks.OnFrame(p.clip.Frames[i])
	}
}

func (p *ClipPlayer) finish() {
	p.state = StateFinished
	if p.hooks.OnStop != nil {
		p.hooks.OnStop()
	}
	log.Printf("[ClipPlayer] Finished")
	if sub := p.sub; sub != nil && !sub.cancelled && sub.onFinished != nil {
		sub.cancelled = true
		sub.onFinished()
	}
}

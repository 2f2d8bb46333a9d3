package tutorial

import "log"

// Subscription is a registered completion callback. Cancel unregisters it;
// after Cancel returns the callback never runs. Cancel is idempotent.
type Subscription interface {
	Cancel()
}

// VideoPlayer is the playback back end for the intro clip.
//
// Prepare loads the clip and calls onReady once it can be played; onFinished
// runs once when playback reaches the end. Both callbacks belong to the
// returned Subscription and stop firing once it is cancelled.
type VideoPlayer interface {
	Prepare(onReady, onFinished func()) Subscription
	Play()
	Stop()
}

// IntroVideo plays the intro clip and hands control back exactly once,
// whether the clip finishes on its own or is skipped.
type IntroVideo struct {
	player VideoPlayer
	sub    Subscription
	active bool

	onDone func()
}

// NewIntroVideo creates an intro controller. onDone is called once per
// playback, after completion or skip.
func NewIntroVideo(player VideoPlayer, onDone func()) *IntroVideo {
	return &IntroVideo{
		player: player,
		onDone: onDone,
	}
}

// Active reports whether a playback is in progress.
func (v *IntroVideo) Active() bool {
	return v.active
}

// Start prepares the clip and plays it as soon as it is ready.
func (v *IntroVideo) Start() {
	// a previous playback still subscribed must not fire into this one
	v.dispose()

	if v.player == nil {
		log.Printf("[IntroVideo] No video player, skipping intro")
		v.active = true
		v.finish()
		return
	}

	v.active = true
	v.sub = v.player.Prepare(v.player.Play, v.finish)
	log.Printf("[IntroVideo] Preparing intro clip")
}

// Skip stops playback, drops the completion subscription and hands control
// back. Safe to call when nothing is playing or nothing was ever prepared.
func (v *IntroVideo) Skip() {
	if v.player != nil {
		v.player.Stop()
	}
	if !v.active {
		return
	}
	log.Printf("[IntroVideo] Skipped")
	v.finish()
}

func (v *IntroVideo) finish() {
	if !v.active {
		return
	}
	v.active = false
	v.dispose()
	if v.onDone != nil {
		v.onDone()
	}
}

func (v *IntroVideo) dispose() {
	if v.sub != nil {
		v.sub.Cancel()
		v.sub = nil
	}
}

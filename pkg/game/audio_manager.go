package game

import (
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// DefaultVolume is the volume used for every player.
const DefaultVolume = 0.8

// AudioManager plays narration, effects and the intro music by resource ID.
//
// One-shot sounds are tracked so a screen change can silence them all with
// StopAll. Music plays on its own channel.
type AudioManager struct {
	resourceManager *ResourceManager
	volume          float64
	muted           bool

	playing        []*audio.Player // one-shots started since the last StopAll
	currentMusic   *audio.Player
	currentMusicID string
}

// NewAudioManager creates an AudioManager backed by rm.
func NewAudioManager(rm *ResourceManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		volume:          DefaultVolume,
	}
}

// SetMuted silences all playback.
func (am *AudioManager) SetMuted(muted bool) {
	am.muted = muted
	if muted {
		am.StopAll()
	}
}

// SetVolume sets the volume of every current and future player.
func (am *AudioManager) SetVolume(volume float64) {
	am.volume = max(0, min(1, volume))
	for _, p := range am.playing {
		p.SetVolume(am.volume)
	}
	if am.currentMusic != nil {
		am.currentMusic.SetVolume(am.volume)
	}
}

// PlaySound plays a sound from the start. Returns false if it is unknown
// or cannot be decoded.
func (am *AudioManager) PlaySound(soundID string) bool {
	if am.muted {
		return false
	}

	player, err := am.resourceManager.LoadSoundByID(soundID)
	if err != nil {
		log.Printf("[AudioManager] Warning: sound %s: %v", soundID, err)
		return false
	}

	player.SetVolume(am.volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()

	am.track(player)
	return true
}

// track remembers a player, dropping the ones that already finished.
func (am *AudioManager) track(player *audio.Player) {
	live := am.playing[:0]
	for _, p := range am.playing {
		if p != player && p.IsPlaying() {
			live = append(live, p)
		}
	}
	am.playing = append(live, player)
}

// PlayMusic starts a music bed, replacing the current one.
func (am *AudioManager) PlayMusic(musicID string) bool {
	if am.muted {
		return false
	}
	if am.currentMusicID == musicID && am.currentMusic != nil && am.currentMusic.IsPlaying() {
		return true
	}

	am.StopMusic()

	player, err := am.resourceManager.LoadSoundByID(musicID)
	if err != nil {
		log.Printf("[AudioManager] Warning: music %s: %v", musicID, err)
		return false
	}

	player.SetVolume(am.volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind music %s: %v", musicID, err)
	}
	player.Play()

	am.currentMusic = player
	am.currentMusicID = musicID
	log.Printf("[AudioManager] Playing music: %s", musicID)
	return true
}

// StopMusic pauses the current music bed.
func (am *AudioManager) StopMusic() {
	if am.currentMusic != nil {
		am.currentMusic.Pause()
		am.currentMusic = nil
		am.currentMusicID = ""
	}
}

// StopSounds pauses every one-shot started with PlaySound.
func (am *AudioManager) StopSounds() {
	for _, p := range am.playing {
		p.Pause()
	}
	am.playing = am.playing[:0]
}

// StopAll silences sounds and music.
func (am *AudioManager) StopAll() {
	am.StopSounds()
	am.StopMusic()
}

// Play routes an ID to PlayMusic or PlaySound depending on whether the
// resource config marks it as a loop.
func (am *AudioManager) Play(soundID string) bool {
	if !strings.HasPrefix(soundID, SoundIDPrefix) {
		log.Printf("[AudioManager] Warning: %s is not a sound ID", soundID)
		return false
	}
	if am.resourceManager.loopSounds[soundID] {
		return am.PlayMusic(soundID)
	}
	return am.PlaySound(soundID)
}

package solo

import (
	"log"
	"math"
	"sync"

	"solo/internal/scene"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 48000

// SoundManager plays short synthesized cues by name, fire and forget.
type SoundManager struct {
	ctx    *audio.Context
	sounds map[string][]byte

	mu    sync.Mutex
	muted bool
}

func NewSoundManager() *SoundManager {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	sm := &SoundManager{
		ctx:    ctx,
		sounds: make(map[string][]byte),
	}
	// a quick falling "pew"
	sm.sounds[scene.BulletSound] = sweep(1400, 500, 0.12, 0.3)
	return sm
}

// Play starts the named cue. Unknown names are logged once and ignored.
func (sm *SoundManager) Play(name string) {
	sm.mu.Lock()
	if sm.muted {
		sm.mu.Unlock()
		return
	}
	pcm, ok := sm.sounds[name]
	if !ok {
		log.Printf("Unknown sound: %s", name)
		sm.sounds[name] = nil
	}
	sm.mu.Unlock()
	if pcm == nil {
		return
	}
	audio.NewPlayerFromBytes(sm.ctx, pcm).Play()
}

func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// sweep synthesizes a sine sweeping from one frequency to another as 16-bit
// little-endian stereo PCM, with a linear fade out.
func sweep(fromHz, toHz, seconds, volume float64) []byte {
	n := int(sampleRate * seconds)
	pcm := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := fromHz + (toHz-fromHz)*t
		phase += 2 * math.Pi * freq / sampleRate
		s := int16(math.Sin(phase) * volume * (1 - t) * math.MaxInt16)
		pcm[4*i] = byte(s)
		pcm[4*i+1] = byte(s >> 8)
		pcm[4*i+2] = byte(s)
		pcm[4*i+3] = byte(s >> 8)
	}
	return pcm
}

package tone

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

const (
	channelCount = 2
	bitDepth     = 2 // 16-bit = 2 bytes
)

var (
	globalOtoCtx *oto.Context
	globalReady  chan struct{}
	otoOnce      sync.Once
	otoInitErr   error
)

// initOto creates the process-wide audio context once. It does not wait for
// the device; callers check the ready channel.
func initOto() (*oto.Context, chan struct{}, error) {
	otoOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   SampleRate,
			ChannelCount: channelCount,
			Format:       oto.FormatSignedInt16LE,
		}
		globalOtoCtx, globalReady, otoInitErr = oto.NewContext(op)
		if otoInitErr != nil {
			otoInitErr = fmt.Errorf("opening audio device: %w", otoInitErr)
		}
	})
	return globalOtoCtx, globalReady, otoInitErr
}

// Player plays one-shot tones. The audio context is opened lazily by Init,
// on the first user interaction; until it is ready Play does nothing.
type Player struct {
	mu     sync.Mutex
	ctx    *oto.Context
	ready  chan struct{}
	muted  bool
	volume float64
}

// NewPlayer creates a Player with no audio context yet.
func NewPlayer(muted bool) *Player {
	return &Player{muted: muted, volume: 0.8}
}

// Init opens the audio context if it is not open yet.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ctx != nil {
		return nil
	}
	ctx, ready, err := initOto()
	if err != nil {
		return err
	}
	p.ctx, p.ready = ctx, ready
	return nil
}

// Ready reports whether the audio context can accept tones.
func (p *Player) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.readyLocked()
}

func (p *Player) readyLocked() bool {
	if p.ctx == nil {
		return false
	}
	select {
	case <-p.ready:
		return true
	default:
		return false
	}
}

// Muted returns whether playback is muted.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// ToggleMute flips the mute state.
func (p *Player) ToggleMute() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
}

// Play starts a tone and returns immediately. The tone stops on its own at
// the end of its decay and is never tracked or canceled. Play is a silent
// no-op, returning false, while muted or before the context is ready.
func (p *Player) Play(params Params) bool {
	p.mu.Lock()
	if p.muted || !p.readyLocked() {
		p.mu.Unlock()
		return false
	}
	ctx, vol := p.ctx, p.volume
	p.mu.Unlock()

	samples := Synthesize(params, SampleRate)
	if len(samples) == 0 {
		return false
	}
	buf := interleave(pcm16(samples))

	go func() {
		player := ctx.NewPlayer(bytes.NewReader(buf))
		player.SetVolume(vol)
		player.Play()
		deadline := time.Now().Add(time.Duration(params.Decay*float64(time.Second)) + time.Second)
		for player.IsPlaying() && time.Now().Before(deadline) {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
	return true
}

// interleave writes mono 16-bit samples to both stereo channels.
func interleave(samples []int) []byte {
	buf := make([]byte, len(samples)*channelCount*bitDepth)
	for i, s := range samples {
		v := uint16(int16(s))
		binary.LittleEndian.PutUint16(buf[i*4:], v)
		binary.LittleEndian.PutUint16(buf[i*4+2:], v)
	}
	return buf
}

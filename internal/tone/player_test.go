package tone

import (
	"encoding/binary"
	"testing"
)

func TestPlayBeforeInitIsSilentNoop(t *testing.T) {
	p := NewPlayer(false)
	if p.Ready() {
		t.Fatal("expected player to be unready before Init")
	}
	if p.Play(Params{Frequency: 440, Waveform: Sine, Decay: 0.1}) {
		t.Fatal("expected Play to skip without an audio context")
	}
}

func TestPlayWhileMutedIsNoop(t *testing.T) {
	p := NewPlayer(true)
	if !p.Muted() {
		t.Fatal("expected muted player")
	}
	if p.Play(Params{Frequency: 440, Waveform: Sine, Decay: 0.1}) {
		t.Fatal("expected muted Play to skip")
	}
	p.ToggleMute()
	if p.Muted() {
		t.Fatal("expected unmuted after toggle")
	}
}

func TestInterleaveDuplicatesChannels(t *testing.T) {
	buf := interleave([]int{1, -2})
	if len(buf) != 8 {
		t.Fatalf("expected 8 bytes, got %d", len(buf))
	}
	l := int16(binary.LittleEndian.Uint16(buf[4:]))
	r := int16(binary.LittleEndian.Uint16(buf[6:]))
	if l != -2 || r != -2 {
		t.Fatalf("expected -2 on both channels, got %d/%d", l, r)
	}
}

package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(sampleRateHz)

// CueEngine plays short synthesized feedback cues for combat
// notifications: hits, crits, and deaths. Entirely optional; every
// method is a no-op when initialization failed or was skipped.
type CueEngine struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool

	hitBuf   floatBuffer
	critBuf  floatBuffer
	deathBuf floatBuffer
}

// NewCueEngine creates a silent, uninitialized engine with cues rendered
func NewCueEngine() *CueEngine {
	e := &CueEngine{
		mixer: &beep.Mixer{},
	}

	e.hitBuf = tone(660, sampleRate.N(40*time.Millisecond))
	applyEnvelope(e.hitBuf, 0.002, 0.03)

	e.critBuf = sweep(660, 1320, sampleRate.N(90*time.Millisecond))
	applyEnvelope(e.critBuf, 0.002, 0.05)

	e.deathBuf = sweep(440, 110, sampleRate.N(250*time.Millisecond))
	applyEnvelope(e.deathBuf, 0.005, 0.15)

	return e
}

// Initialize opens the speaker; failure leaves the engine silent
func (e *CueEngine) Initialize() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Cleanup stops playback and silences the engine
func (e *CueEngine) Cleanup() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	e.mixer.Clear()
	e.initialized = false
}

// PlayHit plays the hit blip, or the crit sweep when critical
func (e *CueEngine) PlayHit(critical bool) {
	if critical {
		e.play(e.critBuf, 0.5)
		return
	}
	e.play(e.hitBuf, 0.35)
}

// PlayDeath plays the falling death sweep
func (e *CueEngine) PlayDeath() {
	e.play(e.deathBuf, 0.6)
}

func (e *CueEngine) play(buf floatBuffer, gain float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	speaker.Lock()
	e.mixer.Add(&bufferStreamer{buf: buf, gain: gain})
	speaker.Unlock()
}

// bufferStreamer plays a mono floatBuffer once, duplicated to both channels
type bufferStreamer struct {
	buf  floatBuffer
	gain float64
	pos  int
}

func (s *bufferStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	n := 0
	for i := range samples {
		if s.pos >= len(s.buf) {
			break
		}
		v := s.buf[s.pos] * s.gain
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
		n++
	}
	return n, true
}

func (s *bufferStreamer) Err() error {
	return nil
}

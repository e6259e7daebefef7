// Package audio provides background music playback for the viewer.
package audio

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// DefaultSampleRate is the sample rate the speaker is initialized with.
const DefaultSampleRate = beep.SampleRate(44100)

// Manager owns the speaker and the current background music stream.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate

	streamer beep.StreamSeekCloser
	ctrl     *beep.Ctrl
	volume   *effects.Volume

	level float64
	muted bool
	path  string
}

// New creates an audio manager. Init must be called before playback.
func New() *Manager {
	return &Manager{level: 0.7}
}

// Init opens the speaker. Safe to call more than once.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	m.sampleRate = DefaultSampleRate
	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	m.initialized = true
	return nil
}

// PlayMusic decodes the given WAV or MP3 file and loops it as background
// music, replacing whatever was playing before.
func (m *Manager) PlayMusic(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return fmt.Errorf("audio not initialized")
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open music file: %w", err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	default:
		streamer, format, err = wav.Decode(f)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	m.stopLocked()

	looped, err := beep.Loop2(streamer)
	if err != nil {
		streamer.Close()
		return fmt.Errorf("loop %s: %w", filepath.Base(path), err)
	}

	var src beep.Streamer = looped
	if format.SampleRate != m.sampleRate {
		src = beep.Resample(4, format.SampleRate, m.sampleRate, src)
	}

	m.ctrl = &beep.Ctrl{Streamer: src}
	m.volume = &effects.Volume{Streamer: m.ctrl, Base: 2}
	m.streamer = streamer
	m.path = path
	m.applyVolumeLocked()

	speaker.Play(m.volume)
	return nil
}

// Stop halts playback and releases the current stream.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopLocked()
}

func (m *Manager) stopLocked() {
	speaker.Clear()
	if m.streamer != nil {
		m.streamer.Close()
		m.streamer = nil
	}
	m.ctrl = nil
	m.volume = nil
	m.path = ""
}

// SetMuted pauses or resumes playback without dropping the stream.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
	if m.ctrl != nil {
		speaker.Lock()
		m.ctrl.Paused = muted
		speaker.Unlock()
	}
}

// Muted reports whether playback is muted.
func (m *Manager) Muted() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.muted
}

// SetVolume sets the music volume on a 0..1 scale.
func (m *Manager) SetVolume(level float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.level = clamp(level, 0, 1)
	m.applyVolumeLocked()
}

// Volume returns the music volume on a 0..1 scale.
func (m *Manager) Volume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.level
}

// Playing reports whether a music stream is loaded and not muted.
func (m *Manager) Playing() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.streamer != nil && !m.muted
}

func (m *Manager) applyVolumeLocked() {
	if m.volume == nil {
		return
	}
	speaker.Lock()
	if m.level <= 0 {
		m.volume.Silent = true
	} else {
		m.volume.Silent = false
		m.volume.Volume = volumeToDb(m.level) / 6.0206 // effects.Volume uses Base 2
	}
	speaker.Unlock()
}

// Close stops playback and shuts the speaker down.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopLocked()
	m.initialized = false
}

// volumeToDb converts a 0..1 level to decibels, with 1.0 mapping to 0dB.
func volumeToDb(level float64) float64 {
	if level <= 0 {
		return -100
	}
	return 20 * math.Log10(level)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

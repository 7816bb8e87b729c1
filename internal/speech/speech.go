// Package speech plays Dutch phrases through a local text-to-speech engine.
package speech

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"sync"

	"github.com/charmbracelet/log"
)

// ErrUnavailable is returned when no speech engine can play a phrase.
var ErrUnavailable = errors.New("speech: unavailable")

// DefaultRate is the espeak words-per-minute rate, slightly slower than the
// engine default of 175 so learners can follow.
const DefaultRate = 149

// Engines are the binaries Detect looks for, in order of preference.
var Engines = []string{"espeak-ng", "espeak"}

// Speaker is satisfied by every speech backend.
type Speaker interface {
	Speak(text string) error
}

// Silent is the backend used when no engine is installed.
type Silent struct{}

// Speak always fails with ErrUnavailable.
func (Silent) Speak(string) error {
	return ErrUnavailable
}

// Espeak speaks through an espeak-compatible binary. A new phrase cancels the
// one still playing.
type Espeak struct {
	Binary string
	Voice  string
	Rate   int
	Logger *log.Logger

	mu      sync.Mutex
	current *exec.Cmd
}

// NewEspeak returns a speaker for the given binary with the Dutch voice.
func NewEspeak(binary string, logger *log.Logger) *Espeak {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Espeak{Binary: binary, Voice: "nl", Rate: DefaultRate, Logger: logger}
}

// Detect returns an espeak speaker for the first engine found on PATH, or
// Silent if there is none.
func Detect(logger *log.Logger) Speaker {
	for _, name := range Engines {
		if path, err := exec.LookPath(name); err == nil {
			return NewEspeak(path, logger)
		}
	}
	return Silent{}
}

// New returns a speaker for the named engine, or the detected one when engine
// is empty. Empty voice and zero rate keep the defaults.
func New(engine, voice string, rate int, logger *log.Logger) Speaker {
	var e *Espeak
	if engine != "" {
		e = NewEspeak(engine, logger)
	} else {
		sp, ok := Detect(logger).(*Espeak)
		if !ok {
			return Silent{}
		}
		e = sp
	}
	if voice != "" {
		e.Voice = voice
	}
	if rate > 0 {
		e.Rate = rate
	}
	return e
}

// Args returns the command-line arguments used to speak text.
func (e *Espeak) Args(text string) []string {
	return []string{"-v", e.Voice, "-s", strconv.Itoa(e.Rate), "--", text}
}

// Speak starts playback and returns without waiting for it to finish.
func (e *Espeak) Speak(text string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopLocked()

	cmd := exec.Command(e.Binary, e.Args(text)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, e.Binary, err)
	}
	e.current = cmd
	go e.wait(cmd)
	return nil
}

// SpeakSync plays text and blocks until playback ends.
func (e *Espeak) SpeakSync(text string) error {
	cmd := exec.Command(e.Binary, e.Args(text)...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, e.Binary, err)
	}
	return nil
}

func (e *Espeak) wait(cmd *exec.Cmd) {
	err := cmd.Wait()
	e.mu.Lock()
	if e.current == cmd {
		e.current = nil
	}
	e.mu.Unlock()
	if err != nil && e.Logger != nil {
		e.Logger.Debug("speech ended", "err", err)
	}
}

func (e *Espeak) stopLocked() {
	if e.current != nil && e.current.Process != nil {
		_ = e.current.Process.Kill()
	}
	e.current = nil
}

// Close stops any phrase still playing.
func (e *Espeak) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
	return nil
}

package awg

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/go-awg/internal/pool"
	"github.com/arloliu/go-awg/logger"
	"github.com/arloliu/go-awg/sequence"
)

// Sequencer compiler status values reported by the device.
const (
	compilerStatusIdle    = -1
	compilerStatusOK      = 0
	compilerStatusFailed  = 1
	compilerStatusWarning = 2
)

// compilerPollInterval is the delay between compiler status reads after a
// program upload.
const compilerPollInterval = 100 * time.Millisecond

// AWG drives one AWG core of a device: it owns the core's sequence program,
// uploads compiled sequencer text, fills waveform memory slots, and starts
// and stops playback.
type AWG struct {
	dev     *Device
	index   int
	program *sequence.Program
	log     logger.Logger
}

// NewAWG creates a handle for the AWG core with the given index. The core
// starts with the base sequence program; switch types through
// SetSequenceParams.
func NewAWG(dev *Device, index int) (*AWG, error) {
	program, err := sequence.NewProgram(sequence.TypeNone, nil)
	if err != nil {
		return nil, err
	}
	return &AWG{
		dev:     dev,
		index:   index,
		program: program,
		log:     dev.log.With("awg", index),
	}, nil
}

// Index returns the AWG core index.
func (a *AWG) Index() int { return a.index }

// Program returns the core's sequence program.
func (a *AWG) Program() *sequence.Program { return a.program }

// SetSequenceParams forwards settings to the sequence program, including
// "sequence_type" switches.
func (a *AWG) SetSequenceParams(settings sequence.Settings) ([]string, error) {
	return a.program.Set(settings)
}

// RefreshClockRate reads the device sample clock and hands it to the sequence
// program, so time-to-cycle conversion matches the hardware.
func (a *AWG) RefreshClockRate(ctx context.Context) error {
	rate, err := a.SampleRate(ctx)
	if err != nil {
		return err
	}
	_, err = a.program.Set(sequence.Settings{"clock_rate": rate})
	return err
}

// SampleRate reads the device sample clock in Hz.
func (a *AWG) SampleRate(ctx context.Context) (float64, error) {
	return a.dev.Double(ctx, "system/clocks/sampleclock/freq")
}

// SetSampleRate writes the device sample clock in Hz and hands the new rate
// to the sequence program.
func (a *AWG) SetSampleRate(ctx context.Context, rate float64) error {
	if err := a.dev.SetDouble(ctx, "system/clocks/sampleclock/freq", rate); err != nil {
		return err
	}
	_, err := a.program.Set(sequence.Settings{"clock_rate": rate})
	return err
}

// UploadSequence generates the current sequence program and uploads it to the
// core's sequencer compiler.
func (a *AWG) UploadSequence(ctx context.Context) error {
	text, err := a.program.Get()
	if err != nil {
		return err
	}
	return a.UploadProgram(ctx, text)
}

// UploadProgram uploads sequencer program text and waits for the device
// compiler to accept it. A compiler warning is logged and treated as success;
// a compiler error is returned with the device's status string.
func (a *AWG) UploadProgram(ctx context.Context, text string) error {
	if err := a.dev.SetString(ctx, a.node("compiler/sourcestring"), text); err != nil {
		return err
	}

	for {
		status, err := a.dev.Int(ctx, a.node("compiler/status"))
		if err != nil {
			return err
		}
		switch status {
		case compilerStatusOK:
			a.log.Info("sequencer program uploaded")
			return nil
		case compilerStatusWarning:
			statusStr, err := a.dev.String(ctx, a.node("compiler/statusstring"))
			if err != nil {
				return err
			}
			a.log.Warn("sequencer compiled with warning", "status", statusStr)
			return nil
		case compilerStatusFailed:
			statusStr, err := a.dev.String(ctx, a.node("compiler/statusstring"))
			if err != nil {
				return err
			}
			return fmt.Errorf("%w: %s", ErrCompilationFailed, statusStr)
		case compilerStatusIdle:
		}

		timer := pool.GetTimer(compilerPollInterval)
		select {
		case <-ctx.Done():
			pool.PutTimer(timer)
			return ctx.Err()
		case <-timer.C:
			pool.PutTimer(timer)
		}
	}
}

// UploadWaveform writes a waveform into the given waveform memory slot. The
// slot must be declared by the currently uploaded sequence program.
func (a *AWG) UploadWaveform(ctx context.Context, w *Waveform, slot int) error {
	node := a.node(fmt.Sprintf("waveform/waves/%d", slot))
	if err := a.dev.SetVector(ctx, node, w.Data()); err != nil {
		return err
	}
	a.log.Debug("waveform uploaded", "slot", slot, "samples", w.BufferLength())
	return nil
}

// UploadWaveforms fills consecutive waveform memory slots, starting at slot
// 0, uploading concurrently.
func (a *AWG) UploadWaveforms(ctx context.Context, waves ...*Waveform) error {
	grp, ctx := errgroup.WithContext(ctx)
	for slot, w := range waves {
		slot, w := slot, w
		grp.Go(func() error {
			return a.UploadWaveform(ctx, w, slot)
		})
	}
	return grp.Wait()
}

// Run enables sequencer playback.
func (a *AWG) Run(ctx context.Context) error {
	return a.dev.SetInt(ctx, a.node("enable"), 1)
}

// Stop disables sequencer playback.
func (a *AWG) Stop(ctx context.Context) error {
	return a.dev.SetInt(ctx, a.node("enable"), 0)
}

// node expands a core-relative node path.
func (a *AWG) node(rest string) string {
	return fmt.Sprintf("awgs/%d/%s", a.index, rest)
}

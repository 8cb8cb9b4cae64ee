// Package machine is the reference host harness: it wires pkg/bus,
// pkg/cpu and pkg/video together into one paceable unit and implements a
// real-time loop, so that tooling (cmd/i8080) has
// something concrete to drive without each reimplementing the half-frame
// pacing and interrupt injection.
package machine

import (
	"errors"
	"time"

	"github.com/oisee/i8080/pkg/bus"
	"github.com/oisee/i8080/pkg/cpu"
	"github.com/oisee/i8080/pkg/video"
)

// CyclesPerHalfFrame is the cycle budget for one half-frame: 16,666 cycles
// per ~8.333ms, at the 2 MHz nominal clock rate. Space Invaders fires RST 1
// at the mid-screen half-frame boundary and RST 2 at VBLANK, 60 Hz each (so
// 120 half-frames per second in total).
const CyclesPerHalfFrame = 16666

// Interrupt vectors Space Invaders' ROM expects at each half-frame boundary.
const (
	MidScreenInterrupt = 0xCF // RST 1
	VBlankInterrupt    = 0xD7 // RST 2
)

// Machine bundles the CPU, its memory bus, and a half-frame pacing loop.
type Machine struct {
	CPU *cpu.CPU
	Mem *bus.Memory

	frame []uint32
}

// New constructs a Machine with a fresh CPU and bus wired to io.
func New(io bus.IO) *Machine {
	mem := bus.New(io)
	return &Machine{
		CPU:   cpu.New(mem),
		Mem:   mem,
		frame: video.NewFrame(),
	}
}

// RunHalfFrame advances Step() until at least CyclesPerHalfFrame cycles
// have been consumed since the call began, then returns the number of
// cycles actually run (instruction-granular, so it may slightly overshoot
// the budget). If interruptOpcode is non-zero, it is injected once the
// budget is reached.
func (m *Machine) RunHalfFrame(interruptOpcode uint8) (cycles int) {
	budget := CyclesPerHalfFrame
	for cycles < budget {
		cycles += m.CPU.Step()
	}
	if interruptOpcode != 0 {
		m.CPU.Interrupt(interruptOpcode)
	}
	return cycles
}

// RunRealtime drives half-frames paced against wall-clock time, alternating
// RST 1 (mid-screen) and RST 2 (VBLANK) at 60 Hz each, until stop is
// closed. It recovers a core panic (see pkg/cpu's UnreachableOpcodeError)
// into a returned error instead of crashing the host process — an
// arcade-cabinet host should not have a single bad instruction take down
// the whole process.
func (m *Machine) RunRealtime(stop <-chan struct{}) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if ue, ok := r.(*cpu.UnreachableOpcodeError); ok {
				err = ue
				return
			}
			err = errors.New("machine: panic during emulation")
		}
	}()

	const halfFramePeriod = time.Second / 120
	ticker := time.NewTicker(halfFramePeriod)
	defer ticker.Stop()

	interrupt := uint8(VBlankInterrupt)
	for {
		select {
		case <-stop:
			return nil
		case <-ticker.C:
			m.RunHalfFrame(interrupt)
			if interrupt == VBlankInterrupt {
				interrupt = MidScreenInterrupt
			} else {
				interrupt = VBlankInterrupt
			}
		}
	}
}

// Frame samples the current video RAM into a pixel buffer, reusing the
// Machine's own backing slice as a read-only borrow for the duration of the
// copy.
func (m *Machine) Frame(fg, bg uint32) []uint32 {
	video.Sample(m.Mem, fg, bg, m.frame)
	return m.frame
}

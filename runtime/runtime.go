// Package runtime provides the host-facing seams the evaluator and
// standard library depend on but must not hard-code: wall-clock time,
// randomness, program I/O streams, program arguments, and a source
// arena that keeps loaded program text (and REPL lines) alive for the
// lifetime of every sourcerange.SourceRange built from it.
package runtime

import (
	"io"
	"math/rand/v2"
	"os"
	"sync"
	"time"
)

// Clock abstracts wall-clock time and sleeping so `now`/`sleep` are
// testable without a real delay.
type Clock interface {
	NowUnixMilli() int64
	Sleep(d time.Duration)
}

// SystemClock is the default Clock, backed by the real OS clock.
type SystemClock struct{}

func (SystemClock) NowUnixMilli() int64    { return time.Now().UnixMilli() }
func (SystemClock) Sleep(d time.Duration)  { time.Sleep(d) }

// Rng abstracts randomness so `random`/`random_int` are testable.
type Rng interface {
	Float64() float64
	Int64N(n int64) int64
}

// SystemRng is the default Rng, backed by math/rand/v2.
type SystemRng struct{ r *rand.Rand }

// NewSystemRng constructs a SystemRng seeded from the OS entropy source.
func NewSystemRng() *SystemRng {
	return &SystemRng{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

func (s *SystemRng) Float64() float64     { return s.r.Float64() }
func (s *SystemRng) Int64N(n int64) int64 { return s.r.Int64N(n) }

// IO bundles the program's standard streams so tests can substitute
// in-memory buffers instead of the process's real stdio.
type IO struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
}

// StdIO returns an IO bound to the process's real stdio.
func StdIO() IO {
	return IO{Stdout: os.Stdout, Stderr: os.Stderr, Stdin: os.Stdin}
}

// Arena is an append-only store of source text blocks, keeping each
// block's backing string alive for the process's lifetime so that any
// sourcerange.SourceRange built over it (including ones surviving past
// a single REPL entry) stays valid.
type Arena struct {
	mu     sync.Mutex
	blocks []string
}

// Add appends source text to the arena and returns the stored string's
// address-stable copy for building SourceRanges over.
func (a *Arena) Add(text string) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.blocks = append(a.blocks, text)
	return a.blocks[len(a.blocks)-1]
}

// Runtime bundles everything the evaluator and standard library need
// from the host environment, injected once at program start so tests
// can swap in fakes.
type Runtime struct {
	Clock Clock
	Rng   Rng
	IO    IO
	Args  []string
	Arena *Arena
}

// New constructs a Runtime wired to the real OS clock, RNG, and stdio.
func New(args []string) *Runtime {
	return &Runtime{
		Clock: SystemClock{},
		Rng:   NewSystemRng(),
		IO:    StdIO(),
		Args:  args,
		Arena: &Arena{},
	}
}

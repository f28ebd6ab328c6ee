package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
)

// State is the session's position in its life cycle.
type State int

const (
	StateSpawning State = iota // Choosing and placing the next piece
	StateActive                // Piece accepts input and gravity
	StateLanded                // Gravity could not move the piece; waiting for lock-in
	StateClearing              // Piece locked, full rows being removed
	StateGameOver              // A fresh piece did not fit
	StateQuit                  // Player asked to leave
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateSpawning:
		return "spawning"
	case StateActive:
		return "active"
	case StateLanded:
		return "landed"
	case StateClearing:
		return "clearing"
	case StateGameOver:
		return "game_over"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further input or gravity is processed.
func (s State) Terminal() bool {
	return s == StateGameOver || s == StateQuit
}

var (
	// ErrAlreadyStarted is returned by Start on a running session.
	ErrAlreadyStarted = errors.New("engine: session already started")

	// ErrTerminated is returned by Start once the session has ended.
	ErrTerminated = errors.New("engine: session has ended")
)

// ShapeSource picks the next shape. *rand.Rand satisfies it.
type ShapeSource interface {
	Intn(n int) int
}

// Options configures a Session.
type Options struct {
	// GravityPeriod is the time between gravity steps (default 300ms).
	GravityPeriod time.Duration

	// Seed seeds the shape picker. 0 means seed from the current time.
	// Ignored when Shapes is set.
	Seed int64

	// Shapes overrides the random shape picker.
	Shapes ShapeSource

	// Logger receives session events. Nil discards them.
	Logger *log.Logger
}

// Piece describes the active piece.
type Piece struct {
	Shape    ShapeID
	Rotation int // 0..3, clockwise quarter turns
	Col      int // Grid column of the local frame's left edge
	Row      int // Grid row of the local frame's top edge
	Landed   bool
}

// Session owns the grid and the active piece. Every read and write of that
// state goes through mu, shared by the gravity goroutine and the caller's
// frame loop.
type Session struct {
	mu      sync.Mutex
	grid    *Grid
	piece   Piece
	state   State
	started bool
	shapes  ShapeSource
	logger  *log.Logger

	// Counters for log output.
	pieces int
	lines  int

	clock    *GravityClock
	done     chan struct{}
	doneOnce sync.Once
}

// NewSession allocates the playfield and an idle gravity clock.
func NewSession(opts Options) (*Session, error) {
	if opts.GravityPeriod < 0 {
		return nil, fmt.Errorf("engine: negative gravity period %s", opts.GravityPeriod)
	}

	grid, err := NewGrid(Width, Height)
	if err != nil {
		return nil, fmt.Errorf("engine: cannot allocate playfield: %w", err)
	}

	shapes := opts.Shapes
	if shapes == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		shapes = rand.New(rand.NewSource(seed))
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		grid:   grid,
		state:  StateSpawning,
		shapes: shapes,
		logger: logger,
		done:   make(chan struct{}),
	}
	s.clock = NewGravityClock(opts.GravityPeriod, func() { s.GravityStep() })
	return s, nil
}

// Start spawns the first piece and starts gravity. The clock stops when ctx
// is cancelled, the game ends, or Quit is called.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.state.Terminal() {
		s.mu.Unlock()
		return ErrTerminated
	}
	if s.started {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}
	s.started = true
	s.spawnLocked()
	over := s.state.Terminal()
	s.mu.Unlock()

	if over {
		s.clock.Stop()
		return nil
	}
	s.logger.Info("session started", "gravity", s.clock.Period())
	s.clock.Start(ctx)
	return nil
}

// spawnLocked places a random shape at the spawn point, or ends the game if
// it does not fit.
func (s *Session) spawnLocked() {
	s.state = StateSpawning
	id := ShapeID(s.shapes.Intn(ShapeCount))
	s.piece = Piece{Shape: id, Col: s.grid.Width()/2 - 2}

	if !s.grid.Fits(s.piece.Shape, s.piece.Rotation, s.piece.Col, s.piece.Row) {
		s.state = StateGameOver
		s.logger.Info("game over", "shape", id, "pieces", s.pieces, "lines", s.lines)
		s.finishLocked()
		return
	}

	s.pieces++
	s.state = StateActive
	s.logger.Debug("piece spawned", "shape", id, "col", s.piece.Col)
}

func (s *Session) finishLocked() {
	s.doneOnce.Do(func() {
		close(s.done)
	})
}

// MoveLeft shifts the piece one column left if it fits there.
func (s *Session) MoveLeft() bool {
	return s.try(func(p Piece) Piece {
		p.Col--
		return p
	})
}

// MoveRight shifts the piece one column right if it fits there.
func (s *Session) MoveRight() bool {
	return s.try(func(p Piece) Piece {
		p.Col++
		return p
	})
}

// Rotate turns the piece a quarter clockwise if it fits in place.
func (s *Session) Rotate() bool {
	return s.try(func(p Piece) Piece {
		p.Rotation = normalizeRotation(p.Rotation + 1)
		return p
	})
}

// try applies change to the active piece when the result fits.
// Rejected or out-of-state requests are no-ops.
func (s *Session) try(change func(Piece) Piece) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateActive || s.piece.Landed {
		return false
	}
	next := change(s.piece)
	if !s.grid.Fits(next.Shape, next.Rotation, next.Col, next.Row) {
		return false
	}
	s.piece = next
	return true
}

// Apply performs the request behind a player action and reports whether it
// changed anything.
func (s *Session) Apply(a core.Action) bool {
	switch a {
	case core.ActionRotate:
		return s.Rotate()
	case core.ActionLeft:
		return s.MoveLeft()
	case core.ActionRight:
		return s.MoveRight()
	case core.ActionQuit:
		return s.Quit()
	default:
		return false
	}
}

// GravityStep moves the active piece one row down, or marks it landed when
// the row below is blocked. Returns true if the piece moved.
func (s *Session) GravityStep() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateActive || s.piece.Landed {
		return false
	}
	p := s.piece
	if s.grid.Fits(p.Shape, p.Rotation, p.Col, p.Row+1) {
		s.piece.Row++
		return true
	}
	s.piece.Landed = true
	s.state = StateLanded
	return false
}

// Advance runs once per frame. A landed piece is locked into the grid, full
// rows are cleared and the next piece is spawned. Returns the state after
// the frame's processing.
func (s *Session) Advance() State {
	s.mu.Lock()
	if s.state == StateLanded {
		s.settleLocked()
	}
	state := s.state
	s.mu.Unlock()

	if state.Terminal() {
		s.clock.Stop()
	}
	return state
}

func (s *Session) settleLocked() {
	p := s.piece
	s.grid.ResetBorders()
	s.grid.Stamp(p.Shape, p.Rotation, p.Col, p.Row, true)

	s.state = StateClearing
	if n := s.grid.ClearFullRows(); n > 0 {
		s.lines += n
		s.logger.Debug("rows cleared", "count", n, "total", s.lines)
	}
	s.logger.Debug("piece locked", "shape", p.Shape, "col", p.Col, "row", p.Row, "rotation", p.Rotation)

	s.spawnLocked()
}

// Quit ends the session from any state and waits for gravity to stop.
// Returns false if the session had already ended.
func (s *Session) Quit() bool {
	s.mu.Lock()
	quit := !s.state.Terminal()
	if quit {
		s.state = StateQuit
		s.logger.Info("session quit", "pieces", s.pieces, "lines", s.lines)
		s.finishLocked()
	}
	s.mu.Unlock()

	s.clock.Stop()
	return quit
}

// Close quits the session if it is still running and releases the clock.
func (s *Session) Close() error {
	s.Quit()
	return nil
}

// Done returns a channel that is closed when the session reaches GameOver
// or Quit.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Piece returns a copy of the active piece descriptor.
func (s *Session) Piece() Piece {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.piece
}

// Snapshot composes the current frame and returns a copy of it.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.grid.ResetBorders()
	if s.state == StateActive || s.state == StateLanded {
		p := s.piece
		s.grid.Stamp(p.Shape, p.Rotation, p.Col, p.Row, false)
	}

	return Snapshot{
		Width:  s.grid.Width(),
		Height: s.grid.Height(),
		Cells:  s.grid.Cells(),
		Piece:  s.piece,
		State:  s.state,
	}
}

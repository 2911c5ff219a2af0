package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/herohde/morlock/pkg/board"
	"github.com/herohde/morlock/pkg/eval"
	"github.com/herohde/morlock/pkg/search"
	"github.com/herohde/morlock/pkg/zobrist"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

const defaultDepth = 8

// Options are engine creation options.
type Options struct {
	// Depth is the search depth limit, D_max. Zero means defaultDepth.
	Depth uint
	// Noise adds bounded randomness to leaf evaluations. Zero disables it,
	// which is the default: the core searcher is deterministic.
	Noise uint
	// Seed is the random seed for the Zobrist hash table and the noise
	// sampler. Two engines constructed with the same seed hash positions
	// identically.
	Seed int64
}

func (o Options) String() string {
	return fmt.Sprintf("{depth=%v, noise=%v, seed=%v}", o.Depth, o.Noise, o.Seed)
}

// Engine is a single-color, single-threaded Gomoku move-selection engine: a
// thin, synchronous facade over a board, an incrementally maintained state
// map and an alpha-beta searcher with a transposition table. Calls to
// GetNextMove and Options are serialized by an internal mutex; the search
// itself runs on the calling goroutine only.
// Grounded on the teacher's Engine (pkg/engine/engine.go), stripped of the
// chess-specific FEN reset/move/takeback surface and the async searchctl
// launcher machinery: there is no iterative deepening or cancellation here,
// so GetNextMove runs the search to completion and returns.
type Engine struct {
	name  string
	color board.Stone
	opts  Options
	tt    search.TranspositionTable

	ab *search.AlphaBeta
	mu sync.Mutex
}

// Option is an engine creation option.
type Option func(*Engine)

// WithDepth sets the search depth limit.
func WithDepth(depth uint) Option {
	return func(e *Engine) {
		e.opts.Depth = depth
	}
}

// WithNoise adds bounded randomness to leaf evaluations.
func WithNoise(amount uint) Option {
	return func(e *Engine) {
		e.opts.Noise = amount
	}
}

// WithSeed sets the Zobrist and noise random seed.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.opts.Seed = seed
	}
}

// WithTable overrides the engine's transposition table, e.g. with a no-op
// implementation in tests that want to observe unpruned search behavior.
func WithTable(tt search.TranspositionTable) Option {
	return func(e *Engine) {
		e.tt = tt
	}
}

// New returns an engine that plays the given color.
func New(color board.Stone, opts ...Option) *Engine {
	e := &Engine{
		name:  "gomoku",
		color: color,
		opts:  Options{Depth: defaultDepth},
	}
	for _, fn := range opts {
		fn(e)
	}
	if e.opts.Depth == 0 {
		e.opts.Depth = defaultDepth
	}
	if e.tt == nil {
		e.tt = search.NewTable()
	}

	e.ab = search.NewAlphaBeta(color, int(e.opts.Depth), e.tt, zobrist.NewTable(e.opts.Seed))
	if e.opts.Noise > 0 {
		e.ab.Noise = eval.NewNoise(int(e.opts.Noise), e.opts.Seed)
	}

	logw.Infof(context.Background(), "Initialized engine: %v, color=%v, options=%v", e.Name(), color, e.opts)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Color returns the color this engine plays.
func (e *Engine) Color() board.Stone {
	return e.color
}

// Options returns the engine's current runtime options.
func (e *Engine) Options() Options {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.opts
}

// GetNextMove runs a depth-limited alpha-beta search over b and returns the
// chosen position. b is not retained or mutated; GetNextMove forks its own
// board, state map and Zobrist key internally. Panics if b is already full
// (per spec §6, the caller is responsible for not calling GetNextMove on a
// terminal position).
func (e *Engine) GetNextMove(ctx context.Context, b *board.Board) board.Pos {
	e.mu.Lock()
	defer e.mu.Unlock()

	if b.Full() {
		panic("engine: GetNextMove called on a full board")
	}

	e.ab.Reset(b)
	move := e.ab.Run()

	logw.Infof(ctx, "%v chose %v: nodes=%v, tt=%v", e.Name(), move, e.ab.Nodes(), e.ab.TT.Len())
	return move
}

func (e *Engine) String() string {
	return e.Name()
}

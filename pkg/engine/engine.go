package engine

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/adventure-engine/internal/logger"
	"github.com/jwebster45206/adventure-engine/pkg/actor"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// State is the position of the turn loop.
type State int

const (
	AwaitingCombat State = iota
	AwaitingRoomIntro
	AwaitingCommand
	GameOver
)

func (s State) String() string {
	switch s {
	case AwaitingCombat:
		return "awaiting_combat"
	case AwaitingRoomIntro:
		return "awaiting_room_intro"
	case AwaitingCommand:
		return "awaiting_command"
	case GameOver:
		return "game_over"
	}
	return "unknown"
}

// Outcome tells how a finished game ended.
type Outcome string

const (
	OutcomeNone Outcome = ""
	OutcomeQuit Outcome = "quit"
	OutcomeDied Outcome = "died"
	OutcomeWon  Outcome = "won"
)

// Engine drives one game over a built world. It is not safe for concurrent use.
type Engine struct {
	id      string
	world   *world.World
	player  *actor.Player
	current *world.Room
	roller  actor.Roller
	out     io.Writer
	log     *slog.Logger
	prompt  string
	width   int

	state   State
	outcome Outcome
}

type Option func(*Engine)

// WithRoller replaces the random source used for every attack.
func WithRoller(r actor.Roller) Option {
	return func(e *Engine) { e.roller = r }
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithWidth wraps output at the given column. Zero disables wrapping.
func WithWidth(n int) Option {
	return func(e *Engine) { e.width = n }
}

func WithPrompt(p string) Option {
	return func(e *Engine) { e.prompt = p }
}

// New creates an engine positioned at the world's start room.
func New(w *world.World, out io.Writer, opts ...Option) *Engine {
	e := &Engine{
		id:      uuid.NewString(),
		world:   w,
		player:  w.Player(),
		current: w.Start(),
		out:     out,
		log:     slog.Default(),
		prompt:  "> ",
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.roller == nil {
		e.roller = actor.NewRandomRoller(0)
	}
	e.log = logger.WithGameID(e.log, e.id)
	return e
}

func (e *Engine) ID() string            { return e.id }
func (e *Engine) State() State          { return e.state }
func (e *Engine) Outcome() Outcome      { return e.outcome }
func (e *Engine) Current() *world.Room  { return e.current }
func (e *Engine) Player() *actor.Player { return e.player }
func (e *Engine) Prompt() string        { return e.prompt }

func (e *Engine) println(s string) {
	if e.width > 0 {
		s = wordwrap.String(s, e.width)
	}
	fmt.Fprintln(e.out, s)
}

func (e *Engine) end(o Outcome) {
	e.state = GameOver
	e.outcome = o
	e.log.Info("game over", "outcome", string(o), "score", e.player.Score(), "room", e.current.Key())
}

// Start announces the game and plays the automatic part of the first turn.
// It returns false if the game ended before the first command.
func (e *Engine) Start() bool {
	e.log.Info("game started", "world", e.world.Name(), "room", e.current.Key())
	if name := e.world.Name(); name != "" {
		e.println(strings.ToUpper(name) + "\n")
	}
	return e.Step()
}

// Step runs the automatic part of a turn: room name, hostile attacks and
// the first-visit description. It returns false once the game is over.
func (e *Engine) Step() bool {
	if e.state == GameOver {
		return false
	}

	e.state = AwaitingCombat
	e.println(e.current.Name() + "\n")

	for _, h := range e.current.HostileSentients() {
		e.println("You are attacked by the " + h.Name() + ".")
		res := h.Attack(e.player.Entity, e.roller)
		e.log.Debug("creature attack", "attacker", h.Key(), "hit", res.Hit, "damage", res.Damage, "player_hp", e.player.HP())
		if !res.Hit {
			e.println("The " + h.Name() + " missed.")
			continue
		}
		e.println("You have been hit.")
		e.println(e.player.HealthStatus())
		if e.player.IsDead() {
			break
		}
	}
	if e.player.IsDead() {
		e.println("GAME OVER")
		e.end(OutcomeDied)
		return false
	}

	e.state = AwaitingRoomIntro
	if !e.current.Visited() {
		e.println(e.current.Look() + "\n")
		e.current.Visit()
		e.player.AddScore(1)
	}

	e.state = AwaitingCommand
	return true
}

// Submit handles one input line and, unless the game ended, plays the
// automatic part of the next turn.
func (e *Engine) Submit(line string) bool {
	if e.state == GameOver {
		return false
	}
	e.Handle(line)
	if e.state == GameOver {
		return false
	}
	return e.Step()
}

// Run plays the game reading commands from in, one per line, until it ends.
// End of input counts as quitting.
func (e *Engine) Run(ctx context.Context, in io.Reader) (Outcome, error) {
	scanner := bufio.NewScanner(in)
	running := e.Start()
	for running {
		if err := ctx.Err(); err != nil {
			return e.outcome, err
		}
		fmt.Fprint(e.out, e.prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return e.outcome, fmt.Errorf("failed to read input: %w", err)
			}
			fmt.Fprintln(e.out)
			e.end(OutcomeQuit)
			break
		}
		running = e.Submit(scanner.Text())
	}
	return e.outcome, nil
}

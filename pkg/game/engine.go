package game

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/akinator/pkg/console"
	"github.com/aretw0/akinator/pkg/domain"
	"github.com/aretw0/akinator/pkg/ports"
)

// Engine owns the decision tree and plays rounds against a console.
// It is single-threaded: one player, one tree.
type Engine struct {
	store   ports.TreeStore
	console *console.Console
	root    *domain.Node
	logger  *slog.Logger
	hooks   domain.LifecycleHooks
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithTree starts the engine with root instead of waiting for InitializeOrLoad.
func WithTree(root *domain.Node) Option {
	return func(e *Engine) {
		e.root = root
	}
}

// New creates an engine reading answers from con and persisting to store.
func New(store ports.TreeStore, con *console.Console, opts ...Option) *Engine {
	e := &Engine{
		store:   store,
		console: con,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.root == nil {
		e.root = domain.DefaultTree()
	}
	return e
}

// Root returns the live tree. Callers must not mutate it during a round.
func (e *Engine) Root() *domain.Node {
	return e.root
}

// InitializeOrLoad installs the persisted tree, or the default tree when there is
// none. A tree that exists but cannot be read is reported as a warning and replaced
// by the default tree; it is never fatal.
func (e *Engine) InitializeOrLoad(ctx context.Context) {
	root, err := e.store.Load(ctx)
	fresh := err != nil

	switch {
	case err == nil:
		e.root = root
		e.console.Say("Loading game data.")
	case errors.Is(err, domain.ErrTreeNotFound):
		e.root = domain.DefaultTree()
		e.console.Say("No saved game data, starting a new tree.")
	default:
		e.root = domain.DefaultTree()
		e.console.Warn("could not load game data: %v. Starting a new tree.", err)
		e.logger.Warn("Failed to load tree", "error", err)
	}

	stats := e.root.Stats()
	e.logger.Debug("Tree ready", "nodes", stats.Nodes, "animals", stats.Leaves, "fresh", fresh)
	if e.hooks.OnLoad != nil {
		e.hooks.OnLoad(ctx, &domain.StoreEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventLoad},
			Tree:      stats,
			Fresh:     fresh,
			Err:       ignoreNotFound(err),
		})
	}
}

// PlaySession plays rounds until the player declines another one, then persists
// the tree exactly once. Running out of input ends the session early; the tree is
// still saved. Save failures are warnings and never returned.
func (e *Engine) PlaySession(ctx context.Context) error {
	e.console.Say("Think of an animal and I will try to guess it.")

	err := e.loop(ctx)
	if errors.Is(err, io.EOF) {
		e.logger.Info("Input closed, ending session")
		err = nil
	}

	_ = e.Persist(ctx)
	return err
}

func (e *Engine) loop(ctx context.Context) error {
	for {
		if err := e.PlayRound(ctx); err != nil {
			return err
		}

		e.console.Say("Play again? (%s/%s)", console.YesToken, console.NoToken)
		reply, err := e.console.ReadLine(ctx)
		if err != nil {
			return err
		}
		if again, ok := console.ParseYesNo(reply); !ok || !again {
			return nil
		}
	}
}

// PlayRound descends from the root to a leaf and confirms the guess.
// A rejected guess makes the engine learn the player's animal.
func (e *Engine) PlayRound(ctx context.Context) error {
	current := e.root
	depth := 0

	for !current.IsLeaf() {
		e.console.Say("%s", current.Content)
		answer, err := e.console.ReadYesNo(ctx)
		if err != nil {
			return err
		}

		if e.hooks.OnQuestion != nil {
			e.hooks.OnQuestion(ctx, &domain.QuestionEvent{
				EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventQuestion},
				Question:  current.Content,
				Answer:    answer,
				Depth:     depth,
			})
		}

		if answer {
			current = current.Yes
		} else {
			current = current.No
		}
		depth++
	}

	e.console.Say("Is it a %s?", current.Content)
	correct, err := e.console.ReadYesNo(ctx)
	if err != nil {
		return err
	}

	e.logger.Debug("Guess", "animal", current.Content, "correct", correct, "questions", depth)
	if e.hooks.OnGuess != nil {
		e.hooks.OnGuess(ctx, &domain.GuessEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventGuess},
			Animal:    current.Content,
			Correct:   correct,
			Questions: depth,
		})
	}

	if correct {
		e.console.Say("I guessed it!")
		return nil
	}
	return e.Learn(ctx, current)
}

// Learn turns leaf into a question that tells the player's animal apart from the
// wrong guess. The node is rewritten in place so its parent needs no update.
// The tree is only touched once all three answers have been read.
func (e *Engine) Learn(ctx context.Context, leaf *domain.Node) error {
	e.console.Say("I give up... What animal were you thinking of?")
	newAnimal, err := e.console.ReadText(ctx)
	if err != nil {
		return err
	}

	e.console.Say("What question distinguishes a %s from a %s?", newAnimal, leaf.Content)
	newQuestion, err := e.console.ReadText(ctx)
	if err != nil {
		return err
	}

	e.console.Say("For a %s, what is the answer to that question? (%s/%s)", newAnimal, console.YesToken, console.NoToken)
	answer, err := e.console.ReadYesNo(ctx)
	if err != nil {
		return err
	}

	demoted := domain.NewNode(leaf.Content)
	leaf.Content = newQuestion
	fresh := domain.NewNode(newAnimal)
	if answer {
		leaf.Yes, leaf.No = fresh, demoted
	} else {
		leaf.Yes, leaf.No = demoted, fresh
	}

	stats := e.root.Stats()
	e.logger.Info("Learned animal", "animal", newAnimal, "replaced", demoted.Content, "animals", stats.Leaves)
	if e.hooks.OnLearn != nil {
		e.hooks.OnLearn(ctx, &domain.LearnEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventLearn},
			Animal:    newAnimal,
			Replaced:  demoted.Content,
			Question:  newQuestion,
			Answer:    answer,
			Tree:      stats,
		})
	}
	return nil
}

// Persist saves the whole tree, overwriting any earlier copy.
// A failure is shown to the player as a warning and returned for the caller's records.
func (e *Engine) Persist(ctx context.Context) error {
	err := e.store.Save(ctx, e.root)
	if err != nil {
		e.console.Warn("could not save game data: %v", err)
		e.logger.Warn("Failed to save tree", "error", err)
	} else {
		e.console.Say("Game data saved.")
	}

	if e.hooks.OnSave != nil {
		e.hooks.OnSave(ctx, &domain.StoreEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventSave},
			Tree:      e.root.Stats(),
			Err:       err,
		})
	}
	return err
}

func ignoreNotFound(err error) error {
	if errors.Is(err, domain.ErrTreeNotFound) {
		return nil
	}
	return err
}

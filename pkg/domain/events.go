package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventQuestion EventType = "question"
	EventGuess    EventType = "guess"
	EventLearn    EventType = "learn"
	EventLoad     EventType = "load"
	EventSave     EventType = "save"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// QuestionEvent is emitted after the player answers a question node.
type QuestionEvent struct {
	EventBase
	Question string `json:"question"`
	Answer   bool   `json:"answer"`
	Depth    int    `json:"depth"`
}

// GuessEvent is emitted after the player confirms or rejects a guess.
type GuessEvent struct {
	EventBase
	Animal  string `json:"animal"`
	Correct bool   `json:"correct"`
	// Questions is the number of questions asked before the guess.
	Questions int `json:"questions"`
}

// LearnEvent is emitted after a leaf has been promoted to a question.
type LearnEvent struct {
	EventBase
	Animal   string `json:"animal"`
	Replaced string `json:"replaced"`
	Question string `json:"question"`
	Answer   bool   `json:"answer"`
	Tree     Stats  `json:"tree"`
}

// StoreEvent is emitted after the tree has been loaded or saved.
type StoreEvent struct {
	EventBase
	Tree Stats `json:"tree"`
	// Fresh is set on load when the default tree was seeded.
	Fresh bool  `json:"fresh,omitempty"`
	Err   error `json:"-"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnQuestion func(context.Context, *QuestionEvent)
	OnGuess    func(context.Context, *GuessEvent)
	OnLearn    func(context.Context, *LearnEvent)
	OnLoad     func(context.Context, *StoreEvent)
	OnSave     func(context.Context, *StoreEvent)
}

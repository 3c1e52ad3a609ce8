/*
Package akinator is a console guessing game backed by a self-expanding binary decision tree.

The game asks yes/no questions, walking from the root of the tree to a leaf, and
guesses the animal stored there. When the guess is wrong it asks the player for the
right animal and for a question that distinguishes it, and grows the tree in place.
The tree is persisted between runs.

# Layout

  - pkg/domain: the tree (Node), its invariants and lifecycle events.
  - pkg/game: the Engine that plays rounds and learns.
  - pkg/console: line-oriented prompts and yes/no answers.
  - pkg/codec: the versioned binary format and the YAML document format.
  - pkg/ports: the TreeStore port; adapters live in internal/adapters and pkg/adapters.

# Usage

	store := memory.NewStore()
	eng := game.New(store, console.New(os.Stdin, os.Stdout))
	eng.InitializeOrLoad(ctx)
	if err := eng.PlaySession(ctx); err != nil {
		log.Fatal(err)
	}
*/
package akinator

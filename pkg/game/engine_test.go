package game_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/akinator/pkg/adapters/memory"
	"github.com/aretw0/akinator/pkg/console"
	"github.com/aretw0/akinator/pkg/domain"
	"github.com/aretw0/akinator/pkg/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStore fails Load and/or Save with fixed errors.
type failingStore struct {
	loadErr error
	saveErr error
	saves   int
}

func (s *failingStore) Load(ctx context.Context) (*domain.Node, error) { return nil, s.loadErr }
func (s *failingStore) Save(ctx context.Context, root *domain.Node) error {
	s.saves++
	return s.saveErr
}
func (s *failingStore) Delete(ctx context.Context) error { return nil }

func newEngine(t *testing.T, input string, store *memory.Store, opts ...game.Option) (*game.Engine, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	con := console.New(strings.NewReader(input), out, console.WithPrompt(""))
	eng := game.New(store, con, opts...)
	eng.InitializeOrLoad(context.Background())
	return eng, out
}

func TestInitializeOrLoad_NoSavedTree(t *testing.T) {
	eng, out := newEngine(t, "", memory.NewStore())

	root := eng.Root()
	assert.Equal(t, "Does your animal have horns?", root.Content)
	assert.Equal(t, "Cow", root.Yes.Content)
	assert.Equal(t, "Dog", root.No.Content)
	assert.Contains(t, out.String(), "No saved game data")
	assert.NotContains(t, out.String(), "Warning")
}

func TestInitializeOrLoad_SavedTree(t *testing.T) {
	saved := domain.NewQuestion("Does it fly?", domain.NewNode("Eagle"), domain.NewNode("Dog"))
	eng, out := newEngine(t, "", memory.NewStoreWith(saved))

	assert.True(t, saved.Equal(eng.Root()))
	assert.Contains(t, out.String(), "Loading game data.")
}

func TestInitializeOrLoad_CorruptTree(t *testing.T) {
	out := &bytes.Buffer{}
	store := &failingStore{loadErr: errors.New("bad bytes")}
	eng := game.New(store, console.New(strings.NewReader(""), out))

	eng.InitializeOrLoad(context.Background())

	assert.True(t, domain.DefaultTree().Equal(eng.Root()))
	assert.Contains(t, out.String(), "Warning: could not load game data: bad bytes")
}

func TestPlayRound_CorrectGuessDoesNotMutate(t *testing.T) {
	eng, out := newEngine(t, "yes\nyes\n", memory.NewStore())

	require.NoError(t, eng.PlayRound(context.Background()))

	assert.Contains(t, out.String(), "Does your animal have horns?\nIs it a Cow?\nI guessed it!")
	assert.True(t, domain.DefaultTree().Equal(eng.Root()))
}

func TestPlayRound_LearnsNewAnimal(t *testing.T) {
	eng, out := newEngine(t, "no\nno\nCat\nDoes it meow?\nyes\n", memory.NewStore())
	dogNode := eng.Root().No

	require.NoError(t, eng.PlayRound(context.Background()))

	assert.Contains(t, out.String(), "Is it a Dog?")
	assert.Contains(t, out.String(), "What question distinguishes a Cat from a Dog?")

	// The Dog leaf was promoted in place.
	assert.Same(t, dogNode, eng.Root().No)
	assert.Equal(t, "Does it meow?", dogNode.Content)
	require.False(t, dogNode.IsLeaf())
	assert.Equal(t, "Cat", dogNode.Yes.Content)
	assert.Equal(t, "Dog", dogNode.No.Content)
	assert.True(t, dogNode.Yes.IsLeaf())
	assert.True(t, dogNode.No.IsLeaf())
	assert.NoError(t, domain.Validate(eng.Root()))
}

func TestPlayRound_BlankQuestionIsAskedAgain(t *testing.T) {
	store := memory.NewStore()
	eng, out := newEngine(t, "no\nno\nCat\n\x00\t\x00\nDoes it meow?\nyes\nno\n", store)

	require.NoError(t, eng.PlaySession(context.Background()))

	assert.Contains(t, out.String(), "Please type something.")
	assert.Equal(t, "Does it meow?", eng.Root().No.Content)
	assert.NotContains(t, out.String(), "Warning")
	assert.Equal(t, 1, store.Saves)
}

func TestWithTree_SkipsLoading(t *testing.T) {
	zoo := domain.NewQuestion("Can it fly?", domain.NewNode("Eagle"), domain.NewNode("Dog"))
	store := memory.NewStore()
	out := &bytes.Buffer{}
	con := console.New(strings.NewReader("yes\nyes\nno\n"), out, console.WithPrompt(""))
	eng := game.New(store, con, game.WithTree(zoo))

	require.NoError(t, eng.PlaySession(context.Background()))

	assert.Same(t, zoo, eng.Root())
	assert.Contains(t, out.String(), "Can it fly?\nIs it a Eagle?\nI guessed it!")
	saved, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, zoo.Equal(saved))
}

func TestPlayRound_LearnsWithNoAnswer(t *testing.T) {
	eng, _ := newEngine(t, "yes\nno\nGoat\nDoes it give milk to most people?\nno\n", memory.NewStore())

	require.NoError(t, eng.PlayRound(context.Background()))

	cowNode := eng.Root().Yes
	assert.Equal(t, "Does it give milk to most people?", cowNode.Content)
	assert.Equal(t, "Cow", cowNode.Yes.Content)
	assert.Equal(t, "Goat", cowNode.No.Content)
}

func TestPlayRound_MalformedAnswerIsRejected(t *testing.T) {
	eng, out := newEngine(t, "maybe\nyes\nyes\n", memory.NewStore())

	require.NoError(t, eng.PlayRound(context.Background()))

	assert.Equal(t, 1, strings.Count(out.String(), "Please answer yes or no."))
	assert.Contains(t, out.String(), "Is it a Cow?")
	assert.True(t, domain.DefaultTree().Equal(eng.Root()))
}

func TestLearn_GrowsTreeByOneLeaf(t *testing.T) {
	trees := []*domain.Node{
		domain.DefaultTree(),
		domain.NewNode("Dog"),
		domain.NewQuestion("Does it fly?",
			domain.NewQuestion("Is it a bird?", domain.NewNode("Eagle"), domain.NewNode("Bat")),
			domain.NewNode("Dog"),
		),
	}

	for _, root := range trees {
		eng, _ := newEngine(t, "Fish\nDoes it swim?\nyes\n", memory.NewStoreWith(root))
		before := eng.Root().Stats()

		var leaf *domain.Node
		eng.Root().Walk(func(n *domain.Node, _ int) bool {
			if leaf == nil && n.IsLeaf() {
				leaf = n
			}
			return true
		})

		require.NoError(t, eng.Learn(context.Background(), leaf))
		after := eng.Root().Stats()

		assert.Equal(t, before.Leaves+1, after.Leaves)
		assert.Equal(t, before.Questions+1, after.Questions)
		assert.Equal(t, before.Nodes+2, after.Nodes)
		assert.NoError(t, domain.Validate(eng.Root()))
	}
}

func TestLearn_InputErrorLeavesTreeUntouched(t *testing.T) {
	eng, _ := newEngine(t, "Cat\nDoes it meow?\n", memory.NewStore())
	leaf := eng.Root().No

	err := eng.Learn(context.Background(), leaf)
	require.Error(t, err)
	assert.True(t, domain.DefaultTree().Equal(eng.Root()))
}

func TestPlaySession_PersistsOnce(t *testing.T) {
	store := memory.NewStore()
	input := strings.Join([]string{
		// round 1: learn Cat
		"no", "no", "Cat", "Does it meow?", "yes",
		"yes",
		// round 2: Cat is guessed
		"no", "yes", "yes",
		"no",
	}, "\n") + "\n"
	eng, out := newEngine(t, input, store)

	require.NoError(t, eng.PlaySession(context.Background()))

	assert.Equal(t, 1, store.Saves)
	assert.Equal(t, 2, strings.Count(out.String(), "Play again?"))
	assert.Contains(t, out.String(), "Game data saved.")

	saved, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, eng.Root().Equal(saved))
	assert.Equal(t, []string{"Cow", "Cat", "Dog"}, saved.Animals())
}

func TestPlaySession_AnythingButYesEnds(t *testing.T) {
	for _, reply := range []string{"no", "maybe", "", "si"} {
		store := memory.NewStore()
		eng, out := newEngine(t, "yes\nyes\n"+reply+"\nyes\nyes\n", store)

		require.NoError(t, eng.PlaySession(context.Background()))
		assert.Equal(t, 1, strings.Count(out.String(), "Play again?"), reply)
		assert.Equal(t, 1, store.Saves)
	}
}

func TestPlaySession_EOFStillPersists(t *testing.T) {
	store := memory.NewStore()
	input := "no\nno\nCat\nDoes it meow?\nyes\nyes\nno\nno\nWolf\n"
	eng, _ := newEngine(t, input, store)

	require.NoError(t, eng.PlaySession(context.Background()))
	assert.Equal(t, 1, store.Saves)

	saved, err := store.Load(context.Background())
	require.NoError(t, err)
	// Cat was learned in the first round; the unfinished Wolf round left no trace.
	assert.Equal(t, []string{"Cow", "Cat", "Dog"}, saved.Animals())
}

func TestPlaySession_SaveFailureIsAWarning(t *testing.T) {
	out := &bytes.Buffer{}
	store := &failingStore{loadErr: domain.ErrTreeNotFound, saveErr: errors.New("disk full")}
	eng := game.New(store, console.New(strings.NewReader("yes\nyes\nno\n"), out, console.WithPrompt("")))
	eng.InitializeOrLoad(context.Background())

	require.NoError(t, eng.PlaySession(context.Background()))
	assert.Equal(t, 1, store.saves)
	assert.Contains(t, out.String(), "Warning: could not save game data: disk full")
}

func TestLifecycleHooks(t *testing.T) {
	var questions, guesses, learns, loads, saves int
	var learned *domain.LearnEvent
	hooks := domain.LifecycleHooks{
		OnQuestion: func(ctx context.Context, e *domain.QuestionEvent) { questions++ },
		OnGuess: func(ctx context.Context, e *domain.GuessEvent) {
			guesses++
			assert.False(t, e.Correct)
			assert.Equal(t, 1, e.Questions)
		},
		OnLearn: func(ctx context.Context, e *domain.LearnEvent) { learns++; learned = e },
		OnLoad: func(ctx context.Context, e *domain.StoreEvent) {
			loads++
			assert.True(t, e.Fresh)
			assert.NoError(t, e.Err)
		},
		OnSave: func(ctx context.Context, e *domain.StoreEvent) { saves++ },
	}

	eng, _ := newEngine(t, "no\nno\nCat\nDoes it meow?\nyes\nno\n", memory.NewStore(), game.WithLifecycleHooks(hooks))
	require.NoError(t, eng.PlaySession(context.Background()))

	assert.Equal(t, 1, questions)
	assert.Equal(t, 1, guesses)
	assert.Equal(t, 1, learns)
	assert.Equal(t, 1, loads)
	assert.Equal(t, 1, saves)
	require.NotNil(t, learned)
	assert.Equal(t, "Cat", learned.Animal)
	assert.Equal(t, "Dog", learned.Replaced)
	assert.Equal(t, 3, learned.Tree.Leaves)
}

/*
Package game runs the guessing game on top of a self-expanding decision tree.

The Engine walks the tree from the root, asking each question through the console,
and guesses the animal at the leaf it reaches. When the guess is wrong it learns:
the leaf is promoted in place to a new question whose branches hold the new animal
and the animal it guessed.

	eng := game.New(store, console.New(os.Stdin, os.Stdout))
	eng.InitializeOrLoad(ctx)
	err := eng.PlaySession(ctx)
*/
package game

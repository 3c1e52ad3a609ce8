/*
Package console implements the line-oriented terminal protocol used by the game.

It offers two kinds of structured input: free-text lines (animal names, questions)
and constrained yes/no answers that re-prompt until one of the two tokens is given.
*/
package console

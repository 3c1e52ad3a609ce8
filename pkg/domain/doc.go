/*
Package domain contains the decision tree that backs the guessing game.

It is kept pure and free of I/O or persistence concerns.

# Key Entities

  - Node: either a yes/no question with two children, or a leaf holding an animal.
  - Stats: shape summary of a tree (nodes, leaves, depth).
  - Validate: structural check run after every decode.
*/
package domain

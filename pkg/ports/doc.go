/*
Package ports defines the driven ports (interfaces) for the game engine.

These interfaces decouple the engine from the place its knowledge is kept,
allowing the same game to run against a local file, Redis, or memory.

# Key Interfaces

  - TreeStore: Responsible for persisting and loading the decision tree.
*/
package ports

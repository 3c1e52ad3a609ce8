package domain

import "errors"

// ErrTreeNotFound is returned by a store when no tree has been saved yet.
var ErrTreeNotFound = errors.New("tree not found")

// ErrCorruptTree is returned when persisted data cannot be decoded into a tree.
var ErrCorruptTree = errors.New("corrupt tree data")

// ErrInvalidTree is returned when a tree breaks the leaf/question invariants.
var ErrInvalidTree = errors.New("invalid tree")

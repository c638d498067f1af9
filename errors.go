package pqdict

import "errors"

var (
	// ErrKeyNotFound is returned when an operation targets a key that is
	// not in the queue.
	ErrKeyNotFound = errors.New("pqdict: key not found")
	// ErrKeyExists is returned by Add when the key is already present.
	ErrKeyExists = errors.New("pqdict: key already exists")
	// ErrEmpty is returned by Pop and Peek on an empty queue.
	ErrEmpty = errors.New("pqdict: queue is empty")
	// ErrInvalidInput is returned by constructors given a nil comparator
	// or a nil priority function.
	ErrInvalidInput = errors.New("pqdict: invalid construction input")
)

package ecs

import "github.com/rotisserie/eris"

var (
	// ErrWorldNotFound is returned when an operation needs the world record
	// but genesis has not been performed for this namespace.
	ErrWorldNotFound = eris.New("world has not been created")

	// ErrRegisterNotFound is returned when a component is unregistered before
	// any registration has ever created the register record.
	ErrRegisterNotFound = eris.New("component register has not been created")

	// ErrRegisterFull is returned when allocating one more bit would exceed
	// the bitmap width. It is distinct from the not-found errors so callers
	// can tell "registry full" apart from "not initialized".
	ErrRegisterFull = eris.New("component register is full")
)

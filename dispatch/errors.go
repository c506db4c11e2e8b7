package dispatch

import "errors"

var (
	ErrTableFull     = errors.New("dispatch: no free slot")
	ErrDuplicateName = errors.New("dispatch: name already registered")
	ErrNotRegistered = errors.New("dispatch: name not registered")
	ErrStaleHandle   = errors.New("dispatch: handle no longer registered")
	ErrEmptyFunction = errors.New("dispatch: cannot register an empty function")
)

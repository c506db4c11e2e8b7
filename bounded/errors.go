package bounded

import (
	"errors"
	"fmt"
)

// ErrEmptyFunction is returned when invoking a Function that holds no target.
var ErrEmptyFunction = errors.New("bounded: call of empty function")

var errNilFunc = fmt.Errorf("bounded: nil func: %w", ErrEmptyFunction)

package lock

import "errors"

var ErrLockHeld = errors.New("lock is held by another request")

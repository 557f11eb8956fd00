package rule

import "errors"

// ErrResourceLoad indicates a rule resource could not be read. Fatal to the
// load that requested it; never retried.
var ErrResourceLoad = errors.New("rule resource load failed")

// ErrUnknownRule indicates a requested bitext rule id has no registered
// factory. The whole bitext rule build is aborted — no partial rule set.
var ErrUnknownRule = errors.New("unknown bitext rule")

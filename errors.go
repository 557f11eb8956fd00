package veritext

import "errors"

// ErrNoRules is returned by New when neither pattern rules nor bitext
// rules are configured; a client with nothing to match is a configuration
// defect.
var ErrNoRules = errors.New("no rules configured")

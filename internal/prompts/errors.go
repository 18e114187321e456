package prompts

import "errors"

// ErrInvalidStage is returned for an unrecognized workflow stage.
var ErrInvalidStage = errors.New("stage must be general, thermal, or synthesize")

package highlight

import "errors"

// ErrGroupRange indicates that a capture group index passed to
// [HighlightSubmatch] does not exist in the pattern.
var ErrGroupRange = errors.New("capture group out of range")

package detail

import "errors"

// ErrNoDetailService indicates that no detail service was provided.
var ErrNoDetailService = errors.New("detail service is required")

package isoagent

import "errors"

// ErrCompletionFailed indicates the completion provider returned an error or
// produced no usable text. The pipeline aborts on the first occurrence; no
// stage retries.
var ErrCompletionFailed = errors.New("completion service failed")

// ErrEmptyQuery indicates an empty or whitespace-only query. The surrounding
// CLI filters these out, but the core rejects them defensively as well.
var ErrEmptyQuery = errors.New("query is empty")

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import "fmt"

// ParseError reports a completion that was not valid page JSON. It is
// fatal for the page: the generator never retries a malformed
// completion, callers decide whether to re-run.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing generated content: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

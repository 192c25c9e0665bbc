// Package judgeio reads whitespace-delimited tokens and lines from judge
// input and writes buffered judge output.
package judgeio

import "errors"

// ErrMalformed indicates a token that does not parse as the requested type.
var ErrMalformed = errors.New("judgeio: malformed token")

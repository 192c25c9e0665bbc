package problems

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/judgekit/judgeio"
)

// costToken reads one matrix entry, tolerating the comma that separates it
// from the next one.
func costToken(in *judgeio.Scanner) (int64, error) {
	tok, err := in.Token()
	if errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("reading cost: %w", io.ErrUnexpectedEOF)
	}
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(strings.TrimSuffix(tok, ","), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a cost", judgeio.ErrMalformed, tok)
	}
	return v, nil
}

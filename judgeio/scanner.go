package judgeio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Scanner reads judge input one token or one line at a time. Token and
// line reads can be mixed: after a token, Line returns the rest of that
// same line (often empty).
//
// At a clean end of input, Token and Line return io.EOF. The typed readers
// (Int, Int64) return io.ErrUnexpectedEOF instead, since a caller asking for
// a number expects one to be there; use More to test for a further token.
//
// The first read error other than io.EOF is kept and reported by Err, so a
// loop that stops when More returns false can tell a failed read from the
// end of input.
type Scanner struct {
	r    *bufio.Reader
	read int64
	err  error
}

// NewScanner wraps r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReader(r)}
}

// BytesRead returns how many input bytes have been consumed so far.
func (s *Scanner) BytesRead() int64 { return s.read }

// Err returns the first read error other than io.EOF, if any.
func (s *Scanner) Err() error { return s.err }

func (s *Scanner) readByte() (byte, error) {
	b, err := s.r.ReadByte()
	switch {
	case err == nil:
		s.read++
	case err != io.EOF && s.err == nil:
		s.err = err
	}
	return b, err
}

func (s *Scanner) unreadByte() {
	if s.r.UnreadByte() == nil {
		s.read--
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\n' || b == '\t' || b == '\r' || b == '\v' || b == '\f'
}

// skipSpace consumes whitespace and reports whether a non-space byte follows.
func (s *Scanner) skipSpace() (bool, error) {
	for {
		b, err := s.readByte()
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if !isSpace(b) {
			s.unreadByte()
			return true, nil
		}
	}
}

// More reports whether another token is available. It returns false both
// at the end of input and after a read error; check Err to tell them apart.
func (s *Scanner) More() bool {
	ok, err := s.skipSpace()
	return ok && err == nil
}

// Token returns the next whitespace-delimited token.
func (s *Scanner) Token() (string, error) {
	ok, err := s.skipSpace()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", io.EOF
	}
	var sb strings.Builder
	for {
		b, err := s.readByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if isSpace(b) {
			s.unreadByte()
			break
		}
		sb.WriteByte(b)
	}
	return sb.String(), nil
}

// Line returns the rest of the current line without its terminator
// ("\n" or "\r\n"). A final line without a terminator is returned as is;
// io.EOF is returned only when nothing at all is left.
func (s *Scanner) Line() (string, error) {
	line, err := s.r.ReadString('\n')
	s.read += int64(len(line))
	if err != nil && err != io.EOF && s.err == nil {
		s.err = err
	}
	if err == io.EOF {
		if line == "" {
			return "", io.EOF
		}
		err = nil
	}
	if err != nil {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// Int reads the next token as an int.
func (s *Scanner) Int() (int, error) {
	v, err := s.Int64()
	if err != nil {
		return 0, err
	}
	if int64(int(v)) != v {
		return 0, fmt.Errorf("%w: %d overflows int", ErrMalformed, v)
	}
	return int(v), nil
}

// Int64 reads the next token as an int64.
func (s *Scanner) Int64() (int64, error) {
	tok, err := s.Token()
	if err == io.EOF {
		return 0, fmt.Errorf("reading integer: %w", io.ErrUnexpectedEOF)
	}
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrMalformed, tok)
	}
	return v, nil
}

// Ints reads n integers.
func (s *Scanner) Ints(n int) ([]int, error) {
	out := make([]int, n)
	for i := range out {
		v, err := s.Int()
		if err != nil {
			return nil, fmt.Errorf("integer %d of %d: %w", i+1, n, err)
		}
		out[i] = v
	}
	return out, nil
}

package norm

import (
	"io"

	"github.com/tawesoft/norm/runeio"
)

// ReadAll reads every scalar value from r and normalizes the resulting text
// to form f, per spec.md's input framing: a source that yields Done/Skip/
// Yield signals rather than the language's own string type. An encoding
// error in r's bytes is silently skipped rather than treated as fatal,
// consistent with this package's Non-goal of validating ill-formed input;
// only a genuine read error from r is returned.
func (f Form) ReadAll(r io.Reader) (string, error) {
	rr := runeio.NewReader(r)
	rs := make([]rune, 0, 64)

	for {
		c, sig := rr.NextSignal()
		switch sig {
		case runeio.Done:
			if err := rr.Err(); err != nil {
				return "", err
			}
			return f.Normalize(string(rs))
		case runeio.Skip:
			continue
		case runeio.Yield:
			rs = append(rs, c)
		}
	}
}

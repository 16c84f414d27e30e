// Package clipboard places text on the system clipboard on a best-effort basis.
package clipboard

import (
	"errors"

	atotto "github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available,
// e.g. on a headless Linux host without xclip, xsel or wl-copy.
var ErrUnsupported = errors.New("clipboard is not available on this system")

// Copier writes text to a clipboard.
type Copier interface {
	Copy(text string) error
}

// Result is the outcome of a copy attempt.
type Result struct {
	Attempted bool  // False when no Copier was configured.
	Err       error // Nil when the text reached the clipboard.
}

// OK reports whether the text was copied.
func (r Result) OK() bool {
	return r.Attempted && r.Err == nil
}

// System is the Copier backed by the host clipboard.
type System struct{}

// Copy implements Copier.
func (System) Copy(text string) error {
	if atotto.Unsupported {
		return ErrUnsupported
	}
	return atotto.WriteAll(text)
}

// Try copies text with c and captures the outcome instead of returning an
// error. A nil Copier yields a Result that was never attempted.
func Try(c Copier, text string) (res Result) {
	if c == nil {
		return Result{}
	}
	res.Attempted = true
	defer func() {
		if r := recover(); r != nil {
			res.Err = errors.New("clipboard copy panicked")
		}
	}()
	res.Err = c.Copy(text)
	return res
}

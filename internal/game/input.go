package game

import (
	"context"
	"unicode"

	"github.com/rs/zerolog/log"
)

type keyResult struct {
	key Key
	err error
}

// awaitKey performs one blocking ReadKey on a separate goroutine and waits for
// its result or for ctx to end. The result channel is buffered so an abandoned
// worker can still deliver and exit once the terminal returns.
func awaitKey(ctx context.Context, keys KeyReader) (Key, error) {
	done := make(chan keyResult, 1)
	go func() {
		k, err := keys.ReadKey()
		done <- keyResult{key: k, err: err}
	}()

	select {
	case res := <-done:
		return res.key, res.err
	case <-ctx.Done():
		return Key{}, ErrAbandoned
	}
}

// ReadLetter waits for the next letter keypress and returns it lowercased.
// Non-letter keys are discarded and a fresh read is started; there is never
// more than one read in flight.
func ReadLetter(ctx context.Context, keys KeyReader) (rune, error) {
	for {
		k, err := awaitKey(ctx, keys)
		if err != nil {
			return 0, err
		}
		if k.Code == KeyRune && unicode.IsLetter(k.Rune) {
			return unicode.ToLower(k.Rune), nil
		}
		log.Debug().Int("code", int(k.Code)).Msg("ignoring non-letter key")
	}
}

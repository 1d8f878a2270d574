package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// scriptedKeys replays a fixed list of keys and then reports abandonment.
type scriptedKeys struct {
	mu    sync.Mutex
	keys  []Key
	reads int
}

func letters(s string) []Key {
	var out []Key
	for _, r := range s {
		out = append(out, Key{Code: KeyRune, Rune: r})
	}
	return out
}

func (k *scriptedKeys) ReadKey() (Key, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.reads >= len(k.keys) {
		return Key{}, ErrAbandoned
	}
	key := k.keys[k.reads]
	k.reads++
	return key, nil
}

func (k *scriptedKeys) Reads() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.reads
}

// overlapKeys replays keys like scriptedKeys but without serializing callers.
// Each read sleeps for delay and the highest number of reads in progress at
// once is kept in peak.
type overlapKeys struct {
	keys     []Key
	delay    time.Duration
	next     atomic.Int32
	inFlight atomic.Int32
	peak     atomic.Int32
}

func (k *overlapKeys) ReadKey() (Key, error) {
	n := k.inFlight.Add(1)
	defer k.inFlight.Add(-1)
	for {
		p := k.peak.Load()
		if n <= p || k.peak.CompareAndSwap(p, n) {
			break
		}
	}

	time.Sleep(k.delay)

	i := int(k.next.Add(1)) - 1
	if i >= len(k.keys) {
		return Key{}, ErrAbandoned
	}
	return k.keys[i], nil
}

func (k *overlapKeys) Reads() int { return int(k.next.Load()) }

func (k *overlapKeys) Peak() int { return int(k.peak.Load()) }

// noise is a run of keys that are neither letters nor menu commands.
func noise() []Key {
	return []Key{
		{Code: KeyRune, Rune: '7'},
		{Code: KeyOther},
		{Code: KeyRune, Rune: ' '},
		{Code: KeyRune, Rune: '?'},
		{Code: KeyOther},
	}
}

// blockingKeys never returns a key.
type blockingKeys struct{}

func (blockingKeys) ReadKey() (Key, error) {
	select {}
}

type stateFrame struct {
	mask      string
	guessed   string
	remaining int
}

type menuFrame struct {
	selected Difficulty
	labels   []string
}

// recordingRenderer remembers everything it was asked to draw.
type recordingRenderer struct {
	clears   int
	states   []stateFrame
	menus    []menuFrame
	outcomes []State
	secret   string
}

func (r *recordingRenderer) Clear() { r.clears++ }

func (r *recordingRenderer) RenderState(mask string, guessed []rune, remaining int) {
	r.states = append(r.states, stateFrame{mask: mask, guessed: string(guessed), remaining: remaining})
}

func (r *recordingRenderer) RenderMenu(selected Difficulty, labels []string) {
	r.menus = append(r.menus, menuFrame{selected: selected, labels: labels})
}

func (r *recordingRenderer) RenderOutcome(outcome State, secret string) {
	r.outcomes = append(r.outcomes, outcome)
	r.secret = secret
}

func (r *recordingRenderer) lastState() stateFrame {
	if len(r.states) == 0 {
		return stateFrame{}
	}
	return r.states[len(r.states)-1]
}

type mapSource map[Difficulty][]string

func (m mapSource) ReadWords(d Difficulty) ([]string, error) {
	return m[d], nil
}

type failingSource struct{ err error }

func (f failingSource) ReadWords(Difficulty) ([]string, error) { return nil, f.err }

// firstSelector always picks the first word.
type firstSelector struct{ calls int }

func (s *firstSelector) Pick(words []string) (string, error) {
	s.calls++
	if len(words) == 0 {
		return "", errors.New("empty")
	}
	return words[0], nil
}

type fakeRecorder struct {
	entries []ScoreEntry
	err     error
}

func (f *fakeRecorder) Record(_ context.Context, e ScoreEntry) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, e)
	return nil
}

func (s stateFrame) String() string {
	return fmt.Sprintf("{%q %q %d}", s.mask, s.guessed, s.remaining)
}

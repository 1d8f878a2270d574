package words

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"

	"github.com/samdwyer/hangman/internal/game"
)

// Lists maps a difficulty name ("easy", "medium", "hard") to its words.
// It satisfies game.WordSource. Words containing anything other than letters
// are dropped on read, since only letters can be guessed.
type Lists map[string][]string

// ReadWords returns the normalized words for d. A tier missing from the
// lists yields an empty slice.
func (l Lists) ReadWords(d game.Difficulty) ([]string, error) {
	return normalize(l[d.String()]), nil
}

// Embedded returns the word lists compiled into the binary.
func Embedded() (Lists, error) {
	return loadEmbedded[Lists]("words.json")
}

// DirSource reads one text file per difficulty from Dir, named after the
// tier (easy.txt, medium.txt, hard.txt), one word per line. Blank lines and
// lines starting with '#' are skipped. Files are read on every call.
type DirSource struct {
	Dir string
}

// Path returns the file DirSource reads for d.
func (s DirSource) Path(d game.Difficulty) string {
	return filepath.Join(s.Dir, d.String()+".txt")
}

// ReadWords implements game.WordSource.
func (s DirSource) ReadWords(d game.Difficulty) ([]string, error) {
	path := s.Path(d)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word file: %w", err)
	}
	defer f.Close()

	var raw []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		raw = append(raw, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return normalize(raw), nil
}

// Open picks the word source for the given settings: a word-list file if
// file is set, else a directory of per-tier files if dir is set, else the
// embedded lists.
func Open(file, dir string) (game.WordSource, error) {
	switch {
	case file != "":
		lists, err := LoadFile(file)
		if err != nil {
			return nil, err
		}
		log.Info().Str("file", file).Msg("using word list file")
		return lists, nil
	case dir != "":
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("word directory: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("word directory %s is not a directory", dir)
		}
		log.Info().Str("dir", dir).Msg("using word directory")
		return DirSource{Dir: dir}, nil
	default:
		return Embedded()
	}
}

// normalize trims and lowercases words, dropping blanks and words that
// cannot be won because they hold a non-letter.
func normalize(in []string) []string {
	out := make([]string, 0, len(in))
	for _, w := range in {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if strings.IndexFunc(w, func(r rune) bool { return !unicode.IsLetter(r) }) >= 0 {
			log.Debug().Str("word", w).Msg("skipping word with non-letters")
			continue
		}
		out = append(out, w)
	}
	return out
}

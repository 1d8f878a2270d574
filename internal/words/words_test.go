package words

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/samdwyer/hangman/internal/game"
)

func TestEmbeddedListsCoverEveryDifficulty(t *testing.T) {
	lists, err := Embedded()
	if err != nil {
		t.Fatalf("Failed to load embedded lists: %v", err)
	}

	for _, d := range game.Difficulties {
		words, err := lists.ReadWords(d)
		if err != nil {
			t.Errorf("ReadWords(%s) error: %v", d, err)
			continue
		}
		if len(words) == 0 {
			t.Errorf("ReadWords(%s) returned no words", d)
		}
		for _, w := range words {
			if w == "" {
				t.Errorf("ReadWords(%s) contains an empty word", d)
			}
		}
	}
}

func TestListsNormalize(t *testing.T) {
	lists := Lists{"easy": {"  Cat ", "", "DOG", "   ", "ice cream", "t-rex", "r2d2", "Éclair"}}

	got, err := lists.ReadWords(game.DifficultyEasy)
	if err != nil {
		t.Fatalf("ReadWords() error: %v", err)
	}
	if want := []string{"cat", "dog", "éclair"}; !slices.Equal(got, want) {
		t.Errorf("ReadWords() = %v, want %v", got, want)
	}

	got, _ = lists.ReadWords(game.DifficultyHard)
	if len(got) != 0 {
		t.Errorf("ReadWords(hard) = %v, want empty", got)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "words.yaml")
	writeFile(t, yamlPath, "easy:\n  - cat\n  - Sun\nhard:\n  - rhythm\n")
	jsonPath := filepath.Join(dir, "words.json")
	writeFile(t, jsonPath, `{"medium": ["garden", "window"]}`)

	tests := []struct {
		path     string
		d        game.Difficulty
		expected []string
	}{
		{yamlPath, game.DifficultyEasy, []string{"cat", "sun"}},
		{yamlPath, game.DifficultyHard, []string{"rhythm"}},
		{yamlPath, game.DifficultyMedium, []string{}},
		{jsonPath, game.DifficultyMedium, []string{"garden", "window"}},
	}

	for _, tt := range tests {
		lists, err := LoadFile(tt.path)
		if err != nil {
			t.Fatalf("LoadFile(%s) error: %v", tt.path, err)
		}
		got, _ := lists.ReadWords(tt.d)
		if !slices.Equal(got, tt.expected) {
			t.Errorf("LoadFile(%s).ReadWords(%s) = %v, want %v", filepath.Base(tt.path), tt.d, got, tt.expected)
		}
	}
}

func TestLoadFileDifficultyKeys(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	writeFile(t, good, "Easy:\n  - cat\nHARD:\n  - rhythm\n")
	lists, err := LoadFile(good)
	if err != nil {
		t.Fatalf("LoadFile(mixed case keys) error: %v", err)
	}
	if got, _ := lists.ReadWords(game.DifficultyEasy); !slices.Equal(got, []string{"cat"}) {
		t.Errorf("ReadWords(easy) = %v, want [cat]", got)
	}
	if got, _ := lists.ReadWords(game.DifficultyHard); !slices.Equal(got, []string{"rhythm"}) {
		t.Errorf("ReadWords(hard) = %v, want [rhythm]", got)
	}

	typo := filepath.Join(dir, "typo.yaml")
	writeFile(t, typo, "easy:\n  - cat\nmeduim:\n  - garden\n")
	if _, err := LoadFile(typo); err == nil {
		t.Error("LoadFile() with key \"meduim\" should fail")
	}

	if _, err := Open(typo, ""); err == nil {
		t.Error("Open() with key \"meduim\" should fail at startup")
	}
}

func TestLoadFileUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.csv")
	writeFile(t, path, "cat,dog")

	if _, err := LoadFile(path); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("LoadFile(csv) error = %v, want ErrUnknownFormat", err)
	}
}

func TestDirSource(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "easy.txt"), "Apple\n# comment\n\n  pear  \n")
	writeFile(t, filepath.Join(dir, "hard.txt"), "")

	src := DirSource{Dir: dir}

	got, err := src.ReadWords(game.DifficultyEasy)
	if err != nil {
		t.Fatalf("ReadWords(easy) error: %v", err)
	}
	if want := []string{"apple", "pear"}; !slices.Equal(got, want) {
		t.Errorf("ReadWords(easy) = %v, want %v", got, want)
	}

	got, err = src.ReadWords(game.DifficultyHard)
	if err != nil {
		t.Fatalf("ReadWords(hard) error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ReadWords(hard) = %v, want empty", got)
	}

	if _, err := src.ReadWords(game.DifficultyMedium); err == nil {
		t.Error("ReadWords(medium) with missing file should fail")
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "lists.yml")
	writeFile(t, file, "easy: [kite]\n")

	src, err := Open(file, dir)
	if err != nil {
		t.Fatalf("Open(file, dir) error: %v", err)
	}
	if _, ok := src.(Lists); !ok {
		t.Errorf("Open(file, dir) = %T, want Lists (file wins)", src)
	}

	src, err = Open("", dir)
	if err != nil {
		t.Fatalf("Open(\"\", dir) error: %v", err)
	}
	if _, ok := src.(DirSource); !ok {
		t.Errorf("Open(\"\", dir) = %T, want DirSource", src)
	}

	src, err = Open("", "")
	if err != nil {
		t.Fatalf("Open(\"\", \"\") error: %v", err)
	}
	if _, ok := src.(Lists); !ok {
		t.Errorf("Open(\"\", \"\") = %T, want embedded Lists", src)
	}

	if _, err := Open("", filepath.Join(dir, "missing")); err == nil {
		t.Error("Open with missing directory should fail")
	}
}

func TestRandomSelectorDeterministic(t *testing.T) {
	words := []string{"cat", "dog", "sun", "tree", "book", "fish"}

	s1 := NewRandomSelector(rand.New(rand.NewSource(12345)))
	s2 := NewSeededSelector(12345)

	for i := 0; i < 20; i++ {
		w1, err := s1.Pick(words)
		if err != nil {
			t.Fatalf("Pick() error: %v", err)
		}
		w2, _ := s2.Pick(words)
		if w1 != w2 {
			t.Errorf("Pick %d mismatch: %s != %s", i, w1, w2)
		}
		if !slices.Contains(words, w1) {
			t.Errorf("Pick() = %q, not in list", w1)
		}
	}
}

func TestRandomSelectorEmpty(t *testing.T) {
	if _, err := NewSeededSelector(1).Pick(nil); !errors.Is(err, ErrNoWords) {
		t.Errorf("Pick(nil) error = %v, want ErrNoWords", err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

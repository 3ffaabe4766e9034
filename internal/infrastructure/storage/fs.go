package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"

	"svw.info/advent/internal/domain"
)

// FS reads puzzle inputs from a flat directory of dayNN.txt files.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) Dir() string { return s.dir }

var inputName = regexp.MustCompile(`^day(\d{1,2})\.txt$`)

func (s *FS) candidates(day int) []string {
	return []string{
		filepath.Join(s.dir, fmt.Sprintf("day%02d.txt", day)),
		filepath.Join(s.dir, fmt.Sprintf("day%d.txt", day)), // unpadded name
	}
}

func (s *FS) Load(ctx context.Context, day int) (string, error) {
	if !domain.ValidDay(day) {
		return "", fmt.Errorf("%w: %d", domain.ErrUnknownDay, day)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	for _, path := range s.candidates(day) {
		b, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	return "", fmt.Errorf("%w: day %d in %s", domain.ErrInputNotFound, day, s.dir)
}

// List returns the days that have an input file, in calendar order. A
// missing directory is an empty list.
func (s *FS) List(ctx context.Context) ([]int, error) {
	ents, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var out []int
	for _, e := range ents {
		if e.IsDir() {
			continue
		}
		m := inputName.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		n, _ := strconv.Atoi(m[1])
		if !domain.ValidDay(n) || slices.Contains(out, n) {
			continue
		}
		out = append(out, n)
	}
	slices.Sort(out)
	return out, nil
}

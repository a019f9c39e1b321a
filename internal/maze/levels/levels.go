// Package levels provides level sources for the maze controller: a directory
// of text files on disk or the campaign embedded in the binary.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/vovakirdan/tui-maze/internal/maze"
)

// DefaultPattern names level N inside a directory.
const DefaultPattern = "level%d.txt"

// CampaignSize is the number of levels in the embedded campaign.
const CampaignSize = 6

// ErrLevelNotFound is returned when a source has no file for a level number.
var ErrLevelNotFound = errors.New("levels: level not found")

//go:embed campaign/*.txt
var campaignFS embed.FS

// Dir serves levels from a file system, one file per level.
type Dir struct {
	Root    string // shown in messages; "" for the embedded campaign
	Pattern string // fmt pattern taking the level number
	fsys    fs.FS
}

// NewDir returns a source reading root/pattern from disk. An empty pattern
// selects DefaultPattern.
func NewDir(root, pattern string) *Dir {
	if pattern == "" {
		pattern = DefaultPattern
	}
	return &Dir{Root: root, Pattern: pattern, fsys: os.DirFS(root)}
}

// NewFS returns a source over an arbitrary file system.
func NewFS(fsys fs.FS, pattern string) *Dir {
	if pattern == "" {
		pattern = DefaultPattern
	}
	return &Dir{Pattern: pattern, fsys: fsys}
}

// Embedded returns the built-in campaign.
func Embedded() *Dir {
	sub, err := fs.Sub(campaignFS, "campaign")
	if err != nil {
		panic(fmt.Sprintf("levels: embedded campaign: %v", err))
	}
	return &Dir{Pattern: DefaultPattern, fsys: sub}
}

// name returns the file name of level n relative to the source root.
func (d *Dir) name(n int) string {
	return fmt.Sprintf(d.Pattern, n)
}

// Location returns a human-readable path for level n.
func (d *Dir) Location(n int) string {
	if d.Root == "" {
		return d.name(n)
	}
	return path.Join(d.Root, d.name(n))
}

// Level reads and splits level n. A missing file wraps both ErrLevelNotFound
// and fs.ErrNotExist.
func (d *Dir) Level(n int) (maze.LevelData, error) {
	data := maze.LevelData{Number: n, Name: d.Location(n)}

	raw, err := fs.ReadFile(d.fsys, d.name(n))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return data, fmt.Errorf("%w: %w", ErrLevelNotFound, err)
		}
		return data, fmt.Errorf("levels: read %s: %w", data.Name, err)
	}

	data.Rows = SplitRows(string(raw))
	return data, nil
}

// Available returns the level numbers 1..limit that exist in the source, in
// order. It stops at the first gap.
func (d *Dir) Available(limit int) []int {
	var out []int
	for n := 1; n <= limit; n++ {
		if _, err := fs.Stat(d.fsys, d.name(n)); err != nil {
			break
		}
		out = append(out, n)
	}
	return out
}

// SplitRows splits file contents into grid rows. Trailing carriage returns
// are removed and a final newline does not produce an empty row.
func SplitRows(s string) []string {
	if s == "" {
		return nil
	}
	rows := strings.Split(s, "\n")
	if rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	for i, r := range rows {
		rows[i] = strings.TrimSuffix(r, "\r")
	}
	return rows
}

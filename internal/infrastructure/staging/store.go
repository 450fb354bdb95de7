package staging

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/riskibarqy/drafty/internal/platform/atomicfile"
)

// Store is the on-disk staging area for raw API payloads.
type Store struct {
	root     string
	stateDir string
}

func NewStore(root, stateDir string) *Store {
	return &Store{root: root, stateDir: stateDir}
}

func (s *Store) Root() string {
	return s.root
}

func (s *Store) Path(rel string) string {
	return filepath.Join(s.root, filepath.FromSlash(rel))
}

// Write stores body under rel, replacing any previous file.
func (s *Store) Write(rel string, body []byte) error {
	return atomicfile.Write(s.Path(rel), body)
}

func (s *Store) Read(rel string) ([]byte, error) {
	raw, err := os.ReadFile(s.Path(rel))
	if err != nil {
		return nil, fmt.Errorf("read staged file %s: %w", rel, err)
	}
	return raw, nil
}

func (s *Store) Exists(rel string) bool {
	info, err := os.Stat(s.Path(rel))
	return err == nil && !info.IsDir()
}

// ReadKeys returns the raw JSON under each top-level key of a staged file.
// A missing key is an error.
func (s *Store) ReadKeys(rel string, keys ...string) (map[string]string, error) {
	raw, err := s.Read(rel)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(keys))
	for _, key := range keys {
		node, err := sonic.Get(raw, key)
		if err != nil {
			return nil, fmt.Errorf("staged file %s: key %q: %w", rel, key, err)
		}
		value, err := node.Raw()
		if err != nil {
			return nil, fmt.Errorf("staged file %s: key %q: %w", rel, key, err)
		}
		out[key] = value
	}
	return out, nil
}

// Decode unmarshals a whole staged file.
func (s *Store) Decode(rel string, out any) error {
	raw, err := s.Read(rel)
	if err != nil {
		return err
	}
	if err := sonic.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode staged file %s: %w", rel, err)
	}
	return nil
}

// WriteScope records the resolved entries and current gameweek in the state
// directory for readers outside the pipeline.
func (s *Store) WriteScope(entryIDs []int64, maxGW int) error {
	ids := make([]string, 0, len(entryIDs))
	for _, id := range entryIDs {
		ids = append(ids, strconv.FormatInt(id, 10))
	}
	if err := atomicfile.Write(filepath.Join(s.stateDir, SideFileTeams), []byte(strings.Join(ids, "\n"))); err != nil {
		return fmt.Errorf("write %s: %w", SideFileTeams, err)
	}
	if err := atomicfile.Write(filepath.Join(s.stateDir, SideFileGW), []byte(strconv.Itoa(maxGW))); err != nil {
		return fmt.Errorf("write %s: %w", SideFileGW, err)
	}
	return nil
}

package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/bytedance/sonic"

	"github.com/riskibarqy/drafty/internal/domain/entryhistory"
	"github.com/riskibarqy/drafty/internal/domain/livestats"
	"github.com/riskibarqy/drafty/internal/domain/pick"
	"github.com/riskibarqy/drafty/internal/domain/player"
	"github.com/riskibarqy/drafty/internal/domain/transaction"
)

type fakeStore struct {
	files    map[string]string
	scopeIDs []int64
	scopeGW  int
}

func newFakeStore(files map[string]string) *fakeStore {
	if files == nil {
		files = map[string]string{}
	}
	return &fakeStore{files: files}
}

func (f *fakeStore) ReadKeys(rel string, keys ...string) (map[string]string, error) {
	raw, ok := f.files[rel]
	if !ok {
		return nil, fmt.Errorf("read %s: file does not exist", rel)
	}
	var doc map[string]json.RawMessage
	if err := sonic.UnmarshalString(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", rel, err)
	}
	out := make(map[string]string, len(keys))
	for _, key := range keys {
		v, ok := doc[key]
		if !ok {
			return nil, fmt.Errorf("%s: key %q not found", rel, key)
		}
		out[key] = string(v)
	}
	return out, nil
}

func (f *fakeStore) Decode(rel string, out any) error {
	raw, ok := f.files[rel]
	if !ok {
		return fmt.Errorf("read %s: file does not exist", rel)
	}
	return sonic.UnmarshalString(raw, out)
}

func (f *fakeStore) Exists(rel string) bool {
	_, ok := f.files[rel]
	return ok
}

func (f *fakeStore) WriteScope(entryIDs []int64, maxGW int) error {
	f.scopeIDs = append([]int64(nil), entryIDs...)
	f.scopeGW = maxGW
	return nil
}

type csvFile struct {
	header  []string
	records [][]string
}

type fakeCSV struct {
	mu     sync.Mutex
	files  map[string]csvFile
	failOn string
}

func newFakeCSV() *fakeCSV {
	return &fakeCSV{files: map[string]csvFile{}}
}

func (f *fakeCSV) WriteCSV(_ context.Context, name string, header []string, records [][]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if name == f.failOn {
		return fmt.Errorf("write %s: disk full", name)
	}
	f.files[name] = csvFile{header: header, records: records}
	return nil
}

func (f *fakeCSV) get(name string) (csvFile, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	file, ok := f.files[name]
	return file, ok
}

type fakeAPI struct {
	calls     []string
	staticErr error
}

func (f *fakeAPI) FetchStatic(context.Context) error {
	f.calls = append(f.calls, "static")
	return f.staticErr
}

func (f *fakeAPI) FetchLeague(_ context.Context, code string) error {
	f.calls = append(f.calls, "league:"+code)
	return nil
}

func (f *fakeAPI) FetchEntry(_ context.Context, entryID int64) error {
	f.calls = append(f.calls, fmt.Sprintf("entry:%d", entryID))
	return nil
}

func (f *fakeAPI) FetchEntryEvent(_ context.Context, entryID int64, gw int) error {
	f.calls = append(f.calls, fmt.Sprintf("event:%d:%d", entryID, gw))
	return nil
}

func (f *fakeAPI) FetchLive(_ context.Context, gw int) error {
	f.calls = append(f.calls, fmt.Sprintf("live:%d", gw))
	return nil
}

type fakeSchema struct {
	calls int
	err   error
}

func (f *fakeSchema) Ensure(context.Context) ([]string, error) {
	f.calls++
	return nil, f.err
}

type stageCall struct {
	name string
	err  error
}

type recordingObserver struct {
	stages []stageCall
}

func (r *recordingObserver) ObserveStage(stage string, _ time.Duration, err error) {
	r.stages = append(r.stages, stageCall{name: stage, err: err})
}

type playerRepoStub struct {
	elements []player.Element
}

func (s *playerRepoStub) UpsertElements(_ context.Context, items []player.Element) error {
	s.elements = append(s.elements, items...)
	return nil
}

func (s *playerRepoStub) ListElements(context.Context) ([]player.Element, error) {
	return s.elements, nil
}

type txRepoStub struct {
	items []transaction.Transaction
}

func (s *txRepoStub) Upsert(_ context.Context, items []transaction.Transaction) error {
	s.items = append(s.items, items...)
	return nil
}

func (s *txRepoStub) ListAccepted(context.Context) ([]transaction.Transaction, error) {
	out := make([]transaction.Transaction, 0, len(s.items))
	for _, tx := range s.items {
		if tx.Accepted() {
			out = append(out, tx)
		}
	}
	return out, nil
}

type historyRepoStub struct {
	rows []entryhistory.History
}

func (s *historyRepoStub) Upsert(_ context.Context, items []entryhistory.History) error {
	s.rows = append(s.rows, items...)
	return nil
}

func (s *historyRepoStub) ListUpTo(_ context.Context, maxGW int) ([]entryhistory.History, error) {
	out := make([]entryhistory.History, 0, len(s.rows))
	for _, h := range s.rows {
		if h.GW <= maxGW {
			out = append(out, h)
		}
	}
	return out, nil
}

type pickRepoStub struct {
	rows []pick.Pick
}

func (s *pickRepoStub) ReplaceSquads(_ context.Context, items []pick.Pick) error {
	type squad struct {
		entryID int64
		gw      int
	}
	replaced := make(map[squad]bool, len(items))
	for _, p := range items {
		replaced[squad{p.EntryID, p.GW}] = true
	}
	kept := s.rows[:0]
	for _, p := range s.rows {
		if !replaced[squad{p.EntryID, p.GW}] {
			kept = append(kept, p)
		}
	}
	s.rows = append(kept, items...)
	return nil
}

func (s *pickRepoStub) ListUpTo(_ context.Context, maxGW int) ([]pick.Pick, error) {
	out := make([]pick.Pick, 0, len(s.rows))
	for _, p := range s.rows {
		if p.GW <= maxGW {
			out = append(out, p)
		}
	}
	return out, nil
}

type statsRepoStub struct {
	rows    []livestats.Stats
	missing []livestats.Key
}

func (s *statsRepoStub) Upsert(_ context.Context, items []livestats.Stats) error {
	s.rows = append(s.rows, items...)
	return nil
}

func (s *statsRepoStub) ListUpTo(_ context.Context, maxGW int) ([]livestats.Stats, error) {
	out := make([]livestats.Stats, 0, len(s.rows))
	for _, r := range s.rows {
		if r.GW <= maxGW {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *statsRepoStub) MissingForPicks(context.Context) ([]livestats.Key, error) {
	return s.missing, nil
}

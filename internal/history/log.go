// Package history keeps a bounded, persisted log of past calculations.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"slices"
	"sync"
	"time"

	"Catalyst/internal/calc/loading"
	"Catalyst/internal/metrics"
	"Catalyst/internal/repo"

	"github.com/google/uuid"
)

const (
	DefaultCapacity = 100
	MaxCapacity     = 500
	DefaultKey      = "history.json"
	TimeLayout      = "2006-01-02 15:04:05"
)

type Inputs struct {
	loading.Input
	loading.Names
}

type Record struct {
	ID        string         `json:"id"`
	Timestamp string         `json:"timestamp"`
	Inputs    Inputs         `json:"inputs"`
	Results   loading.Result `json:"results"`
}

type Options struct {
	Key      string
	Capacity int
	Locale   Locale
}

// Log is an append-ordered list of records, oldest first, written in full
// to its repository after every change.
type Log struct {
	mu       sync.RWMutex
	repo     repo.Repository
	key      string
	capacity int
	locale   Locale
	records  []Record
	now      func() time.Time
}

// New loads the log stored under opts.Key. A missing or unreadable
// snapshot starts an empty log.
func New(r repo.Repository, opts Options) *Log {
	l := &Log{
		repo:     r,
		key:      opts.Key,
		capacity: ClampCapacity(opts.Capacity),
		locale:   opts.Locale,
		now:      time.Now,
	}
	if l.key == "" {
		l.key = DefaultKey
	}
	l.load()
	return l
}

// ClampCapacity maps a configured capacity into 1..MaxCapacity, 0 meaning
// the default.
func ClampCapacity(n int) int {
	switch {
	case n <= 0:
		return DefaultCapacity
	case n > MaxCapacity:
		return MaxCapacity
	}
	return n
}

func (l *Log) load() {
	data, err := l.repo.Load(context.Background(), l.key)
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			log.Printf("Reading history %s failed, starting empty: %v", l.key, err)
		}
		return
	}
	records, err := decodeRecords(data)
	if err != nil {
		log.Printf("Parsing history %s failed, starting empty: %v", l.key, err)
		return
	}
	l.records = records
	l.truncate()
	log.Printf("Loaded %d history records from %s", len(l.records), l.key)
}

func (l *Log) truncate() {
	if over := len(l.records) - l.capacity; over > 0 {
		l.records = slices.Clone(l.records[over:])
	}
}

func (l *Log) persist() error {
	records := l.records
	if records == nil {
		records = []Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	if err := l.repo.Save(context.Background(), l.key, data); err != nil {
		metrics.PersistenceErrors.WithLabelValues("history").Inc()
		log.Printf("Saving history %s failed: %v", l.key, err)
		return err
	}
	return nil
}

// ErrNonFinite rejects a result that could not be written back to the store.
var ErrNonFinite = errors.New("result is not finite")

// Add stamps the calculation with the local time, appends it, drops the
// oldest records beyond capacity and persists. A non-finite result is
// rejected before the log changes.
func (l *Log) Add(in loading.Input, names loading.Names, res loading.Result) (Record, error) {
	if !res.Finite() {
		return Record{}, ErrNonFinite
	}
	rec := Record{
		ID:        uuid.NewString(),
		Timestamp: l.now().Format(TimeLayout),
		Inputs:    Inputs{Input: in, Names: names},
		Results:   res,
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, rec)
	l.truncate()
	metrics.HistoryMutations.WithLabelValues("add").Inc()
	return rec, l.persist()
}

// Record implements loading.Recorder.
func (l *Log) Record(in loading.Input, names loading.Names, res loading.Result) (string, error) {
	rec, err := l.Add(in, names, res)
	return rec.ID, err
}

// List returns a copy of the records, oldest first.
func (l *Log) List() []Record {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.records)
}

func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

func (l *Log) Capacity() int { return l.capacity }

func (l *Log) Get(index int) (Record, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if index < 0 || index >= len(l.records) {
		return Record{}, false
	}
	return l.records[index], true
}

// Delete removes the record at index and persists. An index out of range
// changes nothing.
func (l *Log) Delete(index int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.delete(index)
}

func (l *Log) delete(index int) error {
	if index < 0 || index >= len(l.records) {
		return nil
	}
	l.records = slices.Delete(l.records, index, index+1)
	metrics.HistoryMutations.WithLabelValues("delete").Inc()
	return l.persist()
}

// DeleteID removes the record with the given ID and persists.
func (l *Log) DeleteID(id string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := slices.IndexFunc(l.records, func(r Record) bool { return r.ID == id })
	if i < 0 {
		return false, nil
	}
	return true, l.delete(i)
}

func (l *Log) Clear() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = nil
	metrics.HistoryMutations.WithLabelValues("clear").Inc()
	return l.persist()
}

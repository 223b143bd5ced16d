package render

import (
	"bytes"
	"fmt"
	"time"

	"kcisum/internal/config"
	"kcisum/internal/domain"
	"kcisum/internal/filter"
	"kcisum/internal/storage"
)

// Summary is the content of one report
type Summary struct {
	Title   string
	Cutoff  time.Time
	Fetched int             // records returned by the store
	Records []domain.Record // records kept, in store order
	Rows    []Row
}

// Renderer builds the failure summary page from a status store
type Renderer struct {
	config *config.Config
	store  storage.Store
	filter *filter.Filter
	now    func() time.Time
}

// Option configures a Renderer
type Option func(*Renderer)

// WithClock replaces time.Now, mostly for tests
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		r.now = now
	}
}

// New creates a new Renderer
func New(cfg *config.Config, store storage.Store, opts ...Option) *Renderer {
	r := &Renderer{
		config: cfg,
		store:  store,
		filter: filter.NewFilter(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GenerateSummary queries the store for recent failures and writes the summary page
func (r *Renderer) GenerateSummary() error {
	summary, err := r.Collect()
	if err != nil {
		return err
	}
	return r.Write(summary)
}

// Collect fetches the records with the configured status and keeps those published
// after the cutoff, in the order the store returned them.
func (r *Renderer) Collect() (*Summary, error) {
	cutoff := filter.Cutoff(r.now(), r.config.Window)

	records, err := r.store.GetStatus(r.config.Status)
	if err != nil {
		return nil, fmt.Errorf("get %s records: %w", r.config.Status, err)
	}

	recent, err := filter.Recent(records, cutoff)
	if err != nil {
		return nil, err
	}
	recent = r.filter.FilterByBoard(recent, r.config.Flags.Board)

	rows := make([]Row, 0, len(recent))
	for _, rec := range recent {
		rows = append(rows, NewRow(r.config.StorageURL, rec))
	}

	return &Summary{
		Title:   r.config.Title,
		Cutoff:  cutoff,
		Fetched: len(records),
		Records: recent,
		Rows:    rows,
	}, nil
}

// Write renders the summary page and replaces the output file
func (r *Renderer) Write(summary *Summary) error {
	var buf bytes.Buffer
	if err := RenderPage(&buf, summary.Title, summary.Rows); err != nil {
		return fmt.Errorf("render summary: %w", err)
	}
	return writeFileAtomic(r.config.OutputPath, buf.Bytes())
}

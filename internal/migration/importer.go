package migration

import (
	"fmt"

	"kcisum/internal/domain"
	"kcisum/internal/ui"
)

// RecordSource reads every record of a JSON export
type RecordSource interface {
	Load() ([]domain.Record, error)
}

// RecordSink stores records
type RecordSink interface {
	Insert(records []domain.Record, onInserted func()) error
}

// Importer copies records from a JSON export into the database
type Importer struct {
	source RecordSource
	sink   RecordSink
	// ShowProgress enables the progress bar on stderr
	ShowProgress bool
}

// NewImporter creates a new Importer
func NewImporter(source RecordSource, sink RecordSink) *Importer {
	return &Importer{source: source, sink: sink, ShowProgress: true}
}

// Import loads every record and inserts it. It returns the number of imported records.
// Timestamps are checked before anything is written.
func (im *Importer) Import() (int, error) {
	records, err := im.source.Load()
	if err != nil {
		return 0, err
	}

	for i, r := range records {
		if _, err := r.PublishedAt(); err != nil {
			return 0, &domain.TimestampError{Index: i, Board: r.Board, Value: r.Published}
		}
	}

	if len(records) == 0 {
		return 0, nil
	}

	var onInserted func()
	if im.ShowProgress {
		bar := ui.NewProgressBar(len(records), "Importing records")
		defer bar.Finish()
		onInserted = bar.Increment
	}

	if err := im.sink.Insert(records, onInserted); err != nil {
		return 0, fmt.Errorf("import failed: %w", err)
	}
	return len(records), nil
}

package service

import (
	"slices"
	"sync"

	"github.com/MKhiriev/go-pass-import/internal/i18n"
	"github.com/MKhiriev/go-pass-import/internal/logger"
	"github.com/MKhiriev/go-pass-import/models"
)

// Phase labels passed to the progress sink.
const (
	StatusParsing            = "Parsing input file"
	StatusReadingTags        = "Reading tags"
	StatusImportingTags      = "Importing tags"
	StatusReadingFolders     = "Reading folders"
	StatusImportingFolders   = "Importing folders"
	StatusReadingPasswords   = "Reading passwords"
	StatusImportingPasswords = "Importing passwords"
	StatusAnalyzingTags      = "Analyzing tags"
	StatusAnalyzingFolders   = "Analyzing folders"
)

// progressReporter owns the counters and the error list of one run. All
// methods may be called from concurrent record operations; the sink is
// invoked under the reporter lock so it observes a monotonic sequence.
type progressReporter struct {
	mu         sync.Mutex
	processed  int
	total      int
	errors     []string
	sink       ProgressFunc
	translator i18n.Translator
	logger     *logger.Logger
}

func newProgressReporter(sink ProgressFunc, translator i18n.Translator, log *logger.Logger) *progressReporter {
	if sink == nil {
		sink = func(int, int, string) {}
	}
	return &progressReporter{
		sink:       sink,
		translator: translator,
		logger:     log,
		errors:     make([]string, 0),
	}
}

// start resets the counters for a run of total records.
func (r *progressReporter) start(total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.processed = 0
	r.total = total
}

// phase reports the start of a phase.
func (r *progressReporter) phase(label string) {
	r.logger.Info().Str("phase", label).Msg("import phase started")

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sink(r.processed, r.total, label)
}

// record counts one processed record.
func (r *progressReporter) record() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.processed++
	r.sink(r.processed, r.total, "")
}

// fail records a per-record failure as a localized message.
func (r *progressReporter) fail(template, label string, err error) {
	msg := r.translator.Translate(template, map[string]string{
		"error": err.Error(),
		"label": label,
	})
	r.logger.Warn().Err(err).Str("label", label).Msg("import record failed")

	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, msg)
}

// warn appends messages that are already human readable.
func (r *progressReporter) warn(messages ...string) {
	if len(messages) == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, messages...)
}

// outcome returns a copy of the accumulated counters and errors.
func (r *progressReporter) outcome() models.ImportOutcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	return models.ImportOutcome{
		Processed: r.processed,
		Total:     r.total,
		Errors:    slices.Clone(r.errors),
	}
}

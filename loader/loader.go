package loader

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/c360studio/ontolex/lexicon"
	"github.com/c360studio/ontolex/lexicon/frame"
	"github.com/c360studio/ontolex/taxonomy"
)

// Snapshot is a finalized, immutable load: both stores frozen, tagged
// with an identifier and the sources it came from. After Finalize no
// mutation API remains reachable, so a Snapshot is safe to share
// between concurrent readers.
type Snapshot struct {
	// ID uniquely identifies this load.
	ID string

	// LoadedAt is when finalization completed.
	LoadedAt time.Time

	// Sources lists the files the snapshot was built from.
	Sources []string

	// Taxonomy is the finalized class hierarchy.
	Taxonomy *taxonomy.Store

	// Lexicon is the finalized lexicon binder.
	Lexicon *lexicon.Binder
}

// Loader accumulates declaration records and finalizes them into a
// Snapshot. A Loader is single-use: after Finalize it refuses further
// input.
type Loader struct {
	logger   *slog.Logger
	taxonomy *taxonomy.Store
	binder   *lexicon.Binder
	sources  []string
	done     bool
}

// New creates a Loader with fresh stores.
func New(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	ts := taxonomy.NewStore()
	return &Loader{
		logger:   logger,
		taxonomy: ts,
		binder:   lexicon.NewBinder(ts),
	}
}

// Apply feeds one document's records into the stores. Reference
// validation is deferred to Finalize; Apply only rejects records that
// are malformed on their own (bad roles, conflicting parents,
// duplicate IDs).
func (l *Loader) Apply(doc *Document) error {
	if l.done {
		return taxonomy.ErrFinalized
	}

	for _, c := range doc.Classes {
		if err := l.taxonomy.AddClass(c.ID, c.Parent); err != nil {
			return err
		}
	}
	for _, ind := range doc.Individuals {
		if err := l.taxonomy.AddIndividual(ind.ID, ind.Class); err != nil {
			return err
		}
	}
	for _, e := range doc.Entries {
		pos, err := lexicon.ParsePartOfSpeech(e.POS)
		if err != nil {
			return fmt.Errorf("loader: entry %q: %w", e.ID, err)
		}
		var root *frame.Node
		if e.Frame != nil {
			root, err = e.Frame.Build()
			if err != nil {
				return fmt.Errorf("loader: entry %q: %w", e.ID, err)
			}
		}
		form := lexicon.Form{Written: e.Canonical, Language: e.Language}
		if err := l.binder.AddEntry(e.ID, form, pos, root); err != nil {
			return err
		}
	}
	for _, f := range doc.Forms {
		form := lexicon.Form{Written: f.Written, Language: f.Language, Features: f.Features}
		if err := l.binder.AddForm(f.Entry, form); err != nil {
			return err
		}
	}
	for _, m := range doc.Markers {
		if err := l.binder.AddMarker(m.ID, lexicon.Form{Written: m.Canonical, Language: m.Language}); err != nil {
			return err
		}
	}
	for _, b := range doc.Bindings {
		if err := l.binder.BindArgument(b.Placeholder, b.Concept); err != nil {
			return err
		}
	}
	return nil
}

// LoadFile decodes one YAML declaration file and applies it.
func (l *Loader) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("loader: read %s: %w", path, err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("loader: parse %s: %w", path, err)
	}
	if err := l.Apply(&doc); err != nil {
		return fmt.Errorf("loader: apply %s: %w", path, err)
	}
	l.sources = append(l.sources, path)
	l.logger.Debug("loaded declaration file",
		slog.String("path", path),
		slog.Int("classes", len(doc.Classes)),
		slog.Int("individuals", len(doc.Individuals)),
		slog.Int("entries", len(doc.Entries)))
	return nil
}

// LoadGlob applies every file matching a doublestar pattern, in sorted
// path order for determinism. Order does not affect the finalized
// snapshot; sorting just keeps logs and error reporting stable.
func (l *Loader) LoadGlob(pattern string) error {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return fmt.Errorf("loader: glob %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("loader: no files match pattern %q", pattern)
	}
	sort.Strings(matches)
	for _, path := range matches {
		if err := l.LoadFile(path); err != nil {
			return err
		}
	}
	return nil
}

// Finalize runs both finalization passes and returns the immutable
// snapshot. Taxonomy first: the binder validates concept bindings
// against the finalized hierarchy. Any error aborts the load — callers
// must discard the Loader and treat the data as rejected.
func (l *Loader) Finalize() (*Snapshot, error) {
	if l.done {
		return nil, taxonomy.ErrFinalized
	}
	if err := l.taxonomy.Finalize(); err != nil {
		return nil, fmt.Errorf("loader: taxonomy finalization: %w", err)
	}
	if err := l.binder.Finalize(); err != nil {
		return nil, fmt.Errorf("loader: lexicon finalization: %w", err)
	}
	l.done = true

	snap := &Snapshot{
		ID:       uuid.New().String(),
		LoadedAt: time.Now().UTC(),
		Sources:  append([]string(nil), l.sources...),
		Taxonomy: l.taxonomy,
		Lexicon:  l.binder,
	}
	l.logger.Info("snapshot finalized",
		slog.String("snapshot_id", snap.ID),
		slog.Int("classes", len(snap.Taxonomy.Classes())),
		slog.Int("individuals", len(snap.Taxonomy.Individuals())),
		slog.Int("entries", len(snap.Lexicon.Entries())),
		slog.Int("sources", len(snap.Sources)))
	return snap, nil
}

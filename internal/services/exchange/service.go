package exchange

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"stackmeter/internal/codec"
	"stackmeter/internal/domain"
	"stackmeter/internal/protocol"
)

// Service exports and imports whole sessions against one blob store.
type Service struct {
	store  domain.BlobStore
	tables []codec.Table
	log    zerolog.Logger
}

// New returns a Service using the standard per-domain codecs.
func New(store domain.BlobStore, log zerolog.Logger) *Service {
	return &Service{store: store, tables: codec.Tables(), log: log}
}

// Staged is a fully decoded import waiting to be committed.
type Staged struct {
	Entries     []domain.Entry
	Diagnostics Diagnostics
}

// ExportAll loads every domain, normalises it through its codec and returns
// the global document. A domain that was never saved exports as empty.
func (s *Service) ExportAll(ctx context.Context) ([]byte, Diagnostics, error) {
	blocks := make([]protocol.Block, 0, len(s.tables))
	diags := make(Diagnostics, 0, len(s.tables))
	for _, t := range s.tables {
		id := t.Domain()
		text, ok, err := s.store.Load(ctx, id.StorageKey())
		if err != nil {
			return nil, nil, fmt.Errorf("export %s: %w", id, err)
		}
		if !ok {
			s.log.Debug().Str("domain", id.Name()).Msg("no stored state, exporting empty block")
		}
		block, report, err := t.Recode(text)
		if err != nil {
			return nil, nil, fmt.Errorf("export %s: %w", id, err)
		}
		blocks = append(blocks, protocol.Block{Domain: id, Text: block})
		diags = append(diags, report)
	}
	doc, err := protocol.Marshal(blocks)
	if err != nil {
		return nil, nil, err
	}
	diags.log(s.log, "export")
	s.log.Info().Int("bytes", len(doc)).Int("issues", diags.Total()).Msg("session exported")
	return doc, diags, nil
}

// Stage splits and decodes doc without touching the store. doc may be
// zstd-compressed.
func (s *Service) Stage(doc []byte) (*Staged, error) {
	raw, err := protocol.Decompress(doc)
	if err != nil {
		return nil, err
	}
	blocks, err := protocol.Unmarshal(raw)
	if err != nil {
		return nil, err
	}
	staged := &Staged{
		Entries:     make([]domain.Entry, 0, len(blocks)),
		Diagnostics: make(Diagnostics, 0, len(blocks)),
	}
	for i, b := range blocks {
		t := s.tables[i]
		if t.Domain() != b.Domain {
			return nil, fmt.Errorf("import: block %s does not match table %s", b.Domain, t.Domain())
		}
		text, report, err := t.Recode(b.Text)
		if err != nil {
			return nil, fmt.Errorf("import %s: %w", b.Domain, err)
		}
		staged.Entries = append(staged.Entries, domain.Entry{Key: b.Domain.StorageKey(), Text: text})
		staged.Diagnostics = append(staged.Diagnostics, report)
	}
	return staged, nil
}

// Commit writes a staged import, as one batch when the store supports it.
func (s *Service) Commit(ctx context.Context, staged *Staged) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if bs, ok := s.store.(domain.BatchSaver); ok {
		if err := bs.SaveAll(ctx, staged.Entries); err != nil {
			return fmt.Errorf("import commit: %w", err)
		}
		return nil
	}
	for _, e := range staged.Entries {
		if err := s.store.Save(ctx, e.Key, e.Text); err != nil {
			return fmt.Errorf("import commit: %w", err)
		}
	}
	return nil
}

// ImportAll replaces every domain's stored state with the contents of doc.
// Nothing is written unless the whole document splits and decodes.
func (s *Service) ImportAll(ctx context.Context, doc []byte) (Diagnostics, error) {
	staged, err := s.Stage(doc)
	if err != nil {
		s.log.Error().Err(err).Msg("import rejected")
		return nil, err
	}
	staged.Diagnostics.log(s.log, "import")
	if err := s.Commit(ctx, staged); err != nil {
		s.log.Error().Err(err).Msg("import commit failed")
		return staged.Diagnostics, err
	}
	s.log.Info().Int("domains", len(staged.Entries)).Int("issues", staged.Diagnostics.Total()).Msg("session imported")
	return staged.Diagnostics, nil
}

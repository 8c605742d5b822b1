package mnemonic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/kanjiz/internal/kanji"
	"github.com/abhisek/kanjiz/internal/llm"
	"github.com/abhisek/kanjiz/internal/store"
)

// ErrNoProvider is returned when generation is needed but no LLM is set up.
var ErrNoProvider = errors.New("no llm provider configured")

// Service returns cached memory hooks and generates missing ones.
type Service struct {
	provider llm.Provider
	repo     store.MnemonicRepo
	cfg      Config
}

// NewService creates a Service. provider may be nil, in which case only
// cached mnemonics are returned. repo may be nil to disable caching.
func NewService(provider llm.Provider, repo store.MnemonicRepo, cfg Config) *Service {
	return &Service{provider: provider, repo: repo, cfg: cfg}
}

// Enabled reports whether new mnemonics can be generated.
func (s *Service) Enabled() bool {
	return s != nil && s.provider != nil
}

// Get returns the mnemonic for k, generating and caching it on a miss.
func (s *Service) Get(ctx context.Context, k kanji.Kanji) (*store.Mnemonic, error) {
	if s.repo != nil {
		cached, err := s.repo.GetMnemonic(ctx, k.ID)
		if err != nil {
			return nil, err
		}
		if cached != nil {
			return cached, nil
		}
	}
	if s.provider == nil {
		return nil, ErrNoProvider
	}

	m, err := s.generate(ctx, k)
	if err != nil {
		return nil, fmt.Errorf("mnemonic for %s: %w", k.Character, err)
	}
	if s.repo != nil {
		if err := s.repo.SaveMnemonic(ctx, m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Cached returns the stored mnemonic for k, or nil if there is none. It
// never calls the provider.
func (s *Service) Cached(ctx context.Context, k kanji.Kanji) (*store.Mnemonic, error) {
	if s.repo == nil {
		return nil, nil
	}
	return s.repo.GetMnemonic(ctx, k.ID)
}

func (s *Service) generate(ctx context.Context, k kanji.Kanji) (*store.Mnemonic, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeMnemonic)
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	req := llm.Prompt(systemPrompt, userMessage(k), Schema, s.cfg.MaxTokens)
	req.Temperature = s.cfg.Temperature

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	var out output
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	out.Keyword = strings.TrimSpace(out.Keyword)
	out.Story = strings.TrimSpace(out.Story)
	if out.Story == "" {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: errors.New("empty story")}
	}

	return &store.Mnemonic{
		KanjiID:   k.ID,
		Character: k.Character,
		Keyword:   out.Keyword,
		Story:     out.Story,
		Model:     resp.Model,
	}, nil
}

// ForMissed returns mnemonics for kanjiIDs in order, looking each up in
// catalog. Unknown ids are skipped. Per-kanji failures do not stop the
// batch; they are joined into the returned error alongside the mnemonics
// that did succeed.
func (s *Service) ForMissed(ctx context.Context, catalog kanji.Catalog, kanjiIDs []string) ([]*store.Mnemonic, error) {
	limit := len(kanjiIDs)
	if s.cfg.MaxBatch > 0 {
		limit = min(limit, s.cfg.MaxBatch)
	}

	var (
		out  []*store.Mnemonic
		errs []error
		seen = make(map[string]bool, limit)
	)
	for _, id := range kanjiIDs {
		if len(seen) == limit {
			break
		}
		if seen[id] {
			continue
		}
		k, ok := catalog.KanjiByID(id)
		if !ok {
			continue
		}
		seen[id] = true

		m, err := s.Get(ctx, k)
		if err != nil {
			if ctx.Err() != nil {
				return out, errors.Join(append(errs, ctx.Err())...)
			}
			errs = append(errs, err)
			continue
		}
		out = append(out, m)
	}
	return out, errors.Join(errs...)
}

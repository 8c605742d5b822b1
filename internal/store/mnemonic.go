package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type mnemonicRepo struct {
	db *sql.DB
}

func (r *mnemonicRepo) SaveMnemonic(ctx context.Context, m *Mnemonic) error {
	created := nowMillis()
	if !m.CreatedAt.IsZero() {
		created = m.CreatedAt.UnixMilli()
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO mnemonics
		(kanji_id, character, keyword, story, model, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (kanji_id) DO UPDATE SET
			character = EXCLUDED.character,
			keyword = EXCLUDED.keyword,
			story = EXCLUDED.story,
			model = EXCLUDED.model,
			created_at = EXCLUDED.created_at`,
		m.KanjiID, m.Character, m.Keyword, m.Story, m.Model, created,
	)
	if err != nil {
		return fmt.Errorf("save mnemonic: %w", err)
	}
	return nil
}

func (r *mnemonicRepo) GetMnemonic(ctx context.Context, kanjiID string) (*Mnemonic, error) {
	var (
		m       Mnemonic
		created int64
	)
	err := r.db.QueryRowContext(ctx, `SELECT kanji_id, character, keyword, story, model, created_at
		FROM mnemonics WHERE kanji_id = $1`, kanjiID,
	).Scan(&m.KanjiID, &m.Character, &m.Keyword, &m.Story, &m.Model, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get mnemonic: %w", err)
	}
	m.CreatedAt = fromMillis(created)
	return &m, nil
}

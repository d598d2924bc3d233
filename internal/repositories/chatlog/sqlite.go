package chatlog

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	// registers the "sqlite" driver
	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/token-action-hud-wng/internal/entities/wng"
	"github.com/KirkDiggler/token-action-hud-wng/internal/errors"
	"github.com/KirkDiggler/token-action-hud-wng/internal/pkg/clock"
	"github.com/KirkDiggler/token-action-hud-wng/internal/pkg/idgen"
)

const schema = `CREATE TABLE IF NOT EXISTS chat_messages (
	seq        INTEGER PRIMARY KEY AUTOINCREMENT,
	id         TEXT NOT NULL UNIQUE,
	actor_id   TEXT NOT NULL,
	speaker    TEXT NOT NULL,
	kind       TEXT NOT NULL,
	content    TEXT NOT NULL,
	roll_json  TEXT,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_chat_messages_actor ON chat_messages (actor_id, seq);`

// Config configures the SQLite chat log
type Config struct {
	// Path is the database file; ":memory:" keeps it in process
	Path  string
	Clock clock.Clock
	IDGen idgen.Generator
}

// Validate validates the Config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if strings.TrimSpace(c.Path) == "" {
		vb.RequiredField("Path")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGen == nil {
		vb.RequiredField("IDGen")
	}

	return vb.Build()
}

// Store implements Repository on SQLite
type Store struct {
	db    *sql.DB
	clock clock.Clock
	idGen idgen.Generator
}

var _ Repository = (*Store)(nil)

// Open opens the database and creates the schema
func Open(cfg *Config) (*Store, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	dsn := cfg.Path
	if dsn != ":memory:" {
		dsn = filepath.Clean(dsn) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to open chat log")
	}
	// a single connection keeps ":memory:" databases shared
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to create chat log schema")
	}

	return &Store{
		db:    db,
		clock: cfg.Clock,
		idGen: cfg.IDGen,
	}, nil
}

// Close closes the database handle
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Append stores a message
func (s *Store) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if input.Message == nil {
		return nil, errors.InvalidArgument("message cannot be nil")
	}

	msg := *input.Message
	if msg.ID == "" {
		msg.ID = s.idGen.Generate()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = s.clock.Now()
	}
	msg.CreatedAt = msg.CreatedAt.UTC()

	var rollJSON sql.NullString
	if msg.Roll != nil {
		data, err := json.Marshal(msg.Roll)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal roll")
		}
		rollJSON = sql.NullString{String: string(data), Valid: true}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO chat_messages (id, actor_id, speaker, kind, content, roll_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		msg.ID,
		msg.ActorID,
		msg.Speaker,
		string(msg.Kind),
		msg.Content,
		rollJSON,
		msg.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to append chat message")
	}

	slog.DebugContext(ctx, "appended chat message",
		"message_id", msg.ID,
		"actor_id", msg.ActorID,
		"kind", msg.Kind,
	)

	return &AppendOutput{Message: &msg}, nil
}

// List returns messages newest first
func (s *Store) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	limit := input.Limit
	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}

	query := `SELECT id, actor_id, speaker, kind, content, roll_json, created_at
		FROM chat_messages`
	args := []any{}
	if input.ActorID != "" {
		query += ` WHERE actor_id = ?`
		args = append(args, input.ActorID)
	}
	query += ` ORDER BY seq DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list chat messages")
	}
	defer func() { _ = rows.Close() }()

	messages := make([]*wng.ChatMessage, 0, limit)
	for rows.Next() {
		var (
			msg       wng.ChatMessage
			kind      string
			rollJSON  sql.NullString
			createdAt int64
		)
		if err := rows.Scan(&msg.ID, &msg.ActorID, &msg.Speaker, &kind, &msg.Content, &rollJSON, &createdAt); err != nil {
			return nil, errors.Wrap(err, "failed to scan chat message")
		}
		msg.Kind = wng.ChatKind(kind)
		msg.CreatedAt = time.UnixMilli(createdAt).UTC()
		if rollJSON.Valid {
			var roll wng.RollResult
			if err := json.Unmarshal([]byte(rollJSON.String), &roll); err != nil {
				return nil, errors.Wrapf(err, "failed to unmarshal roll for message %s", msg.ID)
			}
			msg.Roll = &roll
		}
		messages = append(messages, &msg)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read chat messages")
	}

	return &ListOutput{Messages: messages}, nil
}

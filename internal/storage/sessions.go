package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/nxcube"
)

// Session sources.
const (
	SourceScramble = "scramble"
	SourceApply    = "apply"
	SourceLoad     = "load"
	SourcePlay     = "play"
	SourceBatch    = "batch"
)

// Session is one recorded run: a cube size, the actions applied to a solved
// cube and the facelets that resulted.
type Session struct {
	SessionID  string
	CreatedAt  time.Time
	EdgeLength int
	Seed       *uint64
	Iterations int
	Source     string
	FinalState string
	Notes      *string
}

// ActionRecord is one stored action of a session.
type ActionRecord struct {
	Index    int
	Action   nxcube.Action
	Notation string
}

// NewSession describes a session to be stored.
type NewSession struct {
	EdgeLength int
	Seed       *uint64
	Iterations int
	Source     string
	Actions    []nxcube.Action
	FinalState string
	Notes      string
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create stores a session and its actions in one transaction and returns
// the new session ID.
func (r *SessionRepository) Create(s NewSession) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	var seed, notes *string
	if s.Seed != nil {
		v := strconv.FormatUint(*s.Seed, 10)
		seed = &v
	}
	if s.Notes != "" {
		notes = &s.Notes
	}

	err := r.db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO sessions (session_id, created_at, edge_length, seed, iterations, source, final_state, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, id, createdAt.Format(time.RFC3339), s.EdgeLength, seed, s.Iterations, s.Source, s.FinalState, notes)
		if err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}

		stmt, err := tx.Prepare(`
			INSERT INTO session_actions (session_id, action_index, action, notation)
			VALUES (?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare action insert: %w", err)
		}
		defer stmt.Close()

		for i, a := range s.Actions {
			if _, err := stmt.Exec(id, i, int(a), a.Notation(s.EdgeLength)); err != nil {
				return fmt.Errorf("failed to store action %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

const sessionColumns = `session_id, created_at, edge_length, seed, iterations, source, final_state, notes`

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (*Session, error) {
	var s Session
	var createdAtStr string
	var seedStr sql.NullString

	err := row.Scan(
		&s.SessionID, &createdAtStr, &s.EdgeLength, &seedStr,
		&s.Iterations, &s.Source, &s.FinalState, &s.Notes,
	)
	if err != nil {
		return nil, err
	}

	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	if seedStr.Valid {
		seed, err := strconv.ParseUint(seedStr.String, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad seed %q: %w", seedStr.String, err)
		}
		s.Seed = &seed
	}
	return &s, nil
}

// Get retrieves a session by ID. It returns nil, nil when there is none.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	s, err := scanSession(r.db.QueryRow(`
		SELECT `+sessionColumns+`
		FROM sessions
		WHERE session_id = ?
	`, sessionID))

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

// GetLast retrieves the most recent session, or nil when there is none.
func (r *SessionRepository) GetLast() (*Session, error) {
	s, err := scanSession(r.db.QueryRow(`
		SELECT ` + sessionColumns + `
		FROM sessions
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`))

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last session: %w", err)
	}
	return s, nil
}

// List retrieves recent sessions, newest first.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	rows, err := r.db.Query(`
		SELECT `+sessionColumns+`
		FROM sessions
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, *s)
	}

	return sessions, rows.Err()
}

// Actions returns the stored actions of a session in order.
func (r *SessionRepository) Actions(sessionID string) ([]ActionRecord, error) {
	rows, err := r.db.Query(`
		SELECT action_index, action, notation
		FROM session_actions
		WHERE session_id = ?
		ORDER BY action_index
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get actions: %w", err)
	}
	defer rows.Close()

	var records []ActionRecord
	for rows.Next() {
		var rec ActionRecord
		var action int
		if err := rows.Scan(&rec.Index, &action, &rec.Notation); err != nil {
			return nil, fmt.Errorf("failed to scan action: %w", err)
		}
		rec.Action = nxcube.Action(action)
		records = append(records, rec)
	}

	return records, rows.Err()
}

// ActionCount returns the number of stored actions of a session.
func (r *SessionRepository) ActionCount(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM session_actions WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get action count: %w", err)
	}
	return count, nil
}

// Delete deletes a session and its actions.
func (r *SessionRepository) Delete(sessionID string) error {
	_, err := r.db.Exec("DELETE FROM sessions WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Replay rebuilds the cube a session describes by applying its stored
// actions to a solved cube, and reports whether it matches the stored
// final state.
func (r *SessionRepository) Replay(s *Session) (*nxcube.Cube, bool, error) {
	records, err := r.Actions(s.SessionID)
	if err != nil {
		return nil, false, err
	}

	c, err := nxcube.New(s.EdgeLength)
	if err != nil {
		return nil, false, err
	}
	actions := make([]nxcube.Action, len(records))
	for i, rec := range records {
		actions[i] = rec.Action
	}
	if err := c.ApplyAll(actions); err != nil {
		return nil, false, fmt.Errorf("replay session %s: %w", s.SessionID, err)
	}
	return c, c.Facelets() == s.FinalState, nil
}

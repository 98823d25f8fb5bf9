package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/nxcube"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "test.db")
	db, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, path, db.Path())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenAppliesMigrations(t *testing.T) {
	db := openTestDB(t)

	version, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, len(migrations), version)

	// Re-applying is a no-op.
	require.NoError(t, applyMigrations(db.DB))
}

func TestSessionRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewSessionRepository(db)

	c := nxcube.MustNew(4)
	actions, err := c.Scramble(40, nxcube.WithSeed(7))
	require.NoError(t, err)

	seed := uint64(1<<63 + 5)
	id, err := repo.Create(NewSession{
		EdgeLength: 4,
		Seed:       &seed,
		Iterations: 40,
		Source:     SourceScramble,
		Actions:    actions,
		FinalState: c.Facelets(),
		Notes:      "warmup",
	})
	require.NoError(t, err)

	s, err := repo.Get(id)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, 4, s.EdgeLength)
	require.NotNil(t, s.Seed)
	assert.Equal(t, seed, *s.Seed)
	assert.Equal(t, 40, s.Iterations)
	assert.Equal(t, SourceScramble, s.Source)
	require.NotNil(t, s.Notes)
	assert.Equal(t, "warmup", *s.Notes)
	assert.False(t, s.CreatedAt.IsZero())

	records, err := repo.Actions(id)
	require.NoError(t, err)
	require.Len(t, records, len(actions))
	for i, rec := range records {
		assert.Equal(t, i, rec.Index)
		assert.Equal(t, actions[i], rec.Action)
		assert.Equal(t, actions[i].Notation(4), rec.Notation)
	}

	count, err := repo.ActionCount(id)
	require.NoError(t, err)
	assert.Equal(t, 40, count)

	replayed, ok, err := repo.Replay(s)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, replayed.Equal(c))
}

func TestSessionGetMissing(t *testing.T) {
	repo := NewSessionRepository(openTestDB(t))

	s, err := repo.Get("does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, s)

	last, err := repo.GetLast()
	require.NoError(t, err)
	assert.Nil(t, last)
}

func TestSessionListNewestFirst(t *testing.T) {
	repo := NewSessionRepository(openTestDB(t))

	var ids []string
	for i := 0; i < 3; i++ {
		id, err := repo.Create(NewSession{
			EdgeLength: 2,
			Source:     SourceApply,
			Actions:    []nxcube.Action{nxcube.R},
			FinalState: nxcube.MustNew(2).Facelets(),
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	sessions, err := repo.List(2)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, ids[2], sessions[0].SessionID)
	assert.Equal(t, ids[1], sessions[1].SessionID)
	assert.Nil(t, sessions[0].Seed)
	assert.Nil(t, sessions[0].Notes)

	last, err := repo.GetLast()
	require.NoError(t, err)
	assert.Equal(t, ids[2], last.SessionID)

	// The stored final state is a solved cube, so replaying R diverges.
	_, ok, err := repo.Replay(last)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionDeleteCascades(t *testing.T) {
	repo := NewSessionRepository(openTestDB(t))

	id, err := repo.Create(NewSession{
		EdgeLength: 3,
		Source:     SourceApply,
		Actions:    []nxcube.Action{nxcube.F, nxcube.U},
		FinalState: "x",
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(id))
	count, err := repo.ActionCount(id)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSessionCreateRejectsBadSize(t *testing.T) {
	repo := NewSessionRepository(openTestDB(t))

	_, err := repo.Create(NewSession{EdgeLength: 1, Source: SourceApply, FinalState: ""})
	assert.Error(t, err)

	sessions, err := repo.List(10)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

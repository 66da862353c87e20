package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neolab/neodiag/internal/catalog"
	"github.com/neolab/neodiag/internal/ledger"
	"github.com/neolab/neodiag/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "open store")
	t.Cleanup(func() { st.Close() })
	return st
}

func testRecord(t *testing.T, id string) *session.Record {
	t.Helper()
	led := ledger.New()
	intake := catalog.IntakeQuestions()
	require.NoError(t, led.Record(intake[0], "Олег"))
	sq := catalog.SphereQuestions(1)
	require.NoError(t, led.Record(sq[0], string(catalog.SphereMatter)))
	pq := catalog.PotentialQuestions(1, catalog.SphereMatter)
	require.NoError(t, led.Record(pq[0], string(catalog.Shungit)))
	return session.Finalize(led, id, time.Now())
}

func TestSessionRoundTrip(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	rec := testRecord(t, "round-trip")
	require.NoError(t, st.Sessions().Save(ctx, rec))

	got, err := st.Sessions().Load(ctx, "round-trip")
	require.NoError(t, err)
	require.NotNil(t, got, "record not found after save")

	assert.Equal(t, rec.Answers, got.Answers)
	assert.Equal(t, rec.Scores, got.Scores)
	assert.Equal(t, rec.PosScores, got.PosScores)
	assert.Equal(t, rec.Top3, got.Top3)
	assert.Equal(t, rec.Meta.SessionID, got.Meta.SessionID)
	assert.Equal(t, rec.Meta.Name, got.Meta.Name)
	assert.Len(t, got.EventLog, len(rec.EventLog))
}

func TestLoadMissingReturnsNil(t *testing.T) {
	st := openTestStore(t)
	got, err := st.Sessions().Load(context.Background(), "no-such-session")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSaveUpsertsReports(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	rec := testRecord(t, "upsert")
	require.NoError(t, st.Sessions().Save(ctx, rec))

	rec.ClientReport = "Клиентский текст"
	rec.MasterReport = "Мастерский текст"
	require.NoError(t, st.Sessions().Save(ctx, rec))

	got, err := st.Sessions().Load(ctx, "upsert")
	require.NoError(t, err)
	assert.Equal(t, "Клиентский текст", got.ClientReport)
	assert.Equal(t, "Мастерский текст", got.MasterReport)

	records, err := st.Sessions().ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1, "upsert must not duplicate the row")
}

func TestListAllNewestFirst(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"first", "second", "third"} {
		require.NoError(t, st.Sessions().Save(ctx, testRecord(t, id)))
		time.Sleep(5 * time.Millisecond)
	}

	records, err := st.Sessions().ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	for i, want := range []string{"third", "second", "first"} {
		assert.Equal(t, want, records[i].Meta.SessionID, "records[%d]", i)
	}
}

func TestAppendLLMRequest(t *testing.T) {
	st := openTestStore(t)
	err := st.Events().AppendLLMRequest(context.Background(), LLMRequestEventData{
		Provider:     "openai",
		Model:        "gpt-4o-mini",
		Purpose:      "session-reports",
		InputTokens:  120,
		OutputTokens: 480,
		LatencyMs:    850,
		Success:      true,
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, st.DB().Get(&count, `SELECT COUNT(*) FROM llm_requests`))
	assert.Equal(t, 1, count)
}

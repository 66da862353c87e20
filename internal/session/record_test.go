package session

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/neolab/neodiag/internal/catalog"
	"github.com/neolab/neodiag/internal/ledger"
)

func testClock() func() time.Time {
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	return func() time.Time {
		n++
		return t0.Add(time.Duration(n) * time.Second)
	}
}

func record(t *testing.T, led *ledger.Ledger, q catalog.Question, v string) {
	t.Helper()
	if err := led.Record(q, v); err != nil {
		t.Fatalf("record %s: %v", q.ID, err)
	}
}

func TestFinalizeEmptyLedger(t *testing.T) {
	rec := Finalize(ledger.New(), "sess-1", time.Date(2025, 6, 1, 15, 30, 0, 0, time.FixedZone("MSK", 3*3600)))

	if rec.Meta.Schema != Schema || rec.Meta.AppVersion != AppVersion {
		t.Errorf("meta stamps: %q %q", rec.Meta.Schema, rec.Meta.AppVersion)
	}
	if rec.Meta.SessionID != "sess-1" {
		t.Errorf("session id %q", rec.Meta.SessionID)
	}
	if rec.Meta.Timestamp.Location() != time.UTC {
		t.Error("timestamp not normalized to UTC")
	}
	if rec.Meta.Name != "" || rec.Meta.Request != "" || rec.Meta.Contact != "" {
		t.Errorf("intake fields not empty: %+v", rec.Meta)
	}
	// 3 intake + 12 sphere questions with nothing unlocked.
	if rec.Meta.QuestionCount != 15 {
		t.Errorf("QuestionCount = %d, want 15", rec.Meta.QuestionCount)
	}
	if rec.Meta.AnsweredCount != 0 {
		t.Errorf("AnsweredCount = %d, want 0", rec.Meta.AnsweredCount)
	}
	if len(rec.Top3) != 3 || len(rec.Top6) != 6 {
		t.Errorf("rankings: %d/%d", len(rec.Top3), len(rec.Top6))
	}
	if rec.ClientReport != "" || rec.MasterReport != "" {
		t.Error("fresh record carries reports")
	}
}

func TestFinalizeFullSession(t *testing.T) {
	led := ledger.NewWithClock(testClock())
	intake := catalog.IntakeQuestions()
	record(t, led, intake[0], "  Маша  ")
	record(t, led, intake[1], "Хочу понять себя")
	record(t, led, intake[2], "masha@example.com")

	sq := catalog.SphereQuestions(1)
	record(t, led, sq[0], string(catalog.SphereMatter))
	record(t, led, sq[1], string(catalog.SphereMatter))

	pq := catalog.PotentialQuestions(1, catalog.SphereMatter)
	record(t, led, pq[0], string(catalog.Citrin))
	record(t, led, pq[1], string(catalog.Citrin))

	rec := Finalize(led, "sess-2", time.Now())

	if rec.Meta.Name != "Маша" {
		t.Errorf("Name = %q, intake answer not trimmed", rec.Meta.Name)
	}
	if rec.Meta.Request != "Хочу понять себя" || rec.Meta.Contact != "masha@example.com" {
		t.Errorf("meta: %+v", rec.Meta)
	}
	if rec.Meta.AnsweredCount != 7 {
		t.Errorf("AnsweredCount = %d, want 7", rec.Meta.AnsweredCount)
	}
	// Position 1's sphere is known, so its potential pair is in the plan.
	if rec.Meta.QuestionCount != 17 {
		t.Errorf("QuestionCount = %d, want 17", rec.Meta.QuestionCount)
	}

	if rec.Scores[catalog.Citrin] != 2 {
		t.Errorf("Scores[Цитрин] = %d, want 2", rec.Scores[catalog.Citrin])
	}
	if rec.ColScores[catalog.ColumnPerception][catalog.Citrin] != 2 {
		t.Errorf("col scores wrong")
	}
	if rec.PosScores[1][catalog.Citrin] != 2 {
		t.Errorf("pos scores wrong")
	}
	if rec.Top3[0].Potential != catalog.Citrin || rec.Top3[0].Score != 2 {
		t.Errorf("Top3[0] = %+v", rec.Top3[0])
	}
	if len(rec.EventLog) != 7 {
		t.Errorf("event log has %d entries, want 7", len(rec.EventLog))
	}
}

func TestRecordJSONLayout(t *testing.T) {
	led := ledger.NewWithClock(testClock())
	sq := catalog.SphereQuestions(2)
	record(t, led, sq[0], string(catalog.SphereEmotions))

	rec := Finalize(led, "sess-3", time.Now())
	raw, err := json.Marshal(rec)
	if err != nil {
		t.Fatal(err)
	}
	s := string(raw)

	for _, key := range []string{
		`"schema":"ai-neo.session.v8"`,
		`"app_version":"mvp-8.0-positions-24"`,
		`"answers"`, `"scores"`, `"col_scores"`, `"pos_scores"`,
		`"top3"`, `"top6"`, `"event_log"`,
		`"ai_client_report"`, `"ai_master_report"`,
	} {
		if !strings.Contains(s, key) {
			t.Errorf("serialized record misses %s", key)
		}
	}
	// Position keys serialize as strings.
	if !strings.Contains(s, `"1":`) {
		t.Error("pos_scores not keyed by stringified position")
	}

	var back Record
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if back.PosScores[2][catalog.Granat] != rec.PosScores[2][catalog.Granat] {
		t.Error("pos_scores lost in round trip")
	}
}

package results

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/neolab/neodiag/internal/catalog"
	"github.com/neolab/neodiag/internal/ledger"
	"github.com/neolab/neodiag/internal/router"
	"github.com/neolab/neodiag/internal/session"
)

func testRecord(t *testing.T) *session.Record {
	t.Helper()
	led := ledger.New()
	sq := catalog.SphereQuestions(1)
	if err := led.Record(sq[0], string(catalog.SphereMatter)); err != nil {
		t.Fatal(err)
	}
	pq := catalog.PotentialQuestions(1, catalog.SphereMatter)
	if err := led.Record(pq[0], string(catalog.Yantar)); err != nil {
		t.Fatal(err)
	}
	return session.Finalize(led, "results-test", time.Now())
}

// Results replaced the survey on the stack, so leaving it is a single
// pop back to the menu on either key.
func TestLeaveIsSinglePop(t *testing.T) {
	r := New(testRecord(t), nil)

	for _, key := range []rune{tea.KeyEnter, tea.KeyEscape} {
		_, cmd := r.Update(tea.KeyPressMsg{Code: key})
		if cmd == nil {
			t.Fatalf("key %q produced no command", key)
		}
		if _, ok := cmd().(router.PopScreenMsg); !ok {
			t.Fatalf("key %q: expected PopScreenMsg, got %T", key, cmd())
		}
	}
}

func TestViewShowsRankings(t *testing.T) {
	r := New(testRecord(t), nil)
	view := r.View(100, 40)

	for _, want := range []string{"Топ-3", "Топ-6", "Янтарь", "Позиции"} {
		if !strings.Contains(view, want) {
			t.Errorf("view misses %q", want)
		}
	}
}

func TestViewWarnsOnSaveError(t *testing.T) {
	r := New(testRecord(t), errors.New("диск переполнен"))
	view := r.View(100, 40)

	if !strings.Contains(view, "Не удалось сохранить") {
		t.Error("save error not surfaced")
	}
}

package catalog

import "testing"

func TestSpherePartition(t *testing.T) {
	seen := make(map[Potential]Sphere)
	for _, s := range Spheres() {
		for _, p := range SpherePotentials(s) {
			if prev, dup := seen[p]; dup {
				t.Fatalf("%s belongs to both %s and %s", p, prev, s)
			}
			seen[p] = s
		}
	}
	if len(seen) != len(Potentials()) {
		t.Fatalf("spheres cover %d potentials, want %d", len(seen), len(Potentials()))
	}
	for _, p := range Potentials() {
		s, ok := PotentialSphere(p)
		if !ok {
			t.Fatalf("PotentialSphere(%s) not found", p)
		}
		if seen[p] != s {
			t.Errorf("PotentialSphere(%s) = %s, want %s", p, s, seen[p])
		}
	}
}

func TestPositionColumns(t *testing.T) {
	tests := []struct {
		pos  int
		want Column
	}{
		{1, ColumnPerception},
		{2, ColumnMotivation},
		{3, ColumnInstrument},
		{4, ColumnPerception},
		{5, ColumnMotivation},
		{6, ColumnInstrument},
	}
	for _, tt := range tests {
		if got := PositionColumn(tt.pos); got != tt.want {
			t.Errorf("PositionColumn(%d) = %s, want %s", tt.pos, got, tt.want)
		}
	}
	if got := PositionColumn(0); got != "" {
		t.Errorf("PositionColumn(0) = %q, want empty", got)
	}
	if got := PositionColumn(7); got != "" {
		t.Errorf("PositionColumn(7) = %q, want empty", got)
	}
}

func TestParsePotential(t *testing.T) {
	for _, p := range Potentials() {
		got, ok := ParsePotential(string(p))
		if !ok || got != p {
			t.Errorf("ParsePotential(%s) = %s, %v", p, got, ok)
		}
	}
	if _, ok := ParsePotential("emotions"); ok {
		t.Error("ParsePotential accepted a sphere name")
	}
	if _, ok := ParsePotential(""); ok {
		t.Error("ParsePotential accepted an empty string")
	}
}

func TestParseSphere(t *testing.T) {
	for _, s := range Spheres() {
		got, ok := ParseSphere(string(s))
		if !ok || got != s {
			t.Errorf("ParseSphere(%s) = %s, %v", s, got, ok)
		}
	}
	if _, ok := ParseSphere(string(Rubin)); ok {
		t.Error("ParseSphere accepted a potential name")
	}
}

func TestSphereQuestions(t *testing.T) {
	for pos := 1; pos <= PositionCount; pos++ {
		qs := SphereQuestions(pos)
		if qs[0].ID != SphereQuestionID(pos, 1) || qs[1].ID != SphereQuestionID(pos, 2) {
			t.Fatalf("position %d: unexpected ids %s, %s", pos, qs[0].ID, qs[1].ID)
		}
		for _, q := range qs {
			if q.Stage != StageSphere || q.Type != TypeSingle {
				t.Errorf("%s: stage=%s type=%s", q.ID, q.Stage, q.Type)
			}
			if q.Column != PositionColumn(pos) {
				t.Errorf("%s: column %s, want %s", q.ID, q.Column, PositionColumn(pos))
			}
			if len(q.Options) != 3 {
				t.Fatalf("%s: %d options, want 3", q.ID, len(q.Options))
			}
			for i, s := range Spheres() {
				if q.Options[i].ID != string(s) {
					t.Errorf("%s option %d: id %q, want %q", q.ID, i, q.Options[i].ID, s)
				}
			}
		}
	}
}

func TestPotentialQuestionsOfferSphereMembers(t *testing.T) {
	for pos := 1; pos <= PositionCount; pos++ {
		for _, sphere := range Spheres() {
			qs := PotentialQuestions(pos, sphere)
			members := SpherePotentials(sphere)
			for _, q := range qs {
				if q.Stage != StagePotential {
					t.Errorf("%s: stage %s", q.ID, q.Stage)
				}
				if q.Sphere != sphere || q.Position != pos {
					t.Errorf("%s: sphere=%s pos=%d", q.ID, q.Sphere, q.Position)
				}
				if len(q.Options) != 3 {
					t.Fatalf("%s: %d options, want 3", q.ID, len(q.Options))
				}
				for i, opt := range q.Options {
					if opt.ID != string(members[i]) {
						t.Errorf("%s option %d: id %q, want %q", q.ID, i, opt.ID, members[i])
					}
					if opt.Text == "" {
						t.Errorf("%s option %d: empty label", q.ID, i)
					}
				}
			}
		}
	}
}

func TestIntakeQuestions(t *testing.T) {
	qs := IntakeQuestions()
	if len(qs) != 3 {
		t.Fatalf("got %d intake questions, want 3", len(qs))
	}
	wantIDs := []string{IntakeNameID, IntakeRequestID, IntakeContactID}
	for i, q := range qs {
		if q.ID != wantIDs[i] {
			t.Errorf("intake %d: id %q, want %q", i, q.ID, wantIDs[i])
		}
		if q.Stage != StageIntake || q.Type != TypeText || q.Position != 0 {
			t.Errorf("%s: stage=%s type=%s pos=%d", q.ID, q.Stage, q.Type, q.Position)
		}
	}
}

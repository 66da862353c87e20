// Package catalog holds the static taxonomy of the NEO diagnostic:
// nine potentials partitioned into three spheres, three functional
// columns, six positions, and the question bank bound to them.
package catalog

// Potential is one of the nine diagnosed categories.
type Potential string

const (
	Yantar   Potential = "Янтарь"
	Shungit  Potential = "Шунгит"
	Citrin   Potential = "Цитрин"
	Izumrud  Potential = "Изумруд"
	Rubin    Potential = "Рубин"
	Granat   Potential = "Гранат"
	Sapfir   Potential = "Сапфир"
	Geliodor Potential = "Гелиодор"
	Ametist  Potential = "Аметист"
)

// potentials is the fixed declaration order. Ranking ties are broken by
// this order, so it must never be reshuffled.
var potentials = []Potential{
	Yantar, Shungit, Citrin,
	Izumrud, Rubin, Granat,
	Sapfir, Geliodor, Ametist,
}

// Sphere is one of the three top-level groupings of potentials.
type Sphere string

const (
	SphereEmotions Sphere = "emotions"
	SphereMatter   Sphere = "matter"
	SphereMeanings Sphere = "meanings"
)

var spheres = []Sphere{SphereEmotions, SphereMatter, SphereMeanings}

// sphereMembers maps each sphere to its three potentials.
var sphereMembers = map[Sphere][3]Potential{
	SphereEmotions: {Izumrud, Granat, Rubin},
	SphereMatter:   {Yantar, Shungit, Citrin},
	SphereMeanings: {Sapfir, Geliodor, Ametist},
}

// Column is one of the three functional axes tagging positions.
type Column string

const (
	ColumnPerception Column = "perception"
	ColumnMotivation Column = "motivation"
	ColumnInstrument Column = "instrument"
)

var columns = []Column{ColumnPerception, ColumnMotivation, ColumnInstrument}

// ColumnLabels are the human-readable column names.
var ColumnLabels = map[Column]string{
	ColumnPerception: "Восприятие (как видит мир)",
	ColumnMotivation: "Мотивация (что включает)",
	ColumnInstrument: "Инструмент (как действует)",
}

// PositionCount is the number of question-block positions.
const PositionCount = 6

// positionColumns maps positions 1..6 to their columns.
var positionColumns = [PositionCount + 1]Column{
	1: ColumnPerception,
	2: ColumnMotivation,
	3: ColumnInstrument,
	4: ColumnPerception,
	5: ColumnMotivation,
	6: ColumnInstrument,
}

// positionLabels are the human-readable position names.
var positionLabels = [PositionCount + 1]string{
	1: "Позиция 1 — главный фильтр восприятия",
	2: "Позиция 2 — что включает мотивацию",
	3: "Позиция 3 — главный способ действия",
	4: "Позиция 4 — второй фильтр восприятия",
	5: "Позиция 5 — второй слой мотивации",
	6: "Позиция 6 — второй инструмент действия",
}

var potentialSphere map[Potential]Sphere

func init() {
	potentialSphere = make(map[Potential]Sphere, len(potentials))
	for s, members := range sphereMembers {
		for _, p := range members {
			potentialSphere[p] = s
		}
	}
}

// Potentials returns all nine potentials in declaration order.
func Potentials() []Potential {
	out := make([]Potential, len(potentials))
	copy(out, potentials)
	return out
}

// Spheres returns the three spheres.
func Spheres() []Sphere {
	out := make([]Sphere, len(spheres))
	copy(out, spheres)
	return out
}

// Columns returns the three columns in declaration order.
func Columns() []Column {
	out := make([]Column, len(columns))
	copy(out, columns)
	return out
}

// SpherePotentials returns the three potentials owned by a sphere.
func SpherePotentials(s Sphere) [3]Potential {
	return sphereMembers[s]
}

// PotentialSphere returns the sphere owning the given potential.
func PotentialSphere(p Potential) (Sphere, bool) {
	s, ok := potentialSphere[p]
	return s, ok
}

// PositionColumn returns the column bound to a position (1..6).
func PositionColumn(pos int) Column {
	if pos < 1 || pos > PositionCount {
		return ""
	}
	return positionColumns[pos]
}

// PositionLabel returns the human-readable label for a position (1..6).
func PositionLabel(pos int) string {
	if pos < 1 || pos > PositionCount {
		return ""
	}
	return positionLabels[pos]
}

// ParsePotential converts an option id into a Potential.
// This is the only gate from raw answer values into the potential domain.
func ParsePotential(id string) (Potential, bool) {
	p := Potential(id)
	_, ok := potentialSphere[p]
	return p, ok
}

// ParseSphere converts an option id into a Sphere.
func ParseSphere(id string) (Sphere, bool) {
	s := Sphere(id)
	_, ok := sphereMembers[s]
	return s, ok
}

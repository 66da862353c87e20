package catalog

import "fmt"

// Stage marks which processing step a question belongs to.
type Stage string

const (
	StageIntake    Stage = "intake"
	StageSphere    Stage = "sphere"
	StagePotential Stage = "potential"
)

// AnswerType is how a question is answered.
type AnswerType string

const (
	TypeText   AnswerType = "text"
	TypeSingle AnswerType = "single"
)

// Option is a single selectable answer for a TypeSingle question.
// The ID is a sphere name for StageSphere questions and a potential
// name for StagePotential questions.
type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Question is an immutable entry of the diagnostic plan.
type Question struct {
	ID       string     `json:"id"`
	Position int        `json:"position"` // 0 for intake, 1..6 otherwise
	Column   Column     `json:"column"`
	Stage    Stage      `json:"stage"`
	Sphere   Sphere     `json:"sphere,omitempty"` // set for StagePotential only
	Type     AnswerType `json:"type"`
	Text     string     `json:"text"`
	Options  []Option   `json:"options,omitempty"`
}

// Intake question ids. Meta fields of the session record derive from these.
const (
	IntakeNameID    = "intake.name"
	IntakeRequestID = "intake.request"
	IntakeContactID = "intake.contact"
)

// SphereQuestionID returns the id of the n-th (1 or 2) sphere question
// of a position.
func SphereQuestionID(pos, n int) string {
	return fmt.Sprintf("p%d_s%d", pos, n)
}

// IntakeQuestions returns the three fixed intake questions.
func IntakeQuestions() []Question {
	return []Question{
		{
			ID:       IntakeNameID,
			Position: 0,
			Column:   ColumnPerception,
			Stage:    StageIntake,
			Type:     TypeText,
			Text:     "Как тебя зовут? (или как удобно)",
		},
		{
			ID:       IntakeRequestID,
			Position: 0,
			Column:   ColumnMotivation,
			Stage:    StageIntake,
			Type:     TypeText,
			Text:     "С каким запросом ты пришёл(пришла)? (1–2 фразы)",
		},
		{
			ID:       IntakeContactID,
			Position: 0,
			Column:   ColumnInstrument,
			Stage:    StageIntake,
			Type:     TypeText,
			Text:     "Оставь телефон или email (куда отправить полный разбор).",
		},
	}
}

// sphereOptions is the fixed option list of every sphere question.
var sphereOptions = []Option{
	{ID: string(SphereEmotions), Text: "Эмоции / атмосфера / красота / отношения"},
	{ID: string(SphereMatter), Text: "Действия / деньги / польза / результат"},
	{ID: string(SphereMeanings), Text: "Смысл / идея / понимание / почему так"},
}

// SphereQuestions returns the two sphere-selection questions of a position.
// The first one references the position's label.
func SphereQuestions(pos int) [2]Question {
	col := PositionColumn(pos)
	return [2]Question{
		{
			ID:       SphereQuestionID(pos, 1),
			Position: pos,
			Column:   col,
			Stage:    StageSphere,
			Type:     TypeSingle,
			Text:     fmt.Sprintf("(%s) Представь: ты в новой ситуации. Что у тебя включается ПЕРВЫМ?", PositionLabel(pos)),
			Options:  sphereOptions,
		},
		{
			ID:       SphereQuestionID(pos, 2),
			Position: pos,
			Column:   col,
			Stage:    StageSphere,
			Type:     TypeSingle,
			Text:     "Когда ты понимаешь, что это «твоё» — что решает?",
			Options:  sphereOptions,
		},
	}
}

// potentialTexts holds the A/B question texts per sphere.
var potentialTexts = map[Sphere][2]string{
	SphereMeanings: {
		"С идеями ты чаще:",
		"Чтобы понять решение, тебе проще:",
	},
	SphereEmotions: {
		"Про людей и атмосферу ты чаще:",
		"Когда тебе нравится идея/проект, это ощущается как:",
	},
	SphereMatter: {
		"В делах/работе ты чаще:",
		"Как ты быстрее понимаешь «моё/не моё» по делу?",
	},
}

// potentialOptions holds the A/B option labels per sphere, ordered as the
// sphere's member potentials.
var potentialOptions = map[Sphere][2][3]string{
	SphereMeanings: {
		{
			"Слышу/чувствую «работает/не работает», люблю тишину и смысл",
			"Начинаю говорить/объяснять, понимаю что «зайдёт» людям",
			"Вижу сценарии и стратегию: к чему это приведёт",
		},
		{
			"Остановиться и осмыслить в тишине",
			"Проговорить/обсудить вслух",
			"Поймать ощущение «я знаю» / предчувствие",
		},
	},
	SphereEmotions: {
		{
			"Замечаю красоту/детали/картинку и чувствую гармонию",
			"Читаю мимику/эмоции, люблю контакт и «движуху людей»",
			"Ловлю драйв/химию/внутренний всплеск",
		},
		{
			"«красиво и правильно внутри»",
			"хочется делиться, играть эмоцией, выступать",
			"включается адреналин/страсть/желание",
		},
	},
	SphereMatter: {
		{
			"вижу, что не работает в системе/механизме, чиню и навожу порядок",
			"включаюсь через тело/движение/пространство",
			"сразу считаю выгоду и эффективность",
		},
		{
			"по ощущению комфорта/дискомфорта внутри (живот)",
			"по телу: тянет действовать или «не тянет»",
			"по ощущению динамики/мурашкам/приятно–неприятно",
		},
	},
}

// PotentialQuestions returns the fixed A/B pair of potential questions
// for a (position, sphere). Each question offers exactly the sphere's
// three potentials, keyed by potential name.
func PotentialQuestions(pos int, sphere Sphere) [2]Question {
	col := PositionColumn(pos)
	members := sphereMembers[sphere]
	texts := potentialTexts[sphere]
	labels := potentialOptions[sphere]

	var out [2]Question
	for i := 0; i < 2; i++ {
		opts := make([]Option, 3)
		for j, p := range members {
			opts[j] = Option{ID: string(p), Text: labels[i][j]}
		}
		out[i] = Question{
			ID:       fmt.Sprintf("p%d_p%d_%s", pos, i+1, sphere),
			Position: pos,
			Column:   col,
			Stage:    StagePotential,
			Sphere:   sphere,
			Type:     TypeSingle,
			Text:     texts[i],
			Options:  opts,
		}
	}
	return out
}

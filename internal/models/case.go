package models

// Verdict is the binary judgment the player submits.
type Verdict string

const (
	VerdictGuilty    Verdict = "guilty"
	VerdictNotGuilty Verdict = "not-guilty"
)

// Opposite returns the other verdict.
func (v Verdict) Opposite() Verdict {
	if v == VerdictGuilty {
		return VerdictNotGuilty
	}
	return VerdictGuilty
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type Role string

const (
	RoleProsecutor Role = "prosecutor"
	RoleDefense    Role = "defense"
	RoleDefendant  Role = "defendant"
)

type EvidenceType string

const (
	EvidencePhysical    EvidenceType = "physical"
	EvidenceDocumentary EvidenceType = "documentary"
	EvidenceTestimony   EvidenceType = "testimony"
)

type ClueType string

const (
	ClueBodyLanguage ClueType = "body-language"
	ClueAppearance   ClueType = "appearance"
	ClueBehavior     ClueType = "behavior"
)

// CaseTemplate is an authored, static blueprint from which a playable Case
// is procedurally expanded. Templates are owned by the catalog and never
// mutated.
type CaseTemplate struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Difficulty      Difficulty  `json:"difficulty"`
	CorrectVerdict  Verdict     `json:"correctVerdict"`
	ProsecutorClues []ClueSeed  `json:"prosecutorClues"`
	Evidence        []Evidence  `json:"evidence"`
	Testimonies     []Testimony `json:"testimonies"`
}

// ClueSeed is the raw clue descriptor carried by a template. The builder
// expands it into a positioned VisualClue.
type ClueSeed struct {
	Type          string `json:"type"`
	Hint          string `json:"hint"`
	PointsToGuilt bool   `json:"pointsToGuilt"`
}

// Case is a fully playable courtroom case expanded from a template.
type Case struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Difficulty     Difficulty    `json:"difficulty"`
	CorrectVerdict Verdict       `json:"correctVerdict"`
	Prosecutor     Character     `json:"prosecutor"`
	DefenseLawyer  Character     `json:"defenseLawyer"`
	Defendant      Character     `json:"defendant"`
	Evidence       []Evidence    `json:"evidence"`
	Testimonies    []Testimony   `json:"testimonies"`
	JuryOpinions   []JuryOpinion `json:"juryOpinions"`
	VisualClues    []VisualClue  `json:"visualClues"`
}

type Character struct {
	Name         string       `json:"name"`
	Role         Role         `json:"role"`
	Appearance   Appearance   `json:"appearance"`
	BodyLanguage BodyLanguage `json:"bodyLanguage"`
}

type Appearance struct {
	Sprite   string   `json:"sprite"`
	Position Position `json:"position"`
}

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// BodyLanguage carries the five independent tells a character can show.
// The bias direction of the signals is the gameplay hint the player learns
// to read.
type BodyLanguage struct {
	Nervous    bool `json:"nervous"`
	Confident  bool `json:"confident"`
	Fidgeting  bool `json:"fidgeting"`
	EyeContact bool `json:"eyeContact"`
	Sweating   bool `json:"sweating"`
}

type Evidence struct {
	ID            string       `json:"id"`
	Type          EvidenceType `json:"type"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	PointsToGuilt bool         `json:"pointsToGuilt"`
	// Weight ranges from 1 (circumstantial) to 10 (damning).
	Weight int `json:"weight"`
}

type Testimony struct {
	Speaker   string `json:"speaker"`
	Role      Role   `json:"role"`
	Statement string `json:"statement"`
	// Credibility ranges from 1 to 10.
	Credibility    int      `json:"credibility"`
	Contradictions []string `json:"contradictions,omitempty"`
}

type JuryOpinion struct {
	JurorID int     `json:"jurorId"`
	Opinion Verdict `json:"opinion"`
	// Confidence ranges from 5 to 9.
	Confidence int `json:"confidence"`
}

// VisualClue is a hidden clickable hotspot tied to a character. Discovery
// reveals a hint correlated with the correct verdict.
type VisualClue struct {
	ID            string     `json:"id"`
	CharacterRole Role       `json:"characterRole"`
	Type          ClueType   `json:"clueType"`
	Description   string     `json:"description"`
	Hint          string     `json:"hint"`
	PointsToGuilt bool       `json:"pointsToGuilt"`
	Difficulty    Difficulty `json:"difficulty"`
	Position      Hotspot    `json:"position"`
}

// Hotspot is a rectangle in the fixed courtroom coordinate space.
type Hotspot struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

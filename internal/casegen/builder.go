package casegen

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/myrjola/gavel/internal/catalog"
	"github.com/myrjola/gavel/internal/errors"
	"github.com/myrjola/gavel/internal/models"
)

// ErrNoTemplates is returned when the catalog has no template for the
// requested difficulty even after resetting the used-id cycle. That is an
// authoring error, not something the builder recovers from.
var ErrNoTemplates = errors.NewSentinel("no case templates available")

// UsedSet tracks template ids already played in the current cycle so that
// templates are sampled without replacement until the pool is exhausted.
type UsedSet map[string]struct{}

// Clone returns an independent copy of the set.
func (s UsedSet) Clone() UsedSet {
	clone := make(UsedSet, len(s))
	for id := range s {
		clone[id] = struct{}{}
	}
	return clone
}

// Builder expands case templates into playable cases. Generate is a pure
// function of (catalog, difficulty, used set, rng); the caller owns the
// used set and the random source, which keeps generation deterministic
// under a fixed seed.
type Builder struct {
	catalog *catalog.Catalog
}

func NewBuilder(c *catalog.Catalog) *Builder {
	return &Builder{catalog: c}
}

// Generate picks one template of the given difficulty and expands it. With
// excludeUsed, templates whose id is in used are skipped; an exhausted pool
// clears the cycle and retries once without the exclusion, so the call
// terminates as long as the catalog has any template of the difficulty.
//
// The returned used set is a copy with the picked id recorded; the input
// set is not mutated.
func (b *Builder) Generate(
	rng *rand.Rand,
	difficulty models.Difficulty,
	used UsedSet,
	excludeUsed bool,
) (models.Case, UsedSet, error) {
	pool := b.catalog.TemplatesFor(difficulty)
	available := pool[:0:0]
	for _, t := range pool {
		if excludeUsed {
			if _, played := used[t.ID]; played {
				continue
			}
		}
		available = append(available, t)
	}

	if len(available) == 0 {
		if excludeUsed {
			// Cycle exhausted: start a fresh cycle over the full pool.
			return b.Generate(rng, difficulty, UsedSet{}, false)
		}
		return models.Case{}, used.Clone(), errors.Wrap(ErrNoTemplates, "generate case",
			slog.String("difficulty", string(difficulty)))
	}

	template := available[rng.IntN(len(available))]
	nextUsed := used.Clone()
	nextUsed[template.ID] = struct{}{}

	return b.build(rng, template), nextUsed, nil
}

// build expands a template into a playable case. The correct verdict is
// copied through untouched; it is the ground truth the evaluator checks
// against.
func (b *Builder) build(rng *rand.Rand, template models.CaseTemplate) models.Case {
	guilty := template.CorrectVerdict == models.VerdictGuilty

	// Prosecutor and defense read confident exactly when the verdict
	// supports their position; the defendant reads confident only when
	// innocent.
	prosecutor := models.Character{
		Name: randomName(rng),
		Role: models.RoleProsecutor,
		Appearance: models.Appearance{
			Sprite:   "/assets/images/characters/prosecutor.png",
			Position: models.Position{X: 100, Y: 200},
		},
		BodyLanguage: bodyLanguage(rng, guilty),
	}
	defenseLawyer := models.Character{
		Name: randomName(rng),
		Role: models.RoleDefense,
		Appearance: models.Appearance{
			Sprite:   "/assets/images/characters/defense-lawyer.png",
			Position: models.Position{X: 400, Y: 200},
		},
		BodyLanguage: bodyLanguage(rng, !guilty),
	}
	defendant := models.Character{
		Name: randomName(rng),
		Role: models.RoleDefendant,
		Appearance: models.Appearance{
			Sprite:   "/assets/images/characters/defendant.png",
			Position: models.Position{X: 500, Y: 200},
		},
		BodyLanguage: bodyLanguage(rng, !guilty),
	}

	return models.Case{
		ID:             template.ID,
		Title:          template.Title,
		Description:    template.Description,
		Difficulty:     template.Difficulty,
		CorrectVerdict: template.CorrectVerdict,
		Prosecutor:     prosecutor,
		DefenseLawyer:  defenseLawyer,
		Defendant:      defendant,
		Evidence:       append([]models.Evidence(nil), template.Evidence...),
		Testimonies:    append([]models.Testimony(nil), template.Testimonies...),
		JuryOpinions:   juryOpinions(rng, template.CorrectVerdict),
		VisualClues:    visualClues(template),
	}
}

// bodyLanguage draws the five tells. The draws are randomized so repeated
// plays of the same template are not visually identical, but the bias
// direction always matches the template's correct verdict.
func bodyLanguage(rng *rand.Rand, confident bool) models.BodyLanguage {
	return models.BodyLanguage{
		Nervous:    !confident && rng.Float64() > 0.3,
		Confident:  confident && rng.Float64() > 0.3,
		Fidgeting:  !confident && rng.Float64() > 0.5,
		EyeContact: confident || rng.Float64() > 0.6,
		Sweating:   !confident && rng.Float64() > 0.4,
	}
}

const jurySize = 12

// juryOpinions synthesizes a plausible but non-unanimous jury: each juror
// independently agrees with the correct verdict with probability 0.7.
func juryOpinions(rng *rand.Rand, correct models.Verdict) []models.JuryOpinion {
	opinions := make([]models.JuryOpinion, jurySize)
	for i := range opinions {
		opinion := correct
		if rng.Float64() <= 0.3 {
			opinion = correct.Opposite()
		}
		opinions[i] = models.JuryOpinion{
			JurorID:    i + 1,
			Opinion:    opinion,
			Confidence: 5 + rng.IntN(5),
		}
	}
	return opinions
}

// visualClues maps the template's clue seeds to positioned hotspots. The
// lookup is data-driven: a new clue type needs only a catalog and table
// entry, no code change.
func visualClues(template models.CaseTemplate) []models.VisualClue {
	clues := make([]models.VisualClue, 0, len(template.ProsecutorClues))
	for i, seed := range template.ProsecutorClues {
		clues = append(clues, models.VisualClue{
			ID:            fmt.Sprintf("clue_%d", i),
			CharacterRole: models.RoleProsecutor,
			Type:          models.ClueBodyLanguage,
			Description:   seed.Hint,
			Hint:          seed.Hint,
			PointsToGuilt: seed.PointsToGuilt,
			Difficulty:    template.Difficulty,
			Position:      cluePosition(seed.Type),
		})
	}
	return clues
}

var cluePositions = map[string]models.Hotspot{
	"sweating":     {X: 120, Y: 180, Width: 40, Height: 40},
	"fidgeting":    {X: 100, Y: 250, Width: 60, Height: 60},
	"nervous-eyes": {X: 115, Y: 195, Width: 30, Height: 20},
	"confident":    {X: 110, Y: 190, Width: 50, Height: 50},
}

func cluePosition(clueType string) models.Hotspot {
	if position, ok := cluePositions[clueType]; ok {
		return position
	}
	return models.Hotspot{X: 100, Y: 200, Width: 50, Height: 50}
}

var firstNames = []string{
	"James", "Mary", "John", "Patricia", "Robert",
	"Jennifer", "Michael", "Linda", "David", "Elizabeth",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones",
	"Garcia", "Miller", "Davis", "Rodriguez", "Martinez",
}

func randomName(rng *rand.Rand) string {
	return fmt.Sprintf("%s %s", firstNames[rng.IntN(len(firstNames))], lastNames[rng.IntN(len(lastNames))])
}

package catalog

import (
	"encoding/json"
	"log/slog"

	"github.com/myrjola/gavel/internal/errors"
	"github.com/myrjola/gavel/internal/models"

	_ "embed"
)

//go:embed data/cases.json
var embeddedCases []byte

//go:embed data/items.json
var embeddedItems []byte

// Catalog holds the immutable case-template and customization-item
// collections. A failed load leaves the affected collection empty rather
// than failing construction; generation then reports "no case available"
// which is a configuration error, not a crash.
type Catalog struct {
	logger    *slog.Logger
	templates []models.CaseTemplate
	items     []models.CustomizationItem
}

// New loads the embedded catalogs.
func New(logger *slog.Logger) *Catalog {
	return NewFromJSON(logger, embeddedCases, embeddedItems)
}

// NewFromJSON loads the catalogs from raw JSON. Tests use this to inject
// small or malformed catalogs.
func NewFromJSON(logger *slog.Logger, casesJSON, itemsJSON []byte) *Catalog {
	c := Catalog{
		logger:    logger.With("source", "Catalog"),
		templates: nil,
		items:     nil,
	}

	if err := json.Unmarshal(casesJSON, &c.templates); err != nil {
		c.templates = nil
		c.logger.Error("failed to load case templates", errors.SlogError(err))
	}
	if err := json.Unmarshal(itemsJSON, &c.items); err != nil {
		c.items = nil
		c.logger.Error("failed to load customization items", errors.SlogError(err))
	}

	return &c
}

// Len returns the number of loaded case templates.
func (c *Catalog) Len() int {
	return len(c.templates)
}

// Templates returns a copy of all case templates.
func (c *Catalog) Templates() []models.CaseTemplate {
	return append([]models.CaseTemplate(nil), c.templates...)
}

// TemplatesFor returns a copy of the templates matching the difficulty.
func (c *Catalog) TemplatesFor(difficulty models.Difficulty) []models.CaseTemplate {
	var matching []models.CaseTemplate
	for _, t := range c.templates {
		if t.Difficulty == difficulty {
			matching = append(matching, t)
		}
	}
	return matching
}

// Items returns a copy of the customization-item catalog.
func (c *Catalog) Items() []models.CustomizationItem {
	return append([]models.CustomizationItem(nil), c.items...)
}

// Item looks up a customization item by id.
func (c *Catalog) Item(id string) (models.CustomizationItem, bool) {
	for _, item := range c.items {
		if item.ID == id {
			return item, true
		}
	}
	return models.CustomizationItem{}, false
}

// MergeOwned derives per-player ownership for the item catalog. Items with
// price 0 are always owned.
func (c *Catalog) MergeOwned(ownedIDs map[string]struct{}) []models.CustomizationItem {
	items := c.Items()
	for i := range items {
		_, owned := ownedIDs[items[i].ID]
		items[i].Owned = items[i].Price == 0 || owned
	}
	return items
}

// Validate checks the loaded catalogs for authoring mistakes: duplicate
// ids, out-of-range weights and credibilities, and difficulties with no
// templates at all.
func (c *Catalog) Validate() error {
	var errs []error

	seen := make(map[string]struct{}, len(c.templates))
	perDifficulty := map[models.Difficulty]int{}
	for _, t := range c.templates {
		if _, dup := seen[t.ID]; dup {
			errs = append(errs, errors.New("duplicate template id", slog.String("id", t.ID)))
		}
		seen[t.ID] = struct{}{}
		perDifficulty[t.Difficulty]++

		if t.CorrectVerdict != models.VerdictGuilty && t.CorrectVerdict != models.VerdictNotGuilty {
			errs = append(errs, errors.New("invalid correct verdict",
				slog.String("id", t.ID), slog.String("verdict", string(t.CorrectVerdict))))
		}
		for _, ev := range t.Evidence {
			if ev.Weight < 1 || ev.Weight > 10 {
				errs = append(errs, errors.New("evidence weight out of range",
					slog.String("templateId", t.ID), slog.String("evidenceId", ev.ID), slog.Int("weight", ev.Weight)))
			}
		}
		for _, testimony := range t.Testimonies {
			if testimony.Credibility < 1 || testimony.Credibility > 10 {
				errs = append(errs, errors.New("testimony credibility out of range",
					slog.String("templateId", t.ID), slog.String("speaker", testimony.Speaker),
					slog.Int("credibility", testimony.Credibility)))
			}
		}
	}
	for _, difficulty := range []models.Difficulty{models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard} {
		if perDifficulty[difficulty] == 0 {
			errs = append(errs, errors.New("no templates for difficulty",
				slog.String("difficulty", string(difficulty))))
		}
	}

	// Free starter items share the id "default" across categories, so item
	// ids are only required to be unique within a category.
	type itemKey struct {
		category models.ItemCategory
		id       string
	}
	seenItems := make(map[itemKey]struct{}, len(c.items))
	for _, item := range c.items {
		key := itemKey{category: item.Category, id: item.ID}
		if _, dup := seenItems[key]; dup {
			errs = append(errs, errors.New("duplicate item id",
				slog.String("id", item.ID), slog.String("category", string(item.Category))))
		}
		seenItems[key] = struct{}{}
		if item.Price < 0 {
			errs = append(errs, errors.New("negative item price",
				slog.String("id", item.ID), slog.Int("price", item.Price)))
		}
	}

	return errors.Join(errs...)
}

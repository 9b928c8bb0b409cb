package main

import (
	"net/http"

	"github.com/myrjola/gavel/internal/models"
)

func (app *application) updateSettings(w http.ResponseWriter, r *http.Request) {
	var patch models.SettingsPatch
	if err := readJSON(r, &patch); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}
	if patch.Difficulty != nil {
		switch *patch.Difficulty {
		case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard:
		default:
			app.clientError(w, r, http.StatusBadRequest)
			return
		}
	}

	app.session.UpdateSettings(r.Context(), patch)
	app.writeJSON(w, r, http.StatusOK, app.session.State().Settings)
}

type screenRequest struct {
	Screen models.Screen `json:"screen"`
}

func (app *application) setScreen(w http.ResponseWriter, r *http.Request) {
	var req screenRequest
	if err := readJSON(r, &req); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}
	switch req.Screen {
	case models.ScreenMenu, models.ScreenCase, models.ScreenShop,
		models.ScreenStatistics, models.ScreenAchievements, models.ScreenSettings:
	default:
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	app.session.SetScreen(r.Context(), req.Screen)
	w.WriteHeader(http.StatusNoContent)
}

func (app *application) completeTutorial(w http.ResponseWriter, r *http.Request) {
	app.session.CompleteTutorial(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// resetProgress wipes all stores and reseeds a fresh progress record.
func (app *application) resetProgress(w http.ResponseWriter, r *http.Request) {
	if err := app.session.Reset(r.Context()); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, app.session.State())
}

package main

import (
	"net/http"

	"github.com/myrjola/gavel/internal/casegen"
	"github.com/myrjola/gavel/internal/errors"
	"github.com/myrjola/gavel/internal/game"
	"github.com/myrjola/gavel/internal/models"
)

type newCaseRequest struct {
	// Difficulty overrides the player's difficulty setting when present.
	Difficulty models.Difficulty `json:"difficulty,omitempty"`
}

func (app *application) newCase(w http.ResponseWriter, r *http.Request) {
	var req newCaseRequest
	if err := readJSON(r, &req); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	var (
		newCase models.Case
		err     error
	)
	switch req.Difficulty {
	case "":
		newCase, err = app.session.StartCase(r.Context())
	case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard:
		newCase, err = app.session.GenerateCase(r.Context(), req.Difficulty)
	default:
		app.clientError(w, r, http.StatusBadRequest)
		return
	}
	if err != nil {
		if errors.Is(err, casegen.ErrNoTemplates) {
			// Empty catalog: a configuration error surfaced as "no case
			// available", not a server fault.
			app.clientError(w, r, http.StatusConflict)
			return
		}
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, newCase)
}

type verdictRequest struct {
	Verdict models.Verdict `json:"verdict"`
}

func (app *application) submitVerdict(w http.ResponseWriter, r *http.Request) {
	var req verdictRequest
	if err := readJSON(r, &req); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}
	if req.Verdict != models.VerdictGuilty && req.Verdict != models.VerdictNotGuilty {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	result, err := app.session.SubmitVerdict(r.Context(), req.Verdict)
	if err != nil {
		if errors.Is(err, game.ErrNoActiveCase) {
			app.clientError(w, r, http.StatusConflict)
			return
		}
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, result)
}

type clueRequest struct {
	ClueID string `json:"clueId"`
}

func (app *application) revealClue(w http.ResponseWriter, r *http.Request) {
	var req clueRequest
	if err := readJSON(r, &req); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	clue, ok := app.session.RevealClue(req.ClueID)
	if !ok {
		app.clientError(w, r, http.StatusNotFound)
		return
	}
	app.writeJSON(w, r, http.StatusOK, clue)
}

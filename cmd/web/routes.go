package main

import (
	"net/http"

	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/healthy", app.healthy)
	mux.HandleFunc("GET /api/state", app.state)
	mux.HandleFunc("GET /api/statistics", app.statistics)
	mux.HandleFunc("GET /api/history", app.history)
	mux.HandleFunc("GET /api/shop/items", app.shopItems)

	mux.HandleFunc("POST /api/case/new", app.newCase)
	mux.HandleFunc("POST /api/case/verdict", app.submitVerdict)
	mux.HandleFunc("POST /api/case/clue", app.revealClue)
	mux.HandleFunc("POST /api/shop/purchase", app.purchaseItem)
	mux.HandleFunc("POST /api/shop/equip", app.equipItem)
	mux.HandleFunc("POST /api/settings", app.updateSettings)
	mux.HandleFunc("POST /api/screen", app.setScreen)
	mux.HandleFunc("POST /api/tutorial/complete", app.completeTutorial)
	mux.HandleFunc("POST /api/reset", app.resetProgress)

	base := alice.New(app.recoverPanic, app.logRequest, secureHeaders)

	return base.Then(mux)
}

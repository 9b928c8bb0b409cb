package main

import "net/http"

// state returns a snapshot of the progress record for rendering.
func (app *application) state(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, app.session.State())
}

// statistics returns the derived statistics summary.
func (app *application) statistics(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, app.session.Statistics())
}

// history returns the completed-case log ordered by completion time.
func (app *application) history(w http.ResponseWriter, r *http.Request) {
	records, err := app.session.History(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, records)
}

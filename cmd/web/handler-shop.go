package main

import (
	"net/http"

	"github.com/myrjola/gavel/internal/models"
)

func (app *application) shopItems(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, app.session.Items(r.Context()))
}

type purchaseRequest struct {
	ItemID string `json:"itemId"`
}

type purchaseResponse struct {
	Purchased bool `json:"purchased"`
	Coins     int  `json:"coins"`
}

// purchaseItem attempts a purchase. A declined purchase (insufficient
// coins, unknown or already-owned item) is a normal 200 response with
// purchased=false.
func (app *application) purchaseItem(w http.ResponseWriter, r *http.Request) {
	var req purchaseRequest
	if err := readJSON(r, &req); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	purchased := app.session.PurchaseItem(r.Context(), req.ItemID)
	app.writeJSON(w, r, http.StatusOK, purchaseResponse{
		Purchased: purchased,
		Coins:     app.session.State().Coins,
	})
}

type equipRequest struct {
	ItemID   string              `json:"itemId"`
	Category models.ItemCategory `json:"category"`
}

func (app *application) equipItem(w http.ResponseWriter, r *http.Request) {
	var req equipRequest
	if err := readJSON(r, &req); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}
	switch req.Category {
	case models.ItemCategoryCourtroom, models.ItemCategoryGavel, models.ItemCategoryRobe, models.ItemCategoryDecoration:
	default:
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	app.session.EquipItem(r.Context(), req.ItemID, req.Category)
	app.writeJSON(w, r, http.StatusOK, app.session.State().Customization)
}

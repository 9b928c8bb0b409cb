package game

import (
	"testing"

	"github.com/myrjola/gavel/internal/models"
	"github.com/stretchr/testify/assert"
)

type unknownAction struct{}

func (unknownAction) isAction() {}

func TestApplyUnknownActionIsNoOp(t *testing.T) {
	state := models.NewGameState(Definitions())
	state.Coins = 42

	after := Apply(state, unknownAction{})

	assert.Equal(t, state, after)
}

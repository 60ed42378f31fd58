package conversion

import (
	"github.com/KirkDiggler/rpg-statblock/internal/entities"
)

// CreatureDecoder maps raw creature JSON onto the domain model.
// Keys are matched exactly and case-sensitively.
//
//go:generate mockgen -destination=mock/mock_decoder.go -package=conversionmock github.com/KirkDiggler/rpg-statblock/internal/services/conversion CreatureDecoder
type CreatureDecoder interface {
	// Decode returns a Parse error when data is not valid JSON and a Schema
	// error listing every missing or mis-shaped field otherwise.
	Decode(data []byte) (*entities.Creature, error)
}

package transcode

import (
	"github.com/KirkDiggler/rpg-statblock/internal/entities"
)

// TranscodeInput defines the request for converting one creature file
type TranscodeInput struct {
	Path string
	// RollHitPoints replaces HP.Value with a roll of the hit dice expression
	RollHitPoints bool
}

// TranscodeOutput defines the response for converting one creature file
type TranscodeOutput struct {
	// Markup is the complete statblock, fences included
	Markup   string
	Creature *entities.Creature
}

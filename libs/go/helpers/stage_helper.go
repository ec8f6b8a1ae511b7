package helpers

import (
	"os"

	"github.com/chokka/chokka-api/libs/go/constants"
)

// Stage constants define the possible deployment/runtime environments.
const (
	StageProd  = constants.ProdEnvironment
	StageDev   = "dev"
	StageLocal = "local"
)

// IsValidStage checks if the provided stage string is one of the defined valid stages.
func IsValidStage(stage string) bool {
	switch stage {
	case StageProd, StageDev, StageLocal:
		return true
	default:
		return false
	}
}

// GetStage returns STAGE from the environment, defaulting to local
func GetStage() string {
	if stage := os.Getenv("STAGE"); stage != "" {
		return stage
	}
	return StageLocal
}

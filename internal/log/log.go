package log

import (
	"github.com/rs/zerolog"
)

// ComponentLogger derives a logger tagged with component. The calling
// function is added as well when base logs at debug level or lower.
func ComponentLogger(base zerolog.Logger, component, funcname string) zerolog.Logger {
	logger := base.With().Str("component", component).Logger()
	if base.GetLevel() <= zerolog.DebugLevel {
		logger = logger.With().Str("func", funcname).Logger()
	}
	return logger
}

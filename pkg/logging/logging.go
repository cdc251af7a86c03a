package logging

import (
	"go.uber.org/zap"
)

// Setup builds the application logger. With debug enabled it uses zap's
// development config (console encoding, debug level); otherwise the
// production config. The returned logger carries the application name and
// version as initial fields and is installed as zap's global logger.
func Setup(debug bool, appName, appVersion string) (*zap.Logger, error) {
	var cfg zap.Config

	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	zap.ReplaceGlobals(logger)
	return logger, nil
}

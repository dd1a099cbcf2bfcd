// Package logger builds *slog.Logger values from functional options and
// provides attribute helpers that keep key names consistent.
//
// New selects slog.NewTextHandler or slog.NewJSONHandler based on the
// configured Format, applies the level and attaches any static attributes.
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithComponent("immutable"),
//	)
//	log.Debug("type defined", logger.Schema("Person"))
//
// ParseLevel and ParseFormat turn configuration strings into options, and
// Discard returns a logger that drops every record.
//
// Error and Errors produce attributes only for non-nil errors, so they can be
// passed without a nil check:
//
//	log.Debug("validation rejected", logger.Schema(name), logger.Error(err))
package logger

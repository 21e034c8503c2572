// Package logger builds *slog.Logger values for the site with consistent
// options and attribute names.
//
// New creates a JSON or text handler, attaches static attributes, and wraps it
// in LogHandlerDecorator so values stored in the request context (the request
// id, for example) are added to every record:
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Development, "wizardwayz"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "pillar resolved", logger.Pillar("Metaphysics"), logger.Slug("metaphysics"))
//
// Attribute helpers in attr.go keep key names uniform. Error returns an empty
// attribute for a nil error, so it can be passed unconditionally.
package logger

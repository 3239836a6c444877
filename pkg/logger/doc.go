// Package logger builds *slog.Logger instances for the portfolio API.
//
// New applies functional options on top of production-safe defaults (JSON
// output at Info level) and wraps the handler so that request-scoped values,
// such as the request id, are copied from the context into every record:
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "portfolio"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "gallery item created", logger.Resource("gallery"), logger.ResourceID(id))
//
// The attribute helpers keep key names consistent across packages.
package logger

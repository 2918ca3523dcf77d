// Package logger provides slog attribute helpers shared by the binding layer
// and the HTTP glue. Helpers are nil-safe: passing a nil error or empty
// identifier yields an empty attribute that slog drops from output.
//
//	log.Debug("custom request binder resolved",
//		logger.Component("binding"),
//		logger.Type(t),
//		logger.Param(p.Name),
//	)
package logger

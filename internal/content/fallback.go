package content

import (
	"go.uber.org/zap"
)

// Fallback runs primary and substitutes fallback when it fails. A CMS
// outage degrades content freshness, never page availability, so every
// page-rendering call site wraps its accessor in this decorator instead of
// scattering ad hoc recovery logic.
func Fallback[T any](log *zap.Logger, primary func() (T, error), fallback T) T {
	value, err := primary()
	if err != nil {
		log.Warn("content fetch failed, serving fallback content", zap.Error(err))
		return fallback
	}
	return value
}

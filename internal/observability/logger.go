// Package observability wires logging and metrics export for remap runs.
package observability

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/remap/internal/config"
)

const attrService = "service"

// ServiceName tags every record and metric emitted by remap.
const ServiceName = "remap"

// NewLogger builds an [slog.Logger] writing to w in the configured format
// at the configured level, tagged with the service name.
func NewLogger(cfg config.LoggingConfig, w io.Writer) (*slog.Logger, error) {
	var level slog.Level

	err := level.UnmarshalText([]byte(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler

	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "text", "":
		handler = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrInvalidLogFormat, cfg.Format)
	}

	return slog.New(handler).With(slog.String(attrService, ServiceName)), nil
}

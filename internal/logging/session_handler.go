package logging

import (
	"context"
	"log/slog"
)

// FieldSessionID is the structured logging key for the per-invocation session identifier.
const FieldSessionID = "session_id"

// sessionIDHandler stamps session_id on every record. Once a group is opened
// the id is bound to the base handler instead, so it stays top-level.
type sessionIDHandler struct {
	base      slog.Handler
	sessionID string
}

func newSessionIDHandler(base slog.Handler, sessionID string) slog.Handler {
	if base == nil {
		return NoopHandler{}
	}
	return &sessionIDHandler{base: base, sessionID: sessionID}
}

func (h *sessionIDHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

func (h *sessionIDHandler) Handle(ctx context.Context, record slog.Record) error {
	if h.sessionID != "" {
		record.AddAttrs(slog.String(FieldSessionID, h.sessionID))
	}
	return h.base.Handle(ctx, record)
}

func (h *sessionIDHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sessionIDHandler{base: h.base.WithAttrs(attrs), sessionID: h.sessionID}
}

func (h *sessionIDHandler) WithGroup(name string) slog.Handler {
	base := h.base
	if h.sessionID != "" {
		base = base.WithAttrs([]slog.Attr{slog.String(FieldSessionID, h.sessionID)})
	}
	return &sessionIDHandler{base: base.WithGroup(name)}
}

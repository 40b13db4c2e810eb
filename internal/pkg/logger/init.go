package logger

import (
	"io"
	log "log/slog"
	"os"
)

var LogWriter io.Writer

// InitLogger installs the default slog logger: JSON to stdout, with
// trace IDs pulled out of the request context.
func InitLogger() {
	LogWriter = os.Stdout

	h := log.NewJSONHandler(os.Stdout, &log.HandlerOptions{Level: log.LevelInfo})
	log.SetDefault(log.New(&ContextHandler{h}))
}

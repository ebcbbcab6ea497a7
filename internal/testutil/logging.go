package testutil

import (
	"io"

	"arttable/internal/logging"
)

// DiscardLogs points the global logger at io.Discard. Call it from TestMain
// before any component logger is created.
func DiscardLogs() {
	cfg := logging.DefaultConfig()
	cfg.FilePath = ""
	cfg.Output = io.Discard
	cfg.Level = logging.LevelDebug
	logging.Setup(cfg)
}

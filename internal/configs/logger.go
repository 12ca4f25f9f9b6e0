package config

import (
	"fmt"
	"io"
	"os"
	"time"

	charmLog "github.com/charmbracelet/log"
)

const appName = "activity-tracker"

func NewLogger(w io.Writer, level string) (*charmLog.Logger, error) {
	lvl, err := charmLog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse logging level %q: %w", level, err)
	}
	if w == nil {
		w = os.Stderr
	}

	return charmLog.NewWithOptions(w, charmLog.Options{
		Level:           lvl,
		Prefix:          appName,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       charmLog.TextFormatter,
	}), nil
}

// Command parentscal-export writes the full holiday set as an iCalendar
// file, for importing into any calendar application without network access
// or OAuth setup. An optional positional argument overrides the output path.
package main

import (
	"log/slog"
	"os"
	"time"

	"parentscal/internal/holiday"
	"parentscal/internal/ics"

	"github.com/lmittmann/tint"
)

const defaultOutputFile = "mother_and_father_days.ics"

func init() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.RFC1123Z,
		}),
	))
}

func main() {
	path := defaultOutputFile
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	f, err := os.Create(path)
	if err != nil {
		slog.Error("failed to create output file", "path", path, "error", err)
		os.Exit(1)
	}

	if err := ics.Write(f, holiday.Rules, holiday.StartYear, holiday.EndYear); err != nil {
		f.Close()
		slog.Error("failed to write calendar", "path", path, "error", err)
		os.Exit(1)
	}

	if err := f.Close(); err != nil {
		slog.Error("failed to close output file", "path", path, "error", err)
		os.Exit(1)
	}

	slog.Info("wrote calendar file", "path", path,
		"years", holiday.EndYear-holiday.StartYear+1,
		"events", (holiday.EndYear-holiday.StartYear+1)*len(holiday.Rules))
}

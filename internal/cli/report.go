package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/terraincognita07/cyclelens/internal/services"
)

type ReportOptions struct {
	Window    string
	Date      string
	Analytics services.AnalyticsOptions
	Location  *time.Location
}

// RunReportCommand builds one report from source and prints it as indented
// JSON.
func RunReportCommand(ctx context.Context, source services.RecordSource, options ReportOptions, now time.Time, out io.Writer, logger zerolog.Logger) error {
	window, err := services.ParseWindow(options.Window)
	if err != nil {
		return fmt.Errorf("%w: %q", err, options.Window)
	}

	day := services.CalendarDay(services.DateAtLocation(now, options.Location))
	if raw := strings.TrimSpace(options.Date); raw != "" {
		day, err = services.ParseDay(raw)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", raw, err)
		}
	}

	analytics := services.NewAnalyticsService(source, options.Analytics, logger)
	report, err := analytics.BuildReport(ctx, window, day)
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	_, err = fmt.Fprintln(out, string(encoded))
	return err
}

// FileSource exposes an import file as a read-only record source.
func FileSource(path string) (services.RecordSource, error) {
	data, err := LoadImportFile(path)
	if err != nil {
		return nil, err
	}
	return services.NewStaticRecordSource(data.Records, data.Config), nil
}

package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/baryon/config"
)

// csvLog is an append-only CSV file that writes its header on first use.
type csvLog struct {
	file      *os.File
	hasHeader bool
}

func newCSVLog(path string) (*csvLog, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	return &csvLog{file: f}, nil
}

func appendCSV[T any](log *csvLog, record T) error {
	records := []T{record}
	if !log.hasHeader {
		log.hasHeader = true
		return gocsv.Marshal(records, log.file)
	}
	return gocsv.MarshalWithoutHeaders(records, log.file)
}

// OutputManager owns a run's output directory: telemetry.csv, perf.csv,
// and a config snapshot. A nil manager is valid and discards everything,
// so callers never branch on whether output is enabled.
type OutputManager struct {
	dir       string
	telemetry *csvLog
	perf      *csvLog
}

// NewOutputManager initializes the output directory. Returns nil (output
// disabled) if dir is empty.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	telemetry, err := newCSVLog(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		return nil, err
	}
	perf, err := newCSVLog(filepath.Join(dir, "perf.csv"))
	if err != nil {
		telemetry.file.Close()
		return nil, err
	}

	return &OutputManager{dir: dir, telemetry: telemetry, perf: perf}, nil
}

// WriteConfig saves the current configuration as YAML next to the CSVs so a
// run is reproducible from its output directory alone.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteTelemetry appends a window stats record to telemetry.csv.
func (om *OutputManager) WriteTelemetry(stats WindowStats) error {
	if om == nil {
		return nil
	}
	if err := appendCSV(om.telemetry, stats); err != nil {
		return fmt.Errorf("writing telemetry: %w", err)
	}
	return nil
}

// WritePerf appends a performance stats record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, windowEnd int) error {
	if om == nil {
		return nil
	}
	if err := appendCSV(om.perf, stats.ToCSV(windowEnd)); err != nil {
		return fmt.Errorf("writing perf: %w", err)
	}
	return nil
}

// Close flushes and closes the output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	err := om.telemetry.file.Close()
	if perr := om.perf.file.Close(); perr != nil && err == nil {
		err = perr
	}
	return err
}

// Dir returns the output directory, or empty when output is disabled.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

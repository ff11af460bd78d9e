package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// OpenDailyLogFile opens dir/app-YYYY-MM-DD.log for appending, creating dir
// when needed.
func OpenDailyLogFile(dir string, now time.Time) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	name := filepath.Join(dir, fmt.Sprintf("app-%s.log", now.Format("2006-01-02")))
	return os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

// LogOutput tees log lines to stderr and the daily file of dir
func LogOutput(dir string, now time.Time) (io.Writer, io.Closer, error) {
	f, err := OpenDailyLogFile(dir, now)
	if err != nil {
		return nil, nil, err
	}
	return io.MultiWriter(os.Stderr, f), f, nil
}

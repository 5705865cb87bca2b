// Package txlog records one CSV row per RDM transaction the responder
// answers. The file is opened for append once per day and kept open
// across writes rather than reopened per line.
package txlog

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/lestrrat-go/strftime"

	"github.com/openlighting/rdmresponder/rdm"
)

const header = "utime,isotime,src,dest,subdevice,cc,pid,pdl,response,nackreason\n"

// filenamePattern gives each day's log a "2026-03-01.csv"-style name, in
// strftime form since that is the notation lestrrat-go/strftime expects.
const filenamePattern = "%Y-%m-%d.csv"

// Log appends one row per transaction to a directory of daily-named CSV
// files. Construct with Open; the zero value (which Open returns for an
// empty dir) discards every record.
type Log struct {
	mu sync.Mutex

	dir     string
	pattern *strftime.Strftime

	file     *os.File
	openName string
}

// Open prepares a Log writing into dir, creating it if it does not
// already exist. Passing an empty dir disables logging: every Write call
// becomes a silent no-op, matching log_init's behavior for an empty path.
func Open(dir string) (*Log, error) {
	if dir == "" {
		return &Log{}, nil
	}

	if stat, err := os.Stat(dir); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("txlog: stat %s: %w", dir, err)
		}
		if err := os.Mkdir(dir, 0o755); err != nil {
			return nil, fmt.Errorf("txlog: create %s: %w", dir, err)
		}
	} else if !stat.IsDir() {
		return nil, fmt.Errorf("txlog: %s is not a directory", dir)
	}

	pattern, err := strftime.New(filenamePattern)
	if err != nil {
		return nil, fmt.Errorf("txlog: compile filename pattern: %w", err)
	}
	return &Log{dir: dir, pattern: pattern}, nil
}

// Record describes one completed request/response exchange for the log.
type Record struct {
	Time       time.Time
	Src, Dest  rdm.UID
	SubDevice  uint16
	CommandClass byte
	ParamID    uint16
	PDL        byte
	Response   rdm.ResponseType
	NackReason rdm.NackReason
	Nacked     bool
}

// Write appends one row, opening (or rotating into) today's file as
// needed. It is safe for concurrent use.
func (l *Log) Write(rec Record) error {
	if l.dir == "" {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	name := l.pattern.FormatString(rec.Time)
	if l.file != nil && name != l.openName {
		l.closeLocked()
	}
	if l.file == nil {
		if err := l.openLocked(name); err != nil {
			return err
		}
	}

	reasonField := ""
	if rec.Nacked {
		reasonField = fmt.Sprintf("0x%04x", uint16(rec.NackReason))
	}

	w := csv.NewWriter(l.file)
	err := w.Write([]string{
		fmt.Sprintf("%d", rec.Time.Unix()),
		rec.Time.UTC().Format("2006-01-02T15:04:05Z"),
		rec.Src.String(),
		rec.Dest.String(),
		fmt.Sprintf("%d", rec.SubDevice),
		fmt.Sprintf("0x%02x", rec.CommandClass),
		fmt.Sprintf("0x%04x", rec.ParamID),
		fmt.Sprintf("%d", rec.PDL),
		fmt.Sprintf("0x%02x", byte(rec.Response)),
		reasonField,
	})
	if err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func (l *Log) openLocked(name string) error {
	fullPath := filepath.Join(l.dir, name)
	_, statErr := os.Stat(fullPath)
	alreadyThere := statErr == nil

	f, err := os.OpenFile(fullPath, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("txlog: open %s: %w", fullPath, err)
	}
	if !alreadyThere {
		if _, err := f.WriteString(header); err != nil {
			_ = f.Close()
			return fmt.Errorf("txlog: write header to %s: %w", fullPath, err)
		}
	}
	l.file = f
	l.openName = name
	return nil
}

func (l *Log) closeLocked() {
	if l.file != nil {
		_ = l.file.Close()
		l.file = nil
		l.openName = ""
	}
}

// Close closes the currently open file, if any.
func (l *Log) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.openName = ""
	return err
}

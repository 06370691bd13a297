// Package eventlog implements the append-only file event log. Every event
// is one JSON line; writers append under an exclusive file lock while
// readers advance by byte offset without locking, so a reader can poll
// concurrently with commits.
package eventlog

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"pizzaria/internal/core/domain/model/event"

	"github.com/gofrs/flock"
)

const lockRetryDelay = 25 * time.Millisecond

// FileLog stores events in a single append-only file. The file is opened
// per call: appends are rare relative to their cost and reads must observe
// entries written by other processes sharing the file.
type FileLog struct {
	path   string
	lock   *flock.Flock
	logger *slog.Logger
}

// NewFileLog creates a file log at the given path. The file is created on
// first append; a missing file reads as an empty log.
func NewFileLog(path string, logger *slog.Logger) *FileLog {
	return &FileLog{
		path:   path,
		lock:   flock.New(path + ".lock"),
		logger: logger.With("component", "event_log"),
	}
}

// Append serializes the entry and writes it as one line. The flock plus
// O_APPEND keeps concurrent writers from interleaving partial lines.
func (l *FileLog) Append(ctx context.Context, entry event.Entry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal event entry: %w", err)
	}

	locked, err := l.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("lock event log: %w", err)
	}
	if !locked {
		return fmt.Errorf("lock event log: not acquired")
	}
	defer func() {
		if unlockErr := l.lock.Unlock(); unlockErr != nil {
			l.logger.WarnContext(ctx, "Failed to unlock event log", "error", unlockErr)
		}
	}()

	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open event log: %w", err)
	}
	defer file.Close()

	if _, err = file.Write(append(raw, '\n')); err != nil {
		return fmt.Errorf("append event entry: %w", err)
	}
	return nil
}

// ReadSince returns the complete entries recorded after the byte offset and
// the offset to resume from. An offset beyond the current end of the file
// (the log was recreated, or the client is stale) resyncs to the end and
// returns an empty batch. Blank and unparseable lines are skipped so one
// torn write can never wedge every reader.
func (l *FileLog) ReadSince(ctx context.Context, offset int64) ([]event.Entry, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, offset, err
	}
	if offset < 0 {
		offset = 0
	}

	file, err := os.Open(l.path)
	if os.IsNotExist(err) {
		return []event.Entry{}, 0, nil
	}
	if err != nil {
		return nil, offset, fmt.Errorf("open event log: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, offset, fmt.Errorf("stat event log: %w", err)
	}
	if offset > info.Size() {
		return []event.Entry{}, info.Size(), nil
	}

	if _, err = file.Seek(offset, io.SeekStart); err != nil {
		return nil, offset, fmt.Errorf("seek event log: %w", err)
	}

	entries := make([]event.Entry, 0)
	next := offset

	reader := bufio.NewReader(file)
	for {
		line, readErr := reader.ReadBytes('\n')
		if readErr == io.EOF {
			// Incomplete trailing line: a writer is mid-append. Leave it
			// for the next poll.
			break
		}
		if readErr != nil {
			return nil, next, fmt.Errorf("read event log: %w", readErr)
		}

		next += int64(len(line))

		var entry event.Entry
		if unmarshalErr := json.Unmarshal(line, &entry); unmarshalErr != nil {
			if len(line) > 1 {
				l.logger.WarnContext(ctx, "Skipping unparseable event log line",
					"offset", next-int64(len(line)), "error", unmarshalErr)
			}
			continue
		}
		entries = append(entries, entry)
	}

	return entries, next, nil
}

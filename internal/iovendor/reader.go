package iovendor

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/npdb/pkg/curation"
)

// Stats counts rows of a vendor file.
type Stats struct {
	// Read is the number of data rows, malformed rows included.
	Read int

	// Malformed is the number of skipped rows.
	Malformed int
}

const maxLineSize = 16 * 1024 * 1024

// Read parses a vendor file and calls fn with chunks of up to chunkSize
// rows. Malformed rows are logged and skipped. Context is checked between
// chunks.
func Read(
	ctx context.Context,
	path string,
	f Format,
	chunkSize int,
	fn func(rows []curation.Row) error,
) (Stats, error) {
	var stats Stats
	if chunkSize < 1 {
		chunkSize = 1
	}

	file, err := os.Open(path)
	if err != nil {
		return stats, ReadFileError(path, err)
	}
	defer file.Close()

	chunk := make([]curation.Row, 0, chunkSize)
	flush := func() error {
		if len(chunk) == 0 {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(chunk); err != nil {
			return err
		}
		chunk = make([]curation.Row, 0, chunkSize)
		return nil
	}

	sc := bufio.NewScanner(file)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	var lineNum int
	for sc.Scan() {
		lineNum++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if f.Header != "" && strings.HasPrefix(line, f.Header) {
			continue
		}

		stats.Read++
		fields := strings.Split(line, f.Sep)
		if len(fields) < f.MinFields {
			stats.Malformed++
			perr := &ParseError{
				File: path, Line: lineNum, Want: f.MinFields, Got: len(fields),
			}
			slog.Warn("Skipping malformed row",
				"format", f.Name, "error", perr)
			continue
		}

		chunk = append(chunk, f.Parse(trimAll(fields)))
		if len(chunk) == chunkSize {
			if err = flush(); err != nil {
				return stats, err
			}
		}
	}
	if err = sc.Err(); err != nil {
		return stats, ReadFileError(path, err)
	}
	if err = flush(); err != nil {
		return stats, err
	}

	if stats.Read > 0 && stats.Read == stats.Malformed {
		return stats, AllRowsFailedError(path, stats.Read)
	}
	return stats, nil
}

func trimAll(fields []string) []string {
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

// readTable reads a small table of a multi-file source. Every accepted
// line is passed to fn as columns.
func readTable(
	path string,
	sep, header string,
	minFields int,
	fn func(fields []string),
) error {
	file, err := os.Open(path)
	if err != nil {
		return ReadFileError(path, err)
	}
	defer file.Close()

	sc := bufio.NewScanner(file)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	var lineNum int
	for sc.Scan() {
		lineNum++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" ||
			(header != "" && strings.HasPrefix(line, header)) {
			continue
		}
		fields := strings.Split(line, sep)
		if len(fields) < minFields {
			slog.Warn("Skipping malformed row", "error", &ParseError{
				File: path, Line: lineNum, Want: minFields, Got: len(fields),
			})
			continue
		}
		fn(trimAll(fields))
	}
	if err = sc.Err(); err != nil {
		return ReadFileError(path, err)
	}
	return nil
}

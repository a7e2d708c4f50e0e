// Package jsonl streams newline-delimited JSON records out of a gzip
// compressed file, one line at a time, without materializing the whole
// file in memory.
package jsonl

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"os"
)

// LineFunc is invoked once per non-empty line. lineNum is 1-based.
// Returning an error from LineFunc stops iteration and the error is
// returned from Walk.
type LineFunc func(lineNum int, line []byte) error

// Walk opens path as a gzip stream and invokes fn once per non-empty
// line. Blank lines are skipped without incrementing the caller-visible
// record count, matching the reference extractor's behavior.
func Walk(path string, fn LineFunc) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return fmt.Errorf("failed to open gzip stream for %s: %w", path, err)
	}
	defer gz.Close()

	scanner := bufio.NewScanner(gz)
	// Scholarly metadata records routinely exceed bufio's 64KiB default
	// token limit (long abstracts, reference lists); grow the buffer.
	const maxLineSize = 64 * 1024 * 1024
	buf := make([]byte, 0, 1024*1024)
	scanner.Buffer(buf, maxLineSize)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(bytesTrimSpace(line)) == 0 {
			continue
		}
		if err := fn(lineNum, line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading %s at line %d: %w", path, lineNum, err)
	}
	return nil
}

func bytesTrimSpace(b []byte) []byte {
	start, end := 0, len(b)
	for start < end && isSpace(b[start]) {
		start++
	}
	for end > start && isSpace(b[end-1]) {
		end--
	}
	return b[start:end]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

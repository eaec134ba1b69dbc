package cli

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/hupe1980/blake2s"
)

type checkStats struct {
	ok         int
	mismatched int
	unreadable int
	malformed  int
}

// runCheck reads checksum lists and verifies every entry, printing one
// "<path>: OK" or "<path>: FAILED" line per entry. The digest length of each
// entry is taken from its hex string, so lists with mixed --length output
// verify fine; key, salt and personalization come from the flags and must
// match the ones used to produce the list.
func (f *rootFlags) runCheck(logger *slog.Logger, cfg *hashConfig, paths []string) error {
	if len(paths) == 0 {
		paths = []string{stdinName}
	}

	var stats checkStats
	for _, path := range paths {
		if err := f.checkList(logger, cfg, path, &stats); err != nil {
			return err
		}
	}

	if stats.malformed > 0 {
		fmt.Fprintf(f.errOut, "WARNING: %d line(s) improperly formatted\n", stats.malformed)
	}
	if stats.unreadable > 0 {
		fmt.Fprintf(f.errOut, "WARNING: %d listed file(s) could not be read\n", stats.unreadable)
	}
	if stats.mismatched > 0 {
		fmt.Fprintf(f.errOut, "WARNING: %d computed checksum(s) did NOT match\n", stats.mismatched)
	}

	if stats.mismatched+stats.unreadable > 0 {
		return errors.New("check failed")
	}
	if stats.ok == 0 && stats.malformed > 0 {
		return errors.New("no properly formatted checksum lines found")
	}

	return nil
}

// checkList verifies the entries of one checksum list. Only an unreadable
// list itself is fatal; bad entries are counted and reported in stats.
func (f *rootFlags) checkList(logger *slog.Logger, cfg *hashConfig, path string, stats *checkStats) error {
	var r io.Reader
	if path == stdinName {
		r = f.in
	} else {
		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()
		r = file
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		sumHex, target, ok := parseChecksumLine(line)
		if !ok {
			stats.malformed++
			logger.Warn("skipping improperly formatted line", "list", path, "line", line)
			continue
		}

		want, err := hex.DecodeString(sumHex)
		if err != nil || len(want) < 1 || len(want) > blake2s.Size {
			stats.malformed++
			logger.Warn("skipping line with invalid digest", "list", path, "target", target)
			continue
		}

		h, err := cfg.newDigestSize(len(want))
		if err != nil {
			return err
		}

		if _, err := f.digestPath(logger, h, target); err != nil {
			stats.unreadable++
			fmt.Fprintf(f.out, "%s: FAILED open or read\n", target)
			logger.Error("read failed", "path", target, "error", err)
			continue
		}

		if bytes.Equal(h.Sum(nil), want) {
			stats.ok++
			fmt.Fprintf(f.out, "%s: OK\n", target)
		} else {
			stats.mismatched++
			fmt.Fprintf(f.out, "%s: FAILED\n", target)
		}
	}

	return scanner.Err()
}

// parseChecksumLine splits a "<hex>  <path>" line as produced by runSum.
// The coreutils binary marker "*" in front of the path is accepted too.
func parseChecksumLine(line string) (sumHex, target string, ok bool) {
	i := strings.IndexByte(line, ' ')
	if i < 1 || i == len(line)-1 {
		return "", "", false
	}

	sumHex = line[:i]

	target = line[i+1:]
	target = strings.TrimPrefix(target, " ")
	target = strings.TrimPrefix(target, "*")
	if target == "" {
		return "", "", false
	}

	return sumHex, target, true
}

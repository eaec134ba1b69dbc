package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/blake2s"
	"github.com/hupe1980/blake2s/internal/mmap"
)

// stdinName is the pseudo path selecting standard input.
const stdinName = "-"

type sumResult struct {
	display string
	sum     string
	err     error
}

// runSum hashes every input in parallel and prints one "<hex>  <path>" line
// per input, in argument order. Failed inputs are logged and reported in the
// returned error; the remaining inputs are still hashed and printed.
func (f *rootFlags) runSum(logger *slog.Logger, cfg *hashConfig, paths []string) error {
	if len(paths) == 0 {
		paths = []string{stdinName}
	}

	start := time.Now()

	var bytesHashed atomic.Int64

	results := make([]sumResult, len(paths))

	g := &errgroup.Group{}
	g.SetLimit(f.jobs)

	for i, path := range paths {
		i, path := i, path // per-iteration copies; required while go.mod targets go < 1.22

		g.Go(func() error {
			sum, n, err := f.hashOne(logger, cfg, path)
			results[i] = sumResult{display: path, sum: sum, err: err}

			if err != nil {
				logger.Error("hash failed", "path", path, "error", err)
				return err
			}

			bytesHashed.Add(n)
			return nil
		})
	}

	// Without a context the group never cancels: every input is hashed even
	// after a failure, Wait only reports that one occurred.
	failed := g.Wait() != nil

	for _, r := range results {
		if r.err != nil {
			continue
		}
		fmt.Fprintf(f.out, "%s  %s\n", r.sum, r.display)
	}

	logger.Debug("hashing complete",
		"inputs", len(paths),
		"bytes", bytesHashed.Load(),
		"duration", time.Since(start),
	)

	if failed {
		n := 0
		for _, r := range results {
			if r.err != nil {
				n++
			}
		}
		return fmt.Errorf("%d of %d inputs failed", n, len(paths))
	}

	return nil
}

// hashOne computes the digest of a single input and returns it hex encoded
// along with the number of bytes consumed.
func (f *rootFlags) hashOne(logger *slog.Logger, cfg *hashConfig, path string) (string, int64, error) {
	h, err := cfg.newDigest()
	if err != nil {
		return "", 0, err
	}

	n, err := f.digestPath(logger, h, path)
	if err != nil {
		return "", 0, err
	}

	return h.SumHex(), n, nil
}

// digestPath absorbs the named input into h, memory-mapping regular files
// that meet the size threshold and streaming everything else.
func (f *rootFlags) digestPath(logger *slog.Logger, h *blake2s.Digest, path string) (int64, error) {
	if path == stdinName {
		return io.Copy(h, f.in)
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}

	if info.Mode().IsRegular() && info.Size() >= f.mmapMin {
		m, err := mmap.Open(path)
		if err == nil {
			defer m.Close()

			start := time.Now()
			h.Write(m.Data)
			logger.Debug("hashed mapped file", "path", path, "bytes", m.Size(), "duration", time.Since(start))

			return int64(m.Size()), nil
		}

		logger.Debug("mmap failed, falling back to buffered read", "path", path, "error", err)
	}

	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	start := time.Now()
	n, err := io.Copy(h, file)
	if err != nil {
		return 0, err
	}
	logger.Debug("hashed file", "path", path, "bytes", n, "duration", time.Since(start))

	return n, nil
}

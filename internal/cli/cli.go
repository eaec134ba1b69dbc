// Package cli implements command-line parsing and commands for blake2s-sum.
package cli

import (
	"encoding/hex"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hupe1980/blake2s"
	apperrors "github.com/hupe1980/blake2s/internal/errors"
	"github.com/hupe1980/blake2s/internal/logging"
)

const longDescription = `blake2s-sum computes BLAKE2s digests of files or standard input, in the
spirit of sha256sum. With --check it verifies previously produced checksum
lists instead. A key turns the digest into a MAC; salt and personalization
separate application domains.`

const examples = `  # Hash files, largest inputs memory-mapped
  blake2s-sum go.mod LICENSE

  # 128-bit keyed digest of standard input
  echo -n secret | blake2s-sum -l 128 --key 000102030405060708090a0b0c0d0e0f

  # Write a checksum list, then verify it
  blake2s-sum *.go > SUMS
  blake2s-sum --check SUMS`

// rootFlags holds the flag values and streams of the root command.
type rootFlags struct {
	length   int    // digest length in bits
	keyHex   string // hex encoded MAC key
	salt     string
	personal string
	check    bool
	jobs     int
	mmapMin  int64
	logLevel string

	out    io.Writer
	errOut io.Writer
	in     io.Reader
}

// hashConfig is a validated digest configuration shared by all inputs of
// one invocation.
type hashConfig struct {
	size     int
	key      []byte
	salt     []byte
	personal []byte
}

// NewRootCommand creates the blake2s-sum root command wired to the given
// streams.
func NewRootCommand(out, errOut io.Writer, in io.Reader) *cobra.Command {
	f := &rootFlags{out: out, errOut: errOut, in: in}

	cmd := &cobra.Command{
		Use:           "blake2s-sum [flags] [FILE ...]",
		Short:         "Compute and check BLAKE2s checksums",
		Long:          longDescription,
		Example:       examples,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.New(f.errOut, logging.ParseLevel(f.logLevel))

			cfg, err := f.resolve()
			if err != nil {
				return fmt.Errorf("%w: %w", err, apperrors.ErrUsage)
			}

			if f.check {
				return f.runCheck(logger, cfg, args)
			}

			return f.runSum(logger, cfg, args)
		},
	}

	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", err, apperrors.ErrUsage)
	})

	f.addFlags(cmd.Flags())
	cmd.AddCommand(NewVersionCommand(out))

	return cmd
}

func (f *rootFlags) addFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&f.length, "length", "l", 8*blake2s.Size, "digest length in bits; a multiple of 8, at most 256")
	fs.StringVar(&f.keyHex, "key", "", "hex encoded key for MAC mode, up to 32 bytes")
	fs.StringVar(&f.salt, "salt", "", "salt, up to 8 bytes")
	fs.StringVar(&f.personal, "personal", "", "personalization string, up to 8 bytes")
	fs.BoolVarP(&f.check, "check", "c", false, "read checksum lists from the FILEs and verify them")
	fs.IntVarP(&f.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "number of files hashed in parallel")
	fs.Int64Var(&f.mmapMin, "mmap-min", 1<<20, "memory-map regular files of at least this many bytes")
	fs.StringVar(&f.logLevel, "log-level", "info", "log level: debug, info, warn or error")
}

// resolve validates the flag values and builds the digest configuration.
func (f *rootFlags) resolve() (*hashConfig, error) {
	if f.jobs < 1 {
		return nil, fmt.Errorf("--jobs must be at least 1, got %d", f.jobs)
	}

	if f.length < 8 || f.length > 8*blake2s.Size || f.length%8 != 0 {
		return nil, fmt.Errorf("--length must be a multiple of 8 between 8 and %d, got %d", 8*blake2s.Size, f.length)
	}

	key, err := hex.DecodeString(f.keyHex)
	if err != nil {
		return nil, fmt.Errorf("decode --key: %w", err)
	}

	cfg := &hashConfig{
		size:     f.length / 8,
		key:      key,
		salt:     []byte(f.salt),
		personal: []byte(f.personal),
	}

	// Surface key, salt and personalization violations before any file is
	// touched.
	if _, err := cfg.newDigest(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *hashConfig) newDigest() (*blake2s.Digest, error) {
	return c.newDigestSize(c.size)
}

func (c *hashConfig) newDigestSize(size int) (*blake2s.Digest, error) {
	return blake2s.New(func(o *blake2s.Options) {
		o.Size = size
		o.Key = c.key
		o.Salt = c.salt
		o.Personal = c.personal
	})
}

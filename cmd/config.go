package cmd

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/abhisek/mindgym/internal/challenge"
	"github.com/abhisek/mindgym/internal/web"
)

// Config holds every command-line setting. Each flag can also be set
// through a MINDGYM_ environment variable; an explicit flag wins.
type Config struct {
	bind           string
	port           int
	prefix         string
	sessionTimeout time.Duration
	tlsCert        string
	tlsKey         string
	profile        bool
	riddles        string
	seed           uint64
	logLevel       string
	verbose        bool
}

func (c *Config) web() web.Config {
	return web.Config{
		Bind:    c.bind,
		Port:    c.port,
		Prefix:  c.prefix,
		TLSCert: c.tlsCert,
		TLSKey:  c.tlsKey,
		Profile: c.profile,
		Version: version,
	}
}

// logger builds the text logger on stderr.
func (c *Config) logger() (*slog.Logger, error) {
	lvl := slog.LevelInfo
	switch strings.ToLower(c.logLevel) {
	case "", "info":
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid log level %q (want debug, info, warn or error)", c.logLevel)
	}
	if c.verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}

// bank returns the riddle bank named by --riddles, or the built-in one.
func (c *Config) bank() (*challenge.Bank, error) {
	if c.riddles == "" {
		return challenge.DefaultBank(), nil
	}
	b, err := challenge.LoadBank(c.riddles)
	if err != nil {
		return nil, fmt.Errorf("load riddles: %w", err)
	}
	return b, nil
}

// generatorFactory returns a constructor for per-session generators.
// A non-zero --seed makes the n-th session's puzzles reproducible.
func (c *Config) generatorFactory(bank *challenge.Bank) func() challenge.Generator {
	var n atomic.Uint64
	return func() challenge.Generator {
		if c.seed == 0 {
			return challenge.NewRandomGenerator(bank, nil)
		}
		return challenge.NewRandomGenerator(bank, rand.NewPCG(c.seed, n.Add(1)))
	}
}

func registerPersistentFlags(cmd *cobra.Command) {
	fs := cmd.PersistentFlags()
	fs.StringVar(&cfg.riddles, "riddles", "", "path to a JSON or TOML riddle bank (env: MINDGYM_RIDDLES)")
	fs.Uint64Var(&cfg.seed, "seed", 0, "seed for puzzle generation, 0 for random (env: MINDGYM_SEED)")
	bindEnv(fs)
}

func registerServeFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: MINDGYM_BIND)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: MINDGYM_PORT)")
	fs.StringVar(&cfg.prefix, "prefix", "", "path to prepend to all URLs, for use behind reverse proxy (env: MINDGYM_PREFIX)")
	fs.DurationVar(&cfg.sessionTimeout, "session-timeout", 60*time.Minute, "time before idle sessions are ended, 0 to keep forever (env: MINDGYM_SESSION_TIMEOUT)")
	fs.StringVar(&cfg.tlsCert, "tls-cert", "", "path to tls certificate (env: MINDGYM_TLS_CERT)")
	fs.StringVar(&cfg.tlsKey, "tls-key", "", "path to tls keyfile (env: MINDGYM_TLS_KEY)")
	fs.BoolVar(&cfg.profile, "profile", false, "register net/http/pprof handlers (env: MINDGYM_PROFILE)")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "log level: debug, info, warn or error (env: MINDGYM_LOG_LEVEL)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "log at debug level (env: MINDGYM_VERBOSE)")
	bindEnv(fs)
}

// bindEnv seeds unset flags in fs from MINDGYM_* environment variables.
func bindEnv(fs *pflag.FlagSet) {
	v := viper.New()
	v.SetEnvPrefix("MINDGYM")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})
}

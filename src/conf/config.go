package conf

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvHistory = "ARITH_HISTORY"
	EnvPrompt  = "ARITH_PROMPT"
	EnvDebug   = "ARITH_DEBUG"
	EnvNoColor = "ARITH_NOCOLOR"
)

// DefaultPrompt is the repl prompt used when ARITH_PROMPT is unset.
const DefaultPrompt = "> "

// Config is the runtime configuration of the cli and repl.
type Config struct {
	HistoryFile string // empty disables repl history
	Prompt      string
	Debug       bool
	NoColor     bool
}

// Load reads the given env files, if they exist, into the process environment
// and then builds a Config from it. Variables that are already set are not
// overridden by the files.
func Load(envfiles ...string) (Config, error) {
	for _, path := range envfiles {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return Config{}, fmt.Errorf("loading %v: %w", path, err)
		}
	}

	cfg := Config{
		HistoryFile: os.Getenv(EnvHistory),
		Prompt:      os.Getenv(EnvPrompt),
	}
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultPrompt
	}
	var err error
	if cfg.Debug, err = envBool(EnvDebug); err != nil {
		return Config{}, err
	} else if cfg.NoColor, err = envBool(EnvNoColor); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func envBool(name string) (bool, error) {
	val := os.Getenv(name)
	if val == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid value %q for %v", val, name)
	}
	return b, nil
}

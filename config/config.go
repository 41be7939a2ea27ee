// Package config collects the launch options of the program. Options are
// taken from, in increasing order of precedence: the built-in defaults, the
// simon.env file in the resources directory, the process environment and
// finally the command line.
package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jetsetilly/simon/hardware/timer"
	"github.com/jetsetilly/simon/resources"
	"github.com/joho/godotenv"
)

// EnvFile is the name of the dotenv file in the resources directory
const EnvFile = "simon.env"

// Names of the environment keys
const (
	KeyTick     = "SIMON_TICK"
	KeyFrontend = "SIMON_FRONTEND"
	KeyAudio    = "SIMON_AUDIO"
	KeySeed     = "SIMON_SEED"
	KeyWav      = "SIMON_WAV"
)

var keys = []string{KeyTick, KeyFrontend, KeyAudio, KeySeed, KeyWav}

// List of valid front-ends
const (
	FrontendEbiten   = "EBITEN"
	FrontendTerminal = "TERMINAL"
)

// Config is the set of launch options
type Config struct {
	// period of the tick source
	Tick time.Duration

	// the front-end to use. one of the Frontend values
	Frontend string

	// whether the buzzer is heard
	Audio bool

	// seed for the game's random sequence. zero means a random seed
	Seed uint64

	// filename to record the buzzer output to. empty string means no
	// recording
	Wav string

	// run the diagnostic monitor instead of the game
	Diag bool

	// start the runtime statistics server. only available if the program has
	// been built with the statsview tag
	Statsview bool

	// echo the log to stderr
	Log bool

	// create a CPU profile
	Profile bool
}

// Default returns the built-in defaults
func Default() Config {
	return Config{
		Tick:     timer.DefaultPeriod,
		Frontend: FrontendEbiten,
		Audio:    true,
	}
}

func (cfg Config) String() string {
	return fmt.Sprintf("tick=%v frontend=%s audio=%v seed=%d wav=%q diag=%v",
		cfg.Tick, cfg.Frontend, cfg.Audio, cfg.Seed, cfg.Wav, cfg.Diag)
}

// Apply updates the configuration with the values in the map. Keys that are
// not present in the map are left unchanged
func (cfg *Config) Apply(env map[string]string) error {
	for _, k := range keys {
		v, ok := env[k]
		if !ok {
			continue
		}
		v = strings.TrimSpace(v)

		switch k {
		case KeyTick:
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("config: %s: %w", k, err)
			}
			cfg.Tick = d
		case KeyFrontend:
			cfg.Frontend = strings.ToUpper(v)
		case KeyAudio:
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("config: %s: %w", k, err)
			}
			cfg.Audio = b
		case KeySeed:
			s, err := strconv.ParseUint(v, 0, 64)
			if err != nil {
				return fmt.Errorf("config: %s: %w", k, err)
			}
			cfg.Seed = s
		case KeyWav:
			cfg.Wav = v
		}
	}
	return nil
}

// Validate returns an error if any value is out of range
func (cfg Config) Validate() error {
	if cfg.Tick <= 0 {
		return fmt.Errorf("config: tick period must be positive: %v", cfg.Tick)
	}
	switch cfg.Frontend {
	case FrontendEbiten, FrontendTerminal:
	default:
		return fmt.Errorf("config: unknown frontend: %s", cfg.Frontend)
	}
	return nil
}

// ParseDotEnv reads a dotenv formatted string
func ParseDotEnv(s string) (map[string]string, error) {
	env, err := godotenv.Unmarshal(s)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return env, nil
}

// processEnv returns the keys that are set in the process environment
func processEnv() map[string]string {
	env := make(map[string]string)
	for _, k := range keys {
		if v, ok := os.LookupEnv(k); ok {
			env[k] = v
		}
	}
	return env
}

// Flags parses the command line arguments. The current values of cfg are used
// as the defaults for each flag
func (cfg *Config) Flags(name string, args []string, output io.Writer) error {
	flgs := flag.NewFlagSet(name, flag.ContinueOnError)
	flgs.SetOutput(output)

	var seed string

	flgs.DurationVar(&cfg.Tick, "tick", cfg.Tick, "period of the tick source")
	flgs.StringVar(&cfg.Frontend, "frontend", cfg.Frontend, "front-end to use: EBITEN or TERMINAL")
	flgs.BoolVar(&cfg.Audio, "audio", cfg.Audio, "play the buzzer through the audio device")
	flgs.StringVar(&seed, "seed", strconv.FormatUint(cfg.Seed, 10), "seed for the random sequence (0 for a random seed)")
	flgs.StringVar(&cfg.Wav, "wav", cfg.Wav, "record the buzzer to a WAV file")
	flgs.BoolVar(&cfg.Diag, "diag", cfg.Diag, "run the diagnostics monitor instead of the game")
	flgs.BoolVar(&cfg.Statsview, "statsview", cfg.Statsview, "run the runtime statistics server")
	flgs.BoolVar(&cfg.Log, "log", cfg.Log, "echo the log to stderr")
	flgs.BoolVar(&cfg.Profile, "profile", cfg.Profile, "create a CPU profile")

	err := flgs.Parse(args)
	if err != nil {
		return err
	}

	if len(flgs.Args()) > 0 {
		return fmt.Errorf("config: unexpected arguments: %s", strings.Join(flgs.Args(), " "))
	}

	cfg.Seed, err = strconv.ParseUint(seed, 0, 64)
	if err != nil {
		return fmt.Errorf("config: seed: %w", err)
	}
	cfg.Frontend = strings.ToUpper(cfg.Frontend)

	return nil
}

// Load the configuration from all sources
func Load(name string, args []string, output io.Writer) (Config, error) {
	cfg := Default()

	s, err := resources.Read(EnvFile)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if s != "" {
		env, err := ParseDotEnv(s)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Apply(env); err != nil {
			return cfg, err
		}
	}

	if err := cfg.Apply(processEnv()); err != nil {
		return cfg, err
	}

	if err := cfg.Flags(name, args, output); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

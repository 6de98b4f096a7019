// Package config reads runtime settings from the environment, optionally
// seeded from a .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvSeed       = "LANERUNNER_SEED"
	EnvMute       = "LANERUNNER_MUTE"
	EnvFullscreen = "LANERUNNER_FULLSCREEN"
	EnvWidth      = "LANERUNNER_WIDTH"
	EnvHeight     = "LANERUNNER_HEIGHT"
)

// Window defaults.
const (
	DefaultWidth  = 1000
	DefaultHeight = 800
)

type Settings struct {
	Seed       uint64
	Mute       bool
	Fullscreen bool
	Width      int
	Height     int
}

// Load reads .env (when present) and then the LANERUNNER_* variables.
// Variables already set in the process environment win over .env.
func Load() (Settings, error) {
	return LoadFiles(".env")
}

// LoadFiles is Load with explicit env files. Missing files are skipped.
func LoadFiles(files ...string) (Settings, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	s := Settings{
		Seed:   uint64(time.Now().UnixNano()),
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}

	var err error
	if v := os.Getenv(EnvSeed); v != "" {
		if s.Seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return Settings{}, fmt.Errorf("%s: %w", EnvSeed, err)
		}
	}
	if s.Mute, err = envBool(EnvMute); err != nil {
		return Settings{}, err
	}
	if s.Fullscreen, err = envBool(EnvFullscreen); err != nil {
		return Settings{}, err
	}
	if s.Width, err = envSize(EnvWidth, s.Width); err != nil {
		return Settings{}, err
	}
	if s.Height, err = envSize(EnvHeight, s.Height); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func envBool(key string) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func envSize(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %d", key, n)
	}
	return n, nil
}

package env

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

func isLocal(env string) bool {
	return env == "" || env == "local"
}

// LoadDotEnv loads variables from ENV_PATH, or from the first of defaultPaths
// that exists. Variables already present in the environment win. Outside
// local mode a missing file is not an error.
func LoadDotEnv(env string, defaultPaths ...string) error {
	paths := defaultPaths
	if p := os.Getenv("ENV_PATH"); p != "" {
		paths = []string{p}
	}

	for _, path := range paths {
		err := godotenv.Load(path)
		if err == nil {
			slog.Debug("Loaded .env file", "path", path)
			return nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	if isLocal(env) {
		slog.Warn("No .env file found in local mode", "paths", paths)
		return fs.ErrNotExist
	}
	slog.Debug("Skipping .env", "env", env)
	return nil
}

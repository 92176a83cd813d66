package envutil

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFileType is returned when the file extension is not recognized.
var ErrUnknownFileType = errors.New("env file doesn't have a known file suffix")

// LoadEnvFile reads variables from a file. The format follows the extension:
//   - .env files are KEY=VALUE lines parsed by godotenv
//   - .yml/.yaml files carry a top-level "env" mapping of strings
func LoadEnvFile(path string) (map[string]string, error) {
	name := strings.ToLower(path)

	switch {
	case strings.HasSuffix(name, ".env"):
		return godotenv.Read(path)
	case strings.HasSuffix(name, ".yml"), strings.HasSuffix(name, ".yaml"):
		return loadYAMLFile(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFileType, path)
	}
}

// Apply loads path and sets every variable it defines in the process
// environment. Variables already present in the environment win.
func Apply(path string) error {
	vars, err := LoadEnvFile(path)
	if err != nil {
		return err
	}

	for key, value := range vars {
		if _, exists := os.LookupEnv(key); exists {
			continue
		}

		if err := os.Setenv(key, value); err != nil { //nolint:noinlineerr
			return err
		}
	}

	return nil
}

type yamlEnvFile struct {
	Env map[string]string `yaml:"env"`
}

func loadYAMLFile(path string) (map[string]string, error) {
	bts, err := os.ReadFile(path) // #nosec G304 -- path is the intended file to load
	if err != nil {
		return nil, err
	}

	env := &yamlEnvFile{}

	if err := yaml.Unmarshal(bts, env); err != nil { //nolint:noinlineerr
		return nil, err
	}

	return env.Env, nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"

	"github.com/cloud-ru/homecost-go/internal/calculations"
)

// LoadScenario читает сценарий из TOML или YAML файла, формат выбирается по расширению.
// Незаданные поля остаются нулевыми: без продажи, без HOA и расходов на оформление.
func LoadScenario(path string) (calculations.Scenario, error) {
	var sc calculations.Scenario

	data, err := os.ReadFile(path)
	if err != nil {
		return sc, fmt.Errorf("reading scenario: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &sc); err != nil {
			return sc, fmt.Errorf("parsing scenario %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.UnmarshalStrict(data, &sc); err != nil {
			return sc, fmt.Errorf("parsing scenario %s: %w", path, err)
		}
	default:
		return sc, fmt.Errorf("unsupported scenario format %q (want .toml, .yaml or .yml)", ext)
	}

	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return sc, nil
}

// Package config loads the closed ingredient-normalization tables (alias
// table, unit table) from YAML via viper, per spec.md §9: "large closed
// tables belong in configuration data, not code."
package config

import (
	"fmt"

	"github.com/kjanat/poo-tracker/backend/internal/normalize"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// aliasFile is the on-disk shape of the alias table file: a flat map from
// surface form to canonical normalized form.
type aliasFile struct {
	Aliases map[string]string `mapstructure:"aliases"`
}

// unitFile is the on-disk shape of the unit table file: a flat map from
// unit name to grams-per-unit.
type unitFile struct {
	Units map[string]float64 `mapstructure:"units"`
}

// LoadTables reads the alias and unit YAML files at the given paths and
// builds a normalize.Tables. A missing file is not an error: it falls back
// to the package's documented defaults and logs a warning, since these
// tables are allowed to grow from an empty seed over the life of the
// deployment.
func LoadTables(aliasesPath, unitsPath string, logger *zap.Logger) (normalize.Tables, error) {
	aliases, err := loadAliases(aliasesPath, logger)
	if err != nil {
		return normalize.Tables{}, fmt.Errorf("loading alias table: %w", err)
	}
	units, err := loadUnits(unitsPath, logger)
	if err != nil {
		return normalize.Tables{}, fmt.Errorf("loading unit table: %w", err)
	}
	return normalize.NewTables(aliases, units), nil
}

func loadAliases(path string, logger *zap.Logger) (map[string]string, error) {
	if path == "" {
		return normalize.DefaultAliases(), nil
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.Warn("ingredient alias table not found, using defaults", zap.String("path", path))
			return normalize.DefaultAliases(), nil
		}
		return nil, err
	}
	var f aliasFile
	if err := v.Unmarshal(&f); err != nil {
		return nil, err
	}
	if len(f.Aliases) == 0 {
		return normalize.DefaultAliases(), nil
	}
	return f.Aliases, nil
}

func loadUnits(path string, logger *zap.Logger) (map[string]float64, error) {
	if path == "" {
		return normalize.DefaultUnitGrams(), nil
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.Warn("ingredient unit table not found, using defaults", zap.String("path", path))
			return normalize.DefaultUnitGrams(), nil
		}
		return nil, err
	}
	var f unitFile
	if err := v.Unmarshal(&f); err != nil {
		return nil, err
	}
	if len(f.Units) == 0 {
		return normalize.DefaultUnitGrams(), nil
	}
	return f.Units, nil
}

package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// defaultSeedExercises serves catalog reads until the first successful
// refresh. Deliberately short: the backend list replaces it wholesale.
var defaultSeedExercises = []string{
	"Squat",
	"Bench Press",
	"Deadlift",
	"Overhead Press",
	"Barbell Row",
	"Pull Up",
	"Dip",
	"Lunge",
	"Romanian Deadlift",
	"Lat Pulldown",
}

type seedFile struct {
	Exercises []string `yaml:"exercises"`
}

// SeedExercises returns the seed catalog: the YAML list at path when given
// and valid, otherwise the built-in defaults. A broken file is logged and
// ignored, never fatal.
func SeedExercises(path string) []string {
	if path == "" {
		return append([]string(nil), defaultSeedExercises...)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		Logger.Warnf("Catalog seed file %s not readable, using built-in seed: %v", path, err)
		return append([]string(nil), defaultSeedExercises...)
	}

	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil || len(f.Exercises) == 0 {
		Logger.Warnf("Catalog seed file %s invalid or empty, using built-in seed", path)
		return append([]string(nil), defaultSeedExercises...)
	}

	return f.Exercises
}

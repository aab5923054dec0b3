package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeNormsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "norms.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadNormsFile(t *testing.T) {
	path := writeNormsFile(t, `norms:
  - domain: memory
    age_group: "8-10"
    clinical_group: TypicallyDeveloping
    mean: 75
    standard_deviation: 12
    sample_size: 240
    reliability: 0.86
    source_reference: Gathercole et al. (2004)
  - domain: impulse_control
    age_group: "5-7"
    clinical_group: ADHD
    mean: 55
    standard_deviation: 16
`)

	norms, err := LoadNormsFile(path)
	require.NoError(t, err)
	require.Len(t, norms.Norms, 2)

	first := norms.Norms[0]
	assert.Equal(t, "memory", first.Domain)
	assert.Equal(t, "8-10", first.AgeGroup)
	assert.Equal(t, "TypicallyDeveloping", first.ClinicalGroup)
	assert.Equal(t, 75.0, first.Mean)
	assert.Equal(t, 12.0, first.StandardDeviation)
	assert.Equal(t, 240, first.SampleSize)
	assert.Equal(t, 0.86, first.Reliability)
	assert.Equal(t, "Gathercole et al. (2004)", first.SourceReference)

	second := norms.Norms[1]
	assert.Equal(t, "ADHD", second.ClinicalGroup)
	assert.Empty(t, second.SourceReference, "source reference is optional")
}

func TestLoadNormsFileMissing(t *testing.T) {
	_, err := LoadNormsFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read norms file")
}

func TestLoadNormsFileMalformed(t *testing.T) {
	path := writeNormsFile(t, "norms: [not: {valid")
	_, err := LoadNormsFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal norms YAML")
}

func TestLoadNormsFileValidation(t *testing.T) {
	t.Run("missing domain", func(t *testing.T) {
		path := writeNormsFile(t, `norms:
  - age_group: "8-10"
    mean: 75
    standard_deviation: 12
`)
		_, err := LoadNormsFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "domain and age_group are required")
	})

	t.Run("non-positive standard deviation", func(t *testing.T) {
		path := writeNormsFile(t, `norms:
  - domain: memory
    age_group: "8-10"
    mean: 75
    standard_deviation: 0
`)
		_, err := LoadNormsFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "standard_deviation must be positive")
	})
}

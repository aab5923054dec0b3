// normative_data.go
package models

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// NormativeData is one reference row: population mean and spread for a
// domain within an age band and clinical group. Rows are seeded at startup
// and read-only afterwards.
type NormativeData struct {
	ID                uint   `gorm:"primaryKey"`
	Domain            string `gorm:"size:50;not null"`
	AgeGroup          string `gorm:"size:10;not null"`
	ClinicalGroup     string `gorm:"size:30;not null"`
	MeanScore         float64
	StandardDeviation float64
	SampleSize        int
	Reliability       float64
	SourceReference   string `gorm:"size:255"`
	CreatedAt         time.Time
}

// NormEntry matches one norms YAML record.
type NormEntry struct {
	Domain            string  `yaml:"domain"`
	AgeGroup          string  `yaml:"age_group"`
	ClinicalGroup     string  `yaml:"clinical_group"`
	Mean              float64 `yaml:"mean"`
	StandardDeviation float64 `yaml:"standard_deviation"`
	SampleSize        int     `yaml:"sample_size"`
	Reliability       float64 `yaml:"reliability"`
	SourceReference   string  `yaml:"source_reference,omitempty"`
}

// NormsFile holds all seed records from the norms YAML file.
type NormsFile struct {
	Norms []NormEntry `yaml:"norms"`
}

// LoadNormsFile reads and parses the normative seed file.
func LoadNormsFile(path string) (*NormsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read norms file: %w", err)
	}

	var norms NormsFile
	if err := yaml.Unmarshal(data, &norms); err != nil {
		return nil, fmt.Errorf("failed to unmarshal norms YAML: %w", err)
	}

	for i, n := range norms.Norms {
		if n.Domain == "" || n.AgeGroup == "" {
			return nil, fmt.Errorf("norms entry %d: domain and age_group are required", i)
		}
		if n.StandardDeviation <= 0 {
			return nil, fmt.Errorf("norms entry %d (%s/%s): standard_deviation must be positive", i, n.Domain, n.AgeGroup)
		}
	}

	return &norms, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"focusgame-go/internal/database"
	"focusgame-go/internal/models"
	"focusgame-go/internal/scoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LookupNorm returns the normative reference for a domain, age band and
// clinical group. A clinical group without a row of its own falls back to
// the TypicallyDeveloping row; a full miss returns ErrNormativeDataNotFound
// and the caller decides whether to use hardcoded defaults.
func LookupNorm(ctx context.Context, domain string, age scoring.AgeGroup, clinicalGroup string) (*scoring.NormativeReference, error) {
	if age == scoring.AgeGroupUnknown {
		return nil, fmt.Errorf("%w: age group unknown", scoring.ErrNormativeDataNotFound)
	}
	if clinicalGroup == "" {
		clinicalGroup = scoring.GroupTypicallyDeveloping
	}

	row, err := findNorm(ctx, domain, age, clinicalGroup)
	if err == nil {
		return normReference(row), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if clinicalGroup != scoring.GroupTypicallyDeveloping {
		row, err = findNorm(ctx, domain, age, scoring.GroupTypicallyDeveloping)
		if err == nil {
			return normReference(row), nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w: %s/%s/%s", scoring.ErrNormativeDataNotFound, domain, age, clinicalGroup)
}

func findNorm(ctx context.Context, domain string, age scoring.AgeGroup, clinicalGroup string) (*models.NormativeData, error) {
	var row models.NormativeData
	err := database.DB.WithContext(ctx).
		Where("domain = ? AND age_group = ? AND clinical_group = ?", domain, string(age), clinicalGroup).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func normReference(row *models.NormativeData) *scoring.NormativeReference {
	return &scoring.NormativeReference{
		Domain:            row.Domain,
		AgeGroup:          scoring.AgeGroup(row.AgeGroup),
		ClinicalGroup:     row.ClinicalGroup,
		Mean:              row.MeanScore,
		StandardDeviation: row.StandardDeviation,
		SampleSize:        row.SampleSize,
		Reliability:       row.Reliability,
	}
}

// SeedNormativeData loads the reference table from the norms YAML file on
// first start. A non-empty table is left untouched.
func SeedNormativeData(ctx context.Context, log *zap.Logger, path string) error {
	var count int64
	if err := database.DB.WithContext(ctx).Model(&models.NormativeData{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count normative data: %w", err)
	}
	if count > 0 {
		log.Debug("Normative data already seeded", zap.Int64("rows", count))
		return nil
	}

	file, err := models.LoadNormsFile(path)
	if err != nil {
		return err
	}

	rows := make([]models.NormativeData, 0, len(file.Norms))
	for _, n := range file.Norms {
		rows = append(rows, models.NormativeData{
			Domain:            n.Domain,
			AgeGroup:          n.AgeGroup,
			ClinicalGroup:     n.ClinicalGroup,
			MeanScore:         n.Mean,
			StandardDeviation: n.StandardDeviation,
			SampleSize:        n.SampleSize,
			Reliability:       n.Reliability,
			SourceReference:   n.SourceReference,
		})
	}
	if len(rows) == 0 {
		log.Warn("Norms file contains no entries", zap.String("file", path))
		return nil
	}

	if err := database.DB.WithContext(ctx).CreateInBatches(rows, 50).Error; err != nil {
		return fmt.Errorf("failed to seed normative data: %w", err)
	}
	log.Info("Seeded normative data", zap.Int("rows", len(rows)), zap.String("file", path))
	return nil
}

package scoring

import "gonum.org/v1/gonum/stat/distuv"

// Domain identifiers used in normative lookups and persisted analyses.
const (
	DomainAttention         = "attention"
	DomainMemory            = "memory"
	DomainImpulseControl    = "impulse_control"
	DomainExecutiveFunction = "executive_function"
)

// Clinical group identifiers carried on normative reference rows.
const (
	GroupTypicallyDeveloping = "TypicallyDeveloping"
	GroupADHD                = "ADHD"
)

// Wechsler-style classification labels keyed off percentile bands.
const (
	ClassificationVerySuperior = "Very Superior"
	ClassificationSuperior     = "Superior"
	ClassificationHighAverage  = "High Average"
	ClassificationAverage      = "Average"
	ClassificationLowAverage   = "Low Average"
	ClassificationBorderline   = "Borderline"
	ClassificationExtremelyLow = "Extremely Low"
)

// NormativeReference is one row of the reference table: the population mean
// and spread for a domain within an age band and clinical group. Treated as
// read-only at comparison time.
type NormativeReference struct {
	Domain            string   `json:"domain"`
	AgeGroup          AgeGroup `json:"age_group"`
	ClinicalGroup     string   `json:"clinical_group"`
	Mean              float64  `json:"mean"`
	StandardDeviation float64  `json:"standard_deviation"`
	SampleSize        int      `json:"sample_size"`
	Reliability       float64  `json:"reliability"`
}

// ComparisonResult places a domain score against a normative reference.
type ComparisonResult struct {
	ZScore         float64 `json:"z_score"`
	Percentile     float64 `json:"percentile"`
	Classification string  `json:"classification"`
}

var unitNormal = distuv.UnitNormal

// Compare converts a domain score into a z-score, percentile and
// classification against the given reference. A non-positive standard
// deviation yields z=0 rather than dividing by zero.
func Compare(score float64, ref NormativeReference) ComparisonResult {
	z := 0.0
	if ref.StandardDeviation > 0 {
		z = (score - ref.Mean) / ref.StandardDeviation
	}
	percentile := 100 * unitNormal.CDF(z)
	return ComparisonResult{
		ZScore:         round2(z),
		Percentile:     round1(percentile),
		Classification: Classify(percentile),
	}
}

// Classify buckets a percentile into its classification label. Bands are
// contiguous and exhaustive over [0,100].
func Classify(percentile float64) string {
	switch {
	case percentile >= 98:
		return ClassificationVerySuperior
	case percentile >= 91:
		return ClassificationSuperior
	case percentile >= 75:
		return ClassificationHighAverage
	case percentile >= 25:
		return ClassificationAverage
	case percentile >= 9:
		return ClassificationLowAverage
	case percentile >= 2:
		return ClassificationBorderline
	default:
		return ClassificationExtremelyLow
	}
}

// DefaultNorm is the hardcoded fallback reference for a domain, used when
// the reference table has no row for the requested age and clinical group.
func DefaultNorm(domain string) NormativeReference {
	switch domain {
	case DomainMemory:
		return NormativeReference{Domain: domain, Mean: 75, StandardDeviation: 12}
	case DomainImpulseControl:
		return NormativeReference{Domain: domain, Mean: 70, StandardDeviation: 15}
	case DomainExecutiveFunction:
		return NormativeReference{Domain: domain, Mean: 73, StandardDeviation: 13}
	default:
		return NormativeReference{Domain: domain, Mean: 70, StandardDeviation: 15}
	}
}

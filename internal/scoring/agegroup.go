package scoring

import "time"

// AgeGroup is the normative age bucket a player is scored against.
type AgeGroup string

const (
	AgeGroup5to7   AgeGroup = "5-7"
	AgeGroup8to10  AgeGroup = "8-10"
	AgeGroup11to13 AgeGroup = "11-13"
	AgeGroup14to16 AgeGroup = "14-16"
	AgeGroupAdult  AgeGroup = "adult"

	// AgeGroupUnknown is used when no date of birth is on record. Lookup
	// tables fall back to their defaults and norm lookups miss.
	AgeGroupUnknown AgeGroup = ""
)

// AgeGroupForAge maps a numeric age to its bucket. Ages 5-16 fall into
// fixed three-year bands; everything else is treated as adult.
func AgeGroupForAge(age int) AgeGroup {
	switch {
	case age >= 5 && age <= 7:
		return AgeGroup5to7
	case age >= 8 && age <= 10:
		return AgeGroup8to10
	case age >= 11 && age <= 13:
		return AgeGroup11to13
	case age >= 14 && age <= 16:
		return AgeGroup14to16
	default:
		return AgeGroupAdult
	}
}

// AgeGroupForBirthDate computes the age in whole years at now and buckets it.
func AgeGroupForBirthDate(dateOfBirth, now time.Time) AgeGroup {
	age := now.Year() - dateOfBirth.Year()
	if now.Month() < dateOfBirth.Month() ||
		(now.Month() == dateOfBirth.Month() && now.Day() < dateOfBirth.Day()) {
		age--
	}
	return AgeGroupForAge(age)
}

package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAgeGroupForAge(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		age      int
		expected AgeGroup
	}{
		{name: "below youngest band falls to adult", age: 4, expected: AgeGroupAdult},
		{name: "lower bound of 5-7", age: 5, expected: AgeGroup5to7},
		{name: "upper bound of 5-7", age: 7, expected: AgeGroup5to7},
		{name: "lower bound of 8-10", age: 8, expected: AgeGroup8to10},
		{name: "upper bound of 8-10", age: 10, expected: AgeGroup8to10},
		{name: "lower bound of 11-13", age: 11, expected: AgeGroup11to13},
		{name: "upper bound of 11-13", age: 13, expected: AgeGroup11to13},
		{name: "lower bound of 14-16", age: 14, expected: AgeGroup14to16},
		{name: "upper bound of 14-16", age: 16, expected: AgeGroup14to16},
		{name: "seventeen is adult", age: 17, expected: AgeGroupAdult},
		{name: "adult", age: 35, expected: AgeGroupAdult},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, AgeGroupForAge(tc.age))
		})
	}
}

// TestAgeGroupForBirthDate verifies whole-year age computation around the
// birthday boundary.
func TestAgeGroupForBirthDate(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		dob      time.Time
		expected AgeGroup
	}{
		{
			name:     "birthday tomorrow still counts previous age",
			dob:      time.Date(2015, time.June, 16, 0, 0, 0, 0, time.UTC),
			expected: AgeGroup8to10, // age 9
		},
		{
			name:     "birthday today counts new age",
			dob:      time.Date(2015, time.June, 15, 0, 0, 0, 0, time.UTC),
			expected: AgeGroup8to10, // age 10
		},
		{
			name:     "birthday earlier month already counted",
			dob:      time.Date(2014, time.March, 1, 0, 0, 0, 0, time.UTC),
			expected: AgeGroup11to13, // age 11
		},
		{
			name:     "birthday later month not yet counted",
			dob:      time.Date(2011, time.December, 31, 0, 0, 0, 0, time.UTC),
			expected: AgeGroup11to13, // age 13
		},
		{
			name:     "teen",
			dob:      time.Date(2010, time.January, 2, 0, 0, 0, 0, time.UTC),
			expected: AgeGroup14to16, // age 15
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, AgeGroupForBirthDate(tc.dob, now))
		})
	}
}

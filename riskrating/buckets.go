// Copyright (C) 2025 the modelward contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package riskrating

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/modelward-dev/modelward/database/models"
)

// ValidateBuckets checks an ordered past-due bucket configuration for
// contiguity. A single bucket is valid iff both bounds are nil. A multi
// bucket set is valid iff exactly one bucket has a nil minimum (the lowest),
// exactly one has a nil maximum (the highest), every other bucket has both
// bounds, and adjacent bounds leave no gap and no overlap.
//
// Errors name the offending bucket labels so the admin UI can point at them.
func ValidateBuckets(buckets []models.PastDueBucket) error {
	if len(buckets) == 0 {
		return nil
	}

	if len(buckets) == 1 {
		b := buckets[0]
		if b.MinDays != nil || b.MaxDays != nil {
			return fmt.Errorf("bucket %q is the only bucket and must be unbounded on both sides", b.Label)
		}
		return nil
	}

	sorted := make([]models.PastDueBucket, len(buckets))
	copy(sorted, buckets)
	// nil minimum sorts below every finite minimum
	slices.SortStableFunc(sorted, func(a, b models.PastDueBucket) int {
		switch {
		case a.MinDays == nil && b.MinDays == nil:
			return 0
		case a.MinDays == nil:
			return -1
		case b.MinDays == nil:
			return 1
		default:
			return *a.MinDays - *b.MinDays
		}
	})

	for i, b := range sorted {
		if b.MinDays != nil && b.MaxDays != nil && *b.MinDays > *b.MaxDays {
			return fmt.Errorf("bucket %q has min %d greater than max %d", b.Label, *b.MinDays, *b.MaxDays)
		}
		if i > 0 && b.MinDays == nil {
			return fmt.Errorf("bucket %q must have a minimum, only the lowest bucket may be open-ended below", b.Label)
		}
		if i < len(sorted)-1 && b.MaxDays == nil {
			return fmt.Errorf("bucket %q must have a maximum, only the highest bucket may be open-ended above", b.Label)
		}
	}

	if sorted[0].MinDays != nil {
		return fmt.Errorf("bucket %q is the lowest bucket and must be open-ended below", sorted[0].Label)
	}
	if sorted[len(sorted)-1].MaxDays != nil {
		return fmt.Errorf("bucket %q is the highest bucket and must be open-ended above", sorted[len(sorted)-1].Label)
	}

	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		// both bounds are guaranteed non-nil here
		if *cur.MinDays <= *prev.MaxDays {
			return fmt.Errorf("buckets %q and %q overlap between day %d and day %d", prev.Label, cur.Label, *cur.MinDays, *prev.MaxDays)
		}
		if *cur.MinDays > *prev.MaxDays+1 {
			return fmt.Errorf("gap between buckets %q and %q: day %d is not covered", prev.Label, cur.Label, *prev.MaxDays+1)
		}
	}

	return nil
}

// ValidateBucketChange simulates applying the candidate to the existing set
// before re-checking contiguity, so admin edits are rejected before commit.
// A candidate with a known ID replaces its stored counterpart (an in-place
// bound change), otherwise it is treated as an insert.
func ValidateBucketChange(existing []models.PastDueBucket, candidate models.PastDueBucket) error {
	simulated := make([]models.PastDueBucket, 0, len(existing)+1)
	replaced := false
	for _, b := range existing {
		if candidate.ID != uuid.Nil && b.ID == candidate.ID {
			simulated = append(simulated, candidate)
			replaced = true
			continue
		}
		simulated = append(simulated, b)
	}
	if !replaced {
		simulated = append(simulated, candidate)
	}
	return ValidateBuckets(simulated)
}

// MatchBucket returns the one bucket covering the given days-overdue value,
// or nil if the set does not cover it. A validated multi-bucket set covers
// every integer exactly once.
func MatchBucket(buckets []models.PastDueBucket, daysOverdue int) *models.PastDueBucket {
	for i := range buckets {
		if buckets[i].Contains(daysOverdue) {
			return &buckets[i]
		}
	}
	return nil
}

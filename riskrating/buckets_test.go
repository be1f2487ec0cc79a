package riskrating

import (
	"testing"

	"github.com/google/uuid"
	"github.com/modelward-dev/modelward/database/models"
	"github.com/modelward-dev/modelward/utils"
	"github.com/stretchr/testify/assert"
)

func bucket(label string, minDays, maxDays *int, notches int) models.PastDueBucket {
	b := models.PastDueBucket{
		Label:            label,
		MinDays:          minDays,
		MaxDays:          maxDays,
		DowngradeNotches: notches,
	}
	b.ID = uuid.New()
	return b
}

func validBuckets() []models.PastDueBucket {
	return []models.PastDueBucket{
		bucket("not yet due", nil, utils.Ptr(0), 0),
		bucket("1-90 days", utils.Ptr(1), utils.Ptr(90), 1),
		bucket("91-180 days", utils.Ptr(91), utils.Ptr(180), 2),
		bucket("180+ days", utils.Ptr(181), nil, 3),
	}
}

func TestValidateBuckets(t *testing.T) {
	t.Run("accepts a contiguous multi-bucket configuration", func(t *testing.T) {
		assert.NoError(t, ValidateBuckets(validBuckets()))
	})

	t.Run("accepts an empty configuration", func(t *testing.T) {
		assert.NoError(t, ValidateBuckets(nil))
	})

	t.Run("single bucket must be unbounded on both sides", func(t *testing.T) {
		assert.NoError(t, ValidateBuckets([]models.PastDueBucket{
			bucket("everything", nil, nil, 0),
		}))

		err := ValidateBuckets([]models.PastDueBucket{
			bucket("everything", nil, utils.Ptr(10), 0),
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "everything")
	})

	t.Run("rejects a gap and names the missing day", func(t *testing.T) {
		buckets := validBuckets()
		buckets[2].MinDays = utils.Ptr(95) // leaves days 91-94 uncovered

		err := ValidateBuckets(buckets)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "1-90 days")
		assert.Contains(t, err.Error(), "91-180 days")
		assert.Contains(t, err.Error(), "day 91")
	})

	t.Run("rejects an overlap and names both buckets", func(t *testing.T) {
		buckets := validBuckets()
		buckets[2].MinDays = utils.Ptr(85)

		err := ValidateBuckets(buckets)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "overlap")
		assert.Contains(t, err.Error(), "1-90 days")
		assert.Contains(t, err.Error(), "91-180 days")
	})

	t.Run("rejects a second open-ended lower bound", func(t *testing.T) {
		err := ValidateBuckets([]models.PastDueBucket{
			bucket("a", nil, utils.Ptr(10), 0),
			bucket("b", nil, nil, 1),
		})
		assert.Error(t, err)
	})

	t.Run("rejects min greater than max", func(t *testing.T) {
		buckets := validBuckets()
		buckets[1].MinDays = utils.Ptr(91)
		buckets[1].MaxDays = utils.Ptr(90)

		assert.Error(t, ValidateBuckets(buckets))
	})
}

// every integer day must map to exactly one bucket of a valid configuration
func TestBucketExhaustiveness(t *testing.T) {
	buckets := validBuckets()
	assert.NoError(t, ValidateBuckets(buckets))

	for day := -400; day <= 400; day++ {
		matches := 0
		for _, b := range buckets {
			if b.Contains(day) {
				matches++
			}
		}
		assert.Equalf(t, 1, matches, "day %d should map to exactly one bucket", day)
	}
}

func TestValidateBucketChange(t *testing.T) {
	t.Run("simulated insert is rejected before commit", func(t *testing.T) {
		candidate := bucket("1-30 days", utils.Ptr(1), utils.Ptr(30), 1)
		err := ValidateBucketChange(validBuckets(), candidate)
		assert.Error(t, err)
	})

	t.Run("in-place bound change replaces the stored bucket", func(t *testing.T) {
		buckets := validBuckets()
		// shrink the second bucket and widen the third accordingly
		candidate := buckets[1]
		candidate.MaxDays = utils.Ptr(60)

		err := ValidateBucketChange(buckets, candidate)
		assert.Error(t, err) // days 61-90 now uncovered

		buckets[2].MinDays = utils.Ptr(61)
		assert.NoError(t, ValidateBucketChange(buckets, candidate))
	})
}

func TestMatchBucket(t *testing.T) {
	buckets := validBuckets()

	match := MatchBucket(buckets, 45)
	assert.NotNil(t, match)
	assert.Equal(t, "1-90 days", match.Label)

	match = MatchBucket(buckets, -12)
	assert.NotNil(t, match)
	assert.Equal(t, "not yet due", match.Label)

	match = MatchBucket(buckets, 5000)
	assert.NotNil(t, match)
	assert.Equal(t, "180+ days", match.Label)

	assert.Nil(t, MatchBucket(nil, 45))
}

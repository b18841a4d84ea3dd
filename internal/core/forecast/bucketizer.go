package forecast

import "time"

// DefaultCutoffHour is the first hour of the day a representative sample may start at
const DefaultCutoffHour = 6

// BucketPolicy decides what a date without a sample at or after the cutoff gets.
// Values are the FORECAST_BUCKET_POLICY names; anything other than "first" is strict.
type BucketPolicy string

const (
	// PolicyStrict leaves the representative nil
	PolicyStrict BucketPolicy = "strict"
	// PolicyFirstOfDay falls back to the first sample of that date
	PolicyFirstOfDay BucketPolicy = "first"
)

// Bucketizer reduces a chronological sample list to one representative sample per
// calendar date. Dates come from the UTC timestamp; the cutoff hour is read in Location.
type Bucketizer struct {
	CutoffHour int
	Location   *time.Location
	Policy     BucketPolicy
}

// NewBucketizer creates a bucketizer; a nil location means UTC
func NewBucketizer(cutoffHour int, location *time.Location, policy BucketPolicy) Bucketizer {
	if location == nil {
		location = time.UTC
	}
	return Bucketizer{
		CutoffHour: cutoffHour,
		Location:   location,
		Policy:     policy,
	}
}

// Bucketize returns buckets in first-seen date order. It does not modify samples and
// returns fresh copies, so running it twice yields equal output.
func (b Bucketizer) Bucketize(samples []Sample) []DayBucket {
	buckets := make([]DayBucket, 0)
	if len(samples) == 0 {
		return buckets
	}

	location := b.Location
	if location == nil {
		location = time.UTC
	}

	indexByDate := make(map[string]int)
	firstOfDate := make([]int, 0)

	for i := range samples {
		sample := samples[i]
		date := sample.CalendarDate()

		idx, seen := indexByDate[date]
		if !seen {
			idx = len(buckets)
			indexByDate[date] = idx
			buckets = append(buckets, DayBucket{CalendarDate: date})
			firstOfDate = append(firstOfDate, i)
		}

		if buckets[idx].Representative != nil {
			continue
		}
		if sample.Time().In(location).Hour() >= b.CutoffHour {
			representative := sample
			buckets[idx].Representative = &representative
		}
	}

	if b.Policy == PolicyFirstOfDay {
		for idx := range buckets {
			if buckets[idx].Representative == nil {
				fallback := samples[firstOfDate[idx]]
				buckets[idx].Representative = &fallback
			}
		}
	}

	return buckets
}

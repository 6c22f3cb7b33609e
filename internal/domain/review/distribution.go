package review

import "math"

// Distribution is the derived count-per-star breakdown of a resource's
// reviews. It is recomputed on demand from the live review set and never
// persisted as a source of truth.
type Distribution struct {
	Counts        map[int]int
	TotalReviews  int
	AverageRating float64
}

// Aggregate reduces raw rating values into a Distribution. Ratings outside
// 1..5 are skipped rather than rejected: upstream data may be dirty and a
// single bad row must not break the summary. The result is deterministic and
// independent of input order. With zero valid ratings the average is 0,
// never NaN.
func Aggregate(ratings []int) Distribution {
	counts := make(map[int]int, MaxRating)
	for star := MinRating; star <= MaxRating; star++ {
		counts[star] = 0
	}

	sum := 0
	total := 0
	for _, r := range ratings {
		if r < MinRating || r > MaxRating {
			continue
		}
		counts[r]++
		sum += r
		total++
	}

	avg := 0.0
	if total > 0 {
		avg = math.Round(float64(sum)/float64(total)*10) / 10
	}

	return Distribution{
		Counts:        counts,
		TotalReviews:  total,
		AverageRating: avg,
	}
}

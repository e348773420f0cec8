// Package forecast turns the 3-hour forecast feed into per-day summaries.
package forecast

import (
	"math"
	"sort"
	"time"

	"go-weather/internal/domain/compass"
	"go-weather/internal/domain/entity"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	dateKeyLayout = "2006-01-02"

	// samples in this local-hour window (inclusive) represent the day
	middayFirstHour = 11
	middayLastHour  = 13

	// resultant vectors shorter than this are treated as cancelled out
	zeroVectorTolerance = 1e-9

	// circular means are snapped to this many steps per degree before rounding
	residueScale = 1e9
)

type dayGroup struct {
	date    time.Time
	samples []entity.ForecastSample
}

// Summarize groups samples by local calendar date (timestamp shifted by tzOffsetSeconds) and
// reduces each group to a DailySummary. Only the first maxDays distinct dates are kept.
// Fields that no sample of a day carries are left nil.
func Summarize(samples []entity.ForecastSample, tzOffsetSeconds int, maxDays int) []entity.DailySummary {
	if len(samples) == 0 || maxDays <= 0 {
		return []entity.DailySummary{}
	}

	zone := time.FixedZone("", tzOffsetSeconds)
	groups := groupByLocalDate(samples, zone, maxDays)

	summaries := make([]entity.DailySummary, 0, len(groups))
	for _, group := range groups {
		summaries = append(summaries, summarizeDay(group, zone))
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Date.Before(summaries[j].Date)
	})
	return summaries
}

// groupByLocalDate keeps first-seen date order. Samples of a date beyond the first maxDays are dropped.
func groupByLocalDate(samples []entity.ForecastSample, zone *time.Location, maxDays int) []*dayGroup {
	index := make(map[string]*dayGroup)
	groups := make([]*dayGroup, 0, maxDays)

	for _, sample := range samples {
		local := localTime(sample.Timestamp, zone)
		key := local.Format(dateKeyLayout)

		group, ok := index[key]
		if !ok {
			if len(groups) == maxDays {
				continue
			}
			group = &dayGroup{date: time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, zone)}
			index[key] = group
			groups = append(groups, group)
		}
		group.samples = append(group.samples, sample)
	}
	return groups
}

func summarizeDay(group *dayGroup, zone *time.Location) entity.DailySummary {
	samples := group.samples
	description, icon := representative(samples, zone)
	windDeg := circularMeanDegrees(collect(samples, func(s entity.ForecastSample) *float64 { return s.WindDeg }))

	summary := entity.DailySummary{
		Date:        group.date,
		Description: description,
		Icon:        icon,
		TempDay:     mean(collect(samples, func(s entity.ForecastSample) *float64 { return s.Temp })),
		TempMin:     minimum(collect(samples, func(s entity.ForecastSample) *float64 { return s.TempMin })),
		TempMax:     maximum(collect(samples, func(s entity.ForecastSample) *float64 { return s.TempMax })),
		WindSpeed:   mean(collect(samples, func(s entity.ForecastSample) *float64 { return s.WindSpeed })),
		WindDeg:     windDeg,
		Wind:        compass.Encode(windDeg),
		Samples:     len(samples),
	}

	if pops := collect(samples, func(s entity.ForecastSample) *float64 { return s.Pop }); len(pops) > 0 {
		summary.Pop = floats.Max(pops)
	}
	return summary
}

// representative picks the first midday sample. Without one, it falls back to the most frequent
// description (first seen wins ties) and the icon of the middle sample.
func representative(samples []entity.ForecastSample, zone *time.Location) (string, string) {
	for _, sample := range samples {
		hour := localTime(sample.Timestamp, zone).Hour()
		if hour >= middayFirstHour && hour <= middayLastHour {
			return sample.Description, sample.Icon
		}
	}

	var order []string
	counts := make(map[string]int)
	for _, sample := range samples {
		if sample.Description == "" {
			continue
		}
		if _, seen := counts[sample.Description]; !seen {
			order = append(order, sample.Description)
		}
		counts[sample.Description]++
	}

	description, best := "", 0
	for _, candidate := range order {
		if counts[candidate] > best {
			description, best = candidate, counts[candidate]
		}
	}

	return description, samples[len(samples)/2].Icon
}

// circularMeanDegrees averages bearings as unit vectors. It returns nil when there are no
// bearings or they cancel out.
func circularMeanDegrees(bearings []float64) *int {
	if len(bearings) == 0 {
		return nil
	}

	radians := make([]float64, len(bearings))
	sines := make([]float64, len(bearings))
	cosines := make([]float64, len(bearings))
	for i, deg := range bearings {
		radians[i] = deg * math.Pi / 180
		sines[i] = math.Sin(radians[i])
		cosines[i] = math.Cos(radians[i])
	}

	if math.Hypot(floats.Sum(sines), floats.Sum(cosines)) < zeroVectorTolerance {
		return nil
	}

	deg := compass.Normalize(stat.CircularMean(radians, nil) * 180 / math.Pi)
	// the radian round trip leaves residue such as 1.4999999999999998 for 1.5
	deg = math.Round(deg*residueScale) / residueScale
	rounded := int(math.Round(deg))
	if rounded == 360 {
		rounded = 0
	}
	return &rounded
}

// collect returns the present, finite values of one field
func collect(samples []entity.ForecastSample, field func(entity.ForecastSample) *float64) []float64 {
	values := make([]float64, 0, len(samples))
	for _, sample := range samples {
		v := field(sample)
		if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
			continue
		}
		values = append(values, *v)
	}
	return values
}

func mean(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	return roundTenth(stat.Mean(values, nil))
}

func minimum(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	return roundTenth(floats.Min(values))
}

func maximum(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	return roundTenth(floats.Max(values))
}

func roundTenth(v float64) *float64 {
	r := math.Round(v*10) / 10
	return &r
}

func localTime(timestamp int64, zone *time.Location) time.Time {
	return time.Unix(timestamp, 0).In(zone)
}

package itinerary

import (
	"math"
	"regexp"
	"strconv"

	"github.com/comeltrans/comeltrans/internal/domain/models"
)

const minutesPerDay = 24 * 60

var clockPrefix = regexp.MustCompile(`^(\d{1,2}):(\d{2})`)

// minuteOfDay parses the leading HH:MM of a local time-of-day string.
func minuteOfDay(clock *string) (int, bool) {
	if clock == nil {
		return 0, false
	}
	m := clockPrefix.FindStringSubmatch(*clock)
	if m == nil {
		return 0, false
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return hours*60 + minutes, true
}

// EstimateDurationHours approximates the elapsed travel time of a response.
// Per option, a clock pair is tried first: a negative delta means arrival
// past local midnight and wraps by adding 1440 minutes. Failing that, an
// instant pair contributes when arrival is strictly after departure. Options
// with neither pair contribute nothing.
//
// Minutes are summed across all options of all segments of both legs,
// including several options of the same segment. The sum estimates total
// itinerary exposure, not a best case; callers wanting a per-segment minimum
// need a different metric. When no option yields a measurement the duration
// is unknown and nil is returned, otherwise the total is rounded to whole
// hours.
func EstimateDurationHours(outbound models.RoutePart, ret *models.RoutePart) *int {
	var totalMinutes float64
	measured := false

	scan := func(part models.RoutePart) {
		for _, seg := range part.Segments {
			for _, opt := range seg.Options {
				dep, depOK := minuteOfDay(opt.DepartureClock)
				arr, arrOK := minuteOfDay(opt.ArrivalClock)
				if depOK && arrOK {
					delta := arr - dep
					if delta < 0 {
						delta += minutesPerDay
					}
					totalMinutes += float64(delta)
					measured = true
					continue
				}

				if opt.DepartureAt != nil && opt.ArrivalAt != nil {
					diff := opt.ArrivalAt.Sub(*opt.DepartureAt).Minutes()
					if diff > 0 {
						totalMinutes += diff
						measured = true
					}
				}
			}
		}
	}

	scan(outbound)
	if ret != nil {
		scan(*ret)
	}

	if !measured {
		return nil
	}

	hours := int(math.Round(totalMinutes / 60))
	return &hours
}

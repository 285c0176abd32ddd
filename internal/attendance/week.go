package attendance

import "time"

const dateLayout = "2006-01-02"

// WeekDates expands a week-ending Sunday into its 7 calendar dates, Monday
// first. The weekEnding date itself is the last element.
func WeekDates(weekEnding string) ([]string, error) {
	sunday, err := time.Parse(dateLayout, weekEnding)
	if err != nil {
		return nil, err
	}

	monday := sunday.AddDate(0, 0, -6)
	dates := make([]string, 7)
	for i := range dates {
		dates[i] = monday.AddDate(0, 0, i).Format(dateLayout)
	}
	return dates, nil
}

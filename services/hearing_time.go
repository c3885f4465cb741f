package services

import (
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Matches phrases like "ON MONDAY THE 15TH DAY OF SEPTEMBER 2025 AT 10.30 A.M."
var hearingDateRe = regexp.MustCompile(
	`(?i)ON\s+\w+\s+THE\s+(\d+)(?:TH|ST|ND|RD)?\s+DAY OF\s+(\w+)\s+(\d{4})\s+AT\s+(\d{1,2})\.(\d{2})\s+(A\.?M\.?|P\.?M\.?)`)

// ParseHearingDateTime extracts the listing date and time embedded in free-text
// court remarks. When no phrase is found, or the phrase does not parse, it
// falls back to tomorrow at 10:00 and logs the degraded case.
func ParseHearingDateTime(courtRemarks string) time.Time {
	return parseHearingDateTimeAt(courtRemarks, time.Now())
}

func parseHearingDateTimeAt(courtRemarks string, now time.Time) time.Time {
	if m := hearingDateRe.FindStringSubmatch(courtRemarks); m != nil {
		day, dayErr := strconv.Atoi(m[1])
		year, yearErr := strconv.Atoi(m[3])
		hour, hourErr := strconv.Atoi(m[4])
		minute, minErr := strconv.Atoi(m[5])

		month, monthOK := reference().Months[strings.ToUpper(m[2])]
		if !monthOK {
			month = 1
		}

		if dayErr == nil && yearErr == nil && hourErr == nil && minErr == nil &&
			day >= 1 && day <= 31 && minute <= 59 {
			return time.Date(year, time.Month(month), day,
				to24Hour(hour, m[6]), minute, 0, 0, now.Location())
		}
	}

	// Degraded case, not a failure: default to tomorrow 10:00 AM.
	log.Printf("[IMPORT] No hearing time found in remarks, defaulting to tomorrow 10:00: %.80q", courtRemarks)
	tomorrow := now.AddDate(0, 0, 1)
	return time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 10, 0, 0, 0, now.Location())
}

// to24Hour converts a 12-hour clock reading using the standard noon and
// midnight rules: 12 AM is 0, 12 PM stays 12, any other PM hour gains 12.
func to24Hour(hour int, period string) int {
	isPM := strings.HasPrefix(strings.ToUpper(period), "P")
	if isPM && hour < 12 {
		return hour + 12
	}
	if !isPM && hour == 12 {
		return 0
	}
	return hour
}

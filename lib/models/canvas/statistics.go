package canvas

import (
	"sort"
	"time"

	"github.com/pixelboard/pixelboard-go/lib/models/user"
)

type DailyContribution struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type Contributor struct {
	UserId        user.Id `json:"userId"`
	Username      string  `json:"username"`
	Contributions int     `json:"contributions"`
}

type Statistics struct {
	DailyContributions []DailyContribution `json:"dailyContributions"`
	TopContributors    []Contributor       `json:"topContributors"`
}

// Statistics derives the daily contribution counts and the contributor
// ranking from the contribution histories. It never mutates the canvas.
//
// Timestamps are grouped by UTC calendar date and the dates are sorted
// chronologically. Contributors are sorted by count descending, ties by
// user id ascending, so the output is deterministic regardless of map
// iteration order. resolveName maps a user id to a display name.
func (c *Canvas) Statistics(resolveName func(user.Id) string) Statistics {
	var countsByDate = make(map[string]int)

	for _, timestamps := range c.Contributions {
		for _, timestamp := range timestamps {
			date := time.Unix(timestamp, 0).UTC().Format(time.DateOnly)
			countsByDate[date]++
		}
	}

	var daily = make([]DailyContribution, 0, len(countsByDate))
	for date, count := range countsByDate {
		daily = append(daily, DailyContribution{Date: date, Count: count})
	}
	sort.Slice(daily, func(i, j int) bool {
		return daily[i].Date < daily[j].Date
	})

	var contributors = make([]Contributor, 0, len(c.Contributions))
	for userId, timestamps := range c.Contributions {
		contributors = append(contributors, Contributor{
			UserId:        userId,
			Username:      resolveName(userId),
			Contributions: len(timestamps),
		})
	}
	sort.Slice(contributors, func(i, j int) bool {
		if contributors[i].Contributions != contributors[j].Contributions {
			return contributors[i].Contributions > contributors[j].Contributions
		}
		return contributors[i].UserId < contributors[j].UserId
	})

	return Statistics{
		DailyContributions: daily,
		TopContributors:    contributors,
	}
}

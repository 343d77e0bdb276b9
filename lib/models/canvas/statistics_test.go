package canvas

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pixelboard/pixelboard-go/lib/models/user"
)

func epoch(value string) int64 {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return parsed.Unix()
}

func identityNames(id user.Id) string {
	return id.String()
}

func TestStatisticsDailyContributionsSortedByDate(t *testing.T) {
	c := newTestCanvas(3, 2, 0)
	c.Contributions = map[user.Id][]int64{
		"u.b": {epoch("2024-03-02T10:00:00Z"), epoch("2024-03-02T11:00:00Z")},
		"u.a": {epoch("2024-03-01T23:59:59Z"), epoch("2024-03-03T00:00:00Z")},
	}

	got := c.Statistics(identityNames)

	want := []DailyContribution{
		{Date: "2024-03-01", Count: 1},
		{Date: "2024-03-02", Count: 2},
		{Date: "2024-03-03", Count: 1},
	}
	if diff := cmp.Diff(want, got.DailyContributions); diff != "" {
		t.Errorf("daily contributions mismatch (-want +got):\n%s", diff)
	}
}

func TestStatisticsGroupsByUTCDate(t *testing.T) {
	c := newTestCanvas(3, 2, 0)
	// 23:30 and 00:30 UTC fall on different days even though they are
	// one hour apart
	c.Contributions = map[user.Id][]int64{
		"u.a": {epoch("2024-03-01T23:30:00Z"), epoch("2024-03-02T00:30:00Z")},
	}

	got := c.Statistics(identityNames)

	want := []DailyContribution{
		{Date: "2024-03-01", Count: 1},
		{Date: "2024-03-02", Count: 1},
	}
	if diff := cmp.Diff(want, got.DailyContributions); diff != "" {
		t.Errorf("daily contributions mismatch (-want +got):\n%s", diff)
	}
}

func TestStatisticsTopContributorsOrdering(t *testing.T) {
	c := newTestCanvas(3, 2, 0)
	c.Contributions = map[user.Id][]int64{
		"u.c": {1, 2},
		"u.a": {1, 2, 3},
		"u.b": {1, 2},
		"u.d": {1},
	}

	names := map[user.Id]string{
		"u.a": "alice",
		"u.b": "bob",
		"u.c": "carol",
		"u.d": "dave",
	}
	got := c.Statistics(func(id user.Id) string {
		return names[id]
	})

	want := []Contributor{
		{UserId: "u.a", Username: "alice", Contributions: 3},
		{UserId: "u.b", Username: "bob", Contributions: 2},
		{UserId: "u.c", Username: "carol", Contributions: 2},
		{UserId: "u.d", Username: "dave", Contributions: 1},
	}
	if diff := cmp.Diff(want, got.TopContributors); diff != "" {
		t.Errorf("top contributors mismatch (-want +got):\n%s", diff)
	}
}

func TestStatisticsCountsMatchHistoryLengths(t *testing.T) {
	c := newTestCanvas(3, 2, 1)
	var now int64 = 100
	for i := 0; i < 5; i++ {
		if err := c.UpdatePixel(0, 0, "#112233", "u.a", now); err != nil {
			t.Fatalf("edit failed: %v", err)
		}
		now += 2
	}

	got := c.Statistics(identityNames)
	if len(got.TopContributors) != 1 {
		t.Fatalf("expected one contributor, got %d", len(got.TopContributors))
	}
	if got.TopContributors[0].Contributions != len(c.Contributions["u.a"]) {
		t.Errorf("contributor count %d does not match history length %d",
			got.TopContributors[0].Contributions, len(c.Contributions["u.a"]))
	}
}

func TestStatisticsDoesNotMutateCanvas(t *testing.T) {
	c := newTestCanvas(3, 2, 5)
	if err := c.UpdatePixel(1, 0, "#FF0000", "u.a", 100); err != nil {
		t.Fatalf("edit failed: %v", err)
	}

	before := c.Content[0][1]
	historyLen := len(c.Contributions["u.a"])

	_ = c.Statistics(identityNames)

	if c.Content[0][1] != before || len(c.Contributions["u.a"]) != historyLen {
		t.Error("Statistics must not mutate the canvas")
	}
}

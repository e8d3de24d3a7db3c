package player_test

import (
	"math"
	"testing"
	"time"

	"github.com/courtside/tennis-record/internal/metrics"
	"github.com/courtside/tennis-record/internal/player"
	"github.com/courtside/tennis-record/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

// fixturePlayer builds a fully-populated player; tests override fields as
// needed.
func fixturePlayer(id int, first, last, gender string, rating float64, matchCount int, section, ageGroup string, year int) store.Player {
	return store.Player{
		ID:          id,
		FirstName:   first,
		LastName:    last,
		Gender:      gender,
		UstaSection: ptr(section),
		NtrpRating:  ptr(rating),
		RatingTrend: ptr("stable"),
		MatchCount:  ptr(matchCount),
		ActiveYear:  ptr(year),
		AgeGroup:    ptr(ageGroup),
	}
}

// setupService builds a PlayerService over a small hand-rolled dataset.
// Player 3 is deliberately unrated with no match count.
func setupService(t *testing.T) player.PlayerService {
	t.Helper()

	players := []store.Player{
		fixturePlayer(1, "Emma", "Williams", "F", 4.5, 30, "Southern", "18+", 2024),
		fixturePlayer(2, "James", "Smith", "M", 3.8, 50, "Texas", "40+", 2024),
		fixturePlayer(3, "Sofia", "Johnson", "F", 0, 0, "Southern", "18+", 2023),
		fixturePlayer(4, "Liam", "Davis", "M", 5.2, 12, "Florida", "55+", 2024),
		fixturePlayer(5, "Olivia", "Martinez", "F", 4.5, 80, "Texas", "18+", 2024),
	}
	players[2].NtrpRating = nil
	players[2].MatchCount = nil

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	history := make([]store.MatchSummary, 0, 6)
	for i := 0; i < 6; i++ {
		date := base.AddDate(0, 0, -i*7)
		history = append(history, store.MatchSummary{
			ID:           10 + i,
			PlayerID:     1,
			OpponentName: "Taylor Brown",
			Result:       "W 6-4, 6-3",
			Date:         &date,
		})
	}
	matches := map[int][]store.MatchSummary{1: history}

	st := store.New(players, matches, nil, nil)
	return player.New(st, metrics.NewMock())
}

func search(t *testing.T, svc player.PlayerService, criteria player.SearchCriteria) ([]player.PlayerView, int) {
	t.Helper()
	items, total, err := svc.Search(criteria)
	require.NoError(t, err)
	return items, total
}

func ids(items []player.PlayerView) []int {
	out := make([]int, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestSearchNoFiltersReturnsEveryone(t *testing.T) {
	svc := setupService(t)

	items, total := search(t, svc, player.SearchCriteria{})
	assert.Equal(t, 5, total)
	assert.Len(t, items, 5)
}

func TestSearchNameIsOrderInsensitive(t *testing.T) {
	svc := setupService(t)

	for _, query := range []string{"Emma Williams", "Williams Emma", "emma wil", "WILLIAMS"} {
		items, total := search(t, svc, player.SearchCriteria{Name: query})
		require.Equal(t, 1, total, "query %q", query)
		assert.Equal(t, 1, items[0].ID)
	}
}

func TestSearchGenderIsCaseInsensitive(t *testing.T) {
	svc := setupService(t)

	for _, gender := range []string{"F", "f"} {
		items, total := search(t, svc, player.SearchCriteria{Gender: gender})
		assert.Equal(t, 3, total)
		for _, item := range items {
			assert.Equal(t, "F", item.Gender)
		}
	}
}

func TestSearchRatingBoundsExcludeUnrated(t *testing.T) {
	svc := setupService(t)

	items, _ := search(t, svc, player.SearchCriteria{NtrpMin: ptr(4.0)})
	assert.ElementsMatch(t, []int{1, 4, 5}, ids(items))

	items, _ = search(t, svc, player.SearchCriteria{NtrpMax: ptr(4.5)})
	assert.ElementsMatch(t, []int{1, 2, 5}, ids(items))

	// Bounds are inclusive.
	items, _ = search(t, svc, player.SearchCriteria{NtrpMin: ptr(4.5), NtrpMax: ptr(4.5)})
	assert.ElementsMatch(t, []int{1, 5}, ids(items))
}

func TestSearchExactMatchFilters(t *testing.T) {
	svc := setupService(t)

	items, _ := search(t, svc, player.SearchCriteria{Section: "Texas"})
	assert.ElementsMatch(t, []int{2, 5}, ids(items))

	items, _ = search(t, svc, player.SearchCriteria{AgeGroup: "18+"})
	assert.ElementsMatch(t, []int{1, 3, 5}, ids(items))

	items, _ = search(t, svc, player.SearchCriteria{ActiveYear: ptr(2023)})
	assert.ElementsMatch(t, []int{3}, ids(items))
}

func TestSearchFiltersAreANDCombined(t *testing.T) {
	svc := setupService(t)

	items, total := search(t, svc, player.SearchCriteria{
		Gender:   "F",
		Section:  "Texas",
		AgeGroup: "18+",
	})
	assert.Equal(t, 1, total)
	assert.Equal(t, []int{5}, ids(items))
}

func TestSortByRatingDescendingWithUnratedLast(t *testing.T) {
	svc := setupService(t)

	items, _ := search(t, svc, player.SearchCriteria{SortBy: player.SortByRating})
	require.Len(t, items, 5)
	assert.Equal(t, 4, items[0].ID)
	assert.Nil(t, items[len(items)-1].NtrpRating)
	for i := 1; i < len(items)-1; i++ {
		require.NotNil(t, items[i].NtrpRating)
		assert.GreaterOrEqual(t, *items[i-1].NtrpRating, *items[i].NtrpRating)
	}
}

func TestSortByMatchesTreatsMissingAsZero(t *testing.T) {
	svc := setupService(t)

	items, _ := search(t, svc, player.SearchCriteria{SortBy: player.SortByMatches})
	assert.Equal(t, []int{5, 2, 1, 4, 3}, ids(items))
}

func TestDefaultSortIsLastNameThenFirstName(t *testing.T) {
	svc := setupService(t)

	// Davis, Johnson, Martinez, Smith, Williams.
	want := []int{4, 3, 5, 2, 1}

	items, _ := search(t, svc, player.SearchCriteria{})
	assert.Equal(t, want, ids(items))

	// Unrecognized sort keys fall back to the name sort.
	items, _ = search(t, svc, player.SearchCriteria{SortBy: "bogus"})
	assert.Equal(t, want, ids(items))
}

func TestPaginationWindows(t *testing.T) {
	svc := setupService(t)

	full, fullTotal := search(t, svc, player.SearchCriteria{})

	for _, pageSize := range []int{1, 2, 3, 5, 10} {
		wantPages := int(math.Ceil(float64(fullTotal) / float64(pageSize)))

		var concatenated []int
		pages := 0
		for page := 1; ; page++ {
			items, total := search(t, svc, player.SearchCriteria{Page: page, PageSize: pageSize})
			assert.Equal(t, fullTotal, total, "total must not depend on page")
			if len(items) == 0 {
				break
			}
			pages++
			concatenated = append(concatenated, ids(items)...)
		}

		assert.Equal(t, wantPages, pages, "pageSize %d", pageSize)
		assert.Equal(t, ids(full), concatenated, "pageSize %d", pageSize)
	}
}

func TestPaginationPastTheEndIsEmptyNotError(t *testing.T) {
	svc := setupService(t)

	items, total, err := svc.Search(player.SearchCriteria{Page: 99, PageSize: 2})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 5, total)
}

func TestGetByID(t *testing.T) {
	svc := setupService(t)

	detail, err := svc.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Emma Williams", detail.FullName)
	assert.Equal(t, "Southern", *detail.UstaSection)

	// Six matches exist; the detail view carries at most five, newest first.
	require.Len(t, detail.RecentMatches, 5)
	for i := 1; i < len(detail.RecentMatches); i++ {
		require.NotNil(t, detail.RecentMatches[i].Date)
		assert.LessOrEqual(t, *detail.RecentMatches[i].Date, *detail.RecentMatches[i-1].Date)
	}
	assert.Equal(t, "2024-06-01", *detail.RecentMatches[0].Date)
}

func TestGetByIDUnknownReturnsNotFound(t *testing.T) {
	svc := setupService(t)

	detail, err := svc.GetByID(9999)
	assert.Nil(t, detail)
	assert.ErrorIs(t, err, player.ErrNotFound)
}

func TestRatingLookup(t *testing.T) {
	svc := setupService(t)

	t.Run("blank query", func(t *testing.T) {
		_, err := svc.RatingLookup("")
		assert.ErrorIs(t, err, player.ErrNotFound)
		_, err = svc.RatingLookup("   ")
		assert.ErrorIs(t, err, player.ErrNotFound)
	})

	t.Run("no match", func(t *testing.T) {
		_, err := svc.RatingLookup("Zebra")
		assert.ErrorIs(t, err, player.ErrNotFound)
	})

	t.Run("first match in store order wins", func(t *testing.T) {
		// "jo" matches Sofia Johnson only; "s" matches several, and the
		// lookup settles on the earliest stored one.
		detail, err := svc.RatingLookup("jo")
		require.NoError(t, err)
		assert.Equal(t, 3, detail.ID)

		detail, err = svc.RatingLookup("s")
		require.NoError(t, err)
		assert.Equal(t, 1, detail.ID)
	})

	t.Run("both name orders", func(t *testing.T) {
		a, err := svc.RatingLookup("Williams Emma")
		require.NoError(t, err)
		b, err := svc.RatingLookup("Emma Williams")
		require.NoError(t, err)
		assert.Equal(t, a.ID, b.ID)
	})
}

func TestSearchIsIdempotent(t *testing.T) {
	svc := setupService(t)

	criteria := player.SearchCriteria{Gender: "F", SortBy: player.SortByRating, Page: 1, PageSize: 2}
	first, firstTotal := search(t, svc, criteria)
	second, secondTotal := search(t, svc, criteria)

	assert.Equal(t, first, second)
	assert.Equal(t, firstTotal, secondTotal)
}

// TestSeededFemaleRatingPage exercises the worked example from the API
// contract over the real seeded dataset.
func TestSeededFemaleRatingPage(t *testing.T) {
	st := store.Seeded()
	svc := player.New(st, metrics.NewMock())

	wantTotal := 0
	for _, p := range st.Players() {
		if p.Gender == "F" {
			wantTotal++
		}
	}

	items, total, err := svc.Search(player.SearchCriteria{
		Gender:   "F",
		SortBy:   player.SortByRating,
		Page:     1,
		PageSize: 2,
	})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, wantTotal, total)
	assert.Equal(t, "F", items[0].Gender)
	assert.Equal(t, "F", items[1].Gender)
	require.NotNil(t, items[0].NtrpRating)
	require.NotNil(t, items[1].NtrpRating)
	assert.GreaterOrEqual(t, *items[0].NtrpRating, *items[1].NtrpRating)
}

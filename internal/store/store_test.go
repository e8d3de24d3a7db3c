package store_test

import (
	"testing"

	"github.com/courtside/tennis-record/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededIsDeterministic(t *testing.T) {
	a := store.Seeded()
	b := store.Seeded()

	require.Equal(t, len(a.Players()), len(b.Players()))
	for i, p := range a.Players() {
		q := b.Players()[i]
		assert.Equal(t, p.ID, q.ID)
		assert.Equal(t, p.FirstName, q.FirstName)
		assert.Equal(t, p.LastName, q.LastName)
		assert.Equal(t, *p.NtrpRating, *q.NtrpRating)
	}
	assert.Equal(t, len(a.Teams()), len(b.Teams()))
	assert.Equal(t, len(a.Rankings()), len(b.Rankings()))
}

func TestSeededPlayers(t *testing.T) {
	st := store.Seeded()
	players := st.Players()
	require.NotEmpty(t, players)

	seen := make(map[int]bool, len(players))
	for _, p := range players {
		assert.Positive(t, p.ID)
		assert.False(t, seen[p.ID], "duplicate player id %d", p.ID)
		seen[p.ID] = true
		assert.Contains(t, []string{"M", "F"}, p.Gender)
		require.NotNil(t, p.NtrpRating)
		assert.GreaterOrEqual(t, *p.NtrpRating, 1.0)
	}
}

func TestSeededMatchesSortedByDateDescending(t *testing.T) {
	st := store.Seeded()
	for _, p := range st.Players() {
		history := st.MatchesFor(p.ID)
		require.NotEmpty(t, history, "player %d has no matches", p.ID)
		for i := 1; i < len(history); i++ {
			prev, cur := history[i-1], history[i]
			require.NotNil(t, prev.Date)
			require.NotNil(t, cur.Date)
			assert.False(t, cur.Date.After(*prev.Date), "matches for player %d out of order", p.ID)
			assert.Equal(t, p.ID, cur.PlayerID)
		}
	}
}

func TestSeededTeamsCarryDerivedFields(t *testing.T) {
	st := store.Seeded()
	require.NotEmpty(t, st.Teams())

	for _, team := range st.Teams() {
		require.Len(t, team.Roster, 8)
		require.Len(t, team.TopPlayers, 3)
		require.NotNil(t, team.AverageRating)

		// Top players are the highest-rated roster members, descending.
		for i := 1; i < len(team.TopPlayers); i++ {
			assert.GreaterOrEqual(t, *team.TopPlayers[i-1].NtrpRating, *team.TopPlayers[i].NtrpRating)
		}
		for _, entry := range team.Roster {
			assert.LessOrEqual(t, *entry.NtrpRating, *team.TopPlayers[0].NtrpRating)
		}
	}
}

func TestLookupByID(t *testing.T) {
	st := store.Seeded()

	p, ok := st.PlayerByID(1)
	require.True(t, ok)
	assert.Equal(t, "Emma", p.FirstName)
	assert.Equal(t, "Williams", p.LastName)

	_, ok = st.PlayerByID(9999)
	assert.False(t, ok)

	team, ok := st.TeamByID(1)
	require.True(t, ok)
	assert.Equal(t, "Riverside Racquet Club", team.Name)

	_, ok = st.TeamByID(9999)
	assert.False(t, ok)
}

func TestSeededRankingsPartitions(t *testing.T) {
	st := store.Seeded()
	require.NotEmpty(t, st.Rankings())

	type partition struct {
		category, section, gender string
	}
	seen := make(map[partition]map[int]bool)
	for _, r := range st.Rankings() {
		require.NotNil(t, r.Section)
		require.NotNil(t, r.Gender)
		key := partition{r.Category, *r.Section, *r.Gender}
		if seen[key] == nil {
			seen[key] = make(map[int]bool)
		}
		assert.False(t, seen[key][r.Rank], "duplicate rank %d in partition %+v", r.Rank, key)
		seen[key][r.Rank] = true
	}
}

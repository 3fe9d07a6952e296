package apportion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wutcharinth/election-tally/tally"
	"github.com/wutcharinth/election-tally/workbook"
)

func aggregate(t *testing.T, rows []workbook.BallotRow) *tally.Aggregator {
	t.Helper()
	agg := tally.NewAggregator()
	for _, r := range rows {
		agg.Add(r)
	}
	return agg
}

func TestConstituencyOneSeatPerDistrict(t *testing.T) {
	agg := aggregate(t, []workbook.BallotRow{
		{Province: "A", Party: "p1", CandidateName: "c1", Votes: 100, DistrictID: 1},
		{Province: "A", Party: "p2", CandidateName: "c2", Votes: 90, DistrictID: 1},
		{Province: "A", Party: "p1", CandidateName: "c3", Votes: 50, DistrictID: 2},
		{Province: "A", Party: "p2", CandidateName: "c4", Votes: 80, DistrictID: 2},
		{Province: "B", Party: "p1", CandidateName: "c5", Votes: 10, DistrictID: 1},
	})

	Constituency(agg.Provinces(), agg.National())

	a := agg.Provinces()["A"]
	assert.Equal(t, 1, a.Seats["p1"])
	assert.Equal(t, 1, a.Seats["p2"])
	assert.Equal(t, 2, agg.National().Parties["p1"].ConstituencySeats)
	assert.Equal(t, 1, agg.National().Parties["p2"].ConstituencySeats)

	totalDistricts := 0
	totalSeats := 0
	for _, p := range agg.Provinces() {
		totalDistricts += len(p.Districts)
	}
	for _, pt := range agg.National().Parties {
		totalSeats += pt.ConstituencySeats
	}
	assert.Equal(t, totalDistricts, totalSeats)
}

func TestConstituencySkipsDistrictWithoutLeader(t *testing.T) {
	provinces := map[string]*tally.Province{
		"A": {
			PartyVotes: map[string]int{},
			Seats:      map[string]int{},
			Districts:  map[int]*tally.District{1: {LeadingVotes: -1}},
		},
	}
	national := &tally.National{Parties: map[string]*tally.PartyTotals{}}

	Constituency(provinces, national)

	assert.Empty(t, provinces["A"].Seats)
	assert.Empty(t, national.Parties)
}

func TestPartyListLargestRemainder(t *testing.T) {
	// Raw shares 33.4 / 33.3 / 33.3: floors sum to 99, the single leftover
	// seat goes to the largest remainder.
	national := &tally.National{TotalVotes: 1000}
	national.Parties = map[string]*tally.PartyTotals{}
	national.Party("p1").Votes = 334
	national.Party("p2").Votes = 333
	national.Party("p3").Votes = 333

	require.NoError(t, PartyList(national, 100))

	assert.Equal(t, 34, national.Parties["p1"].PartyListSeats)
	assert.Equal(t, 33, national.Parties["p2"].PartyListSeats)
	assert.Equal(t, 33, national.Parties["p3"].PartyListSeats)
}

func TestPartyListSeatConservation(t *testing.T) {
	national := &tally.National{TotalVotes: 0}
	national.Parties = map[string]*tally.PartyTotals{}
	votes := []int{317, 211, 145, 99, 87, 53, 41, 29, 11, 7}
	for i, v := range votes {
		national.Party(partyName(i)).Votes = v
		national.TotalVotes += v
	}

	require.NoError(t, PartyList(national, 100))

	sum := 0
	for _, pt := range national.Parties {
		sum += pt.PartyListSeats
	}
	assert.Equal(t, 100, sum)
}

func TestPartyListDeterministicTieBreak(t *testing.T) {
	// Equal remainders resolve by first-seen order, so repeated runs give
	// identical allocations.
	build := func() *tally.National {
		n := &tally.National{TotalVotes: 400}
		n.Parties = map[string]*tally.PartyTotals{}
		n.Party("p1").Votes = 100
		n.Party("p2").Votes = 100
		n.Party("p3").Votes = 100
		n.Party("p4").Votes = 100
		return n
	}

	first := build()
	require.NoError(t, PartyList(first, 101))

	for range 20 {
		again := build()
		require.NoError(t, PartyList(again, 101))
		for name, pt := range first.Parties {
			assert.Equal(t, pt.PartyListSeats, again.Parties[name].PartyListSeats, name)
		}
	}

	// The odd seat lands on the first-seen party.
	assert.Equal(t, 26, first.Parties["p1"].PartyListSeats)
	assert.Equal(t, 25, first.Parties["p2"].PartyListSeats)
}

func TestPartyListZeroVotes(t *testing.T) {
	national := &tally.National{Parties: map[string]*tally.PartyTotals{}}
	err := PartyList(national, 100)
	assert.ErrorIs(t, err, ErrNoVotes)
}

func TestPartyListConfigurableTotal(t *testing.T) {
	national := &tally.National{TotalVotes: 10}
	national.Parties = map[string]*tally.PartyTotals{}
	national.Party("p1").Votes = 6
	national.Party("p2").Votes = 4

	require.NoError(t, PartyList(national, 500))

	assert.Equal(t, 300, national.Parties["p1"].PartyListSeats)
	assert.Equal(t, 200, national.Parties["p2"].PartyListSeats)
}

func partyName(i int) string {
	return string(rune('a' + i))
}

package tally

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wutcharinth/election-tally/workbook"
)

func row(province, partyName, name string, votes, district int) workbook.BallotRow {
	return workbook.BallotRow{
		Province:      province,
		Party:         partyName,
		Votes:         votes,
		CandidateName: name,
		DistrictID:    district,
	}
}

func TestVoteConservation(t *testing.T) {
	agg := NewAggregator()
	rows := []workbook.BallotRow{
		row("A", "p1", "c1", 100, 1),
		row("A", "p2", "c2", 90, 1),
		row("B", "p1", "c3", 50, 1),
		row("B", "p2", "c4", 80, 2),
	}
	for _, r := range rows {
		agg.Add(r)
	}

	assert.Equal(t, 320, agg.National().TotalVotes)

	provinceSum := 0
	for _, p := range agg.Provinces() {
		provinceSum += p.TotalVotes
	}
	assert.Equal(t, agg.National().TotalVotes, provinceSum)

	partySum := 0
	for _, pt := range agg.National().Parties {
		partySum += pt.Votes
	}
	assert.Equal(t, agg.National().TotalVotes, partySum)
}

func TestRowsMissingProvinceOrPartyAreDiscarded(t *testing.T) {
	agg := NewAggregator()
	agg.Add(row("", "p1", "ghost", 999, 1))
	agg.Add(row("A", "", "ghost", 999, 1))
	agg.Add(row("  ", "p1", "ghost", 999, 1))
	agg.Add(row("A", "p1", "real", 10, 1))

	assert.Equal(t, 3, agg.Skipped())
	assert.Equal(t, 10, agg.National().TotalVotes)

	p := agg.Provinces()["A"]
	require.NotNil(t, p)
	assert.Equal(t, 10, p.TotalVotes)
	assert.Len(t, p.Districts[1].Candidates, 1)
	assert.Len(t, agg.National().Parties, 1)
}

func TestDistrictTieKeepsFirstSeen(t *testing.T) {
	agg := NewAggregator()
	agg.Add(row("A", "p1", "first", 500, 1))
	agg.Add(row("A", "p2", "second", 500, 1))

	d := agg.Provinces()["A"].Districts[1]
	assert.Equal(t, "p1", d.LeadingParty)
	assert.Equal(t, 500, d.LeadingVotes)
}

func TestZeroVoteCandidateLeadsEmptyDistrict(t *testing.T) {
	agg := NewAggregator()
	agg.Add(row("A", "p1", "only", 0, 1))

	d := agg.Provinces()["A"].Districts[1]
	assert.Equal(t, "p1", d.LeadingParty)
	assert.Equal(t, 0, d.LeadingVotes)
}

func TestCandidatesKeepRowOrder(t *testing.T) {
	agg := NewAggregator()
	agg.Add(row("A", "p1", "first", 1, 1))
	agg.Add(row("A", "p2", "second", 3, 1))
	agg.Add(row("A", "p3", "third", 2, 1))

	d := agg.Provinces()["A"].Districts[1]
	require.Len(t, d.Candidates, 3)
	assert.Equal(t, "first", d.Candidates[0].Name)
	assert.Equal(t, "second", d.Candidates[1].Name)
	assert.Equal(t, "third", d.Candidates[2].Name)
	assert.Equal(t, "p2", d.LeadingParty)
}

func TestPartyVotesPerProvince(t *testing.T) {
	agg := NewAggregator()
	agg.Add(row("A", "p1", "c1", 100, 1))
	agg.Add(row("A", "p1", "c2", 50, 2))
	agg.Add(row("A", "p2", "c3", 90, 1))

	p := agg.Provinces()["A"]
	assert.Equal(t, 150, p.PartyVotes["p1"])
	assert.Equal(t, 90, p.PartyVotes["p2"])
	assert.Equal(t, 240, p.TotalVotes)
}

func TestFirstSeenOrderTracking(t *testing.T) {
	agg := NewAggregator()
	agg.Add(row("B", "p2", "c", 1, 1))
	agg.Add(row("A", "p1", "c", 1, 1))
	agg.Add(row("B", "p1", "c", 1, 2))

	assert.Equal(t, []string{"B", "A"}, agg.ProvinceOrder())
	assert.Equal(t, []string{"p2", "p1"}, agg.National().Order)
	assert.Equal(t, []string{"p2", "p1"}, agg.Provinces()["B"].PartyOrder)
}

func TestPartyNamesTrimmed(t *testing.T) {
	agg := NewAggregator()
	agg.Add(row("A", " p1 ", "c1", 5, 1))
	agg.Add(row("A", "p1", "c2", 5, 1))

	assert.Len(t, agg.National().Parties, 1)
	assert.Equal(t, 10, agg.National().Parties["p1"].Votes)
}

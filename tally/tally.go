// Package tally folds ballot rows into district, province, and national
// accumulators in a single pass.
package tally

import (
	"strings"

	"github.com/wutcharinth/election-tally/workbook"
)

// Candidate is one row's candidate entry, kept in row-encounter order.
type Candidate struct {
	Name  string
	Party string
	Votes int
}

// District accumulates the candidates of one constituency. LeadingParty is
// the strict-maximum candidate seen so far; on equal votes the first-seen
// candidate keeps the lead. LeadingVotes starts at -1 so that a zero-vote
// candidate still takes an empty district.
type District struct {
	Candidates   []Candidate
	LeadingParty string
	LeadingVotes int
}

// Province accumulates per-province totals. Seats is filled in later by the
// apportionment pass, one increment per resolved district.
type Province struct {
	TotalVotes int
	PartyVotes map[string]int
	PartyOrder []string
	Seats      map[string]int
	Districts  map[int]*District
}

func (p *Province) district(id int) *District {
	d, ok := p.Districts[id]
	if !ok {
		d = &District{LeadingVotes: -1}
		p.Districts[id] = d
	}
	return d
}

// PartyTotals is one party's slice of the national tally.
type PartyTotals struct {
	Votes             int
	ConstituencySeats int
	PartyListSeats    int
}

// National is the nationwide accumulator. Order records party first-seen
// order; apportionment tie-breaks and report ordering rely on it.
type National struct {
	TotalVotes int
	Parties    map[string]*PartyTotals
	Order      []string
}

// Party returns the totals entry for name, creating it with zero seats on
// first use.
func (n *National) Party(name string) *PartyTotals {
	pt, ok := n.Parties[name]
	if !ok {
		pt = &PartyTotals{}
		n.Parties[name] = pt
		n.Order = append(n.Order, name)
	}
	return pt
}

// Aggregator consumes the row stream once and maintains all three tallies.
type Aggregator struct {
	provinces map[string]*Province
	order     []string
	national  *National
	skipped   int
}

// NewAggregator creates an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		provinces: make(map[string]*Province),
		national:  &National{Parties: make(map[string]*PartyTotals)},
	}
}

// Add folds one ballot row into the district, province, and national
// tallies. A row missing its province or party is discarded before any
// mutation, so it contributes to no total anywhere.
func (a *Aggregator) Add(row workbook.BallotRow) {
	province := strings.TrimSpace(row.Province)
	partyName := strings.TrimSpace(row.Party)
	if province == "" || partyName == "" {
		a.skipped++
		return
	}

	p := a.province(province)
	d := p.district(row.DistrictID)

	d.Candidates = append(d.Candidates, Candidate{
		Name:  row.CandidateName,
		Party: partyName,
		Votes: row.Votes,
	})
	if row.Votes > d.LeadingVotes {
		d.LeadingVotes = row.Votes
		d.LeadingParty = partyName
	}

	if _, ok := p.PartyVotes[partyName]; !ok {
		p.PartyOrder = append(p.PartyOrder, partyName)
	}
	p.TotalVotes += row.Votes
	p.PartyVotes[partyName] += row.Votes

	a.national.TotalVotes += row.Votes
	a.national.Party(partyName).Votes += row.Votes
}

func (a *Aggregator) province(name string) *Province {
	p, ok := a.provinces[name]
	if !ok {
		p = &Province{
			PartyVotes: make(map[string]int),
			Seats:      make(map[string]int),
			Districts:  make(map[int]*District),
		}
		a.provinces[name] = p
		a.order = append(a.order, name)
	}
	return p
}

// Provinces returns the province tallies keyed by province name.
func (a *Aggregator) Provinces() map[string]*Province {
	return a.provinces
}

// ProvinceOrder returns province names in first-seen row order.
func (a *Aggregator) ProvinceOrder() []string {
	return a.order
}

// National returns the nationwide tally.
func (a *Aggregator) National() *National {
	return a.national
}

// Skipped reports how many rows were discarded by the presence check. The
// count is diagnostic only and never feeds any total.
func (a *Aggregator) Skipped() int {
	return a.skipped
}

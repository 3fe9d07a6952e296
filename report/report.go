// Package report joins the tallies with party and geography metadata into
// the results-page JSON document.
package report

import (
	"math"
	"sort"

	"github.com/dustin/go-humanize"

	"github.com/wutcharinth/election-tally/geo"
	"github.com/wutcharinth/election-tally/party"
	"github.com/wutcharinth/election-tally/tally"
)

// topCandidates caps the per-district candidate list. Districts with fewer
// candidates emit fewer entries, never padding.
const topCandidates = 5

// Document is the full output tree.
type Document struct {
	National  NationalReport   `json:"national"`
	Provinces []ProvinceReport `json:"provinces"`
}

// NationalReport summarizes the nationwide result.
type NationalReport struct {
	TotalVotes string        `json:"totalVotes"`
	Turnout    string        `json:"turnout"`
	Parties    []PartyReport `json:"parties"`
}

// PartyReport is one party's national entry. Only parties with at least one
// seat of either kind appear in the national list.
type PartyReport struct {
	Name              string `json:"name"`
	NameTh            string `json:"name_th"`
	Leader            string `json:"leader"`
	Slogan            string `json:"slogan"`
	SloganTh          string `json:"slogan_th"`
	Seats             int    `json:"seats"`
	SeatsConstituency int    `json:"seatsConstituency"`
	SeatsPartyList    int    `json:"seatsPartyList"`
	Votes             string `json:"votes"`
	RawVotes          int    `json:"rawVotes"`
	Color             string `json:"color"`
	Logo              string `json:"logo"`
}

// ProvinceReport is one province's entry, including its map placement.
type ProvinceReport struct {
	Province      string           `json:"province"`
	Region        string           `json:"region"`
	Grid          GridRef          `json:"grid"`
	Winner        string           `json:"winner"`
	TotalVotes    string           `json:"totalVotes"`
	Color         string           `json:"color"`
	VoteBreakdown []VoteShare      `json:"voteBreakdown"`
	SeatBreakdown []SeatShare      `json:"seatBreakdown"`
	Districts     []DistrictReport `json:"districts"`
}

// GridRef is a tile position on the results map.
type GridRef struct {
	R int `json:"r"`
	C int `json:"c"`
}

// VoteShare is one party's slice of a province's votes.
type VoteShare struct {
	Party   string  `json:"party"`
	Votes   int     `json:"votes"`
	Percent float64 `json:"percent"`
	Color   string  `json:"color"`
}

// SeatShare is one party's constituency-seat count within a province.
type SeatShare struct {
	Party string `json:"party"`
	Seats int    `json:"seats"`
	Color string `json:"color"`
}

// DistrictReport is one constituency's summary.
type DistrictReport struct {
	ID       int               `json:"id"`
	Winner   string            `json:"winner"`
	WinnerTh string            `json:"winner_th"`
	Party    string            `json:"party"`
	Color    string            `json:"color"`
	Votes    int               `json:"votes"`
	Logo     string            `json:"logo"`
	Top5     []CandidateReport `json:"top5"`
}

// CandidateReport is one candidate line in a district's top list.
type CandidateReport struct {
	Name    string `json:"name"`
	Party   string `json:"party"`
	PartyTh string `json:"party_th"`
	Votes   int    `json:"votes"`
	Color   string `json:"color"`
	Logo    string `json:"logo"`
}

// Assembler builds the output document from the tallies and the injected
// metadata resolvers.
type Assembler struct {
	parties *party.Resolver
	geo     *geo.Resolver
	turnout string
}

// NewAssembler creates an Assembler. turnout is emitted verbatim in the
// national record; it is a configured figure, not computed from the data.
func NewAssembler(parties *party.Resolver, g *geo.Resolver, turnout string) *Assembler {
	return &Assembler{parties: parties, geo: g, turnout: turnout}
}

// Build assembles the full document from a finished aggregation and
// apportionment pass.
func (a *Assembler) Build(agg *tally.Aggregator) Document {
	doc := Document{
		National:  a.national(agg.National()),
		Provinces: make([]ProvinceReport, 0, len(agg.ProvinceOrder())),
	}
	for _, name := range agg.ProvinceOrder() {
		doc.Provinces = append(doc.Provinces, a.province(name, agg.Provinces()[name]))
	}
	return doc
}

func (a *Assembler) national(n *tally.National) NationalReport {
	parties := make([]PartyReport, 0, len(n.Order))
	for _, name := range n.Order {
		pt := n.Parties[name]
		total := pt.ConstituencySeats + pt.PartyListSeats
		if total == 0 {
			continue
		}
		meta := a.parties.Resolve(name)
		parties = append(parties, PartyReport{
			Name:              meta.NameEn,
			NameTh:            meta.NameTh,
			Leader:            meta.Leader,
			Slogan:            meta.Slogan,
			SloganTh:          meta.SloganTh,
			Seats:             total,
			SeatsConstituency: pt.ConstituencySeats,
			SeatsPartyList:    pt.PartyListSeats,
			Votes:             humanize.Comma(int64(pt.Votes)),
			RawVotes:          pt.Votes,
			Color:             meta.Color,
			Logo:              meta.Logo,
		})
	}

	sort.SliceStable(parties, func(i, j int) bool {
		return parties[i].Seats > parties[j].Seats
	})

	return NationalReport{
		TotalVotes: humanize.Comma(int64(n.TotalVotes)),
		Turnout:    a.turnout,
		Parties:    parties,
	}
}

func (a *Assembler) province(name string, p *tally.Province) ProvinceReport {
	votes := a.voteBreakdown(p)
	seats := a.seatBreakdown(p)

	// Seats take strict priority: only a province with no seats at all
	// falls back to the vote leader.
	winner := ""
	switch {
	case len(seats) > 0:
		winner = seats[0].Party
	case len(votes) > 0:
		winner = votes[0].Party
	}
	meta := a.parties.Resolve(winner)

	grid := a.geo.Grid(name)

	return ProvinceReport{
		Province:      name,
		Region:        string(a.geo.Region(name)),
		Grid:          GridRef{R: grid.Row, C: grid.Col},
		Winner:        meta.NameEn,
		TotalVotes:    humanize.Comma(int64(p.TotalVotes)),
		Color:         meta.Color,
		VoteBreakdown: votes,
		SeatBreakdown: seats,
		Districts:     a.districts(p),
	}
}

func (a *Assembler) voteBreakdown(p *tally.Province) []VoteShare {
	shares := make([]VoteShare, 0, len(p.PartyOrder))
	for _, name := range p.PartyOrder {
		v := p.PartyVotes[name]
		percent := 0.0
		if p.TotalVotes > 0 {
			percent = math.Round(float64(v)/float64(p.TotalVotes)*1000) / 10
		}
		shares = append(shares, VoteShare{
			Party:   name,
			Votes:   v,
			Percent: percent,
			Color:   a.parties.Resolve(name).Color,
		})
	}
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Votes > shares[j].Votes
	})
	return shares
}

func (a *Assembler) seatBreakdown(p *tally.Province) []SeatShare {
	shares := make([]SeatShare, 0, len(p.Seats))
	for _, name := range p.PartyOrder {
		n := p.Seats[name]
		if n == 0 {
			continue
		}
		shares = append(shares, SeatShare{
			Party: name,
			Seats: n,
			Color: a.parties.Resolve(name).Color,
		})
	}
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Seats > shares[j].Seats
	})
	return shares
}

func (a *Assembler) districts(p *tally.Province) []DistrictReport {
	ids := make([]int, 0, len(p.Districts))
	for id := range p.Districts {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	reports := make([]DistrictReport, 0, len(ids))
	for _, id := range ids {
		d := p.Districts[id]
		meta := a.parties.Resolve(d.LeadingParty)
		votes := d.LeadingVotes
		if votes < 0 {
			votes = 0
		}
		reports = append(reports, DistrictReport{
			ID:       id,
			Winner:   meta.NameEn,
			WinnerTh: meta.NameTh,
			Party:    d.LeadingParty,
			Color:    meta.Color,
			Votes:    votes,
			Logo:     meta.Logo,
			Top5:     a.top5(d),
		})
	}
	return reports
}

func (a *Assembler) top5(d *tally.District) []CandidateReport {
	ranked := make([]tally.Candidate, len(d.Candidates))
	copy(ranked, d.Candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Votes > ranked[j].Votes
	})
	if len(ranked) > topCandidates {
		ranked = ranked[:topCandidates]
	}

	out := make([]CandidateReport, 0, len(ranked))
	for _, c := range ranked {
		meta := a.parties.Resolve(c.Party)
		out = append(out, CandidateReport{
			Name:    c.Name,
			Party:   meta.NameEn,
			PartyTh: meta.NameTh,
			Votes:   c.Votes,
			Color:   meta.Color,
			Logo:    meta.Logo,
		})
	}
	return out
}

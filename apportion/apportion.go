// Package apportion assigns constituency and party-list seats from the
// aggregated tallies.
package apportion

import (
	"errors"
	"math"
	"sort"

	"github.com/wutcharinth/election-tally/tally"
)

// DefaultPartyListSeats is the nationwide party-list seat total.
const DefaultPartyListSeats = 100

// ErrNoVotes is returned when party-list apportionment would divide by a
// zero national vote total. Callers treat it as a fatal input-validation
// failure; no output is written.
var ErrNoVotes = errors.New("no votes recorded, cannot apportion party-list seats")

// Constituency awards one seat per district to the district's leading
// party, incrementing both the owning province's seat map and the national
// constituency-seat count. A district with no candidates awards nothing.
func Constituency(provinces map[string]*tally.Province, national *tally.National) {
	for _, p := range provinces {
		for _, d := range p.Districts {
			if d.LeadingParty == "" {
				continue
			}
			p.Seats[d.LeadingParty]++
			national.Party(d.LeadingParty).ConstituencySeats++
		}
	}
}

// PartyList distributes seatTotal seats nationally by the largest-remainder
// method over a Hare quota: each party first receives the floor of its exact
// share, then the leftover seats go one each to the parties with the largest
// fractional remainders. Equal remainders resolve by party first-seen order,
// so reruns over the same input are identical.
func PartyList(national *tally.National, seatTotal int) error {
	if national.TotalVotes == 0 {
		return ErrNoVotes
	}

	type share struct {
		name      string
		seats     int
		remainder float64
	}

	shares := make([]share, 0, len(national.Order))
	assigned := 0
	for _, name := range national.Order {
		raw := float64(national.Parties[name].Votes) / float64(national.TotalVotes) * float64(seatTotal)
		whole := math.Floor(raw)
		shares = append(shares, share{
			name:      name,
			seats:     int(whole),
			remainder: raw - whole,
		})
		assigned += int(whole)
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].remainder > shares[j].remainder
	})

	for i := 0; i < seatTotal-assigned && i < len(shares); i++ {
		shares[i].seats++
	}

	for _, s := range shares {
		national.Parties[s.name].PartyListSeats = s.seats
	}

	return nil
}

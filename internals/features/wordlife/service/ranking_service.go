package service

import (
	"context"
	"strings"

	"wordlife_backend/internals/features/wordlife/model"
	"wordlife_backend/internals/features/wordlife/repository"
)

/* ===================== RESULT SHAPES ===================== */

// TopAndAboveResult carries the #1 entry and at most one "just above me"
// neighbor; the presentation layer shows only those two.
type TopAndAboveResult struct {
	Top   *RankedEntry  `json:"top"`
	Above []RankedEntry `json:"above"`
}

// PersonalRankBlock is one ranking axis for the requesting person. Rank is
// null while the person is not yet participating (never 0, ranks start at 1).
type PersonalRankBlock struct {
	Value       int               `json:"value"`
	Rank        *int              `json:"rank"`
	RankRange   *string           `json:"rank_range"`
	TopAndAbove TopAndAboveResult `json:"top_and_above"`
}

type PersonalRankings struct {
	BibleReading PersonalRankBlock `json:"bible_reading"`
	DailyReading PersonalRankBlock `json:"daily_reading"`
	Sunday       PersonalRankBlock `json:"sunday"`
	Wednesday    PersonalRankBlock `json:"wednesday"`
}

type DistrictRankEntry struct {
	District int `json:"district"`
	Total    int `json:"total"`
	OnSite   int `json:"on_site"`
	Rank     int `json:"rank"`
}

type DistrictRankings struct {
	Total  []DistrictRankEntry `json:"total"`
	OnSite []DistrictRankEntry `json:"on_site"`
}

type RankingsResult struct {
	TotalParticipants int               `json:"total_participants"`
	District          DistrictRankings  `json:"district"`
	Personal          *PersonalRankings `json:"personal,omitempty"`
}

/* ===================== SERVICE ===================== */

// RankingService recomputes the full leaderboard from a fresh store snapshot
// on every request. Aggregates have no persisted identity of their own.
type RankingService struct {
	Store repository.RecordStore
}

func NewRankingService(store repository.RecordStore) *RankingService {
	return &RankingService{Store: store}
}

// Compute fetches the snapshot, de-duplicates it and builds district plus
// personal rankings. When district and name identify a caller, the Personal
// block reports their value/rank/rank-range/neighbors on all four axes.
// A failed fetch aborts the computation; it is never treated as "no data".
func (s *RankingService) Compute(ctx context.Context, district int, name string) (*RankingsResult, error) {
	records, err := s.Store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	auth := Authoritative(records)
	personal, districts := Aggregate(auth)

	res := &RankingsResult{
		TotalParticipants: TotalParticipants(personal),
		District:          rankDistricts(districts),
	}

	// the four personal leaderboards share one entry set, different selectors
	bible := rankPersonal(personal, func(p *PersonalStats) int { return p.BibleReadingTotal })
	daily := rankPersonal(personal, func(p *PersonalStats) int { return p.BibleReadingDays })
	sunday := rankPersonal(personal, func(p *PersonalStats) int { return p.SundayCount })
	wednesday := rankPersonal(personal, func(p *PersonalStats) int { return p.WednesdayCount })

	name = strings.TrimSpace(name)
	if name != "" && district > 0 {
		me := personal[model.PersonKey{District: district, Name: name}]
		stats := PersonalStats{Name: name, District: district}
		if me != nil {
			stats = *me
		}
		res.Personal = &PersonalRankings{
			BibleReading: myBlock(bible, district, name, stats.BibleReadingTotal),
			DailyReading: myBlock(daily, district, name, stats.BibleReadingDays),
			Sunday:       myBlock(sunday, district, name, stats.SundayCount),
			Wednesday:    myBlock(wednesday, district, name, stats.WednesdayCount),
		}
	}
	return res, nil
}

func rankPersonal(personal map[model.PersonKey]*PersonalStats, selector func(*PersonalStats) int) []RankedEntry {
	entries := make([]RankedEntry, 0, len(personal))
	for _, p := range personal {
		entries = append(entries, RankedEntry{
			Name:     p.Name,
			District: p.District,
			Value:    selector(p),
		})
	}
	return AssignRanks(entries)
}

func rankDistricts(districts map[int]*DistrictStats) DistrictRankings {
	byTotal := make([]RankedEntry, 0, len(districts))
	byOnSite := make([]RankedEntry, 0, len(districts))
	for _, d := range districts {
		byTotal = append(byTotal, RankedEntry{District: d.District, Value: d.WednesdayTotal})
		byOnSite = append(byOnSite, RankedEntry{District: d.District, Value: d.WednesdayOnSite})
	}
	return DistrictRankings{
		Total:  toDistrictEntries(AssignRanks(byTotal), districts),
		OnSite: toDistrictEntries(AssignRanks(byOnSite), districts),
	}
}

func toDistrictEntries(ranked []RankedEntry, districts map[int]*DistrictStats) []DistrictRankEntry {
	out := make([]DistrictRankEntry, 0, len(ranked))
	for _, e := range ranked {
		d := districts[e.District]
		out = append(out, DistrictRankEntry{
			District: e.District,
			Total:    d.WednesdayTotal,
			OnSite:   d.WednesdayOnSite,
			Rank:     e.Rank,
		})
	}
	return out
}

func myBlock(ranked []RankedEntry, district int, name string, value int) PersonalRankBlock {
	block := PersonalRankBlock{Value: value}

	var mine *RankedEntry
	for i := range ranked {
		if ranked[i].District == district && ranked[i].Name == name {
			mine = &ranked[i]
			break
		}
	}
	if mine == nil {
		top, _ := TopAndAbove(ranked, 0)
		block.TopAndAbove = TopAndAboveResult{Top: top, Above: []RankedEntry{}}
		return block
	}

	rank := mine.Rank
	rng := RankRange(ranked, rank)
	block.Rank = &rank
	block.RankRange = &rng

	top, above := TopAndAbove(ranked, rank)
	res := TopAndAboveResult{Top: top, Above: []RankedEntry{}}
	if above != nil {
		res.Above = append(res.Above, *above)
	}
	block.TopAndAbove = res
	return block
}

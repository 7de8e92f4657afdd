package scouting

import (
	"sort"

	"github.com/ExcaliDevBot/ExcaliStrategy/internal/models"
)

// minDefenseSamples is the minimum number of recorded defensive-pin
// observations before a defense rating is reported. Fewer samples yield the
// 0 sentinel so a single-match observation is never extrapolated.
const minDefenseSamples = 3

// fieldTotal accumulates one tracked counter: a running sum over entries
// where the counter was recorded, and how many entries recorded it.
type fieldTotal struct {
	sum   float64
	count int
}

func (t *fieldTotal) add(v *float64) {
	if v == nil {
		return
	}
	t.sum += *v
	t.count++
}

func (t fieldTotal) average() float64 {
	if t.count == 0 {
		return 0
	}
	return t.sum / float64(t.count)
}

// Aggregate produces a team's full statistics and per-match score breakdown
// from the complete scouting record collection. Selection is an exact match
// on the record key's team component.
//
// The returned ok flag is false when the record collection itself is empty,
// meaning no source data was fetched at all; callers must then skip any
// write so an earlier good computation is never overwritten with empty
// data. A non-empty collection with no entries for the team still returns
// ok=true, with sentinel-zero stats: that team genuinely has no matches.
func Aggregate(records map[RecordKey]models.ScoutingEntry, teamNumber int) (models.TeamStats, []models.MatchScore, bool) {
	if len(records) == 0 {
		return models.TeamStats{TeamNumber: teamNumber, PerformanceTrend: models.TrendStable}, nil, false
	}

	var selected []models.ScoutingEntry
	for key, entry := range records {
		if key.Team == teamNumber {
			selected = append(selected, entry)
		}
	}

	// Chronological order is an explicit contract here, not an accident of
	// map iteration: trend classification depends on it.
	sort.Slice(selected, func(i, j int) bool {
		return selected[i].MatchNumber < selected[j].MatchNumber
	})

	var (
		autoL1, autoL2, autoL3, autoL4 fieldTotal
		l1, l2, l3, l4                 fieldTotal
		autoRemoveAlgae, removeAlgae   fieldTotal
		defensivePins                  fieldTotal
		processorScore, netScore       fieldTotal
	)

	deepClimbs := 0
	consistent := 0
	scores := make([]models.MatchScore, 0, len(selected))
	totals := make([]float64, 0, len(selected))

	for _, entry := range selected {
		autoL1.add(entry.AutoL1)
		autoL2.add(entry.AutoL2)
		autoL3.add(entry.AutoL3)
		autoL4.add(entry.AutoL4)
		l1.add(entry.L1)
		l2.add(entry.L2)
		l3.add(entry.L3)
		l4.add(entry.L4)
		autoRemoveAlgae.add(entry.AutoRemoveAlgae)
		removeAlgae.add(entry.RemoveAlgae)
		defensivePins.add(entry.DefensivePins)
		processorScore.add(entry.ProcessorScore)
		netScore.add(entry.NetScore)

		if entry.ClimbOption == models.ClimbDeep {
			deepClimbs++
		}

		score := ScoreEntry(entry)
		if score.TotalScore > consistencyThreshold {
			consistent++
		}
		scores = append(scores, score)
		totals = append(totals, score.TotalScore)
	}

	matchesPlayed := len(selected)

	stats := models.TeamStats{
		TeamNumber:      teamNumber,
		AutoL1:          autoL1.average(),
		AutoL2:          autoL2.average(),
		AutoL3:          autoL3.average(),
		AutoL4:          autoL4.average(),
		AutoRemoveAlgae: autoRemoveAlgae.average(),
		L1:              l1.average(),
		L2:              l2.average(),
		L3:              l3.average(),
		L4:              l4.average(),
		RemoveAlgae:     removeAlgae.average(),
		ProcessorScore:  processorScore.average(),
		NetScore:        netScore.average(),
		MatchesPlayed:   matchesPlayed,
		PerformanceTrend: ClassifyTrend(totals),
	}

	if matchesPlayed > 0 {
		stats.ClimbRate = float64(deepClimbs) / float64(matchesPlayed) * 100
		stats.ConsistencyRate = float64(consistent) / float64(matchesPlayed) * 100
	}
	if defensivePins.count >= minDefenseSamples {
		stats.DefenseRating = defensivePins.average()
	}

	return stats, scores, true
}

// Package stats keeps in-memory records of finished games. Old records are
// folded into summary records in blocks of GroupSize so long headless runs
// use bounded memory.
package stats

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// GroupSize is the number of records folded into one summary record.
const GroupSize = 100

// GameRecord is either a single game (CompressionIndex 0) or a summary of
// GamesCount games.
type GameRecord struct {
	ID               string
	StartTime        time.Time
	EndTime          time.Time
	Score            int
	Ticks            int
	Cause            string
	CompressionIndex int
	GamesCount       int
	AverageScore     float64
	MedianScore      float64
	MaxScore         int
	MinScore         int
	AverageTicks     float64
	AverageDuration  float64
	MaxDuration      float64
	MinDuration      float64
}

// GameStats is safe for concurrent use so a renderer can read it while a
// driver records games.
type GameStats struct {
	games []GameRecord
	last  *GameRecord
	mutex sync.RWMutex
}

func NewGameStats() *GameStats {
	return &GameStats{
		games: make([]GameRecord, 0),
	}
}

// AddGame records a finished game and returns its record. The record stays
// valid after the game is folded into a summary.
func (s *GameStats) AddGame(score, ticks int, cause string, startTime, endTime time.Time) GameRecord {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	duration := endTime.Sub(startTime).Seconds()
	rec := GameRecord{
		ID:              uuid.New().String(),
		StartTime:       startTime,
		EndTime:         endTime,
		Score:           score,
		Ticks:           ticks,
		Cause:           cause,
		GamesCount:      1,
		AverageScore:    float64(score),
		MedianScore:     float64(score),
		MaxScore:        score,
		MinScore:        score,
		AverageTicks:    float64(ticks),
		AverageDuration: duration,
		MaxDuration:     duration,
		MinDuration:     duration,
	}
	s.games = append(s.games, rec)
	s.last = &rec

	s.groupGames()
	return rec
}

// groupGames folds every complete block of GroupSize records at one level
// into a single record at the next level.
func (s *GameStats) groupGames() {
	sort.SliceStable(s.games, func(i, j int) bool {
		if s.games[i].CompressionIndex != s.games[j].CompressionIndex {
			return s.games[i].CompressionIndex > s.games[j].CompressionIndex
		}
		return s.games[i].StartTime.Before(s.games[j].StartTime)
	})

	for level := 0; ; level++ {
		var records []GameRecord
		for _, g := range s.games {
			if g.CompressionIndex == level {
				records = append(records, g)
			}
		}
		if len(records) < GroupSize {
			break
		}

		var folded []GameRecord
		for i := 0; i < len(records); i += GroupSize {
			end := i + GroupSize
			if end > len(records) {
				folded = append(folded, records[i:]...)
				break
			}
			folded = append(folded, summarize(records[i:end], level+1))
		}

		rest := make([]GameRecord, 0, len(s.games))
		for _, g := range s.games {
			if g.CompressionIndex != level {
				rest = append(rest, g)
			}
		}
		s.games = append(rest, folded...)
	}
}

func summarize(group []GameRecord, level int) GameRecord {
	out := GameRecord{
		StartTime:        group[0].StartTime,
		EndTime:          group[0].EndTime,
		CompressionIndex: level,
		MaxScore:         group[0].MaxScore,
		MinScore:         group[0].MinScore,
		MaxDuration:      group[0].MaxDuration,
		MinDuration:      group[0].MinDuration,
	}

	var totalScore, totalTicks, totalDuration float64
	var medians []float64
	for _, g := range group {
		out.MaxScore = max(out.MaxScore, g.MaxScore)
		out.MinScore = min(out.MinScore, g.MinScore)
		out.MaxDuration = max(out.MaxDuration, g.MaxDuration)
		out.MinDuration = min(out.MinDuration, g.MinDuration)
		if g.StartTime.Before(out.StartTime) {
			out.StartTime = g.StartTime
		}
		if g.EndTime.After(out.EndTime) {
			out.EndTime = g.EndTime
		}
		n := float64(g.GamesCount)
		totalScore += g.AverageScore * n
		totalTicks += g.AverageTicks * n
		totalDuration += g.AverageDuration * n
		out.GamesCount += g.GamesCount
		for i := 0; i < g.GamesCount; i++ {
			medians = append(medians, g.MedianScore)
		}
	}

	n := float64(out.GamesCount)
	out.AverageScore = totalScore / n
	out.AverageTicks = totalTicks / n
	out.AverageDuration = totalDuration / n
	out.MedianScore = median(medians)
	out.ID = uuid.NewSHA1(uuid.NameSpaceOID, []byte(group[0].ID+group[len(group)-1].ID)).String()
	return out
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sort.Float64s(values)
	mid := len(values) / 2
	if len(values)%2 == 0 {
		return (values[mid-1] + values[mid]) / 2
	}
	return values[mid]
}

// GetStats returns a copy of the records, summaries first.
func (s *GameStats) GetStats() []GameRecord {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]GameRecord, len(s.games))
	copy(out, s.games)
	return out
}

// Last returns the most recently added game, even when it has already been
// folded into a summary.
func (s *GameStats) Last() (GameRecord, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.last == nil {
		return GameRecord{}, false
	}
	return *s.last, true
}

func (s *GameStats) GetGamesPlayed() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	total := 0
	for _, g := range s.games {
		total += g.GamesCount
	}
	return total
}

func (s *GameStats) GetAverageScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.weighted(func(g GameRecord) float64 { return g.AverageScore })
}

func (s *GameStats) GetAverageTicks() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.weighted(func(g GameRecord) float64 { return g.AverageTicks })
}

// GetAverageDuration returns the mean game length in seconds.
func (s *GameStats) GetAverageDuration() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.weighted(func(g GameRecord) float64 { return g.AverageDuration })
}

func (s *GameStats) weighted(field func(GameRecord) float64) float64 {
	var total float64
	var games int
	for _, g := range s.games {
		total += field(g) * float64(g.GamesCount)
		games += g.GamesCount
	}
	if games == 0 {
		return 0
	}
	return total / float64(games)
}

// GetMedianScore weights each record's median by its game count.
func (s *GameStats) GetMedianScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var all []float64
	for _, g := range s.games {
		for i := 0; i < g.GamesCount; i++ {
			all = append(all, g.MedianScore)
		}
	}
	return median(all)
}

func (s *GameStats) GetMaxScore() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	best := 0
	for _, g := range s.games {
		best = max(best, g.MaxScore)
	}
	return best
}

// GetMaxDuration returns the longest game in seconds.
func (s *GameStats) GetMaxDuration() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var longest float64
	for _, g := range s.games {
		longest = max(longest, g.MaxDuration)
	}
	return longest
}

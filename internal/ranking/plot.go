package ranking

import (
	"fmt"
	"strings"
)

// PlotScoresTerminal prints ranked candidates as horizontal score bars,
// best first. Debug aid for one-shot CLI runs.
func PlotScoresTerminal(ranked []ScoredCandidate, title string) {
	if len(ranked) == 0 {
		fmt.Printf("\n%s: no candidates\n", title)
		return
	}

	minScore := ranked[len(ranked)-1].Score
	maxScore := ranked[0].Score

	fmt.Printf("\n%s:\n", title)
	fmt.Println("Rank | Candidate            | Score    | Bar Chart")
	fmt.Println("-----|----------------------|----------|" + strings.Repeat("-", 50))

	maxBarWidth := 50
	for _, sc := range ranked {
		var barWidth int
		if maxScore != minScore {
			barWidth = int((sc.Score - minScore) / (maxScore - minScore) * float64(maxBarWidth))
		} else {
			barWidth = maxBarWidth / 2
		}

		bar := strings.Repeat("█", barWidth)
		if barWidth == 0 {
			bar = "▏"
		}

		fmt.Printf("%4d | %-20s | %.6f | %s\n", sc.Rank, sc.ID, sc.Score, bar)
	}

	fmt.Printf("\nScale: Min=%.6f, Max=%.6f\n", minScore, maxScore)
}

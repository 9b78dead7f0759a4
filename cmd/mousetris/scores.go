package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mousetris/internal/storage"
)

// gameID is the key scores are stored under.
const gameID = "tetris"

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores and overall statistics.

Examples:
  mousetris scores
  mousetris scores --limit 25
  mousetris scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
)

func runScores(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Println("Scores cleared.")
		return
	}

	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Println(titleStyle.Render("High Scores - Mouse Tetris"))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'mousetris play' to set the first high score!")
		return
	}

	fmt.Println(boxStyle.Render(scoreTable(scores).View()))

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println(dimStyle.Render(fmt.Sprintf(
			"%d games, best %d, average %.0f, best level %d, %d rows total",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.BestLevel, stats.TotalRows)))
	}
}

// scoreTable lays out entries as a static table.
func scoreTable(scores []storage.ScoreEntry) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 4},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 5},
		{Title: "Rows", Width: 5},
		{Title: "Date", Width: 16},
	}

	rows := make([]table.Row, len(scores))
	for i, e := range scores {
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(e.Score),
			strconv.Itoa(e.Level),
			strconv.Itoa(e.Rows),
			e.CreatedAt.Format("2006-01-02 15:04"),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithFocused(false),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)
	return t
}

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brick-game/internal/config"
	"github.com/vovakirdan/brick-game/internal/games/tetris"
	"github.com/vovakirdan/brick-game/internal/platform/tui"
	"github.com/vovakirdan/brick-game/internal/registry"
	"github.com/vovakirdan/brick-game/internal/storage"
)

var (
	flagScoresGame  string
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs and the high score",
	Long: `Display the best recorded runs for a game.

With the file backend only the high score is available.

Examples:
  brickgame scores
  brickgame scores --limit 25
  brickgame scores -i
  brickgame scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresGame, "game", tetris.GameID, "Game id")
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a scrollable table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs and the high score")
}

func runScores(_ *cobra.Command, _ []string) {
	if !registry.Exists(flagScoresGame) {
		ids := make([]string, 0)
		for _, info := range registry.List() {
			ids = append(ids, info.ID)
		}
		fail("unknown game %q (available: %s)", flagScoresGame, strings.Join(ids, ", "))
	}
	game, err := registry.Create(flagScoresGame)
	if err != nil {
		fail("creating game: %v", err)
	}
	title := game.Title()

	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	if cfg.Storage.Backend == config.BackendFile {
		showFileHighScore(cfg.Storage.HighScoreFile, title)
		return
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(flagScoresGame); err != nil {
			fail("clearing scores: %v", err)
		}
		fmt.Printf("Scores for %s cleared.\n", title)
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, flagScoresGame, title, width, height); err != nil {
			fail("%v", err)
		}
		return
	}

	scores, err := store.TopScores(flagScoresGame, flagLimit)
	if err != nil {
		fail("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n\n", title)

	if len(scores) == 0 {
		best, _ := store.HighScore(flagScoresGame)
		fmt.Println("No runs recorded yet.")
		if best > 0 {
			fmt.Printf("High score: %s\n", humanize.Comma(int64(best)))
		}
		return
	}

	data := make([][]string, 0, len(scores))
	for i, s := range scores {
		data = append(data, []string{
			"#" + strconv.Itoa(i+1),
			humanize.Comma(int64(s.Score)),
			strconv.Itoa(s.Lines),
			strconv.Itoa(s.Level),
			humanize.Time(s.CreatedAt),
		})
	}
	printTable([]string{"Rank", "Score", "Lines", "Level", "When"}, data)

	stats, err := store.Stats(flagScoresGame)
	if err != nil {
		fail("computing stats: %v", err)
	}
	fmt.Println()
	fmt.Printf("%s games, best %s, average %s, %s lines total, best level %d\n",
		humanize.Comma(int64(stats.GamesCount)),
		humanize.Comma(int64(stats.HighScore)),
		humanize.Comma(int64(stats.AvgScore)),
		humanize.Comma(stats.TotalLines),
		stats.BestLevel,
	)
}

func showFileHighScore(path, title string) {
	fs, err := storage.NewFileStore(path)
	if err != nil {
		fail("%v", err)
	}
	if flagClear {
		if err := os.Remove(fs.Path); err != nil && !os.IsNotExist(err) {
			fail("clearing high score: %v", err)
		}
		fmt.Printf("High score for %s cleared.\n", title)
		return
	}
	best, err := fs.LoadHighScore()
	if err != nil {
		fail("reading high score: %v", err)
	}
	fmt.Printf("High Score - %s: %s\n", title, humanize.Comma(int64(best)))
}

func printTable(header []string, data [][]string) {
	table := tablewriter.NewWriter(os.Stdout)

	table.SetHeader(header)
	table.SetHeaderLine(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(true)

	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetColumnSeparator("  ")
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("   ")

	table.AppendBulk(data)
	table.Render()
}

package common

import (
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/banner"
)

// PrintStartupBanner displays the CLI startup banner for the given mode
// ("extract" or "transform") and logs the same information through arbor.
func PrintStartupBanner(mode string, dataset Dataset, threads int, logger arbor.ILogger) {
	b := banner.New().
		SetStyle(banner.StyleDouble).
		SetBorderColor(banner.ColorGreen).
		SetTextColor(banner.ColorWhite).
		SetBold(true).
		SetWidth(64)

	fmt.Printf("\n")
	b.PrintTopLine()
	b.PrintCenteredText("CORPUSFIELD")
	b.PrintCenteredText("Scholarly Metadata Extraction Pipeline")
	b.PrintSeparatorLine()
	b.PrintKeyValue("Version", GetVersion(), 12)
	b.PrintKeyValue("Mode", mode, 12)
	b.PrintKeyValue("Dataset", string(dataset), 12)
	b.PrintKeyValue("Threads", fmt.Sprintf("%d", threads), 12)
	b.PrintBottomLine()
	fmt.Printf("\n")

	logger.Info().
		Str("version", GetVersion()).
		Str("mode", mode).
		Str("dataset", string(dataset)).
		Int("threads", threads).
		Msg("pipeline started")
}

// PrintShutdownBanner displays the shutdown banner and logs completion.
func PrintShutdownBanner(mode string, logger arbor.ILogger) {
	b := banner.New().
		SetStyle(banner.StyleDouble).
		SetBorderColor(banner.ColorGreen).
		SetTextColor(banner.ColorWhite).
		SetBold(true).
		SetWidth(42)

	b.PrintTopLine()
	b.PrintCenteredText("DONE")
	b.PrintBottomLine()
	fmt.Println()

	logger.Info().Str("mode", mode).Msg("pipeline finished")
}

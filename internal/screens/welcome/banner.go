package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/stratiz/internal/ui/theme"
)

const bannerArt = `
 ███████╗████████╗██████╗  █████╗ ████████╗██╗███████╗
 ██╔════╝╚══██╔══╝██╔══██╗██╔══██╗╚══██╔══╝██║╚══███╔╝
 ███████╗   ██║   ██████╔╝███████║   ██║   ██║  ███╔╝
 ╚════██║   ██║   ██╔══██╗██╔══██║   ██║   ██║ ███╔╝
 ███████║   ██║   ██║  ██║██║  ██║   ██║   ██║███████╗
 ╚══════╝   ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═╝╚══════╝`

const bannerCompact = "S T R A T I Z"

// bannerMinWidth is the narrowest terminal that fits the block letters.
const bannerMinWidth = 58

// RenderBanner returns the STRATIZ banner in gold, or the spaced-out
// fallback on narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Gold).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}

package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizbook/internal/ui/theme"
)

const bannerArt = `
  ██████╗ ██╗   ██╗██╗███████╗██████╗  ██████╗  ██████╗ ██╗  ██╗
 ██╔═══██╗██║   ██║██║╚══███╔╝██╔══██╗██╔═══██╗██╔═══██╗██║ ██╔╝
 ██║   ██║██║   ██║██║  ███╔╝ ██████╔╝██║   ██║██║   ██║█████╔╝
 ██║▄▄ ██║██║   ██║██║ ███╔╝  ██╔══██╗██║   ██║██║   ██║██╔═██╗
 ╚██████╔╝╚██████╔╝██║███████╗██████╔╝╚██████╔╝╚██████╔╝██║  ██╗
  ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝╚═════╝  ╚═════╝  ╚═════╝ ╚═╝  ╚═╝`

const bannerCompact = "Q U I Z B O O K"

// bannerWidth is the widest line of bannerArt.
const bannerWidth = 64

// RenderBanner returns the banner styled in the primary color, falling back
// to a compact form on narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerWidth+4 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}

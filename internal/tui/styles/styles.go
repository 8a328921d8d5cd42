package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	SpotifyGreen = lipgloss.Color("#1DB954")
	SlateDark    = lipgloss.Color("#1F2937")
	DimGray      = lipgloss.Color("#6B7280")
	LightGray    = lipgloss.Color("#9CA3AF")
	White        = lipgloss.Color("#F9FAFB")
	Red          = lipgloss.Color("#EF4444")
	Blue         = lipgloss.Color("#3B82F6")
	Amber        = lipgloss.Color("#F59E0B")
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(SpotifyGreen)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	StatusStyle = lipgloss.NewStyle().
			Foreground(Amber)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(SlateDark).
			Bold(true)

	HighlightStyle = lipgloss.NewStyle().
			Foreground(SlateDark).
			Background(SpotifyGreen).
			Padding(0, 1)

	MatchStyle = lipgloss.NewStyle().
			Foreground(SpotifyGreen).
			Underline(true)
)

// Border styles
var (
	PanelBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray).
			Padding(0, 1)

	FocusedBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SpotifyGreen).
			Padding(0, 1)
)

// Indicator characters
const (
	ExplicitTag = "[E]"
	FavoriteDot = "♥"
)

var (
	ExplicitStyle = lipgloss.NewStyle().Foreground(Red)
	FavoriteStyle = lipgloss.NewStyle().Foreground(SpotifyGreen)
)

// Package banner draws the application title.
package banner

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/thirukguru/hello-docker/shared/ansi"
	"github.com/thirukguru/hello-docker/shared/console"
	"golang.org/x/term"
)

const (
	bannerTitleColorEnv = "HELLO_DOCKER_BANNER_COLOR"
	defaultWidth        = 80
	escapePrefix        = "\x1b["
	escapeReset         = "\x1b[0m"
)

// titleColor is either a go-pretty colour set or a raw escape sequence taken from the environment.
type titleColor struct {
	colors text.Colors
	raw    string
}

func (c titleColor) paint(line string) string {
	switch {
	case c.raw != "":
		return c.raw + line + escapeReset
	case len(c.colors) > 0:
		return c.colors.Sprint(line)
	default:
		return line
	}
}

var bannerTitleColors = map[string]text.Colors{
	"red":       {text.FgRed},
	"green":     {text.FgGreen},
	"yellow":    {text.FgYellow},
	"blue":      {text.FgBlue},
	"magenta":   {text.FgMagenta},
	"cyan":      {text.FgCyan},
	"white":     {text.FgWhite},
	"hired":     {text.FgHiRed},
	"higreen":   {text.FgHiGreen},
	"hiyellow":  {text.FgHiYellow},
	"hiblue":    {text.FgHiBlue},
	"himagenta": {text.FgHiMagenta},
	"hicyan":    {text.FgHiCyan},
	"hiwhite":   {text.FgHiWhite},
}

var (
	bannerTitleColorDefault        = titleColor{colors: text.Colors{text.FgHiCyan}}
	bannerTitleColorBlueBackground = titleColor{colors: text.Colors{text.FgHiYellow}}
)

var titleLines = []string{
	"██╗  ██╗ ███████╗ ██╗      ██╗       ██████╗ ",
	"██║  ██║ ██╔════╝ ██║      ██║      ██╔═══██╗",
	"███████║ █████╗   ██║      ██║      ██║   ██║",
	"██╔══██║ ██╔══╝   ██║      ██║      ██║   ██║",
	"██║  ██║ ███████╗ ███████╗ ███████╗ ╚██████╔╝",
	"╚═╝  ╚═╝ ╚══════╝ ╚══════╝ ╚══════╝  ╚═════╝ ",
}

// DrawBannerTitle writes the title banner to w, centred on the width of stdout.
func DrawBannerTitle(w io.Writer) error {
	width := defaultWidth

	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if cols, _, err := term.GetSize(fd); err == nil && cols > 0 {
			width = cols
		}
	}

	var color titleColor
	if ansi.EnableANSI(os.Stdout) {
		color = bannerTitleColor()
	}

	return drawBanner(w, width, color)
}

func drawBanner(w io.Writer, width int, color titleColor) error {
	for _, line := range titleLines {
		pad := 0
		if n := utf8.RuneCountInString(line); width > n {
			pad = (width - n) / 2
		}

		if _, err := fmt.Fprintln(w, strings.Repeat(" ", pad)+color.paint(line)); err != nil {
			return fmt.Errorf("failed to draw banner: %w", err)
		}
	}

	return nil
}

func bannerTitleColor() titleColor {
	if color, ok := bannerTitleColorFromEnv(os.Getenv(bannerTitleColorEnv)); ok {
		return color
	}

	if console.IsBlueBackground() {
		return bannerTitleColorBlueBackground
	}

	return bannerTitleColorDefault
}

// bannerTitleColorFromEnv accepts a colour name or a raw escape sequence such as "\x1b[38;2;255;153;0m".
func bannerTitleColorFromEnv(raw string) (titleColor, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return titleColor{}, false
	}

	if strings.HasPrefix(raw, escapePrefix) {
		return titleColor{raw: raw}, true
	}

	colors, ok := bannerTitleColors[strings.ToLower(raw)]
	if !ok {
		return titleColor{}, false
	}

	return titleColor{colors: colors}, true
}

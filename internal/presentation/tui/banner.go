package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []string{
	`             _     _                 _ _    `,
	`   __ _ _ __(_) __| |_      ____ _| | | __`,
	`  / _' | '__| |/ _' \ \ /\ / / _' | | |/ /`,
	` | (_| | |  | | (_| |\ V  V / (_| | |   < `,
	`  \__, |_|  |_|\__,_| \_/\_/ \__,_|_|_|\_\`,
	`  |___/                                    `,
}

var bannerColors = []string{"#34d399", "#2dd4bf", "#22d3ee", "#38bdf8", "#60a5fa", "#818cf8"}

// PrintBanner writes the gridwalk ASCII banner followed by the version.
func PrintBanner(w io.Writer, version string) {
	p := termenv.EnvColorProfile()

	fmt.Fprintln(w)
	for i, line := range bannerLines {
		fmt.Fprintln(w, termenv.String(line).Foreground(p.Color(bannerColors[i])))
	}
	if version != "" {
		fmt.Fprintln(w, termenv.String("  v"+version).Faint())
	}
	fmt.Fprintln(w)
}

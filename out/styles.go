// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import "github.com/charmbracelet/lipgloss"

// Styles holds the styles of reports
type Styles struct {
	Title  lipgloss.Style // report and table titles
	Header lipgloss.Style // table header cells
	Cell   lipgloss.Style // table body cells
	Border lipgloss.Style // table borders
	Good   lipgloss.Style // favourable verdicts; e.g. "Yes" symmetric
	Bad    lipgloss.Style // unfavourable verdicts
	Faint  lipgloss.Style // secondary information
}

// GetDefaultStyles returns the default report styles
func GetDefaultStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")),
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F7B801")).Padding(0, 1).Align(lipgloss.Center),
		Cell:   lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right),
		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("#444444")),
		Good:   lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")).Bold(true),
		Bad:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Faint:  lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
	}
}

// Sty holds the styles used by all reports
var Sty = GetDefaultStyles()

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements terminal reports of laminate stiffness results
package out

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cpmech/gosl/io"
	"github.com/wr1/golam/clt"
)

// labels of rows and columns of stiffness matrices
var (
	labels3    = []string{"x", "y", "xy"}
	labelsRow6 = []string{"Nx", "Ny", "Nxy", "Mx", "My", "Mxy"}
	labelsCol6 = []string{"εx", "εy", "γxy", "κx", "κy", "κxy"}
)

// MatrixTable returns a table with the entries of m formatted with numfmt; e.g. "%.4e"
func MatrixTable(title string, m [][]float64, numfmt string) string {
	rlab, clab := matLabels(len(m))
	rows := make([][]string, len(m))
	for i := range m {
		rows[i] = make([]string, 1+len(m[i]))
		rows[i][0] = rlab[i]
		for j, v := range m[i] {
			rows[i][1+j] = io.Sf(numfmt, v)
		}
	}
	return Table(title, append([]string{""}, clab...), rows)
}

// CouplingRow holds the coupling result of one laminate
type CouplingRow struct {
	Name   string    // name of laminate; may be empty
	Angles []float64 // stacking sequence [deg]
	Norm   float64   // max|B|
}

// NewCouplingRow returns the coupling result of lam
func NewCouplingRow(name string, lam *clt.Laminate) CouplingRow {
	return CouplingRow{Name: name, Angles: lam.Angles(), Norm: lam.CouplingNorm()}
}

// Uncoupled tells whether the laminate has no bending-extension coupling
func (o CouplingRow) Uncoupled(tol float64) bool {
	return o.Norm <= tol
}

// CouplingSummary returns the summary table of coupling terms. A laminate is
// reported as symmetric when max|B| <= tol
func CouplingSummary(rows []CouplingRow, tol float64) string {
	named := false
	for _, r := range rows {
		if r.Name != "" {
			named = true
		}
	}
	header := []string{"Stacking Sequence", "Max |B|", "Is Symmetric"}
	if named {
		header = append([]string{"Laminate"}, header...)
	}
	cells := make([][]string, len(rows))
	for i, r := range rows {
		verdict := Sty.Bad.Render("No")
		if r.Uncoupled(tol) {
			verdict = Sty.Good.Render("Yes")
		}
		cells[i] = []string{Angles(r.Angles), io.Sf("%.2e", r.Norm), verdict}
		if named {
			cells[i] = append([]string{r.Name}, cells[i]...)
		}
	}
	return Table("Summary of Coupling Terms", header, cells)
}

// Table returns a titled table with the default styles
func Table(title string, header []string, rows [][]string) string {
	t := newTable(header, rows)
	if title == "" {
		return t.Render()
	}
	return lipgloss.JoinVertical(lipgloss.Left, Sty.Title.Render(title), t.Render())
}

// LaminateReport returns the thickness, the plies and the stiffness matrices of lam
func LaminateReport(name string, lam *clt.Laminate, numfmt string) string {
	var b strings.Builder
	b.WriteString(Sty.Title.Render(io.Sf("Laminate %s", name)))
	b.WriteString("\n")
	b.WriteString(Sty.Faint.Render(io.Sf("stacking = %s   plies = %d   h = %.6g", Angles(lam.Angles()), lam.NumPlies(), lam.Thickness())))
	b.WriteString("\n")
	plies := lam.Plies()
	rows := make([][]string, len(plies))
	for k, p := range plies {
		mat := p.Mat.Name
		if mat == "" {
			mat = "-"
		}
		rows[k] = []string{io.Sf("%d", k), io.Sf("%g", p.Angle), mat, io.Sf("%.6g", p.Thickness()), io.Sf("%.6g", p.Zbot), io.Sf("%.6g", p.Ztop)}
	}
	b.WriteString(newTable([]string{"ply", "θ", "material", "t", "zbot", "ztop"}, rows).Render())
	b.WriteString("\n")
	b.WriteString(MatrixTable("ABD", lam.ABD(), numfmt))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		MatrixTable("A (extension)", lam.A(), numfmt), " ",
		MatrixTable("B (coupling)", lam.B(), numfmt), " ",
		MatrixTable("D (bending)", lam.D(), numfmt)))
	return b.String()
}

// PrintMat prints a matrix with gosl's io.Pf
func PrintMat(name string, m [][]float64, numfmt string) {
	io.Pf("%s =\n", name)
	for i := range m {
		for j := range m[i] {
			io.Pf(numfmt+" ", m[i][j])
		}
		io.Pf("\n")
	}
}

// Angles formats a stacking sequence; e.g. "[90, 0, 90]"
func Angles(θ []float64) string {
	s := make([]string, len(θ))
	for i, a := range θ {
		s[i] = io.Sf("%g", a)
	}
	return "[" + strings.Join(s, ", ") + "]"
}

// newTable allocates a table with the default styles
func newTable(header []string, rows [][]string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(Sty.Border).
		Headers(header...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return Sty.Header
			}
			return Sty.Cell
		})
}

// matLabels returns the labels of rows and columns of an n×n matrix
func matLabels(n int) (rows, cols []string) {
	switch n {
	case 3:
		return labels3, labels3
	case 6:
		return labelsRow6, labelsCol6
	}
	rows = make([]string, n)
	for i := range rows {
		rows[i] = io.Sf("%d", i+1)
	}
	return rows, rows
}

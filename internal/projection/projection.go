// Package projection turns decoded process entries into table rows.
package projection

import (
	"strconv"

	"hostdash/internal/gauge"
	"hostdash/internal/severity"
	"hostdash/internal/snapshot"
)

// Row is one display row of the process table.
type Row struct {
	PID     int32
	Name    string
	CPUText string
	RAMText string
	User    string
	Tier    severity.Tier
}

// Cells returns the row as table cells in column order.
func (r Row) Cells() []string {
	return []string{strconv.Itoa(int(r.PID)), r.Name, r.CPUText, r.RAMText, r.User}
}

// Columns are the process table headers, matching Row.Cells.
var Columns = []string{"PID", "Name", "CPU %", "RAM %", "User"}

// Rows projects every valid entry of procs, keeping provider order. The
// tier is taken from the entry's CPU share.
func Rows(procs snapshot.ProcessList, th severity.Thresholds) []Row {
	rows := make([]Row, 0, procs.Len())
	for _, p := range procs.Entries() {
		rows = append(rows, Row{
			PID:     p.PID,
			Name:    p.Name,
			CPUText: gauge.Label(p.CPUPercent),
			RAMText: gauge.Label(p.RAMPercent),
			User:    p.User,
			Tier:    th.Classify(p.CPUPercent),
		})
	}
	return rows
}

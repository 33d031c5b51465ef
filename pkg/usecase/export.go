package usecase

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/holodeck/pkg/domain/model"
)

// WriteCSV writes a header of fields followed by one line per row. List values are
// joined with ",". Missing values are written empty.
func WriteCSV(w io.Writer, fields []string, rows []map[string]any) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(fields); err != nil {
		return goerr.Wrap(err, "failed to write csv header")
	}

	record := make([]string, len(fields))
	for _, row := range rows {
		for i, f := range fields {
			record[i] = csvValue(row[f])
		}
		if err := cw.Write(record); err != nil {
			return goerr.Wrap(err, "failed to write csv record")
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return goerr.Wrap(err, "failed to flush csv")
	}
	return nil
}

func csvValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = csvValue(e)
		}
		return strings.Join(parts, ",")
	case []string:
		return strings.Join(x, ",")
	default:
		return fmt.Sprint(x)
	}
}

// ReportTable lays out a report for export: the score, then the entity properties in
// name order, then the per-pair breakdown fields
func ReportTable(report *model.Report) ([]string, []map[string]any) {
	reserved := map[string]bool{
		model.FieldScore: true,
	}
	var pairFields []string
	for _, slot := range report.PairIndex {
		pairFields = append(pairFields, slot.CountField())
		reserved[slot.CountField()] = true
		for _, pid := range slot.AssociationProperties {
			pairFields = append(pairFields, slot.AssociationField(pid))
			reserved[slot.AssociationField(pid)] = true
		}
		for _, pid := range slot.EntityProperties {
			pairFields = append(pairFields, slot.EntityField(pid))
			reserved[slot.EntityField(pid)] = true
		}
	}

	seen := make(map[string]bool)
	var entityFields []string
	for _, row := range report.Rows {
		for k := range row {
			if reserved[k] || seen[k] {
				continue
			}
			seen[k] = true
			entityFields = append(entityFields, k)
		}
	}
	sort.Strings(entityFields)

	fields := append([]string{model.FieldScore}, entityFields...)
	fields = append(fields, pairFields...)

	rows := make([]map[string]any, len(report.Rows))
	for i, row := range report.Rows {
		rows[i] = row
	}
	return fields, rows
}

// Package csvio writes mapping and macro-variable tables to CSV. There is
// no special CSV dialect involved, so this stays on encoding/csv.
package csvio

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/viant-archive/lineagecli/internal/report"
)

// WriteMapping writes a mapping table (script or log mode, same schema) to
// path as CSV with a header row.
func WriteMapping(path string, rows []report.MappingRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"Sequence", "Start Line Number", "End Line Number", "Procedure Type", "Inputs", "Outputs"}); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.Sequence),
			strconv.Itoa(r.StartLine),
			strconv.Itoa(r.EndLine),
			r.ProcedureKind,
			r.Inputs,
			r.Outputs,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteMacroVars writes the macro-variable table (script mode only) to path
// as CSV with a header row.
func WriteMacroVars(path string, rows []report.MacroVarRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"Sequence", "Start Line Number", "End Line Number", "Procedure Type", "Inputs", "Outputs", "Values"}); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.Sequence),
			strconv.Itoa(r.StartLine),
			strconv.Itoa(r.EndLine),
			r.Kind,
			r.InputRef,
			r.OutputName,
			r.Value,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return w.Error()
}

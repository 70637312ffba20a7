package reporting

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteSimulationCSV writes the surviving simulated per-share values, one
// per row in draw order, for downstream distribution plotting.
func WriteSimulationCSV(path string, values []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"draw", "value_per_share"}); err != nil {
		return err
	}
	for i, v := range values {
		if err := w.Write([]string{strconv.Itoa(i), fmtFloat(v)}); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteFCFSeriesCSV writes the projected undiscounted FCF series, year 0
// through T.
func WriteFCFSeriesCSV(path string, series []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"year", "fcf"}); err != nil {
		return err
	}
	for year, v := range series {
		if err := w.Write([]string{strconv.Itoa(year), fmtFloat(v)}); err != nil {
			return err
		}
	}
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}

/*
package io reads survey files and mode configuration files and writes
interpolation results.
*/
package io

import (
	"fmt"
	"os"
	"strings"

	"github.com/phil-mansfield/table"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/phil-mansfield/wellpath/angle"
	"github.com/phil-mansfield/wellpath/survey"
)

const (
	TableFormat = "table"
	YAMLFormat  = "yaml"
)

// Columns gives the zero-indexed columns of a table survey.
type Columns struct {
	Depth, Inclination, Azimuth int
}

// DefaultColumns is the "md inc azm" layout.
var DefaultColumns = Columns{0, 1, 2}

// ReadSurvey reads a survey file of the given format. unit is the angle unit
// of table surveys and the default unit of YAML surveys.
func ReadSurvey(
	file, format string, cols Columns, unit angle.Unit,
) (*survey.Stations, error) {
	switch format {
	case TableFormat:
		return ReadTableSurvey(file, cols, unit)
	case YAMLFormat:
		return ReadYAMLSurvey(file, unit)
	}
	return nil, fmt.Errorf("Unrecognized survey format '%s'.", format)
}

// ReadTableSurvey reads a whitespace-separated survey table. Lines starting
// with '#' are comments.
func ReadTableSurvey(
	file string, cols Columns, unit angle.Unit,
) (*survey.Stations, error) {
	colIdxs := []int{cols.Depth, cols.Inclination, cols.Azimuth}
	data, err := table.ReadTable(file, colIdxs, nil)
	if err != nil {
		return nil, err
	}

	mds, incs, azms := data[0], data[1], data[2]
	st, err := survey.FromArrays(mds, incs, azms, unit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	logDuplicates(file, len(mds), st)
	return st, nil
}

// yamlSurvey is the layout of a YAML survey file:
//
//	unit: deg
//	stations:
//	  - {md: 214.13724, inc: 5.5, azm: 45}
//	  - {md: "598.8", inc: 29.75, azm: 77.05, unit: deg}
//
// Numbers may be written as strings. A station's own unit overrides the
// file's.
type yamlSurvey struct {
	Unit     string                   `yaml:"unit"`
	Stations []map[string]interface{} `yaml:"stations"`
}

var yamlKeys = map[string][]string{
	"md":  {"md", "depth", "position"},
	"inc": {"inc", "inclination"},
	"azm": {"azm", "azi", "azimuth"},
}

// ReadYAMLSurvey reads a YAML survey file. unit is used when neither the
// file nor a station names a unit.
func ReadYAMLSurvey(file string, unit angle.Unit) (*survey.Stations, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	st, n, err := parseYAMLSurvey(b, unit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	logDuplicates(file, n, st)
	return st, nil
}

func parseYAMLSurvey(b []byte, unit angle.Unit) (*survey.Stations, int, error) {
	ys := yamlSurvey{}
	if err := yaml.Unmarshal(b, &ys); err != nil {
		return nil, 0, err
	}

	fileUnit := unit.String()
	if ys.Unit != "" {
		fileUnit = ys.Unit
	}

	rs := make([]survey.Record, len(ys.Stations))
	for i, m := range ys.Stations {
		r := survey.Record{Unit: fileUnit}
		if u, ok := m["unit"]; ok {
			r.Unit = cast.ToString(u)
		}

		var err error
		if r.Position, err = yamlFloat(m, "md"); err != nil {
			return nil, 0, fmt.Errorf("station %d: %w", i, err)
		}
		if r.Inclination, err = yamlFloat(m, "inc"); err != nil {
			return nil, 0, fmt.Errorf("station %d: %w", i, err)
		}
		if r.Azimuth, err = yamlFloat(m, "azm"); err != nil {
			return nil, 0, fmt.Errorf("station %d: %w", i, err)
		}
		rs[i] = r
	}

	st, err := survey.FromRecords(rs)
	if err != nil {
		return nil, 0, err
	}
	return st, len(rs), nil
}

func yamlFloat(m map[string]interface{}, key string) (float64, error) {
	for _, name := range yamlKeys[key] {
		for k, v := range m {
			if strings.EqualFold(k, name) {
				x, err := cast.ToFloat64E(v)
				if err != nil {
					return 0, fmt.Errorf("field '%s': %w", k, err)
				}
				return x, nil
			}
		}
	}
	return 0, fmt.Errorf("missing '%s' field", key)
}

func logDuplicates(file string, n int, st *survey.Stations) {
	if dups := n - st.Size(); dups > 0 {
		Logf("%s: %d duplicate stations were replaced by later rows.",
			file, dups)
	}
}

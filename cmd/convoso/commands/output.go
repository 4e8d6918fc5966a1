package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"slices"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/convoso-client/internal/constants"
	"github.com/fivetwenty-io/convoso-client/internal/filter"
)

// Renderer prints records in the configured format after applying the
// configured filter.
type Renderer struct {
	Out    io.Writer
	Format string
	Filter string
}

// NewRenderer returns a renderer configured from viper.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{
		Out:    out,
		Format: viper.GetString(keyOutput),
		Filter: viper.GetString(keyFilter),
	}
}

// Render prints records, a slice of records or a single record. Table output
// shows the given columns, which are JSON keys of a record.
func (r *Renderer) Render(records any, columns ...string) error {
	rows, err := toRows(records)
	if err != nil {
		return err
	}

	if strings.TrimSpace(r.Filter) != "" {
		f, err := filter.Compile(r.Filter)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}

		rows, err = f.Apply(rows)
		if err != nil {
			return err
		}
	}

	switch r.Format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(r.Out)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		err = encoder.Encode(rows)
		if err != nil {
			return fmt.Errorf("encoding data to JSON: %w", err)
		}

		return nil
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(r.Out)
		encoder.SetIndent(constants.JSONIndentSize)

		err = encoder.Encode(rows)
		if err != nil {
			return fmt.Errorf("encoding data to YAML: %w", err)
		}

		return nil
	case constants.FormatTable, "":
		return r.renderTable(rows, columns)
	default:
		return fmt.Errorf("%w: %q", constants.ErrInvalidOutput, r.Format)
	}
}

func (r *Renderer) renderTable(rows []filter.Row, columns []string) error {
	if len(rows) == 0 {
		_, _ = io.WriteString(r.Out, "No records found\n")

		return nil
	}

	if len(columns) == 0 {
		columns = sortedKeys(rows[0])
	}

	header := make([]any, len(columns))
	for i, column := range columns {
		header[i] = strings.ToUpper(strings.ReplaceAll(column, "_", " "))
	}

	table := tablewriter.NewWriter(r.Out)
	table.Header(header...)

	for _, row := range rows {
		cells := make([]string, len(columns))
		for i, column := range columns {
			cells[i] = formatCell(lookup(row, column))
		}

		_ = table.Append(cells)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// toRows converts records to rows. A single record becomes one row.
func toRows(records any) ([]filter.Row, error) {
	if records == nil {
		return nil, nil
	}

	rv := reflect.ValueOf(records)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, nil
		}

		rv = rv.Elem()
	}

	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		return filter.Rows(records)
	}

	if rv.Kind() == reflect.Map && isRecord(rv.Type().Elem()) {
		// Keyed collections such as users by id render one row per entry.
		keys := rv.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return strings.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
		})

		values := make([]any, 0, len(keys))
		for _, key := range keys {
			values = append(values, rv.MapIndex(key).Interface())
		}

		return filter.Rows(values)
	}

	rows, err := filter.Rows([]any{records})
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func isRecord(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t.Kind() == reflect.Struct
}

// lookup resolves a dotted column such as "status.status".
func lookup(row filter.Row, column string) any {
	var current any = row

	for _, part := range strings.Split(column, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}

		current = m[part]
	}

	return current
}

func sortedKeys(row filter.Row) []string {
	keys := make([]string, 0, len(row))
	for key := range row {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	return keys
}

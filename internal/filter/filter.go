// Package filter evaluates expr-lang boolean expressions against result rows.
//
// A row is the JSON object form of one record (a lead, a DNC entry, an agent
// snapshot, ...). Its keys are exposed as variables, so
//
//	status == "SALE" && num(called_count) > 3
//
// keeps the rows whose status is SALE and that were called more than three
// times. Unknown keys evaluate to nil rather than failing. The case-insensitive
// helpers icontains, istartsWith and iendsWith sit alongside expr's own contains,
// startsWith and endsWith operators:
//
//	icontains(first_name, "ad") || last_name startsWith "Love"
package filter

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Row is one record in map form.
type Row = map[string]any

// Filter is a compiled expression. It is safe for concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile compiles expression into a Filter.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{Expression: expression, Reason: "empty expression"}
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &Filter{expression: expression, program: program}, nil
}

// Expression returns the source expression.
func (f *Filter) Expression() string {
	return f.expression
}

// Match reports whether row satisfies the filter.
func (f *Filter) Match(row Row) (bool, error) {
	env := helperFunctions()
	for k, v := range row {
		if _, reserved := env[k]; reserved {
			continue
		}

		env[k] = v
	}

	env["row"] = row

	out, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("running filter: %w", err)
	}

	matched, ok := out.(bool)

	return ok && matched, nil
}

// Apply returns the rows that satisfy the filter, in order. A nil filter
// keeps every row.
func (f *Filter) Apply(rows []Row) ([]Row, error) {
	if f == nil {
		return rows, nil
	}

	kept := make([]Row, 0, len(rows))

	for i, row := range rows {
		ok, err := f.Match(row)
		if err != nil {
			return nil, &EvaluationError{Expression: f.expression, Row: i, Err: err}
		}

		if ok {
			kept = append(kept, row)
		}
	}

	return kept, nil
}

// Rows converts a slice of records into rows through their JSON form.
func Rows(records any) ([]Row, error) {
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encoding records: %w", err)
	}

	var rows []Row

	err = json.Unmarshal(data, &rows)
	if err != nil {
		return nil, fmt.Errorf("records are not a list of objects: %w", err)
	}

	return rows, nil
}

// helperFunctions returns the functions available to every expression.
func helperFunctions() map[string]any {
	return map[string]any{
		// String helpers, case-insensitive. contains, startsWith and endsWith
		// are operators in expr and cannot be redefined.
		"icontains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"istartsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"iendsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
		// num reads the numeric strings Convoso uses for counts and ids.
		"num": toNumber,
		// Date helpers
		"daysSince": func(date string) int {
			t, ok := parseDate(date)
			if !ok {
				return -1
			}

			return int(time.Since(t).Hours() / 24)
		},
		"parseDate": func(date string) time.Time {
			t, _ := parseDate(date)

			return t
		},
		"now": time.Now,
	}
}

func toNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, _ := n.Float64()

		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}

		return f
	case bool:
		if n {
			return 1
		}

		return 0
	default:
		return 0
	}
}

var dateLayouts = []string{
	time.DateTime,
	time.DateOnly,
	time.RFC3339,
	"2006-01-02 15:04:05.000000",
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

package carometro

import (
	"net/url"
	"regexp"
	"sort"
	"strconv"

	apperrors "mentoria/internal/errors"
)

var indexedKey = regexp.MustCompile(`^([a-z_]+)\[(\d+)\]\[([a-z_]+)\]$`)

// readGroup decodes one repeated record group into rows keyed by sub-field.
func (a *Aggregator) readGroup(form url.Values, group string, fields []string) ([]map[string]string, error) {
	if rows, ok := readIndexedGroup(form, group, fields); ok {
		return rows, nil
	}
	return a.readParallelGroup(form, group, fields)
}

// readIndexedGroup reads group[i][field] keys ordered by i. ok is false when none are present.
func readIndexedGroup(form url.Values, group string, fields []string) ([]map[string]string, bool) {
	allowed := make(map[string]bool, len(fields))
	for _, f := range fields {
		allowed[f] = true
	}

	byIndex := map[int]map[string]string{}
	for key, values := range form {
		m := indexedKey.FindStringSubmatch(key)
		if m == nil || m[1] != group || !allowed[m[3]] || len(values) == 0 {
			continue
		}
		idx, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		row, ok := byIndex[idx]
		if !ok {
			row = make(map[string]string, len(fields))
			byIndex[idx] = row
		}
		row[m[3]] = values[0]
	}
	if len(byIndex) == 0 {
		return nil, false
	}

	indices := make([]int, 0, len(byIndex))
	for idx := range byIndex {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	rows := make([]map[string]string, 0, len(indices))
	for _, idx := range indices {
		rows = append(rows, byIndex[idx])
	}
	return rows, true
}

// readParallelGroup zips group[][field] lists by position, stopping at the shortest list.
// In strict mode unequal lengths are a validation error.
func (a *Aggregator) readParallelGroup(form url.Values, group string, fields []string) ([]map[string]string, error) {
	columns := make([][]string, len(fields))
	n := -1
	mismatch := false
	for i, f := range fields {
		columns[i] = form[group+"[]["+f+"]"]
		if n >= 0 && len(columns[i]) != n {
			mismatch = true
		}
		if n < 0 || len(columns[i]) < n {
			n = len(columns[i])
		}
	}
	if mismatch && a.opts.StrictGroups {
		return nil, apperrors.NewValidationError(group, "sub-fields have different numbers of entries")
	}

	rows := make([]map[string]string, 0, n)
	for row := 0; row < n; row++ {
		r := make(map[string]string, len(fields))
		for i, f := range fields {
			r[f] = columns[i][row]
		}
		rows = append(rows, r)
	}
	return rows, nil
}

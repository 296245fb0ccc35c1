package geo

import (
	"errors"
	"fmt"
)

// ErrUnknownDistrict is returned when a district is not in the reference table.
var ErrUnknownDistrict = errors.New("unknown district")

// District is a district and its wards in display order.
type District struct {
	Name  string   `json:"name"`
	Wards []string `json:"wards"`
}

// Table maps districts to their wards. It is built once and never mutated.
type Table struct {
	districts []District
	index     map[string]int
}

// Builtin returns the reference table compiled into the binary.
func Builtin() *Table {
	t, err := NewTable(builtin)
	if err != nil {
		panic(fmt.Sprintf("geo: invalid built-in table: %v", err))
	}
	return t
}

// NewTable validates and copies districts into a Table.
func NewTable(districts []District) (*Table, error) {
	if len(districts) == 0 {
		return nil, errors.New("reference table has no districts")
	}

	t := &Table{
		districts: make([]District, len(districts)),
		index:     make(map[string]int, len(districts)),
	}
	for i, d := range districts {
		if d.Name == "" {
			return nil, fmt.Errorf("district %d has no name", i)
		}
		if _, dup := t.index[d.Name]; dup {
			return nil, fmt.Errorf("district %q listed twice", d.Name)
		}
		if len(d.Wards) == 0 {
			return nil, fmt.Errorf("district %q has no wards", d.Name)
		}
		seen := make(map[string]bool, len(d.Wards))
		for _, w := range d.Wards {
			if w == "" || seen[w] {
				return nil, fmt.Errorf("district %q has an empty or duplicate ward %q", d.Name, w)
			}
			seen[w] = true
		}
		t.index[d.Name] = i
		t.districts[i] = District{Name: d.Name, Wards: append([]string(nil), d.Wards...)}
	}
	return t, nil
}

// Len is the number of districts.
func (t *Table) Len() int {
	return len(t.districts)
}

// Districts returns district names in table order.
func (t *Table) Districts() []string {
	names := make([]string, len(t.districts))
	for i, d := range t.districts {
		names[i] = d.Name
	}
	return names
}

// Has reports whether district is in the table.
func (t *Table) Has(district string) bool {
	_, ok := t.index[district]
	return ok
}

// Wards returns the wards of district in display order.
func (t *Table) Wards(district string) ([]string, error) {
	i, ok := t.index[district]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDistrict, district)
	}
	return append([]string(nil), t.districts[i].Wards...), nil
}

// All returns a copy of every district with its wards.
func (t *Table) All() []District {
	out := make([]District, len(t.districts))
	for i, d := range t.districts {
		out[i] = District{Name: d.Name, Wards: append([]string(nil), d.Wards...)}
	}
	return out
}

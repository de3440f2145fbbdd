package surface

import "fmt"

// Defaults bundles a surface's default geometry with the note shown in its prompt header
type Defaults struct {
	Geometry
	Note string `json:"note,omitempty" yaml:"note,omitempty"`
}

// Table holds one Defaults record per required surface
type Table struct {
	Aileron  Defaults `json:"aileron" yaml:"aileron"`
	Elevator Defaults `json:"elevator" yaml:"elevator"`
	Rudder   Defaults `json:"rudder" yaml:"rudder"`
}

// DefaultTable returns the reference geometry of a 1.8 m span trainer
func DefaultTable() Table {
	return Table{
		Aileron: Defaults{
			Geometry: Geometry{Name: Aileron, HingeCoefficient: -0.15, Span: 0.924, RootChord: 0.110, TipChord: 0.050},
			Note:     "(Single Aileron)",
		},
		Elevator: Defaults{
			Geometry: Geometry{Name: Elevator, HingeCoefficient: -0.10, Span: 0.318, RootChord: 0.225, TipChord: 0.225},
			Note:     "(One Half of the Elevator)",
		},
		Rudder: Defaults{
			Geometry: Geometry{Name: Rudder, HingeCoefficient: -0.10, Span: 0.308, RootChord: 0.200, TipChord: 0.150},
		},
	}
}

// Ordered returns the records as Aileron, Elevator, Rudder.
// Names are forced to match the field they are stored in.
func (t Table) Ordered() []Defaults {
	out := []Defaults{t.Aileron, t.Elevator, t.Rudder}
	for i, n := range Names() {
		out[i].Name = n
	}
	return out
}

// Get returns the record for a single surface
func (t Table) Get(n Name) (Defaults, error) {
	all := t.Ordered()
	if n < 0 || int(n) >= len(all) {
		return Defaults{}, fmt.Errorf("unknown surface %s", n)
	}
	return all[n], nil
}

// Validate checks every record in the table
func (t Table) Validate() error {
	for _, d := range t.Ordered() {
		if err := d.Validate(); err != nil {
			return err
		}
	}
	return nil
}

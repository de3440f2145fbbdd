package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/alexiusacademia/servotorque/internal/aero"
	"github.com/alexiusacademia/servotorque/internal/surface"
)

// EnvPrefix is prepended to every environment override, e.g. SERVOTORQUE_FLIGHT_VELOCITY
const EnvPrefix = "SERVOTORQUE"

// Flight holds the default flight conditions offered at the prompts
type Flight struct {
	AirDensity float64 `mapstructure:"air_density" yaml:"air_density"`
	Velocity   float64 `mapstructure:"velocity" yaml:"velocity"`
}

// Surface holds the default geometry of one control surface
type Surface struct {
	Ch        float64 `mapstructure:"ch" yaml:"ch"`
	Span      float64 `mapstructure:"span" yaml:"span"`
	RootChord float64 `mapstructure:"root_chord" yaml:"root_chord"`
	TipChord  float64 `mapstructure:"tip_chord" yaml:"tip_chord"`
	Note      string  `mapstructure:"note" yaml:"note,omitempty"`
}

// Profile is an aircraft description: the defaults used by every prompt
type Profile struct {
	Name     string  `mapstructure:"name" yaml:"name,omitempty"`
	Flight   Flight  `mapstructure:"flight" yaml:"flight"`
	Aileron  Surface `mapstructure:"aileron" yaml:"aileron"`
	Elevator Surface `mapstructure:"elevator" yaml:"elevator"`
	Rudder   Surface `mapstructure:"rudder" yaml:"rudder"`
}

// Load builds a profile from the built-in table, then a .env file, then
// SERVOTORQUE_* variables, then the YAML file at path (if not empty).
// Without envFiles, ".env" in the working directory is loaded when present.
func Load(path string, envFiles ...string) (*Profile, error) {
	if len(envFiles) == 0 {
		// Try to load .env file, but don't fail if it doesn't exist
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFiles...); err != nil {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
		}
	}

	var p Profile
	if err := v.Unmarshal(&p); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Default returns the built-in profile
func Default() *Profile {
	table := surface.DefaultTable()
	fc := aero.DefaultFlightConditions()
	return &Profile{
		Flight:   Flight{AirDensity: fc.AirDensity, Velocity: fc.Velocity},
		Aileron:  fromDefaults(table.Aileron),
		Elevator: fromDefaults(table.Elevator),
		Rudder:   fromDefaults(table.Rudder),
	}
}

func setDefaults(v *viper.Viper) {
	p := Default()
	v.SetDefault("name", p.Name)
	v.SetDefault("flight.air_density", p.Flight.AirDensity)
	v.SetDefault("flight.velocity", p.Flight.Velocity)

	for _, n := range surface.Names() {
		s := p.surface(n)
		v.SetDefault(n.Key()+".ch", s.Ch)
		v.SetDefault(n.Key()+".span", s.Span)
		v.SetDefault(n.Key()+".root_chord", s.RootChord)
		v.SetDefault(n.Key()+".tip_chord", s.TipChord)
		v.SetDefault(n.Key()+".note", s.Note)
	}
}

func fromDefaults(d surface.Defaults) Surface {
	return Surface{
		Ch:        d.HingeCoefficient,
		Span:      d.Span,
		RootChord: d.RootChord,
		TipChord:  d.TipChord,
		Note:      d.Note,
	}
}

func (p *Profile) surface(n surface.Name) Surface {
	switch n {
	case surface.Elevator:
		return p.Elevator
	case surface.Rudder:
		return p.Rudder
	default:
		return p.Aileron
	}
}

// FlightConditions returns the profile's default flight conditions
func (p *Profile) FlightConditions() aero.FlightConditions {
	return aero.FlightConditions{
		AirDensity: p.Flight.AirDensity,
		Velocity:   p.Flight.Velocity,
	}
}

// Table converts the profile into surface defaults
func (p *Profile) Table() surface.Table {
	conv := func(n surface.Name) surface.Defaults {
		s := p.surface(n)
		return surface.Defaults{
			Geometry: surface.Geometry{
				Name:             n,
				HingeCoefficient: s.Ch,
				Span:             s.Span,
				RootChord:        s.RootChord,
				TipChord:         s.TipChord,
			},
			Note: s.Note,
		}
	}
	return surface.Table{
		Aileron:  conv(surface.Aileron),
		Elevator: conv(surface.Elevator),
		Rudder:   conv(surface.Rudder),
	}
}

// Validate checks the flight defaults and every surface
func (p *Profile) Validate() error {
	if err := p.FlightConditions().Validate(); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	if err := p.Table().Validate(); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	return nil
}

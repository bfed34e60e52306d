package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
	"piutang/internal/receivable"
)

// ErrPresetNotFound is returned when a named preset is missing from the file.
var ErrPresetNotFound = errors.New("report preset not found")

// Preset is a saved report filter.
type Preset struct {
	Description string   `yaml:"description"`
	SortBy      string   `yaml:"sort_by"`
	Start       string   `yaml:"start"`
	End         string   `yaml:"end"`
	Customers   []string `yaml:"customers"`
	Status      string   `yaml:"status"`
}

type presetFile struct {
	Presets map[string]Preset `yaml:"presets"`
}

// Presets maps preset names to saved filters.
type Presets map[string]Preset

// LoadPresets reads a YAML presets file. A missing file yields no presets.
func LoadPresets(path string) (Presets, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Presets{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read presets %s: %w", path, err)
	}

	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse presets %s: %w", path, err)
	}
	if file.Presets == nil {
		return Presets{}, nil
	}
	return Presets(file.Presets), nil
}

// Names returns the preset names sorted alphabetically.
func (p Presets) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Filter resolves the named preset into a report filter.
func (p Presets) Filter(name string) (receivable.ReportFilter, error) {
	preset, ok := p[name]
	if !ok {
		return receivable.ReportFilter{}, fmt.Errorf("%w: %s", ErrPresetNotFound, name)
	}
	return preset.ToFilter()
}

// ToFilter validates the preset fields and converts them.
func (p Preset) ToFilter() (receivable.ReportFilter, error) {
	var f receivable.ReportFilter

	key, err := receivable.ParseSortKey(p.SortBy)
	if err != nil {
		return f, err
	}
	f.SetSortBy(key)

	status, err := receivable.ParseStatusFilter(p.Status)
	if err != nil {
		return f, err
	}
	f.SetStatus(status)

	start, err := ParseDay(p.Start)
	if err != nil {
		return f, fmt.Errorf("start: %w", err)
	}
	end, err := ParseDay(p.End)
	if err != nil {
		return f, fmt.Errorf("end: %w", err)
	}
	rng, err := receivable.NewDateRange(start, end)
	if err != nil {
		return f, err
	}
	f.Range = rng
	f.SetCustomers(p.Customers)

	return f, nil
}

// ParseDay parses a YYYY-MM-DD bound; an empty value means unset.
func ParseDay(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, use YYYY-MM-DD", value)
	}
	return &t, nil
}

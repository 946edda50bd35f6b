package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/google/uuid"

	"github.com/koyomi-ui/koyomi/core"
	"github.com/koyomi-ui/koyomi/internal/config"
)

// Field is one picker-bound input. A field that failed construction is
// inert: it renders and reports its error but attaches no picker.
type Field struct {
	ID     string
	Name   string
	Label  string
	Input  textinput.Model
	Picker *core.Picker
	Err    error
}

func (f Field) Inert() bool { return f.Picker == nil }

// BuildFields constructs the bound fields from configuration. Construction
// errors are collected, not raised: a bad field yields an inert instance
// and the rest of the form still works.
func BuildFields(cfg config.Config, holidays core.HolidayFunc, now time.Time) ([]Field, *core.Coordinator, []error) {
	coord := core.NewCoordinator()
	weekStart := ParseWeekStart(cfg.UI.WeekStart)

	fields := make([]Field, 0, len(cfg.Fields))
	var errs []error
	for _, fc := range cfg.Fields {
		f := buildField(fc, holidays, weekStart, now)
		if f.Err != nil {
			errs = append(errs, f.Err)
		}
		if f.Picker != nil {
			coord.Register(f.Picker)
		}
		fields = append(fields, f)
	}
	return fields, coord, errs
}

func buildField(fc config.FieldConfig, holidays core.HolidayFunc, weekStart time.Weekday, now time.Time) Field {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = strings.TrimSpace(fc.Mode)

	f := Field{
		ID:    uuid.NewString(),
		Name:  fc.Name,
		Label: fc.Label,
		Input: input,
	}
	if strings.TrimSpace(fc.Name) == "" {
		f.Err = fmt.Errorf("field %q: no input to bind to", fc.Label)
		return f
	}
	mode, err := config.ValidateMode(fc.Mode)
	if err != nil {
		f.Err = fmt.Errorf("field %q: %w", fc.Name, err)
		return f
	}

	// Malformed bounds parse to "no bound" rather than failing the field.
	f.Picker = core.NewPicker(f.ID, mode, core.Config{
		Format:     fc.Format,
		MinuteStep: fc.MinuteStep,
		Bounds: core.Bounds{
			Min: core.ParseBound(fc.MinDate, now),
			Max: core.ParseBound(fc.MaxDate, now),
		},
		Holiday:   holidays,
		WeekStart: weekStart,
	})
	return f
}

// ParseWeekStart maps a configured week-start name to a weekday, falling
// back to Sunday.
func ParseWeekStart(s string) time.Weekday {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monday":
		return time.Monday
	case "saturday":
		return time.Saturday
	default:
		return time.Sunday
	}
}

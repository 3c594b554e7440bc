package messenger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jwaiton/nexus/exception"
	"github.com/jwaiton/nexus/geometry"
	"github.com/jwaiton/nexus/units"
)

// Command is a property bound to a variable.
type Command struct {
	Name     string
	Guidance string

	target       interface{}
	directory    string
	paramName    string
	omittable    bool
	unitCategory string
	defaultUnit  string
	rangeText    string
	rangeExpr    condition
	candidates   []string
}

// Path returns the full command path.
func (c *Command) Path() string { return c.directory + c.Name }

// SetUnitCategory requires units of the category, e.g. "Pressure".
func (c *Command) SetUnitCategory(category string) *Command {
	c.unitCategory = category
	return c
}

// SetDefaultUnit sets the unit used when none is given; it also fixes the
// unit category.
func (c *Command) SetDefaultUnit(unit string) *Command {
	u, ok := units.Lookup(unit)
	if !ok {
		panic(fmt.Sprintf("command %s: unknown default unit %q", c.Path(), unit))
	}
	c.defaultUnit = u.Symbol
	c.unitCategory = u.Category
	return c
}

// SetParameterName names the parameter used in range expressions.
// An omittable parameter leaves the value unchanged when missing.
func (c *Command) SetParameterName(name string, omittable bool) *Command {
	c.paramName = name
	c.omittable = omittable
	return c
}

// SetRange sets a condition such as "pressure>0.". A malformed
// expression panics.
func (c *Command) SetRange(expr string) *Command {
	cond, err := parseRange(expr)
	if err != nil {
		panic(fmt.Sprintf("command %s: %v", c.Path(), err))
	}
	c.rangeText = expr
	c.rangeExpr = cond
	return c
}

// SetCandidates restricts string parameters to a list of values.
func (c *Command) SetCandidates(candidates ...string) *Command {
	c.candidates = append([]string(nil), candidates...)
	return c
}

// UnitCategory returns the unit category, if any.
func (c *Command) UnitCategory() string { return c.unitCategory }

// Range returns the range expression, if any.
func (c *Command) Range() string { return c.rangeText }

// Candidates returns the allowed values of a string parameter.
func (c *Command) Candidates() []string { return c.candidates }

// Type returns the parameter type name.
func (c *Command) Type() string {
	switch c.target.(type) {
	case *float64:
		return "double"
	case *int:
		return "int"
	case *bool:
		return "bool"
	case *string:
		return "string"
	case *geometry.Point:
		return "3vector"
	}
	return "unknown"
}

// Description is the exported form of a command.
type Description struct {
	Path         string   `json:"path"`
	Type         string   `json:"type"`
	Guidance     string   `json:"guidance,omitempty"`
	UnitCategory string   `json:"unitCategory,omitempty"`
	DefaultUnit  string   `json:"defaultUnit,omitempty"`
	Range        string   `json:"range,omitempty"`
	Candidates   []string `json:"candidates,omitempty"`
	Omittable    bool     `json:"omittable,omitempty"`
}

// Describe returns the command help.
func (c *Command) Describe() Description {
	return Description{
		Path:         c.Path(),
		Type:         c.Type(),
		Guidance:     c.Guidance,
		UnitCategory: c.unitCategory,
		DefaultUnit:  c.defaultUnit,
		Range:        c.rangeText,
		Candidates:   c.candidates,
		Omittable:    c.omittable,
	}
}

func (c *Command) invalid(format string, values ...interface{}) error {
	return exception.New(origin, c.Path(), exception.ErrInvalidArgument, format, values...)
}

// Apply parses args and stores the value. The target is left unchanged on error.
func (c *Command) Apply(args string) error {
	fields := strings.Fields(args)

	if len(fields) == 0 {
		if b, ok := c.target.(*bool); ok {
			*b = true
			return nil
		}
		if c.omittable {
			return nil
		}
		return c.invalid("parameter %s is missing", c.paramName)
	}

	switch target := c.target.(type) {
	case *float64:
		value, typed, err := c.parseQuantity(fields, 1)
		if err != nil {
			return err
		}
		if err := c.checkRange(typed); err != nil {
			return err
		}
		*target = value[0]
	case *int:
		if len(fields) != 1 {
			return c.invalid("expected one integer, got %q", args)
		}
		v, err := strconv.Atoi(fields[0])
		if err != nil {
			return c.invalid("invalid integer %q", fields[0])
		}
		if err := c.checkRange(float64(v)); err != nil {
			return err
		}
		*target = v
	case *bool:
		if len(fields) != 1 {
			return c.invalid("expected one boolean, got %q", args)
		}
		v, err := parseBool(fields[0])
		if err != nil {
			return c.invalid("%v", err)
		}
		*target = v
	case *string:
		value := strings.Join(fields, " ")
		if len(c.candidates) > 0 && !contains(c.candidates, value) {
			return exception.New(origin, c.Path(), exception.ErrOutOfRange,
				"%q is not one of: %s", value, strings.Join(c.candidates, " "))
		}
		*target = value
	case *geometry.Point:
		value, _, err := c.parseQuantity(fields, 3)
		if err != nil {
			return err
		}
		*target = geometry.Point{X: value[0], Y: value[1], Z: value[2]}
	}
	return nil
}

// parseQuantity reads n numbers followed by a unit and returns them in
// internal units, plus the first number as typed. The unit may be omitted
// only when the command has a default unit or no unit category.
func (c *Command) parseQuantity(fields []string, n int) ([]float64, float64, error) {
	if len(fields) != n && len(fields) != n+1 {
		return nil, 0, c.invalid("expected %d value(s) and an optional unit, got %q", n, strings.Join(fields, " "))
	}
	unit := c.defaultUnit
	if len(fields) == n+1 {
		unit = fields[n]
		if c.unitCategory == "" {
			return nil, 0, c.invalid("command takes no unit, got %q", unit)
		}
	} else if c.unitCategory != "" && unit == "" {
		return nil, 0, c.invalid("a %s unit is required", c.unitCategory)
	}
	values := make([]float64, n)
	typed := 0.
	for i := 0; i < n; i++ {
		v, err := units.Parse(fields[i], unit, c.unitCategory)
		if err != nil {
			return nil, 0, c.invalid("%v", err)
		}
		values[i] = v
		if i == 0 {
			typed, _ = strconv.ParseFloat(fields[i], 64)
		}
	}
	return values, typed, nil
}

func (c *Command) checkRange(value float64) error {
	if c.rangeExpr == nil {
		return nil
	}
	ok, err := c.rangeExpr.eval(c.paramName, value)
	if err != nil {
		return c.invalid("%v", err)
	}
	if !ok {
		return exception.New(origin, c.Path(), exception.ErrOutOfRange,
			"parameter out of candidates: %s=%g violates %s", c.paramName, value, c.rangeText)
	}
	return nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "1", "true", "t", "yes", "y":
		return true, nil
	case "0", "false", "f", "no", "n":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

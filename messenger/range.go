package messenger

import (
	"fmt"
	"strconv"
	"strings"
)

type condition interface {
	eval(name string, value float64) (bool, error)
}

type anyOf []condition
type allOf []condition

func (a anyOf) eval(name string, value float64) (bool, error) {
	for _, c := range a {
		ok, err := c.eval(name, value)
		if err != nil || ok {
			return ok, err
		}
	}
	return false, nil
}

func (a allOf) eval(name string, value float64) (bool, error) {
	for _, c := range a {
		ok, err := c.eval(name, value)
		if err != nil || !ok {
			return ok, err
		}
	}
	return true, nil
}

// comparison is "name op number"; flipped comparisons are normalized.
type comparison struct {
	name   string
	op     string
	number float64
}

func (c comparison) eval(name string, value float64) (bool, error) {
	if c.name != name {
		return false, fmt.Errorf("range refers to %q, parameter is %q", c.name, name)
	}
	switch c.op {
	case "<":
		return value < c.number, nil
	case "<=":
		return value <= c.number, nil
	case ">":
		return value > c.number, nil
	case ">=":
		return value >= c.number, nil
	case "==":
		return value == c.number, nil
	case "!=":
		return value != c.number, nil
	}
	return false, fmt.Errorf("unknown operator %q", c.op)
}

var operators = []string{"<=", ">=", "==", "!=", "<", ">"}

var flipped = map[string]string{"<": ">", ">": "<", "<=": ">=", ">=": "<=", "==": "==", "!=": "!="}

func parseRange(expr string) (condition, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, fmt.Errorf("empty range")
	}
	alternatives := anyOf{}
	for _, alt := range strings.Split(expr, "||") {
		all := allOf{}
		for _, term := range strings.Split(alt, "&&") {
			cmp, err := parseComparison(strings.TrimSpace(term))
			if err != nil {
				return nil, err
			}
			all = append(all, cmp)
		}
		alternatives = append(alternatives, all)
	}
	return alternatives, nil
}

func parseComparison(term string) (comparison, error) {
	term = strings.Trim(term, "()")
	for _, op := range operators {
		idx := strings.Index(term, op)
		if idx < 0 {
			continue
		}
		left := strings.TrimSpace(term[:idx])
		right := strings.TrimSpace(term[idx+len(op):])
		if number, err := strconv.ParseFloat(right, 64); err == nil && isIdentifier(left) {
			return comparison{name: left, op: op, number: number}, nil
		}
		if number, err := strconv.ParseFloat(left, 64); err == nil && isIdentifier(right) {
			return comparison{name: right, op: flipped[op], number: number}, nil
		}
		return comparison{}, fmt.Errorf("malformed range term %q", term)
	}
	return comparison{}, fmt.Errorf("range term %q has no comparison operator", term)
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		letter := r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		digit := r >= '0' && r <= '9'
		if !letter && !(digit && i > 0) {
			return false
		}
	}
	return true
}

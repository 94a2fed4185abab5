package filter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ougirez/solarscope/internal/domain"
	"github.com/ougirez/solarscope/internal/pkg/constants"
)

// Category is a filter key as it appears in a domain.FilterSelection.
type Category string

const (
	CategoryFacilityType  Category = "facilityType"
	CategoryVerified      Category = "verified"
	CategoryLocation      Category = "state"
	CategoryIndustry      Category = "industry"
	CategoryEmployeeCount Category = "employeeCount"
	CategoryCompanyName   Category = "companyName"
	CategoryVerifiedEmail Category = "verifiedEmail"
	CategoryVerifiedPhone Category = "verifiedPhone"
	CategoryFacilitySize  Category = "facilitySize"
	CategoryJobTitle      Category = "jobTitle"
)

type Kind int

const (
	KindString Kind = iota
	KindBool
	KindList
)

var kinds = map[Category]Kind{
	CategoryFacilityType:  KindString,
	CategoryVerified:      KindBool,
	CategoryLocation:      KindString,
	CategoryIndustry:      KindString,
	CategoryEmployeeCount: KindString,
	CategoryCompanyName:   KindString,
	CategoryVerifiedEmail: KindBool,
	CategoryVerifiedPhone: KindBool,
	CategoryFacilitySize:  KindList,
	CategoryJobTitle:      KindList,
}

// Categories lists every known category in display order.
var Categories = []Category{
	CategoryFacilityType,
	CategoryLocation,
	CategoryIndustry,
	CategoryEmployeeCount,
	CategoryCompanyName,
	CategoryFacilitySize,
	CategoryJobTitle,
	CategoryVerified,
	CategoryVerifiedEmail,
	CategoryVerifiedPhone,
}

// KindOf returns the value shape of c.
func KindOf(c Category) (Kind, bool) {
	k, ok := kinds[c]
	return k, ok
}

// State is the single source of truth for the active filters.
// Only non-empty values are stored. The zero value has no active filters.
type State struct {
	values map[Category]any
}

type ActionType int

const (
	ActionSet ActionType = iota
	ActionClear
	ActionReset
)

type Action struct {
	Type     ActionType
	Category Category
	Value    any
}

func Set(c Category, v any) Action { return Action{Type: ActionSet, Category: c, Value: v} }
func Clear(c Category) Action      { return Action{Type: ActionClear, Category: c} }
func Reset() Action                { return Action{Type: ActionReset} }

// Reduce applies a to s and returns the new state. s is not modified.
func Reduce(s State, a Action) (State, error) {
	if a.Type == ActionReset {
		return State{}, nil
	}

	kind, ok := kinds[a.Category]
	if !ok {
		return s, fmt.Errorf("%w: %q", constants.ErrUnknownFilter, a.Category)
	}

	next := s.clone()
	if a.Type == ActionClear {
		delete(next.values, a.Category)
		return next, nil
	}

	v, err := normalize(kind, a.Value)
	if err != nil {
		return s, fmt.Errorf("%w: %s: %s", constants.ErrInvalidFilterValue, a.Category, err.Error())
	}
	if domain.IsEmptyFilterValue(v) {
		delete(next.values, a.Category)
	} else {
		next.values[a.Category] = v
	}

	return next, nil
}

func normalize(kind Kind, v any) (any, error) {
	if v == nil {
		switch kind {
		case KindBool:
			return false, nil
		case KindList:
			return []string(nil), nil
		default:
			return "", nil
		}
	}

	switch kind {
	case KindBool:
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("expected bool, got %T", v)
		}
		return b, nil
	case KindList:
		switch list := v.(type) {
		case []string:
			return slices.Clone(list), nil
		case []any:
			out := make([]string, 0, len(list))
			for _, item := range list {
				str, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("expected list of strings, got %T item", item)
				}
				out = append(out, str)
			}
			return out, nil
		default:
			return nil, fmt.Errorf("expected list, got %T", v)
		}
	default:
		str, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", v)
		}
		return str, nil
	}
}

func (s State) clone() State {
	values := make(map[Category]any, len(s.values)+1)
	for k, v := range s.values {
		values[k] = v
	}
	return State{values: values}
}

func (s State) Text(c Category) string {
	v, _ := s.values[c].(string)
	return v
}

func (s State) Bool(c Category) bool {
	v, _ := s.values[c].(bool)
	return v
}

func (s State) List(c Category) []string {
	v, _ := s.values[c].([]string)
	return slices.Clone(v)
}

func (s State) Value(c Category) any {
	return s.values[c]
}

func (s State) FacilityType() string    { return s.Text(CategoryFacilityType) }
func (s State) VerifiedOnly() bool      { return s.Bool(CategoryVerified) }
func (s State) Location() string        { return s.Text(CategoryLocation) }
func (s State) Industry() string        { return s.Text(CategoryIndustry) }
func (s State) EmployeeCount() string   { return s.Text(CategoryEmployeeCount) }
func (s State) CompanyName() string     { return s.Text(CategoryCompanyName) }
func (s State) VerifiedEmail() bool     { return s.Bool(CategoryVerifiedEmail) }
func (s State) VerifiedPhone() bool     { return s.Bool(CategoryVerifiedPhone) }
func (s State) FacilitySizes() []string { return s.List(CategoryFacilitySize) }
func (s State) JobTitles() []string     { return s.List(CategoryJobTitle) }

// Active reports whether any filter is set.
func (s State) Active() bool {
	return len(s.values) > 0
}

// Selection returns the chip mapping for s.
func (s State) Selection() domain.FilterSelection {
	sel := make(domain.FilterSelection, len(s.values))
	for k, v := range s.values {
		if list, ok := v.([]string); ok {
			v = slices.Clone(list)
		}
		sel[string(k)] = v
	}
	return sel
}

// FromSelection rebuilds a State from a chip mapping. Unknown keys and values whose shape does
// not match the category are skipped and reported in the returned slice.
func FromSelection(sel domain.FilterSelection) (State, []string) {
	s := State{}
	var skipped []string
	for key, v := range sel {
		next, err := Reduce(s, Set(Category(key), v))
		if err != nil {
			skipped = append(skipped, key)
			continue
		}
		s = next
	}
	slices.Sort(skipped)
	return s, skipped
}

// WithDefaults returns s with every category it leaves unset taken from d.
func (s State) WithDefaults(d State) State {
	out := s.clone()
	for k, v := range d.values {
		if _, ok := out.values[k]; !ok {
			out.values[k] = v
		}
	}
	return out
}

// Summary describes the active filters in display order, including chip-only categories.
func (s State) Summary() string {
	if !s.Active() {
		return "All facilities"
	}

	parts := make([]string, 0, len(s.values))
	for _, c := range Categories {
		v, ok := s.values[c]
		if !ok {
			continue
		}
		switch c {
		case CategoryVerified:
			parts = append(parts, "verified contacts only")
		case CategoryVerifiedEmail:
			parts = append(parts, "with verified email")
		case CategoryVerifiedPhone:
			parts = append(parts, "with verified phone")
		case CategoryLocation:
			parts = append(parts, "in "+v.(string))
		default:
			var text string
			if list, ok := v.([]string); ok {
				text = strings.Join(list, ", ")
			} else {
				text = v.(string)
			}
			parts = append(parts, fmt.Sprintf("%s: %s", label(c), text))
		}
	}

	return "Facilities " + strings.Join(parts, "; ")
}

func label(c Category) string {
	switch c {
	case CategoryFacilityType:
		return "type"
	case CategoryIndustry:
		return "industry"
	case CategoryEmployeeCount:
		return "employees"
	case CategoryCompanyName:
		return "company"
	case CategoryFacilitySize:
		return "size"
	case CategoryJobTitle:
		return "job title"
	default:
		return string(c)
	}
}

package sequence

import (
	"github.com/arloliu/go-awg/logger"
)

// SettingSequenceType is the reserved setting name that switches the active
// recipe type through Program.Set.
const SettingSequenceType = "sequence_type"

// Program is the front controller over the recipe family. It selects a recipe
// by type, forwards configuration updates to it, and preserves already-set
// shared parameters when the recipe type changes.
type Program struct {
	typ    Type
	recipe Recipe
	log    logger.Logger
}

// ProgramOption configures a Program.
type ProgramOption func(*Program)

// WithLogger sets the logger used by the program. Defaults to the package
// logger.
func WithLogger(l logger.Logger) ProgramOption {
	return func(p *Program) { p.log = l }
}

// NewProgram creates a program with the given recipe type and applies the
// initial settings. It fails for a type outside the closed recipe set and for
// any setting that violates its domain constraint.
func NewProgram(typ Type, settings Settings, opts ...ProgramOption) (*Program, error) {
	recipe, err := newRecipe(typ)
	if err != nil {
		return nil, err
	}
	p := &Program{typ: typ, recipe: recipe, log: logger.GetLogger()}
	for _, opt := range opts {
		opt(p)
	}
	if len(settings) > 0 {
		if _, err := p.Set(settings); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// newRecipe constructs a recipe with default parameters. The recipe set is
// closed; any other type is a configuration error.
func newRecipe(typ Type) (Recipe, error) {
	switch typ {
	case TypeNone:
		return NewSequence(), nil
	case TypeSimple:
		return NewSimpleSequence(), nil
	case TypeRabi:
		return NewRabiSequence(), nil
	case TypeT1:
		return NewT1Sequence(), nil
	case TypeT2Star:
		return NewT2Sequence(), nil
	default:
		return nil, ErrUnknownSequenceType
	}
}

// Type returns the active recipe type.
func (p *Program) Type() Type { return p.typ }

// Recipe returns the active recipe.
func (p *Program) Recipe() Recipe { return p.recipe }

// Get runs the active recipe's full production pipeline and returns the
// finished sequencer program text.
func (p *Program) Get() (string, error) {
	return p.recipe.Get()
}

// Set applies settings to the active recipe. If the settings contain
// "sequence_type", the current recipe's fields are snapshotted, a new recipe
// of the requested type is constructed from defaults, the snapshot is
// replayed onto it (fields the new recipe does not declare are silently
// dropped), and the remaining settings are applied afterwards.
//
// The returned list names the settings the active recipe did not recognize.
func (p *Program) Set(settings Settings) ([]string, error) {
	raw, ok := settings[SettingSequenceType]
	if !ok {
		return p.recipe.Set(settings)
	}

	typ, err := typeSetting(SettingSequenceType, raw)
	if err != nil {
		return nil, err
	}

	snapshot := p.recipe.Snapshot()
	next, err := newRecipe(typ)
	if err != nil {
		return nil, err
	}
	if _, err := next.Set(snapshot); err != nil {
		return nil, err
	}
	p.log.Debug("sequence type switched", "from", p.typ.String(), "to", typ.String())
	p.typ = typ
	p.recipe = next

	rest := make(Settings, len(settings)-1)
	for name, value := range settings {
		if name != SettingSequenceType {
			rest[name] = value
		}
	}
	if len(rest) == 0 {
		return nil, nil
	}
	return p.recipe.Set(rest)
}

// Params returns the active recipe's declared fields plus the recipe type
// under the "sequence_type" key.
func (p *Program) Params() Settings {
	params := p.recipe.Snapshot()
	params[SettingSequenceType] = p.typ.String()
	return params
}

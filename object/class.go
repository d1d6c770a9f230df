// ==============================================================================================
// FILE: object/class.go
// PACKAGE: object
// PURPOSE: Class/instance object model: method resolution order (C3
//          linearization), attribute lookup through the MRO with descriptor
//          support, and instance storage.
// ==============================================================================================

package object

import (
	"fmt"
	"strings"
)

// Class is a runtime class object. Bases are stored in declaration order;
// MRO is computed once at class-creation time (classes are not mutated
// after definition in this interpreter, so the linearization never needs
// to be recomputed).
type Class struct {
	Name    string
	Bases   []*Class
	Dict    map[string]Object // methods, class vars, nested classes, properties
	MRO     []*Class          // includes the class itself, first
	Env     *Environment      // scope the class body was defined in, for method closures
}

func (c *Class) Type() ObjectType { return CLASS_OBJ }
func (c *Class) Inspect() string  { return fmt.Sprintf("<class '%s'>", c.Name) }

// NewClass builds a class from its already-evaluated bases and body
// namespace, computing its MRO via C3 linearization.
func NewClass(name string, bases []*Class, dict map[string]Object, env *Environment) (*Class, error) {
	cls := &Class{Name: name, Bases: bases, Dict: dict, Env: env}
	mro, err := c3Linearize(cls)
	if err != nil {
		return nil, err
	}
	cls.MRO = mro
	return cls, nil
}

// c3Linearize computes the C3 merge of a class's bases' linearizations
// plus the base list itself, the same algorithm Python uses to resolve
// cooperative multiple inheritance predictably.
func c3Linearize(cls *Class) ([]*Class, error) {
	if len(cls.Bases) == 0 {
		return []*Class{cls}, nil
	}
	sequences := make([][]*Class, 0, len(cls.Bases)+1)
	for _, base := range cls.Bases {
		sequences = append(sequences, append([]*Class{}, base.MRO...))
	}
	bases := append([]*Class{}, cls.Bases...)
	sequences = append(sequences, bases)

	merged := []*Class{cls}
	for {
		sequences = dropEmpty(sequences)
		if len(sequences) == 0 {
			return merged, nil
		}
		var head *Class
		for _, seq := range sequences {
			candidate := seq[0]
			if !appearsInTail(candidate, sequences) {
				head = candidate
				break
			}
		}
		if head == nil {
			return nil, fmt.Errorf("cannot create a consistent method resolution order for class %s", cls.Name)
		}
		merged = append(merged, head)
		for i, seq := range sequences {
			sequences[i] = removeHead(seq, head)
		}
	}
}

func dropEmpty(seqs [][]*Class) [][]*Class {
	out := seqs[:0]
	for _, s := range seqs {
		if len(s) > 0 {
			out = append(out, s)
		}
	}
	return out
}

func appearsInTail(c *Class, seqs [][]*Class) bool {
	for _, seq := range seqs {
		for _, other := range seq[1:] {
			if other == c {
				return true
			}
		}
	}
	return false
}

func removeHead(seq []*Class, head *Class) []*Class {
	if len(seq) > 0 && seq[0] == head {
		return seq[1:]
	}
	return seq
}

// LookupMRO walks the class's MRO looking for name in each class's own
// Dict, returning the defining class alongside the value so callers (e.g.
// super()) know where resolution continued from.
func (c *Class) LookupMRO(name string) (Object, *Class, bool) {
	for _, k := range c.MRO {
		if v, ok := k.Dict[name]; ok {
			return v, k, true
		}
	}
	return nil, nil, false
}

// LookupFrom resolves name starting after `after` in the MRO — the
// mechanism `super()` uses to continue cooperative dispatch.
func (c *Class) LookupFrom(after *Class, name string) (Object, *Class, bool) {
	idx := -1
	for i, k := range c.MRO {
		if k == after {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, nil, false
	}
	for _, k := range c.MRO[idx+1:] {
		if v, ok := k.Dict[name]; ok {
			return v, k, true
		}
	}
	return nil, nil, false
}

// IsSubclass reports whether c is cls or descends from it, per its MRO.
func (c *Class) IsSubclass(cls *Class) bool {
	for _, k := range c.MRO {
		if k == cls {
			return true
		}
	}
	return false
}

func (c *Class) MROName() string {
	names := make([]string, len(c.MRO))
	for i, k := range c.MRO {
		names[i] = k.Name
	}
	return strings.Join(names, " -> ")
}

// Instance is an object created by calling a Class. Attribute storage is
// a flat, insertion-unordered map (instance dicts have no ordering
// guarantee in the language), with attribute resolution falling back
// through the class's MRO for methods/properties/class variables.
type Instance struct {
	Class *Class
	Attrs map[string]Object
}

func NewInstance(cls *Class) *Instance {
	return &Instance{Class: cls, Attrs: make(map[string]Object)}
}

func (i *Instance) Type() ObjectType { return INSTANCE_OBJ }
func (i *Instance) Inspect() string  { return fmt.Sprintf("<%s object>", i.Class.Name) }

// GetAttr implements attribute lookup: own dict takes priority for plain
// data attributes, but a *data* descriptor — a Property with a setter —
// found on the class always wins, matching Python's rule that only data
// descriptors take precedence over the instance dict; a getter-only
// Property is consulted after the instance dict, like any other
// non-data descriptor. Everything else falls through the MRO.
func (i *Instance) GetAttr(name string) (Object, bool) {
	if v, _, ok := i.Class.LookupMRO(name); ok {
		if prop, isProp := v.(*Property); isProp && prop.Setter != nil {
			return v, true
		}
	}
	if v, ok := i.Attrs[name]; ok {
		return v, true
	}
	if v, _, ok := i.Class.LookupMRO(name); ok {
		return v, true
	}
	return nil, false
}

func (i *Instance) SetAttr(name string, val Object) {
	i.Attrs[name] = val
}

// SuperProxy is the runtime value zero-arg `super()` produces: attribute
// lookup on it resolves starting just after After in Self's class's MRO,
// then binds the result to Self — the mechanism cooperative multiple
// inheritance depends on.
type SuperProxy struct {
	Self  *Instance
	After *Class
}

func (s *SuperProxy) Type() ObjectType { return ObjectType("super") }
func (s *SuperProxy) Inspect() string  { return fmt.Sprintf("<super: %s, <%s object>>", s.After.Name, s.Self.Class.Name) }

/*
Package parameters holds the rendering parameters of the document core.

Parameters live in registers. Registers support grouping: values pushed
inside a group are dropped again at the end of the group, restoring the
values of the enclosing group.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package parameters

import (
	"fmt"

	"github.com/umajho/rotext-sub001/core"
)

// RenderingParameter is a key into rendering registers.
type RenderingParameter int

const (
	none        RenderingParameter = iota
	P_BREAKS                       // soft line breaks render as hard breaks (bool)
	P_DECODE                       // decode character entities in text runs (bool)
	P_NORMALIZE                    // NFC-normalize text runs (bool)
	P_STOPPER
)

func (p RenderingParameter) String() string {
	switch p {
	case P_BREAKS:
		return "P_BREAKS"
	case P_DECODE:
		return "P_DECODE"
	case P_NORMALIZE:
		return "P_NORMALIZE"
	}
	return fmt.Sprintf("RenderingParameter(%d)", int(p))
}

// ParameterGroup holds the values pushed inside a group.
type ParameterGroup struct {
	params map[RenderingParameter]interface{}
	level  int
	next   *ParameterGroup
}

// Registers is a set of rendering parameters.
// Registers are not safe for concurrent modification; independent
// rendering calls should use independent registers.
type Registers struct {
	base       [P_STOPPER]interface{}
	groups     *ParameterGroup
	grouplevel int
}

// ----------------------------------------------------------------------

// NewRegisters creates registers initialized with default values.
func NewRegisters() *Registers {
	regs := &Registers{}
	initParameters(&regs.base)
	return regs
}

func initParameters(p *[P_STOPPER]interface{}) {
	p[P_BREAKS] = false
	p[P_DECODE] = true
	p[P_NORMALIZE] = false
}

// Begingroup opens a new group.
func (regs *Registers) Begingroup() {
	regs.grouplevel++
}

// Endgroup closes the current group, dropping all values pushed inside it.
func (regs *Registers) Endgroup() {
	if regs.grouplevel > 0 {
		if regs.groups != nil && regs.groups.level == regs.grouplevel {
			regs.groups = regs.groups.next
		}
		regs.grouplevel--
	}
}

// Push sets a parameter value for the current group.
// All rendering parameters are boolean; other values are rejected with an
// error of code core.EINVALID and leave the registers unchanged.
func (regs *Registers) Push(key RenderingParameter, value interface{}) error {
	checkKey(key)
	if _, ok := value.(bool); !ok {
		return core.Error(core.EINVALID, "parameter %s expects a bool, got %T", key, value)
	}
	if regs.grouplevel > 0 {
		var g *ParameterGroup
		if regs.groups == nil || regs.groups.level < regs.grouplevel {
			g = &ParameterGroup{}
			g.params = make(map[RenderingParameter]interface{})
			g.level = regs.grouplevel
			g.next = regs.groups
			regs.groups = g
		} else {
			g = regs.groups
		}
		g.params[key] = value
	} else {
		regs.base[key] = value
	}
	return nil
}

// Get returns the current value of a parameter.
func (regs *Registers) Get(key RenderingParameter) interface{} {
	checkKey(key)
	var value interface{}
	if regs.grouplevel > 0 {
		for g := regs.groups; g != nil; g = g.next {
			value = g.params[key]
			if value != nil {
				break
			}
		}
	}
	if value == nil {
		value = regs.base[key]
	}
	return value
}

// B returns the current value of a boolean parameter.
func (regs *Registers) B(key RenderingParameter) bool {
	b, _ := regs.Get(key).(bool)
	return b
}

func checkKey(key RenderingParameter) {
	if key <= none || key >= P_STOPPER {
		panic("parameter key outside range of rendering parameters")
	}
}

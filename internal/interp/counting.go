package interp

import (
	"mlproof/internal/pattern"
	"mlproof/internal/proof"
)

// CountingInterpreter is a genuine dry run on top of the stateful base
// (real pushes and pops, so repeated sub-patterns nested inside a single
// larger pattern are each counted) that additionally tallies how many
// times each distinct pattern or proof conclusion was constructed. The
// memoizer uses a completed count to decide which keys are worth
// memoizing: anything built more than once.
type CountingInterpreter struct {
	*StatefulInterpreter
	counts map[string]int
}

// NewCounting returns a fresh counting interpreter.
func NewCounting() *CountingInterpreter {
	return &CountingInterpreter{StatefulInterpreter: NewStateful(), counts: make(map[string]int)}
}

// Counts returns the tally of construction keys observed so far. The
// returned map must not be mutated by the caller.
func (c *CountingInterpreter) Counts() map[string]int { return c.counts }

func (c *CountingInterpreter) bump(p pattern.Pattern) { c.counts["P:"+pattern.HashKey(p)]++ }
func (c *CountingInterpreter) bumpProof(pv proof.Proved) {
	c.counts["R:"+pattern.HashKey(pv.Conclusion())]++
}

func (c *CountingInterpreter) EVar(id uint32) (pattern.Pattern, error) {
	p, err := c.StatefulInterpreter.EVar(id)
	if err == nil {
		c.bump(p)
	}
	return p, err
}

func (c *CountingInterpreter) SVar(id uint32) (pattern.Pattern, error) {
	p, err := c.StatefulInterpreter.SVar(id)
	if err == nil {
		c.bump(p)
	}
	return p, err
}

func (c *CountingInterpreter) Symbol(name string) (pattern.Pattern, error) {
	p, err := c.StatefulInterpreter.Symbol(name)
	if err == nil {
		c.bump(p)
	}
	return p, err
}

func (c *CountingInterpreter) Implies() (pattern.Pattern, error) {
	p, err := c.StatefulInterpreter.Implies()
	if err == nil {
		c.bump(p)
	}
	return p, err
}

func (c *CountingInterpreter) App() (pattern.Pattern, error) {
	p, err := c.StatefulInterpreter.App()
	if err == nil {
		c.bump(p)
	}
	return p, err
}

func (c *CountingInterpreter) Exists(v uint32) (pattern.Pattern, error) {
	p, err := c.StatefulInterpreter.Exists(v)
	if err == nil {
		c.bump(p)
	}
	return p, err
}

func (c *CountingInterpreter) Mu(v uint32) (pattern.Pattern, error) {
	p, err := c.StatefulInterpreter.Mu(v)
	if err == nil {
		c.bump(p)
	}
	return p, err
}

func (c *CountingInterpreter) MetaVar(id uint32, eFresh, sFresh, positive, negative, appctx []uint32) (pattern.Pattern, error) {
	p, err := c.StatefulInterpreter.MetaVar(id, eFresh, sFresh, positive, negative, appctx)
	if err == nil {
		c.bump(p)
	}
	return p, err
}

func (c *CountingInterpreter) CleanMetaVar(id uint32) (pattern.Pattern, error) {
	p, err := c.StatefulInterpreter.CleanMetaVar(id)
	if err == nil {
		c.bump(p)
	}
	return p, err
}

func (c *CountingInterpreter) ESubst(evarID uint32) (pattern.Pattern, error) {
	p, err := c.StatefulInterpreter.ESubst(evarID)
	if err == nil {
		c.bump(p)
	}
	return p, err
}

func (c *CountingInterpreter) SSubst(svarID uint32) (pattern.Pattern, error) {
	p, err := c.StatefulInterpreter.SSubst(svarID)
	if err == nil {
		c.bump(p)
	}
	return p, err
}

func (c *CountingInterpreter) Instantiate(ids []uint32) (StackItem, error) {
	item, err := c.StatefulInterpreter.Instantiate(ids)
	if err != nil {
		return nil, err
	}
	if p, ok := AsPattern(item); ok {
		c.bump(p)
	} else if pv, ok := AsProved(item); ok {
		c.bumpProof(pv)
	}
	return item, nil
}

func (c *CountingInterpreter) Prop1() (proof.Proved, error) {
	pv, err := c.StatefulInterpreter.Prop1()
	if err == nil {
		c.bumpProof(pv)
	}
	return pv, err
}

func (c *CountingInterpreter) Prop2() (proof.Proved, error) {
	pv, err := c.StatefulInterpreter.Prop2()
	if err == nil {
		c.bumpProof(pv)
	}
	return pv, err
}

func (c *CountingInterpreter) Prop3() (proof.Proved, error) {
	pv, err := c.StatefulInterpreter.Prop3()
	if err == nil {
		c.bumpProof(pv)
	}
	return pv, err
}

func (c *CountingInterpreter) ModusPonens() (proof.Proved, error) {
	pv, err := c.StatefulInterpreter.ModusPonens()
	if err == nil {
		c.bumpProof(pv)
	}
	return pv, err
}

func (c *CountingInterpreter) ExistsQuantifier() (proof.Proved, error) {
	pv, err := c.StatefulInterpreter.ExistsQuantifier()
	if err == nil {
		c.bumpProof(pv)
	}
	return pv, err
}

func (c *CountingInterpreter) ExistsGeneralization(v uint32) (proof.Proved, error) {
	pv, err := c.StatefulInterpreter.ExistsGeneralization(v)
	if err == nil {
		c.bumpProof(pv)
	}
	return pv, err
}

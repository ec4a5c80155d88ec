package interp

import (
	"mlproof/internal/pattern"
)

// EmitPattern drives interp through whatever primitive ops are needed to
// place p on its stack, recursing bottom-up through p's children and
// dispatching purely through the Interpreter interface so dynamic dispatch
// resolves to whichever decorator wraps the stateful base.
//
// Before descending into a node, it consults interp's optional reuseAware
// capability: if the node's structural hash is already known reusable, a
// single Load replaces the entire construction subtree, children included.
// This is what lets the memoizing interpreter skip not just the final
// combining op but every op that built the sub-pattern the first time
// around. Children are emitted through EmitPattern too, so a reusable
// sub-pattern nested inside a non-reusable parent is still memoized.
func EmitPattern(interp Interpreter, p pattern.Pattern) (pattern.Pattern, error) {
	ra, ok := interp.(reuseAware)
	if !ok {
		return emitChildren(interp, p, EmitPattern)
	}
	key := "P:" + pattern.HashKey(p)
	if idx, found := ra.reuseLookup(key); found {
		item, err := interp.Load(idx)
		if err != nil {
			return nil, err
		}
		result, _ := AsPattern(item)
		return result, nil
	}
	result, err := emitChildren(interp, p, EmitPattern)
	if err != nil {
		return nil, err
	}
	if ra.isReusable(key) {
		idx, err := interp.Save()
		if err != nil {
			return nil, err
		}
		ra.reuseRecord(key, idx)
	}
	return result, nil
}

// EmitPatternFresh builds p without ever consulting or growing a
// reuseAware memoization table, at p itself or at any of its descendants.
// internal/proofexpr's plain `instantiate` combinator uses this (as opposed
// to `dynamic_inst`, which uses EmitPattern) for plug patterns that are
// meant to be constructed once and not tracked for reuse.
func EmitPatternFresh(interp Interpreter, p pattern.Pattern) (pattern.Pattern, error) {
	return emitChildren(interp, p, EmitPatternFresh)
}

// emitChildren performs the one-level bottom-up construction of p, using
// recurse for each child so the caller controls whether descendants are
// reuse-aware.
func emitChildren(interp Interpreter, p pattern.Pattern, recurse func(Interpreter, pattern.Pattern) (pattern.Pattern, error)) (pattern.Pattern, error) {
	switch t := p.(type) {
	case *pattern.EVar:
		return interp.EVar(t.ID)
	case *pattern.SVar:
		return interp.SVar(t.ID)
	case *pattern.Symbol:
		return interp.Symbol(t.Name)
	case *pattern.Implies:
		if _, err := recurse(interp, t.Left); err != nil {
			return nil, err
		}
		if _, err := recurse(interp, t.Right); err != nil {
			return nil, err
		}
		return interp.Implies()
	case *pattern.App:
		if _, err := recurse(interp, t.Left); err != nil {
			return nil, err
		}
		if _, err := recurse(interp, t.Right); err != nil {
			return nil, err
		}
		return interp.App()
	case *pattern.Exists:
		if _, err := recurse(interp, t.Body); err != nil {
			return nil, err
		}
		return interp.Exists(t.Var)
	case *pattern.Mu:
		if _, err := recurse(interp, t.Body); err != nil {
			return nil, err
		}
		return interp.Mu(t.Var)
	case *pattern.MetaVar:
		if isCleanMetaVar(t) {
			return interp.CleanMetaVar(t.ID)
		}
		return interp.MetaVar(t.ID, t.EFresh, t.SFresh, t.Positive, t.Negative, t.ApplicationContext)
	case *pattern.ESubst:
		if _, err := recurse(interp, t.Pattern); err != nil {
			return nil, err
		}
		if _, err := recurse(interp, t.Plug); err != nil {
			return nil, err
		}
		return interp.ESubst(t.EVarID)
	case *pattern.SSubst:
		if _, err := recurse(interp, t.Pattern); err != nil {
			return nil, err
		}
		if _, err := recurse(interp, t.Plug); err != nil {
			return nil, err
		}
		return interp.SSubst(t.SVarID)
	default:
		panic("interp: EmitPattern: unhandled pattern variant")
	}
}

// isCleanMetaVar reports whether m has every side-condition set empty, the
// shape pattern.CleanMetaVar produces. Such a metavar is structurally
// indistinguishable from one built with all-nil sets, so it's emitted via
// the dedicated CleanMetaVar op rather than five length-0 immediate lists.
func isCleanMetaVar(m *pattern.MetaVar) bool {
	return len(m.EFresh) == 0 && len(m.SFresh) == 0 && len(m.Positive) == 0 &&
		len(m.Negative) == 0 && len(m.ApplicationContext) == 0
}

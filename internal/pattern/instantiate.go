package pattern

// Instantiate is a total, structural recursion. MetaVars whose id is a key
// of delta are replaced by the corresponding plug; everything else is
// rebuilt unchanged. Binders (Exists, Mu) recurse into their body unchanged
// because metavariable ids and evar/svar ids live in disjoint namespaces, so
// no capture can occur at this level.

func (e *EVar) Instantiate(map[uint32]Pattern) Pattern { return e }
func (s *SVar) Instantiate(map[uint32]Pattern) Pattern { return s }
func (s *Symbol) Instantiate(map[uint32]Pattern) Pattern { return s }

func (i *Implies) Instantiate(delta map[uint32]Pattern) Pattern {
	return NewImplies(i.Left.Instantiate(delta), i.Right.Instantiate(delta))
}

func (a *App) Instantiate(delta map[uint32]Pattern) Pattern {
	return NewApp(a.Left.Instantiate(delta), a.Right.Instantiate(delta))
}

func (e *Exists) Instantiate(delta map[uint32]Pattern) Pattern {
	return NewExists(e.Var, e.Body.Instantiate(delta))
}

func (m *Mu) Instantiate(delta map[uint32]Pattern) Pattern {
	// The body of an already-constructed Mu is known well-formed; after
	// substitution it remains well-formed because positivity/negativity
	// obligations on the plug are the caller's responsibility, so we
	// bypass the constructor's positivity check here.
	return &Mu{Var: m.Var, Body: m.Body.Instantiate(delta)}
}

func (m *MetaVar) Instantiate(delta map[uint32]Pattern) Pattern {
	if plug, ok := delta[m.ID]; ok {
		return plug
	}
	return m
}

func (e *ESubst) Instantiate(delta map[uint32]Pattern) Pattern {
	innerInst := e.Pattern.Instantiate(delta)
	plugInst := e.Plug.Instantiate(delta)
	if _, stillMeta := innerInst.(*MetaVar); stillMeta {
		return NewESubst(innerInst, e.EVarID, plugInst)
	}
	return substEVar(innerInst, e.EVarID, plugInst)
}

func (s *SSubst) Instantiate(delta map[uint32]Pattern) Pattern {
	innerInst := s.Pattern.Instantiate(delta)
	plugInst := s.Plug.Instantiate(delta)
	if _, stillMeta := innerInst.(*MetaVar); stillMeta {
		return NewSSubst(innerInst, s.SVarID, plugInst)
	}
	return substSVar(innerInst, s.SVarID, plugInst)
}

// substEVar pushes a resolved element-variable substitution through the
// concrete constructors of p, deferring (re-wrapping as ESubst) at any node
// that is still schematic: a MetaVar, or another deferred substitution.
func substEVar(p Pattern, evarID uint32, plug Pattern) Pattern {
	switch v := p.(type) {
	case *EVar:
		if v.ID == evarID {
			return plug
		}
		return v
	case *SVar, *Symbol:
		return p
	case *Implies:
		return NewImplies(substEVar(v.Left, evarID, plug), substEVar(v.Right, evarID, plug))
	case *App:
		return NewApp(substEVar(v.Left, evarID, plug), substEVar(v.Right, evarID, plug))
	case *Exists:
		if v.Var == evarID {
			// The binder shadows evarID; no free occurrence below to touch.
			return v
		}
		return NewExists(v.Var, substEVar(v.Body, evarID, plug))
	case *Mu:
		return &Mu{Var: v.Var, Body: substEVar(v.Body, evarID, plug)}
	case *MetaVar, *ESubst, *SSubst:
		return NewESubst(v, evarID, plug)
	default:
		return p
	}
}

// substSVar mirrors substEVar for set-variable substitution; Mu is the
// binder that can shadow here, not Exists.
func substSVar(p Pattern, svarID uint32, plug Pattern) Pattern {
	switch v := p.(type) {
	case *SVar:
		if v.ID == svarID {
			return plug
		}
		return v
	case *EVar, *Symbol:
		return p
	case *Implies:
		return NewImplies(substSVar(v.Left, svarID, plug), substSVar(v.Right, svarID, plug))
	case *App:
		return NewApp(substSVar(v.Left, svarID, plug), substSVar(v.Right, svarID, plug))
	case *Exists:
		return NewExists(v.Var, substSVar(v.Body, svarID, plug))
	case *Mu:
		if v.Var == svarID {
			return v
		}
		return &Mu{Var: v.Var, Body: substSVar(v.Body, svarID, plug)}
	case *MetaVar, *ESubst, *SSubst:
		return NewSSubst(v, svarID, plug)
	default:
		return p
	}
}

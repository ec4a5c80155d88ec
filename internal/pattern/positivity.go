package pattern

// occursOnlyPositively reports whether v occurs only positively in p, the
// well-formedness obligation NewMu enforces. It is defined by the usual
// mutually recursive positive/negative occurrence predicates: a bare
// variable is a positive occurrence of itself; Implies flips polarity on
// its left side; binders pass polarity through to their body unless they
// shadow v; a MetaVar's occurrence is resolved by its own positive/negative
// side-condition sets, conservatively treated as "mentions v both ways"
// when neither set claims it; deferred substitutions are conservative too,
// requiring the obligation to hold on both the substituted pattern and the
// plug.
func occursOnlyPositively(p Pattern, v uint32) bool {
	return occursPositively(p, v) && !occursNegatively(p, v)
}

func occursPositively(p Pattern, v uint32) bool {
	switch t := p.(type) {
	case *EVar, *Symbol:
		return true
	case *SVar:
		return true // a bare occurrence of the variable itself is positive
	case *Implies:
		return occursNegatively(t.Left, v) && occursPositively(t.Right, v)
	case *App:
		return occursPositively(t.Left, v) && occursPositively(t.Right, v)
	case *Exists:
		return occursPositively(t.Body, v)
	case *Mu:
		if t.Var == v {
			return true
		}
		return occursPositively(t.Body, v)
	case *MetaVar:
		if t.Positive.Contains(v) {
			return true
		}
		if t.Negative.Contains(v) {
			return false
		}
		// Neither side condition names v: conservatively assume the plug
		// that eventually fills this hole could mention v in a negative
		// position too, so this occurrence is not provably positive-only.
		return false
	case *ESubst:
		return occursPositively(t.Pattern, v) && occursPositively(t.Plug, v)
	case *SSubst:
		return occursPositively(t.Pattern, v) && occursPositively(t.Plug, v)
	default:
		return true
	}
}

func occursNegatively(p Pattern, v uint32) bool {
	switch t := p.(type) {
	case *EVar, *Symbol:
		return false
	case *SVar:
		return false // a bare variable is never a negative occurrence of itself
	case *Implies:
		return occursPositively(t.Left, v) && occursNegatively(t.Right, v)
	case *App:
		return occursNegatively(t.Left, v) && occursNegatively(t.Right, v)
	case *Exists:
		return occursNegatively(t.Body, v)
	case *Mu:
		if t.Var == v {
			return false
		}
		return occursNegatively(t.Body, v)
	case *MetaVar:
		if t.Negative.Contains(v) {
			return true
		}
		if t.Positive.Contains(v) {
			return false
		}
		return false
	case *ESubst:
		return occursNegatively(t.Pattern, v) && occursNegatively(t.Plug, v)
	case *SSubst:
		return occursNegatively(t.Pattern, v) && occursNegatively(t.Plug, v)
	default:
		return false
	}
}

// ContainsFreeEVar reports whether element variable id occurs free in p,
// i.e. outside the scope of any Exists binding that id. ExistsGeneralization
// uses this to check its side condition.
func ContainsFreeEVar(p Pattern, id uint32) bool {
	switch t := p.(type) {
	case *EVar:
		return t.ID == id
	case *SVar, *Symbol:
		return false
	case *Implies:
		return ContainsFreeEVar(t.Left, id) || ContainsFreeEVar(t.Right, id)
	case *App:
		return ContainsFreeEVar(t.Left, id) || ContainsFreeEVar(t.Right, id)
	case *Exists:
		if t.Var == id {
			return false
		}
		return ContainsFreeEVar(t.Body, id)
	case *Mu:
		return ContainsFreeEVar(t.Body, id)
	case *MetaVar:
		// A bare metavariable may stand for anything unless its e_fresh
		// side condition rules id out.
		return !t.EFresh.Contains(id)
	case *ESubst:
		if t.EVarID == id {
			return ContainsFreeEVar(t.Plug, id)
		}
		return ContainsFreeEVar(t.Pattern, id) || ContainsFreeEVar(t.Plug, id)
	case *SSubst:
		return ContainsFreeEVar(t.Pattern, id) || ContainsFreeEVar(t.Plug, id)
	default:
		return false
	}
}

// ContainsFreeSVar mirrors ContainsFreeEVar for set variables, Mu being the
// binder that can remove a free occurrence.
func ContainsFreeSVar(p Pattern, id uint32) bool {
	switch t := p.(type) {
	case *SVar:
		return t.ID == id
	case *EVar, *Symbol:
		return false
	case *Implies:
		return ContainsFreeSVar(t.Left, id) || ContainsFreeSVar(t.Right, id)
	case *App:
		return ContainsFreeSVar(t.Left, id) || ContainsFreeSVar(t.Right, id)
	case *Exists:
		return ContainsFreeSVar(t.Body, id)
	case *Mu:
		if t.Var == id {
			return false
		}
		return ContainsFreeSVar(t.Body, id)
	case *MetaVar:
		return !t.SFresh.Contains(id)
	case *ESubst:
		return ContainsFreeSVar(t.Pattern, id) || ContainsFreeSVar(t.Plug, id)
	case *SSubst:
		if t.SVarID == id {
			return ContainsFreeSVar(t.Plug, id)
		}
		return ContainsFreeSVar(t.Pattern, id) || ContainsFreeSVar(t.Plug, id)
	default:
		return false
	}
}

// IsApplicationContext reports whether plug holds exactly one occurrence of
// SVar/EVar id v reached through App nodes only — the shape the
// application_context side condition demands. Subtrees beside that path may
// be any pattern in which v does not occur free; v under any other
// constructor, or a second occurrence of v, disqualifies the plug.
func IsApplicationContext(plug Pattern, v uint32) bool {
	n, ok := countHole(plug, v)
	return ok && n == 1
}

func countHole(p Pattern, v uint32) (int, bool) {
	switch t := p.(type) {
	case *EVar:
		if t.ID == v {
			return 1, true
		}
		return 0, true
	case *SVar:
		if t.ID == v {
			return 1, true
		}
		return 0, true
	case *App:
		ln, lok := countHole(t.Left, v)
		rn, rok := countHole(t.Right, v)
		if !lok || !rok {
			return 0, false
		}
		return ln + rn, true
	default:
		if ContainsFreeEVar(p, v) || ContainsFreeSVar(p, v) {
			return 0, false
		}
		return 0, true
	}
}

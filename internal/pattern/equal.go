package pattern

// Equal implements structural equality: same variant and all recursive
// fields compare equal. MetaVar side-condition sets compare as sets (see
// IDSet.Equal), not as ordered sequences.

func (e *EVar) Equal(other Pattern) bool {
	o, ok := other.(*EVar)
	return ok && e.ID == o.ID
}

func (s *SVar) Equal(other Pattern) bool {
	o, ok := other.(*SVar)
	return ok && s.ID == o.ID
}

func (s *Symbol) Equal(other Pattern) bool {
	o, ok := other.(*Symbol)
	return ok && s.Name == o.Name
}

func (i *Implies) Equal(other Pattern) bool {
	o, ok := other.(*Implies)
	return ok && i.Left.Equal(o.Left) && i.Right.Equal(o.Right)
}

func (a *App) Equal(other Pattern) bool {
	o, ok := other.(*App)
	return ok && a.Left.Equal(o.Left) && a.Right.Equal(o.Right)
}

func (e *Exists) Equal(other Pattern) bool {
	o, ok := other.(*Exists)
	return ok && e.Var == o.Var && e.Body.Equal(o.Body)
}

func (m *Mu) Equal(other Pattern) bool {
	o, ok := other.(*Mu)
	return ok && m.Var == o.Var && m.Body.Equal(o.Body)
}

func (m *MetaVar) Equal(other Pattern) bool {
	o, ok := other.(*MetaVar)
	if !ok || m.ID != o.ID {
		return false
	}
	return m.EFresh.Equal(o.EFresh) &&
		m.SFresh.Equal(o.SFresh) &&
		m.Positive.Equal(o.Positive) &&
		m.Negative.Equal(o.Negative) &&
		m.ApplicationContext.Equal(o.ApplicationContext)
}

func (e *ESubst) Equal(other Pattern) bool {
	o, ok := other.(*ESubst)
	return ok && e.EVarID == o.EVarID && e.Pattern.Equal(o.Pattern) && e.Plug.Equal(o.Plug)
}

func (s *SSubst) Equal(other Pattern) bool {
	o, ok := other.(*SSubst)
	return ok && s.SVarID == o.SVarID && s.Pattern.Equal(o.Pattern) && s.Plug.Equal(o.Plug)
}

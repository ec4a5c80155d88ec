package interp

import (
	"fmt"

	"mlproof/internal/diag"
	"mlproof/internal/pattern"
	"mlproof/internal/proof"
)

// bottom is the nullary constant Prop3 is stated against:
// |- ((phi0 -> bot) -> bot) -> phi0.
var bottom = pattern.NewSymbol("⊥")

// StatefulInterpreter is the interpreter core: it owns the stack, memory,
// phase, the pending claim LIFO, and the accumulated axiom list, and
// enforces the phase, shape and claim checks and the meta obligations that
// checkObligation covers. The serializing, pretty-printing and counting
// decorators embed one of these and forward to it for the actual state
// mutation; the memoizing decorator wraps any Interpreter instead.
type StatefulInterpreter struct {
	phase    Phase
	stack    []StackItem
	memory   []StackItem
	axioms   []pattern.Pattern
	claims   []pattern.Pattern // LIFO: next expected claim is the last element
	warnings []string
}

// NewStateful returns a fresh interpreter in the Gamma phase with empty
// stack, memory, claims and axiom list.
func NewStateful() *StatefulInterpreter {
	return &StatefulInterpreter{phase: Gamma}
}

func (s *StatefulInterpreter) Phase() Phase          { return s.phase }
func (s *StatefulInterpreter) Stack() []StackItem    { return s.stack }
func (s *StatefulInterpreter) Memory() []StackItem   { return s.memory }
func (s *StatefulInterpreter) Warnings() []string    { return s.warnings }
func (s *StatefulInterpreter) warn(code diag.Code, format string, args ...any) {
	s.warnings = append(s.warnings, diag.Warning{Code: code, Message: fmt.Sprintf(format, args...)}.String())
}

func (s *StatefulInterpreter) push(item StackItem) { s.stack = append(s.stack, item) }

func (s *StatefulInterpreter) pop() (StackItem, error) {
	if len(s.stack) == 0 {
		return nil, diag.New(diag.ShapeMismatch, "pop from an empty stack")
	}
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return top, nil
}

func (s *StatefulInterpreter) popPattern() (pattern.Pattern, error) {
	item, err := s.pop()
	if err != nil {
		return nil, err
	}
	p, ok := AsPattern(item)
	if !ok {
		return nil, diag.New(diag.ShapeMismatch, "expected a pattern on top of the stack, found a proof")
	}
	return p, nil
}

func (s *StatefulInterpreter) popProved() (proof.Proved, error) {
	item, err := s.pop()
	if err != nil {
		return proof.Proved{}, err
	}
	pv, ok := AsProved(item)
	if !ok {
		return proof.Proved{}, diag.New(diag.ShapeMismatch, "expected a proof on top of the stack, found a pattern")
	}
	return pv, nil
}

// --- pattern-constructing ops ---

func (s *StatefulInterpreter) EVar(id uint32) (pattern.Pattern, error) {
	p := pattern.NewEVar(id)
	s.push(p)
	return p, nil
}

func (s *StatefulInterpreter) SVar(id uint32) (pattern.Pattern, error) {
	p := pattern.NewSVar(id)
	s.push(p)
	return p, nil
}

func (s *StatefulInterpreter) Symbol(name string) (pattern.Pattern, error) {
	p := pattern.NewSymbol(name)
	s.push(p)
	return p, nil
}

func (s *StatefulInterpreter) Implies() (pattern.Pattern, error) {
	right, err := s.popPattern()
	if err != nil {
		return nil, err
	}
	left, err := s.popPattern()
	if err != nil {
		return nil, err
	}
	p := pattern.NewImplies(left, right)
	s.push(p)
	return p, nil
}

func (s *StatefulInterpreter) App() (pattern.Pattern, error) {
	right, err := s.popPattern()
	if err != nil {
		return nil, err
	}
	left, err := s.popPattern()
	if err != nil {
		return nil, err
	}
	p := pattern.NewApp(left, right)
	s.push(p)
	return p, nil
}

func (s *StatefulInterpreter) Exists(v uint32) (pattern.Pattern, error) {
	body, err := s.popPattern()
	if err != nil {
		return nil, err
	}
	p := pattern.NewExists(v, body)
	s.push(p)
	return p, nil
}

func (s *StatefulInterpreter) Mu(v uint32) (pattern.Pattern, error) {
	body, err := s.popPattern()
	if err != nil {
		return nil, err
	}
	m, err := pattern.NewMu(v, body)
	if err != nil {
		return nil, diag.New(diag.ShapeMismatch, "%v", err)
	}
	s.push(m)
	return m, nil
}

func (s *StatefulInterpreter) MetaVar(id uint32, eFresh, sFresh, positive, negative, appctx []uint32) (pattern.Pattern, error) {
	p := pattern.NewMetaVar(id, eFresh, sFresh, positive, negative, appctx)
	s.push(p)
	return p, nil
}

func (s *StatefulInterpreter) CleanMetaVar(id uint32) (pattern.Pattern, error) {
	p := pattern.CleanMetaVar(id)
	s.push(p)
	return p, nil
}

func (s *StatefulInterpreter) ESubst(evarID uint32) (pattern.Pattern, error) {
	plug, err := s.popPattern()
	if err != nil {
		return nil, err
	}
	inner, err := s.popPattern()
	if err != nil {
		return nil, err
	}
	p := pattern.NewESubst(inner, evarID, plug)
	s.push(p)
	return p, nil
}

func (s *StatefulInterpreter) SSubst(svarID uint32) (pattern.Pattern, error) {
	plug, err := s.popPattern()
	if err != nil {
		return nil, err
	}
	inner, err := s.popPattern()
	if err != nil {
		return nil, err
	}
	p := pattern.NewSSubst(inner, svarID, plug)
	s.push(p)
	return p, nil
}

// collectDelta pops n plugs, in stack-pop order, binding them to ids[0..n)
// in that same order: metas k1...kn are substituted by the plugs in
// order-of-appearance on the stack.
func (s *StatefulInterpreter) collectDelta(ids []uint32) (map[uint32]pattern.Pattern, error) {
	delta := make(map[uint32]pattern.Pattern, len(ids))
	for _, id := range ids {
		plug, err := s.popPattern()
		if err != nil {
			return nil, err
		}
		delta[id] = plug
	}
	return delta, nil
}

// checkObligation verifies that plug, as a substitute for meta id in the
// pattern it was instantiated into, does not violate id's side conditions.
// It checks the freshness (e_fresh, s_fresh) and application-context
// conditions. The positive/negative conditions are not checked, here or
// in Pattern.Instantiate.
func checkObligation(id uint32, meta *pattern.MetaVar, plug pattern.Pattern) error {
	for _, evarID := range meta.EFresh {
		if pattern.ContainsFreeEVar(plug, evarID) {
			return diag.New(diag.MetaObligationViolation, "plug for meta %d is not fresh for element variable %d", id, evarID)
		}
	}
	for _, svarID := range meta.SFresh {
		if pattern.ContainsFreeSVar(plug, svarID) {
			return diag.New(diag.MetaObligationViolation, "plug for meta %d is not fresh for set variable %d", id, svarID)
		}
	}
	for _, ctxID := range meta.ApplicationContext {
		if !pattern.IsApplicationContext(plug, ctxID) {
			return diag.New(diag.MetaObligationViolation, "plug for meta %d is not a valid application context for %d", id, ctxID)
		}
	}
	return nil
}

// findMeta locates the MetaVar named id anywhere within p, needed to
// retrieve its side conditions before substitution erases the node.
func findMeta(p pattern.Pattern, id uint32) *pattern.MetaVar {
	switch t := p.(type) {
	case *pattern.MetaVar:
		if t.ID == id {
			return t
		}
		return nil
	case *pattern.Implies:
		if m := findMeta(t.Left, id); m != nil {
			return m
		}
		return findMeta(t.Right, id)
	case *pattern.App:
		if m := findMeta(t.Left, id); m != nil {
			return m
		}
		return findMeta(t.Right, id)
	case *pattern.Exists:
		return findMeta(t.Body, id)
	case *pattern.Mu:
		return findMeta(t.Body, id)
	case *pattern.ESubst:
		if m := findMeta(t.Pattern, id); m != nil {
			return m
		}
		return findMeta(t.Plug, id)
	case *pattern.SSubst:
		if m := findMeta(t.Pattern, id); m != nil {
			return m
		}
		return findMeta(t.Plug, id)
	default:
		return nil
	}
}

func (s *StatefulInterpreter) Instantiate(ids []uint32) (StackItem, error) {
	top, err := s.pop()
	if err != nil {
		return nil, err
	}
	if p, ok := AsPattern(top); ok {
		delta, err := s.collectDelta(ids)
		if err != nil {
			return nil, err
		}
		for id, plug := range delta {
			if meta := findMeta(p, id); meta != nil {
				if err := checkObligation(id, meta, plug); err != nil {
					return nil, err
				}
			}
		}
		result := p.Instantiate(delta)
		s.push(result)
		return result, nil
	}
	pv, _ := AsProved(top)
	delta, err := s.collectDelta(ids)
	if err != nil {
		return nil, err
	}
	conclusion := pv.Conclusion()
	for id, plug := range delta {
		if meta := findMeta(conclusion, id); meta != nil {
			if err := checkObligation(id, meta, plug); err != nil {
				return nil, err
			}
		}
	}
	result := proof.New(conclusion.Instantiate(delta))
	s.push(result)
	return result, nil
}

// --- proof rules ---

func (s *StatefulInterpreter) requirePhase(allowed ...Phase) error {
	for _, p := range allowed {
		if s.phase == p {
			return nil
		}
	}
	return diag.New(diag.PhaseViolation, "operation is not legal in phase %s", s.phase)
}

func (s *StatefulInterpreter) Prop1() (proof.Proved, error) {
	if err := s.requirePhase(Gamma, Proof); err != nil {
		return proof.Proved{}, err
	}
	phi0, phi1 := pattern.CleanMetaVar(0), pattern.CleanMetaVar(1)
	concl := pattern.NewImplies(phi0, pattern.NewImplies(phi1, phi0))
	pv := proof.New(concl)
	s.push(pv)
	return pv, nil
}

func (s *StatefulInterpreter) Prop2() (proof.Proved, error) {
	if err := s.requirePhase(Gamma, Proof); err != nil {
		return proof.Proved{}, err
	}
	phi0, phi1, phi2 := pattern.CleanMetaVar(0), pattern.CleanMetaVar(1), pattern.CleanMetaVar(2)
	left := pattern.NewImplies(phi0, pattern.NewImplies(phi1, phi2))
	right := pattern.NewImplies(pattern.NewImplies(phi0, phi1), pattern.NewImplies(phi0, phi2))
	concl := pattern.NewImplies(left, right)
	pv := proof.New(concl)
	s.push(pv)
	return pv, nil
}

func (s *StatefulInterpreter) Prop3() (proof.Proved, error) {
	if err := s.requirePhase(Gamma, Proof); err != nil {
		return proof.Proved{}, err
	}
	phi0 := pattern.CleanMetaVar(0)
	inner := pattern.NewImplies(pattern.NewImplies(phi0, bottom), bottom)
	concl := pattern.NewImplies(inner, phi0)
	pv := proof.New(concl)
	s.push(pv)
	return pv, nil
}

func (s *StatefulInterpreter) ModusPonens() (proof.Proved, error) {
	if err := s.requirePhase(Gamma, Proof); err != nil {
		return proof.Proved{}, err
	}
	minor, err := s.popProved()
	if err != nil {
		return proof.Proved{}, err
	}
	major, err := s.popProved()
	if err != nil {
		return proof.Proved{}, err
	}
	imp, ok := pattern.AsImplies(major.Conclusion())
	if !ok {
		return proof.Proved{}, diag.New(diag.ShapeMismatch, "modus_ponens: left operand is not an implication")
	}
	if !imp.Left.Equal(minor.Conclusion()) {
		return proof.Proved{}, diag.New(diag.ShapeMismatch, "modus_ponens: antecedent does not match minor premise")
	}
	pv := proof.New(imp.Right)
	s.push(pv)
	return pv, nil
}

func (s *StatefulInterpreter) ExistsQuantifier() (proof.Proved, error) {
	if err := s.requirePhase(Gamma, Proof); err != nil {
		return proof.Proved{}, err
	}
	phi0 := pattern.CleanMetaVar(0)
	y := pattern.CleanMetaVar(1)
	concl := pattern.NewImplies(pattern.NewESubst(phi0, 0, y), pattern.NewExists(0, phi0))
	pv := proof.New(concl)
	s.push(pv)
	return pv, nil
}

func (s *StatefulInterpreter) ExistsGeneralization(v uint32) (proof.Proved, error) {
	if err := s.requirePhase(Gamma, Proof); err != nil {
		return proof.Proved{}, err
	}
	premise, err := s.popProved()
	if err != nil {
		return proof.Proved{}, err
	}
	imp, ok := pattern.AsImplies(premise.Conclusion())
	if !ok {
		return proof.Proved{}, diag.New(diag.ShapeMismatch, "exists_generalization: premise is not an implication")
	}
	if pattern.ContainsFreeEVar(imp.Right, v) {
		return proof.Proved{}, diag.New(diag.MetaObligationViolation, "exists_generalization: variable %d occurs free in the consequent", v)
	}
	concl := pattern.NewImplies(pattern.NewExists(v, imp.Left), imp.Right)
	pv := proof.New(concl)
	s.push(pv)
	return pv, nil
}

// --- memory and publication ---

func (s *StatefulInterpreter) Save() (int, error) {
	if len(s.stack) == 0 {
		return 0, diag.New(diag.ShapeMismatch, "save from an empty stack")
	}
	idx := len(s.memory)
	s.memory = append(s.memory, s.stack[len(s.stack)-1])
	return idx, nil
}

func (s *StatefulInterpreter) Load(index int) (StackItem, error) {
	if index < 0 || index >= len(s.memory) {
		return nil, diag.New(diag.UnknownReference, "memory index %d is out of range", index)
	}
	item := s.memory[index]
	s.push(item)
	return item, nil
}

func (s *StatefulInterpreter) Pop() error {
	_, err := s.pop()
	return err
}

// PublishAxiom records the top of the stack as an accepted axiom. The top
// may be a bare pattern (the common case for a user-declared axiom) or a
// Proved (a derivation whose conclusion is being exported as a trusted
// fact for downstream phases); either way it is the conclusion pattern
// that gets recorded.
func (s *StatefulInterpreter) PublishAxiom() error {
	if err := s.requirePhase(Gamma); err != nil {
		return err
	}
	item, err := s.pop()
	if err != nil {
		return err
	}
	if p, ok := AsPattern(item); ok {
		s.axioms = append(s.axioms, p)
		return nil
	}
	pv, _ := AsProved(item)
	s.axioms = append(s.axioms, pv.Conclusion())
	return nil
}

func (s *StatefulInterpreter) PublishClaim() error {
	if err := s.requirePhase(Claim); err != nil {
		return err
	}
	p, err := s.popPattern()
	if err != nil {
		return err
	}
	s.claims = append(s.claims, p)
	return nil
}

func (s *StatefulInterpreter) PublishProof() error {
	if err := s.requirePhase(Proof); err != nil {
		return err
	}
	pv, err := s.popProved()
	if err != nil {
		return err
	}
	if len(s.claims) == 0 {
		return diag.New(diag.ClaimMismatch, "publish_proof: no remaining expected claim")
	}
	expected := s.claims[len(s.claims)-1]
	if !expected.Equal(pv.Conclusion()) {
		return diag.New(diag.ClaimMismatch, "publish_proof: conclusion does not match next expected claim")
	}
	s.claims = s.claims[:len(s.claims)-1]
	return nil
}

// --- phase transitions ---

func (s *StatefulInterpreter) IntoClaimPhase() error {
	if s.phase != Gamma {
		return diag.New(diag.PhaseViolation, "into_claim_phase: interpreter is not in the gamma phase")
	}
	s.phase = Claim
	return nil
}

func (s *StatefulInterpreter) IntoProofPhase() error {
	if s.phase != Claim {
		return diag.New(diag.PhaseViolation, "into_proof_phase: interpreter is not in the claim phase")
	}
	s.phase = Proof
	return nil
}

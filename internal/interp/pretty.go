package interp

import (
	"fmt"
	"io"
	"strings"

	"mlproof/internal/pattern"
	"mlproof/internal/proof"
)

// PrettyPrintingInterpreter wraps a stateful base: every op mutates the
// embedded base and then appends a trace line naming the op followed by a
// rendering of the resulting stack. A dump is suppressed right
// after Save/Publish* and the phase-transition markers; Load, which pushes
// a copy, is followed by a dump like the other ops.
type PrettyPrintingInterpreter struct {
	*StatefulInterpreter
	gamma, claim, proofSink io.Writer
	opts                    *pattern.PrettyOptions
}

// NewPrettyPrinting returns a pretty-printer writing human-readable trace
// lines to whichever of the three phase sinks is current (nil opts
// suppress notation, matching the serialize/deserialize round-trip
// requirement), mirroring SerializingInterpreter's phase-routed sink.
func NewPrettyPrinting(gamma, claim, proofSink io.Writer, opts *pattern.PrettyOptions) *PrettyPrintingInterpreter {
	if opts == nil {
		opts = &pattern.PrettyOptions{}
	}
	return &PrettyPrintingInterpreter{StatefulInterpreter: NewStateful(), gamma: gamma, claim: claim, proofSink: proofSink, opts: opts}
}

func (s *PrettyPrintingInterpreter) sink() io.Writer {
	switch s.Phase() {
	case Claim:
		return s.claim
	case Proof:
		return s.proofSink
	default:
		return s.gamma
	}
}

func (s *PrettyPrintingInterpreter) trace(op string, dump bool) {
	fmt.Fprintf(s.sink(), "%s\n", op)
	if !dump {
		return
	}
	lines := make([]string, len(s.Stack()))
	for i, item := range s.Stack() {
		lines[i] = item.Pretty(s.opts)
	}
	fmt.Fprintf(s.sink(), "  stack: [%s]\n", strings.Join(lines, ", "))
}

func (s *PrettyPrintingInterpreter) EVar(id uint32) (pattern.Pattern, error) {
	p, err := s.StatefulInterpreter.EVar(id)
	if err != nil {
		return nil, err
	}
	s.trace(fmt.Sprintf("EVar %d", id), true)
	return p, nil
}

func (s *PrettyPrintingInterpreter) SVar(id uint32) (pattern.Pattern, error) {
	p, err := s.StatefulInterpreter.SVar(id)
	if err != nil {
		return nil, err
	}
	s.trace(fmt.Sprintf("SVar %d", id), true)
	return p, nil
}

func (s *PrettyPrintingInterpreter) Symbol(name string) (pattern.Pattern, error) {
	p, err := s.StatefulInterpreter.Symbol(name)
	if err != nil {
		return nil, err
	}
	s.trace(fmt.Sprintf("Symbol %q", name), true)
	return p, nil
}

func (s *PrettyPrintingInterpreter) Implies() (pattern.Pattern, error) {
	p, err := s.StatefulInterpreter.Implies()
	if err != nil {
		return nil, err
	}
	s.trace("Implies", true)
	return p, nil
}

func (s *PrettyPrintingInterpreter) App() (pattern.Pattern, error) {
	p, err := s.StatefulInterpreter.App()
	if err != nil {
		return nil, err
	}
	s.trace("App", true)
	return p, nil
}

func (s *PrettyPrintingInterpreter) Exists(v uint32) (pattern.Pattern, error) {
	p, err := s.StatefulInterpreter.Exists(v)
	if err != nil {
		return nil, err
	}
	s.trace(fmt.Sprintf("Exists %d", v), true)
	return p, nil
}

func (s *PrettyPrintingInterpreter) Mu(v uint32) (pattern.Pattern, error) {
	p, err := s.StatefulInterpreter.Mu(v)
	if err != nil {
		return nil, err
	}
	s.trace(fmt.Sprintf("Mu %d", v), true)
	return p, nil
}

func (s *PrettyPrintingInterpreter) MetaVar(id uint32, eFresh, sFresh, positive, negative, appctx []uint32) (pattern.Pattern, error) {
	p, err := s.StatefulInterpreter.MetaVar(id, eFresh, sFresh, positive, negative, appctx)
	if err != nil {
		return nil, err
	}
	s.trace(fmt.Sprintf("MetaVar %d", id), true)
	return p, nil
}

func (s *PrettyPrintingInterpreter) CleanMetaVar(id uint32) (pattern.Pattern, error) {
	p, err := s.StatefulInterpreter.CleanMetaVar(id)
	if err != nil {
		return nil, err
	}
	s.trace(fmt.Sprintf("CleanMetaVar %d", id), true)
	return p, nil
}

func (s *PrettyPrintingInterpreter) ESubst(evarID uint32) (pattern.Pattern, error) {
	p, err := s.StatefulInterpreter.ESubst(evarID)
	if err != nil {
		return nil, err
	}
	s.trace(fmt.Sprintf("ESubst %d", evarID), true)
	return p, nil
}

func (s *PrettyPrintingInterpreter) SSubst(svarID uint32) (pattern.Pattern, error) {
	p, err := s.StatefulInterpreter.SSubst(svarID)
	if err != nil {
		return nil, err
	}
	s.trace(fmt.Sprintf("SSubst %d", svarID), true)
	return p, nil
}

func (s *PrettyPrintingInterpreter) Instantiate(ids []uint32) (StackItem, error) {
	item, err := s.StatefulInterpreter.Instantiate(ids)
	if err != nil {
		return nil, err
	}
	s.trace(fmt.Sprintf("Instantiate %v", ids), true)
	return item, nil
}

func (s *PrettyPrintingInterpreter) Prop1() (proof.Proved, error) {
	pv, err := s.StatefulInterpreter.Prop1()
	if err != nil {
		return pv, err
	}
	s.trace("Prop1", true)
	return pv, nil
}

func (s *PrettyPrintingInterpreter) Prop2() (proof.Proved, error) {
	pv, err := s.StatefulInterpreter.Prop2()
	if err != nil {
		return pv, err
	}
	s.trace("Prop2", true)
	return pv, nil
}

func (s *PrettyPrintingInterpreter) Prop3() (proof.Proved, error) {
	pv, err := s.StatefulInterpreter.Prop3()
	if err != nil {
		return pv, err
	}
	s.trace("Prop3", true)
	return pv, nil
}

func (s *PrettyPrintingInterpreter) ModusPonens() (proof.Proved, error) {
	pv, err := s.StatefulInterpreter.ModusPonens()
	if err != nil {
		return pv, err
	}
	s.trace("ModusPonens", true)
	return pv, nil
}

func (s *PrettyPrintingInterpreter) ExistsQuantifier() (proof.Proved, error) {
	pv, err := s.StatefulInterpreter.ExistsQuantifier()
	if err != nil {
		return pv, err
	}
	s.trace("ExistsQuantifier", true)
	return pv, nil
}

func (s *PrettyPrintingInterpreter) ExistsGeneralization(v uint32) (proof.Proved, error) {
	pv, err := s.StatefulInterpreter.ExistsGeneralization(v)
	if err != nil {
		return pv, err
	}
	s.trace(fmt.Sprintf("ExistsGeneralization %d", v), true)
	return pv, nil
}

func (s *PrettyPrintingInterpreter) Save() (int, error) {
	idx, err := s.StatefulInterpreter.Save()
	if err != nil {
		return 0, err
	}
	s.trace(fmt.Sprintf("Save -> %d", idx), false)
	return idx, nil
}

func (s *PrettyPrintingInterpreter) Load(index int) (StackItem, error) {
	item, err := s.StatefulInterpreter.Load(index)
	if err != nil {
		return nil, err
	}
	s.trace(fmt.Sprintf("Load %d", index), true)
	return item, nil
}

func (s *PrettyPrintingInterpreter) Pop() error {
	if err := s.StatefulInterpreter.Pop(); err != nil {
		return err
	}
	s.trace("Pop", true)
	return nil
}

func (s *PrettyPrintingInterpreter) PublishAxiom() error {
	if err := s.StatefulInterpreter.PublishAxiom(); err != nil {
		return err
	}
	s.trace("PublishAxiom", false)
	return nil
}

func (s *PrettyPrintingInterpreter) PublishClaim() error {
	if err := s.StatefulInterpreter.PublishClaim(); err != nil {
		return err
	}
	s.trace("PublishClaim", false)
	return nil
}

func (s *PrettyPrintingInterpreter) PublishProof() error {
	if err := s.StatefulInterpreter.PublishProof(); err != nil {
		return err
	}
	s.trace("PublishProof", false)
	return nil
}

func (s *PrettyPrintingInterpreter) IntoClaimPhase() error {
	if err := s.StatefulInterpreter.IntoClaimPhase(); err != nil {
		return err
	}
	s.trace("-- claim phase --", false)
	return nil
}

func (s *PrettyPrintingInterpreter) IntoProofPhase() error {
	if err := s.StatefulInterpreter.IntoProofPhase(); err != nil {
		return err
	}
	s.trace("-- proof phase --", false)
	return nil
}

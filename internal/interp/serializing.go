package interp

import (
	"io"

	"mlproof/internal/codec"
	"mlproof/internal/diag"
	"mlproof/internal/pattern"
	"mlproof/internal/proof"
)

// SerializingInterpreter wraps a stateful base: every accepted op both
// mutates the embedded base and appends its wire encoding to whichever of
// the three sinks matches the current phase.
type SerializingInterpreter struct {
	*StatefulInterpreter
	gamma, claim, proofSink io.Writer
	symbols                 *codec.SymbolTable
}

// NewSerializing returns a serializer writing to the three phase sinks,
// interning symbol names through table (see codec.SymbolTable for why the
// table must be shared with whatever decoder later reads these sinks).
func NewSerializing(gamma, claim, proofSink io.Writer, table *codec.SymbolTable) (*SerializingInterpreter, error) {
	s := &SerializingInterpreter{
		StatefulInterpreter: NewStateful(),
		gamma:               gamma,
		claim:               claim,
		proofSink:           proofSink,
		symbols:             table,
	}
	if err := s.emit(byte(codec.OpVersion), codec.Version); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SerializingInterpreter) sink() io.Writer {
	switch s.Phase() {
	case Claim:
		return s.claim
	case Proof:
		return s.proofSink
	default:
		return s.gamma
	}
}

func (s *SerializingInterpreter) emit(bs ...byte) error {
	if _, err := s.sink().Write(bs); err != nil {
		return diag.New(diag.IOFailure, "%v", err)
	}
	return nil
}

func byteID(id uint32) (byte, error) {
	if id > 255 {
		return 0, diag.New(diag.ShapeMismatch, "id %d does not fit the single-byte wire encoding", id)
	}
	return byte(id), nil
}

func (s *SerializingInterpreter) emitIDList(ids []uint32) error {
	if len(ids) > 255 {
		return diag.New(diag.ShapeMismatch, "side-condition list of length %d exceeds the wire length-byte", len(ids))
	}
	out := make([]byte, 0, len(ids)+1)
	out = append(out, byte(len(ids)))
	for _, id := range ids {
		b, err := byteID(id)
		if err != nil {
			return err
		}
		out = append(out, b)
	}
	return s.emit(out...)
}

func (s *SerializingInterpreter) EVar(id uint32) (pattern.Pattern, error) {
	p, err := s.StatefulInterpreter.EVar(id)
	if err != nil {
		return nil, err
	}
	b, err := byteID(id)
	if err != nil {
		return nil, err
	}
	return p, s.emit(byte(codec.OpEVar), b)
}

func (s *SerializingInterpreter) SVar(id uint32) (pattern.Pattern, error) {
	p, err := s.StatefulInterpreter.SVar(id)
	if err != nil {
		return nil, err
	}
	b, err := byteID(id)
	if err != nil {
		return nil, err
	}
	return p, s.emit(byte(codec.OpSVar), b)
}

func (s *SerializingInterpreter) Symbol(name string) (pattern.Pattern, error) {
	p, err := s.StatefulInterpreter.Symbol(name)
	if err != nil {
		return nil, err
	}
	id, err := s.symbols.Intern(name)
	if err != nil {
		return nil, diag.New(diag.IOFailure, "%v", err)
	}
	return p, s.emit(byte(codec.OpSymbol), id)
}

func (s *SerializingInterpreter) Implies() (pattern.Pattern, error) {
	p, err := s.StatefulInterpreter.Implies()
	if err != nil {
		return nil, err
	}
	return p, s.emit(byte(codec.OpImplies))
}

func (s *SerializingInterpreter) App() (pattern.Pattern, error) {
	p, err := s.StatefulInterpreter.App()
	if err != nil {
		return nil, err
	}
	return p, s.emit(byte(codec.OpApp))
}

func (s *SerializingInterpreter) Exists(v uint32) (pattern.Pattern, error) {
	p, err := s.StatefulInterpreter.Exists(v)
	if err != nil {
		return nil, err
	}
	b, err := byteID(v)
	if err != nil {
		return nil, err
	}
	return p, s.emit(byte(codec.OpExists), b)
}

func (s *SerializingInterpreter) Mu(v uint32) (pattern.Pattern, error) {
	p, err := s.StatefulInterpreter.Mu(v)
	if err != nil {
		return nil, err
	}
	b, err := byteID(v)
	if err != nil {
		return nil, err
	}
	return p, s.emit(byte(codec.OpMu), b)
}

func (s *SerializingInterpreter) MetaVar(id uint32, eFresh, sFresh, positive, negative, appctx []uint32) (pattern.Pattern, error) {
	p, err := s.StatefulInterpreter.MetaVar(id, eFresh, sFresh, positive, negative, appctx)
	if err != nil {
		return nil, err
	}
	b, err := byteID(id)
	if err != nil {
		return nil, err
	}
	if err := s.emit(byte(codec.OpMetaVar), b); err != nil {
		return nil, err
	}
	for _, list := range [][]uint32{eFresh, sFresh, positive, negative, appctx} {
		if err := s.emitIDList(list); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (s *SerializingInterpreter) CleanMetaVar(id uint32) (pattern.Pattern, error) {
	p, err := s.StatefulInterpreter.CleanMetaVar(id)
	if err != nil {
		return nil, err
	}
	b, err := byteID(id)
	if err != nil {
		return nil, err
	}
	return p, s.emit(byte(codec.OpCleanMetaVar), b)
}

func (s *SerializingInterpreter) ESubst(evarID uint32) (pattern.Pattern, error) {
	p, err := s.StatefulInterpreter.ESubst(evarID)
	if err != nil {
		return nil, err
	}
	b, err := byteID(evarID)
	if err != nil {
		return nil, err
	}
	return p, s.emit(byte(codec.OpESubst), b)
}

func (s *SerializingInterpreter) SSubst(svarID uint32) (pattern.Pattern, error) {
	p, err := s.StatefulInterpreter.SSubst(svarID)
	if err != nil {
		return nil, err
	}
	b, err := byteID(svarID)
	if err != nil {
		return nil, err
	}
	return p, s.emit(byte(codec.OpSSubst), b)
}

func (s *SerializingInterpreter) Instantiate(ids []uint32) (StackItem, error) {
	item, err := s.StatefulInterpreter.Instantiate(ids)
	if err != nil {
		return nil, err
	}
	if len(ids) > 255 {
		return nil, diag.New(diag.ShapeMismatch, "instantiate arity %d exceeds the wire length-byte", len(ids))
	}
	out := []byte{byte(codec.OpInstantiate), byte(len(ids))}
	for _, id := range ids {
		b, err := byteID(id)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return item, s.emit(out...)
}

func (s *SerializingInterpreter) Prop1() (proof.Proved, error) {
	pv, err := s.StatefulInterpreter.Prop1()
	if err != nil {
		return pv, err
	}
	return pv, s.emit(byte(codec.OpProp1))
}

func (s *SerializingInterpreter) Prop2() (proof.Proved, error) {
	pv, err := s.StatefulInterpreter.Prop2()
	if err != nil {
		return pv, err
	}
	return pv, s.emit(byte(codec.OpProp2))
}

func (s *SerializingInterpreter) Prop3() (proof.Proved, error) {
	pv, err := s.StatefulInterpreter.Prop3()
	if err != nil {
		return pv, err
	}
	return pv, s.emit(byte(codec.OpProp3))
}

func (s *SerializingInterpreter) ModusPonens() (proof.Proved, error) {
	pv, err := s.StatefulInterpreter.ModusPonens()
	if err != nil {
		return pv, err
	}
	return pv, s.emit(byte(codec.OpModusPonens))
}

func (s *SerializingInterpreter) ExistsQuantifier() (proof.Proved, error) {
	pv, err := s.StatefulInterpreter.ExistsQuantifier()
	if err != nil {
		return pv, err
	}
	return pv, s.emit(byte(codec.OpQuantifier))
}

func (s *SerializingInterpreter) ExistsGeneralization(v uint32) (proof.Proved, error) {
	pv, err := s.StatefulInterpreter.ExistsGeneralization(v)
	if err != nil {
		return pv, err
	}
	b, err := byteID(v)
	if err != nil {
		return pv, err
	}
	return pv, s.emit(byte(codec.OpGeneralization), b)
}

func (s *SerializingInterpreter) Save() (int, error) {
	idx, err := s.StatefulInterpreter.Save()
	if err != nil {
		return 0, err
	}
	b, err := byteID(uint32(idx))
	if err != nil {
		return 0, err
	}
	return idx, s.emit(byte(codec.OpSave), b)
}

func (s *SerializingInterpreter) Load(index int) (StackItem, error) {
	item, err := s.StatefulInterpreter.Load(index)
	if err != nil {
		return nil, err
	}
	b, err := byteID(uint32(index))
	if err != nil {
		return nil, err
	}
	return item, s.emit(byte(codec.OpLoad), b)
}

func (s *SerializingInterpreter) Pop() error {
	if err := s.StatefulInterpreter.Pop(); err != nil {
		return err
	}
	return s.emit(byte(codec.OpPop))
}

func (s *SerializingInterpreter) PublishAxiom() error {
	if err := s.StatefulInterpreter.PublishAxiom(); err != nil {
		return err
	}
	return s.emit(byte(codec.OpPublish))
}

func (s *SerializingInterpreter) PublishClaim() error {
	if err := s.StatefulInterpreter.PublishClaim(); err != nil {
		return err
	}
	return s.emit(byte(codec.OpPublish))
}

func (s *SerializingInterpreter) PublishProof() error {
	if err := s.StatefulInterpreter.PublishProof(); err != nil {
		return err
	}
	return s.emit(byte(codec.OpPublish))
}

func (s *SerializingInterpreter) IntoClaimPhase() error {
	if err := s.StatefulInterpreter.IntoClaimPhase(); err != nil {
		return err
	}
	return s.emit(byte(codec.OpVersion), codec.Version)
}

func (s *SerializingInterpreter) IntoProofPhase() error {
	if err := s.StatefulInterpreter.IntoProofPhase(); err != nil {
		return err
	}
	return s.emit(byte(codec.OpVersion), codec.Version)
}

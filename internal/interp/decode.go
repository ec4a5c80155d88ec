package interp

import (
	"bufio"
	"fmt"
	"io"

	"mlproof/internal/codec"
)

// Decoder replays an encoded instruction stream against any Interpreter,
// reading exactly the immediate arguments each opcode declares and
// aborting on an opcode it doesn't recognize.
type Decoder struct {
	table *codec.SymbolTable
}

// NewDecoder returns a decoder resolving Symbol ids through table, which
// must be the same SymbolTable instance the original SerializingInterpreter
// interned names into (interning is out of band, not part of the
// persisted bytes; see codec.SymbolTable).
func NewDecoder(table *codec.SymbolTable) *Decoder {
	return &Decoder{table: table}
}

// DecodeAll replays the three phase streams in order, transitioning interp
// through Claim and Proof between them exactly once each.
func (d *Decoder) DecodeAll(interp Interpreter, gamma, claim, proofStream io.Reader) error {
	if err := d.decodeStream(interp, gamma); err != nil {
		return fmt.Errorf("interp: gamma stream: %w", err)
	}
	if err := interp.IntoClaimPhase(); err != nil {
		return err
	}
	if err := d.decodeStream(interp, claim); err != nil {
		return fmt.Errorf("interp: claim stream: %w", err)
	}
	if err := interp.IntoProofPhase(); err != nil {
		return err
	}
	if err := d.decodeStream(interp, proofStream); err != nil {
		return fmt.Errorf("interp: proof stream: %w", err)
	}
	return nil
}

func (d *Decoder) decodeStream(interp Interpreter, r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		opByte, err := br.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := d.decodeOne(interp, br, codec.Opcode(opByte)); err != nil {
			return err
		}
	}
}

func readIDList(br *bufio.Reader) ([]uint32, error) {
	n, err := br.ReadByte()
	if err != nil {
		return nil, err
	}
	out := make([]uint32, n)
	for i := range out {
		b, err := br.ReadByte()
		if err != nil {
			return nil, err
		}
		out[i] = uint32(b)
	}
	return out, nil
}

func (d *Decoder) decodeOne(interp Interpreter, br *bufio.Reader, op codec.Opcode) error {
	switch op {
	case codec.OpVersion:
		v, err := br.ReadByte()
		if err != nil {
			return err
		}
		if v != codec.Version {
			return fmt.Errorf("interp: unsupported wire version %d", v)
		}
		return nil
	case codec.OpEVar:
		id, err := br.ReadByte()
		if err != nil {
			return err
		}
		_, err = interp.EVar(uint32(id))
		return err
	case codec.OpSVar:
		id, err := br.ReadByte()
		if err != nil {
			return err
		}
		_, err = interp.SVar(uint32(id))
		return err
	case codec.OpSymbol:
		id, err := br.ReadByte()
		if err != nil {
			return err
		}
		name, ok := d.table.Name(id)
		if !ok {
			return fmt.Errorf("interp: unknown symbol id %d", id)
		}
		_, err = interp.Symbol(name)
		return err
	case codec.OpImplies:
		_, err := interp.Implies()
		return err
	case codec.OpApp:
		_, err := interp.App()
		return err
	case codec.OpExists:
		v, err := br.ReadByte()
		if err != nil {
			return err
		}
		_, err = interp.Exists(uint32(v))
		return err
	case codec.OpMu:
		v, err := br.ReadByte()
		if err != nil {
			return err
		}
		_, err = interp.Mu(uint32(v))
		return err
	case codec.OpMetaVar:
		id, err := br.ReadByte()
		if err != nil {
			return err
		}
		lists := make([][]uint32, 5)
		for i := range lists {
			lists[i], err = readIDList(br)
			if err != nil {
				return err
			}
		}
		_, err = interp.MetaVar(uint32(id), lists[0], lists[1], lists[2], lists[3], lists[4])
		return err
	case codec.OpCleanMetaVar:
		id, err := br.ReadByte()
		if err != nil {
			return err
		}
		_, err = interp.CleanMetaVar(uint32(id))
		return err
	case codec.OpESubst:
		id, err := br.ReadByte()
		if err != nil {
			return err
		}
		_, err = interp.ESubst(uint32(id))
		return err
	case codec.OpSSubst:
		id, err := br.ReadByte()
		if err != nil {
			return err
		}
		_, err = interp.SSubst(uint32(id))
		return err
	case codec.OpInstantiate:
		ids, err := readIDList(br)
		if err != nil {
			return err
		}
		_, err = interp.Instantiate(ids)
		return err
	case codec.OpProp1:
		_, err := interp.Prop1()
		return err
	case codec.OpProp2:
		_, err := interp.Prop2()
		return err
	case codec.OpProp3:
		_, err := interp.Prop3()
		return err
	case codec.OpModusPonens:
		_, err := interp.ModusPonens()
		return err
	case codec.OpQuantifier:
		_, err := interp.ExistsQuantifier()
		return err
	case codec.OpGeneralization:
		v, err := br.ReadByte()
		if err != nil {
			return err
		}
		_, err = interp.ExistsGeneralization(uint32(v))
		return err
	case codec.OpSave:
		if _, err := br.ReadByte(); err != nil { // index is positional, recomputed by Save itself
			return err
		}
		_, err := interp.Save()
		return err
	case codec.OpLoad:
		idx, err := br.ReadByte()
		if err != nil {
			return err
		}
		_, err = interp.Load(int(idx))
		return err
	case codec.OpPop:
		return interp.Pop()
	case codec.OpPublish:
		switch interp.Phase() {
		case Gamma:
			return interp.PublishAxiom()
		case Claim:
			return interp.PublishClaim()
		default:
			return interp.PublishProof()
		}
	default:
		return fmt.Errorf("interp: unknown opcode %d", op)
	}
}

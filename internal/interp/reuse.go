package interp

// TryReuse consults interp's optional reuseAware capability for key. It
// reports found=true and the loaded item when a prior Save recorded key;
// internal/proofexpr's ProofThunk.Invoke uses this to skip replaying a
// sub-proof's construction entirely when it has already run once.
func TryReuse(interp Interpreter, key string) (item StackItem, found bool, err error) {
	ra, ok := interp.(reuseAware)
	if !ok {
		return nil, false, nil
	}
	idx, found := ra.reuseLookup(key)
	if !found {
		return nil, false, nil
	}
	item, err = interp.Load(idx)
	if err != nil {
		return nil, false, err
	}
	return item, true, nil
}

// RecordReuse saves the current top-of-stack under key if interp's
// reuseAware capability judges key worth memoizing (i.e. a prior counting
// pass saw it constructed more than once). It is a no-op, not an error, for
// non-reuse-aware interpreters or keys that aren't reusable.
func RecordReuse(interp Interpreter, key string) error {
	ra, ok := interp.(reuseAware)
	if !ok || !ra.isReusable(key) {
		return nil
	}
	idx, err := interp.Save()
	if err != nil {
		return err
	}
	ra.reuseRecord(key, idx)
	return nil
}

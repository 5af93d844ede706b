package wire

// DispatchFunc handles one field during a decode pass. It receives the
// field number, the wire type, and the reader positioned just past the
// tag. The callback must consume exactly the value belonging to the tag,
// or call Skip for field numbers it does not recognize; the field loop
// depends on every value being fully consumed before the next iteration.
type DispatchFunc func(num FieldNumber, wt WireType, r *Reader) error

// ReadFields iterates tags until the cursor reaches end, invoking
// dispatch for each field. Use r.Len() as end for a top-level message.
// Dispatch errors are wrapped with the field number that produced them.
func (r *Reader) ReadFields(end int, dispatch DispatchFunc) error {
	for r.pos < end {
		num, wt, err := r.ReadTag()
		if err != nil {
			return err
		}
		if err := dispatch(num, wt, r); err != nil {
			return wrapWithFieldNumber(err, num)
		}
	}
	return nil
}

// ReadMessage reads one length-delimited sub-message: the varint length,
// then the enclosed fields via dispatch. After the field loop it
// verifies the cursor landed exactly on the declared boundary and fails
// with ErrUnexpectedEndOfMessage otherwise; this is the read-side
// counterpart of the writer's push/pop framing and the invariant that
// protects against malformed nested input.
func (r *Reader) ReadMessage(dispatch DispatchFunc) error {
	length, err := r.ReadVarint()
	if err != nil {
		return err
	}
	if length > uint64(r.Remaining()) {
		return ErrOutOfBounds
	}
	end := r.pos + int(length)

	r.depth++
	if r.maxDepth > 0 && r.depth > r.maxDepth {
		r.depth--
		return ErrNestingTooDeep
	}
	err = r.ReadFields(end, dispatch)
	r.depth--
	if err != nil {
		return err
	}

	if r.pos != end {
		return ErrUnexpectedEndOfMessage
	}
	return nil
}

package queryskema

// Store is the external Parameter Store boundary: a flat mapping from field
// name to an ordered sequence of strings, persisted outside this core (for
// example in a shareable URL query). The core only requires read and
// batched-write semantics plus explicit change notification; history
// behavior (push vs replace, encoding of reserved characters) belongs to
// the implementation.
type Store interface {
	// Read returns the raw value for name, nil when absent.
	Read(name string) Raw
	// WriteBatch applies the patch as one atomic, observable update.
	// A nil patch entry removes the key.
	WriteBatch(patch Patch)
	// Subscribe registers fn to run after every applied batch and returns
	// a cancel function. Registration is explicit; there is no ambient
	// reactivity.
	Subscribe(fn func()) (cancel func())
}

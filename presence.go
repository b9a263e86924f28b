package queryskema

// Presence is the bit flag collected by WithMeta APIs.
type Presence uint8

const (
	PresenceSeen           Presence = 1 << iota // Raw key appeared in the store.
	PresenceMalformed                           // Raw value was present but fell back on decode.
	PresenceDefaultApplied                      // A caller-supplied default filled the value.
)

// PresenceMap maps field names to Presence flags.
type PresenceMap map[string]Presence

// Decoded carries a projected Snapshot along with per-field presence
// metadata. Malformed entries are those whose raw value existed but decoded
// to the kind-appropriate empty value (or, for literal arrays, lost items).
type Decoded struct {
	Snapshot Snapshot
	Presence PresenceMap
}

// MergePresenceMaps returns a new PresenceMap that is the bitwise-OR merge
// of a and b.
func MergePresenceMaps(a, b PresenceMap) PresenceMap {
	if a == nil && b == nil {
		return nil
	}
	out := make(PresenceMap, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] |= v
	}
	return out
}

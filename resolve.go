package queryskema

// Resolve reconciles externally observed values with caller-supplied
// defaults to produce the effective initial value per field. Only fields
// present in defaults appear in the result; the resolver fills gaps, it
// does not enumerate the schema.
//
// Array kinds: a non-empty observed selection always wins; an empty one is
// indistinguishable from "never set" and falls back to the default, so an
// explicit deselect-everything does not survive a round trip through the
// store. Scalar kinds: a present observed value wins, absent falls back.
//
// Resolve is pure and never writes to the store.
func Resolve(schema *Schema, observed Snapshot, defaults map[string]Value) map[string]Value {
	out := make(map[string]Value, len(defaults))
	for name, def := range defaults {
		if _, ok := schema.Spec(name); !ok {
			continue
		}
		obs := observed.Get(name)
		if obs.IsAbsent() {
			out[name] = def
			continue
		}
		out[name] = obs
	}
	return out
}

// ResolveWithMeta is Resolve plus presence metadata: fields whose default
// was substituted carry PresenceDefaultApplied, fields kept from the
// observation carry PresenceSeen.
func ResolveWithMeta(schema *Schema, observed Snapshot, defaults map[string]Value) (map[string]Value, PresenceMap) {
	out := make(map[string]Value, len(defaults))
	pm := make(PresenceMap, len(defaults))
	for name, def := range defaults {
		if _, ok := schema.Spec(name); !ok {
			continue
		}
		obs := observed.Get(name)
		if obs.IsAbsent() {
			out[name] = def
			pm[name] = PresenceDefaultApplied
			continue
		}
		out[name] = obs
		pm[name] = PresenceSeen
	}
	return out, pm
}

// Package queryskema keeps typed filter/form state synchronized with a flat
// string-keyed Parameter Store such as a URL query. It provides:
//
// - A declarative Schema over a closed set of field kinds (string, integer,
//   boolean, literal, stringArray, literalArray) with per-field codecs
//   resolved at construction
// - Total, lenient projection of store contents into a typed Snapshot
//   (malformed external input degrades to absent/empty, never an error)
// - A Binder with batched mutation operations (Set, SetMany, Toggle, Clear,
//   ClearAll) that keep the store and the projection consistent
// - A Default-Merge resolver reconciling observed values with caller
//   defaults to seed form state
// - A stable error model via Issues (field path, code, message)
//
// Design policy:
// - Keep only public APIs in the root package; put builders under dsl/,
//   alternative wire encodings under codec/, the URL-backed store under
//   urlstore/, and the CLI under cmd/queryskema.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	schema := dsl.Fields().
//		Field("keyword", dsl.String()).
//		Field("page", dsl.Int()).
//		Field("statuses", dsl.LiteralArray("PENDING", "APPROVED", "REJECTED")).
//		MustBuild()
//
//	store := urlstore.New(nil)
//	b := queryskema.Bind(schema, store)
//	_ = b.Toggle("statuses", "APPROVED")
//	snap := b.Snapshot()
package queryskema

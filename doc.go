// Package jsonpatch applies RFC 6902 JSON Patch documents to in-memory Go
// values.
//
// Paths are RFC 6901 JSON Pointers resolved against the live value graph:
// slices, maps, structs and dynamic.Object property bags can be mixed at any
// depth. Struct members are found through a contract.Resolver, which by
// default honours json tags and matches names case-insensitively. Map keys
// are always matched exactly.
//
//	patch := jsonpatch.New().
//		Replace("/Name", "B").
//		Add("/Tags/-", "new")
//	err := patch.ApplyTo(&target, nil)
//
// Operations are applied in order and are never rolled back. Without an
// ErrorHandler the first failure stops processing and is returned as a
// *PatchError; with one, every failure is reported and processing continues.
//
// The test operation is rejected unless the document is created with
// EnableTestOperation.
package jsonpatch

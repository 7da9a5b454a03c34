// Package derive generates engine capability methods for annotated types.
//
// A type opts in with a directive in its doc comment:
//
//	//scarab:derive HasUuid, HasBox
//	type Player struct {
//		entity engine.Entity `scarab:"has_uuid,has_box"`
//	}
//
// Structs and tuple structs (all fields embedded) forward HasUuid, HasBox,
// HasEntity, HasHealth and HasSolidity to the single member tagged for the
// capability. A struct
// marked //scarab:enum is a union of pointer variants, one of which is set.
// Enums derive HasBox, RegisteredEntity and MaybeToAction by dispatching to
// the active variant, and always get a <Enum>Kind type naming the variant.
//
// A payload annotated in the same run only counts towards an enum's
// coverage when its own derive succeeds.
//
// Run is the entry point used by cmd/scarab-derive. Failures to derive a
// type are returned as *Diagnostic values and leave the type out of the
// generated file.
package derive

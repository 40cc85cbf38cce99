// Package prototype demonstrates the Prototype pattern: new objects are
// produced by copying a prototypical instance, with the copying delegated
// to the instance itself.
//
// 🚀 What is a Prototype?
//
//	Instead of wiring clients to constructors, you hand them a ready-made
//	exemplar and let them stamp out copies. This shines when instances
//	come in a few preconfigured flavours: register one exemplar per
//	flavour and cloning replaces manual initialisation.
//
// Participants:
//   - Cloner   — declares the Clone interface.
//   - Document — a concrete prototype. Clone performs a deep copy (the
//     tag slice is not shared) and stamps the copy with a fresh ID, the
//     classic deep-vs-shallow trap made explicit.
//   - Registry — the prototype manager: named exemplars, cloned on demand.
//
// ⚙️ Usage:
//
//	reg := prototype.NewRegistry()
//	reg.Register("memo", prototype.NewDocument("Untitled memo", "internal"))
//	doc, err := reg.Clone("memo")
//
// Whether a clone should share or duplicate referenced state is the
// central design decision of this pattern; Document chooses duplication
// plus a new identity, which is what "copy & paste" does.
package prototype

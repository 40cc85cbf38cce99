// Package templatemethod demonstrates the Template Method pattern: a
// fixed algorithm skeleton whose individual steps are supplied by the
// concrete type.
//
// 🚀 What is a Template Method?
//
//	The skeleton calls abstract steps in a fixed order; implementors
//	override the steps, never the skeleton. In class-based languages
//	this is an abstract base class. Go has the pattern built into its
//	standard library: sort.Sort is a template method — the sorting
//	algorithm is fixed, and every concrete type supplies the Len, Less
//	and Swap steps through sort.Interface.
//
// Participants:
//   - sort.Interface — the step contract the skeleton relies on.
//   - Item, ByWeight — the concrete implementation: items ordered by
//     weight, then name as the tie-break.
//   - sort.Sort      — the invariant skeleton (library code; exactly the
//     point).
//
// ⚙️ Usage:
//
//	items := []templatemethod.Item{ ... }
//	templatemethod.SortByWeight(items)
//
// Because the skeleton has no access to the concrete type's data, the
// steps double as getters — the usual shape of the pattern in a language
// without inheritance. Nearly every abstract class in a class library is
// a template method in disguise.
package templatemethod

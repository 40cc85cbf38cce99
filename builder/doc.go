// Package builder demonstrates the Builder pattern: separating the
// construction of a complex object from its representation, so the same
// construction process can produce different results.
//
// 🚀 What is a Builder?
//
//	Where a factory hands back a finished product in one call, a builder
//	is fed the product's parts one step at a time and only assembles the
//	result when Build is called. That final step is also where the parts
//	are validated against each other — something no individual setter
//	could do.
//
// Participants:
//   - Car        — the product under construction.
//   - Builder    — the abstract interface for supplying parts.
//   - CarBuilder — a concrete builder accumulating parts and validating
//     them in Build.
//   - Director   — owns the recipe: the fixed sequence of builder calls
//     that produces a standard car.
//
// ⚙️ Usage:
//
//	b := builder.NewCarBuilder()
//	b.Wheels(4).Seats(5).Colour("red")
//	car, err := b.Build()
//
// Builder is close kin to Abstract Factory; the difference is the focus
// on stepwise assembly of a single complex object rather than one-shot
// creation of a family. Builders usually build composites, so the two
// patterns travel together.
//
// The product is returned by value, so every Build call yields an
// independent Car and the builder can keep mutating its work in progress.
package builder

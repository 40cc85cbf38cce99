// Package flyweight demonstrates the Flyweight pattern: sharing one copy
// of common state across many contexts to keep memory (and bookkeeping)
// down.
//
// 🚀 What is a Flyweight?
//
//	Split each object's state in two. Intrinsic state is identical
//	across contexts and lives once, inside the shared flyweight.
//	Extrinsic state differs per context and stays with the context.
//	Text editors do this with glyphs: outline and metrics are shared,
//	only the position is per-character.
//
// Here the shared state is a cheese menu. Every shop in the chain sells
// from the same inventory (intrinsic: brand, price, remaining quantity),
// while each shop tracks its own units sold and revenue (extrinsic).
//
// Participants:
//   - Brand      — the flyweight: shared per-brand inventory record.
//   - Menu       — the flyweight factory: creates brands, guarantees
//     sharing, and guards the shared state with a mutex, since shared
//     mutable state is not otherwise safe across goroutines.
//   - CheeseShop — the context: holds a reference to the shared Menu
//     plus its own extrinsic tallies.
//
// ⚙️ Usage:
//
//	menu := flyweight.NewMenu()
//	shopA, shopB := flyweight.NewCheeseShop(menu), flyweight.NewCheeseShop(menu)
//	shopA.Stock("blue", 2.5, 10)
//	err := shopB.Sell("blue", 5) // sells from the same wheel of cheese
//
// Sharing only works if contexts cannot mint their own flyweights;
// brands are unexported and reachable solely through the Menu.
package flyweight

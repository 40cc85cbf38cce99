// Package abstractfactory demonstrates the Abstract Factory pattern:
// an interface for creating whole families of related products without
// naming their concrete types.
//
// 🚀 What is an Abstract Factory?
//
//	Where a factory method creates one product, an abstract factory
//	creates a coherent family — here, the widgets of one desktop theme.
//	Clients build every widget through the factory interface, which
//	guarantees the widgets they mix were designed to go together.
//
// Participants:
//   - Button, Window — the generic products the factory creates.
//   - LinuxButton/LinuxWindow, OSXButton/OSXWindow — concrete products,
//     one family per platform.
//   - Factory — the abstract factory interface (CreateButton, CreateWindow).
//   - Linux, OSX — concrete factories, each producing its platform's family.
//
// ⚙️ Usage:
//
//	var f abstractfactory.Factory = abstractfactory.OSX{}
//	b := f.CreateButton()
//	w := f.CreateWindow()
//
// The pattern is often combined with Singleton (one factory per process
// is usually enough) and suffers when the product family grows: adding a
// Scrollbar means touching every concrete factory. Known use: UI toolkits
// selecting a look-and-feel at startup.
package abstractfactory

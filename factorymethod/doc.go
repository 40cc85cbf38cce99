// Package factorymethod demonstrates the Factory Method pattern:
// a "virtual constructor" that delegates instantiation to the type
// implementing the creator interface, so clients handle products
// through an interface without knowing their concrete types.
//
// 🚀 What is a Factory Method?
//
//	A creator declares one method that returns a product interface.
//	Each concrete creator overrides that method to return its own
//	concrete product. Client code asks the creator for a product and
//	never names the product's type.
//
// Participants:
//   - Vehicle       — the product interface created by the factory.
//   - Sedan, Truck  — concrete products implementing Vehicle.
//   - Factory       — the creator declaring the factory method NewVehicle.
//   - SedanFactory, TruckFactory — concrete creators, each returning its
//     concrete product.
//
// ⚙️ Usage:
//
//	var f factorymethod.Factory = factorymethod.SedanFactory{}
//	v := f.NewVehicle()
//	fmt.Println(v.Kind()) // "sedan"
//
// A common variant gives the creator a parameter selecting which product
// to build. Registry implements that variant: factories register under a
// key, and New dispatches by key, returning ErrUnknownKind for keys no
// factory claimed. This keeps the set of products open for extension
// without touching the dispatch code.
//
// Trade-offs: every new product needs a new creator type (or a registry
// entry), but clients stay decoupled from the product set entirely.
package factorymethod

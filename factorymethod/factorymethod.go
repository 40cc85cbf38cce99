package factorymethod

// Vehicle is the product interface. Concrete products report their kind.
type Vehicle interface {
	// Kind returns the vehicle's human-readable kind.
	Kind() string
}

// Factory is the creator interface declaring the factory method.
type Factory interface {
	// NewVehicle builds and returns a concrete Vehicle.
	NewVehicle() Vehicle
}

// Sedan is a concrete product.
type Sedan struct{}

// Kind reports "sedan".
func (Sedan) Kind() string { return "sedan" }

// Truck is a concrete product.
type Truck struct {
	// Axles is the number of axles; zero means the standard two.
	Axles int
}

// Kind reports "truck".
func (Truck) Kind() string { return "truck" }

// SedanFactory is a concrete creator producing Sedans.
type SedanFactory struct{}

// NewVehicle returns a fresh Sedan.
func (SedanFactory) NewVehicle() Vehicle { return Sedan{} }

// TruckFactory is a concrete creator producing Trucks.
type TruckFactory struct {
	// Axles configures every truck this factory builds.
	Axles int
}

// NewVehicle returns a fresh Truck with the factory's axle count.
func (f TruckFactory) NewVehicle() Vehicle { return Truck{Axles: f.Axles} }

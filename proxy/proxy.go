package proxy

// Car is the subject interface shared by real cars and their proxies.
type Car interface {
	Drive() string
}

// Engine is the real subject.
type Engine struct{}

// Drive reports the car driving.
func (Engine) Drive() string { return "car is driving" }

// DriverGate is a protection proxy: it forwards Drive to the real car
// only when the driver is old enough.
type DriverGate struct {
	car       Car
	driverAge int
}

// NewDriverGate wraps car with an age check for the given driver.
func NewDriverGate(driverAge int, car Car) *DriverGate {
	return &DriverGate{car: car, driverAge: driverAge}
}

// Drive checks the precondition, then forwards.
func (g *DriverGate) Drive() string {
	if g.driverAge <= 18 {
		return "driver is too young"
	}

	return g.car.Drive()
}

// LazyCar is a virtual proxy: the expensive subject is constructed on
// first use, never earlier.
type LazyCar struct {
	build func() Car
	car   Car
	// Built reports how many times the constructor ran; stays at most 1.
	Built int
}

// NewLazyCar returns a proxy that will call build on first Drive.
func NewLazyCar(build func() Car) *LazyCar {
	return &LazyCar{build: build}
}

// Drive constructs the subject if needed, then forwards.
func (l *LazyCar) Drive() string {
	if l.car == nil {
		l.car = l.build()
		l.Built++
	}

	return l.car.Drive()
}

package proxy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/patternsmith/gofkit/proxy"
)

// TestDriverGate verifies the protection proxy forwards for adults and
// refuses minors.
func TestDriverGate(t *testing.T) {
	car := proxy.Engine{}

	young := proxy.NewDriverGate(16, car)
	assert.Equal(t, "driver is too young", young.Drive())

	adult := proxy.NewDriverGate(19, car)
	assert.Equal(t, "car is driving", adult.Drive())
}

// TestDriverGate_Boundary pins the rule at exactly 18.
func TestDriverGate_Boundary(t *testing.T) {
	gate := proxy.NewDriverGate(18, proxy.Engine{})
	assert.Equal(t, "driver is too young", gate.Drive())
}

// TestLazyCar verifies the virtual proxy builds its subject exactly once
// and only when first used.
func TestLazyCar(t *testing.T) {
	lazy := proxy.NewLazyCar(func() proxy.Car { return proxy.Engine{} })

	// Nothing built yet.
	assert.Equal(t, 0, lazy.Built)

	assert.Equal(t, "car is driving", lazy.Drive())
	assert.Equal(t, "car is driving", lazy.Drive())
	assert.Equal(t, 1, lazy.Built)
}

// TestProxiesSatisfySubject verifies both proxies pass wherever a Car is
// expected.
func TestProxiesSatisfySubject(t *testing.T) {
	drive := func(c proxy.Car) string { return c.Drive() }

	assert.Equal(t, "car is driving", drive(proxy.NewDriverGate(30, proxy.Engine{})))
	assert.Equal(t, "car is driving", drive(proxy.NewLazyCar(func() proxy.Car { return proxy.Engine{} })))
}

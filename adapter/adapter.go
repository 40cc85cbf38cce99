package adapter

import "fmt"

// Rechargeable is the target interface the client is written against.
type Rechargeable interface {
	Recharge() string
}

// TopUp is the client: it only knows Rechargeable.
func TopUp(r Rechargeable) string {
	return r.Recharge()
}

// Phone is the adaptee. It charges, but not through Rechargeable.
type Phone struct{}

// Charge reports the phone's own charging behaviour.
func (Phone) Charge() string {
	return "Is charging"
}

// USBCharger adapts a Phone to the Rechargeable interface.
type USBCharger struct {
	phone Phone
}

// NewUSBCharger returns a charger wrapping a phone.
func NewUSBCharger() *USBCharger {
	return &USBCharger{phone: Phone{}}
}

// Recharge satisfies Rechargeable by forwarding to the wrapped phone.
func (c *USBCharger) Recharge() string {
	return fmt.Sprintf("%s using a USB-C adapter", c.phone.Charge())
}

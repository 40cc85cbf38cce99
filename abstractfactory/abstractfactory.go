package abstractfactory

// Button is a generic widget produced by the factory.
type Button interface {
	// Paint returns the button's rendered label.
	Paint() string
}

// Window is another generic widget produced by the factory.
type Window interface {
	// Size returns the window's width and height in pixels.
	Size() (width, height int)
}

// Factory creates one coherent family of widgets.
type Factory interface {
	CreateButton() Button
	CreateWindow() Window
}

// LinuxButton is the Linux-family button.
type LinuxButton struct{}

// Paint renders the Linux button label.
func (LinuxButton) Paint() string { return "LinuxButton" }

// LinuxWindow is the Linux-family window.
type LinuxWindow struct{}

// Size reports the Linux default 400x400.
func (LinuxWindow) Size() (int, int) { return 400, 400 }

// OSXButton is the OSX-family button.
type OSXButton struct{}

// Paint renders the OSX button label.
func (OSXButton) Paint() string { return "OSXButton" }

// OSXWindow is the OSX-family window.
type OSXWindow struct{}

// Size reports the OSX default 800x800.
func (OSXWindow) Size() (int, int) { return 800, 800 }

// Linux builds the Linux widget family.
type Linux struct{}

// CreateButton returns a LinuxButton.
func (Linux) CreateButton() Button { return LinuxButton{} }

// CreateWindow returns a LinuxWindow.
func (Linux) CreateWindow() Window { return LinuxWindow{} }

// OSX builds the OSX widget family.
type OSX struct{}

// CreateButton returns an OSXButton.
func (OSX) CreateButton() Button { return OSXButton{} }

// CreateWindow returns an OSXWindow.
func (OSX) CreateWindow() Window { return OSXWindow{} }

package payment

import "strings"

// Factory resolves a gateway by its case-insensitive name. Instances are
// built once at startup with their signing secrets injected.
type Factory struct {
	gateways map[string]Gateway
}

func NewFactory(keys map[string]string) *Factory {
	f := &Factory{gateways: make(map[string]Gateway)}
	f.Register("liqpay", NewLiqpay(keys["liqpay"]))
	f.Register("fondy", NewFondy(keys["fondy"]))
	f.Register("monobank", NewMonobank(keys["monobank"]))
	return f
}

// Register adds or replaces a gateway. Tests use it to pin the emulated
// settlement outcome with a stub.
func (f *Factory) Register(name string, gw Gateway) {
	f.gateways[strings.ToLower(name)] = gw
}

func (f *Factory) Gateway(name string) (Gateway, error) {
	gw, ok := f.gateways[strings.ToLower(name)]
	if !ok {
		return nil, ErrUnsupportedGateway
	}
	return gw, nil
}

// Names lists the registered gateway names.
func (f *Factory) Names() []string {
	names := make([]string, 0, len(f.gateways))
	for name := range f.gateways {
		names = append(names, name)
	}
	return names
}

package views

// View is a template name bound to a Registry.
type View struct {
	reg  *Registry
	name string
	pkg  string
}

// Name returns the bound template name.
func (v *View) Name() string {
	return v.name
}

// Render renders the bound template with data.
func (v *View) Render(data map[string]interface{}, req *Request) (string, error) {
	return v.reg.Render(v.name, v.pkg, data, req)
}

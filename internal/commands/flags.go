package commands

import "flag"

// optionalString is a flag value that remembers whether it was given.
// It separates "not given" from "given as empty".
type optionalString struct {
	value string
	set   bool
}

func (o *optionalString) String() string { return o.value }

func (o *optionalString) Set(s string) error {
	o.value = s
	o.set = true
	return nil
}

// ptr returns nil when the flag was not given.
func (o *optionalString) ptr() *string {
	if !o.set {
		return nil
	}
	v := o.value
	return &v
}

// optionalVar resets o and registers it under each name.
func optionalVar(fs *flag.FlagSet, o *optionalString, names ...string) {
	*o = optionalString{}
	for _, name := range names {
		fs.Var(o, name, "")
	}
}

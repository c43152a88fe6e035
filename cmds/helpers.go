package cmds

func Var[T any](name string, desc string) *T {
	var value T

	// set
	Define(name, Func(func(v T) {
		value = v
	}).Desc(desc))

	// reset
	Define(name+".", Func(func() {
		var zero T
		value = zero
	}).Desc("reset "+name))

	return &value
}

func Switch(name string, desc string) *bool {
	var value bool
	Define(name, Func(func() {
		value = true
	}).Desc(desc))
	Define("!"+name, Func(func() {
		value = false
	}).Desc("unset "+name))
	return &value
}

package modes

import "github.com/reusee/dscope"

// ModuleForProduction is used by the lexi command.
type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

func (ModuleForProduction) Mode() Mode {
	return ModeProduction
}

// ModuleForTest disables environment lookups such as config file discovery.
type ModuleForTest struct {
	dscope.Module
}

func ForTest() ModuleForTest {
	return ModuleForTest{}
}

func (ModuleForTest) Mode() Mode {
	return ModeDevelopment
}

package cmds

import (
	"fmt"
	"io"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/reusee/lexi/vars"
)

type Executor struct {
	commands map[string]*Command
	// names in definition order, aliases excluded
	names []string
	usage io.Writer
}

func NewExecutor(usage io.Writer) *Executor {
	ret := &Executor{
		commands: make(map[string]*Command),
		usage:    usage,
	}
	ret.Define("-h", Func(func() error {
		ret.PrintUsage()
		return ErrHelp
	}).
		Desc("print this usage").
		Alias("-help", "--help"))
	return ret
}

func (p *Executor) Define(name string, command *Command) {
	for _, n := range append([]string{name}, command.Aliases...) {
		if _, ok := p.commands[n]; ok {
			panic(fmt.Errorf("duplicated command %s", n))
		}
		p.commands[n] = command
	}
	p.names = append(p.names, name)
}

// Execute runs the commands named in args and returns the remaining
// positional arguments in order. Arguments that are not command names and
// do not start with '-' are positional; everything after "--" is positional.
func (p *Executor) Execute(args []string) (positional []string, err error) {
	for len(args) > 0 {
		name := strings.TrimSpace(args[0])
		args = args[1:]

		if name == "--" {
			positional = append(positional, args...)
			return positional, nil
		}

		command, ok := p.commands[name]
		if !ok {
			if strings.HasPrefix(name, "-") {
				return nil, fmt.Errorf("unknown command: %s", name)
			}
			positional = append(positional, name)
			continue
		}

		var callArgs []reflect.Value
		fnType := command.Func.Type()
		for i := range fnType.NumIn() {
			value, consumed, err := getArg(fnType.In(i), args)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			if consumed {
				args = args[1:]
			}
			callArgs = append(callArgs, value)
		}
		rets := command.Func.Call(callArgs)
		if len(rets) > 0 && !rets[0].IsNil() {
			return nil, rets[0].Interface().(error)
		}
	}
	return positional, nil
}

func (p *Executor) MustExecute(args []string) []string {
	positional, err := p.Execute(args)
	if err != nil {
		panic(err)
	}
	return positional
}

func (p *Executor) PrintUsage() {
	fmt.Fprintf(p.usage, "arguments not starting with '-' are positional; use -- before a positional that does\n")
	names := slices.Clone(p.names)
	slices.Sort(names)
	for _, name := range names {
		command := p.commands[name]
		line := name
		if len(command.Aliases) > 0 {
			line += ", " + strings.Join(command.Aliases, ", ")
		}
		for i := range command.Func.Type().NumIn() {
			line += " <" + command.Func.Type().In(i).String() + ">"
		}
		fmt.Fprintf(p.usage, "  %-32s %s\n", line, command.Description)
	}
}

func getArg(t reflect.Type, args []string) (ret reflect.Value, consumed bool, err error) {
	if t.Kind() == reflect.Pointer {
		if len(args) == 0 {
			// optional, use zero value
			return reflect.New(t.Elem()), false, nil
		}
		elem, consumed, err := getArg(t.Elem(), args)
		if err != nil {
			return ret, false, err
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(elem)
		return ptr, consumed, nil
	}

	if len(args) == 0 {
		return ret, false, fmt.Errorf("expecting argument, got nothing")
	}

	str := args[0]
	ret = reflect.New(t).Elem()

	switch t.Kind() {

	case reflect.Bool:
		ret.SetBool(vars.StrToBool(str))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(str, 10, t.Bits())
		if err != nil {
			return ret, false, fmt.Errorf("convert %s to int: %w", str, err)
		}
		ret.SetInt(v)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(str, 10, t.Bits())
		if err != nil {
			return ret, false, fmt.Errorf("convert %s to unsigned int: %w", str, err)
		}
		ret.SetUint(v)

	case reflect.String:
		ret.SetString(str)

	default:
		return ret, false, fmt.Errorf("unsupported type: %v", t)
	}

	return ret, true, nil
}

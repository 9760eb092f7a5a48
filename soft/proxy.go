package soft

import (
	"reflect"
	"runtime/debug"
	"time"

	"github.com/saylorsolutions/softassert/syncx"
)

// Value is a proxied value.
// Every link taken from a Value, whether a field read, method call, or function invocation, runs soft, and its result is proxied in turn.
//
// A link that raises a recognized failure captures it and yields an absent Value.
// Links on an absent or false Value yield an absent Value without doing anything, so a chain stops quietly after its first failure.
// A link that returns an unrecognized error as its last result yields a Value holding that error, see [Value.Err].
// Unrecognized panics propagate unchanged, as does a [*MemberError] for a member that doesn't exist on a present value.
//
// A future-like value, one with an AwaitErr method such as [syncx.FutureErr], is watched in a new goroutine as soon as it's proxied.
// A future that never resolves keeps its watcher running, unless the session has an await timeout.
// Each proxying starts its own watcher, so reading the same future-valued member twice captures its failure twice.
type Value struct {
	s       *Session
	v       reflect.Value
	outs    []reflect.Value
	err     error
	pending syncx.FutureErr[any]
}

// Proxy wraps val for soft access.
// Proxying a nil or false value is a no-op, and [Value.Interface] returns it unchanged.
func (s *Session) Proxy(val any) *Value {
	return s.proxyValue(reflect.ValueOf(val))
}

func (s *Session) proxyValue(rv reflect.Value) *Value {
	if rv.Kind() == reflect.Interface && !rv.IsNil() {
		rv = rv.Elem()
	}
	p := &Value{s: s, v: rv}
	if !p.Falsy() {
		p.pending = s.attachFuture(rv)
	}
	return p
}

func (s *Session) absent() *Value {
	return &Value{s: s}
}

// Interface returns the underlying value, or nil if it's absent.
func (p *Value) Interface() any {
	if !p.v.IsValid() || !p.v.CanInterface() {
		return nil
	}
	return p.v.Interface()
}

// Reflect returns the underlying [reflect.Value].
func (p *Value) Reflect() reflect.Value {
	return p.v
}

// Err returns an unrecognized error returned by the link that produced this Value.
func (p *Value) Err() error {
	return p.err
}

// Absent reports whether there's no value, either because the link captured a failure, or because the value is nil.
func (p *Value) Absent() bool {
	if !p.v.IsValid() {
		return true
	}
	switch p.v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return p.v.IsNil()
	default:
		return false
	}
}

// Falsy reports whether the Value is absent or the boolean false.
func (p *Value) Falsy() bool {
	if p.Absent() {
		return true
	}
	return p.v.Kind() == reflect.Bool && !p.v.Bool()
}

// Get reads a member of the value.
// A zero-parameter method is called, otherwise an exported struct field or a string map key is read.
func (p *Value) Get(name string) *Value {
	if p.Falsy() || p.err != nil {
		return p.s.absent()
	}
	if m := p.method(name); m.IsValid() && m.Type().NumIn() == 0 {
		return p.call(m, nil)
	}
	return p.field(name)
}

// Call calls a method of the value with args.
func (p *Value) Call(name string, args ...any) *Value {
	if p.Falsy() || p.err != nil {
		return p.s.absent()
	}
	m := p.method(name)
	if !m.IsValid() {
		panic(&MemberError{Type: p.v.Type().String(), Member: name})
	}
	return p.call(m, args)
}

// Invoke calls the value, which must be a function.
func (p *Value) Invoke(args ...any) *Value {
	if p.Falsy() || p.err != nil {
		return p.s.absent()
	}
	fn := indirect(p.v)
	if fn.Kind() != reflect.Func {
		panic(&MemberError{Type: p.v.Type().String(), Member: "()"})
	}
	return p.call(fn, args)
}

// Index reads element i of a slice, array, or string.
func (p *Value) Index(i int) *Value {
	if p.Falsy() || p.err != nil {
		return p.s.absent()
	}
	v := indirect(p.v)
	switch v.Kind() {
	case reflect.Slice, reflect.Array, reflect.String:
	default:
		panic(&MemberError{Type: p.v.Type().String(), Member: "[]"})
	}
	out := p.s.absent()
	func() {
		defer p.s.recoverFailure()
		out = p.s.proxyValue(v.Index(i))
	}()
	return out
}

// Out returns result i of the call that produced this Value.
// Result 0 is the Value itself.
func (p *Value) Out(i int) *Value {
	if i == 0 {
		return p
	}
	if i < 0 || i >= len(p.outs) {
		return p.s.absent()
	}
	return p.s.proxyValue(p.outs[i])
}

// Await waits for a future-like value, one with an AwaitErr method such as [syncx.FutureErr], to resolve.
// A recognized failure that the future resolves with has already been captured, and yields an absent Value.
// Without a timeout, the session's await timeout is used.
func (p *Value) Await(timeout ...time.Duration) *Value {
	if p.pending == nil {
		return p
	}
	if len(timeout) == 0 && p.s.awaitTimeout > 0 {
		timeout = []time.Duration{p.s.awaitTimeout}
	}
	val, err := p.pending.AwaitErr(timeout...)
	if err != nil {
		return &Value{s: p.s, err: err}
	}
	return p.s.proxyValue(reflect.ValueOf(val))
}

func (p *Value) method(name string) reflect.Value {
	if m := p.v.MethodByName(name); m.IsValid() {
		return m
	}
	if p.v.Kind() != reflect.Pointer && p.v.CanAddr() {
		return p.v.Addr().MethodByName(name)
	}
	return reflect.Value{}
}

func (p *Value) field(name string) *Value {
	v := indirect(p.v)
	switch v.Kind() {
	case reflect.Struct:
		if sf, ok := v.Type().FieldByName(name); ok && sf.IsExported() {
			out := p.s.absent()
			func() {
				defer p.s.recoverFailure()
				out = p.s.proxyValue(v.FieldByIndex(sf.Index))
			}()
			return out
		}
	case reflect.Map:
		if v.Type().Key().Kind() == reflect.String {
			key := reflect.ValueOf(name).Convert(v.Type().Key())
			return p.s.proxyValue(v.MapIndex(key))
		}
	default:
	}
	panic(&MemberError{Type: p.v.Type().String(), Member: name})
}

func (p *Value) call(fn reflect.Value, args []any) (out *Value) {
	out = p.s.absent()
	in := callArgs(fn.Type(), args)
	defer p.s.recoverFailure()
	results := fn.Call(in)
	return p.s.proxyResults(fn.Type(), results)
}

func (s *Session) proxyResults(ft reflect.Type, results []reflect.Value) *Value {
	if len(results) == 0 {
		return s.absent()
	}
	last := len(results) - 1
	if ft.Out(last) == errorType && !results[last].IsNil() {
		err := results[last].Interface().(error)
		if s.accept(err, debug.Stack()) {
			return s.absent()
		}
		return &Value{s: s, err: err}
	}
	p := s.proxyValue(results[0])
	p.outs = results
	return p
}

// attachFuture starts capturing the resolution of a future-like value right away, rather than when it's awaited.
func (s *Session) attachFuture(rv reflect.Value) syncx.FutureErr[any] {
	m := rv.MethodByName("AwaitErr")
	if !m.IsValid() {
		return nil
	}
	mt := m.Type()
	if mt.NumOut() != 2 || mt.Out(1) != errorType || !mt.IsVariadic() || mt.NumIn() != 1 || mt.In(0).Elem() != reflect.TypeOf(time.Duration(0)) {
		return nil
	}
	var in []reflect.Value
	if s.awaitTimeout > 0 {
		in = []reflect.Value{reflect.ValueOf(s.awaitTimeout)}
	}
	f := syncx.NewFutureErr[any]()
	go func() {
		results := m.Call(in)
		var val any
		if results[0].CanInterface() {
			val = results[0].Interface()
		}
		if err, _ := results[1].Interface().(error); err != nil {
			if s.accept(err, debug.Stack()) {
				f.ResolveErr(nil, nil)
				return
			}
			f.ResolveErr(val, err)
			return
		}
		f.ResolveErr(val, nil)
	}()
	return f
}

func indirect(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return v
		}
		v = v.Elem()
	}
	return v
}

// callArgs converts args to the parameter types of ft.
// A nil argument becomes the zero value of its parameter.
func callArgs(ft reflect.Type, args []any) []reflect.Value {
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var pt reflect.Type
		switch {
		case ft.IsVariadic() && i >= ft.NumIn()-1:
			pt = ft.In(ft.NumIn() - 1).Elem()
		case i < ft.NumIn():
			pt = ft.In(i)
		default:
			in[i] = reflect.ValueOf(arg)
			continue
		}
		if arg == nil {
			in[i] = reflect.Zero(pt)
			continue
		}
		av := reflect.ValueOf(arg)
		if !av.Type().AssignableTo(pt) && av.Type().ConvertibleTo(pt) {
			av = av.Convert(pt)
		}
		in[i] = av
	}
	return in
}

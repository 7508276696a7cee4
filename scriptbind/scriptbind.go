// Package scriptbind registers host arrays and replacement tables with an
// embedded JavaScript runtime.
//
// Bound arrays index straight into host memory; the script sees a regular
// array with a fixed length. Timing of every access is owned by the runtime.
package scriptbind

import (
	"errors"
	"fmt"

	"github.com/dop251/goja"
	"go.uber.org/zap"

	"github.com/woozymasta/rorskin"
	"github.com/woozymasta/rorskin/arrayview"
)

var (
	// ErrEmptyName indicates a binding without a global name.
	ErrEmptyName = errors.New("empty binding name")

	// ErrNilTarget indicates a nil view or table.
	ErrNilTarget = errors.New("nil binding target")
)

// BindOptions controls array bindings.
type BindOptions struct {
	// Writable allows scripts to store into existing elements.
	Writable bool
}

// normalize normalizes the BindOptions.
func (o *BindOptions) normalize() BindOptions {
	if o == nil {
		return BindOptions{}
	}

	return *o
}

// viewArray adapts a View to goja.DynamicArray.
type viewArray[T any] struct {
	vm   *goja.Runtime
	view *arrayview.View[T]
	name string
	opt  BindOptions
}

func (a *viewArray[T]) Len() int { return a.view.Len() }

func (a *viewArray[T]) Get(idx int) goja.Value {
	v, err := a.view.Get(idx)
	if err != nil {
		return goja.Undefined()
	}

	return a.vm.ToValue(v)
}

func (a *viewArray[T]) Set(idx int, val goja.Value) bool {
	if !a.opt.Writable {
		return false
	}

	var v T
	if err := a.vm.ExportTo(val, &v); err != nil {
		Logger().Debug("script store rejected", zap.String("name", a.name), zap.Int("index", idx), zap.Error(err))
		return false
	}

	// ExportTo coerces ("abc" becomes 0); only stores that convert back unchanged are kept.
	if !a.vm.ToValue(v).StrictEquals(val) {
		Logger().Debug("script store rejected",
			zap.String("name", a.name),
			zap.Int("index", idx),
			zap.String("value", val.String()))
		return false
	}

	return a.view.Set(idx, v) == nil
}

// SetLen rejects resizing; views never own their memory.
func (a *viewArray[T]) SetLen(int) bool { return false }

// stridedArray adapts a Strided view to goja.DynamicArray.
type stridedArray[T any] struct {
	vm   *goja.Runtime
	view *arrayview.Strided[T]
}

func (a *stridedArray[T]) Len() int { return a.view.Len() }

func (a *stridedArray[T]) Get(idx int) goja.Value {
	v, err := a.view.Get(idx)
	if err != nil {
		return goja.Undefined()
	}

	return a.vm.ToValue(v)
}

func (a *stridedArray[T]) Set(int, goja.Value) bool { return false }

func (a *stridedArray[T]) SetLen(int) bool { return false }

// BindView registers view as global name.
func BindView[T any](vm *goja.Runtime, name string, view *arrayview.View[T], opt *BindOptions) error {
	if name == "" {
		return ErrEmptyName
	}
	if view == nil {
		return fmt.Errorf("%w: %s", ErrNilTarget, name)
	}

	arr := &viewArray[T]{vm: vm, view: view, name: name, opt: opt.normalize()}
	if err := vm.Set(name, vm.NewDynamicArray(arr)); err != nil {
		return fmt.Errorf("bind %s: %w", name, err)
	}

	Logger().Debug("array bound", zap.String("name", name), zap.Int("len", view.Len()), zap.Bool("writable", arr.opt.Writable))
	return nil
}

// BindStrided registers a read-only strided view as global name.
func BindStrided[T any](vm *goja.Runtime, name string, view *arrayview.Strided[T]) error {
	if name == "" {
		return ErrEmptyName
	}
	if view == nil {
		return fmt.Errorf("%w: %s", ErrNilTarget, name)
	}

	if err := vm.Set(name, vm.NewDynamicArray(&stridedArray[T]{vm: vm, view: view})); err != nil {
		return fmt.Errorf("bind %s: %w", name, err)
	}

	Logger().Debug("strided array bound", zap.String("name", name), zap.Int("len", view.Len()), zap.Int("stride", view.Stride()))
	return nil
}

// BindTable registers t as global name with register, has, get and names methods.
func BindTable(vm *goja.Runtime, name string, t *rorskin.ReplacementTable) error {
	if name == "" {
		return ErrEmptyName
	}
	if t == nil {
		return fmt.Errorf("%w: %s", ErrNilTarget, name)
	}

	obj := vm.NewObject()
	methods := map[string]any{
		"register": func(original, replacement string) { t.Register(original, replacement) },
		"has":      t.Has,
		"get":      t.Get,
		"names":    t.Names,
	}
	for k, fn := range methods {
		if err := obj.Set(k, fn); err != nil {
			return fmt.Errorf("bind %s.%s: %w", name, k, err)
		}
	}

	if err := vm.Set(name, obj); err != nil {
		return fmt.Errorf("bind %s: %w", name, err)
	}

	Logger().Debug("table bound", zap.String("name", name), zap.Int("entries", t.Len()))
	return nil
}

// Run executes source and returns the exported completion value.
// Script exceptions are returned as errors.
func Run(vm *goja.Runtime, source string) (any, error) {
	val, err := vm.RunString(source)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	if val == nil {
		return nil, nil
	}

	return val.Export(), nil
}

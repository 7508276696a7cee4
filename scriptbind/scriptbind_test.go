package scriptbind

import (
	"encoding/binary"
	"testing"

	"github.com/dop251/goja"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/rorskin"
	"github.com/woozymasta/rorskin/arrayview"
)

func TestBindViewRead(t *testing.T) {
	vm := goja.New()
	data := []int64{3, 5, 7}
	require.NoError(t, BindView(vm, "nums", arrayview.New(data), nil))

	got, err := Run(vm, `var s = 0; for (var i = 0; i < nums.length; i++) { s += nums[i]; } s`)
	require.NoError(t, err)
	assert.EqualValues(t, 15, got)

	got, err = Run(vm, `nums[3] === undefined`)
	require.NoError(t, err)
	assert.Equal(t, true, got)
}

func TestBindViewReadOnly(t *testing.T) {
	vm := goja.New()
	data := []int64{1, 2}
	require.NoError(t, BindView(vm, "nums", arrayview.New(data), nil))

	_, err := Run(vm, `nums[0] = 9;`)
	require.NoError(t, err)
	assert.Equal(t, int64(1), data[0])
}

func TestBindViewWritable(t *testing.T) {
	vm := goja.New()
	names := []string{"body", "glass"}
	require.NoError(t, BindView(vm, "materials", arrayview.New(names), &BindOptions{Writable: true}))

	_, err := Run(vm, `materials[1] = materials[1] + "_tinted"; materials.length = 5;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"body", "glass_tinted"}, names)

	got, err := Run(vm, `materials.length`)
	require.NoError(t, err)
	assert.EqualValues(t, 2, got)
}

func TestBindViewRejectsCoercion(t *testing.T) {
	vm := goja.New()
	nums := []int64{5, 6}
	require.NoError(t, BindView(vm, "nums", arrayview.New(nums), &BindOptions{Writable: true}))

	_, err := Run(vm, `nums[0] = "abc"; nums[1] = 2.5;`)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 6}, nums)

	_, err = Run(vm, `nums[1] = 8;`)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 8}, nums)

	names := []string{"body"}
	require.NoError(t, BindView(vm, "names", arrayview.New(names), &BindOptions{Writable: true}))
	_, err = Run(vm, `names[0] = 42;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"body"}, names)
}

func TestBindStrided(t *testing.T) {
	buf := make([]byte, 3*8)
	for i := 0; i < 3; i++ {
		binary.NativeEndian.PutUint32(buf[i*8:], uint32(10*(i+1)))
	}
	view, err := arrayview.NewStrided[uint32](buf, 3, 8)
	require.NoError(t, err)

	vm := goja.New()
	require.NoError(t, BindStrided(vm, "ids", view))

	got, err := Run(vm, `ids[0] + ids[1] + ids[2]`)
	require.NoError(t, err)
	assert.EqualValues(t, 60, got)
}

func TestBindTable(t *testing.T) {
	tbl := rorskin.NewReplacementTable()
	tbl.Register("body", "body_red")

	vm := goja.New()
	require.NoError(t, BindTable(vm, "skin", tbl))

	got, err := Run(vm, `skin.register("glass", "glass_dark"); skin.has("body") && skin.get("missing") === ""`)
	require.NoError(t, err)
	assert.Equal(t, true, got)
	assert.Equal(t, "glass_dark", tbl.Get("glass"))

	got, err = Run(vm, `skin.names().join(",")`)
	require.NoError(t, err)
	assert.Equal(t, "body,glass", got)
}

func TestBindErrors(t *testing.T) {
	vm := goja.New()
	assert.ErrorIs(t, BindView(vm, "", arrayview.New([]int{1}), nil), ErrEmptyName)
	assert.ErrorIs(t, BindTable(vm, "", rorskin.NewReplacementTable()), ErrEmptyName)

	assert.ErrorIs(t, BindView[int](vm, "v", nil, nil), ErrNilTarget)
	assert.ErrorIs(t, BindStrided[uint32](vm, "s", nil), ErrNilTarget)
	assert.ErrorIs(t, BindTable(vm, "t", nil), ErrNilTarget)

	_, err := Run(vm, `throw new Error("boom")`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

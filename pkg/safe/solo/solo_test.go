package solo

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/safe/pkg/safe"
)

type notFoundError struct {
	Key string
}

func (e *notFoundError) Error() string {
	return "not found: " + e.Key
}

func parseJSON(s string) (map[string]any, error) {
	var v map[string]any
	err := json.Unmarshal([]byte(s), &v)
	return v, err
}

func TestExecute_ParseJSON(t *testing.T) {
	t.Parallel()

	err, v := Execute(func() (map[string]any, error) { return parseJSON(`{"foo":"bar"}`) }).Unpack()

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"foo": "bar"}, v)
}

func TestExecute_ParseInvalidJSON(t *testing.T) {
	t.Parallel()

	err, v := Execute1(parseJSON, "not json").Unpack()

	var syntaxErr *json.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Nil(t, v)
}

func TestDo_PanicNil(t *testing.T) {
	t.Parallel()

	r := Do(func() { panic(nil) })

	require.True(t, r.IsFailure())
	assert.IsType(t, safe.NullError{}, r.Err())
	assert.Equal(t, "null", r.Err().Error())
}

func TestDo_NoValue(t *testing.T) {
	t.Parallel()

	called := false
	r := Do(func() { called = true })

	assert.True(t, called)
	assert.NoError(t, r.Err())
}

func TestExecute_TypedNilError(t *testing.T) {
	t.Parallel()

	r := Execute(func() (int, error) {
		var nf *notFoundError
		return 1, nf
	})

	assert.True(t, safe.IsNullError(r.Err()))
	assert.Zero(t, r.Result())
}

func TestExecute_FaultIdentity(t *testing.T) {
	t.Parallel()

	nf := &notFoundError{Key: "k"}

	returned := Execute(func() (string, error) { return "", nf })
	panicked := ExecuteValue(func() string { panic(nf) })

	for _, r := range []safe.Result[string]{returned, panicked} {
		assert.True(t, r.Err() == error(nf))

		var target *notFoundError
		require.ErrorAs(t, r.Err(), &target)
		assert.Equal(t, "k", target.Key)
	}
}

func TestExecute_PanicValue(t *testing.T) {
	t.Parallel()

	r := ExecuteValue(func() int {
		var m map[string]int
		m["x"] = 1
		return m["x"]
	})

	var runtimeErr interface{ RuntimeError() }
	require.ErrorAs(t, r.Err(), &runtimeErr)
}

func TestExecute_ErrorWinsOverValue(t *testing.T) {
	t.Parallel()

	err, v := Execute(func() (int, error) { return 9, errors.New("both") }).Unpack()

	assert.EqualError(t, err, "both")
	assert.Zero(t, v)
}

func TestMutualExclusivity(t *testing.T) {
	t.Parallel()

	calls := []func() (int, error){
		func() (int, error) { return 1, nil },
		func() (int, error) { return 0, nil },
		func() (int, error) { return 2, errors.New("e") },
		func() (int, error) { panic("p") },
		func() (int, error) { panic(nil) },
		func() (int, error) { panic(errors.New("pe")) },
	}

	for i, call := range calls {
		r := Execute(call)
		if r.Err() == nil {
			assert.True(t, r.IsSuccess(), "call %d", i)
		} else {
			assert.True(t, r.IsFailure(), "call %d", i)
			assert.Zero(t, r.Result(), "call %d", i)
		}
	}
}

func TestWrap2_Sum(t *testing.T) {
	t.Parallel()

	add := Wrap2(func(a, b int) (int, error) { return a + b, nil })

	err, v := add(2, 3).Unpack()
	assert.NoError(t, err)
	assert.Equal(t, 5, v)
}

func TestWrap_MatchesExecute(t *testing.T) {
	t.Parallel()

	atoi := func(s string) (int, error) { return strconv.Atoi(s) }
	sum := func(xs ...int) (int, error) {
		total := 0
		for _, x := range xs {
			total += x
		}
		return total, nil
	}

	for _, in := range []string{"12", "x", ""} {
		we, wv := Wrap1(atoi)(in).Unpack()
		ee, ev := Execute1(atoi, in).Unpack()
		assert.Equal(t, ee, we, in)
		assert.Equal(t, ev, wv, in)
	}

	assert.Equal(t, 6, WrapN(sum)(1, 2, 3).Result())
	assert.Equal(t, 6, ExecuteN(sum, 1, 2, 3).Result())
	assert.Equal(t, 0, WrapN(sum)().Result())
}

func TestWrap_Composes(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	inner := Wrap(func() (int, error) { return 0, boom })
	outer := WrapValue(inner)

	r := outer()
	require.True(t, r.IsSuccess())

	nested := r.Result()
	assert.True(t, nested.IsFailure())
	assert.Same(t, boom, nested.Err())
}

func TestWrap_IndependentCalls(t *testing.T) {
	t.Parallel()

	n := 0
	counter := WrapValue(func() int {
		n++
		if n == 2 {
			panic("second")
		}
		return n
	})

	assert.Equal(t, 1, counter().Result())
	assert.True(t, counter().IsFailure())
	assert.Equal(t, 3, counter().Result())
}

func TestSwitch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	boom := errors.New("boom")

	called := false
	r := Switch(ctx, Fail[int](boom), func(ctx context.Context, n int) safe.Result[string] {
		called = true
		return Succeed("x")
	})
	assert.False(t, called)
	assert.Same(t, boom, r.Err())

	r = Switch(ctx, Succeed(2), func(ctx context.Context, n int) safe.Result[string] {
		return Succeed(strconv.Itoa(n * 2))
	})
	assert.Equal(t, "4", r.Result())

	r = Switch(ctx, Succeed(2), func(ctx context.Context, n int) safe.Result[string] {
		panic("stage")
	})
	assert.True(t, r.IsFailure())
}

func TestMap_PanicBecomesFault(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	r := Map(ctx, Succeed(0), func(ctx context.Context, n int) int { return 10 / n })
	require.True(t, r.IsFailure())

	r = Map(ctx, Succeed(5), func(ctx context.Context, n int) int { return 10 / n })
	assert.Equal(t, 2, r.Result())
}

func TestTry_CancelPassesThrough(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	r := Try(ctx, Cancel[string](context.Canceled), func(ctx context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	})
	assert.True(t, r.IsCancel())

	r = Try(ctx, Succeed("x"), func(ctx context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	})
	var numErr *strconv.NumError
	assert.ErrorAs(t, r.Err(), &numErr)
	assert.False(t, r.IsCancel())
}

func TestTee(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	seen := 0
	r := Tee(ctx, Succeed(3), func(ctx context.Context, r safe.Result[int]) { seen = r.Result() })
	assert.Equal(t, 3, seen)
	assert.Equal(t, 3, r.Result())

	r = Tee(ctx, Succeed(3), func(ctx context.Context, r safe.Result[int]) { panic("side effect") })
	assert.True(t, r.IsFailure())
}

func TestFinally(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	onSuccess := func(ctx context.Context, n int) string { return "ok:" + strconv.Itoa(n) }
	onError := func(ctx context.Context, err error) string { return "err" }
	onCancel := func(ctx context.Context, err error) string { return "cancel" }

	assert.Equal(t, "ok:1", Finally(ctx, Succeed(1), onSuccess, onError, onCancel))
	assert.Equal(t, "err", Finally(ctx, Fail[int](errors.New("e")), onSuccess, onError, onCancel))
	assert.Equal(t, "cancel", Finally(ctx, Cancel[int](context.Canceled), onSuccess, onError, onCancel))
}

package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiSkipsNilObservers(t *testing.T) {
	assert.Nil(t, Multi())
	assert.Nil(t, Multi(nil, nil))

	var calls int
	single := ObserverFunc(func(OperationContext) { calls++ })
	obs := Multi(nil, single)
	obs.ObserveOperation(OperationContext{Operation: "get"})
	assert.Equal(t, 1, calls)
}

func TestMultiFansOut(t *testing.T) {
	var seen []string
	a := ObserverFunc(func(ctx OperationContext) { seen = append(seen, "a:"+ctx.Operation) })
	b := ObserverFunc(func(ctx OperationContext) { seen = append(seen, "b:"+ctx.Operation) })

	Multi(a, b).ObserveOperation(OperationContext{Operation: "set"})

	assert.Equal(t, []string{"a:set", "b:set"}, seen)
}

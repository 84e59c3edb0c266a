package graph

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubNode struct {
	name string
}

func (s *stubNode) Name() string        { return s.name }
func (s *stubNode) DisplayName() string { return "Stub " + s.name }
func (s *stubNode) Category() string    { return "Easel/Test" }
func (s *stubNode) InputSpec() Spec {
	return Spec{
		Required: map[string]Input{
			"value": IntInput(1, 0, 10, 1, "a test value"),
		},
	}
}

func TestRegistry(t *testing.T) {
	Register(&stubNode{name: "StubA"})
	Register(&stubNode{name: "StubB"})
	defer Deregister("StubA")
	defer Deregister("StubB")

	n, ok := Get("StubA")
	assert.True(t, ok)
	assert.Equal(t, "Stub StubA", n.DisplayName())

	_, ok = Get("Missing")
	assert.False(t, ok)

	names := Names()
	assert.Contains(t, names, "StubA")
	assert.Contains(t, names, "StubB")
	assert.True(t, sort.StringsAreSorted(names))
}

func TestRegisterReplaces(t *testing.T) {
	first := &stubNode{name: "Dup"}
	second := &stubNode{name: "Dup"}

	Register(first)
	Register(second)
	defer Deregister("Dup")

	n, ok := Get("Dup")
	assert.True(t, ok)
	assert.Same(t, second, n)
}

func TestDeregister(t *testing.T) {
	Register(&stubNode{name: "Gone"})
	Deregister("Gone")

	_, ok := Get("Gone")
	assert.False(t, ok)
}

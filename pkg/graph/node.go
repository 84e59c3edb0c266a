package graph

import "context"

// Node is the interface that must be implemented by all nodes in the pack.
// A node is a small, near-stateless function the host wires into its
// execution graph; the host owns scheduling, tensors and the UI.
type Node interface {
	Name() string        // Returns the node's registration name.
	DisplayName() string // Returns the name shown in the host UI.
	Category() string    // Returns the host UI category (e.g. "Easel/Resolution").
	InputSpec() Spec     // Returns the declared inputs for the host UI.
}

// Invoker is implemented by nodes that can be invoked generically with
// JSON-decoded arguments, which is how the host-facing API drives them.
type Invoker interface {
	Node
	Invoke(ctx context.Context, args map[string]any) (map[string]any, error)
}

package tree

import "errors"

// ErrUnknownChild signals a selection naming a child that does not exist on
// the node. The call is rejected and the active child is left unchanged.
var ErrUnknownChild = errors.New("tree: unknown child")

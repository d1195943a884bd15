// Package tree implements the core of an adaptive tree form: nodes built
// recursively from schema fragments, the exactly-one-active-child rule at
// every branch point, and the aggregation that collapses the active path
// into one descriptive line. Sessions own a tree and mediate loading and
// output; everything user-facing (prompts, widgets, clipboard) lives in the
// renderer packages.
package tree

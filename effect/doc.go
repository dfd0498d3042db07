// Package effect provides the built-in effect layers.
//
// Effects wrap a *layerfx.Node of kind KindEffect and always run after every
// display of their scene, in insertion order. Each effect is a single
// render.FilterPass that reads the chain so far and writes a filtered copy.
package effect

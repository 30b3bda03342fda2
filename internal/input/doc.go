// Package input defines the actions that drive selection movement and the
// key bindings that produce them.
//
// An Action names a command in "namespace.command" form, for example
// "select.down" or "select.lineBelowExtend", and carries a repeat count
// and optional arguments. Actions are produced by a Keymap in the
// interactive viewer, by the command line, or by Lua scripts, and are
// executed by the dispatcher.
package input

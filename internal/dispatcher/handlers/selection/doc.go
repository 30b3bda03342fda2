// Package selection provides the handlers of the "select" action namespace.
//
// Every action maps to one motion. Arguments:
//
//	shift      "jump" (default), "extend" or "select"
//	avoidEol   bool, defaults to the dispatcher setting
//	skipBlank  bool, for select.lineStart
//
// The action count becomes the motion's repetitions, and for line motions
// such as select.to and select.lineStart the 1-based target line.
package selection

// Package lua runs selection scripts written in Lua against an editor
// session.
//
// Scripts run in a restricted state: only the base, table, string and math
// libraries are opened, file loading functions are removed, and require
// resolves nothing but the "stride" module. The same module is also
// installed as the global "stride".
//
// Positions are tables with 0-based "line" and "character" fields.
// Selections are tables with "anchor" and "active" positions.
//
//	local stride = require("stride")
//	stride.move("select.down", 3)
//	stride.move("select.right", 1, "extend")
//	for _, sel in ipairs(stride.selections()) do
//	  print(sel.active.line, sel.active.character)
//	end
package lua

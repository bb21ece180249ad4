// Package script embeds a Lua interpreter for extending the command set
// without recompiling. Scripts call cli.register to add commands and the
// cli.print family to write through the session's formatter:
//
//	cli.register{
//	    name = "greet",
//	    description = "Say hello",
//	    usage = "greet [name]",
//	    handler = function(a)
//	        cli.success("Hello, " .. (a[1] or "world"))
//	    end,
//	}
package script

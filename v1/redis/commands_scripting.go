package redis

import "context"

// scriptArgs renders "<name> <script> <numkeys> keys... args...". The first
// key, if any, is at position 3.
func scriptArgs(name, script string, keys []string, args []interface{}) ([]interface{}, int) {
	out := make([]interface{}, 0, 3+len(keys)+len(args))
	out = append(out, name, script, len(keys))
	out = appendStrings(out, keys)
	out = append(out, args...)
	if len(keys) == 0 {
		return out, 0
	}
	return out, 3
}

func (c cmdable) script(ctx context.Context, name, script string, keys []string, args []interface{}) *InterfaceCmd {
	cmdArgs, pos := scriptArgs(name, script, keys, args)
	return runAt(ctx, c, pos, toInterface, cmdArgs...)
}

// Eval runs a Lua script. A nil script result is returned as Nil.
func (c cmdable) Eval(ctx context.Context, script string, keys []string, args ...interface{}) *InterfaceCmd {
	return c.script(ctx, "EVAL", script, keys, args)
}

// EvalRO is the read-only variant of Eval.
func (c cmdable) EvalRO(ctx context.Context, script string, keys []string, args ...interface{}) *InterfaceCmd {
	return c.script(ctx, "EVAL_RO", script, keys, args)
}

// EvalSha runs a cached script. It fails with ErrNoScript when the server
// does not know sha1.
func (c cmdable) EvalSha(ctx context.Context, sha1 string, keys []string, args ...interface{}) *InterfaceCmd {
	return c.script(ctx, "EVALSHA", sha1, keys, args)
}

// EvalShaRO is the read-only variant of EvalSha.
func (c cmdable) EvalShaRO(ctx context.Context, sha1 string, keys []string, args ...interface{}) *InterfaceCmd {
	return c.script(ctx, "EVALSHA_RO", sha1, keys, args)
}

// ScriptExists reports for each hash whether the script is cached.
func (c cmdable) ScriptExists(ctx context.Context, hashes ...string) *BoolSliceCmd {
	if len(hashes) == 0 {
		return fail[[]bool](ctx, c, invalidArgument("SCRIPT EXISTS requires at least one hash"), "SCRIPT", "EXISTS")
	}
	return runNoKey(ctx, c, toBoolSlice, appendStrings([]interface{}{"SCRIPT", "EXISTS"}, hashes)...)
}

// ScriptFlush empties the script cache.
func (c cmdable) ScriptFlush(ctx context.Context, mode FlushMode) *StatusCmd {
	return runNoKey(ctx, c, toStatus, flushArgs([]interface{}{"SCRIPT", "FLUSH"}, mode)...)
}

// ScriptKill stops the running read-only script.
func (c cmdable) ScriptKill(ctx context.Context) *StatusCmd {
	return runNoKey(ctx, c, toStatus, "SCRIPT", "KILL")
}

// ScriptLoad caches script and returns its SHA1 digest.
func (c cmdable) ScriptLoad(ctx context.Context, script string) *StringCmd {
	return runNoKey(ctx, c, toString, "SCRIPT", "LOAD", script)
}

// FCall invokes a function of a loaded library.
func (c cmdable) FCall(ctx context.Context, function string, keys []string, args ...interface{}) *InterfaceCmd {
	return c.script(ctx, "FCALL", function, keys, args)
}

// FCallRO is the read-only variant of FCall.
func (c cmdable) FCallRO(ctx context.Context, function string, keys []string, args ...interface{}) *InterfaceCmd {
	return c.script(ctx, "FCALL_RO", function, keys, args)
}

// FunctionLoad loads a library and returns its name.
func (c cmdable) FunctionLoad(ctx context.Context, code string) *StringCmd {
	return runNoKey(ctx, c, toString, "FUNCTION", "LOAD", code)
}

// FunctionLoadReplace is FunctionLoad that replaces an existing library.
func (c cmdable) FunctionLoadReplace(ctx context.Context, code string) *StringCmd {
	return runNoKey(ctx, c, toString, "FUNCTION", "LOAD", "REPLACE", code)
}

// FunctionDelete removes library.
func (c cmdable) FunctionDelete(ctx context.Context, library string) *StatusCmd {
	return runNoKey(ctx, c, toStatus, "FUNCTION", "DELETE", library)
}

// FunctionFlush removes all libraries.
func (c cmdable) FunctionFlush(ctx context.Context, mode FlushMode) *StatusCmd {
	return runNoKey(ctx, c, toStatus, flushArgs([]interface{}{"FUNCTION", "FLUSH"}, mode)...)
}

// FunctionKill stops the running read-only function.
func (c cmdable) FunctionKill(ctx context.Context) *StatusCmd {
	return runNoKey(ctx, c, toStatus, "FUNCTION", "KILL")
}

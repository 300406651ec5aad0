package redis

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
)

// Scripter is the subset of Cmdable needed to run a Script.
type Scripter interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *InterfaceCmd
	EvalSha(ctx context.Context, sha1 string, keys []string, args ...interface{}) *InterfaceCmd
	ScriptExists(ctx context.Context, hashes ...string) *BoolSliceCmd
	ScriptLoad(ctx context.Context, script string) *StringCmd
}

// Script is a Lua script that is sent by its SHA1 digest and only uploaded
// when the server does not know it yet.
type Script struct {
	src  string
	hash string
}

// NewScript returns a Script for src.
func NewScript(src string) *Script {
	sum := sha1.Sum([]byte(src))
	return &Script{src: src, hash: hex.EncodeToString(sum[:])}
}

// Hash returns the SHA1 digest of the script.
func (s *Script) Hash() string {
	return s.hash
}

// Load uploads the script.
func (s *Script) Load(ctx context.Context, c Scripter) *StringCmd {
	return c.ScriptLoad(ctx, s.src)
}

// Exists reports whether the server has the script cached.
func (s *Script) Exists(ctx context.Context, c Scripter) *BoolSliceCmd {
	return c.ScriptExists(ctx, s.hash)
}

// Run executes the script with EVALSHA and falls back to EVAL when the
// server replies NOSCRIPT. Inside pipelines the fallback cannot apply; load
// the script first.
func (s *Script) Run(ctx context.Context, c Scripter, keys []string, args ...interface{}) *InterfaceCmd {
	cmd := c.EvalSha(ctx, s.hash, keys, args...)
	if errors.Is(cmd.Err(), ErrNoScript) {
		return c.Eval(ctx, s.src, keys, args...)
	}
	return cmd
}

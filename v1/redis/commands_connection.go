package redis

import (
	"context"
	"time"
)

// Auth authenticates the connection that runs it. On a pooled client other
// connections are unaffected, so prefer Config.Password or run it inside Watch.
func (c cmdable) Auth(ctx context.Context, password string) *StatusCmd {
	return runNoKey(ctx, c, toStatus, "AUTH", password)
}

// AuthACL is Auth with an ACL username.
func (c cmdable) AuthACL(ctx context.Context, username, password string) *StatusCmd {
	return runNoKey(ctx, c, toStatus, "AUTH", username, password)
}

// Echo returns message.
func (c cmdable) Echo(ctx context.Context, message string) *StringCmd {
	return runNoKey(ctx, c, toString, "ECHO", message)
}

// Ping checks the connection; the reply is PONG.
func (c cmdable) Ping(ctx context.Context) *StatusCmd {
	return runNoKey(ctx, c, toStatus, "PING")
}

// Select switches the database of the connection that runs it. Like Auth it
// does not change the other pooled connections; use Config.DB for that.
func (c cmdable) Select(ctx context.Context, index int) *StatusCmd {
	if index < 0 {
		return fail[string](ctx, c, invalidArgument("SELECT index must not be negative"), "SELECT", index)
	}
	return runNoKey(ctx, c, toStatus, "SELECT", index)
}

// SwapDB swaps two logical databases.
func (c cmdable) SwapDB(ctx context.Context, index1, index2 int) *StatusCmd {
	return runNoKey(ctx, c, toStatus, "SWAPDB", index1, index2)
}

// ClientID returns the ID of the connection.
func (c cmdable) ClientID(ctx context.Context) *IntCmd {
	return runNoKey(ctx, c, toInt64, "CLIENT", "ID")
}

// ClientGetName returns Nil when the connection has no name.
func (c cmdable) ClientGetName(ctx context.Context) *StringCmd {
	return runNoKey(ctx, c, toString, "CLIENT", "GETNAME")
}

// ClientSetName names the connection.
func (c cmdable) ClientSetName(ctx context.Context, name string) *StatusCmd {
	return runNoKey(ctx, c, toStatus, "CLIENT", "SETNAME", name)
}

// ClientList lists the connected clients, optionally only those of typ.
func (c cmdable) ClientList(ctx context.Context, typ ClientType) *ClientInfoSliceCmd {
	args := []interface{}{"CLIENT", "LIST"}
	if typ != "" {
		args = append(args, "TYPE", string(typ))
	}
	return runNoKey(ctx, c, toClientInfoSlice, args...)
}

// ClientInfo returns the client attributes of the connection.
func (c cmdable) ClientInfo(ctx context.Context) *ClientInfoCmd {
	return runNoKey(ctx, c, toClientInfo, "CLIENT", "INFO")
}

// ClientKill closes the clients matching arg and returns how many were closed.
func (c cmdable) ClientKill(ctx context.Context, arg *ClientKillArgument) *IntCmd {
	if err := arg.Validate(); err != nil {
		return fail[int64](ctx, c, err, "CLIENT", "KILL")
	}
	return runNoKey(ctx, c, toInt64, append([]interface{}{"CLIENT", "KILL"}, arg.Args()...)...)
}

// ClientPause suspends clients for timeout. An empty mode pauses all commands.
func (c cmdable) ClientPause(ctx context.Context, timeout time.Duration, mode ClientPauseMode) *StatusCmd {
	args := []interface{}{"CLIENT", "PAUSE", formatMs(timeout)}
	if mode != "" {
		args = append(args, string(mode))
	}
	return runNoKey(ctx, c, toStatus, args...)
}

// ClientUnpause resumes clients paused with CLIENT PAUSE.
func (c cmdable) ClientUnpause(ctx context.Context) *StatusCmd {
	return runNoKey(ctx, c, toStatus, "CLIENT", "UNPAUSE")
}

// ClientNoEvict excludes the connection from client eviction when enabled.
func (c cmdable) ClientNoEvict(ctx context.Context, on bool) *StatusCmd {
	return runNoKey(ctx, c, toStatus, "CLIENT", "NO-EVICT", onOff(on))
}

// ClientNoTouch stops the commands of the connection from altering the LRU/LFU of keys.
func (c cmdable) ClientNoTouch(ctx context.Context, on bool) *StatusCmd {
	return runNoKey(ctx, c, toStatus, "CLIENT", "NO-TOUCH", onOff(on))
}

// Reset restores the default state of the connection that runs it.
func (c cmdable) Reset(ctx context.Context) *StatusCmd {
	return runNoKey(ctx, c, toStatus, "RESET")
}

func onOff(on bool) string {
	if on {
		return "ON"
	}
	return "OFF"
}

package redis

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Cmder is implemented by every command result returned from this package.
type Cmder interface {
	// Name returns the lower-case command name, e.g. "get" or "client".
	Name() string

	// FullName returns the command name including the subcommand for container
	// commands, e.g. "client kill".
	FullName() string

	// Args returns the full wire arguments, starting with the command name.
	Args() []interface{}

	// Err returns the command error, if any.
	Err() error

	// SetErr overrides the command error.
	SetErr(err error)

	// String formats the command and its result for logs and test output.
	String() string

	setReply(reply interface{}, err error)
	firstKey() string
}

// Cmd is the deferred result of a command. For commands executed directly the
// result is available as soon as the method returns; for pipelined and
// transactional commands it is filled in by Exec.
type Cmd[T any] struct {
	args   []interface{}
	conv   func(interface{}) (T, error)
	keyPos int

	val T
	err error
}

// Aliases for the result shapes used by the command methods.
type (
	StatusCmd           = Cmd[string]
	StringCmd           = Cmd[string]
	IntCmd              = Cmd[int64]
	BoolCmd             = Cmd[bool]
	FloatCmd            = Cmd[float64]
	InterfaceCmd        = Cmd[interface{}]
	InterfaceSliceCmd   = Cmd[[]interface{}]
	StringSliceCmd      = Cmd[[]string]
	StringPtrSliceCmd   = Cmd[[]*string]
	IntSliceCmd         = Cmd[[]int64]
	IntPtrSliceCmd      = Cmd[[]*int64]
	BoolSliceCmd        = Cmd[[]bool]
	FloatPtrSliceCmd    = Cmd[[]*float64]
	StringMapCmd        = Cmd[map[string]string]
	StringIntMapCmd     = Cmd[map[string]int64]
	KeyValueSliceCmd    = Cmd[[]KeyValue]
	KeyValuesCmd        = Cmd[KeyValues]
	TupleCmd            = Cmd[Tuple]
	TupleSliceCmd       = Cmd[[]Tuple]
	KeyTupleCmd         = Cmd[KeyTuple]
	KeyTuplesCmd        = Cmd[KeyTuples]
	ScanCmd             = Cmd[ScanResult[string]]
	KeyValueScanCmd     = Cmd[ScanResult[KeyValue]]
	TupleScanCmd        = Cmd[ScanResult[Tuple]]
	DurationCmd         = Cmd[time.Duration]
	DurationSliceCmd    = Cmd[[]time.Duration]
	TimeCmd             = Cmd[time.Time]
	InfoCmd             = Cmd[Info]
	GeoLocationCmd      = Cmd[[]GeoLocation]
	GeoPosCmd           = Cmd[[]*GeoPosition]
	XMessageSliceCmd    = Cmd[[]XMessage]
	XStreamSliceCmd     = Cmd[[]XStream]
	XPendingCmd         = Cmd[XPending]
	XPendingExtCmd      = Cmd[[]XPendingExt]
	XAutoClaimCmd       = Cmd[XAutoClaimResult]
	XAutoClaimJustIDCmd = Cmd[XAutoClaimJustIDResult]
	XInfoStreamCmd      = Cmd[XInfoStream]
	XInfoGroupsCmd      = Cmd[[]XInfoGroup]
	XInfoConsumersCmd   = Cmd[[]XInfoConsumer]
	ClusterNodesCmd     = Cmd[[]ClusterNode]
	ClusterSlotsCmd     = Cmd[[]ClusterSlot]
	ClusterShardsCmd    = Cmd[[]ClusterShard]
	ClusterLinksCmd     = Cmd[[]ClusterLink]
	SlowLogCmd          = Cmd[[]SlowLog]
	AclLogCmd           = Cmd[[]AclLogEntry]
	AclUserCmd          = Cmd[AclUser]
	ClientInfoCmd       = Cmd[ClientInfo]
	ClientInfoSliceCmd  = Cmd[[]ClientInfo]
	RoleCmd             = Cmd[Role]
)

func newCmd[T any](conv func(interface{}) (T, error), args ...interface{}) *Cmd[T] {
	return &Cmd[T]{args: args, conv: conv, keyPos: 1}
}

// NewCmd creates a command with a custom reply converter. It is useful for
// commands without a typed method, combined with Pipeline.Process.
func NewCmd[T any](conv func(reply interface{}) (T, error), args ...interface{}) *Cmd[T] {
	return newCmd(conv, args...)
}

// Name returns the lower-case command name.
func (c *Cmd[T]) Name() string {
	if len(c.args) == 0 {
		return ""
	}
	return strings.ToLower(fmt.Sprint(c.args[0]))
}

// FullName returns the command name including the subcommand for container
// commands such as CLIENT, CLUSTER, CONFIG or XGROUP.
func (c *Cmd[T]) FullName() string {
	name := c.Name()
	if len(c.args) > 1 && containerCommands[name] {
		if sub, ok := c.args[1].(string); ok {
			return name + " " + strings.ToLower(sub)
		}
	}
	return name
}

// Args returns the full wire arguments, starting with the command name.
func (c *Cmd[T]) Args() []interface{} {
	return c.args
}

// Val returns the command value. It is the zero value until the reply arrives.
func (c *Cmd[T]) Val() T {
	return c.val
}

// Err returns the command error.
func (c *Cmd[T]) Err() error {
	return c.err
}

// Result returns both the value and the error.
func (c *Cmd[T]) Result() (T, error) {
	return c.val, c.err
}

// SetErr overrides the command error.
func (c *Cmd[T]) SetErr(err error) {
	c.err = err
}

// SetVal overrides the command value. Mostly useful in tests.
func (c *Cmd[T]) SetVal(val T) {
	c.val = val
}

// String renders the command and its result for debugging.
func (c *Cmd[T]) String() string {
	var b strings.Builder
	for i, arg := range c.args {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, arg)
	}
	if c.err != nil {
		fmt.Fprintf(&b, ": %v", c.err)
	} else {
		fmt.Fprintf(&b, ": %v", c.val)
	}
	return b.String()
}

func (c *Cmd[T]) setReply(reply interface{}, err error) {
	if err != nil {
		c.err = err
		return
	}
	if replyErr, ok := reply.(error); ok {
		c.err = replyErr
		return
	}
	c.val, c.err = c.conv(reply)
}

func (c *Cmd[T]) firstKey() string {
	if c.keyPos <= 0 || c.keyPos >= len(c.args) {
		return ""
	}
	if s, ok := c.args[c.keyPos].(string); ok {
		return s
	}
	return ""
}

func (c *Cmd[T]) setFirstKeyPos(pos int) *Cmd[T] {
	c.keyPos = pos
	return c
}

// fail hands c a command that already carries err. Clients never send such a
// command; pipelines queue it so that Exec reports it in order and a
// transaction is not committed without it.
func fail[T any](ctx context.Context, c cmdable, err error, args ...interface{}) *Cmd[T] {
	cmd := &Cmd[T]{args: args, err: err}
	_ = c(ctx, cmd)
	return cmd
}

var containerCommands = map[string]bool{
	"acl":      true,
	"client":   true,
	"cluster":  true,
	"command":  true,
	"config":   true,
	"function": true,
	"latency":  true,
	"memory":   true,
	"object":   true,
	"pubsub":   true,
	"script":   true,
	"slowlog":  true,
	"xgroup":   true,
	"xinfo":    true,
}

// blockingCommands cannot be queued inside MULTI/EXEC: the server would run
// them without blocking, which silently changes their meaning.
var blockingCommands = map[string]bool{
	"blpop":      true,
	"brpop":      true,
	"brpoplpush": true,
	"blmove":     true,
	"blmpop":     true,
	"bzpopmin":   true,
	"bzpopmax":   true,
	"bzmpop":     true,
	"wait":       true,
}

// connectionStateCommands change the connection's mode and cannot be batched.
var connectionStateCommands = map[string]bool{
	"subscribe":    true,
	"psubscribe":   true,
	"ssubscribe":   true,
	"unsubscribe":  true,
	"punsubscribe": true,
	"monitor":      true,
	"multi":        true,
	"exec":         true,
	"discard":      true,
	"watch":        true,
	"unwatch":      true,
}

func checkBatchable(cmd Cmder, tx bool) error {
	name := cmd.Name()
	if connectionStateCommands[name] {
		if tx {
			return fmt.Errorf("%w: %s", ErrNotSupportedTransactionCommand, name)
		}
		return fmt.Errorf("%w: %s", ErrNotSupportedPipelineCommand, name)
	}
	if tx && (blockingCommands[name] || isBlockingStreamRead(cmd)) {
		return fmt.Errorf("%w: %s", ErrNotSupportedTransactionCommand, name)
	}
	return nil
}

func isBlockingStreamRead(cmd Cmder) bool {
	switch cmd.Name() {
	case "xread", "xreadgroup":
	default:
		return false
	}
	for _, arg := range cmd.Args()[1:] {
		s, ok := arg.(string)
		if !ok {
			continue
		}
		if strings.EqualFold(s, "STREAMS") {
			return false
		}
		if strings.EqualFold(s, "BLOCK") {
			return true
		}
	}
	return false
}

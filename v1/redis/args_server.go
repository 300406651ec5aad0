package redis

import "time"

// ClientType is a connection class used by CLIENT LIST and CLIENT KILL.
type ClientType string

const (
	ClientNormal  ClientType = "NORMAL"
	ClientMaster  ClientType = "MASTER"
	ClientReplica ClientType = "REPLICA"
	ClientPubSub  ClientType = "PUBSUB"
)

// ClientPauseMode selects which clients CLIENT PAUSE suspends.
type ClientPauseMode string

const (
	PauseWrite ClientPauseMode = "WRITE"
	PauseAll   ClientPauseMode = "ALL"
)

// ClientKillArgument holds the filters of CLIENT KILL. At least one filter
// must be set.
type ClientKillArgument struct {
	ID    int64
	Type  ClientType
	User  string
	Addr  string
	LAddr string

	// SkipMe controls whether the calling client may be killed. Nil keeps the
	// server default (yes).
	SkipMe *bool

	// MaxAge kills connections older than this.
	MaxAge time.Duration
}

// Args returns [ID id] [TYPE type] [USER user] [ADDR addr] [LADDR laddr]
// [SKIPME yes|no] [MAXAGE seconds].
func (a *ClientKillArgument) Args() []interface{} {
	if a == nil {
		return nil
	}
	var args []interface{}
	if a.ID > 0 {
		args = append(args, "ID", a.ID)
	}
	if a.Type != "" {
		args = append(args, "TYPE", string(a.Type))
	}
	if a.User != "" {
		args = append(args, "USER", a.User)
	}
	if a.Addr != "" {
		args = append(args, "ADDR", a.Addr)
	}
	if a.LAddr != "" {
		args = append(args, "LADDR", a.LAddr)
	}
	if a.SkipMe != nil {
		if *a.SkipMe {
			args = append(args, "SKIPME", "YES")
		} else {
			args = append(args, "SKIPME", "NO")
		}
	}
	if a.MaxAge > 0 {
		args = append(args, "MAXAGE", formatSec(a.MaxAge))
	}
	return args
}

// Validate requires at least one filter.
func (a *ClientKillArgument) Validate() error {
	if len(a.Args()) == 0 {
		return invalidArgument("CLIENT KILL requires at least one filter")
	}
	return nil
}

// FailoverArgument is the mode of CLUSTER FAILOVER.
type FailoverArgument string

const (
	FailoverForce    FailoverArgument = "FORCE"
	FailoverTakeover FailoverArgument = "TAKEOVER"
)

// ClusterResetMode is the mode of CLUSTER RESET.
type ClusterResetMode string

const (
	ResetSoft ClusterResetMode = "SOFT"
	ResetHard ClusterResetMode = "HARD"
)

// SlotState is the subcommand of CLUSTER SETSLOT.
type SlotState string

const (
	SlotImporting SlotState = "IMPORTING"
	SlotMigrating SlotState = "MIGRATING"
	SlotStable    SlotState = "STABLE"
	SlotNode      SlotState = "NODE"
)

// ClusterSetSlotArgument is the state change of CLUSTER SETSLOT.
type ClusterSetSlotArgument struct {
	State SlotState

	// NodeID is required for every state but STABLE.
	NodeID string
}

// Args returns IMPORTING node | MIGRATING node | STABLE | NODE node.
func (a *ClusterSetSlotArgument) Args() []interface{} {
	if a == nil {
		return nil
	}
	if a.State == SlotStable {
		return []interface{}{string(a.State)}
	}
	return []interface{}{string(a.State), a.NodeID}
}

// Validate checks that a node ID accompanies the state when required.
func (a *ClusterSetSlotArgument) Validate() error {
	if a == nil || a.State == "" {
		return invalidArgument("CLUSTER SETSLOT requires a state")
	}
	if a.State != SlotStable && a.NodeID == "" {
		return invalidArgument("CLUSTER SETSLOT %s requires a node ID", a.State)
	}
	return nil
}

// AclSetUserArgument is a list of ACL SETUSER rules, applied in order.
type AclSetUserArgument struct {
	rules []string
}

// NewAclSetUserArgument returns an empty rule list.
func NewAclSetUserArgument() *AclSetUserArgument {
	return &AclSetUserArgument{}
}

// Rule appends a raw rule such as "on" or "~cache:*".
func (a *AclSetUserArgument) Rule(rule string) *AclSetUserArgument {
	a.rules = append(a.rules, rule)
	return a
}

func (a *AclSetUserArgument) On() *AclSetUserArgument        { return a.Rule("on") }
func (a *AclSetUserArgument) Off() *AclSetUserArgument       { return a.Rule("off") }
func (a *AclSetUserArgument) NoPass() *AclSetUserArgument    { return a.Rule("nopass") }
func (a *AclSetUserArgument) ResetPass() *AclSetUserArgument { return a.Rule("resetpass") }
func (a *AclSetUserArgument) Reset() *AclSetUserArgument     { return a.Rule("reset") }

func (a *AclSetUserArgument) AddPassword(password string) *AclSetUserArgument {
	return a.Rule(">" + password)
}

func (a *AclSetUserArgument) RemovePassword(password string) *AclSetUserArgument {
	return a.Rule("<" + password)
}

// AddHashedPassword adds a SHA-256 hex encoded password.
func (a *AclSetUserArgument) AddHashedPassword(hash string) *AclSetUserArgument {
	return a.Rule("#" + hash)
}

func (a *AclSetUserArgument) AllKeys() *AclSetUserArgument   { return a.Rule("allkeys") }
func (a *AclSetUserArgument) ResetKeys() *AclSetUserArgument { return a.Rule("resetkeys") }

func (a *AclSetUserArgument) KeyPattern(pattern string) *AclSetUserArgument {
	return a.Rule("~" + pattern)
}

func (a *AclSetUserArgument) ReadKeyPattern(pattern string) *AclSetUserArgument {
	return a.Rule("%R~" + pattern)
}

func (a *AclSetUserArgument) WriteKeyPattern(pattern string) *AclSetUserArgument {
	return a.Rule("%W~" + pattern)
}

func (a *AclSetUserArgument) AllChannels() *AclSetUserArgument   { return a.Rule("allchannels") }
func (a *AclSetUserArgument) ResetChannels() *AclSetUserArgument { return a.Rule("resetchannels") }

func (a *AclSetUserArgument) ChannelPattern(pattern string) *AclSetUserArgument {
	return a.Rule("&" + pattern)
}

func (a *AclSetUserArgument) AllCommands() *AclSetUserArgument { return a.Rule("allcommands") }
func (a *AclSetUserArgument) NoCommands() *AclSetUserArgument  { return a.Rule("nocommands") }

func (a *AclSetUserArgument) AllowCommand(command string) *AclSetUserArgument {
	return a.Rule("+" + command)
}

func (a *AclSetUserArgument) DenyCommand(command string) *AclSetUserArgument {
	return a.Rule("-" + command)
}

func (a *AclSetUserArgument) AllowCategory(category string) *AclSetUserArgument {
	return a.Rule("+@" + category)
}

func (a *AclSetUserArgument) DenyCategory(category string) *AclSetUserArgument {
	return a.Rule("-@" + category)
}

// Selector adds a selector with its own rules, e.g. "+GET ~temp:*".
func (a *AclSetUserArgument) Selector(rules string) *AclSetUserArgument {
	return a.Rule("(" + rules + ")")
}

func (a *AclSetUserArgument) ClearSelectors() *AclSetUserArgument { return a.Rule("clearselectors") }

// Args returns the rules in the order they were added.
func (a *AclSetUserArgument) Args() []interface{} {
	if a == nil {
		return nil
	}
	return appendStrings(nil, a.rules)
}

// SaveMode controls whether SHUTDOWN saves the dataset.
type SaveMode string

const (
	Save   SaveMode = "SAVE"
	NoSave SaveMode = "NOSAVE"
)

// ShutdownArgument holds the options of SHUTDOWN.
type ShutdownArgument struct {
	Save  SaveMode
	Now   bool
	Force bool

	// Abort cancels an ongoing shutdown and cannot be combined with other options.
	Abort bool
}

// Args returns [NOSAVE|SAVE] [NOW] [FORCE] [ABORT].
func (a *ShutdownArgument) Args() []interface{} {
	if a == nil {
		return nil
	}
	var args []interface{}
	if a.Save != "" {
		args = append(args, string(a.Save))
	}
	if a.Now {
		args = append(args, "NOW")
	}
	if a.Force {
		args = append(args, "FORCE")
	}
	if a.Abort {
		args = append(args, "ABORT")
	}
	return args
}

// Validate rejects ABORT combined with other options.
func (a *ShutdownArgument) Validate() error {
	if a != nil && a.Abort && (a.Save != "" || a.Now || a.Force) {
		return invalidArgument("SHUTDOWN ABORT cannot be combined with other options")
	}
	return nil
}

package redis

import "time"

// XTrimArgument holds the trimming options of XTRIM and XADD.
type XTrimArgument struct {
	// MaxLen trims by length. It is ignored when MinID is set.
	MaxLen int64

	// MinID evicts entries with IDs lower than MinID.
	MinID string

	// Approx uses "~" for efficient, almost exact trimming.
	Approx bool

	// Limit caps the number of evicted entries. It requires Approx.
	Limit int64
}

func (a *XTrimArgument) trimArgs(always bool) []interface{} {
	if a == nil {
		return nil
	}
	var args []interface{}
	switch {
	case a.MinID != "":
		args = append(args, "MINID")
	case a.MaxLen > 0 || always:
		args = append(args, "MAXLEN")
	default:
		return nil
	}
	if a.Approx {
		args = append(args, "~")
	}
	if a.MinID != "" {
		args = append(args, a.MinID)
	} else {
		args = append(args, a.MaxLen)
	}
	if a.Limit > 0 {
		args = append(args, "LIMIT", a.Limit)
	}
	return args
}

// Args returns MAXLEN|MINID [~] threshold [LIMIT count].
func (a *XTrimArgument) Args() []interface{} {
	return a.trimArgs(true)
}

// Validate rejects a negative threshold and LIMIT without approximation.
func (a *XTrimArgument) Validate() error {
	if a == nil {
		return nil
	}
	if a.MaxLen < 0 {
		return invalidArgument("stream maxlen %d is negative", a.MaxLen)
	}
	if a.Limit > 0 && !a.Approx {
		return invalidArgument("stream trim LIMIT requires approximate trimming")
	}
	return nil
}

// XAddArgument holds the options of XADD.
type XAddArgument struct {
	// NoMkStream does not create the stream when it is missing.
	NoMkStream bool

	XTrimArgument

	// ID is the entry ID. Defaults to "*".
	ID string
}

// Args returns [NOMKSTREAM] [MAXLEN|MINID [~] threshold [LIMIT count]] id.
func (a *XAddArgument) Args() []interface{} {
	if a == nil {
		return []interface{}{"*"}
	}
	var args []interface{}
	if a.NoMkStream {
		args = append(args, "NOMKSTREAM")
	}
	args = append(args, a.XTrimArgument.trimArgs(false)...)
	id := a.ID
	if id == "" {
		id = "*"
	}
	return append(args, id)
}

// Validate checks the trimming options.
func (a *XAddArgument) Validate() error {
	if a == nil {
		return nil
	}
	return a.XTrimArgument.Validate()
}

// XClaimArgument holds the options of XCLAIM.
type XClaimArgument struct {
	// Idle sets the idle time of the claimed entries.
	Idle time.Duration

	// Time sets the idle time as an absolute time.
	Time time.Time

	RetryCount int64
	Force      bool
	LastID     string
}

// Args returns [IDLE ms] [TIME ms] [RETRYCOUNT count] [FORCE] [LASTID id].
func (a *XClaimArgument) Args() []interface{} {
	return a.args(false)
}

func (a *XClaimArgument) args(justID bool) []interface{} {
	var args []interface{}
	if a != nil {
		if a.Idle > 0 {
			args = append(args, "IDLE", formatMs(a.Idle))
		}
		if !a.Time.IsZero() {
			args = append(args, "TIME", a.Time.UnixMilli())
		}
		if a.RetryCount > 0 {
			args = append(args, "RETRYCOUNT", a.RetryCount)
		}
		if a.Force {
			args = append(args, "FORCE")
		}
	}
	if justID {
		args = append(args, "JUSTID")
	}
	if a != nil && a.LastID != "" {
		args = append(args, "LASTID", a.LastID)
	}
	return args
}

// Validate rejects IDLE combined with TIME.
func (a *XClaimArgument) Validate() error {
	if a != nil && a.Idle > 0 && !a.Time.IsZero() {
		return invalidArgument("XCLAIM IDLE and TIME are mutually exclusive")
	}
	return nil
}

// XPendingArgument holds the options of the extended form of XPENDING.
type XPendingArgument struct {
	// Idle filters entries idle for at least this long.
	Idle time.Duration

	// Start and End default to "-" and "+".
	Start string
	End   string
	Count int64

	Consumer string
}

// Args returns [IDLE ms] start end count [consumer].
func (a *XPendingArgument) Args() []interface{} {
	if a == nil {
		return nil
	}
	var args []interface{}
	if a.Idle > 0 {
		args = append(args, "IDLE", formatMs(a.Idle))
	}
	start, end := a.Start, a.End
	if start == "" {
		start = "-"
	}
	if end == "" {
		end = "+"
	}
	args = append(args, start, end, a.Count)
	if a.Consumer != "" {
		args = append(args, a.Consumer)
	}
	return args
}

// Validate requires a positive count.
func (a *XPendingArgument) Validate() error {
	if a == nil || a.Count <= 0 {
		return invalidArgument("XPENDING requires a positive count")
	}
	return nil
}

// BlockForever makes XREAD and XREADGROUP wait without a timeout.
const BlockForever time.Duration = -1

// StreamOffset is a stream key and the ID to read after.
type StreamOffset struct {
	Stream string
	ID     string
}

// XReadArgument holds the options of XREAD.
type XReadArgument struct {
	Count int64

	// Block waits for new entries. Zero does not block; BlockForever blocks
	// without a timeout.
	Block time.Duration
}

func (a *XReadArgument) readArgs() []interface{} {
	if a == nil {
		return nil
	}
	var args []interface{}
	if a.Count > 0 {
		args = append(args, "COUNT", a.Count)
	}
	switch {
	case a.Block == BlockForever:
		args = append(args, "BLOCK", int64(0))
	case a.Block > 0:
		args = append(args, "BLOCK", formatMs(a.Block))
	}
	return args
}

// Args returns [COUNT count] [BLOCK ms].
func (a *XReadArgument) Args() []interface{} {
	return a.readArgs()
}

// Validate rejects negative counts and block durations.
func (a *XReadArgument) Validate() error {
	if a == nil {
		return nil
	}
	if a.Count < 0 {
		return invalidArgument("XREAD count %d is negative", a.Count)
	}
	if a.Block < 0 && a.Block != BlockForever {
		return invalidArgument("XREAD block %s is negative", a.Block)
	}
	return nil
}

// XReadGroupArgument holds the options of XREADGROUP.
type XReadGroupArgument struct {
	XReadArgument

	// NoAck skips adding the delivered entries to the pending list.
	NoAck bool
}

// Args returns [COUNT count] [BLOCK ms] [NOACK].
func (a *XReadGroupArgument) Args() []interface{} {
	if a == nil {
		return nil
	}
	args := a.XReadArgument.readArgs()
	if a.NoAck {
		args = append(args, "NOACK")
	}
	return args
}

// Validate checks the read options.
func (a *XReadGroupArgument) Validate() error {
	if a == nil {
		return nil
	}
	return a.XReadArgument.Validate()
}

func streamsArgs(offsets []StreamOffset) ([]interface{}, error) {
	if len(offsets) == 0 {
		return nil, invalidArgument("at least one stream is required")
	}
	args := make([]interface{}, 0, 2*len(offsets)+1)
	args = append(args, "STREAMS")
	for _, o := range offsets {
		args = append(args, o.Stream)
	}
	for _, o := range offsets {
		id := o.ID
		if id == "" {
			id = "$"
		}
		args = append(args, id)
	}
	return args, nil
}

package redis

import (
	"sort"
	"strconv"
	"time"
)

// Argument builders serialize optional command arguments. Each builder's Args
// returns only the option tokens, in the order the server documents them.
// A nil builder emits nothing.

// Condition is a conditional flag accepted by several write commands.
type Condition string

const (
	NX Condition = "NX"
	XX Condition = "XX"
	GT Condition = "GT"
	LT Condition = "LT"
)

// ExpireOption is the condition of EXPIRE, PEXPIRE, EXPIREAT, PEXPIREAT and
// the hash field expiration commands.
type ExpireOption = Condition

// Order is a sort direction.
type Order string

const (
	Asc  Order = "ASC"
	Desc Order = "DESC"
)

// FlushMode selects synchronous or asynchronous flushing.
type FlushMode string

const (
	FlushAsync FlushMode = "ASYNC"
	FlushSync  FlushMode = "SYNC"
)

func appendStrings(dst []interface{}, values []string) []interface{} {
	for _, v := range values {
		dst = append(dst, v)
	}
	return dst
}

// appendSortedMap appends field/value pairs sorted by field so the wire
// arguments are deterministic.
func appendSortedMap(dst []interface{}, m map[string]string) []interface{} {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		dst = append(dst, k, m[k])
	}
	return dst
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatSec(d time.Duration) int64 {
	return int64(d / time.Second)
}

func formatMs(d time.Duration) int64 {
	return int64(d / time.Millisecond)
}

// usePrecise reports whether d needs millisecond resolution.
func usePrecise(d time.Duration) bool {
	return d < time.Second || d%time.Second != 0
}

// Expiration holds the TTL options shared by SET, GETEX, HSETEX and HGETEX.
// At most one of TTL, At, KeepTTL and Persist may be set.
type Expiration struct {
	// TTL is sent as EX when it is a whole number of seconds and PX otherwise.
	TTL time.Duration

	// At is sent as EXAT when it has no sub-second part and PXAT otherwise.
	At time.Time

	KeepTTL bool
	Persist bool
}

func (e Expiration) validate(allowKeepTTL, allowPersist bool) error {
	n := 0
	if e.TTL != 0 {
		n++
		if e.TTL < time.Millisecond {
			return invalidArgument("expiration %s is below one millisecond", e.TTL)
		}
	}
	if !e.At.IsZero() {
		n++
	}
	if e.KeepTTL {
		if !allowKeepTTL {
			return invalidArgument("KEEPTTL is not supported here")
		}
		n++
	}
	if e.Persist {
		if !allowPersist {
			return invalidArgument("PERSIST is not supported here")
		}
		n++
	}
	if n > 1 {
		return invalidArgument("only one of TTL, At, KeepTTL and Persist may be set")
	}
	return nil
}

func (e Expiration) args() []interface{} {
	switch {
	case e.TTL != 0:
		if usePrecise(e.TTL) {
			return []interface{}{"PX", formatMs(e.TTL)}
		}
		return []interface{}{"EX", formatSec(e.TTL)}
	case !e.At.IsZero():
		if e.At.Nanosecond() != 0 {
			return []interface{}{"PXAT", e.At.UnixMilli()}
		}
		return []interface{}{"EXAT", e.At.Unix()}
	case e.KeepTTL:
		return []interface{}{"KEEPTTL"}
	case e.Persist:
		return []interface{}{"PERSIST"}
	}
	return nil
}

// ScanArgument holds the options of SCAN, HSCAN, SSCAN and ZSCAN.
type ScanArgument struct {
	Match string
	Count int64

	// Type filters SCAN by value type, e.g. "string" or "zset".
	Type string
}

// Args returns the MATCH, COUNT and TYPE tokens.
func (a *ScanArgument) Args() []interface{} {
	if a == nil {
		return nil
	}
	var args []interface{}
	if a.Match != "" {
		args = append(args, "MATCH", a.Match)
	}
	if a.Count > 0 {
		args = append(args, "COUNT", a.Count)
	}
	if a.Type != "" {
		args = append(args, "TYPE", a.Type)
	}
	return args
}

// Validate rejects negative counts.
func (a *ScanArgument) Validate() error {
	if a != nil && a.Count < 0 {
		return invalidArgument("scan count %d is negative", a.Count)
	}
	return nil
}

// SetArgument holds the options of SET.
type SetArgument struct {
	// Mode is NX or XX.
	Mode Condition

	// Get returns the old value stored at key.
	Get bool

	Expiration
}

// Args returns [NX|XX] [GET] [EX|PX|EXAT|PXAT|KEEPTTL].
func (a *SetArgument) Args() []interface{} {
	if a == nil {
		return nil
	}
	var args []interface{}
	if a.Mode != "" {
		args = append(args, string(a.Mode))
	}
	if a.Get {
		args = append(args, "GET")
	}
	return append(args, a.Expiration.args()...)
}

// Validate checks the mode and the expiration options.
func (a *SetArgument) Validate() error {
	if a == nil {
		return nil
	}
	if a.Mode != "" && a.Mode != NX && a.Mode != XX {
		return invalidArgument("SET mode must be NX or XX, got %q", a.Mode)
	}
	return a.Expiration.validate(true, false)
}

// GetExArgument holds the options of GETEX.
type GetExArgument struct {
	Expiration
}

// Args returns [EX|PX|EXAT|PXAT|PERSIST].
func (a *GetExArgument) Args() []interface{} {
	if a == nil {
		return nil
	}
	return a.Expiration.args()
}

// Validate checks that at most one expiration option is set.
func (a *GetExArgument) Validate() error {
	if a == nil {
		return nil
	}
	return a.Expiration.validate(false, true)
}

// CopyArgument holds the options of COPY.
type CopyArgument struct {
	// DB is the destination database. Nil keeps the current one.
	DB      *int
	Replace bool
}

// Args returns [DB db] [REPLACE].
func (a *CopyArgument) Args() []interface{} {
	if a == nil {
		return nil
	}
	var args []interface{}
	if a.DB != nil {
		args = append(args, "DB", *a.DB)
	}
	if a.Replace {
		args = append(args, "REPLACE")
	}
	return args
}

// RestoreArgument holds the options of RESTORE.
type RestoreArgument struct {
	Replace bool

	// AbsTTL interprets the ttl argument as an absolute Unix time in milliseconds.
	AbsTTL bool

	IdleTime time.Duration

	// Freq sets the LFU frequency. Nil leaves it unset.
	Freq *int64
}

// Args returns [REPLACE] [ABSTTL] [IDLETIME seconds] [FREQ frequency].
func (a *RestoreArgument) Args() []interface{} {
	if a == nil {
		return nil
	}
	var args []interface{}
	if a.Replace {
		args = append(args, "REPLACE")
	}
	if a.AbsTTL {
		args = append(args, "ABSTTL")
	}
	if a.IdleTime > 0 {
		args = append(args, "IDLETIME", formatSec(a.IdleTime))
	}
	if a.Freq != nil {
		args = append(args, "FREQ", *a.Freq)
	}
	return args
}

// Validate rejects IDLETIME combined with FREQ.
func (a *RestoreArgument) Validate() error {
	if a != nil && a.IdleTime > 0 && a.Freq != nil {
		return invalidArgument("IDLETIME and FREQ are mutually exclusive")
	}
	return nil
}

// MigrateArgument holds the options of MIGRATE.
type MigrateArgument struct {
	Copy    bool
	Replace bool

	// Username selects AUTH2 when set together with Password.
	Username string
	Password string

	// Keys migrates several keys at once. The key argument of Migrate must
	// then be empty.
	Keys []string
}

// Args returns [COPY] [REPLACE] [AUTH password | AUTH2 username password] [KEYS key...].
func (a *MigrateArgument) Args() []interface{} {
	if a == nil {
		return nil
	}
	var args []interface{}
	if a.Copy {
		args = append(args, "COPY")
	}
	if a.Replace {
		args = append(args, "REPLACE")
	}
	switch {
	case a.Username != "":
		args = append(args, "AUTH2", a.Username, a.Password)
	case a.Password != "":
		args = append(args, "AUTH", a.Password)
	}
	if len(a.Keys) > 0 {
		args = append(args, "KEYS")
		args = appendStrings(args, a.Keys)
	}
	return args
}

// SortArgument holds the options of SORT and SORT_RO.
type SortArgument struct {
	By string

	// Offset and Count are sent as LIMIT when Count is not zero.
	Offset int64
	Count  int64

	Get   []string
	Order Order
	Alpha bool
}

// Args returns [BY pattern] [LIMIT offset count] [GET pattern...] [ASC|DESC] [ALPHA].
func (a *SortArgument) Args() []interface{} {
	if a == nil {
		return nil
	}
	var args []interface{}
	if a.By != "" {
		args = append(args, "BY", a.By)
	}
	if a.Count != 0 {
		args = append(args, "LIMIT", a.Offset, a.Count)
	}
	for _, get := range a.Get {
		args = append(args, "GET", get)
	}
	if a.Order != "" {
		args = append(args, string(a.Order))
	}
	if a.Alpha {
		args = append(args, "ALPHA")
	}
	return args
}

// BitUnit selects whether BITCOUNT and BITPOS ranges are in bytes or bits.
type BitUnit string

const (
	BitUnitByte BitUnit = "BYTE"
	BitUnitBit  BitUnit = "BIT"
)

// BitCountArgument is the range of BITCOUNT.
type BitCountArgument struct {
	Start int64
	End   int64
	Unit  BitUnit
}

// Args returns start end [BYTE|BIT].
func (a *BitCountArgument) Args() []interface{} {
	if a == nil {
		return nil
	}
	args := []interface{}{a.Start, a.End}
	if a.Unit != "" {
		args = append(args, string(a.Unit))
	}
	return args
}

// BitPosArgument is the range of BITPOS.
type BitPosArgument struct {
	Start int64

	// End is optional. Unit requires End.
	End  *int64
	Unit BitUnit
}

// Args returns start [end [BYTE|BIT]].
func (a *BitPosArgument) Args() []interface{} {
	if a == nil {
		return nil
	}
	args := []interface{}{a.Start}
	if a.End != nil {
		args = append(args, *a.End)
		if a.Unit != "" {
			args = append(args, string(a.Unit))
		}
	}
	return args
}

// Validate rejects a unit without an end offset.
func (a *BitPosArgument) Validate() error {
	if a != nil && a.Unit != "" && a.End == nil {
		return invalidArgument("BITPOS unit requires an end offset")
	}
	return nil
}

// BitOperation is the operation of BITOP.
type BitOperation string

const (
	BitAnd   BitOperation = "AND"
	BitOr    BitOperation = "OR"
	BitXor   BitOperation = "XOR"
	BitNot   BitOperation = "NOT"
	BitDiff  BitOperation = "DIFF"
	BitDiff1 BitOperation = "DIFF1"
	BitAndOr BitOperation = "ANDOR"
	BitOne   BitOperation = "ONE"
)

// BitFieldType is a signed or unsigned integer type of BITFIELD, e.g. i8 or u16.
type BitFieldType struct {
	Signed bool
	Bits   int
}

// Signed returns the signed integer type with the given width (1 to 64 bits).
func Signed(bits int) BitFieldType {
	return BitFieldType{Signed: true, Bits: bits}
}

// Unsigned returns the unsigned integer type with the given width (1 to 63 bits).
func Unsigned(bits int) BitFieldType {
	return BitFieldType{Bits: bits}
}

func (t BitFieldType) String() string {
	if t.Signed {
		return "i" + strconv.Itoa(t.Bits)
	}
	return "u" + strconv.Itoa(t.Bits)
}

func (t BitFieldType) validate() error {
	maxBits := 63
	if t.Signed {
		maxBits = 64
	}
	if t.Bits < 1 || t.Bits > maxBits {
		return invalidArgument("bitfield type %s is out of range", t)
	}
	return nil
}

// BitFieldOffset is a BITFIELD offset. When Multiplied is set the offset is
// sent as "#n" and multiplied by the type width.
type BitFieldOffset struct {
	Offset     int64
	Multiplied bool
}

// BitOffset returns a plain bit offset.
func BitOffset(n int64) BitFieldOffset {
	return BitFieldOffset{Offset: n}
}

// TypeOffset returns an offset counted in type widths ("#n").
func TypeOffset(n int64) BitFieldOffset {
	return BitFieldOffset{Offset: n, Multiplied: true}
}

func (o BitFieldOffset) arg() interface{} {
	if o.Multiplied {
		return "#" + strconv.FormatInt(o.Offset, 10)
	}
	return o.Offset
}

// BitFieldOverflow is the overflow behavior of BITFIELD.
type BitFieldOverflow string

const (
	OverflowWrap BitFieldOverflow = "WRAP"
	OverflowSat  BitFieldOverflow = "SAT"
	OverflowFail BitFieldOverflow = "FAIL"
)

// BitFieldArgument is a chain of BITFIELD subcommands.
type BitFieldArgument struct {
	ops [][]interface{}
	err error
}

// NewBitFieldArgument returns an empty subcommand chain.
func NewBitFieldArgument() *BitFieldArgument {
	return &BitFieldArgument{}
}

func (a *BitFieldArgument) add(t *BitFieldType, op ...interface{}) *BitFieldArgument {
	if t != nil && a.err == nil {
		a.err = t.validate()
	}
	a.ops = append(a.ops, op)
	return a
}

// Get appends GET type offset.
func (a *BitFieldArgument) Get(t BitFieldType, offset BitFieldOffset) *BitFieldArgument {
	return a.add(&t, "GET", t.String(), offset.arg())
}

// Set appends SET type offset value.
func (a *BitFieldArgument) Set(t BitFieldType, offset BitFieldOffset, value int64) *BitFieldArgument {
	return a.add(&t, "SET", t.String(), offset.arg(), value)
}

// IncrBy appends INCRBY type offset increment.
func (a *BitFieldArgument) IncrBy(t BitFieldType, offset BitFieldOffset, increment int64) *BitFieldArgument {
	return a.add(&t, "INCRBY", t.String(), offset.arg(), increment)
}

// Overflow appends OVERFLOW WRAP|SAT|FAIL, affecting the following SET and INCRBY.
func (a *BitFieldArgument) Overflow(o BitFieldOverflow) *BitFieldArgument {
	return a.add(nil, "OVERFLOW", string(o))
}

// Args returns all subcommands in the order they were added.
func (a *BitFieldArgument) Args() []interface{} {
	if a == nil {
		return nil
	}
	var args []interface{}
	for _, op := range a.ops {
		args = append(args, op...)
	}
	return args
}

// Validate reports the first invalid type width.
func (a *BitFieldArgument) Validate() error {
	if a == nil {
		return nil
	}
	return a.err
}

func (a *BitFieldArgument) readOnly() bool {
	if a == nil {
		return true
	}
	for _, op := range a.ops {
		if op[0] != "GET" {
			return false
		}
	}
	return true
}

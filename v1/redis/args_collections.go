package redis

// ListDirection is the side of a list used by LMOVE, BLMOVE, LMPOP and BLMPOP.
type ListDirection string

const (
	Left  ListDirection = "LEFT"
	Right ListDirection = "RIGHT"
)

// InsertPosition is the pivot side of LINSERT.
type InsertPosition string

const (
	Before InsertPosition = "BEFORE"
	After  InsertPosition = "AFTER"
)

// LPosArgument holds the options of LPOS.
type LPosArgument struct {
	// Rank selects the n-th match; negative ranks search from the tail.
	Rank int64

	// MaxLen limits the number of compared elements.
	MaxLen int64
}

// Args returns [RANK rank] [MAXLEN len].
func (a *LPosArgument) Args() []interface{} {
	return a.args(nil)
}

func (a *LPosArgument) args(count *int64) []interface{} {
	var args []interface{}
	if a != nil && a.Rank != 0 {
		args = append(args, "RANK", a.Rank)
	}
	if count != nil {
		args = append(args, "COUNT", *count)
	}
	if a != nil && a.MaxLen != 0 {
		args = append(args, "MAXLEN", a.MaxLen)
	}
	return args
}

// Validate rejects a negative MAXLEN.
func (a *LPosArgument) Validate() error {
	if a != nil && a.MaxLen < 0 {
		return invalidArgument("LPOS maxlen %d is negative", a.MaxLen)
	}
	return nil
}

// PopSide selects the lowest or highest scores in ZMPOP and BZMPOP.
type PopSide string

const (
	PopMin PopSide = "MIN"
	PopMax PopSide = "MAX"
)

// ZAddArgument holds the options of ZADD.
type ZAddArgument struct {
	// Mode is NX or XX.
	Mode Condition

	// Compare is GT or LT.
	Compare Condition

	// CH counts changed elements instead of added ones.
	CH bool
}

// Args returns [NX|XX] [GT|LT] [CH].
func (a *ZAddArgument) Args() []interface{} {
	if a == nil {
		return nil
	}
	var args []interface{}
	if a.Mode != "" {
		args = append(args, string(a.Mode))
	}
	if a.Compare != "" {
		args = append(args, string(a.Compare))
	}
	if a.CH {
		args = append(args, "CH")
	}
	return args
}

// Validate rejects combinations the server refuses.
func (a *ZAddArgument) Validate() error {
	if a == nil {
		return nil
	}
	if a.Mode != "" && a.Mode != NX && a.Mode != XX {
		return invalidArgument("ZADD mode must be NX or XX, got %q", a.Mode)
	}
	if a.Compare != "" && a.Compare != GT && a.Compare != LT {
		return invalidArgument("ZADD comparison must be GT or LT, got %q", a.Compare)
	}
	if a.Mode == NX && a.Compare != "" {
		return invalidArgument("ZADD NX cannot be combined with GT or LT")
	}
	return nil
}

// Aggregate is the score aggregation of ZUNION, ZINTER and their STORE variants.
type Aggregate string

const (
	AggregateSum Aggregate = "SUM"
	AggregateMin Aggregate = "MIN"
	AggregateMax Aggregate = "MAX"
)

// ZStoreArgument holds the options of ZUNION, ZINTER, ZUNIONSTORE and ZINTERSTORE.
type ZStoreArgument struct {
	// Weights must have one entry per input key when set.
	Weights   []float64
	Aggregate Aggregate
}

// Args returns [WEIGHTS weight...] [AGGREGATE SUM|MIN|MAX].
func (a *ZStoreArgument) Args() []interface{} {
	if a == nil {
		return nil
	}
	var args []interface{}
	if len(a.Weights) > 0 {
		args = append(args, "WEIGHTS")
		for _, w := range a.Weights {
			args = append(args, formatFloat(w))
		}
	}
	if a.Aggregate != "" {
		args = append(args, "AGGREGATE", string(a.Aggregate))
	}
	return args
}

func (a *ZStoreArgument) validate(numKeys int) error {
	if a != nil && len(a.Weights) > 0 && len(a.Weights) != numKeys {
		return invalidArgument("got %d weights for %d keys", len(a.Weights), numKeys)
	}
	return nil
}

// ZRangeBy selects the interpretation of the ZRANGE bounds.
type ZRangeBy string

const (
	ByScore ZRangeBy = "BYSCORE"
	ByLex   ZRangeBy = "BYLEX"
)

// ZRangeArgument holds the options of ZRANGE and ZRANGESTORE.
type ZRangeArgument struct {
	By  ZRangeBy
	Rev bool

	// Offset and Count are sent as LIMIT when Count is not zero. LIMIT
	// requires By.
	Offset int64
	Count  int64
}

// Args returns [BYSCORE|BYLEX] [REV] [LIMIT offset count].
func (a *ZRangeArgument) Args() []interface{} {
	if a == nil {
		return nil
	}
	var args []interface{}
	if a.By != "" {
		args = append(args, string(a.By))
	}
	if a.Rev {
		args = append(args, "REV")
	}
	if a.Count != 0 {
		args = append(args, "LIMIT", a.Offset, a.Count)
	}
	return args
}

// Validate rejects LIMIT without BYSCORE or BYLEX.
func (a *ZRangeArgument) Validate() error {
	if a != nil && a.Count != 0 && a.By == "" {
		return invalidArgument("ZRANGE LIMIT requires BYSCORE or BYLEX")
	}
	return nil
}

// GeoAddArgument holds the options of GEOADD.
type GeoAddArgument struct {
	// Mode is NX or XX.
	Mode Condition
	CH   bool
}

// Args returns [NX|XX] [CH].
func (a *GeoAddArgument) Args() []interface{} {
	if a == nil {
		return nil
	}
	var args []interface{}
	if a.Mode != "" {
		args = append(args, string(a.Mode))
	}
	if a.CH {
		args = append(args, "CH")
	}
	return args
}

// Validate rejects conditions other than NX and XX.
func (a *GeoAddArgument) Validate() error {
	if a != nil && a.Mode != "" && a.Mode != NX && a.Mode != XX {
		return invalidArgument("GEOADD mode must be NX or XX, got %q", a.Mode)
	}
	return nil
}

// GeoSearchArgument holds the options of GEOSEARCH.
type GeoSearchArgument struct {
	// Member searches around an existing member (FROMMEMBER). When empty the
	// search starts at Longitude/Latitude (FROMLONLAT).
	Member    string
	Longitude float64
	Latitude  float64

	// Radius searches a circle (BYRADIUS). Otherwise BoxWidth and BoxHeight
	// search a rectangle (BYBOX).
	Radius    float64
	BoxWidth  float64
	BoxHeight float64

	// Unit defaults to Meters.
	Unit GeoUnit

	Sort Order

	// Count limits the result. Any returns as soon as Count matches are found.
	Count int64
	Any   bool

	WithCoord bool
	WithDist  bool
	WithHash  bool
}

func (a *GeoSearchArgument) searchArgs() []interface{} {
	var args []interface{}
	if a.Member != "" {
		args = append(args, "FROMMEMBER", a.Member)
	} else {
		args = append(args, "FROMLONLAT", formatFloat(a.Longitude), formatFloat(a.Latitude))
	}
	unit := a.Unit
	if unit == "" {
		unit = Meters
	}
	if a.Radius > 0 {
		args = append(args, "BYRADIUS", formatFloat(a.Radius), string(unit))
	} else {
		args = append(args, "BYBOX", formatFloat(a.BoxWidth), formatFloat(a.BoxHeight), string(unit))
	}
	if a.Sort != "" {
		args = append(args, string(a.Sort))
	}
	if a.Count > 0 {
		args = append(args, "COUNT", a.Count)
		if a.Any {
			args = append(args, "ANY")
		}
	}
	return args
}

// Args returns FROMMEMBER|FROMLONLAT, BYRADIUS|BYBOX, [ASC|DESC],
// [COUNT count [ANY]] and [WITHCOORD] [WITHDIST] [WITHHASH].
func (a *GeoSearchArgument) Args() []interface{} {
	if a == nil {
		return nil
	}
	args := a.searchArgs()
	if a.WithCoord {
		args = append(args, "WITHCOORD")
	}
	if a.WithDist {
		args = append(args, "WITHDIST")
	}
	if a.WithHash {
		args = append(args, "WITHHASH")
	}
	return args
}

// Validate checks the search shape and the count options.
func (a *GeoSearchArgument) Validate() error {
	if a == nil {
		return invalidArgument("GEOSEARCH requires a search argument")
	}
	hasBox := a.BoxWidth > 0 || a.BoxHeight > 0
	switch {
	case a.Radius > 0 && hasBox:
		return invalidArgument("GEOSEARCH takes either a radius or a box")
	case a.Radius <= 0 && (a.BoxWidth <= 0 || a.BoxHeight <= 0):
		return invalidArgument("GEOSEARCH requires a positive radius or box")
	case a.Count < 0:
		return invalidArgument("GEOSEARCH count %d is negative", a.Count)
	case a.Any && a.Count == 0:
		return invalidArgument("GEOSEARCH ANY requires COUNT")
	}
	return nil
}

// GeoSearchStoreArgument holds the options of GEOSEARCHSTORE.
type GeoSearchStoreArgument struct {
	GeoSearchArgument

	// StoreDist stores distances instead of geo hashes.
	StoreDist bool
}

// Args returns the search tokens followed by [STOREDIST].
func (a *GeoSearchStoreArgument) Args() []interface{} {
	if a == nil {
		return nil
	}
	args := a.searchArgs()
	if a.StoreDist {
		args = append(args, "STOREDIST")
	}
	return args
}

// Validate checks the search options and rejects WITH* flags.
func (a *GeoSearchStoreArgument) Validate() error {
	if a == nil {
		return invalidArgument("GEOSEARCHSTORE requires a search argument")
	}
	if a.WithCoord || a.WithDist || a.WithHash {
		return invalidArgument("GEOSEARCHSTORE does not support WITHCOORD, WITHDIST or WITHHASH")
	}
	return a.GeoSearchArgument.Validate()
}

// FieldCondition is the condition of HSETEX.
type FieldCondition string

const (
	// FNX sets the fields only if none of them exist.
	FNX FieldCondition = "FNX"
	// FXX sets the fields only if all of them exist.
	FXX FieldCondition = "FXX"
)

// HSetExArgument holds the options of HSETEX.
type HSetExArgument struct {
	Mode FieldCondition
	Expiration
}

// Args returns [FNX|FXX] [EX|PX|EXAT|PXAT|KEEPTTL].
func (a *HSetExArgument) Args() []interface{} {
	if a == nil {
		return nil
	}
	var args []interface{}
	if a.Mode != "" {
		args = append(args, string(a.Mode))
	}
	return append(args, a.Expiration.args()...)
}

// Validate checks the expiration options.
func (a *HSetExArgument) Validate() error {
	if a == nil {
		return nil
	}
	return a.Expiration.validate(true, false)
}

// Limit is the LIMIT offset count clause of the range-by-score and
// range-by-lex commands.
type Limit struct {
	Offset int64
	Count  int64
}

// Args returns LIMIT offset count.
func (l *Limit) Args() []interface{} {
	if l == nil {
		return nil
	}
	return []interface{}{"LIMIT", l.Offset, l.Count}
}

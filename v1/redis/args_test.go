package redis

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetArgumentArgs(t *testing.T) {
	at := time.Unix(1700000000, 0)

	tests := []struct {
		name string
		arg  *SetArgument
		want []interface{}
	}{
		{"nil", nil, nil},
		{"empty", &SetArgument{}, nil},
		{"whole seconds", &SetArgument{Expiration: Expiration{TTL: 10 * time.Second}}, []interface{}{"EX", int64(10)}},
		{"sub second", &SetArgument{Expiration: Expiration{TTL: 1500 * time.Millisecond}}, []interface{}{"PX", int64(1500)}},
		{"below one second", &SetArgument{Expiration: Expiration{TTL: 200 * time.Millisecond}}, []interface{}{"PX", int64(200)}},
		{"exat", &SetArgument{Expiration: Expiration{At: at}}, []interface{}{"EXAT", int64(1700000000)}},
		{"pxat", &SetArgument{Expiration: Expiration{At: at.Add(250 * time.Millisecond)}}, []interface{}{"PXAT", int64(1700000000250)}},
		{"keepttl", &SetArgument{Expiration: Expiration{KeepTTL: true}}, []interface{}{"KEEPTTL"}},
		{"nx get ex", &SetArgument{Mode: NX, Get: true, Expiration: Expiration{TTL: time.Minute}}, []interface{}{"NX", "GET", "EX", int64(60)}},
		{"xx", &SetArgument{Mode: XX}, []interface{}{"XX"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, tt.arg.Validate())
			assert.Equal(t, tt.want, tt.arg.Args())
		})
	}
}

func TestSetArgumentValidate(t *testing.T) {
	tests := []struct {
		name string
		arg  *SetArgument
	}{
		{"bad mode", &SetArgument{Mode: GT}},
		{"ttl and at", &SetArgument{Expiration: Expiration{TTL: time.Second, At: time.Now()}}},
		{"ttl and keepttl", &SetArgument{Expiration: Expiration{TTL: time.Second, KeepTTL: true}}},
		{"persist", &SetArgument{Expiration: Expiration{Persist: true}}},
		{"below one millisecond", &SetArgument{Expiration: Expiration{TTL: time.Microsecond}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.arg.Validate()
			assert.True(t, errors.Is(err, ErrInvalidArgument), "got %v", err)
		})
	}
}

func TestGetExArgument(t *testing.T) {
	assert.Equal(t, []interface{}{"PERSIST"}, (&GetExArgument{Expiration: Expiration{Persist: true}}).Args())
	assert.NoError(t, (&GetExArgument{Expiration: Expiration{Persist: true}}).Validate())
	assert.ErrorIs(t, (&GetExArgument{Expiration: Expiration{KeepTTL: true}}).Validate(), ErrInvalidArgument)
}

func TestScanArgument(t *testing.T) {
	assert.Nil(t, (*ScanArgument)(nil).Args())
	assert.Equal(t,
		[]interface{}{"MATCH", "user:*", "COUNT", int64(100), "TYPE", "hash"},
		(&ScanArgument{Match: "user:*", Count: 100, Type: "hash"}).Args(),
	)
	assert.ErrorIs(t, (&ScanArgument{Count: -1}).Validate(), ErrInvalidArgument)
}

func TestCopyArgument(t *testing.T) {
	db := 2
	assert.Equal(t, []interface{}{"DB", 2, "REPLACE"}, (&CopyArgument{DB: &db, Replace: true}).Args())
	assert.Nil(t, (&CopyArgument{}).Args())
}

func TestZAddArgument(t *testing.T) {
	assert.Equal(t, []interface{}{"XX", "GT", "CH"}, (&ZAddArgument{Mode: XX, Compare: GT, CH: true}).Args())
	assert.NoError(t, (&ZAddArgument{Mode: XX, Compare: LT}).Validate())
	assert.ErrorIs(t, (&ZAddArgument{Mode: NX, Compare: GT}).Validate(), ErrInvalidArgument)
	assert.ErrorIs(t, (&ZAddArgument{Mode: GT}).Validate(), ErrInvalidArgument)
	assert.ErrorIs(t, (&ZAddArgument{Compare: NX}).Validate(), ErrInvalidArgument)
}

func TestZStoreArgument(t *testing.T) {
	arg := &ZStoreArgument{Weights: []float64{1, 2.5}, Aggregate: AggregateMax}
	assert.Equal(t, []interface{}{"WEIGHTS", "1", "2.5", "AGGREGATE", "MAX"}, arg.Args())
	assert.NoError(t, arg.validate(2))
	assert.ErrorIs(t, arg.validate(3), ErrInvalidArgument)
}

func TestZRangeArgument(t *testing.T) {
	arg := &ZRangeArgument{By: ByScore, Rev: true, Offset: 10, Count: 5}
	assert.Equal(t, []interface{}{"BYSCORE", "REV", "LIMIT", int64(10), int64(5)}, arg.Args())
	assert.NoError(t, arg.Validate())
	assert.ErrorIs(t, (&ZRangeArgument{Count: 5}).Validate(), ErrInvalidArgument)
}

func TestLPosArgument(t *testing.T) {
	count := int64(3)
	arg := &LPosArgument{Rank: -1, MaxLen: 100}
	assert.Equal(t, []interface{}{"RANK", int64(-1), "MAXLEN", int64(100)}, arg.Args())
	assert.Equal(t, []interface{}{"RANK", int64(-1), "COUNT", int64(3), "MAXLEN", int64(100)}, arg.args(&count))
	assert.ErrorIs(t, (&LPosArgument{MaxLen: -1}).Validate(), ErrInvalidArgument)
}

func TestGeoSearchArgument(t *testing.T) {
	arg := &GeoSearchArgument{
		Member:   "Palermo",
		Radius:   200,
		Unit:     Kilometers,
		Sort:     Asc,
		Count:    2,
		Any:      true,
		WithDist: true,
	}
	assert.NoError(t, arg.Validate())
	assert.Equal(t,
		[]interface{}{"FROMMEMBER", "Palermo", "BYRADIUS", "200", "km", "ASC", "COUNT", int64(2), "ANY", "WITHDIST"},
		arg.Args(),
	)

	box := &GeoSearchArgument{Longitude: 15, Latitude: 37.5, BoxWidth: 400, BoxHeight: 300}
	assert.NoError(t, box.Validate())
	assert.Equal(t,
		[]interface{}{"FROMLONLAT", "15", "37.5", "BYBOX", "400", "300", "m"},
		box.Args(),
	)

	assert.ErrorIs(t, (*GeoSearchArgument)(nil).Validate(), ErrInvalidArgument)
	assert.ErrorIs(t, (&GeoSearchArgument{Radius: 1, BoxWidth: 1, BoxHeight: 1}).Validate(), ErrInvalidArgument)
	assert.ErrorIs(t, (&GeoSearchArgument{BoxWidth: 1}).Validate(), ErrInvalidArgument)
	assert.ErrorIs(t, (&GeoSearchArgument{Radius: 1, Any: true}).Validate(), ErrInvalidArgument)

	store := &GeoSearchStoreArgument{GeoSearchArgument: *arg, StoreDist: true}
	assert.ErrorIs(t, store.Validate(), ErrInvalidArgument)
	store.WithDist = false
	assert.NoError(t, store.Validate())
	assert.Equal(t, "STOREDIST", store.Args()[len(store.Args())-1])
}

func TestXAddArgument(t *testing.T) {
	assert.Equal(t, []interface{}{"*"}, (*XAddArgument)(nil).Args())

	arg := &XAddArgument{
		NoMkStream:    true,
		XTrimArgument: XTrimArgument{MaxLen: 1000, Approx: true, Limit: 10},
	}
	assert.NoError(t, arg.Validate())
	assert.Equal(t, []interface{}{"NOMKSTREAM", "MAXLEN", "~", int64(1000), "LIMIT", int64(10), "*"}, arg.Args())

	byID := &XAddArgument{ID: "1-1", XTrimArgument: XTrimArgument{MinID: "0-5"}}
	assert.Equal(t, []interface{}{"MINID", "0-5", "1-1"}, byID.Args())

	assert.ErrorIs(t, (&XTrimArgument{Limit: 10}).Validate(), ErrInvalidArgument)
	assert.ErrorIs(t, (&XTrimArgument{MaxLen: -1}).Validate(), ErrInvalidArgument)
	assert.Equal(t, []interface{}{"MAXLEN", int64(0)}, (&XTrimArgument{}).Args())
}

func TestHSetExArgument(t *testing.T) {
	arg := &HSetExArgument{Mode: FNX, Expiration: Expiration{TTL: 30 * time.Second}}
	assert.Equal(t, []interface{}{"FNX", "EX", int64(30)}, arg.Args())
	assert.NoError(t, arg.Validate())
}

func TestAppendSortedMap(t *testing.T) {
	got := appendSortedMap([]interface{}{"HSET", "k"}, map[string]string{"b": "2", "a": "1", "c": "3"})
	assert.Equal(t, []interface{}{"HSET", "k", "a", "1", "b", "2", "c", "3"}, got)
}

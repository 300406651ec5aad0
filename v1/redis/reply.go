package redis

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Reply converters turn the normalized driver reply into the result type of a
// command. Drivers deliver nil, string, int64, float64, bool, []interface{},
// map[interface{}]interface{} or error elements.

func unexpectedReply(want string, reply interface{}) error {
	if err, ok := reply.(error); ok {
		return err
	}
	return fmt.Errorf("redis: unexpected reply type %T, expected %s", reply, want)
}

func toInterface(reply interface{}) (interface{}, error) {
	if reply == nil {
		return nil, Nil
	}
	return reply, nil
}

func toInterfaceSlice(reply interface{}) ([]interface{}, error) {
	switch v := reply.(type) {
	case nil:
		return nil, Nil
	case []interface{}:
		return v, nil
	default:
		return nil, unexpectedReply("array", reply)
	}
}

func toStatus(reply interface{}) (string, error) {
	switch v := reply.(type) {
	case nil:
		return "", Nil
	case string:
		return v, nil
	case bool:
		if v {
			return "OK", nil
		}
		return "", nil
	default:
		return "", unexpectedReply("status", reply)
	}
}

func toString(reply interface{}) (string, error) {
	switch v := reply.(type) {
	case nil:
		return "", Nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		if v {
			return "1", nil
		}
		return "0", nil
	default:
		return "", unexpectedReply("string", reply)
	}
}

// toStringOrEmpty is toString for array elements, where nil means "absent".
func toStringOrEmpty(reply interface{}) (string, error) {
	if reply == nil {
		return "", nil
	}
	return toString(reply)
}

func toInt64(reply interface{}) (int64, error) {
	switch v := reply.(type) {
	case nil:
		return 0, Nil
	case int64:
		return v, nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("redis: cannot parse integer reply %q: %w", v, err)
		}
		return n, nil
	case float64:
		return int64(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, unexpectedReply("integer", reply)
	}
}

func toBool(reply interface{}) (bool, error) {
	switch v := reply.(type) {
	case nil:
		return false, Nil
	case bool:
		return v, nil
	case int64:
		return v != 0, nil
	case string:
		return v == "OK" || v == "1", nil
	default:
		return false, unexpectedReply("boolean", reply)
	}
}

// toSetBool is used for SET with NX or XX, where a nil reply means the
// condition was not met.
func toSetBool(reply interface{}) (bool, error) {
	if reply == nil {
		return false, nil
	}
	return toBool(reply)
}

func toFloat64(reply interface{}) (float64, error) {
	switch v := reply.(type) {
	case nil:
		return 0, Nil
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("redis: cannot parse float reply %q: %w", v, err)
		}
		return f, nil
	default:
		return 0, unexpectedReply("float", reply)
	}
}

func toStringSlice(reply interface{}) ([]string, error) {
	arr, err := toInterfaceSlice(reply)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(arr))
	for i, item := range arr {
		if out[i], err = toStringOrEmpty(item); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// toStringSliceOrEmpty treats a nil array as an empty result.
func toStringSliceOrEmpty(reply interface{}) ([]string, error) {
	if reply == nil {
		return []string{}, nil
	}
	return toStringSlice(reply)
}

func toStringPtrSlice(reply interface{}) ([]*string, error) {
	arr, err := toInterfaceSlice(reply)
	if err != nil {
		return nil, err
	}
	out := make([]*string, len(arr))
	for i, item := range arr {
		if item == nil {
			continue
		}
		s, err := toString(item)
		if err != nil {
			return nil, err
		}
		out[i] = &s
	}
	return out, nil
}

func toInt64Slice(reply interface{}) ([]int64, error) {
	arr, err := toInterfaceSlice(reply)
	if err != nil {
		return nil, err
	}
	out := make([]int64, len(arr))
	for i, item := range arr {
		if item == nil {
			continue
		}
		if out[i], err = toInt64(item); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func toIntPtrSlice(reply interface{}) ([]*int64, error) {
	arr, err := toInterfaceSlice(reply)
	if err != nil {
		return nil, err
	}
	out := make([]*int64, len(arr))
	for i, item := range arr {
		if item == nil {
			continue
		}
		n, err := toInt64(item)
		if err != nil {
			return nil, err
		}
		out[i] = &n
	}
	return out, nil
}

func toBoolSlice(reply interface{}) ([]bool, error) {
	arr, err := toInterfaceSlice(reply)
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(arr))
	for i, item := range arr {
		if item == nil {
			continue
		}
		if out[i], err = toBool(item); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func toFloatPtrSlice(reply interface{}) ([]*float64, error) {
	arr, err := toInterfaceSlice(reply)
	if err != nil {
		return nil, err
	}
	out := make([]*float64, len(arr))
	for i, item := range arr {
		if item == nil {
			continue
		}
		f, err := toFloat64(item)
		if err != nil {
			return nil, err
		}
		out[i] = &f
	}
	return out, nil
}

// pairs flattens a RESP2 flat array or a RESP3 map into key/value pairs,
// keeping the server order for arrays.
func pairs(reply interface{}) ([][2]interface{}, error) {
	switch v := reply.(type) {
	case nil:
		return nil, nil
	case []interface{}:
		if len(v) > 0 {
			if _, nested := v[0].([]interface{}); nested {
				out := make([][2]interface{}, 0, len(v))
				for _, item := range v {
					pair, ok := item.([]interface{})
					if !ok || len(pair) != 2 {
						return nil, unexpectedReply("pair", item)
					}
					out = append(out, [2]interface{}{pair[0], pair[1]})
				}
				return out, nil
			}
		}
		if len(v)%2 != 0 {
			return nil, fmt.Errorf("redis: got %d elements, expected an even number", len(v))
		}
		out := make([][2]interface{}, 0, len(v)/2)
		for i := 0; i < len(v); i += 2 {
			out = append(out, [2]interface{}{v[i], v[i+1]})
		}
		return out, nil
	case map[interface{}]interface{}:
		out := make([][2]interface{}, 0, len(v))
		for k, val := range v {
			out = append(out, [2]interface{}{k, val})
		}
		return out, nil
	default:
		return nil, unexpectedReply("map", reply)
	}
}

// fields is pairs keyed by string, for replies describing a single object.
func fields(reply interface{}) (map[string]interface{}, error) {
	ps, err := pairs(reply)
	if err != nil {
		return nil, err
	}
	out := make(map[string]interface{}, len(ps))
	for _, p := range ps {
		k, err := toString(p[0])
		if err != nil {
			return nil, err
		}
		out[k] = p[1]
	}
	return out, nil
}

func toStringMap(reply interface{}) (map[string]string, error) {
	ps, err := pairs(reply)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(ps))
	for _, p := range ps {
		k, err := toString(p[0])
		if err != nil {
			return nil, err
		}
		if out[k], err = toStringOrEmpty(p[1]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func toStringIntMap(reply interface{}) (map[string]int64, error) {
	ps, err := pairs(reply)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(ps))
	for _, p := range ps {
		k, err := toString(p[0])
		if err != nil {
			return nil, err
		}
		if out[k], err = toInt64(p[1]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func toKeyValueSlice(reply interface{}) ([]KeyValue, error) {
	ps, err := pairs(reply)
	if err != nil {
		return nil, err
	}
	out := make([]KeyValue, 0, len(ps))
	for _, p := range ps {
		k, err := toString(p[0])
		if err != nil {
			return nil, err
		}
		v, err := toStringOrEmpty(p[1])
		if err != nil {
			return nil, err
		}
		out = append(out, KeyValue{Key: k, Value: v})
	}
	return out, nil
}

// toKeyValues converts [key, [values...]] replies (LMPOP, BLMPOP).
func toKeyValues(reply interface{}) (KeyValues, error) {
	arr, err := toInterfaceSlice(reply)
	if err != nil {
		return KeyValues{}, err
	}
	if len(arr) != 2 {
		return KeyValues{}, fmt.Errorf("redis: got %d elements, expected 2", len(arr))
	}
	key, err := toString(arr[0])
	if err != nil {
		return KeyValues{}, err
	}
	values, err := toStringSlice(arr[1])
	if err != nil {
		return KeyValues{}, err
	}
	return KeyValues{Key: key, Values: values}, nil
}

func toTuple(member, score interface{}) (Tuple, error) {
	m, err := toString(member)
	if err != nil {
		return Tuple{}, err
	}
	s, err := toFloat64(score)
	if err != nil {
		return Tuple{}, err
	}
	return Tuple{Member: m, Score: s}, nil
}

// toTuples converts member/score pairs, either flat or nested.
func toTuples(reply interface{}) ([]Tuple, error) {
	if reply == nil {
		return []Tuple{}, nil
	}
	arr, ok := reply.([]interface{})
	if !ok {
		return nil, unexpectedReply("array", reply)
	}
	ps, err := pairs(arr)
	if err != nil {
		return nil, err
	}
	out := make([]Tuple, 0, len(ps))
	for _, p := range ps {
		t, err := toTuple(p[0], p[1])
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// toKeyTuple converts [key, member, score] replies (BZPOPMIN, BZPOPMAX).
func toKeyTuple(reply interface{}) (KeyTuple, error) {
	arr, err := toInterfaceSlice(reply)
	if err != nil {
		return KeyTuple{}, err
	}
	if len(arr) != 3 {
		return KeyTuple{}, fmt.Errorf("redis: got %d elements, expected 3", len(arr))
	}
	key, err := toString(arr[0])
	if err != nil {
		return KeyTuple{}, err
	}
	t, err := toTuple(arr[1], arr[2])
	if err != nil {
		return KeyTuple{}, err
	}
	return KeyTuple{Key: key, Tuple: t}, nil
}

// toKeyTuples converts [key, [[member, score]...]] replies (ZMPOP, BZMPOP).
func toKeyTuples(reply interface{}) (KeyTuples, error) {
	arr, err := toInterfaceSlice(reply)
	if err != nil {
		return KeyTuples{}, err
	}
	if len(arr) != 2 {
		return KeyTuples{}, fmt.Errorf("redis: got %d elements, expected 2", len(arr))
	}
	key, err := toString(arr[0])
	if err != nil {
		return KeyTuples{}, err
	}
	tuples, err := toTuples(arr[1])
	if err != nil {
		return KeyTuples{}, err
	}
	return KeyTuples{Key: key, Tuples: tuples}, nil
}

func scanPage(reply interface{}) (uint64, []interface{}, error) {
	arr, err := toInterfaceSlice(reply)
	if err != nil {
		return 0, nil, err
	}
	if len(arr) != 2 {
		return 0, nil, fmt.Errorf("redis: got %d elements in scan reply, expected 2", len(arr))
	}
	c, err := toString(arr[0])
	if err != nil {
		return 0, nil, err
	}
	cursor, err := strconv.ParseUint(c, 10, 64)
	if err != nil {
		return 0, nil, fmt.Errorf("redis: invalid scan cursor %q: %w", c, err)
	}
	items, ok := arr[1].([]interface{})
	if !ok && arr[1] != nil {
		return 0, nil, unexpectedReply("array", arr[1])
	}
	return cursor, items, nil
}

func toScan(reply interface{}) (ScanResult[string], error) {
	cursor, items, err := scanPage(reply)
	if err != nil {
		return ScanResult[string]{}, err
	}
	keys, err := toStringSliceOrEmpty(items)
	if err != nil {
		return ScanResult[string]{}, err
	}
	return ScanResult[string]{Cursor: cursor, Items: keys}, nil
}

func toKeyValueScan(reply interface{}) (ScanResult[KeyValue], error) {
	cursor, items, err := scanPage(reply)
	if err != nil {
		return ScanResult[KeyValue]{}, err
	}
	kvs, err := toKeyValueSlice(items)
	if err != nil {
		return ScanResult[KeyValue]{}, err
	}
	return ScanResult[KeyValue]{Cursor: cursor, Items: kvs}, nil
}

func toTupleScan(reply interface{}) (ScanResult[Tuple], error) {
	cursor, items, err := scanPage(reply)
	if err != nil {
		return ScanResult[Tuple]{}, err
	}
	tuples, err := toTuples(items)
	if err != nil {
		return ScanResult[Tuple]{}, err
	}
	return ScanResult[Tuple]{Cursor: cursor, Items: tuples}, nil
}

// toDuration returns a converter for TTL style replies expressed in unit.
// Negative replies (-1 no expiry, -2 missing key) are kept as-is.
func toDuration(unit time.Duration) func(interface{}) (time.Duration, error) {
	return func(reply interface{}) (time.Duration, error) {
		n, err := toInt64(reply)
		if err != nil {
			return 0, err
		}
		if n < 0 {
			return time.Duration(n), nil
		}
		return time.Duration(n) * unit, nil
	}
}

func toDurationSlice(unit time.Duration) func(interface{}) ([]time.Duration, error) {
	conv := toDuration(unit)
	return func(reply interface{}) ([]time.Duration, error) {
		arr, err := toInterfaceSlice(reply)
		if err != nil {
			return nil, err
		}
		out := make([]time.Duration, len(arr))
		for i, item := range arr {
			if out[i], err = conv(item); err != nil {
				return nil, err
			}
		}
		return out, nil
	}
}

// toTime converts the [seconds, microseconds] reply of TIME.
func toTime(reply interface{}) (time.Time, error) {
	arr, err := toInterfaceSlice(reply)
	if err != nil {
		return time.Time{}, err
	}
	if len(arr) != 2 {
		return time.Time{}, fmt.Errorf("redis: got %d elements in time reply, expected 2", len(arr))
	}
	sec, err := toInt64(arr[0])
	if err != nil {
		return time.Time{}, err
	}
	usec, err := toInt64(arr[1])
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(sec, usec*int64(time.Microsecond)), nil
}

func toUnixTime(reply interface{}) (time.Time, error) {
	n, err := toInt64(reply)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(n, 0), nil
}

// toInfo parses the text reply of INFO.
func toInfo(reply interface{}) (Info, error) {
	text, err := toString(reply)
	if err != nil {
		return nil, err
	}
	info := make(Info)
	section := ""
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			section = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(line, "#")))
			if info[section] == nil {
				info[section] = make(map[string]string)
			}
			continue
		}
		k, v, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if info[section] == nil {
			info[section] = make(map[string]string)
		}
		info[section][k] = v
	}
	return info, nil
}

// toLineMap parses "key:value" lines such as the reply of CLUSTER INFO.
func toLineMap(reply interface{}) (map[string]string, error) {
	text, err := toString(reply)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		if k, v, ok := strings.Cut(strings.TrimSpace(line), ":"); ok {
			out[k] = v
		}
	}
	return out, nil
}

// toLines splits a bulk string reply into non-empty lines.
func toLines(reply interface{}) ([]string, error) {
	text, err := toString(reply)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out, nil
}

// toGeoLocations returns a converter for GEOSEARCH replies. The WITH* flags
// must match the ones sent, since the server returns the extra fields in the
// fixed order dist, hash, coordinates.
func toGeoLocations(withCoord, withDist, withHash bool) func(interface{}) ([]GeoLocation, error) {
	return func(reply interface{}) ([]GeoLocation, error) {
		arr, err := toInterfaceSlice(reply)
		if err != nil {
			return nil, err
		}
		out := make([]GeoLocation, 0, len(arr))
		for _, item := range arr {
			if !withCoord && !withDist && !withHash {
				name, err := toString(item)
				if err != nil {
					return nil, err
				}
				out = append(out, GeoLocation{Name: name})
				continue
			}
			parts, ok := item.([]interface{})
			if !ok || len(parts) == 0 {
				return nil, unexpectedReply("array", item)
			}
			loc := GeoLocation{}
			if loc.Name, err = toString(parts[0]); err != nil {
				return nil, err
			}
			i := 1
			if withDist && i < len(parts) {
				if loc.Dist, err = toFloat64(parts[i]); err != nil {
					return nil, err
				}
				i++
			}
			if withHash && i < len(parts) {
				if loc.GeoHash, err = toInt64(parts[i]); err != nil {
					return nil, err
				}
				i++
			}
			if withCoord && i < len(parts) {
				pos, err := toGeoPosition(parts[i])
				if err != nil {
					return nil, err
				}
				loc.Longitude, loc.Latitude = pos.Longitude, pos.Latitude
			}
			out = append(out, loc)
		}
		return out, nil
	}
}

func toGeoPosition(reply interface{}) (GeoPosition, error) {
	arr, ok := reply.([]interface{})
	if !ok || len(arr) != 2 {
		return GeoPosition{}, unexpectedReply("coordinate pair", reply)
	}
	lon, err := toFloat64(arr[0])
	if err != nil {
		return GeoPosition{}, err
	}
	lat, err := toFloat64(arr[1])
	if err != nil {
		return GeoPosition{}, err
	}
	return GeoPosition{Longitude: lon, Latitude: lat}, nil
}

func toGeoPositions(reply interface{}) ([]*GeoPosition, error) {
	arr, err := toInterfaceSlice(reply)
	if err != nil {
		return nil, err
	}
	out := make([]*GeoPosition, len(arr))
	for i, item := range arr {
		if item == nil {
			continue
		}
		pos, err := toGeoPosition(item)
		if err != nil {
			return nil, err
		}
		out[i] = &pos
	}
	return out, nil
}

func toXMessage(reply interface{}) (XMessage, error) {
	arr, ok := reply.([]interface{})
	if !ok || len(arr) != 2 {
		return XMessage{}, unexpectedReply("stream entry", reply)
	}
	id, err := toString(arr[0])
	if err != nil {
		return XMessage{}, err
	}
	if arr[1] == nil {
		return XMessage{ID: id}, nil
	}
	values, err := toStringMap(arr[1])
	if err != nil {
		return XMessage{}, err
	}
	return XMessage{ID: id, Values: values}, nil
}

func toXMessages(reply interface{}) ([]XMessage, error) {
	if reply == nil {
		return []XMessage{}, nil
	}
	arr, ok := reply.([]interface{})
	if !ok {
		return nil, unexpectedReply("array", reply)
	}
	out := make([]XMessage, 0, len(arr))
	for _, item := range arr {
		if item == nil {
			continue
		}
		msg, err := toXMessage(item)
		if err != nil {
			return nil, err
		}
		out = append(out, msg)
	}
	return out, nil
}

// toXStreams converts XREAD and XREADGROUP replies. A nil reply means the
// read timed out and is reported as Nil.
func toXStreams(reply interface{}) ([]XStream, error) {
	if reply == nil {
		return nil, Nil
	}
	ps, err := pairs(reply)
	if err != nil {
		return nil, err
	}
	out := make([]XStream, 0, len(ps))
	for _, p := range ps {
		name, err := toString(p[0])
		if err != nil {
			return nil, err
		}
		msgs, err := toXMessages(p[1])
		if err != nil {
			return nil, err
		}
		out = append(out, XStream{Stream: name, Messages: msgs})
	}
	return out, nil
}

func toXPending(reply interface{}) (XPending, error) {
	arr, err := toInterfaceSlice(reply)
	if err != nil {
		return XPending{}, err
	}
	if len(arr) != 4 {
		return XPending{}, fmt.Errorf("redis: got %d elements in xpending reply, expected 4", len(arr))
	}
	var p XPending
	if p.Count, err = toInt64(arr[0]); err != nil {
		return XPending{}, err
	}
	if p.Lower, err = toStringOrEmpty(arr[1]); err != nil {
		return XPending{}, err
	}
	if p.Higher, err = toStringOrEmpty(arr[2]); err != nil {
		return XPending{}, err
	}
	p.Consumers = make(map[string]int64)
	if arr[3] != nil {
		consumers, ok := arr[3].([]interface{})
		if !ok {
			return XPending{}, unexpectedReply("array", arr[3])
		}
		for _, c := range consumers {
			pair, ok := c.([]interface{})
			if !ok || len(pair) != 2 {
				return XPending{}, unexpectedReply("pair", c)
			}
			name, err := toString(pair[0])
			if err != nil {
				return XPending{}, err
			}
			if p.Consumers[name], err = toInt64(pair[1]); err != nil {
				return XPending{}, err
			}
		}
	}
	return p, nil
}

func toXPendingExt(reply interface{}) ([]XPendingExt, error) {
	arr, err := toInterfaceSlice(reply)
	if err != nil {
		return nil, err
	}
	out := make([]XPendingExt, 0, len(arr))
	for _, item := range arr {
		parts, ok := item.([]interface{})
		if !ok || len(parts) != 4 {
			return nil, unexpectedReply("pending entry", item)
		}
		var e XPendingExt
		if e.ID, err = toString(parts[0]); err != nil {
			return nil, err
		}
		if e.Consumer, err = toString(parts[1]); err != nil {
			return nil, err
		}
		idle, err := toInt64(parts[2])
		if err != nil {
			return nil, err
		}
		e.Idle = time.Duration(idle) * time.Millisecond
		if e.RetryCount, err = toInt64(parts[3]); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func autoClaimParts(reply interface{}) (string, interface{}, []string, error) {
	arr, err := toInterfaceSlice(reply)
	if err != nil {
		return "", nil, nil, err
	}
	if len(arr) < 2 {
		return "", nil, nil, fmt.Errorf("redis: got %d elements in xautoclaim reply, expected at least 2", len(arr))
	}
	start, err := toString(arr[0])
	if err != nil {
		return "", nil, nil, err
	}
	deleted := []string{}
	if len(arr) > 2 {
		if deleted, err = toStringSliceOrEmpty(arr[2]); err != nil {
			return "", nil, nil, err
		}
	}
	return start, arr[1], deleted, nil
}

func toXAutoClaim(reply interface{}) (XAutoClaimResult, error) {
	start, entries, deleted, err := autoClaimParts(reply)
	if err != nil {
		return XAutoClaimResult{}, err
	}
	msgs, err := toXMessages(entries)
	if err != nil {
		return XAutoClaimResult{}, err
	}
	return XAutoClaimResult{Start: start, Messages: msgs, Deleted: deleted}, nil
}

func toXAutoClaimJustID(reply interface{}) (XAutoClaimJustIDResult, error) {
	start, entries, deleted, err := autoClaimParts(reply)
	if err != nil {
		return XAutoClaimJustIDResult{}, err
	}
	ids, err := toStringSliceOrEmpty(entries)
	if err != nil {
		return XAutoClaimJustIDResult{}, err
	}
	return XAutoClaimJustIDResult{Start: start, IDs: ids, Deleted: deleted}, nil
}

// fieldInt64 and friends read optional fields of object replies.
func fieldInt64(m map[string]interface{}, key string) (int64, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return 0, nil
	}
	return toInt64(v)
}

func fieldString(m map[string]interface{}, key string) (string, error) {
	return toStringOrEmpty(m[key])
}

func fieldFloat64(m map[string]interface{}, key string) (float64, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return 0, nil
	}
	return toFloat64(v)
}

// fieldReader accumulates the first conversion error so object replies can be
// decoded field by field.
type fieldReader struct {
	m   map[string]interface{}
	err error
}

func (r *fieldReader) int(key string) int64 {
	if r.err != nil {
		return 0
	}
	var n int64
	n, r.err = fieldInt64(r.m, key)
	return n
}

func (r *fieldReader) str(key string) string {
	if r.err != nil {
		return ""
	}
	var s string
	s, r.err = fieldString(r.m, key)
	return s
}

func (r *fieldReader) float(key string) float64 {
	if r.err != nil {
		return 0
	}
	var f float64
	f, r.err = fieldFloat64(r.m, key)
	return f
}

func (r *fieldReader) strs(key string) []string {
	if r.err != nil {
		return nil
	}
	var s []string
	s, r.err = toStringSliceOrEmpty(r.m[key])
	return s
}

func (r *fieldReader) msg(key string) XMessage {
	if r.err != nil || r.m[key] == nil {
		return XMessage{}
	}
	var msg XMessage
	msg, r.err = toXMessage(r.m[key])
	return msg
}

func toXInfoStream(reply interface{}) (XInfoStream, error) {
	m, err := fields(reply)
	if err != nil {
		return XInfoStream{}, err
	}
	r := &fieldReader{m: m}
	info := XInfoStream{
		Length:               r.int("length"),
		RadixTreeKeys:        r.int("radix-tree-keys"),
		RadixTreeNodes:       r.int("radix-tree-nodes"),
		Groups:               r.int("groups"),
		LastGeneratedID:      r.str("last-generated-id"),
		MaxDeletedEntryID:    r.str("max-deleted-entry-id"),
		EntriesAdded:         r.int("entries-added"),
		RecordedFirstEntryID: r.str("recorded-first-entry-id"),
		FirstEntry:           r.msg("first-entry"),
		LastEntry:            r.msg("last-entry"),
	}
	return info, r.err
}

func objectList[T any](reply interface{}, decode func(*fieldReader) T) ([]T, error) {
	arr, err := toInterfaceSlice(reply)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(arr))
	for _, item := range arr {
		m, err := fields(item)
		if err != nil {
			return nil, err
		}
		r := &fieldReader{m: m}
		v := decode(r)
		if r.err != nil {
			return nil, r.err
		}
		out = append(out, v)
	}
	return out, nil
}

func toXInfoGroups(reply interface{}) ([]XInfoGroup, error) {
	return objectList(reply, func(r *fieldReader) XInfoGroup {
		return XInfoGroup{
			Name:            r.str("name"),
			Consumers:       r.int("consumers"),
			Pending:         r.int("pending"),
			LastDeliveredID: r.str("last-delivered-id"),
			EntriesRead:     r.int("entries-read"),
			Lag:             r.int("lag"),
		}
	})
}

func toXInfoConsumers(reply interface{}) ([]XInfoConsumer, error) {
	return objectList(reply, func(r *fieldReader) XInfoConsumer {
		return XInfoConsumer{
			Name:     r.str("name"),
			Pending:  r.int("pending"),
			Idle:     time.Duration(r.int("idle")) * time.Millisecond,
			Inactive: time.Duration(r.int("inactive")) * time.Millisecond,
		}
	})
}

// toClusterNodes parses the text reply of CLUSTER NODES and CLUSTER REPLICAS.
func toClusterNodes(reply interface{}) ([]ClusterNode, error) {
	var text string
	switch v := reply.(type) {
	case []interface{}:
		lines, err := toStringSlice(v)
		if err != nil {
			return nil, err
		}
		text = strings.Join(lines, "\n")
	default:
		s, err := toString(reply)
		if err != nil {
			return nil, err
		}
		text = s
	}

	var nodes []ClusterNode
	for _, line := range strings.Split(text, "\n") {
		f := strings.Fields(line)
		if len(f) < 8 {
			continue
		}
		node := ClusterNode{
			ID:        f[0],
			Flags:     strings.Split(f[2], ","),
			LinkState: f[7],
		}
		addr, hostname, _ := strings.Cut(f[1], ",")
		if i := strings.IndexByte(addr, '@'); i >= 0 {
			addr = addr[:i]
		}
		node.Addr, node.Hostname = addr, hostname
		if f[3] != "-" {
			node.MasterID = f[3]
		}
		node.PingSent, _ = strconv.ParseInt(f[4], 10, 64)
		node.PongRecv, _ = strconv.ParseInt(f[5], 10, 64)
		node.ConfigEpoch, _ = strconv.ParseInt(f[6], 10, 64)
		for _, slot := range f[8:] {
			if strings.HasPrefix(slot, "[") {
				continue
			}
			r, err := parseSlotRange(slot)
			if err != nil {
				return nil, err
			}
			node.Slots = append(node.Slots, r)
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func parseSlotRange(s string) (SlotRange, error) {
	start, end, isRange := strings.Cut(s, "-")
	lo, err := strconv.ParseInt(start, 10, 64)
	if err != nil {
		return SlotRange{}, fmt.Errorf("redis: invalid slot %q: %w", s, err)
	}
	if !isRange {
		return SlotRange{Start: lo, End: lo}, nil
	}
	hi, err := strconv.ParseInt(end, 10, 64)
	if err != nil {
		return SlotRange{}, fmt.Errorf("redis: invalid slot %q: %w", s, err)
	}
	return SlotRange{Start: lo, End: hi}, nil
}

func toClusterSlots(reply interface{}) ([]ClusterSlot, error) {
	arr, err := toInterfaceSlice(reply)
	if err != nil {
		return nil, err
	}
	out := make([]ClusterSlot, 0, len(arr))
	for _, item := range arr {
		parts, ok := item.([]interface{})
		if !ok || len(parts) < 2 {
			return nil, unexpectedReply("slot entry", item)
		}
		var slot ClusterSlot
		if slot.Start, err = toInt64(parts[0]); err != nil {
			return nil, err
		}
		if slot.End, err = toInt64(parts[1]); err != nil {
			return nil, err
		}
		for _, n := range parts[2:] {
			nodeParts, ok := n.([]interface{})
			if !ok || len(nodeParts) < 2 {
				return nil, unexpectedReply("slot node", n)
			}
			host, err := toString(nodeParts[0])
			if err != nil {
				return nil, err
			}
			port, err := toString(nodeParts[1])
			if err != nil {
				return nil, err
			}
			node := ClusterSlotNode{Addr: host + ":" + port}
			if len(nodeParts) > 2 {
				if node.ID, err = toStringOrEmpty(nodeParts[2]); err != nil {
					return nil, err
				}
			}
			slot.Nodes = append(slot.Nodes, node)
		}
		out = append(out, slot)
	}
	return out, nil
}

func toClusterShards(reply interface{}) ([]ClusterShard, error) {
	arr, err := toInterfaceSlice(reply)
	if err != nil {
		return nil, err
	}
	out := make([]ClusterShard, 0, len(arr))
	for _, item := range arr {
		m, err := fields(item)
		if err != nil {
			return nil, err
		}
		var shard ClusterShard
		if m["slots"] != nil {
			bounds, err := toInt64Slice(m["slots"])
			if err != nil {
				return nil, err
			}
			for i := 0; i+1 < len(bounds); i += 2 {
				shard.Slots = append(shard.Slots, SlotRange{Start: bounds[i], End: bounds[i+1]})
			}
		}
		if m["nodes"] != nil {
			shard.Nodes, err = objectList(m["nodes"], func(r *fieldReader) ClusterShardNode {
				return ClusterShardNode{
					ID:                r.str("id"),
					Endpoint:          r.str("endpoint"),
					IP:                r.str("ip"),
					Hostname:          r.str("hostname"),
					Port:              r.int("port"),
					TLSPort:           r.int("tls-port"),
					Role:              r.str("role"),
					ReplicationOffset: r.int("replication-offset"),
					Health:            r.str("health"),
				}
			})
			if err != nil {
				return nil, err
			}
		}
		out = append(out, shard)
	}
	return out, nil
}

func toClusterLinks(reply interface{}) ([]ClusterLink, error) {
	return objectList(reply, func(r *fieldReader) ClusterLink {
		return ClusterLink{
			Direction:           r.str("direction"),
			Node:                r.str("node"),
			CreateTime:          r.int("create-time"),
			Events:              r.str("events"),
			SendBufferAllocated: r.int("send-buffer-allocated"),
			SendBufferUsed:      r.int("send-buffer-used"),
		}
	})
}

func toSlowLogs(reply interface{}) ([]SlowLog, error) {
	arr, err := toInterfaceSlice(reply)
	if err != nil {
		return nil, err
	}
	out := make([]SlowLog, 0, len(arr))
	for _, item := range arr {
		parts, ok := item.([]interface{})
		if !ok || len(parts) < 4 {
			return nil, unexpectedReply("slowlog entry", item)
		}
		var entry SlowLog
		if entry.ID, err = toInt64(parts[0]); err != nil {
			return nil, err
		}
		ts, err := toInt64(parts[1])
		if err != nil {
			return nil, err
		}
		entry.Time = time.Unix(ts, 0)
		us, err := toInt64(parts[2])
		if err != nil {
			return nil, err
		}
		entry.Duration = time.Duration(us) * time.Microsecond
		if entry.Args, err = toStringSlice(parts[3]); err != nil {
			return nil, err
		}
		if len(parts) > 4 {
			if entry.ClientAddr, err = toStringOrEmpty(parts[4]); err != nil {
				return nil, err
			}
		}
		if len(parts) > 5 {
			if entry.ClientName, err = toStringOrEmpty(parts[5]); err != nil {
				return nil, err
			}
		}
		out = append(out, entry)
	}
	return out, nil
}

func toAclLog(reply interface{}) ([]AclLogEntry, error) {
	return objectList(reply, func(r *fieldReader) AclLogEntry {
		return AclLogEntry{
			Count:                r.int("count"),
			Reason:               r.str("reason"),
			Context:              r.str("context"),
			Object:               r.str("object"),
			Username:             r.str("username"),
			AgeSeconds:           r.float("age-seconds"),
			ClientInfo:           r.str("client-info"),
			EntryID:              r.int("entry-id"),
			TimestampCreated:     r.int("timestamp-created"),
			TimestampLastUpdated: r.int("timestamp-last-updated"),
		}
	})
}

func toAclUser(reply interface{}) (AclUser, error) {
	if reply == nil {
		return AclUser{}, Nil
	}
	m, err := fields(reply)
	if err != nil {
		return AclUser{}, err
	}
	r := &fieldReader{m: m}
	user := AclUser{
		Flags:     r.strs("flags"),
		Passwords: r.strs("passwords"),
		Commands:  r.str("commands"),
		Keys:      r.str("keys"),
		Channels:  r.str("channels"),
	}
	if r.err != nil {
		return AclUser{}, r.err
	}
	if sel, ok := m["selectors"].([]interface{}); ok {
		for _, s := range sel {
			sm, err := toStringMap(s)
			if err != nil {
				return AclUser{}, err
			}
			user.Selectors = append(user.Selectors, sm)
		}
	}
	return user, nil
}

// parseClientInfo parses one "id=1 addr=... name=..." line.
func parseClientInfo(line string) ClientInfo {
	info := ClientInfo{Raw: make(map[string]string)}
	for _, field := range strings.Fields(line) {
		k, v, ok := strings.Cut(field, "=")
		if !ok {
			continue
		}
		info.Raw[k] = v
		switch k {
		case "id":
			info.ID, _ = strconv.ParseInt(v, 10, 64)
		case "addr":
			info.Addr = v
		case "laddr":
			info.LAddr = v
		case "name":
			info.Name = v
		case "age":
			n, _ := strconv.ParseInt(v, 10, 64)
			info.Age = time.Duration(n) * time.Second
		case "idle":
			n, _ := strconv.ParseInt(v, 10, 64)
			info.Idle = time.Duration(n) * time.Second
		case "flags":
			info.Flags = v
		case "db":
			info.DB, _ = strconv.ParseInt(v, 10, 64)
		case "cmd":
			info.Cmd = v
		case "user":
			info.User = v
		case "lib-name":
			info.LibName = v
		case "lib-ver":
			info.LibVer = v
		}
	}
	return info
}

func toClientInfo(reply interface{}) (ClientInfo, error) {
	text, err := toString(reply)
	if err != nil {
		return ClientInfo{}, err
	}
	return parseClientInfo(strings.TrimSpace(text)), nil
}

func toClientInfoSlice(reply interface{}) ([]ClientInfo, error) {
	lines, err := toLines(reply)
	if err != nil {
		return nil, err
	}
	out := make([]ClientInfo, 0, len(lines))
	for _, line := range lines {
		out = append(out, parseClientInfo(line))
	}
	return out, nil
}

func toRole(reply interface{}) (Role, error) {
	arr, err := toInterfaceSlice(reply)
	if err != nil {
		return Role{}, err
	}
	if len(arr) == 0 {
		return Role{}, unexpectedReply("role", reply)
	}
	var role Role
	if role.Role, err = toString(arr[0]); err != nil {
		return Role{}, err
	}
	switch role.Role {
	case "master":
		if len(arr) < 3 {
			return Role{}, unexpectedReply("master role", reply)
		}
		if role.ReplicationOffset, err = toInt64(arr[1]); err != nil {
			return Role{}, err
		}
		replicas, _ := arr[2].([]interface{})
		for _, r := range replicas {
			parts, ok := r.([]interface{})
			if !ok || len(parts) < 3 {
				return Role{}, unexpectedReply("replica", r)
			}
			var rep RoleReplica
			if rep.IP, err = toString(parts[0]); err != nil {
				return Role{}, err
			}
			if rep.Port, err = toInt64(parts[1]); err != nil {
				return Role{}, err
			}
			if rep.Offset, err = toInt64(parts[2]); err != nil {
				return Role{}, err
			}
			role.Replicas = append(role.Replicas, rep)
		}
	case "slave", "replica":
		if len(arr) < 5 {
			return Role{}, unexpectedReply("replica role", reply)
		}
		if role.MasterHost, err = toString(arr[1]); err != nil {
			return Role{}, err
		}
		if role.MasterPort, err = toInt64(arr[2]); err != nil {
			return Role{}, err
		}
		if role.State, err = toString(arr[3]); err != nil {
			return Role{}, err
		}
		if role.ReplicationOffset, err = toInt64(arr[4]); err != nil {
			return Role{}, err
		}
	case "sentinel":
		if len(arr) > 1 {
			if role.MasterNames, err = toStringSliceOrEmpty(arr[1]); err != nil {
				return Role{}, err
			}
		}
	}
	return role, nil
}

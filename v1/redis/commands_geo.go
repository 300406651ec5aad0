package redis

import "context"

// GeoAdd adds members with their coordinates.
func (c cmdable) GeoAdd(ctx context.Context, key string, arg *GeoAddArgument, locations ...GeoLocation) *IntCmd {
	if len(locations) == 0 {
		return fail[int64](ctx, c, invalidArgument("GEOADD requires at least one location"), "GEOADD", key)
	}
	if err := arg.Validate(); err != nil {
		return fail[int64](ctx, c, err, "GEOADD", key)
	}
	args := append([]interface{}{"GEOADD", key}, arg.Args()...)
	for _, l := range locations {
		args = append(args, formatFloat(l.Longitude), formatFloat(l.Latitude), l.Name)
	}
	return run(ctx, c, toInt64, args...)
}

// GeoDist returns the distance between two members, or Nil when one is missing.
func (c cmdable) GeoDist(ctx context.Context, key, member1, member2 string, unit GeoUnit) *FloatCmd {
	if unit == "" {
		unit = Meters
	}
	return run(ctx, c, toFloat64, "GEODIST", key, member1, member2, string(unit))
}

// GeoHash returns the geohash strings of members.
func (c cmdable) GeoHash(ctx context.Context, key string, members ...string) *StringSliceCmd {
	return run(ctx, c, toStringSlice, keysArgs([]interface{}{"GEOHASH", key}, members)...)
}

// GeoPos returns one position per member; missing members are nil.
func (c cmdable) GeoPos(ctx context.Context, key string, members ...string) *GeoPosCmd {
	return run(ctx, c, toGeoPositions, keysArgs([]interface{}{"GEOPOS", key}, members)...)
}

// GeoSearch returns members within the area described by arg. Only the
// fields requested with WithCoord, WithDist and WithHash are filled in.
func (c cmdable) GeoSearch(ctx context.Context, key string, arg *GeoSearchArgument) *GeoLocationCmd {
	if err := arg.Validate(); err != nil {
		return fail[[]GeoLocation](ctx, c, err, "GEOSEARCH", key)
	}
	conv := toGeoLocations(arg.WithCoord, arg.WithDist, arg.WithHash)
	return run(ctx, c, conv, append([]interface{}{"GEOSEARCH", key}, arg.Args()...)...)
}

// GeoSearchStore stores the result of a geo search in destination.
func (c cmdable) GeoSearchStore(ctx context.Context, destination, source string, arg *GeoSearchStoreArgument) *IntCmd {
	if err := arg.Validate(); err != nil {
		return fail[int64](ctx, c, err, "GEOSEARCHSTORE", destination)
	}
	return run(ctx, c, toInt64, append([]interface{}{"GEOSEARCHSTORE", destination, source}, arg.Args()...)...)
}

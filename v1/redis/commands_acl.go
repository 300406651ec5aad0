package redis

import "context"

// AclCat lists the ACL categories.
func (c cmdable) AclCat(ctx context.Context) *StringSliceCmd {
	return runNoKey(ctx, c, toStringSliceOrEmpty, "ACL", "CAT")
}

// AclCatCategory lists the commands of category.
func (c cmdable) AclCatCategory(ctx context.Context, category string) *StringSliceCmd {
	return runNoKey(ctx, c, toStringSliceOrEmpty, "ACL", "CAT", category)
}

// AclDelUser deletes ACL users and returns how many existed.
func (c cmdable) AclDelUser(ctx context.Context, usernames ...string) *IntCmd {
	if len(usernames) == 0 {
		return fail[int64](ctx, c, invalidArgument("ACL DELUSER requires at least one user"), "ACL", "DELUSER")
	}
	return runNoKey(ctx, c, toInt64, appendStrings([]interface{}{"ACL", "DELUSER"}, usernames)...)
}

// AclDryRun reports whether username may run command. The reply is "OK" or
// the reason it would be denied.
func (c cmdable) AclDryRun(ctx context.Context, username string, command ...interface{}) *StringCmd {
	if len(command) == 0 {
		return fail[string](ctx, c, invalidArgument("ACL DRYRUN requires a command"), "ACL", "DRYRUN", username)
	}
	return runNoKey(ctx, c, toString, append([]interface{}{"ACL", "DRYRUN", username}, command...)...)
}

// AclGenPass returns a random password of bits bits; zero uses 256.
func (c cmdable) AclGenPass(ctx context.Context, bits int) *StringCmd {
	args := []interface{}{"ACL", "GENPASS"}
	if bits > 0 {
		args = append(args, bits)
	}
	return runNoKey(ctx, c, toString, args...)
}

// AclGetUser returns Nil for an unknown user.
func (c cmdable) AclGetUser(ctx context.Context, username string) *AclUserCmd {
	return runNoKey(ctx, c, toAclUser, "ACL", "GETUSER", username)
}

// AclList returns the ACL rules of every user in ACL file format.
func (c cmdable) AclList(ctx context.Context) *StringSliceCmd {
	return runNoKey(ctx, c, toStringSliceOrEmpty, "ACL", "LIST")
}

// AclLoad reloads the ACL rules from the configured ACL file.
func (c cmdable) AclLoad(ctx context.Context) *StatusCmd {
	return runNoKey(ctx, c, toStatus, "ACL", "LOAD")
}

// AclSave writes the current ACL rules to the configured ACL file.
func (c cmdable) AclSave(ctx context.Context) *StatusCmd {
	return runNoKey(ctx, c, toStatus, "ACL", "SAVE")
}

// AclLog returns up to count recent security events; zero uses the server
// default of 10.
func (c cmdable) AclLog(ctx context.Context, count int64) *AclLogCmd {
	args := []interface{}{"ACL", "LOG"}
	if count > 0 {
		args = append(args, count)
	}
	return runNoKey(ctx, c, toAclLog, args...)
}

// AclLogReset clears the ACL security log.
func (c cmdable) AclLogReset(ctx context.Context) *StatusCmd {
	return runNoKey(ctx, c, toStatus, "ACL", "LOG", "RESET")
}

// AclSetUser creates or modifies username by applying the rules of arg.
func (c cmdable) AclSetUser(ctx context.Context, username string, arg *AclSetUserArgument) *StatusCmd {
	if username == "" {
		return fail[string](ctx, c, invalidArgument("ACL SETUSER requires a username"), "ACL", "SETUSER")
	}
	return runNoKey(ctx, c, toStatus, append([]interface{}{"ACL", "SETUSER", username}, arg.Args()...)...)
}

// AclUsers returns the names of all ACL users.
func (c cmdable) AclUsers(ctx context.Context) *StringSliceCmd {
	return runNoKey(ctx, c, toStringSliceOrEmpty, "ACL", "USERS")
}

// AclWhoAmI returns the user of the current connection.
func (c cmdable) AclWhoAmI(ctx context.Context) *StringCmd {
	return runNoKey(ctx, c, toString, "ACL", "WHOAMI")
}

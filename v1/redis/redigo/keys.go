package redigo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mna/redisc"
)

// keylessCommands never carry a key and can be served by any node.
var keylessCommands = map[string]bool{
	"ACL":          true,
	"AUTH":         true,
	"BGREWRITEAOF": true,
	"BGSAVE":       true,
	"CLIENT":       true,
	"CLUSTER":      true,
	"COMMAND":      true,
	"CONFIG":       true,
	"DBSIZE":       true,
	"DEBUG":        true,
	"DISCARD":      true,
	"ECHO":         true,
	"EXEC":         true,
	"FAILOVER":     true,
	"FLUSHALL":     true,
	"FLUSHDB":      true,
	"FUNCTION":     true,
	"HELLO":        true,
	"INFO":         true,
	"KEYS":         true,
	"LASTSAVE":     true,
	"LATENCY":      true,
	"LOLWUT":       true,
	"MODULE":       true,
	"MULTI":        true,
	"PING":         true,
	"PUBLISH":      true,
	"PUBSUB":       true,
	"QUIT":         true,
	"RANDOMKEY":    true,
	"READONLY":     true,
	"READWRITE":    true,
	"REPLICAOF":    true,
	"RESET":        true,
	"ROLE":         true,
	"SAVE":         true,
	"SCAN":         true,
	"SCRIPT":       true,
	"SELECT":       true,
	"SHUTDOWN":     true,
	"SLAVEOF":      true,
	"SLOWLOG":      true,
	"SWAPDB":       true,
	"TIME":         true,
	"UNWATCH":      true,
	"WAIT":         true,
	"WAITAOF":      true,
}

// commandKey returns the first key of a command. ok is false for commands
// without keys.
func commandKey(args []interface{}) (key string, ok bool) {
	pos := keyIndex(args)
	if pos <= 0 || pos >= len(args) {
		return "", false
	}
	return fmt.Sprint(args[pos]), true
}

// keyIndex returns the position of the first key in args, or 0.
func keyIndex(args []interface{}) int {
	if len(args) < 2 {
		return 0
	}
	name := strings.ToUpper(fmt.Sprint(args[0]))
	switch name {
	case "EVAL", "EVALSHA", "EVAL_RO", "EVALSHA_RO", "FCALL", "FCALL_RO":
		return keyAfterCount(args, 2)
	case "BLMPOP", "BZMPOP":
		return keyAfterCount(args, 2)
	case "LMPOP", "ZMPOP", "SINTERCARD", "ZINTERCARD", "ZDIFF", "ZINTER", "ZUNION":
		return keyAfterCount(args, 1)
	case "BITOP", "MEMORY", "OBJECT", "XINFO", "XGROUP":
		return 2
	case "XREAD", "XREADGROUP":
		for i := 1; i < len(args)-1; i++ {
			if strings.EqualFold(fmt.Sprint(args[i]), "STREAMS") {
				return i + 1
			}
		}
		return 0
	}
	if keylessCommands[name] {
		return 0
	}
	return 1
}

// keyAfterCount handles commands with a numkeys argument at pos followed by
// the keys.
func keyAfterCount(args []interface{}, pos int) int {
	if pos >= len(args) {
		return 0
	}
	n, err := strconv.Atoi(fmt.Sprint(args[pos]))
	if err != nil || n <= 0 {
		return 0
	}
	return pos + 1
}

// commandKeys returns the first key of every keyed command in cmds.
func commandKeys(cmds [][]interface{}) []string {
	keys := make([]string, 0, len(cmds))
	for _, args := range cmds {
		if key, ok := commandKey(args); ok {
			keys = append(keys, key)
		}
	}
	return keys
}

// slotGroup holds the indexes of the commands that hash to one slot, in
// caller order. Keyless commands share a group without a key.
type slotGroup struct {
	key    string
	hasKey bool
	idx    []int
}

func (g slotGroup) keys() []string {
	if !g.hasKey {
		return nil
	}
	return []string{g.key}
}

// groupBySlot splits cmds by the hash slot of their first key. Groups are
// returned in the order of their first command.
func groupBySlot(cmds [][]interface{}) []slotGroup {
	var groups []slotGroup
	bySlot := make(map[int]int)
	for i, args := range cmds {
		key, ok := commandKey(args)
		slot := -1
		if ok {
			slot = redisc.Slot(key)
		}
		g, seen := bySlot[slot]
		if !seen {
			g = len(groups)
			bySlot[slot] = g
			groups = append(groups, slotGroup{key: key, hasKey: ok})
		}
		groups[g].idx = append(groups[g].idx, i)
	}
	return groups
}

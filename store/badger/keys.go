package badger

import (
	"fmt"

	"github.com/poiesic/retrace/core"
)

// Key prefixes for different data types
const (
	dictionaryPrefix    = "dicent"
	checkpointKeyName   = "idxchkpt"
	stalenessFlagPrefix = "dicstale"
)

// makeDictionaryKey generates a key for a dictionary entry by term ID.
func makeDictionaryKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", dictionaryPrefix, id))
}

// makeCheckpointKey generates the key for the index build checkpoint.
func makeCheckpointKey() []byte {
	return []byte(checkpointKeyName)
}

// makeStalenessKey generates the key for a named staleness flag.
func makeStalenessKey(name string) []byte {
	return []byte(fmt.Sprintf("%s:%s", stalenessFlagPrefix, name))
}

package core

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// Hand-written MUS serializers for the types persisted in the metadata
// store. Only two small types cross the serialization boundary, so the
// serializers are written out instead of generated.

type idMUS struct{}

// IDMUS serializes ID values.
var IDMUS = idMUS{}

func (idMUS) Marshal(v ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(v ID) int {
	return varint.Uint64.Size(uint64(v))
}

type dictionaryEntryMUS struct{}

// DictionaryEntryMUS serializes DictionaryEntry values.
var DictionaryEntryMUS = dictionaryEntryMUS{}

func (dictionaryEntryMUS) Marshal(v DictionaryEntry, bs []byte) (n int) {
	n = ord.String.Marshal(v.Term, bs)
	n += varint.Int.Marshal(len(v.Related), bs[n:])
	for _, related := range v.Related {
		n += ord.String.Marshal(related, bs[n:])
	}
	n += varint.Int64.Marshal(v.UpdatedAt.UnixMicro(), bs[n:])
	return n
}

func (dictionaryEntryMUS) Unmarshal(bs []byte) (v DictionaryEntry, n int, err error) {
	v.Term, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}

	var count, n1 int
	count, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	if count > 0 {
		v.Related = make([]string, count)
		for i := 0; i < count; i++ {
			v.Related[i], n1, err = ord.String.Unmarshal(bs[n:])
			n += n1
			if err != nil {
				return
			}
		}
	}

	var micros int64
	micros, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt = time.UnixMicro(micros).UTC()
	return
}

func (dictionaryEntryMUS) Size(v DictionaryEntry) (size int) {
	size = ord.String.Size(v.Term)
	size += varint.Int.Size(len(v.Related))
	for _, related := range v.Related {
		size += ord.String.Size(related)
	}
	size += varint.Int64.Size(v.UpdatedAt.UnixMicro())
	return size
}

type checkpointMUS struct{}

// CheckpointMUS serializes Checkpoint values.
var CheckpointMUS = checkpointMUS{}

func (checkpointMUS) Marshal(v Checkpoint, bs []byte) (n int) {
	n = varint.Int64.Marshal(v.LastBuild.UnixMicro(), bs)
	n += varint.Uint64.Marshal(v.RowCount, bs[n:])
	return n
}

func (checkpointMUS) Unmarshal(bs []byte) (v Checkpoint, n int, err error) {
	var micros int64
	micros, n, err = varint.Int64.Unmarshal(bs)
	if err != nil {
		return
	}
	v.LastBuild = time.UnixMicro(micros).UTC()

	var n1 int
	v.RowCount, n1, err = varint.Uint64.Unmarshal(bs[n:])
	n += n1
	return
}

func (checkpointMUS) Size(v Checkpoint) int {
	return varint.Int64.Size(v.LastBuild.UnixMicro()) + varint.Uint64.Size(v.RowCount)
}

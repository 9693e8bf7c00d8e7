package storage

import (
	"fmt"
	"strconv"

	"github.com/syndtr/goleveldb/leveldb"
)

var lastHeightKey = []byte("explorer_last_height")

// LevelDB keeps the explorer's ingest checkpoint: the last block height
// whose events were fully written to the ledger. The ledger itself stays
// the source of truth, the checkpoint only decides where polling resumes.
type LevelDB struct {
	db *leveldb.DB
}

func NewLevelDB(path string) (*LevelDB, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return &LevelDB{db: db}, nil
}

func (l *LevelDB) Close() error {
	return l.db.Close()
}

// LastHeight returns the checkpoint, reporting false when none was
// written yet.
func (l *LevelDB) LastHeight() (int64, bool, error) {
	raw, err := l.db.Get(lastHeightKey, nil)
	if err == leveldb.ErrNotFound {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	height, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt checkpoint %q: %v", raw, err)
	}
	return height, true, nil
}

func (l *LevelDB) SetLastHeight(height int64) error {
	err := l.db.Put(lastHeightKey, []byte(strconv.FormatInt(height, 10)), nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

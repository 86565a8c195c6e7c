package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"sync"

	"github.com/speps/go-hashids/v2"
)

// ID is a user id as it appears on the wire: a hashid string instead of the
// sequential integer issued by the identity service.
type ID int64

var ErrInvalidID = errors.New("invalid ID")

var (
	hashMu sync.RWMutex
	dbHash *hashids.HashID
)

func init() {
	if err := ConfigureIDs(""); err != nil {
		panic(err)
	}
}

// ConfigureIDs sets the salt used to encode ids. The server calls it once
// at boot with the signing key.
func ConfigureIDs(salt string) error {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 12
	h, err := hashids.NewWithData(hd)
	if err != nil {
		return err
	}
	hashMu.Lock()
	dbHash = h
	hashMu.Unlock()
	return nil
}

func hasher() *hashids.HashID {
	hashMu.RLock()
	defer hashMu.RUnlock()
	return dbHash
}

func (id ID) String() string {
	s, err := hasher().EncodeInt64([]int64{int64(id)})
	if err != nil {
		return ""
	}
	return s
}

// ParseID decodes a hashid produced by String.
func ParseID(s string) (ID, error) {
	if s == "" {
		return 0, ErrInvalidID
	}
	result, err := hasher().DecodeInt64WithError(s)
	if err != nil || len(result) != 1 {
		return 0, ErrInvalidID
	}
	return ID(result[0]), nil
}

// MarshalJSON implements the encoding json interface.
func (id ID) MarshalJSON() ([]byte, error) {
	if id == 0 {
		return json.Marshal(nil)
	}
	result, err := hasher().EncodeInt64([]int64{int64(id)})
	if err != nil {
		return nil, err
	}
	return json.Marshal(result)
}

// UnmarshalJSON implements the encoding json interface.
func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*id = 0
		return nil
	}
	parsed, err := ParseID(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Scan implements the Scanner interface.
func (id *ID) Scan(value interface{}) error {
	if value == nil {
		*id = 0
		return nil
	}

	switch v := value.(type) {
	case int64:
		*id = ID(v)
	case []byte:
		return id.UnmarshalJSON(v)
	default:
		return errors.New("unexpected type for ID")
	}
	return nil
}

// Value implements the driver Valuer interface.
func (id ID) Value() (driver.Value, error) {
	return int64(id), nil
}

func NullableID(n sql.NullInt64) *ID {
	if !n.Valid {
		return nil
	}
	id := ID(n.Int64)
	return &id
}

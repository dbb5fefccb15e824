package pg

import (
	"time"

	"github.com/uptrace/bun"
)

// EventDao maps to the 'eth_events' table.
type EventDao struct {
	bun.BaseModel `bun:"table:eth_events,alias:e"`
	Hash          string    `bun:"hash,pk,type:char(64)"`
	Kind          string    `bun:"kind,notnull,type:varchar(32)"`
	Nonce         *string   `bun:"nonce,type:numeric(78,0)"`
	Encoding      []byte    `bun:"encoding,notnull,type:bytea"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// EventAssetDao maps to the 'eth_event_assets' table, indexing events by the
// token contracts they refer to.
type EventAssetDao struct {
	bun.BaseModel `bun:"table:eth_event_assets,alias:ea"`
	Asset         string `bun:"asset,pk,type:varchar(42)"`
	Hash          string `bun:"hash,pk,type:char(64)"`
}

package mongo

import "time"

// AuditEntry adalah satu aksi admin yang terekam.
type AuditEntry struct {
	ID       interface{} `bson:"_id,omitempty" json:"id"`
	Actor    string      `bson:"actor" json:"actor"`
	Action   string      `bson:"action" json:"action"` // create / update / delete
	Entity   string      `bson:"entity" json:"entity"` // article / event / video / user / post
	EntityID uint64      `bson:"entity_id" json:"entity_id"`
	Detail   string      `bson:"detail,omitempty" json:"detail,omitempty"`
	TraceID  string      `bson:"trace_id,omitempty" json:"trace_id,omitempty"`
	At       time.Time   `bson:"at" json:"at"`
}

package models

import "time"

// AuditEntry records one admin mutation. Stored in Mongo with a TTL index on
// ExpiresAt, so old entries fall off without a cleanup job.
type AuditEntry struct {
	AdminID   string `bson:"admin_id" json:"adminId"`
	Method    string `bson:"method" json:"method"`
	Path      string `bson:"path" json:"path"`
	Entity    string `bson:"entity" json:"entity"`
	Status    int    `bson:"status" json:"status"`
	RequestID string `bson:"request_id" json:"requestId"`

	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	ExpiresAt time.Time `bson:"expires_at" json:"-"`
}

// Package storage is a generic document store over MongoDB. Collections
// are schemaless and selected by caller-supplied name; records are
// arbitrary field mappings with a store-assigned identifier.
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// DefaultLimit is the number of records List returns when the caller
// does not ask for a specific limit.
const DefaultLimit = 50

const connectTimeout = 5 * time.Second

var errNotConnected = errors.New("database not connected")

// StoreError reports a failure at the persistence boundary: a missing
// or broken connection, or a rejected read or write.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Store is the process-wide handle to the document database. The handle
// may be absent: Open tolerates an unreachable or unconfigured database,
// and operations on a disconnected store fail individually with a
// *StoreError instead of crashing the process.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	logger *log.Logger
}

// Open connects to the database named by url and dbName. It never fails
// the process: if either value is empty, or the connection or ping
// fails, the returned store is disconnected and the reason is logged.
func Open(ctx context.Context, url, dbName string, logger *log.Logger) *Store {
	s := &Store{logger: logger}
	if url == "" || dbName == "" {
		logger.Warn("database not configured, starting without a store connection",
			"database_url_set", url != "",
			"database_name_set", dbName != "")
		return s
	}

	client, err := mongo.Connect(options.Client().ApplyURI(url))
	if err != nil {
		logger.Warn("database connect failed, starting without a store connection", "err", err)
		return s
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		logger.Warn("database ping failed, starting without a store connection", "err", err)
		client.Disconnect(ctx)
		return s
	}

	s.client = client
	s.db = client.Database(dbName)
	logger.Info("connected to database", "name", dbName)
	return s
}

// Connected reports whether the store holds a live database handle.
func (s *Store) Connected() bool { return s.db != nil }

// Close releases the database connection, if one was established.
func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

// Create inserts record into the named collection and returns the
// store-assigned identifier as a string.
func (s *Store) Create(ctx context.Context, collection string, record map[string]any) (string, error) {
	if s.db == nil {
		return "", &StoreError{Op: "create", Err: errNotConnected}
	}
	res, err := s.db.Collection(collection).InsertOne(ctx, bson.M(record))
	if err != nil {
		return "", &StoreError{Op: "create", Err: err}
	}
	return renderID(res.InsertedID), nil
}

// List returns up to limit records from the named collection in
// store-native order, with each record's identifier rendered as a
// string under "_id". Non-positive limits fall back to DefaultLimit.
func (s *Store) List(ctx context.Context, collection string, limit int) ([]map[string]any, error) {
	if s.db == nil {
		return nil, &StoreError{Op: "list", Err: errNotConnected}
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	cur, err := s.db.Collection(collection).Find(ctx, bson.M{}, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}
	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}

	records := make([]map[string]any, len(docs))
	for i, d := range docs {
		rec := map[string]any(d)
		rec["_id"] = renderID(rec["_id"])
		records[i] = rec
	}
	return records, nil
}

// Status describes store connectivity for the diagnostic endpoint.
// Partial failures (connected but unable to enumerate collections) are
// reported in Detail rather than returned as errors.
type Status struct {
	Connected   bool
	Detail      string
	Collections []string
}

// Status reports current connection state and a sample of known
// collection names (at most 10). It never fails.
func (s *Store) Status(ctx context.Context) Status {
	if s.db == nil {
		return Status{Detail: "Not Available"}
	}

	st := Status{Connected: true, Detail: "Connected & Working"}
	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		st.Detail = fmt.Sprintf("Connected but error: %v", err)
		return st
	}
	if len(names) > 10 {
		names = names[:10]
	}
	st.Collections = names
	return st
}

// renderID turns a store-assigned identifier into its string form.
func renderID(id any) string {
	switch v := id.(type) {
	case bson.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// internal/app/system/txn/txn.go

// Package txn runs multi-collection write batches inside a MongoDB
// transaction when the deployment supports one. Standalone servers
// (no replica set) reject sessions/transactions; in that case the
// batch degrades to ordered writes on the plain context, which is the
// strongest guarantee the store itself offers there.
package txn

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// WithBatch executes fn as one all-or-nothing batch when the server
// supports multi-document transactions, and as a plain ordered
// sequence of writes otherwise. fn must issue every write through the
// context it receives.
func WithBatch(ctx context.Context, client *mongo.Client, log *zap.Logger, fn func(ctx context.Context) error) error {
	sess, err := client.StartSession()
	if err != nil {
		if IsNotSupported(err) {
			logFallback(log)
			return fn(ctx)
		}
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	if err != nil && IsNotSupported(err) {
		logFallback(log)
		return fn(ctx)
	}
	return err
}

func logFallback(log *zap.Logger) {
	if log != nil {
		log.Warn("mongo transactions not supported on this deployment; applying batch as ordered writes")
	}
}

// IsNotSupported reports whether err indicates the deployment cannot
// run sessions or multi-document transactions (standalone mongod,
// some DocumentDB configurations). Matches both the well-known
// command error codes and the keyword combinations different server
// versions use in their messages.
func IsNotSupported(err error) bool {
	if err == nil {
		return false
	}

	var ce mongo.CommandError
	if errors.As(err, &ce) {
		switch ce.Code {
		case 20, 51, 263:
			return true
		}
	}

	s := strings.ToLower(err.Error())
	hasTxn := strings.Contains(s, "transaction")
	switch {
	case hasTxn && strings.Contains(s, "replica set"):
		return true
	case hasTxn && strings.Contains(s, "session"):
		return true
	case hasTxn && strings.Contains(s, "illegal operation"):
		return true
	case strings.Contains(s, "session") && strings.Contains(s, "not supported"):
		return true
	}
	return false
}

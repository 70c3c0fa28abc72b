package txn

import (
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestIsNotSupported(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil",
			err:  nil,
			want: false,
		},
		{
			name: "unrelated error",
			err:  errors.New("connection reset by peer"),
			want: false,
		},
		{
			name: "code 20 IllegalOperation",
			err:  mongo.CommandError{Code: 20, Message: "Transaction numbers are only allowed on a replica set member"},
			want: true,
		},
		{
			name: "code 51 standalone",
			err:  mongo.CommandError{Code: 51, Message: "Illegal operation"},
			want: true,
		},
		{
			name: "code 263 OperationNotSupportedInTransaction",
			err:  mongo.CommandError{Code: 263, Message: "Cannot run in a multi-document transaction"},
			want: true,
		},
		{
			name: "unrelated command error code",
			err:  mongo.CommandError{Code: 112, Message: "WriteConflict"},
			want: false,
		},
		{
			name: "wrapped command error",
			err:  fmt.Errorf("delete batch: %w", mongo.CommandError{Code: 20, Message: "no replica set"}),
			want: true,
		},
		{
			name: "transaction plus replica set in message",
			err:  errors.New("transaction requires a replica set member"),
			want: true,
		},
		{
			name: "sessions not supported in message",
			err:  errors.New("this server reports sessions are not supported"),
			want: true,
		},
		{
			name: "transaction keyword alone",
			err:  errors.New("transaction aborted"),
			want: false,
		},
		{
			name: "transaction plus session in message",
			err:  errors.New("cannot start a transaction on this session"),
			want: true,
		},
		{
			name: "illegal operation during transaction",
			err:  errors.New("illegal operation attempted inside a transaction"),
			want: true,
		},
		{
			name: "uppercase message",
			err:  errors.New("TRANSACTION rejected: not a REPLICA SET"),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotSupported(tt.err); got != tt.want {
				t.Errorf("IsNotSupported(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

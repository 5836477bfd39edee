package repository

import (
	"context"
	"errors"
	"testing"

	"stargate-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeIndexes struct {
	models []mongo.IndexModel
	err    error
}

func (f *fakeIndexes) CreateMany(_ context.Context, models []mongo.IndexModel, _ ...*options.CreateIndexesOptions) ([]string, error) {
	f.models = models
	if f.err != nil {
		return nil, f.err
	}
	return []string{"personName_1_receivedAt_-1", "status_1"}, nil
}

func TestEnsureSubmissionIndexes(t *testing.T) {
	t.Run("creates history and status indexes", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		indexes := &fakeIndexes{}

		ensureSubmissionIndexes(context.Background(), indexes, logger.NewFromZap(zap.New(core)))

		assert.Len(t, indexes.models, 2)
		assert.Zero(t, logs.Len())
	})

	t.Run("failure is logged as a warning", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		indexes := &fakeIndexes{err: errors.New("not authorized on stargate")}

		ensureSubmissionIndexes(context.Background(), indexes, logger.NewFromZap(zap.New(core)))

		entries := logs.FilterMessage("Failed to create duty submission indexes").All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
		assert.Equal(t, submissionCollection, entries[0].ContextMap()["collection"])
		assert.Contains(t, entries[0].ContextMap()["error"], "not authorized")
	})
}

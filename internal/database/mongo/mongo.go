package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"odooclient/entity"
	"odooclient/internal/config"
	"odooclient/internal/lib/sl"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	reportsCollection = "seed_reports"
)

// MongoDB stores full seed-run reports. Connections are opened per
// call and dropped immediately, the store is touched a handful of
// times per run at most.
type MongoDB struct {
	ctx           context.Context
	clientOptions *options.ClientOptions
	database      string
	expiredDays   int
	log           *slog.Logger
}

func NewMongoClient(conf *config.Config, logger *slog.Logger) (*MongoDB, error) {
	if !conf.Mongo.Enabled {
		return nil, nil
	}
	connectionUri := fmt.Sprintf("mongodb://%s:%s", conf.Mongo.Host, conf.Mongo.Port)
	clientOptions := options.Client().ApplyURI(connectionUri)
	if conf.Mongo.User != "" {
		clientOptions.SetAuth(options.Credential{
			Username:   conf.Mongo.User,
			Password:   conf.Mongo.Password,
			AuthSource: conf.Mongo.Database,
		})
	}
	client := &MongoDB{
		ctx:           context.Background(),
		clientOptions: clientOptions,
		database:      conf.Mongo.Database,
		expiredDays:   conf.Mongo.ExpiredDays,
		log:           logger.With(sl.Module("mongodb")),
	}
	return client, nil
}

func (m *MongoDB) connect() (*mongo.Client, error) {
	connection, err := mongo.Connect(m.ctx, m.clientOptions)
	if err != nil {
		return nil, fmt.Errorf("mongodb connect error: %w", err)
	}
	return connection, nil
}

func (m *MongoDB) disconnect(connection *mongo.Client) {
	_ = connection.Disconnect(m.ctx)
}

func (m *MongoDB) findError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}
	return fmt.Errorf("mongodb find error: %w", err)
}

// SaveReport stores one finished run report.
func (m *MongoDB) SaveReport(report *entity.SeedReport) error {
	connection, err := m.connect()
	if err != nil {
		return err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(reportsCollection)
	if _, err := collection.InsertOne(m.ctx, report); err != nil {
		return fmt.Errorf("mongodb insert error: %w", err)
	}

	m.log.With(
		slog.String("run_id", report.RunID),
		slog.Int("created", report.TotalCreated()),
	).Debug("seed report saved")
	return nil
}

// LastReport returns the most recent run report, or nil when none exist.
func (m *MongoDB) LastReport() (*entity.SeedReport, error) {
	connection, err := m.connect()
	if err != nil {
		return nil, err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(reportsCollection)
	opts := options.FindOne().SetSort(bson.D{{Key: "started", Value: -1}})

	var report entity.SeedReport
	err = collection.FindOne(m.ctx, bson.D{}, opts).Decode(&report)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, m.findError(err)
	}
	return &report, nil
}

// DeleteExpired drops reports older than the configured retention.
func (m *MongoDB) DeleteExpired() (int64, error) {
	connection, err := m.connect()
	if err != nil {
		return 0, err
	}
	defer m.disconnect(connection)

	cutoff := time.Now().AddDate(0, 0, -m.expiredDays)
	collection := connection.Database(m.database).Collection(reportsCollection)

	result, err := collection.DeleteMany(m.ctx, bson.M{
		"started": bson.M{"$lt": cutoff},
	})
	if err != nil {
		return 0, fmt.Errorf("mongodb delete error: %w", err)
	}

	if result.DeletedCount > 0 {
		m.log.With(
			slog.Int64("deleted", result.DeletedCount),
		).Debug("expired seed reports removed")
	}
	return result.DeletedCount, nil
}

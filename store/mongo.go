package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kiranacart/delivery-api/schema"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second
)

// MongoZones - mongodb operations over the zone collection. The
// administrative import writes through this interface; the API service
// loads from it when refreshing the snapshot store.
type MongoZones interface {
	ZoneSource
	InsertZones(ctx context.Context, zones []schema.DeliveryZone) error
	DeactivateZone(ctx context.Context, id string) error
	Ping() error
	Close()
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

// NewMongoZones - return mongo db zone operations
func NewMongoZones(client *mongo.Client, database string) MongoZones {
	return &mongoDB{
		client:   client,
		database: database,
	}
}

// Ping - ping mongo db
func (m *mongoDB) Ping() error {
	return m.client.Ping(context.Background(), nil)
}

// Close - close mongo db connections
func (m *mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

// LoadZones reads every zone record, active or not, in stable order.
func (m *mongoDB) LoadZones(ctx context.Context) ([]schema.DeliveryZone, error) {
	c := m.client.Database(m.database).Collection(schema.ZoneCollection)
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "ordinal", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := c.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"error":  err,
		}).Error("load delivery zones")
		return nil, err
	}

	zones := make([]schema.DeliveryZone, 0)
	for cur.Next(ctx) {
		var zone schema.DeliveryZone
		if err := cur.Decode(&zone); err != nil {
			return nil, err
		}
		zones = append(zones, zone)
	}

	return zones, nil
}

// InsertZones publishes validated zone records from the import tool.
func (m *mongoDB) InsertZones(ctx context.Context, zones []schema.DeliveryZone) error {
	c := m.client.Database(m.database).Collection(schema.ZoneCollection)
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	documents := make([]interface{}, len(zones))
	for i, zone := range zones {
		documents[i] = zone
	}

	if _, err := c.InsertMany(ctx, documents); err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"count":  len(zones),
			"error":  err,
		}).Error("insert delivery zones")
		return err
	}

	return nil
}

// DeactivateZone retires a zone. Records are never deleted.
func (m *mongoDB) DeactivateZone(ctx context.Context, id string) error {
	c := m.client.Database(m.database).Collection(schema.ZoneCollection)
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"active": false}},
	)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"id":     id,
			"error":  err,
		}).Error("deactivate delivery zone")
		return err
	}

	if result.MatchedCount == 0 {
		return ErrZoneNotFound
	}

	return nil
}

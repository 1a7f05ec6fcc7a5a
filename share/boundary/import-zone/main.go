package main

import (
	"context"
	"flag"
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kiranacart/delivery-api/external/geoinfo"
	"github.com/kiranacart/delivery-api/ingest"
	"github.com/kiranacart/delivery-api/share/boundary"
	"github.com/kiranacart/delivery-api/store"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("kirana")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var manifestFile string
	flag.StringVar(&manifestFile, "m", "zones.json", "path of the zone manifest file")
	flag.Parse()

	ctx := context.Background()
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	mongoZones := store.NewMongoZones(client, viper.GetString("mongo.database"))

	var registry *store.ZoneRegistry
	if conn := viper.GetString("orm.conn"); conn != "" {
		ormDB, err := gorm.Open("postgres", conn)
		if err != nil {
			panic(err)
		}
		defer ormDB.Close()
		registry = store.NewZoneRegistry(ormDB)
	}

	var geoClient geoinfo.GeoInfo
	if apiKey := viper.GetString("map.apikey"); apiKey != "" {
		geoClient, err = geoinfo.New(apiKey)
		if err != nil {
			panic(err)
		}
	}

	var region *ingest.RegionBounds
	if viper.IsSet("zones.region.min_latitude") {
		region = &ingest.RegionBounds{
			MinLatitude:  viper.GetFloat64("zones.region.min_latitude"),
			MaxLatitude:  viper.GetFloat64("zones.region.max_latitude"),
			MinLongitude: viper.GetFloat64("zones.region.min_longitude"),
			MaxLongitude: viper.GetFloat64("zones.region.max_longitude"),
		}
	}

	importer := boundary.NewImporter(mongoZones, registry, geoClient, region)

	zones, err := importer.ImportManifest(ctx, manifestFile)
	if err != nil {
		panic(err)
	}

	log.WithField("zones", len(zones)).Info("import finished")
}
